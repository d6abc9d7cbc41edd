package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"BeanLedger/internal/ingestion"
	"BeanLedger/internal/model"
	"BeanLedger/internal/observability"
	"BeanLedger/internal/stream"
)

// Worker drains the booked-record channel and batch-writes to Postgres.
// The stream uses BLOCKING sends into this channel, so if the worker falls
// behind, booking stalls — guaranteeing no record is lost.
type Worker struct {
	writer       *LedgerWriter
	inputChan    <-chan stream.Booked
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
}

func NewWorker(
	db *sql.DB,
	inputChan <-chan stream.Booked,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *Worker {
	return &Worker{
		writer:       NewLedgerWriter(db),
		inputChan:    inputChan,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
	}
}

// Run starts the worker loop. It batches incoming records and flushes either
// when the batch is full or the flush timeout expires. Blocks until ctx is
// cancelled.
func (w *Worker) Run(ctx context.Context) error {
	directiveBatch := make([]DirectiveRow, 0, w.batchSize)
	priceBatch := make([]PriceRow, 0, w.batchSize)

	timer := time.NewTimer(w.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			// Graceful shutdown: flush remaining
			if len(directiveBatch) > 0 {
				if err := w.flush(context.Background(), directiveBatch, priceBatch); err != nil {
					log.Printf("ERROR: final flush failed: %v", err)
				}
			}
			return ctx.Err()

		case rec, ok := <-w.inputChan:
			if !ok {
				// Channel closed — flush and exit
				if len(directiveBatch) > 0 {
					if err := w.flush(context.Background(), directiveBatch, priceBatch); err != nil {
						log.Printf("ERROR: final flush failed: %v", err)
					}
				}
				return nil
			}

			row, priceRow, err := w.toRows(rec)
			if err != nil {
				log.Printf("ERROR: encode booked record seq=%d: %v", rec.Sequence, err)
				if w.metrics != nil {
					w.metrics.PersistErrors.WithLabelValues("encode").Inc()
				}
				continue
			}
			directiveBatch = append(directiveBatch, row)
			if priceRow != nil {
				priceBatch = append(priceBatch, *priceRow)
			}

			if len(directiveBatch) >= w.batchSize {
				if err := w.flushWithRetry(ctx, directiveBatch, priceBatch); err != nil {
					log.Printf("ERROR: batch flush failed after retries: %v", err)
				}
				directiveBatch = directiveBatch[:0]
				priceBatch = priceBatch[:0]
				timer.Reset(w.flushTimeout)
			}

		case <-timer.C:
			if len(directiveBatch) > 0 {
				if err := w.flushWithRetry(ctx, directiveBatch, priceBatch); err != nil {
					log.Printf("ERROR: timeout flush failed after retries: %v", err)
				}
				directiveBatch = directiveBatch[:0]
				priceBatch = priceBatch[:0]
			}
			timer.Reset(w.flushTimeout)
		}
	}
}

// toRows converts one booked record into its directive row and, for Price
// directives, an extra price observation row.
func (w *Worker) toRows(rec stream.Booked) (DirectiveRow, *PriceRow, error) {
	payload, err := ingestion.EncodeDirective(rec.Directive)
	if err != nil {
		return DirectiveRow{}, nil, fmt.Errorf("encode directive: %w", err)
	}

	row := DirectiveRow{
		RunID:    rec.RunID.String(),
		Sequence: rec.Sequence,
		Date:     rec.Directive.Date.String(),
		Kind:     rec.Directive.Body.Kind().String(),
		Payload:  payload,
	}
	if rec.Err != nil {
		msg := rec.Err.Error()
		row.BookError = &msg
	}

	if price, ok := rec.Directive.Body.(*model.Price); ok && rec.Err == nil {
		return row, &PriceRow{
			RunID:         rec.RunID.String(),
			Sequence:      rec.Sequence,
			Currency:      price.Currency,
			Date:          rec.Directive.Date.String(),
			Number:        price.Amount.Number.String(),
			QuoteCurrency: price.Amount.Currency,
		}, nil
	}
	return row, nil, nil
}

// flushWithRetry attempts to flush with exponential backoff. The worker
// never drops records — it retries until the write succeeds or the context
// is cancelled (one final flush is attempted on shutdown).
func (w *Worker) flushWithRetry(ctx context.Context, directives []DirectiveRow, prices []PriceRow) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 30 * time.Second

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			log.Printf("WARN: persistence retry attempt %d (backoff=%v, directives=%d)",
				attempt, backoff, len(directives))
			select {
			case <-ctx.Done():
				finalErr := w.flush(context.Background(), directives, prices)
				if finalErr != nil {
					return fmt.Errorf("final flush on shutdown failed: %w", finalErr)
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		err := w.flush(ctx, directives, prices)
		if err == nil {
			if attempt > 0 {
				log.Printf("INFO: persistence flush succeeded after %d retries", attempt)
			}
			return nil
		}

		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("retry").Inc()
		}
	}
}

func (w *Worker) flush(ctx context.Context, directives []DirectiveRow, prices []PriceRow) error {
	start := time.Now()

	// Directives and prices commit in a single transaction.
	tx, err := w.writer.db.BeginTx(ctx, nil)
	if err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("tx_begin").Inc()
		}
		return err
	}
	defer tx.Rollback()

	if err := w.writer.WriteDirectiveBatch(ctx, tx, directives); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("write_directives").Inc()
		}
		return err
	}

	if err := w.writer.WritePriceBatch(ctx, tx, prices); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("write_prices").Inc()
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("tx_commit").Inc()
		}
		return err
	}

	if w.metrics != nil {
		w.metrics.PersistBatchDur.Observe(time.Since(start).Seconds())
		w.metrics.PersistBatchSize.Observe(float64(len(directives)))
		w.metrics.PersistDirectivesWritten.Add(float64(len(directives)))
		w.metrics.PersistPricesWritten.Add(float64(len(prices)))
		if len(directives) > 0 {
			w.metrics.PersistLastSequence.Set(float64(directives[len(directives)-1].Sequence))
		}
	}

	return nil
}
