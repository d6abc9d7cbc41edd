// Package stream drives the booking engine over an ordered directive
// stream: it sorts input by date, assigns output sequence numbers, and
// applies the configured error policy.
package stream

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"BeanLedger/internal/balance"
	"BeanLedger/internal/booking"
	"BeanLedger/internal/inventory"
	"BeanLedger/internal/model"
	"BeanLedger/internal/observability"
)

// Mode selects what happens when a directive fails to book.
type Mode int

const (
	// FailFast aborts the run on the first booking error.
	FailFast Mode = iota
	// CollectAndContinue records the error and keeps booking; the failed
	// directive is emitted with its error attached.
	CollectAndContinue
)

func (m Mode) String() string {
	if m == CollectAndContinue {
		return "collect"
	}
	return "fail-fast"
}

// Booked is one record of the output stream. Sequence is dense and strictly
// increasing within a run. Err is set when the directive failed to book; in
// that case Directive carries the input (or, for assertions, the annotated
// failure).
type Booked struct {
	RunID     uuid.UUID
	Sequence  int64
	Directive model.Directive
	Err       error
}

// Result summarizes one run.
type Result struct {
	RunID  uuid.UUID
	Booked []Booked
	Errors []error
}

// Processor feeds directives through the engine one at a time. Date order is
// restored with a stable sort, so same-day directives keep their input order.
type Processor struct {
	engine  *booking.Engine
	mode    Mode
	log     zerolog.Logger
	metrics *observability.Metrics
	out     chan<- Booked
}

// Option configures a Processor.
type Option func(*Processor)

// WithOutput attaches a channel that receives every Booked record as it is
// produced. Sends block; the run stalls until the consumer drains.
func WithOutput(ch chan<- Booked) Option {
	return func(p *Processor) { p.out = ch }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Processor) { p.metrics = m }
}

func New(engine *booking.Engine, mode Mode, log zerolog.Logger, opts ...Option) *Processor {
	p := &Processor{engine: engine, mode: mode, log: log}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run books every directive in date order and returns the output stream.
// Under FailFast the returned error is the first booking failure; under
// CollectAndContinue the error is only non-nil when the context is
// cancelled, and booking failures land in Result.Errors.
func (p *Processor) Run(ctx context.Context, directives []model.Directive) (*Result, error) {
	runID := uuid.New()
	result := &Result{RunID: runID}

	ordered := make([]model.Directive, len(directives))
	copy(ordered, directives)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	p.log.Info().
		Str("run_id", runID.String()).
		Int("directives", len(ordered)).
		Str("mode", p.mode.String()).
		Msg("booking run started")
	if p.metrics != nil {
		p.metrics.RunsStarted.Inc()
	}

	var sequence int64
	for _, d := range ordered {
		if err := ctx.Err(); err != nil {
			p.finish(result, "aborted")
			return result, err
		}

		start := time.Now()
		kind := d.Body.Kind().String()
		booked, err := p.engine.Process(d)

		if p.metrics != nil {
			p.metrics.BookingDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
		}

		for i, out := range booked {
			rec := Booked{RunID: runID, Sequence: sequence, Directive: out}
			// The error rides on the last record the directive produced.
			if err != nil && i == len(booked)-1 {
				rec.Err = err
			}
			sequence++
			if sendErr := p.emit(ctx, result, rec); sendErr != nil {
				p.finish(result, "aborted")
				return result, sendErr
			}
		}
		if err != nil && len(booked) == 0 {
			rec := Booked{RunID: runID, Sequence: sequence, Directive: d, Err: err}
			sequence++
			if sendErr := p.emit(ctx, result, rec); sendErr != nil {
				p.finish(result, "aborted")
				return result, sendErr
			}
		}

		if err != nil {
			result.Errors = append(result.Errors, err)
			if p.metrics != nil {
				p.metrics.DirectivesFailed.WithLabelValues(kind, errorReason(err)).Inc()
			}
			p.log.Warn().
				Str("run_id", runID.String()).
				Str("kind", kind).
				Str("date", d.Date.String()).
				Err(err).
				Msg("directive failed to book")
			if p.mode == FailFast {
				p.finish(result, "aborted")
				return result, err
			}
			continue
		}

		if p.metrics != nil {
			p.metrics.DirectivesBooked.WithLabelValues(kind).Inc()
			p.metrics.StreamSequence.Set(float64(sequence))
		}
	}

	outcome := "clean"
	if len(result.Errors) > 0 {
		outcome = "with_errors"
	}
	p.finish(result, outcome)
	return result, nil
}

func (p *Processor) emit(ctx context.Context, result *Result, rec Booked) error {
	result.Booked = append(result.Booked, rec)
	if p.out == nil {
		return nil
	}
	select {
	case p.out <- rec:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Processor) finish(result *Result, outcome string) {
	if p.metrics != nil {
		p.metrics.RunsCompleted.WithLabelValues(outcome).Inc()
	}
	p.log.Info().
		Str("run_id", result.RunID.String()).
		Int("booked", len(result.Booked)).
		Int("errors", len(result.Errors)).
		Str("outcome", outcome).
		Msg("booking run finished")
}

func errorReason(err error) string {
	switch err.(type) {
	case *booking.UnknownAccountError:
		return "unknown_account"
	case *booking.DuplicateOpenError:
		return "duplicate_open"
	case *booking.CurrencyConstraintError:
		return "currency_constraint"
	case *booking.AssertionError:
		return "assertion_failed"
	case *booking.IncompleteCostError:
		return "incomplete_cost"
	case *balance.UnbalancedError:
		return "unbalanced"
	case *inventory.AmbiguousMatchError:
		return "ambiguous_match"
	case *inventory.InsufficientLotError:
		return "insufficient_lot"
	case *inventory.InvalidBookingError:
		return "invalid_booking"
	default:
		return "booking_failed"
	}
}
