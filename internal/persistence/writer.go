package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// LedgerWriter writes booked directives and price observations to Postgres
// using multi-row INSERT. Writes are idempotent on (run_id, sequence), so a
// replayed batch is a no-op.
type LedgerWriter struct {
	db *sql.DB
}

// DirectiveRow represents a row in ledger.booked_directives.
type DirectiveRow struct {
	RunID     string
	Sequence  int64
	Date      string
	Kind      string
	Payload   []byte // wire JSON of the booked directive
	BookError *string
}

// PriceRow represents a row in ledger.price_observations.
type PriceRow struct {
	RunID         string
	Sequence      int64
	Currency      string
	Date          string
	Number        string
	QuoteCurrency string
}

func NewLedgerWriter(db *sql.DB) *LedgerWriter {
	return &LedgerWriter{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// WriteDirectiveBatch writes a batch of booked directives.
func (w *LedgerWriter) WriteDirectiveBatch(ctx context.Context, tx execer, rows []DirectiveRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO ledger.booked_directives
		(run_id, sequence, date, kind, payload, book_error)
		VALUES `

	values := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*6)

	for i, r := range rows {
		base := i * 6
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args, r.RunID, r.Sequence, r.Date, r.Kind, r.Payload, r.BookError)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (run_id, sequence) DO NOTHING"

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// WritePriceBatch writes a batch of price observations.
func (w *LedgerWriter) WritePriceBatch(ctx context.Context, tx execer, rows []PriceRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO ledger.price_observations
		(run_id, sequence, currency, date, number, quote_currency)
		VALUES `

	values := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*6)

	for i, r := range rows {
		base := i * 6
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6,
		))
		args = append(args, r.RunID, r.Sequence, r.Currency, r.Date, r.Number, r.QuoteCurrency)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (run_id, sequence) DO NOTHING"

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
