package persistence

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"BeanLedger/internal/model"
	"BeanLedger/internal/stream"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ============================================================================
// Test: booked record to row conversion
// ============================================================================

func TestToRows_Transaction(t *testing.T) {
	w := NewWorker(nil, nil, 10, time.Second, nil)

	runID := uuid.New()
	rec := stream.Booked{
		RunID:    runID,
		Sequence: 7,
		Directive: model.NewDirective(model.NewDate(2020, 3, 1), nil, &model.Transaction{
			Flag: "*",
			Postings: []model.Posting{
				{Account: "Assets:Cash", Units: model.NewAmount(dec("100"), "USD")},
				{Account: "Income:Salary", Units: model.NewAmount(dec("-100"), "USD")},
			},
		}),
	}

	row, priceRow, err := w.toRows(rec)
	if err != nil {
		t.Fatalf("toRows: %v", err)
	}
	if priceRow != nil {
		t.Errorf("price row = %+v, want nil for transaction", priceRow)
	}
	if row.RunID != runID.String() || row.Sequence != 7 {
		t.Errorf("identity = (%s, %d), want (%s, 7)", row.RunID, row.Sequence, runID)
	}
	if row.Kind != "transaction" || row.Date != "2020-03-01" {
		t.Errorf("kind/date = %s/%s, want transaction/2020-03-01", row.Kind, row.Date)
	}
	if row.BookError != nil {
		t.Errorf("book error = %q, want nil", *row.BookError)
	}
	if !json.Valid(row.Payload) {
		t.Errorf("payload is not valid JSON: %s", row.Payload)
	}
}

func TestToRows_PriceDirectiveEmitsObservation(t *testing.T) {
	w := NewWorker(nil, nil, 10, time.Second, nil)

	rec := stream.Booked{
		RunID:    uuid.New(),
		Sequence: 3,
		Directive: model.NewDirective(model.NewDate(2020, 5, 1), nil, &model.Price{
			Currency: "HOOL",
			Amount:   model.NewAmount(dec("120.5"), "USD"),
		}),
	}

	_, priceRow, err := w.toRows(rec)
	if err != nil {
		t.Fatalf("toRows: %v", err)
	}
	if priceRow == nil {
		t.Fatal("price row missing for price directive")
	}
	if priceRow.Currency != "HOOL" || priceRow.QuoteCurrency != "USD" {
		t.Errorf("currencies = %s/%s, want HOOL/USD", priceRow.Currency, priceRow.QuoteCurrency)
	}
	if priceRow.Number != "120.5" {
		t.Errorf("number = %s, want 120.5", priceRow.Number)
	}
	if priceRow.Date != "2020-05-01" {
		t.Errorf("date = %s, want 2020-05-01", priceRow.Date)
	}
}

func TestToRows_FailedDirectiveCarriesError(t *testing.T) {
	w := NewWorker(nil, nil, 10, time.Second, nil)

	rec := stream.Booked{
		RunID:    uuid.New(),
		Sequence: 1,
		Directive: model.NewDirective(model.NewDate(2020, 5, 2), nil, &model.Price{
			Currency: "HOOL",
			Amount:   model.NewAmount(dec("121"), "USD"),
		}),
		Err: errBooking("account Assets:X is not open"),
	}

	row, priceRow, err := w.toRows(rec)
	if err != nil {
		t.Fatalf("toRows: %v", err)
	}
	if row.BookError == nil || *row.BookError != "account Assets:X is not open" {
		t.Errorf("book error = %v, want booking message", row.BookError)
	}
	if priceRow != nil {
		t.Error("failed price directive must not produce an observation row")
	}
}

type errBooking string

func (e errBooking) Error() string { return string(e) }
