package stream_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"BeanLedger/internal/booking"
	"BeanLedger/internal/ingestion"
	"BeanLedger/internal/model"
	"BeanLedger/internal/stream"
)

// ============================================================================
// End to end: wire JSON in, booked wire JSON out
// ============================================================================

var pipelineInput = []string{
	`{"date": "2020-01-01", "kind": "open",
	  "open": {"account": "Assets:Cash", "currencies": ["USD"]}}`,
	`{"date": "2020-01-01", "kind": "open",
	  "open": {"account": "Assets:Stock", "currencies": ["HOOL"], "booking": "FIFO"}}`,
	`{"date": "2020-01-01", "kind": "open",
	  "open": {"account": "Income:PnL"}}`,
	`{"date": "2020-01-02", "kind": "price",
	  "price": {"currency": "HOOL", "amount": {"number": "100", "currency": "USD"}}}`,
	`{"date": "2020-01-02", "kind": "transaction",
	  "transaction": {"flag": "*", "narration": "buy", "postings": [
	    {"account": "Assets:Stock", "units": {"number": "10", "currency": "HOOL"},
	     "cost_spec": {"number": "100", "currency": "USD"}},
	    {"account": "Assets:Cash", "units": {"number": "-1000", "currency": "USD"}}
	  ]}}`,
	`{"date": "2020-01-03", "kind": "transaction",
	  "transaction": {"flag": "*", "narration": "sell", "postings": [
	    {"account": "Assets:Stock", "units": {"number": "-4", "currency": "HOOL"},
	     "cost_spec": {"currency": "USD"}, "price": {"number": "110", "currency": "USD"}},
	    {"account": "Assets:Cash", "units": {"number": "440", "currency": "USD"}},
	    {"account": "Income:PnL"}
	  ]}}`,
	`{"date": "2020-01-04", "kind": "balance",
	  "balance": {"account": "Assets:Cash", "amount": {"number": "-560", "currency": "USD"}}}`,
}

func TestPipeline_ParseBookEncode(t *testing.T) {
	directives := make([]model.Directive, 0, len(pipelineInput))
	for i, payload := range pipelineInput {
		d, err := ingestion.ParseDirective([]byte(payload))
		if err != nil {
			t.Fatalf("parse input %d: %v", i, err)
		}
		directives = append(directives, d)
	}

	engine := booking.NewEngine(zerolog.Nop())
	p := stream.New(engine, stream.FailFast, zerolog.Nop())

	result, err := p.Run(context.Background(), directives)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("errors = %v, want none", result.Errors)
	}
	if len(result.Booked) != len(directives) {
		t.Fatalf("booked %d records, want %d", len(result.Booked), len(directives))
	}

	// The sale consumed 4 HOOL from the FIFO lot; 6 remain at cost 100.
	registry := engine.Registry()
	lots := registry.Lots("Assets:Stock")
	if len(lots) != 1 {
		t.Fatalf("stock lots = %+v, want one remaining lot", lots)
	}
	if !lots[0].Units.Equal(decimal.RequireFromString("6")) {
		t.Errorf("remaining units = %s, want 6", lots[0].Units)
	}
	if !lots[0].Cost.Number.Equal(decimal.RequireFromString("100")) {
		t.Errorf("remaining cost = %s, want 100", lots[0].Cost.Number)
	}

	// The elided PnL posting resolved to the trading gain.
	var sale *model.Transaction
	for _, rec := range result.Booked {
		if txn, ok := rec.Directive.Body.(*model.Transaction); ok && txn.Narration == "sell" {
			sale = txn
		}
	}
	if sale == nil {
		t.Fatal("sale transaction missing from output")
	}
	var pnl *model.Posting
	for i := range sale.Postings {
		if sale.Postings[i].Account == "Income:PnL" {
			pnl = &sale.Postings[i]
		}
	}
	if pnl == nil {
		t.Fatal("PnL posting missing from booked sale")
	}
	if !pnl.Units.Number.Equal(decimal.RequireFromString("-40")) || pnl.Units.Currency != "USD" {
		t.Errorf("PnL units = %s, want -40 USD", pnl.Units)
	}

	// Every booked record encodes back to valid wire JSON.
	for _, rec := range result.Booked {
		data, err := ingestion.EncodeDirective(rec.Directive)
		if err != nil {
			t.Fatalf("encode seq %d: %v", rec.Sequence, err)
		}
		if _, err := ingestion.ParseDirective(data); err != nil {
			t.Fatalf("reparse seq %d: %v", rec.Sequence, err)
		}
	}
}
