package stream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"BeanLedger/internal/booking"
	"BeanLedger/internal/model"
	"BeanLedger/internal/stream"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(number, currency string) model.Amount {
	return model.NewAmount(dec(number), currency)
}

func day(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func open(t *testing.T, date, account string) model.Directive {
	t.Helper()
	return model.Directive{Date: day(t, date), Body: &model.Open{Account: account}}
}

func transfer(t *testing.T, date, from, to, number, currency string) model.Directive {
	t.Helper()
	return model.Directive{Date: day(t, date), Body: &model.Transaction{
		Flag: "*",
		Postings: []model.Posting{
			{Account: to, Units: amt(number, currency)},
			{Account: from, Units: amt(number, currency).Neg()},
		},
	}}
}

func newProcessor(mode stream.Mode, opts ...stream.Option) *stream.Processor {
	return stream.New(booking.NewEngine(zerolog.Nop()), mode, zerolog.Nop(), opts...)
}

// ============================================================================
// Test: ordering and sequencing
// ============================================================================

func TestRun_SortsByDateKeepingInputOrderWithinDay(t *testing.T) {
	p := newProcessor(stream.FailFast)

	// Inputs arrive out of date order; the transaction predates the
	// assertion but follows it in the slice.
	directives := []model.Directive{
		{Date: day(t, "2020-01-05"), Body: &model.Balance{Account: "Assets:A", Amount: amt("10", "USD")}},
		transfer(t, "2020-01-02", "Assets:B", "Assets:A", "10", "USD"),
		open(t, "2020-01-01", "Assets:A"),
		open(t, "2020-01-01", "Assets:B"),
	}

	result, err := p.Run(context.Background(), directives)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Booked) != 4 {
		t.Fatalf("got %d booked records, want 4", len(result.Booked))
	}

	kinds := make([]model.Kind, 0, len(result.Booked))
	for i, rec := range result.Booked {
		if rec.Sequence != int64(i) {
			t.Errorf("record %d has sequence %d, want dense ordering", i, rec.Sequence)
		}
		if rec.RunID != result.RunID {
			t.Errorf("record %d carries run %s, want %s", i, rec.RunID, result.RunID)
		}
		kinds = append(kinds, rec.Directive.Body.Kind())
	}
	want := []model.Kind{model.KindOpen, model.KindOpen, model.KindTransaction, model.KindBalance}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("record %d is %s, want %s", i, kinds[i], want[i])
		}
	}

	// Same-day opens keep their input order.
	if got := result.Booked[0].Directive.Body.(*model.Open).Account; got != "Assets:A" {
		t.Errorf("first open is %s, want Assets:A", got)
	}
}

// ============================================================================
// Test: error policy
// ============================================================================

func TestRun_FailFastStopsAtFirstError(t *testing.T) {
	p := newProcessor(stream.FailFast)

	directives := []model.Directive{
		open(t, "2020-01-01", "Assets:A"),
		transfer(t, "2020-01-02", "Assets:Missing", "Assets:A", "10", "USD"),
		open(t, "2020-01-03", "Assets:B"),
	}

	result, err := p.Run(context.Background(), directives)
	var unknown *booking.UnknownAccountError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownAccountError, got %v", err)
	}
	// The open, then the failed transaction record.
	if len(result.Booked) != 2 {
		t.Fatalf("got %d booked records, want 2", len(result.Booked))
	}
	if result.Booked[1].Err == nil {
		t.Error("failed directive's record should carry the error")
	}
	if len(result.Errors) != 1 {
		t.Errorf("got %d collected errors, want 1", len(result.Errors))
	}
}

func TestRun_CollectAndContinueKeepsBooking(t *testing.T) {
	p := newProcessor(stream.CollectAndContinue)

	directives := []model.Directive{
		open(t, "2020-01-01", "Assets:A"),
		open(t, "2020-01-01", "Assets:B"),
		transfer(t, "2020-01-02", "Assets:Missing", "Assets:A", "10", "USD"),
		transfer(t, "2020-01-03", "Assets:B", "Assets:A", "20", "USD"),
	}

	result, err := p.Run(context.Background(), directives)
	if err != nil {
		t.Fatalf("collect mode should not return a booking error: %v", err)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(result.Errors))
	}
	if len(result.Booked) != 4 {
		t.Fatalf("got %d booked records, want 4", len(result.Booked))
	}

	last := result.Booked[3]
	if last.Err != nil {
		t.Errorf("the valid transaction after the failure should book cleanly: %v", last.Err)
	}
	if last.Directive.Body.Kind() != model.KindTransaction {
		t.Errorf("last record is %s, want transaction", last.Directive.Body.Kind())
	}
}

func TestRun_FailedAssertionEmitsAnnotatedDirective(t *testing.T) {
	p := newProcessor(stream.CollectAndContinue)

	directives := []model.Directive{
		open(t, "2020-01-01", "Assets:A"),
		{Date: day(t, "2020-01-02"), Body: &model.Balance{Account: "Assets:A", Amount: amt("50.00", "USD")}},
	}

	result, err := p.Run(context.Background(), directives)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Booked) != 2 {
		t.Fatalf("got %d booked records, want 2", len(result.Booked))
	}

	rec := result.Booked[1]
	if rec.Err == nil {
		t.Fatal("assertion record should carry its error")
	}
	failed := rec.Directive.Body.(*model.Balance)
	if failed.DiffAmount == nil || !failed.DiffAmount.Number.Equal(dec("-50.00")) {
		t.Errorf("annotated diff = %v, want -50.00", failed.DiffAmount)
	}
}

// ============================================================================
// Test: output channel and cancellation
// ============================================================================

func TestRun_StreamsToOutputChannel(t *testing.T) {
	out := make(chan stream.Booked, 8)
	p := newProcessor(stream.FailFast, stream.WithOutput(out))

	directives := []model.Directive{
		open(t, "2020-01-01", "Assets:A"),
		open(t, "2020-01-01", "Assets:B"),
		transfer(t, "2020-01-02", "Assets:B", "Assets:A", "10", "USD"),
	}

	result, err := p.Run(context.Background(), directives)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	close(out)

	var got []stream.Booked
	for rec := range out {
		got = append(got, rec)
	}
	if len(got) != len(result.Booked) {
		t.Fatalf("channel carried %d records, result has %d", len(got), len(result.Booked))
	}
	for i := range got {
		if got[i].Sequence != result.Booked[i].Sequence {
			t.Errorf("record %d: channel sequence %d != result sequence %d",
				i, got[i].Sequence, result.Booked[i].Sequence)
		}
	}
}

func TestRun_CancelledContextAborts(t *testing.T) {
	p := newProcessor(stream.FailFast)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Run(ctx, []model.Directive{open(t, "2020-01-01", "Assets:A")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(result.Booked) != 0 {
		t.Errorf("got %d booked records after immediate cancel, want 0", len(result.Booked))
	}
}
