package booking_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"BeanLedger/internal/balance"
	"BeanLedger/internal/booking"
	"BeanLedger/internal/inventory"
	"BeanLedger/internal/model"
)

func newEngine() *booking.Engine {
	return booking.NewEngine(zerolog.Nop())
}

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

func openAccount(t *testing.T, e *booking.Engine, date, account string, method model.Booking, currencies ...string) {
	t.Helper()
	d := model.Directive{Date: day(t, date), Body: &model.Open{
		Account:    account,
		Currencies: currencies,
		Booking:    method,
	}}
	if _, err := e.Process(d); err != nil {
		t.Fatalf("open %s: %v", account, err)
	}
}

func txn(t *testing.T, date string, postings ...model.Posting) model.Directive {
	t.Helper()
	return model.Directive{Date: day(t, date), Body: &model.Transaction{
		Flag:     "*",
		Postings: postings,
	}}
}

func mustProcess(t *testing.T, e *booking.Engine, d model.Directive) []model.Directive {
	t.Helper()
	out, err := e.Process(d)
	if err != nil {
		t.Fatalf("process %s directive: %v", d.Body.Kind(), err)
	}
	return out
}

func bookedTxn(t *testing.T, d model.Directive) *model.Transaction {
	t.Helper()
	body, ok := d.Body.(*model.Transaction)
	if !ok {
		t.Fatalf("directive body is %s, want transaction", d.Body.Kind())
	}
	return body
}

// ============================================================================
// Test: plain transactions and balance assertions
// ============================================================================

func TestBookTransaction_Simple(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)

	out := mustProcess(t, e, txn(t, "2020-01-02",
		model.Posting{Account: "Assets:Checking", Units: amt("100", "USD")},
		model.Posting{Account: "Equity:Opening", Units: amt("-100", "USD")},
	))
	if len(out) != 1 {
		t.Fatalf("got %d output directives, want 1", len(out))
	}

	assertion := model.Directive{Date: day(t, "2020-01-03"), Body: &model.Balance{
		Account: "Assets:Checking",
		Amount:  amt("100", "USD"),
	}}
	if _, err := e.Process(assertion); err != nil {
		t.Errorf("assertion at 100 USD should pass: %v", err)
	}
}

func TestBalanceAssertion_FailureCarriesDiff(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)
	mustProcess(t, e, txn(t, "2020-01-02",
		model.Posting{Account: "Assets:Checking", Units: amt("100", "USD")},
		model.Posting{Account: "Equity:Opening", Units: amt("-100", "USD")},
	))

	assertion := model.Directive{Date: day(t, "2020-01-03"), Body: &model.Balance{
		Account: "Assets:Checking",
		Amount:  amt("100.01", "USD"),
	}}
	out, err := e.Process(assertion)

	var assertErr *booking.AssertionError
	if !errors.As(err, &assertErr) {
		t.Fatalf("expected AssertionError, got %v", err)
	}
	if !assertErr.Diff.Number.Equal(dec("-0.01")) {
		t.Errorf("diff = %s, want -0.01", assertErr.Diff.Number)
	}

	if len(out) != 1 {
		t.Fatalf("got %d output directives, want 1", len(out))
	}
	failed := out[0].Body.(*model.Balance)
	if failed.DiffAmount == nil || !failed.DiffAmount.Number.Equal(dec("-0.01")) {
		t.Errorf("emitted assertion should carry diff -0.01, got %v", failed.DiffAmount)
	}
}

func TestBalanceAssertion_ExplicitTolerance(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)
	mustProcess(t, e, txn(t, "2020-01-02",
		model.Posting{Account: "Assets:Checking", Units: amt("100", "USD")},
		model.Posting{Account: "Equity:Opening", Units: amt("-100", "USD")},
	))

	tol := dec("0.05")
	assertion := model.Directive{Date: day(t, "2020-01-03"), Body: &model.Balance{
		Account:   "Assets:Checking",
		Amount:    amt("100.01", "USD"),
		Tolerance: &tol,
	}}
	if _, err := e.Process(assertion); err != nil {
		t.Errorf("assertion within explicit tolerance should pass: %v", err)
	}
}

// ============================================================================
// Test: elided units
// ============================================================================

func TestElidedUnits_ResolvedFromResidual(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Expenses:Food", model.BookingUnknown)

	out := mustProcess(t, e, txn(t, "2020-01-02",
		model.Posting{Account: "Expenses:Food", Units: amt("33.34", "USD")},
		model.Posting{Account: "Assets:Checking"},
	))

	booked := bookedTxn(t, out[0])
	got := booked.Postings[1].Units
	if got.Currency != "USD" || !got.Number.Equal(dec("-33.34")) {
		t.Errorf("resolved units = %s, want -33.34 USD", got)
	}
}

func TestElidedUnits_MoreThanOneRejected(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Expenses:Food", model.BookingUnknown)

	_, err := e.Process(txn(t, "2020-01-02",
		model.Posting{Account: "Expenses:Food", Units: amt("10", "USD")},
		model.Posting{Account: "Assets:Checking"},
		model.Posting{Account: "Assets:Checking"},
	))
	if !errors.Is(err, booking.ErrMultipleElidedPostings) {
		t.Errorf("expected ErrMultipleElidedPostings, got %v", err)
	}
	var unbalanced *balance.UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Errorf("multiple elided postings should match UnbalancedError, got %v", err)
	}
}

func TestElidedUnits_TwoResidualCurrenciesRejected(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Multi", model.BookingUnknown)

	_, err := e.Process(txn(t, "2020-01-02",
		model.Posting{Account: "Assets:Multi", Units: amt("10", "USD")},
		model.Posting{Account: "Assets:Multi", Units: amt("5", "EUR")},
		model.Posting{Account: "Assets:Multi"},
	))

	var unbalanced *balance.UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedError, got %v", err)
	}
	if len(unbalanced.Residuals) != 2 {
		t.Errorf("got %d residual currencies, want 2", len(unbalanced.Residuals))
	}
}

// ============================================================================
// Test: rollback and account lifecycle
// ============================================================================

func TestUnbalancedTransaction_LeavesNoTrace(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Expenses:Food", model.BookingUnknown)

	_, err := e.Process(txn(t, "2020-01-02",
		model.Posting{Account: "Expenses:Food", Units: amt("100", "USD")},
		model.Posting{Account: "Assets:Checking", Units: amt("-90", "USD")},
	))

	var unbalanced *balance.UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedError, got %v", err)
	}

	unlock := e.Registry().LockAccounts("Assets:Checking", "Expenses:Food")
	defer unlock()
	if got := e.Registry().NetPosition("Expenses:Food", "USD"); !got.IsZero() {
		t.Errorf("Expenses:Food position = %s after rollback, want 0", got)
	}
	if got := e.Registry().NetPosition("Assets:Checking", "USD"); !got.IsZero() {
		t.Errorf("Assets:Checking position = %s after rollback, want 0", got)
	}
}

func TestTransaction_UnknownAccountRejected(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)

	_, err := e.Process(txn(t, "2020-01-02",
		model.Posting{Account: "Assets:Checking", Units: amt("10", "USD")},
		model.Posting{Account: "Expenses:Nowhere", Units: amt("-10", "USD")},
	))

	var unknown *booking.UnknownAccountError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownAccountError, got %v", err)
	}
	if unknown.Account != "Expenses:Nowhere" || unknown.Closed {
		t.Errorf("error = %+v, want open failure for Expenses:Nowhere", unknown)
	}
}

func TestTransaction_ClosedAccountRejected(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)

	closeDir := model.Directive{Date: day(t, "2020-06-01"), Body: &model.Close{Account: "Assets:Checking"}}
	mustProcess(t, e, closeDir)

	_, err := e.Process(txn(t, "2020-07-01",
		model.Posting{Account: "Assets:Checking", Units: amt("10", "USD")},
		model.Posting{Account: "Equity:Opening", Units: amt("-10", "USD")},
	))

	var unknown *booking.UnknownAccountError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownAccountError, got %v", err)
	}
	if !unknown.Closed {
		t.Error("error should report the account as closed")
	}
}

func TestOpen_DuplicateRejected(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)

	_, err := e.Process(model.Directive{Date: day(t, "2020-02-01"), Body: &model.Open{Account: "Assets:Checking"}})
	var dup *booking.DuplicateOpenError
	if !errors.As(err, &dup) {
		t.Errorf("expected DuplicateOpenError, got %v", err)
	}
}

func TestOpen_UnknownBookingResolvesToStrict(t *testing.T) {
	e := newEngine()
	out := mustProcess(t, e, model.Directive{Date: day(t, "2020-01-01"), Body: &model.Open{
		Account: "Assets:Stock",
		Booking: model.BookingUnknown,
	}})

	opened := out[0].Body.(*model.Open)
	if opened.Booking != model.BookingStrict {
		t.Errorf("emitted booking = %s, want STRICT", opened.Booking)
	}
}

func TestTransaction_CurrencyConstraintEnforced(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown, "USD")
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)

	_, err := e.Process(txn(t, "2020-01-02",
		model.Posting{Account: "Assets:Checking", Units: amt("10", "EUR")},
		model.Posting{Account: "Equity:Opening", Units: amt("-10", "EUR")},
	))

	var constraint *booking.CurrencyConstraintError
	if !errors.As(err, &constraint) {
		t.Fatalf("expected CurrencyConstraintError, got %v", err)
	}
	if constraint.Currency != "EUR" {
		t.Errorf("constraint currency = %s, want EUR", constraint.Currency)
	}
}

// ============================================================================
// Test: cost lots through the engine
// ============================================================================

func buyStock(t *testing.T, e *booking.Engine, date, qty, costNumber string) {
	t.Helper()
	n := dec(costNumber)
	total := dec(qty).Mul(n).Neg()
	mustProcess(t, e, txn(t, date,
		model.Posting{
			Account:  "Assets:Stock",
			Units:    amt(qty, "HOOL"),
			CostSpec: &model.CostSpec{Number: &n, Currency: "USD"},
		},
		model.Posting{Account: "Assets:Cash", Units: model.NewAmount(total, "USD")},
	))
}

func TestFIFOReduction_ExpandsPerConsumedLot(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Stock", model.BookingFIFO)
	openAccount(t, e, "2020-01-01", "Assets:Cash", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Income:PnL", model.BookingUnknown)

	buyStock(t, e, "2020-01-01", "10", "100")
	buyStock(t, e, "2020-02-01", "5", "110")

	price := amt("120", "USD")
	out := mustProcess(t, e, txn(t, "2020-03-01",
		model.Posting{
			Account:  "Assets:Stock",
			Units:    amt("-12", "HOOL"),
			CostSpec: &model.CostSpec{},
			Price:    &price,
		},
		model.Posting{Account: "Assets:Cash", Units: amt("1440", "USD")},
		model.Posting{Account: "Income:PnL"},
	))

	booked := bookedTxn(t, out[0])
	var stock []model.Posting
	for _, p := range booked.Postings {
		if p.Account == "Assets:Stock" {
			stock = append(stock, p)
		}
	}
	if len(stock) != 2 {
		t.Fatalf("got %d stock postings, want 2", len(stock))
	}
	if !stock[0].Units.Number.Equal(dec("-10")) || !stock[0].Cost.Number.Equal(dec("100")) {
		t.Errorf("first reduction = %s %s, want -10 at 100", stock[0].Units, stock[0].Cost)
	}
	if !stock[1].Units.Number.Equal(dec("-2")) || !stock[1].Cost.Number.Equal(dec("110")) {
		t.Errorf("second reduction = %s %s, want -2 at 110", stock[1].Units, stock[1].Cost)
	}

	unlock := e.Registry().LockAccounts("Assets:Stock")
	defer unlock()
	lots := e.Registry().Lots("Assets:Stock")
	if len(lots) != 1 || !lots[0].Units.Equal(dec("3")) || !lots[0].Cost.Number.Equal(dec("110")) {
		t.Errorf("remaining lots = %v, want single lot of 3 at 110", lots)
	}
}

func TestStrictReduction_AmbiguousRollsBack(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Stock", model.BookingStrict)
	openAccount(t, e, "2020-01-01", "Assets:Cash", model.BookingUnknown)

	buyStock(t, e, "2020-01-01", "10", "100")
	buyStock(t, e, "2020-02-01", "5", "110")

	_, err := e.Process(txn(t, "2020-03-01",
		model.Posting{
			Account:  "Assets:Stock",
			Units:    amt("-3", "HOOL"),
			CostSpec: &model.CostSpec{},
		},
		model.Posting{Account: "Assets:Cash", Units: amt("330", "USD")},
	))

	var ambiguous *inventory.AmbiguousMatchError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousMatchError, got %v", err)
	}
	if ambiguous.Matches != 2 {
		t.Errorf("matches = %d, want 2", ambiguous.Matches)
	}

	unlock := e.Registry().LockAccounts("Assets:Stock", "Assets:Cash")
	defer unlock()
	if got := e.Registry().NetPosition("Assets:Stock", "HOOL"); !got.Equal(dec("15")) {
		t.Errorf("stock position = %s after rollback, want 15", got)
	}
	if got := e.Registry().NetPosition("Assets:Cash", "USD"); !got.Equal(dec("-1550")) {
		t.Errorf("cash position = %s after rollback, want -1550", got)
	}
}

// ============================================================================
// Test: pad and balance
// ============================================================================

func TestPad_SynthesizesTransferAtNextBalance(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)

	padDir := model.Directive{Date: day(t, "2020-01-02"), Body: &model.Pad{
		Account:       "Assets:Checking",
		SourceAccount: "Equity:Opening",
	}}
	mustProcess(t, e, padDir)

	assertion := model.Directive{Date: day(t, "2020-01-05"), Body: &model.Balance{
		Account: "Assets:Checking",
		Amount:  amt("1000", "USD"),
	}}
	out := mustProcess(t, e, assertion)

	if len(out) != 2 {
		t.Fatalf("got %d output directives, want padding transaction plus assertion", len(out))
	}
	padTxn := bookedTxn(t, out[0])
	if padTxn.Flag != "P" {
		t.Errorf("padding flag = %q, want P", padTxn.Flag)
	}
	if out[0].Date != day(t, "2020-01-02") {
		t.Errorf("padding date = %s, want the pad directive's date", out[0].Date)
	}
	if _, ok := out[1].Body.(*model.Balance); !ok {
		t.Errorf("second output is %s, want the assertion", out[1].Body.Kind())
	}

	unlock := e.Registry().LockAccounts("Assets:Checking", "Equity:Opening")
	defer unlock()
	if got := e.Registry().NetPosition("Assets:Checking", "USD"); !got.Equal(dec("1000")) {
		t.Errorf("padded position = %s, want 1000", got)
	}
	if got := e.Registry().NetPosition("Equity:Opening", "USD"); !got.Equal(dec("-1000")) {
		t.Errorf("source position = %s, want -1000", got)
	}
}

func TestPad_ConsumedByFirstBalance(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:Checking", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Equity:Opening", model.BookingUnknown)

	mustProcess(t, e, model.Directive{Date: day(t, "2020-01-02"), Body: &model.Pad{
		Account:       "Assets:Checking",
		SourceAccount: "Equity:Opening",
	}})
	mustProcess(t, e, model.Directive{Date: day(t, "2020-01-05"), Body: &model.Balance{
		Account: "Assets:Checking",
		Amount:  amt("1000", "USD"),
	}})

	// The pad is spent; a later failing assertion must not pad again.
	_, err := e.Process(model.Directive{Date: day(t, "2020-02-01"), Body: &model.Balance{
		Account: "Assets:Checking",
		Amount:  amt("2000", "USD"),
	}})
	var assertErr *booking.AssertionError
	if !errors.As(err, &assertErr) {
		t.Fatalf("expected AssertionError, got %v", err)
	}
}

// ============================================================================
// Test: prices
// ============================================================================

func TestPriceDirective_RecordedAndQueried(t *testing.T) {
	e := newEngine()
	mustProcess(t, e, model.Directive{Date: day(t, "2020-01-01"), Body: &model.Price{
		Currency: "HOOL",
		Amount:   amt("100", "USD"),
	}})
	mustProcess(t, e, model.Directive{Date: day(t, "2020-03-01"), Body: &model.Price{
		Currency: "HOOL",
		Amount:   amt("120", "USD"),
	}})

	got, ok := e.Prices().PriceAt("HOOL", day(t, "2020-02-15"))
	if !ok || !got.Number.Equal(dec("100")) {
		t.Errorf("price at 2020-02-15 = %s (ok=%v), want 100 USD", got, ok)
	}
	got, ok = e.Prices().PriceAt("HOOL", day(t, "2020-03-01"))
	if !ok || !got.Number.Equal(dec("120")) {
		t.Errorf("price at 2020-03-01 = %s (ok=%v), want 120 USD", got, ok)
	}
	if _, ok := e.Prices().PriceAt("HOOL", day(t, "2019-12-31")); ok {
		t.Error("no price should exist before the first observation")
	}
}

func TestPostingPriceAnnotation_Recorded(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:EUR", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Assets:USD", model.BookingUnknown)

	price := amt("1.10", "USD")
	mustProcess(t, e, txn(t, "2020-01-02",
		model.Posting{Account: "Assets:EUR", Units: amt("100", "EUR"), Price: &price},
		model.Posting{Account: "Assets:USD", Units: amt("-110", "USD")},
	))

	got, ok := e.Prices().PriceAt("EUR", day(t, "2020-01-02"))
	if !ok || !got.Number.Equal(dec("1.10")) {
		t.Errorf("price from annotation = %s (ok=%v), want 1.10 USD", got, ok)
	}
}

func TestPostingPriceAnnotation_DiscardedOnRollback(t *testing.T) {
	e := newEngine()
	openAccount(t, e, "2020-01-01", "Assets:EUR", model.BookingUnknown)
	openAccount(t, e, "2020-01-01", "Assets:USD", model.BookingUnknown)

	price := amt("1.10", "USD")
	_, err := e.Process(txn(t, "2020-01-02",
		model.Posting{Account: "Assets:EUR", Units: amt("100", "EUR"), Price: &price},
		model.Posting{Account: "Assets:USD", Units: amt("-200", "USD")},
	))

	var unbalanced *balance.UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedError, got %v", err)
	}

	// A rejected transaction leaves nothing behind, price history included.
	if got, ok := e.Prices().PriceAt("EUR", day(t, "2020-01-02")); ok {
		t.Errorf("price history has %s from a rejected transaction, want none", got)
	}
}
