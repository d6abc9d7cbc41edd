package model_test

import (
	"BeanLedger/internal/model"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// ============================================================================
// Test: Date
// ============================================================================

func TestParseDate(t *testing.T) {
	d, err := model.ParseDate("2020-02-29")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d != model.NewDate(2020, 2, 29) {
		t.Errorf("got %v, want 2020-02-29", d)
	}

	if _, err := model.ParseDate("2020-13-01"); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestDateCompare(t *testing.T) {
	a := model.NewDate(2020, 1, 31)
	b := model.NewDate(2020, 2, 1)

	if !a.Before(b) {
		t.Error("2020-01-31 should be before 2020-02-01")
	}
	if a.Compare(a) != 0 {
		t.Error("date should compare equal to itself")
	}
	if !b.After(a) {
		t.Error("2020-02-01 should be after 2020-01-31")
	}
}

// ============================================================================
// Test: MetaValue variants
// ============================================================================

func TestMetaValue_MatchingVariant(t *testing.T) {
	v := model.NumberValue(decimal.RequireFromString("3.14"))

	n, err := v.Number()
	if err != nil {
		t.Fatalf("Number() failed: %v", err)
	}
	if !n.Equal(decimal.RequireFromString("3.14")) {
		t.Errorf("got %s, want 3.14", n)
	}
}

func TestMetaValue_TypeMismatch(t *testing.T) {
	v := model.TextValue("hello")

	_, err := v.Bool()
	if err == nil {
		t.Fatal("expected TypeMismatchError")
	}

	var tm *model.TypeMismatchError
	if !errors.As(err, &tm) {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	}
	if tm.Want != model.MetaBoolean || tm.Got != model.MetaText {
		t.Errorf("got want=%s got=%s", tm.Want, tm.Got)
	}
}

func TestMetaValue_AllKindsDistinct(t *testing.T) {
	values := []model.MetaValue{
		model.TextValue("t"),
		model.AccountValue("Assets:Cash"),
		model.CurrencyValue("USD"),
		model.TagValue("trip"),
		model.LinkValue("invoice-1"),
		model.FlagValue("!"),
		model.DateValue(model.NewDate(2020, 1, 1)),
		model.BoolValue(true),
		model.IntValue(7),
		model.NumberValue(decimal.NewFromInt(1)),
		model.AmountValue(model.NewAmount(decimal.NewFromInt(1), "USD")),
	}

	if len(values) != 11 {
		t.Fatalf("MetaValue must have 11 variants, got %d", len(values))
	}

	seen := make(map[model.MetaKind]bool)
	for _, v := range values {
		if seen[v.Kind()] {
			t.Errorf("duplicate kind %s", v.Kind())
		}
		seen[v.Kind()] = true
	}
}

// ============================================================================
// Test: Meta ordering policy
// ============================================================================

func TestMeta_LastOccurrenceWins(t *testing.T) {
	var m model.Meta
	m.Add("note", model.TextValue("first"))
	m.Add("other", model.IntValue(1))
	m.Add("note", model.TextValue("second"))

	v, ok := m.Get("note")
	if !ok {
		t.Fatal("key should be present")
	}
	s, err := v.Text()
	if err != nil {
		t.Fatalf("Text() failed: %v", err)
	}
	if s != "second" {
		t.Errorf("lookup should return last occurrence, got %q", s)
	}

	// Iteration keeps every occurrence in insertion order.
	if len(m) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(m))
	}
	if m[0].Key != "note" || m[1].Key != "other" || m[2].Key != "note" {
		t.Error("iteration order should preserve insertion order")
	}
}

// ============================================================================
// Test: CostSpec matching
// ============================================================================

func TestCostSpec_Matches(t *testing.T) {
	cost := model.Cost{
		Number:   decimal.RequireFromString("100.00"),
		Currency: "USD",
		Date:     model.NewDate(2020, 1, 1),
		Label:    "lot-a",
	}

	empty := &model.CostSpec{}
	if !empty.Matches(cost) {
		t.Error("empty spec should match any cost")
	}

	n := decimal.RequireFromString("100")
	byNumber := &model.CostSpec{Number: &n}
	if !byNumber.Matches(cost) {
		t.Error("100 should match 100.00 numerically")
	}

	wrong := decimal.RequireFromString("110")
	byWrongNumber := &model.CostSpec{Number: &wrong}
	if byWrongNumber.Matches(cost) {
		t.Error("110 should not match a 100.00 lot")
	}

	d := model.NewDate(2020, 2, 1)
	byDate := &model.CostSpec{Date: &d}
	if byDate.Matches(cost) {
		t.Error("different date should not match")
	}

	byLabel := &model.CostSpec{Label: "lot-a", Currency: "USD"}
	if !byLabel.Matches(cost) {
		t.Error("label+currency should match")
	}
}

// ============================================================================
// Test: Directive union
// ============================================================================

func TestDirective_UnionExhaustive(t *testing.T) {
	bodies := []model.Body{
		&model.Transaction{},
		&model.Open{},
		&model.Close{},
		&model.Commodity{},
		&model.Pad{},
		&model.Balance{},
		&model.Note{},
		&model.Event{},
		&model.Query{},
		&model.Price{},
		&model.Document{},
		&model.Custom{},
	}

	seen := make(map[model.Kind]bool)
	for _, b := range bodies {
		if seen[b.Kind()] {
			t.Errorf("duplicate kind %s", b.Kind())
		}
		seen[b.Kind()] = true
	}
	if len(seen) != 12 {
		t.Errorf("directive union should cover 12 kinds, got %d", len(seen))
	}
}

func TestTransaction_Accounts(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Expenses:Food"},
			{Account: "Assets:Cash"},
			{Account: "Expenses:Food"},
		},
	}

	got := txn.Accounts()
	want := []string{"Assets:Cash", "Expenses:Food"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestTransaction_CloneIsDeep(t *testing.T) {
	cost := model.Cost{Number: decimal.NewFromInt(100), Currency: "USD"}
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Assets:Stock", Cost: &cost},
		},
	}

	cp := txn.Clone()
	cp.Postings[0].Cost.Currency = "EUR"

	if txn.Postings[0].Cost.Currency != "USD" {
		t.Error("Clone should not share cost pointers with the original")
	}
}

func TestParseBooking_RoundTrip(t *testing.T) {
	methods := []model.Booking{
		model.BookingStrict,
		model.BookingNone,
		model.BookingAverage,
		model.BookingFIFO,
		model.BookingLIFO,
	}
	for _, m := range methods {
		if got := model.ParseBooking(m.String()); got != m {
			t.Errorf("ParseBooking(%s) = %v, want %v", m, got, m)
		}
	}
	if model.ParseBooking("bogus") != model.BookingUnknown {
		t.Error("unknown method name should parse to UNKNOWN")
	}
}
