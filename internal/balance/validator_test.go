package balance_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/balance"
	"BeanLedger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func amt(number, currency string) model.Amount {
	return model.NewAmount(dec(number), currency)
}

// ============================================================================
// Test: weights
// ============================================================================

func TestWeight_PlainUnits(t *testing.T) {
	p := model.Posting{Account: "Assets:Cash", Units: amt("100.00", "USD")}

	w := balance.Weight(p)
	if w.Currency != "USD" || !w.Number.Equal(dec("100.00")) {
		t.Errorf("weight = %s, want 100.00 USD", w)
	}
}

func TestWeight_WithCost(t *testing.T) {
	cost := model.Cost{Number: dec("100"), Currency: "USD", Date: model.NewDate(2020, 1, 1)}
	p := model.Posting{Account: "Assets:Stock", Units: amt("10", "HOOL"), Cost: &cost}

	w := balance.Weight(p)
	if w.Currency != "USD" || !w.Number.Equal(dec("1000")) {
		t.Errorf("weight = %s, want 1000 USD", w)
	}
}

func TestWeight_WithPriceOnly(t *testing.T) {
	price := amt("1.10", "USD")
	p := model.Posting{Account: "Assets:EUR", Units: amt("200", "EUR"), Price: &price}

	w := balance.Weight(p)
	if w.Currency != "USD" || !w.Number.Equal(dec("220.00")) {
		t.Errorf("weight = %s, want 220.00 USD", w)
	}
}

func TestWeight_CostTakesPrecedenceOverPrice(t *testing.T) {
	cost := model.Cost{Number: dec("100"), Currency: "USD"}
	price := amt("120", "USD")
	p := model.Posting{Account: "Assets:Stock", Units: amt("1", "HOOL"), Cost: &cost, Price: &price}

	w := balance.Weight(p)
	if !w.Number.Equal(dec("100")) {
		t.Errorf("cost should win over price: weight = %s", w)
	}
}

// ============================================================================
// Test: tolerance inference
// ============================================================================

func TestTolerances_TwoDecimalPlaces(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Expenses:Food", Units: amt("25.00", "USD")},
			{Account: "Assets:Cash", Units: amt("-25.00", "USD")},
		},
	}

	tol := balance.Tolerances(txn)
	if !tol["USD"].Equal(dec("0.005")) {
		t.Errorf("tolerance = %s, want 0.005", tol["USD"])
	}
}

func TestTolerances_IntegerOperandsGetZero(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Assets:A", Units: amt("100", "USD")},
			{Account: "Assets:B", Units: amt("-100", "USD")},
		},
	}

	tol := balance.Tolerances(txn)
	if !tol["USD"].IsZero() {
		t.Errorf("whole-number operands should imply zero tolerance, got %s", tol["USD"])
	}
}

func TestTolerances_SmallestIncrementWins(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Assets:A", Units: amt("100", "USD")},
			{Account: "Assets:B", Units: amt("-99.999", "USD")},
		},
	}

	tol := balance.Tolerances(txn)
	if !tol["USD"].Equal(dec("0.0005")) {
		t.Errorf("tolerance = %s, want 0.0005", tol["USD"])
	}
}

func TestTolerances_CostCurrencyOperands(t *testing.T) {
	cost := model.Cost{Number: dec("100.25"), Currency: "USD"}
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Assets:Stock", Units: amt("10", "HOOL"), Cost: &cost},
			{Account: "Assets:Cash", Units: amt("-1002.50", "USD")},
		},
	}

	tol := balance.Tolerances(txn)
	if !tol["USD"].Equal(dec("0.005")) {
		t.Errorf("cost operand should contribute to USD tolerance, got %s", tol["USD"])
	}
}

// ============================================================================
// Test: zero-sum check
// ============================================================================

func TestCheck_BalancedWithinTolerance(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Expenses:Food", Units: amt("33.34", "USD")},
			{Account: "Assets:Cash", Units: amt("-33.34", "USD")},
		},
	}

	if err := balance.Check(txn); err != nil {
		t.Errorf("transaction should balance: %v", err)
	}
}

func TestCheck_ResidualWithinHalfIncrement(t *testing.T) {
	// Residual 0.004 < tolerance 0.005.
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Expenses:Food", Units: amt("33.334", "USD")},
			{Account: "Assets:Cash", Units: amt("-33.33", "USD")},
		},
	}

	if err := balance.Check(txn); err != nil {
		t.Errorf("residual 0.004 should be under inferred tolerance: %v", err)
	}
}

func TestCheck_Unbalanced(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Expenses:Food", Units: amt("34.00", "USD")},
			{Account: "Assets:Cash", Units: amt("-33.00", "USD")},
		},
	}

	err := balance.Check(txn)
	var unbalanced *balance.UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedError, got %v", err)
	}
	if !unbalanced.Residuals["USD"].Equal(dec("1.00")) {
		t.Errorf("residual = %s, want 1.00", unbalanced.Residuals["USD"])
	}
}

func TestCheck_MultiCurrency(t *testing.T) {
	txn := &model.Transaction{
		Postings: []model.Posting{
			{Account: "Assets:USD", Units: amt("10.00", "USD")},
			{Account: "Assets:USD", Units: amt("-10.00", "USD")},
			{Account: "Assets:EUR", Units: amt("5.00", "EUR")},
		},
	}

	err := balance.Check(txn)
	var unbalanced *balance.UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Fatalf("expected UnbalancedError, got %v", err)
	}
	if _, ok := unbalanced.Residuals["USD"]; ok {
		t.Error("USD balances and should not appear in residuals")
	}
	if !unbalanced.Residuals["EUR"].Equal(dec("5.00")) {
		t.Errorf("EUR residual = %s, want 5.00", unbalanced.Residuals["EUR"])
	}
}

// ============================================================================
// Test: balance assertion diff (Example 1)
// ============================================================================

func TestDiff_AssertionPasses(t *testing.T) {
	diff, ok := balance.Diff(amt("100", "USD"), dec("100"), dec("0.005"))
	if !ok {
		t.Error("assertion should pass")
	}
	if !diff.Number.IsZero() {
		t.Errorf("diff = %s, want 0", diff.Number)
	}
}

func TestDiff_AssertionFailsWithResidual(t *testing.T) {
	diff, ok := balance.Diff(amt("100.01", "USD"), dec("100"), dec("0.005"))
	if ok {
		t.Error("assertion should fail")
	}
	if !diff.Number.Equal(dec("-0.01")) {
		t.Errorf("diff = %s, want -0.01", diff.Number)
	}
	if diff.Currency != "USD" {
		t.Errorf("diff currency = %s, want USD", diff.Currency)
	}
}
