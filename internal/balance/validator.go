// Package balance computes posting weights and checks the per-currency
// zero-sum property of transactions within tolerance.
package balance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/model"
)

// UnbalancedError carries the residual for every currency whose weight sum
// exceeded tolerance. A structural failure, where no residual can even be
// computed, carries a Reason instead.
type UnbalancedError struct {
	Residuals map[string]decimal.Decimal
	Reason    string
}

func (e *UnbalancedError) Error() string {
	if len(e.Residuals) == 0 {
		return "transaction does not balance: " + e.Reason
	}
	currencies := make([]string, 0, len(e.Residuals))
	for c := range e.Residuals {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	parts := make([]string, 0, len(currencies))
	for _, c := range currencies {
		parts = append(parts, fmt.Sprintf("%s %s", e.Residuals[c], c))
	}
	return "transaction does not balance: residual " + strings.Join(parts, ", ")
}

// Weight returns the balancing-relevant value of a posting: units alone, or
// units converted through the cost (if present) or the price (if only a
// price is present).
func Weight(p model.Posting) model.Amount {
	switch {
	case p.Cost != nil:
		return model.Amount{
			Number:   p.Units.Number.Mul(p.Cost.Number),
			Currency: p.Cost.Currency,
		}
	case p.Price != nil:
		return model.Amount{
			Number:   p.Units.Number.Mul(p.Price.Number),
			Currency: p.Price.Currency,
		}
	default:
		return p.Units
	}
}

// Residuals sums resolved posting weights by currency. Postings with elided
// units contribute nothing.
func Residuals(t *model.Transaction) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, p := range t.Postings {
		if p.Units.IsEmpty() {
			continue
		}
		w := Weight(p)
		sums[w.Currency] = sums[w.Currency].Add(w.Number)
	}
	return sums
}

// Tolerances infers the allowed rounding slack per currency: half of the
// smallest decimal increment observed among that currency's operands in the
// transaction. Currencies quoted only in whole numbers get zero tolerance.
func Tolerances(t *model.Transaction) map[string]decimal.Decimal {
	minExp := make(map[string]int32)
	observe := func(currency string, n decimal.Decimal) {
		exp := n.Exponent()
		cur, ok := minExp[currency]
		if !ok || exp < cur {
			minExp[currency] = exp
		}
	}

	for _, p := range t.Postings {
		if !p.Units.IsEmpty() {
			observe(p.Units.Currency, p.Units.Number)
		}
		if p.Cost != nil {
			observe(p.Cost.Currency, p.Cost.Number)
		} else if p.Price != nil {
			observe(p.Price.Currency, p.Price.Number)
		}
	}

	out := make(map[string]decimal.Decimal, len(minExp))
	for currency, exp := range minExp {
		out[currency] = ToleranceFromExponent(exp)
	}
	return out
}

// ToleranceFromExponent converts a smallest-increment exponent into half of
// that increment: operands quoted to 2 decimal places (exponent -2) imply
// tolerance 0.005.
func ToleranceFromExponent(exp int32) decimal.Decimal {
	if exp >= 0 {
		return decimal.Zero
	}
	return decimal.New(5, exp-1)
}

// Check verifies the zero-sum property: for every currency, |sum of
// weights| must be within that currency's tolerance.
func Check(t *model.Transaction) error {
	return CheckResiduals(Residuals(t), Tolerances(t))
}

// CheckResiduals applies the tolerance test to precomputed sums.
func CheckResiduals(residuals, tolerances map[string]decimal.Decimal) error {
	failed := make(map[string]decimal.Decimal)
	for currency, sum := range residuals {
		if sum.Abs().GreaterThan(tolerances[currency]) {
			failed[currency] = sum
		}
	}
	if len(failed) > 0 {
		return &UnbalancedError{Residuals: failed}
	}
	return nil
}

// Diff compares an asserted amount against an account's actual running
// total and returns actual minus expected, plus whether the assertion holds
// within tolerance. The same routine backs the standalone Balance directive
// check.
func Diff(expected model.Amount, actual decimal.Decimal, tolerance decimal.Decimal) (model.Amount, bool) {
	diff := model.Amount{
		Number:   actual.Sub(expected.Number),
		Currency: expected.Currency,
	}
	return diff, diff.Number.Abs().LessThanOrEqual(tolerance)
}
