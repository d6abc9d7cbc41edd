package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a decimal quantity of some currency. Currency codes are opaque
// identifiers; they are not validated against any ISO list.
type Amount struct {
	Number   decimal.Decimal
	Currency string
}

func NewAmount(number decimal.Decimal, currency string) Amount {
	return Amount{Number: number, Currency: currency}
}

func (a Amount) Neg() Amount {
	return Amount{Number: a.Number.Neg(), Currency: a.Currency}
}

// IsEmpty reports whether the amount carries no value at all, i.e. the
// posting's units were elided by the producer.
func (a Amount) IsEmpty() bool {
	return a.Currency == "" && a.Number.IsZero()
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Number.String(), a.Currency)
}

// Cost identifies a specific acquisition lot. The tuple
// (currency, number, date, label) is the natural key used for lot matching.
type Cost struct {
	Number   decimal.Decimal
	Currency string
	Date     Date
	Label    string
}

// CostKey is the comparable form of a Cost used for lot matching.
type CostKey struct {
	Currency string
	Number   string
	Date     Date
	Label    string
}

func (c Cost) Key() CostKey {
	return CostKey{
		Currency: c.Currency,
		Number:   c.Number.String(),
		Date:     c.Date,
		Label:    c.Label,
	}
}

// IsZero reports whether the cost carries no information (a cost-less lot).
func (c Cost) IsZero() bool {
	return c.Currency == "" && c.Number.IsZero() && c.Date.IsZero() && c.Label == ""
}

func (c Cost) String() string {
	s := fmt.Sprintf("%s %s, %s", c.Number.String(), c.Currency, c.Date)
	if c.Label != "" {
		s += fmt.Sprintf(", %q", c.Label)
	}
	return "{" + s + "}"
}

// CostSpec is a partially specified cost as supplied by an unbooked posting:
// zero or more of {currency, number, date, label}.
type CostSpec struct {
	Number   *decimal.Decimal
	Currency string
	Date     *Date
	Label    string
}

// IsEmpty reports whether no constraint was supplied at all.
func (cs *CostSpec) IsEmpty() bool {
	if cs == nil {
		return true
	}
	return cs.Number == nil && cs.Currency == "" && cs.Date == nil && cs.Label == ""
}

// Matches reports whether an existing lot cost satisfies every constraint
// the spec carries. An empty spec matches any cost.
func (cs *CostSpec) Matches(c Cost) bool {
	if cs == nil {
		return true
	}
	if cs.Currency != "" && cs.Currency != c.Currency {
		return false
	}
	if cs.Number != nil && !cs.Number.Equal(c.Number) {
		return false
	}
	if cs.Date != nil && *cs.Date != c.Date {
		return false
	}
	if cs.Label != "" && cs.Label != c.Label {
		return false
	}
	return true
}
