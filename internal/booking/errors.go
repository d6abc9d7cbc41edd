package booking

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/balance"
	"BeanLedger/internal/model"
)

// ErrMultipleElidedPostings rejects transactions where more than one posting
// left its units blank; the residual can only solve a single unknown. It is a
// balance failure, so it matches *balance.UnbalancedError.
var ErrMultipleElidedPostings error = &balance.UnbalancedError{
	Reason: "more than one posting elides its units",
}

// UnknownAccountError reports a posting or assertion against an account that
// is not open on the directive's date.
type UnknownAccountError struct {
	Account string
	Closed  bool
}

func (e *UnknownAccountError) Error() string {
	if e.Closed {
		return fmt.Sprintf("account %s is closed", e.Account)
	}
	return fmt.Sprintf("account %s is not open", e.Account)
}

// DuplicateOpenError reports a second Open directive for an account.
type DuplicateOpenError struct {
	Account string
}

func (e *DuplicateOpenError) Error() string {
	return fmt.Sprintf("account %s is already open", e.Account)
}

// CurrencyConstraintError reports a posting in a currency the account's Open
// directive did not list.
type CurrencyConstraintError struct {
	Account  string
	Currency string
	Allowed  []string
}

func (e *CurrencyConstraintError) Error() string {
	return fmt.Sprintf("currency %s is not allowed on account %s (allowed: %s)",
		e.Currency, e.Account, strings.Join(e.Allowed, ", "))
}

// IncompleteCostError reports an augmenting posting whose cost could not be
// fully resolved from its spec and price annotation.
type IncompleteCostError struct {
	Account string
}

func (e *IncompleteCostError) Error() string {
	return fmt.Sprintf("augmentation on %s does not resolve to a complete cost", e.Account)
}

// AssertionError reports a failed balance assertion.
type AssertionError struct {
	Account  string
	Expected model.Amount
	Actual   decimal.Decimal
	Diff     model.Amount
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("balance of %s is %s %s, expected %s (difference %s)",
		e.Account, e.Actual, e.Expected.Currency, e.Expected, e.Diff)
}
