package inventory

import (
	"fmt"

	"BeanLedger/internal/model"

	"github.com/shopspring/decimal"
)

// AmbiguousMatchError reports a STRICT reduction whose cost specification
// matched zero lots or more than one lot.
type AmbiguousMatchError struct {
	Account  string
	Currency string
	Matches  int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match on %s %s: cost spec matched %d lots, want exactly 1",
		e.Account, e.Currency, e.Matches)
}

// InsufficientLotError reports a reduction larger than what the matched
// lot(s) hold.
type InsufficientLotError struct {
	Account   string
	Currency  string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientLotError) Error() string {
	return fmt.Sprintf("insufficient lot quantity on %s: requested %s %s, available %s",
		e.Account, e.Requested, e.Currency, e.Available)
}

// InvalidBookingError reports a reduction attempted under an unusable
// booking method: UNKNOWN while lots exist, or any method except NONE when
// the account holds no open lots.
type InvalidBookingError struct {
	Account string
	Method  model.Booking
	Reason  string
}

func (e *InvalidBookingError) Error() string {
	return fmt.Sprintf("invalid booking on %s under %s: %s", e.Account, e.Method, e.Reason)
}
