package booking

import (
	"sort"

	"BeanLedger/internal/model"
)

// Accounts tracks the lifecycle of every account: when it opened, when it
// closed, which currencies it accepts and which booking method it uses.
type Accounts struct {
	byName map[string]*accountInfo
}

type accountInfo struct {
	opened     model.Date
	closed     *model.Date
	currencies map[string]bool
	method     model.Booking
}

func NewAccounts() *Accounts {
	return &Accounts{byName: make(map[string]*accountInfo)}
}

// Open registers an account. An UNKNOWN method resolves to STRICT here, so
// every open account carries a concrete policy.
func (a *Accounts) Open(date model.Date, account string, currencies []string, method model.Booking) error {
	if _, ok := a.byName[account]; ok {
		return &DuplicateOpenError{Account: account}
	}
	if method == model.BookingUnknown {
		method = model.BookingStrict
	}
	info := &accountInfo{opened: date, method: method}
	if len(currencies) > 0 {
		info.currencies = make(map[string]bool, len(currencies))
		for _, c := range currencies {
			info.currencies[c] = true
		}
	}
	a.byName[account] = info
	return nil
}

// Close marks the account as accepting no postings after date.
func (a *Accounts) Close(date model.Date, account string) error {
	info, ok := a.byName[account]
	if !ok {
		return &UnknownAccountError{Account: account}
	}
	if info.closed != nil {
		return &UnknownAccountError{Account: account, Closed: true}
	}
	d := date
	info.closed = &d
	return nil
}

// Check reports whether the account accepts activity on the given date. The
// open and close dates themselves are both valid.
func (a *Accounts) Check(account string, date model.Date) error {
	info, ok := a.byName[account]
	if !ok {
		return &UnknownAccountError{Account: account}
	}
	if date.Before(info.opened) {
		return &UnknownAccountError{Account: account}
	}
	if info.closed != nil && date.After(*info.closed) {
		return &UnknownAccountError{Account: account, Closed: true}
	}
	return nil
}

// Method returns the account's booking method. Accounts never opened default
// to STRICT; Check catches those before any booking happens.
func (a *Accounts) Method(account string) model.Booking {
	if info, ok := a.byName[account]; ok {
		return info.method
	}
	return model.BookingStrict
}

// CheckCurrency enforces the Open directive's currency constraint. Accounts
// opened without a currency list accept anything.
func (a *Accounts) CheckCurrency(account, currency string) error {
	info, ok := a.byName[account]
	if !ok || info.currencies == nil || info.currencies[currency] {
		return nil
	}
	allowed := make([]string, 0, len(info.currencies))
	for c := range info.currencies {
		allowed = append(allowed, c)
	}
	sort.Strings(allowed)
	return &CurrencyConstraintError{Account: account, Currency: currency, Allowed: allowed}
}
