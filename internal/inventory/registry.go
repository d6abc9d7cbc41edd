package inventory

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/model"
)

// Registry holds every account's open lots. It is the explicit per-account
// ledger state passed into the booking engine; there is no ambient global
// state.
//
// Concurrency discipline: callers must hold the account locks (via
// LockAccounts) around any group of reads and writes that must be mutually
// consistent. The booking engine acquires every account a transaction
// touches before mutating any of them; queries take the same locks, so they
// always observe the last committed transaction.
type Registry struct {
	mu       sync.Mutex // guards the accounts map only
	accounts map[string]*accountBook
	locks    map[string]*sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		accounts: make(map[string]*accountBook),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (r *Registry) book(account string) *accountBook {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.accounts[account]
	if !ok {
		b = newAccountBook()
		r.accounts[account] = b
		r.locks[account] = &sync.Mutex{}
	}
	return b
}

func (r *Registry) lock(account string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[account]
	if !ok {
		r.accounts[account] = newAccountBook()
		l = &sync.Mutex{}
		r.locks[account] = l
	}
	return l
}

// LockAccounts acquires exclusive access to the given accounts, always in
// lexicographic order so that concurrent bookings cannot deadlock. The
// returned function releases the locks in reverse order.
func (r *Registry) LockAccounts(accounts ...string) (unlock func()) {
	sorted := append([]string(nil), accounts...)
	sort.Strings(sorted)

	locks := make([]*sync.Mutex, 0, len(sorted))
	for i, account := range sorted {
		if i > 0 && account == sorted[i-1] {
			continue
		}
		l := r.lock(account)
		l.Lock()
		locks = append(locks, l)
	}
	return func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}
}

// AddLot augments an account with units acquired at cost, merging into an
// existing lot with the same cost key. Caller holds the account lock.
func (r *Registry) AddLot(account string, units model.Amount, cost model.Cost) {
	r.book(account).addLot(units.Currency, units.Number, cost)
}

// AddUnits applies a cost-less position change (plain cash postings). The
// signed quantity merges into the account's cost-less lot for the currency.
func (r *Registry) AddUnits(account string, units model.Amount) {
	r.book(account).addLot(units.Currency, units.Number, model.Cost{})
}

// Reduce resolves a reducing posting under the given booking method and
// returns the ordered breakdown of consumed lots. Caller holds the account
// lock.
func (r *Registry) Reduce(account string, units model.Amount, spec *model.CostSpec, method model.Booking) ([]Reduction, error) {
	return r.book(account).reduce(account, units, spec, method)
}

// NetPosition returns the account's net quantity in one currency: the sum
// of signed quantities of every committed posting applied to it.
func (r *Registry) NetPosition(account, currency string) decimal.Decimal {
	return r.book(account).netPosition(currency)
}

// Lots returns a copy of the account's open lots, currencies in sorted
// order, lots within a currency in acquisition order.
func (r *Registry) Lots(account string) []Lot {
	b := r.book(account)

	currencies := make([]string, 0, len(b.currencies))
	for c := range b.currencies {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	var out []Lot
	for _, c := range currencies {
		out = append(out, b.currencies[c]...)
	}
	return out
}

// Accounts returns every account the registry has seen, sorted.
func (r *Registry) Accounts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.accounts))
	for name := range r.accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot deep-copies the lot state of the given accounts, for rollback.
type Snapshot struct {
	accounts map[string]map[string][]Lot
	nextSeqs map[string]int64
}

func (r *Registry) Snapshot(accounts []string) *Snapshot {
	snap := &Snapshot{
		accounts: make(map[string]map[string][]Lot, len(accounts)),
		nextSeqs: make(map[string]int64, len(accounts)),
	}
	for _, account := range accounts {
		b := r.book(account)
		cp := make(map[string][]Lot, len(b.currencies))
		for currency, lots := range b.currencies {
			cp[currency] = append([]Lot(nil), lots...)
		}
		snap.accounts[account] = cp
		snap.nextSeqs[account] = b.nextSeq
	}
	return snap
}

// Restore puts every account captured in the snapshot back exactly as it
// was. Booking is all-or-nothing per transaction; a failed transaction must
// leave no trace.
func (r *Registry) Restore(snap *Snapshot) {
	for account, currencies := range snap.accounts {
		b := r.book(account)
		b.currencies = make(map[string][]Lot, len(currencies))
		for currency, lots := range currencies {
			b.currencies[currency] = append([]Lot(nil), lots...)
		}
		b.nextSeq = snap.nextSeqs[account]
	}
}
