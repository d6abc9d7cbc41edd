// Package booking resolves incomplete directives against the running ledger
// state: it matches reductions to cost lots, fills elided units from the
// transaction residual, enforces account lifecycle and currency constraints,
// and checks balance assertions.
package booking

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"BeanLedger/internal/balance"
	"BeanLedger/internal/inventory"
	"BeanLedger/internal/model"
)

// Engine books directives in stream order. Booking a transaction is
// all-or-nothing: on any failure the touched accounts are restored to their
// pre-transaction state.
type Engine struct {
	registry *inventory.Registry
	accounts *Accounts
	prices   *PriceDB
	log      zerolog.Logger

	pads map[string]pendingPad
	obs  []priceObs
}

type pendingPad struct {
	source string
	date   model.Date
}

// priceObs is a price annotation seen while booking a transaction. It reaches
// the price database only if the transaction commits.
type priceObs struct {
	date     model.Date
	currency string
	price    model.Amount
}

func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		registry: inventory.NewRegistry(),
		accounts: NewAccounts(),
		prices:   NewPriceDB(),
		log:      log,
		pads:     make(map[string]pendingPad),
	}
}

// Registry exposes the lot state for queries.
func (e *Engine) Registry() *inventory.Registry { return e.registry }

// Prices exposes the price history for queries.
func (e *Engine) Prices() *PriceDB { return e.prices }

// Process books one directive and returns the directives to emit on the
// output stream. A Balance satisfied by a pending Pad yields the synthesized
// padding transaction ahead of the assertion itself. A failed assertion
// returns both the annotated directive and an error.
func (e *Engine) Process(d model.Directive) ([]model.Directive, error) {
	switch body := d.Body.(type) {
	case *model.Transaction:
		booked, err := e.bookTransaction(d.Date, body)
		if err != nil {
			e.log.Debug().Str("date", d.Date.String()).Err(err).Msg("transaction rejected")
			return nil, err
		}
		return []model.Directive{{Date: d.Date, Meta: d.Meta, Body: booked}}, nil

	case *model.Open:
		if err := e.accounts.Open(d.Date, body.Account, body.Currencies, body.Booking); err != nil {
			return nil, err
		}
		resolved := *body
		resolved.Booking = e.accounts.Method(body.Account)
		return []model.Directive{{Date: d.Date, Meta: d.Meta, Body: &resolved}}, nil

	case *model.Close:
		if err := e.accounts.Close(d.Date, body.Account); err != nil {
			return nil, err
		}
		return []model.Directive{d}, nil

	case *model.Pad:
		if err := e.accounts.Check(body.Account, d.Date); err != nil {
			return nil, err
		}
		if err := e.accounts.Check(body.SourceAccount, d.Date); err != nil {
			return nil, err
		}
		e.pads[body.Account] = pendingPad{source: body.SourceAccount, date: d.Date}
		return []model.Directive{d}, nil

	case *model.Balance:
		return e.checkBalance(d, body)

	case *model.Price:
		e.prices.Record(d.Date, body.Currency, body.Amount)
		return []model.Directive{d}, nil

	default:
		return []model.Directive{d}, nil
	}
}

// bookTransaction resolves every posting of a cloned transaction against the
// inventory and verifies the zero-sum property on the result.
func (e *Engine) bookTransaction(date model.Date, txn *model.Transaction) (*model.Transaction, error) {
	booked := txn.Clone()
	e.obs = e.obs[:0]

	for _, p := range booked.Postings {
		if err := e.accounts.Check(p.Account, date); err != nil {
			return nil, err
		}
		if !p.Units.IsEmpty() {
			if err := e.accounts.CheckCurrency(p.Account, p.Units.Currency); err != nil {
				return nil, err
			}
		}
	}

	accounts := booked.Accounts()
	unlock := e.registry.LockAccounts(accounts...)
	defer unlock()
	snap := e.registry.Snapshot(accounts)

	resolved, err := e.applyPostings(date, booked.Postings)
	if err != nil {
		e.registry.Restore(snap)
		return nil, err
	}
	booked.Postings = resolved

	if err := balance.Check(booked); err != nil {
		e.registry.Restore(snap)
		return nil, err
	}

	for _, o := range e.obs {
		e.prices.Record(o.date, o.currency, o.price)
	}
	e.obs = e.obs[:0]
	return booked, nil
}

// applyPostings commits postings left to right, holding back at most one
// elided posting for residual resolution at the end.
func (e *Engine) applyPostings(date model.Date, postings []model.Posting) ([]model.Posting, error) {
	out := make([]model.Posting, 0, len(postings))
	elided := -1

	for _, p := range postings {
		if p.Units.IsEmpty() {
			if elided >= 0 {
				return nil, ErrMultipleElidedPostings
			}
			elided = len(out)
			out = append(out, p)
			continue
		}
		applied, err := e.applyPosting(date, p)
		if err != nil {
			return nil, err
		}
		out = append(out, applied...)
	}

	if elided >= 0 {
		return e.resolveElided(date, out, elided)
	}
	return out, nil
}

// resolveElided fills the single elided posting from the residual of the
// already-committed postings, then commits it like any other.
func (e *Engine) resolveElided(date model.Date, postings []model.Posting, idx int) ([]model.Posting, error) {
	residuals := balance.Residuals(&model.Transaction{Postings: postings})

	nonzero := make(map[string]decimal.Decimal)
	for currency, sum := range residuals {
		if !sum.IsZero() {
			nonzero[currency] = sum
		}
	}
	if len(nonzero) > 1 {
		return nil, &balance.UnbalancedError{Residuals: nonzero}
	}

	p := postings[idx]
	if len(nonzero) == 1 {
		for currency, sum := range nonzero {
			p.Units = model.Amount{Number: sum.Neg(), Currency: currency}
		}
	} else {
		// Nothing left over: the posting resolves to zero units of the
		// first committed posting's weight currency.
		currency := ""
		for i, q := range postings {
			if i != idx && !q.Units.IsEmpty() {
				currency = balance.Weight(q).Currency
				break
			}
		}
		if currency == "" {
			return nil, fmt.Errorf("elided posting on %s has no currency to resolve against", p.Account)
		}
		p.Units = model.Amount{Number: decimal.Zero, Currency: currency}
	}

	if err := e.accounts.CheckCurrency(p.Account, p.Units.Currency); err != nil {
		return nil, err
	}
	applied, err := e.applyPosting(date, p)
	if err != nil {
		return nil, err
	}

	out := make([]model.Posting, 0, len(postings)-1+len(applied))
	out = append(out, postings[:idx]...)
	out = append(out, applied...)
	out = append(out, postings[idx+1:]...)
	return out, nil
}

// applyPosting commits one resolved posting. A reduction against cost lots
// may expand into several postings, one per consumed lot.
func (e *Engine) applyPosting(date model.Date, p model.Posting) ([]model.Posting, error) {
	if p.Price != nil {
		e.obs = append(e.obs, priceObs{date: date, currency: p.Units.Currency, price: *p.Price})
	}

	if p.Cost == nil && p.CostSpec == nil {
		e.registry.AddUnits(p.Account, p.Units)
		return []model.Posting{p}, nil
	}

	position := e.registry.NetPosition(p.Account, p.Units.Currency)
	reduces := !position.IsZero() && position.Sign() != p.Units.Number.Sign()

	method := e.accounts.Method(p.Account)
	if method == model.BookingNone {
		reduces = true
	}

	if !reduces {
		cost, err := e.resolveCost(date, p)
		if err != nil {
			return nil, err
		}
		e.registry.AddLot(p.Account, p.Units, cost)
		p.Cost = &cost
		p.CostSpec = nil
		return []model.Posting{p}, nil
	}

	spec := p.CostSpec
	if spec == nil && p.Cost != nil {
		n := p.Cost.Number
		d := p.Cost.Date
		spec = &model.CostSpec{Number: &n, Currency: p.Cost.Currency, Date: &d, Label: p.Cost.Label}
	}
	breakdown, err := e.registry.Reduce(p.Account, p.Units, spec, method)
	if err != nil {
		return nil, err
	}

	out := make([]model.Posting, 0, len(breakdown))
	for _, red := range breakdown {
		q := p
		cost := red.Cost
		q.Units = model.Amount{Number: red.Units.Neg(), Currency: p.Units.Currency}
		q.Cost = &cost
		q.CostSpec = nil
		out = append(out, q)
	}
	return out, nil
}

// resolveCost materializes the full cost of an augmentation. The acquisition
// date defaults to the transaction date; a price annotation supplies the cost
// when the spec omits it.
func (e *Engine) resolveCost(date model.Date, p model.Posting) (model.Cost, error) {
	if p.Cost != nil {
		return *p.Cost, nil
	}

	spec := p.CostSpec
	cost := model.Cost{Currency: spec.Currency, Label: spec.Label, Date: date}
	if spec.Number != nil {
		cost.Number = *spec.Number
	}
	if spec.Date != nil {
		cost.Date = *spec.Date
	}
	if cost.Currency == "" && p.Price != nil {
		cost.Currency = p.Price.Currency
		if spec.Number == nil {
			cost.Number = p.Price.Number
		}
	}
	if cost.Currency == "" {
		return model.Cost{}, &IncompleteCostError{Account: p.Account}
	}
	return cost, nil
}

// checkBalance verifies a balance assertion, first consuming a pending Pad
// on the account if the assertion would otherwise fail.
func (e *Engine) checkBalance(d model.Directive, body *model.Balance) ([]model.Directive, error) {
	if err := e.accounts.Check(body.Account, d.Date); err != nil {
		return nil, err
	}

	tolerance := balance.ToleranceFromExponent(body.Amount.Number.Exponent())
	if body.Tolerance != nil {
		tolerance = *body.Tolerance
	}

	pad, padded := e.pads[body.Account]
	delete(e.pads, body.Account)

	var out []model.Directive
	actual := e.netPosition(body.Account, body.Amount.Currency)
	diff, ok := balance.Diff(body.Amount, actual, tolerance)

	if !ok && padded {
		padTxn, err := e.padTransaction(pad, body.Account, diff.Neg())
		if err != nil {
			return nil, err
		}
		out = append(out, model.Directive{Date: pad.date, Body: padTxn})
		actual = e.netPosition(body.Account, body.Amount.Currency)
		diff, ok = balance.Diff(body.Amount, actual, tolerance)
	}

	if !ok {
		failed := *body
		diffCopy := diff
		failed.DiffAmount = &diffCopy
		out = append(out, model.Directive{Date: d.Date, Meta: d.Meta, Body: &failed})
		return out, &AssertionError{
			Account:  body.Account,
			Expected: body.Amount,
			Actual:   actual,
			Diff:     diff,
		}
	}

	out = append(out, model.Directive{Date: d.Date, Meta: d.Meta, Body: body})
	return out, nil
}

func (e *Engine) netPosition(account, currency string) decimal.Decimal {
	unlock := e.registry.LockAccounts(account)
	defer unlock()
	return e.registry.NetPosition(account, currency)
}

// padTransaction books the synthetic transfer that brings a padded account
// up to its asserted balance.
func (e *Engine) padTransaction(pad pendingPad, account string, needed model.Amount) (*model.Transaction, error) {
	txn := &model.Transaction{
		Flag:      "P",
		Narration: fmt.Sprintf("(Padding inserted for balance of %s)", account),
		Postings: []model.Posting{
			{Account: account, Flag: "P", Units: needed},
			{Account: pad.source, Flag: "P", Units: needed.Neg()},
		},
	}
	return e.bookTransaction(pad.date, txn)
}
