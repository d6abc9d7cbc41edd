package inventory

import (
	"github.com/shopspring/decimal"

	"BeanLedger/internal/model"
)

// Lot is a quantity of a commodity acquired at a specific cost and date,
// tracked per account and currency. Lots are created and merged by the
// registry; callers never construct them directly.
type Lot struct {
	Currency string
	Units    decimal.Decimal
	Cost     model.Cost

	seq int64 // insertion order, breaks acquisition-date ties
}

// Reduction is one entry of the ordered breakdown returned by a successful
// reduce: which cost lot was consumed and how much was taken from it.
type Reduction struct {
	Cost  model.Cost
	Units decimal.Decimal
}

// accountBook holds one account's open lots, per currency, ordered by
// acquisition date with ties broken by insertion order.
type accountBook struct {
	currencies map[string][]Lot
	nextSeq    int64
}

func newAccountBook() *accountBook {
	return &accountBook{currencies: make(map[string][]Lot)}
}

// insert places a lot keeping (cost date, insertion order) ordering.
func (b *accountBook) insert(currency string, lot Lot) {
	lot.seq = b.nextSeq
	b.nextSeq++

	lots := b.currencies[currency]
	pos := len(lots)
	for i := range lots {
		if lot.Cost.Date.Before(lots[i].Cost.Date) {
			pos = i
			break
		}
	}
	lots = append(lots, Lot{})
	copy(lots[pos+1:], lots[pos:])
	lots[pos] = lot
	b.currencies[currency] = lots
}

// addLot merges units into an existing lot with the same cost key, or
// inserts a new lot. Augmentation never fails.
func (b *accountBook) addLot(currency string, units decimal.Decimal, cost model.Cost) {
	key := cost.Key()
	lots := b.currencies[currency]
	for i := range lots {
		if lots[i].Cost.Key() == key {
			lots[i].Units = lots[i].Units.Add(units)
			if lots[i].Units.IsZero() {
				b.currencies[currency] = append(lots[:i], lots[i+1:]...)
			}
			return
		}
	}
	b.insert(currency, Lot{Currency: currency, Units: units, Cost: cost})
}

func (b *accountBook) netPosition(currency string) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range b.currencies[currency] {
		total = total.Add(lot.Units)
	}
	return total
}

// reduce resolves a reducing posting against the account's open lots. The
// posting's units oppose the position's sign, so a short position reduces
// with positive units and a long one with negative units.
func (b *accountBook) reduce(account string, units model.Amount, spec *model.CostSpec, method model.Booking) ([]Reduction, error) {
	currency := units.Currency
	requested := units.Number.Neg()

	if method == model.BookingNone {
		cost := costFromSpec(spec)
		b.addLot(currency, units.Number, cost)
		return []Reduction{{Cost: cost, Units: requested}}, nil
	}

	lots := b.currencies[currency]
	if len(lots) == 0 {
		return nil, &InvalidBookingError{
			Account: account,
			Method:  method,
			Reason:  "reduction against an account with no open lots",
		}
	}
	if method == model.BookingUnknown {
		return nil, &InvalidBookingError{
			Account: account,
			Method:  method,
			Reason:  "booking method is UNKNOWN while lots exist",
		}
	}

	switch method {
	case model.BookingStrict:
		return b.reduceStrict(account, currency, requested, spec)
	case model.BookingAverage:
		return b.reduceAverage(account, currency, requested)
	case model.BookingFIFO:
		return b.reduceOrdered(account, currency, requested, spec, false)
	case model.BookingLIFO:
		return b.reduceOrdered(account, currency, requested, spec, true)
	default:
		return nil, &InvalidBookingError{Account: account, Method: method, Reason: "unhandled booking method"}
	}
}

func (b *accountBook) reduceStrict(account, currency string, requested decimal.Decimal, spec *model.CostSpec) ([]Reduction, error) {
	lots := b.currencies[currency]

	match := -1
	matches := 0
	for i := range lots {
		if spec.Matches(lots[i].Cost) {
			match = i
			matches++
		}
	}
	if matches != 1 {
		return nil, &AmbiguousMatchError{Account: account, Currency: currency, Matches: matches}
	}

	lot := &lots[match]
	if !covers(lot.Units, requested) {
		return nil, &InsufficientLotError{
			Account:   account,
			Currency:  currency,
			Requested: requested,
			Available: lot.Units,
		}
	}

	taken := Reduction{Cost: lot.Cost, Units: requested}
	lot.Units = lot.Units.Sub(requested)
	if lot.Units.IsZero() {
		b.currencies[currency] = append(lots[:match], lots[match+1:]...)
	}
	return []Reduction{taken}, nil
}

// reduceAverage collapses every lot of the currency into a single lot at the
// quantity-weighted mean cost, then reduces against it.
func (b *accountBook) reduceAverage(account, currency string, requested decimal.Decimal) ([]Reduction, error) {
	lots := b.currencies[currency]

	total := decimal.Zero
	weighted := decimal.Zero
	costCurrency := lots[0].Cost.Currency
	date := lots[0].Cost.Date
	maxScale := int32(0)
	for _, lot := range lots {
		total = total.Add(lot.Units)
		weighted = weighted.Add(lot.Units.Mul(lot.Cost.Number))
		if lot.Cost.Date.Before(date) {
			date = lot.Cost.Date
		}
		if s := -lot.Cost.Number.Exponent(); s > maxScale {
			maxScale = s
		}
	}

	if !covers(total, requested) {
		return nil, &InsufficientLotError{
			Account:   account,
			Currency:  currency,
			Requested: requested,
			Available: total,
		}
	}

	// Mean cost keeps two digits beyond the most precise merged cost.
	mean := weighted.DivRound(total, maxScale+2)
	merged := model.Cost{Number: mean, Currency: costCurrency, Date: date}

	remaining := total.Sub(requested)
	delete(b.currencies, currency)
	if !remaining.IsZero() {
		b.insert(currency, Lot{Currency: currency, Units: remaining, Cost: merged})
	}
	return []Reduction{{Cost: merged, Units: requested}}, nil
}

// reduceOrdered consumes matching lots oldest-first (FIFO) or newest-first
// (LIFO), splitting the last lot touched.
func (b *accountBook) reduceOrdered(account, currency string, requested decimal.Decimal, spec *model.CostSpec, newestFirst bool) ([]Reduction, error) {
	lots := b.currencies[currency]

	var order []int
	available := decimal.Zero
	for i := range lots {
		if spec.Matches(lots[i].Cost) {
			order = append(order, i)
			available = available.Add(lots[i].Units)
		}
	}
	if !covers(available, requested) {
		return nil, &InsufficientLotError{
			Account:   account,
			Currency:  currency,
			Requested: requested,
			Available: available,
		}
	}
	if newestFirst {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	var breakdown []Reduction
	remaining := requested
	consumed := make(map[int]bool)
	for _, idx := range order {
		if remaining.IsZero() {
			break
		}
		lot := &lots[idx]
		take := lot.Units
		if take.Abs().GreaterThan(remaining.Abs()) {
			take = remaining
		}
		breakdown = append(breakdown, Reduction{Cost: lot.Cost, Units: take})
		lot.Units = lot.Units.Sub(take)
		remaining = remaining.Sub(take)
		if lot.Units.IsZero() {
			consumed[idx] = true
		}
	}

	if len(consumed) > 0 {
		kept := lots[:0]
		for i := range lots {
			if !consumed[i] {
				kept = append(kept, lots[i])
			}
		}
		b.currencies[currency] = kept
	}
	return breakdown, nil
}

// covers reports whether held units can absorb a reduction of the requested
// size. Positions reduce toward zero from either side: the request must carry
// the position's own sign and must not exceed it in magnitude.
func covers(held, requested decimal.Decimal) bool {
	if requested.IsZero() {
		return true
	}
	return requested.Sign() == held.Sign() && !requested.Abs().GreaterThan(held.Abs())
}

// costFromSpec materializes whatever partial cost a NONE-booking entry gave.
func costFromSpec(spec *model.CostSpec) model.Cost {
	var cost model.Cost
	if spec == nil {
		return cost
	}
	if spec.Number != nil {
		cost.Number = *spec.Number
	}
	cost.Currency = spec.Currency
	if spec.Date != nil {
		cost.Date = *spec.Date
	}
	cost.Label = spec.Label
	return cost
}
