package booking

import (
	"sync"

	"BeanLedger/internal/model"
)

// PriceDB is the append-only price history collected from Price directives
// and posting price annotations.
type PriceDB struct {
	mu      sync.RWMutex
	entries map[string][]pricePoint
}

type pricePoint struct {
	date  model.Date
	price model.Amount
}

func NewPriceDB() *PriceDB {
	return &PriceDB{entries: make(map[string][]pricePoint)}
}

// Record appends an observation, keeping each currency's history ordered by
// date. A later observation on the same date supersedes the earlier one.
func (db *PriceDB) Record(date model.Date, currency string, price model.Amount) {
	db.mu.Lock()
	defer db.mu.Unlock()

	points := db.entries[currency]
	pos := len(points)
	for pos > 0 && date.Before(points[pos-1].date) {
		pos--
	}
	points = append(points, pricePoint{})
	copy(points[pos+1:], points[pos:])
	points[pos] = pricePoint{date: date, price: price}
	db.entries[currency] = points
}

// PriceAt returns the most recent price of currency on or before date.
func (db *PriceDB) PriceAt(currency string, date model.Date) (model.Amount, bool) {
	_, price, ok := db.ObservationAt(currency, date)
	return price, ok
}

// ObservationAt is PriceAt plus the date the price was observed on.
func (db *PriceDB) ObservationAt(currency string, date model.Date) (model.Date, model.Amount, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	points := db.entries[currency]
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].date.After(date) {
			return points[i].date, points[i].price, true
		}
	}
	return model.Date{}, model.Amount{}, false
}
