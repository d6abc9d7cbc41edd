package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"BeanLedger/internal/booking"
	"BeanLedger/internal/model"
	"BeanLedger/internal/observability"
)

// Service provides read-only access to ledger state. Live lot and price
// queries read the engine's in-memory registry under the same per-account
// locks booking takes, so they always observe the last committed
// transaction. Directive history is read from Postgres.
type Service struct {
	engine  *booking.Engine
	db      *sql.DB
	metrics *observability.Metrics
}

func NewService(engine *booking.Engine, db *sql.DB, metrics *observability.Metrics) *Service {
	return &Service{engine: engine, db: db, metrics: metrics}
}

// GetLots returns an account's open lots in inventory order.
func (s *Service) GetLots(ctx context.Context, account string) (*LotsResponse, error) {
	done := s.track("get_lots")

	registry := s.engine.Registry()
	unlock := registry.LockAccounts(account)
	lots := registry.Lots(account)
	unlock()

	resp := &LotsResponse{Account: account, Lots: make([]LotView, 0, len(lots))}
	for _, lot := range lots {
		view := LotView{
			Currency: lot.Currency,
			Units:    lot.Units.String(),
		}
		if lot.Cost.Currency != "" {
			view.CostNumber = lot.Cost.Number.String()
			view.CostCurrency = lot.Cost.Currency
			view.CostDate = lot.Cost.Date.String()
			view.CostLabel = lot.Cost.Label
		}
		resp.Lots = append(resp.Lots, view)
	}

	done(nil)
	return resp, nil
}

// GetBalances returns an account's net position per currency.
func (s *Service) GetBalances(ctx context.Context, account string) (*BalancesResponse, error) {
	done := s.track("get_balances")

	registry := s.engine.Registry()
	unlock := registry.LockAccounts(account)
	lots := registry.Lots(account)
	unlock()

	// Lots come back grouped by currency in sorted order.
	resp := &BalancesResponse{Account: account}
	var current string
	var sum decimal.Decimal
	flush := func() {
		if current != "" && !sum.IsZero() {
			resp.Positions = append(resp.Positions, PositionView{
				Currency: current,
				Units:    sum.String(),
			})
		}
	}
	for _, lot := range lots {
		if lot.Currency != current {
			flush()
			current = lot.Currency
			sum = decimal.Zero
		}
		sum = sum.Add(lot.Units)
	}
	flush()

	done(nil)
	return resp, nil
}

// ListAccounts returns every account the registry has seen, sorted.
func (s *Service) ListAccounts(ctx context.Context) ([]string, error) {
	done := s.track("list_accounts")
	accounts := s.engine.Registry().Accounts()
	done(nil)
	return accounts, nil
}

// GetPriceAt returns the most recent price of a currency at or before the
// given date, or nil when no observation exists.
func (s *Service) GetPriceAt(ctx context.Context, currency string, date model.Date) (*PriceResponse, error) {
	done := s.track("get_price_at")

	observed, price, found := s.engine.Prices().ObservationAt(currency, date)
	if !found {
		done(nil)
		return nil, nil
	}

	done(nil)
	return &PriceResponse{
		Currency:      currency,
		Date:          observed.String(),
		Number:        price.Number.String(),
		QuoteCurrency: price.Currency,
	}, nil
}

// ListDirectives pages through a run's booked output in sequence order.
func (s *Service) ListDirectives(
	ctx context.Context,
	runID string,
	fromSequence int64,
	limit int,
) (*DirectivesResponse, error) {
	done := s.track("list_directives")

	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, sequence, date, kind, payload, book_error
		FROM ledger.booked_directives
		WHERE run_id = $1 AND sequence >= $2
		ORDER BY sequence ASC
		LIMIT $3
	`, runID, fromSequence, limit)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("list directives: %w", err)
	}
	defer rows.Close()

	resp := &DirectivesResponse{RunID: runID}
	for rows.Next() {
		var r DirectiveRecord
		var bookError sql.NullString
		if err := rows.Scan(&r.RunID, &r.Sequence, &r.Date, &r.Kind, &r.Payload, &bookError); err != nil {
			done(err)
			return nil, err
		}
		if bookError.Valid {
			r.BookError = bookError.String
		}
		resp.Directives = append(resp.Directives, r)
	}
	if err := rows.Err(); err != nil {
		done(err)
		return nil, err
	}

	if len(resp.Directives) == limit {
		resp.NextSequence = resp.Directives[limit-1].Sequence + 1
	}

	done(nil)
	return resp, nil
}

// track records per-endpoint request metrics. The returned func takes the
// final error and must be called exactly once.
func (s *Service) track(endpoint string) func(error) {
	if s.metrics == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.QueryRequests.WithLabelValues(endpoint, "error").Inc()
			s.metrics.QueryErrors.WithLabelValues(endpoint, "internal").Inc()
			return
		}
		s.metrics.QueryRequests.WithLabelValues(endpoint, "ok").Inc()
	}
}
