package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SnapshotStore persists the end-of-run inventory so reporting tools can
// read final lot state without replaying the directive stream.
type SnapshotStore struct {
	db *sql.DB
}

// InventorySnapshot is the full lot state at the end of one booking run.
type InventorySnapshot struct {
	RunID     string                   `json:"run_id"`
	Sequence  int64                    `json:"sequence"` // last emitted sequence
	Accounts  map[string][]LotSnapshot `json:"accounts"`
	CreatedAt time.Time                `json:"created_at"`
}

// LotSnapshot is one serializable open lot.
type LotSnapshot struct {
	Currency     string `json:"currency"`
	Units        string `json:"units"`
	CostNumber   string `json:"cost_number,omitempty"`
	CostCurrency string `json:"cost_currency,omitempty"`
	CostDate     string `json:"cost_date,omitempty"`
	CostLabel    string `json:"cost_label,omitempty"`
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// SaveSnapshot persists a run's final inventory.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snap *InventorySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snapshotID := uuid.New()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger.inventory_snapshots
			(snapshot_id, run_id, sequence, data, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (run_id) DO UPDATE SET sequence = $3, data = $4, size_bytes = $5
	`, snapshotID, snap.RunID, snap.Sequence, data, len(data), snap.CreatedAt)

	return err
}

// LoadSnapshot loads the inventory snapshot of one run.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, runID string) (*InventorySnapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data FROM ledger.inventory_snapshots WHERE run_id = $1
	`, runID)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap InventorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// LoadLatestSnapshot loads the most recent run's inventory.
func (s *SnapshotStore) LoadLatestSnapshot(ctx context.Context) (*InventorySnapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT data FROM ledger.inventory_snapshots
		ORDER BY created_at DESC
		LIMIT 1
	`)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap InventorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// LoadDirectivesFrom loads booked directives of a run from a given sequence,
// for downstream consumers that page through the output stream.
func (s *SnapshotStore) LoadDirectivesFrom(ctx context.Context, runID string, fromSequence int64, limit int) ([]DirectiveRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, sequence, date, kind, payload, book_error
		FROM ledger.booked_directives
		WHERE run_id = $1 AND sequence >= $2
		ORDER BY sequence ASC
		LIMIT $3
	`, runID, fromSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DirectiveRow
	for rows.Next() {
		var r DirectiveRow
		if err := rows.Scan(&r.RunID, &r.Sequence, &r.Date, &r.Kind, &r.Payload, &r.BookError); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetLatestSequence returns the highest sequence written for a run.
func (s *SnapshotStore) GetLatestSequence(ctx context.Context, runID string) (int64, error) {
	var seq sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(sequence) FROM ledger.booked_directives WHERE run_id = $1
	`, runID).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil
	}
	return seq.Int64, nil
}
