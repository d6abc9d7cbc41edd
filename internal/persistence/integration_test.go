package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"BeanLedger/internal/persistence"
	"BeanLedger/internal/testutil"
)

// ============================================================================
// Integration: writer round trip against a real Postgres
// ============================================================================

func TestWriteAndReadBack(t *testing.T) {
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := persistence.NewMigrator(db, "../../migrations")
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	runID := uuid.New().String()
	writer := persistence.NewLedgerWriter(db)

	bookErr := "assertion failed"
	rows := []persistence.DirectiveRow{
		{RunID: runID, Sequence: 0, Date: "2020-01-01", Kind: "open", Payload: []byte(`{"kind":"open"}`)},
		{RunID: runID, Sequence: 1, Date: "2020-01-02", Kind: "transaction", Payload: []byte(`{"kind":"transaction"}`)},
		{RunID: runID, Sequence: 2, Date: "2020-01-03", Kind: "balance", Payload: []byte(`{"kind":"balance"}`), BookError: &bookErr},
	}
	if err := writer.WriteDirectiveBatch(ctx, db, rows); err != nil {
		t.Fatalf("write directives: %v", err)
	}

	// Idempotency: replaying the same batch is a no-op
	if err := writer.WriteDirectiveBatch(ctx, db, rows); err != nil {
		t.Fatalf("replay directives: %v", err)
	}

	store := persistence.NewSnapshotStore(db)

	got, err := store.LoadDirectivesFrom(ctx, runID, 0, 10)
	if err != nil {
		t.Fatalf("load directives: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("loaded %d rows, want 3", len(got))
	}
	if got[2].BookError == nil || *got[2].BookError != "assertion failed" {
		t.Errorf("book error = %v, want assertion failed", got[2].BookError)
	}

	seq, err := store.GetLatestSequence(ctx, runID)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if seq != 2 {
		t.Errorf("latest sequence = %d, want 2", seq)
	}
}

func TestInventorySnapshotRoundTrip(t *testing.T) {
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := persistence.NewMigrator(db, "../../migrations")
	if err := migrator.Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	store := persistence.NewSnapshotStore(db)
	runID := uuid.New().String()

	snap := &persistence.InventorySnapshot{
		RunID:    runID,
		Sequence: 41,
		Accounts: map[string][]persistence.LotSnapshot{
			"Assets:Stock": {
				{Currency: "HOOL", Units: "10", CostNumber: "100", CostCurrency: "USD", CostDate: "2020-01-01"},
			},
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := store.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx, runID)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if loaded == nil {
		t.Fatal("snapshot not found after save")
	}
	if loaded.Sequence != 41 {
		t.Errorf("sequence = %d, want 41", loaded.Sequence)
	}
	lots := loaded.Accounts["Assets:Stock"]
	if len(lots) != 1 || lots[0].CostNumber != "100" {
		t.Errorf("lots = %+v, want one HOOL lot at 100 USD", lots)
	}

	latest, err := store.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load latest snapshot: %v", err)
	}
	if latest == nil || latest.RunID != runID {
		t.Errorf("latest snapshot = %+v, want run %s", latest, runID)
	}
}
