package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// versionTable lives in public, not in the ledger schema, because the ledger
// schema itself is created by the first migration.
const versionTable = "public.ledger_schema_versions"

// Migrator applies the SQL files of a directory in lexical order. Files pair
// up as {version}_{name}.up.sql / {version}_{name}.down.sql and each version
// is recorded once it has run.
type Migrator struct {
	db  *sql.DB
	dir string
}

func NewMigrator(db *sql.DB, dir string) *Migrator {
	return &Migrator{db: db, dir: dir}
}

// Up applies every migration not yet recorded, oldest first. Each file runs
// in its own transaction together with its version record.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return fmt.Errorf("ensure version table: %w", err)
	}

	pending, err := m.pendingFiles(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		log.Printf("INFO: ledger schema is up to date")
		return nil
	}

	for _, f := range pending {
		log.Printf("INFO: applying ledger migration %s", f)
		err := m.runFile(ctx, f, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO `+versionTable+` (version, filename) VALUES ($1, $2)`,
				versionOf(f), f)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", f, err)
		}
	}
	log.Printf("INFO: ledger schema advanced to version %s", versionOf(pending[len(pending)-1]))
	return nil
}

// Down reverts the most recently applied migration using its .down.sql twin.
func (m *Migrator) Down(ctx context.Context) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return fmt.Errorf("ensure version table: %w", err)
	}

	var version, filename string
	err := m.db.QueryRowContext(ctx,
		`SELECT version, filename FROM `+versionTable+` ORDER BY version DESC LIMIT 1`,
	).Scan(&version, &filename)
	if err == sql.ErrNoRows {
		log.Printf("INFO: ledger schema has no migrations to revert")
		return nil
	}
	if err != nil {
		return fmt.Errorf("latest applied version: %w", err)
	}

	downFile := strings.Replace(filename, ".up.sql", ".down.sql", 1)
	err = m.runFile(ctx, downFile, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM `+versionTable+` WHERE version = $1`, version)
		return err
	})
	if err != nil {
		return fmt.Errorf("revert %s: %w", downFile, err)
	}
	log.Printf("INFO: reverted ledger migration %s", downFile)
	return nil
}

// runFile executes one migration file and its version bookkeeping in a single
// transaction.
func (m *Migrator) runFile(ctx context.Context, name string, record func(*sql.Tx) error) error {
	content, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("exec: %w", err)
	}
	if err := record(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}

// pendingFiles lists the .up.sql files whose versions have not been applied,
// in lexical (version) order.
func (m *Migrator) pendingFiles(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM `+versionTable)
	if err != nil {
		return nil, fmt.Errorf("applied versions: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", m.dir, err)
	}

	var pending []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		if !applied[versionOf(name)] {
			pending = append(pending, name)
		}
	}
	sort.Strings(pending)
	return pending, nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+versionTable+` (
			version    TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

// versionOf returns the numeric prefix of a migration filename:
// "000001_ledger.up.sql" yields "000001".
func versionOf(filename string) string {
	version, _, _ := strings.Cut(filename, "_")
	return version
}
