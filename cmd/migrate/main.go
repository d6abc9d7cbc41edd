// Command migrate applies or reverts the ledger's Postgres schema. It is a
// separate binary so deploys can run schema changes before rolling the
// service.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"BeanLedger/internal/persistence"
)

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(2)
	}

	if err := run(context.Background(), os.Args[1]); err != nil {
		log.Fatalf("FATAL: migrate %s: %v", os.Args[1], err)
	}
}

func run(ctx context.Context, direction string) error {
	dsn := os.Getenv("BEAN_POSTGRES_DSN")
	if dsn == "" {
		dsn = "postgres://localhost:5432/beanledger?sslmode=disable"
	}
	dir := os.Getenv("BEAN_MIGRATIONS_DIR")
	if dir == "" {
		dir = "migrations"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	defer db.Close()

	m := persistence.NewMigrator(db, dir)
	switch direction {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	default:
		usage()
		return fmt.Errorf("unknown direction %q", direction)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <up|down>

  up    apply every pending ledger migration
  down  revert the most recent one

Environment:
  BEAN_POSTGRES_DSN    Postgres connection string (default: local beanledger)
  BEAN_MIGRATIONS_DIR  directory of SQL files (default: migrations)`)
}
