package db

import (
	"context"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const matchResultsSchema = `
CREATE TABLE IF NOT EXISTS match_results (
	id TEXT PRIMARY KEY,
	mode TEXT NOT NULL,
	player_x TEXT NOT NULL,
	player_o TEXT NOT NULL,
	winner TEXT NOT NULL DEFAULT '',
	moves INTEGER NOT NULL,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_results_played_at ON match_results (played_at DESC);`

// ConnectSQLite opens the SQLite database at path and makes sure the schema exists.
// ":memory:" is accepted for tests.
func ConnectSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One connection keeps ":memory:" on a single database.
	pool.SetMaxOpenConns(1)

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *sqlx.DB) error {
	if _, err := pool.ExecContext(ctx, matchResultsSchema); err != nil {
		return fmt.Errorf("failed to create match_results table: %w", err)
	}
	return nil
}
