// Package db provides PostgreSQL persistence for submitted form data and
// pipeline artifacts.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the tables the application needs if they do not exist.
// Statements run one at a time; pgx's extended protocol does not accept
// multi-statement strings.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			hash        TEXT NOT NULL UNIQUE,
			content     JSONB NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS job_requirements (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			hash        TEXT NOT NULL UNIQUE,
			content     JSONB NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS generation_artifacts (
			id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session_id   TEXT NOT NULL,
			kind         TEXT NOT NULL,
			content      JSONB,
			text_content TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (session_id, kind)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
