// Package db provides PostgreSQL persistence for the skill catalog.
//
// The database is an import/load store, not a live query surface: the catalog
// is loaded once at startup and served from memory, so nothing here runs on
// the request path.
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

// EnsureSchema creates the catalog tables if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS skills (
			name TEXT PRIMARY KEY,
			category TEXT NOT NULL DEFAULT '',
			tier INTEGER NOT NULL DEFAULT 1 CHECK (tier >= 1)
		)`,
		`CREATE TABLE IF NOT EXISTS skill_edges (
			skill TEXT NOT NULL REFERENCES skills(name) ON DELETE CASCADE,
			prerequisite TEXT NOT NULL REFERENCES skills(name) ON DELETE CASCADE,
			importance TEXT NOT NULL CHECK (importance IN ('required', 'recommended')),
			PRIMARY KEY (skill, prerequisite)
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			title TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS role_skills (
			role_title TEXT NOT NULL REFERENCES roles(title) ON DELETE CASCADE,
			skill TEXT NOT NULL REFERENCES skills(name) ON DELETE CASCADE,
			weight DOUBLE PRECISION NOT NULL CHECK (weight > 0),
			PRIMARY KEY (role_title, skill)
		)`,
		`CREATE TABLE IF NOT EXISTS role_tools (
			role_title TEXT NOT NULL REFERENCES roles(title) ON DELETE CASCADE,
			tool TEXT NOT NULL,
			PRIMARY KEY (role_title, tool)
		)`,
		`CREATE TABLE IF NOT EXISTS skill_durations (
			skill TEXT PRIMARY KEY REFERENCES skills(name) ON DELETE CASCADE,
			weeks INTEGER NOT NULL CHECK (weeks >= 1)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
