// Package sqlite stores the distropop catalog in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// schema is applied on every Open; statements must be idempotent.
// search_name holds the Unicode lower-cased display name used for matching.
const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id TEXT PRIMARY KEY,
	display_name TEXT NOT NULL,
	search_name TEXT NOT NULL,
	lookup_key TEXT NOT NULL UNIQUE,
	position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_candidates_position ON candidates(position);

CREATE TABLE IF NOT EXISTS catalog_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// DB is the catalog database handle.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the file at path, or an in-memory database for
// ":memory:". Call Open before use.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragmas returns the connection settings for the database at path.
// The 5s busy timeout avoids immediate "database is locked" failures; WAL is
// skipped for in-memory databases, which do not support it.
func pragmas(path string) []string {
	p := []string{"PRAGMA busy_timeout = 5000"}
	if path != memoryPath {
		p = append(p, "PRAGMA journal_mode = WAL")
	}
	return p
}

// Open connects to the database, applies pragmas and creates the schema.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: SQLite has a single writer, and every in-memory
	// connection would otherwise see its own empty database.
	conn.SetMaxOpenConns(1)

	if err := setup(conn, db.path); err != nil {
		conn.Close()
		return err
	}

	db.db = conn
	return nil
}

func setup(conn *sql.DB, path string) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	for _, p := range pragmas(path) {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}
