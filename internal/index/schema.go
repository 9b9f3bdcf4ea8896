// Package index stores pages in SQLite and serves them back as a content source.
package index

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pages (
	name    TEXT PRIMARY KEY,
	time    TEXT NOT NULL,
	version TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS blocks (
	id       TEXT PRIMARY KEY,
	page     TEXT NOT NULL REFERENCES pages(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	kind     TEXT NOT NULL,
	text     TEXT NOT NULL DEFAULT '',
	level    INTEGER NOT NULL DEFAULT 0,
	style    TEXT NOT NULL DEFAULT '',
	items    TEXT NOT NULL DEFAULT '[]',
	UNIQUE(page, position)
);

CREATE INDEX IF NOT EXISTS idx_blocks_page ON blocks(page, position);
`

// DB wraps a sql.DB with page-specific operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("index: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
