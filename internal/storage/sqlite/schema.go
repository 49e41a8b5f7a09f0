// Package sqlite persists collection state in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// schema holds the three relations of the collection store. Creation is
// idempotent so it runs on every process start.
const schema = `
CREATE TABLE IF NOT EXISTS areas (
	id TEXT PRIMARY KEY NOT NULL,
	name TEXT NOT NULL,
	article_url TEXT NOT NULL,
	thumbnail_url TEXT,
	country TEXT NOT NULL,
	type TEXT NOT NULL,
	discovered_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS articles (
	id TEXT PRIMARY KEY NOT NULL,
	name TEXT NOT NULL,
	article_url TEXT NOT NULL,
	thumbnail_url TEXT,
	area_id TEXT NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL,
	collected_at INTEGER,

	FOREIGN KEY (area_id) REFERENCES areas (id)
);

CREATE TABLE IF NOT EXISTS trophy_progress (
	id TEXT PRIMARY KEY NOT NULL,
	value INTEGER NOT NULL,
	completed_at INTEGER
);
`

// Open opens the shared database handle for the process. The engine keeps a
// single connection for its lifetime; SQLite serializes writes on it.
func Open(path string) (*sqlx.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return db, nil
}

// InitSchema enables write-ahead logging and foreign-key enforcement and
// creates the tables if absent. Callers must not issue queries until it
// returns without error.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("enable wal: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func fromNullMillis(value sql.NullInt64) *time.Time {
	if !value.Valid {
		return nil
	}
	t := fromMillis(value.Int64)
	return &t
}
