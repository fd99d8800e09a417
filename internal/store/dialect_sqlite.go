package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const sqliteNow = "strftime('%Y-%m-%dT%H:%M:%fZ', 'now')"

// SQLite uses the pure-Go modernc.org/sqlite driver. Timestamps are
// stored as RFC 3339 text and UUIDs as text.
type SQLite struct{}

func (SQLite) Name() string       { return "sqlite" }
func (SQLite) DriverName() string { return "sqlite" }
func (SQLite) Args() *Args        { return &Args{prefix: "?"} }
func (SQLite) Now() string        { return sqliteNow }
func (SQLite) Schema() string     { return sqliteSchema }

// Contains relies on LIKE ignoring ASCII case.
func (SQLite) Contains(column string, args *Args, value string) string {
	return column + " LIKE " + args.Add(likePattern(value)) + ` ESCAPE '\'`
}

func (SQLite) HasTable(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var n int
	row := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name)
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return n > 0, nil
}

// MapError matches on message text; modernc does not export typed
// constraint codes through database/sql.
func (SQLite) MapError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	return err
}

var sqliteSchema = strings.ReplaceAll(`
CREATE TABLE IF NOT EXISTS category (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    created_by  TEXT NOT NULL,
    created_at  TEXT NOT NULL DEFAULT (NOW),
    updated_by  TEXT NOT NULL,
    updated_at  TEXT NOT NULL DEFAULT (NOW)
);

CREATE TABLE IF NOT EXISTS task (
    id          TEXT PRIMARY KEY,
    title       TEXT NOT NULL,
    done        INTEGER NOT NULL DEFAULT 0,
    category_id TEXT REFERENCES category(id) ON DELETE SET NULL,
    created_by  TEXT NOT NULL,
    created_at  TEXT NOT NULL DEFAULT (NOW),
    updated_by  TEXT NOT NULL,
    updated_at  TEXT NOT NULL DEFAULT (NOW)
);

CREATE INDEX IF NOT EXISTS idx_task_category ON task (category_id);
`, "NOW", sqliteNow)
