package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres talks to PostgreSQL through pgx's database/sql driver.
type Postgres struct{}

func (Postgres) Name() string       { return "postgres" }
func (Postgres) DriverName() string { return "pgx" }
func (Postgres) Args() *Args        { return &Args{prefix: "$"} }
func (Postgres) Now() string        { return "NOW()" }
func (Postgres) Schema() string     { return postgresSchema }

func (Postgres) Contains(column string, args *Args, value string) string {
	return column + " ILIKE " + args.Add(likePattern(value)) + ` ESCAPE '\'`
}

func (Postgres) HasTable(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var ok bool
	row := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)`, name)
	if err := row.Scan(&ok); err != nil {
		return false, fmt.Errorf("lookup table %s: %w", name, err)
	}
	return ok, nil
}

func (Postgres) MapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return fmt.Errorf("%w: %s", ErrUniqueViolation, pgErr.ConstraintName)
	case "23503": // foreign_key_violation
		return fmt.Errorf("%w: %s", ErrForeignKeyViolation, pgErr.ConstraintName)
	}
	return err
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS category (
    id          UUID PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    created_by  UUID NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_by  UUID NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS task (
    id          UUID PRIMARY KEY,
    title       TEXT NOT NULL,
    done        BOOLEAN NOT NULL DEFAULT false,
    category_id UUID REFERENCES category(id) ON DELETE SET NULL,
    created_by  UUID NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_by  UUID NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_task_category ON task (category_id);
`
