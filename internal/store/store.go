package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"rest-core/internal/config"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// Store is the database handle shared by all model controllers.
type Store struct {
	DB      *sql.DB
	Dialect Dialect
}

// New opens and pings the configured database.
func New(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	d := NewDialect(cfg.Driver)

	if cfg.IsSQLite() && cfg.Name != ":memory:" && cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open(d.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name(), err)
	}
	s := &Store{DB: db, Dialect: d}

	if err := s.configure(ctx, cfg); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name(), err)
	}
	return s, nil
}

func (s *Store) configure(ctx context.Context, cfg config.DatabaseConfig) error {
	if _, ok := s.Dialect.(SQLite); !ok {
		if cfg.PoolSize > 0 {
			s.DB.SetMaxOpenConns(cfg.PoolSize)
		}
		return nil
	}

	// One connection: SQLite serializes writers, and every :memory:
	// connection would otherwise see its own empty database.
	s.DB.SetMaxOpenConns(1)
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON"} {
		if _, err := s.DB.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) Close() {
	s.DB.Close()
}

// Exec runs a write and returns the affected row count. Constraint
// failures come back as ErrUniqueViolation or ErrForeignKeyViolation.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, s.Dialect.MapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
