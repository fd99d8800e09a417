package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
)

// Dialect covers what differs between Postgres and SQLite for the
// resource tables.
type Dialect interface {
	Name() string
	DriverName() string
	// Args returns an empty argument list using the dialect's placeholders.
	Args() *Args
	Now() string
	// Contains binds value and matches rows whose column contains it
	// literally, ignoring case.
	Contains(column string, args *Args, value string) string
	Schema() string
	HasTable(ctx context.Context, db *sql.DB, name string) (bool, error)
	// MapError wraps constraint failures with ErrUniqueViolation or
	// ErrForeignKeyViolation.
	MapError(err error) error
}

// Args collects positional query arguments.
type Args struct {
	prefix string
	values []any
}

// Add binds v and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return a.prefix + strconv.Itoa(len(a.values))
}

func (a *Args) Values() []any { return a.values }
func (a *Args) Len() int      { return len(a.values) }

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns value into a substring pattern for LIKE ... ESCAPE '\'.
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func NewDialect(driver string) Dialect {
	if driver == "sqlite" {
		return SQLite{}
	}
	return Postgres{}
}
