package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rest-core/internal/core"
	"rest-core/internal/store"
)

// table describes how a controller's entity maps onto SQL.
type table struct {
	name      string
	columns   []string
	orderable map[string]bool
}

type fieldValue struct {
	column string
	value  any
}

// scannable is satisfied by pointers to entity structs.
type scannable[E any] interface {
	*E
	scanDest() []any
}

// sqlFilter turns one filter object into AND-ed SQL conditions.
type sqlFilter interface {
	conditions(d store.Dialect, args *store.Args) []string
}

func insert(ctx context.Context, rc *core.Ctx, mm *ModelManager, t table, fields []fieldValue) (uuid.UUID, error) {
	args := mm.store.Dialect.Args()
	id := uuid.New()

	cols := []string{"id", "created_by", "updated_by"}
	vals := []string{args.Add(id), args.Add(rc.UserID()), args.Add(rc.UserID())}
	for _, f := range fields {
		cols = append(cols, f.column)
		vals = append(vals, args.Add(f.value))
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", t.name, strings.Join(cols, ", "), strings.Join(vals, ", "))
	if _, err := mm.store.Exec(ctx, q, args.Values()...); err != nil {
		return uuid.Nil, fmt.Errorf("insert %s: %w", t.name, err)
	}
	return id, nil
}

func get[E any, P scannable[E]](ctx context.Context, mm *ModelManager, t table, id uuid.UUID) (E, error) {
	var e E
	args := mm.store.Dialect.Args()
	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = %s", strings.Join(t.columns, ", "), t.name, args.Add(id))

	err := mm.store.DB.QueryRowContext(ctx, q, args.Values()...).Scan(P(&e).scanDest()...)
	if errors.Is(err, sql.ErrNoRows) {
		return e, &ErrEntityNotFound{Entity: t.name, ID: id}
	}
	if err != nil {
		return e, fmt.Errorf("get %s/%s: %w", t.name, id, err)
	}
	return e, nil
}

func list[E any, P scannable[E], F sqlFilter](ctx context.Context, mm *ModelManager, t table, filters []F, opts *ListOptions) ([]E, error) {
	limit, offset, orders, err := mm.resolve(opts, t.orderable)
	if err != nil {
		return nil, err
	}

	d := mm.store.Dialect
	args := d.Args()

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(t.columns, ", "), t.name)
	if where := whereClause(d, args, filters); where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}

	b.WriteString(" ORDER BY ")
	for _, o := range orders {
		fmt.Fprintf(&b, "%s %s, ", o.column, o.dir)
	}
	b.WriteString("created_at ASC, id ASC")
	fmt.Fprintf(&b, " LIMIT %s OFFSET %s", args.Add(limit), args.Add(offset))

	rows, err := mm.store.DB.QueryContext(ctx, b.String(), args.Values()...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	defer rows.Close()

	results := make([]E, 0)
	for rows.Next() {
		var e E
		if err := rows.Scan(P(&e).scanDest()...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return results, nil
}

// whereClause ORs the filter objects together. An empty filter object
// matches everything, which makes the whole clause vacuous; nothing is
// bound in that case.
func whereClause[F sqlFilter](d store.Dialect, args *store.Args, filters []F) string {
	for _, f := range filters {
		if len(f.conditions(d, d.Args())) == 0 {
			return ""
		}
	}
	groups := make([]string, 0, len(filters))
	for _, f := range filters {
		groups = append(groups, "("+strings.Join(f.conditions(d, args), " AND ")+")")
	}
	return strings.Join(groups, " OR ")
}

func update(ctx context.Context, rc *core.Ctx, mm *ModelManager, t table, id uuid.UUID, fields []fieldValue) error {
	d := mm.store.Dialect
	args := d.Args()

	sets := []string{
		"updated_by = " + args.Add(rc.UserID()),
		"updated_at = " + d.Now(),
	}
	for _, f := range fields {
		sets = append(sets, f.column+" = "+args.Add(f.value))
	}

	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s", t.name, strings.Join(sets, ", "), args.Add(id))
	affected, err := mm.store.Exec(ctx, q, args.Values()...)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", t.name, id, err)
	}
	if affected == 0 {
		return &ErrEntityNotFound{Entity: t.name, ID: id}
	}
	return nil
}

func remove(ctx context.Context, mm *ModelManager, t table, id uuid.UUID) error {
	args := mm.store.Dialect.Args()
	q := fmt.Sprintf("DELETE FROM %s WHERE id = %s", t.name, args.Add(id))

	affected, err := mm.store.Exec(ctx, q, args.Values()...)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", t.name, id, err)
	}
	if affected == 0 {
		return &ErrEntityNotFound{Entity: t.name, ID: id}
	}
	return nil
}
