package model

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ListOptions carries paging and ordering for list calls. Order fields
// prefixed with "-" sort descending.
type ListOptions struct {
	Limit    *int64   `json:"limit,omitempty"`
	Offset   *int64   `json:"offset,omitempty"`
	OrderBys OrderBys `json:"order_bys,omitempty"`
}

// OrderBys accepts either a single string or an array of strings.
type OrderBys []string

func (o *OrderBys) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*o = splitOrderBys(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("order_bys must be a string or an array of strings: %w", err)
	}
	*o = many
	return nil
}

func splitOrderBys(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type orderClause struct {
	column string
	dir    string
}

// resolve applies configured bounds and validates order fields against the
// columns the entity allows.
func (mm *ModelManager) resolve(opts *ListOptions, orderable map[string]bool) (limit, offset int64, orders []orderClause, err error) {
	limit = mm.limits.DefaultLimit
	if opts == nil {
		return limit, 0, nil, nil
	}

	if opts.Limit != nil {
		if *opts.Limit <= 0 {
			return 0, 0, nil, fmt.Errorf("%w: limit must be positive", ErrInvalidListOptions)
		}
		limit = *opts.Limit
		if limit > mm.limits.MaxLimit {
			limit = mm.limits.MaxLimit
		}
	}
	if opts.Offset != nil {
		if *opts.Offset < 0 {
			return 0, 0, nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidListOptions)
		}
		offset = *opts.Offset
	}

	for _, ob := range opts.OrderBys {
		dir := "ASC"
		col := ob
		if strings.HasPrefix(ob, "-") {
			dir = "DESC"
			col = ob[1:]
		}
		if !orderable[col] {
			return 0, 0, nil, fmt.Errorf("%w: unknown order field %q", ErrInvalidListOptions, col)
		}
		orders = append(orders, orderClause{column: col, dir: dir})
	}
	return limit, offset, orders, nil
}
