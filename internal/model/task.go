package model

import (
	"bytes"
	"context"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"rest-core/internal/core"
	"rest-core/internal/store"
)

type Task struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Done       bool            `json:"done"`
	CategoryID uuid.NullUUID   `json:"category_id"`
	CreatedBy  uuid.UUID       `json:"created_by"`
	CreatedAt  store.Timestamp `json:"created_at"`
	UpdatedBy  uuid.UUID       `json:"updated_by"`
	UpdatedAt  store.Timestamp `json:"updated_at"`
}

func (t *Task) scanDest() []any {
	return []any{&t.ID, &t.Title, &t.Done, &t.CategoryID, &t.CreatedBy, &t.CreatedAt, &t.UpdatedBy, &t.UpdatedAt}
}

type TaskForCreate struct {
	Title      string     `json:"title" validate:"required,max=200"`
	Done       bool       `json:"done"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

type TaskForUpdate struct {
	Title      *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Done       *bool      `json:"done,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	// ClearCategory is set by an explicit "category_id": null.
	ClearCategory bool `json:"-"`
}

func (u *TaskForUpdate) UnmarshalJSON(b []byte) error {
	type plain TaskForUpdate
	if err := json.Unmarshal(b, (*plain)(u)); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}
	if raw, ok := keys["category_id"]; ok && string(bytes.TrimSpace(raw)) == "null" {
		u.ClearCategory = true
	}
	return nil
}

// TaskFilter matches tasks whose title contains Title (case-insensitive)
// and whose other set fields are equal.
type TaskFilter struct {
	Title      *string    `json:"title,omitempty"`
	Done       *bool      `json:"done,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
}

func (f TaskFilter) conditions(d store.Dialect, args *store.Args) []string {
	var conds []string
	if f.Title != nil {
		conds = append(conds, d.Contains("title", args, *f.Title))
	}
	if f.Done != nil {
		conds = append(conds, "done = "+args.Add(*f.Done))
	}
	if f.CategoryID != nil {
		conds = append(conds, "category_id = "+args.Add(*f.CategoryID))
	}
	return conds
}

var taskTable = table{
	name:    "task",
	columns: []string{"id", "title", "done", "category_id", "created_by", "created_at", "updated_by", "updated_at"},
	orderable: map[string]bool{
		"title": true, "done": true, "created_at": true, "updated_at": true,
	},
}

// TaskBmc is the model controller for tasks.
type TaskBmc struct{}

func (TaskBmc) Create(ctx context.Context, rc *core.Ctx, mm *ModelManager, data TaskForCreate) (uuid.UUID, error) {
	if err := mm.rules.Check("task", "create", data); err != nil {
		return uuid.Nil, err
	}
	return insert(ctx, rc, mm, taskTable, []fieldValue{
		{"title", data.Title},
		{"done", data.Done},
		{"category_id", nullableUUID(data.CategoryID)},
	})
}

func (TaskBmc) Get(ctx context.Context, rc *core.Ctx, mm *ModelManager, id uuid.UUID) (Task, error) {
	return get[Task](ctx, mm, taskTable, id)
}

func (TaskBmc) List(ctx context.Context, rc *core.Ctx, mm *ModelManager, filters []TaskFilter, opts *ListOptions) ([]Task, error) {
	return list[Task](ctx, mm, taskTable, filters, opts)
}

func (TaskBmc) Update(ctx context.Context, rc *core.Ctx, mm *ModelManager, id uuid.UUID, data TaskForUpdate) error {
	if err := mm.rules.Check("task", "update", data); err != nil {
		return err
	}
	var fields []fieldValue
	if data.Title != nil {
		fields = append(fields, fieldValue{"title", *data.Title})
	}
	if data.Done != nil {
		fields = append(fields, fieldValue{"done", *data.Done})
	}
	switch {
	case data.CategoryID != nil:
		fields = append(fields, fieldValue{"category_id", *data.CategoryID})
	case data.ClearCategory:
		fields = append(fields, fieldValue{"category_id", nil})
	}
	return update(ctx, rc, mm, taskTable, id, fields)
}

func (TaskBmc) Delete(ctx context.Context, rc *core.Ctx, mm *ModelManager, id uuid.UUID) error {
	return remove(ctx, mm, taskTable, id)
}

func nullableUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return *id
}
