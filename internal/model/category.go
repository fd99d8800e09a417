package model

import (
	"context"

	"github.com/google/uuid"

	"rest-core/internal/core"
	"rest-core/internal/store"
)

type Category struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	CreatedBy uuid.UUID       `json:"created_by"`
	CreatedAt store.Timestamp `json:"created_at"`
	UpdatedBy uuid.UUID       `json:"updated_by"`
	UpdatedAt store.Timestamp `json:"updated_at"`
}

func (c *Category) scanDest() []any {
	return []any{&c.ID, &c.Name, &c.CreatedBy, &c.CreatedAt, &c.UpdatedBy, &c.UpdatedAt}
}

type CategoryForCreate struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CategoryForUpdate struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

type CategoryFilter struct {
	Name *string `json:"name,omitempty"`
}

func (f CategoryFilter) conditions(d store.Dialect, args *store.Args) []string {
	if f.Name == nil {
		return nil
	}
	return []string{d.Contains("name", args, *f.Name)}
}

var categoryTable = table{
	name:      "category",
	columns:   []string{"id", "name", "created_by", "created_at", "updated_by", "updated_at"},
	orderable: map[string]bool{"name": true, "created_at": true, "updated_at": true},
}

// CategoryBmc is the model controller for categories.
type CategoryBmc struct{}

func (CategoryBmc) Create(ctx context.Context, rc *core.Ctx, mm *ModelManager, data CategoryForCreate) (uuid.UUID, error) {
	if err := mm.rules.Check("category", "create", data); err != nil {
		return uuid.Nil, err
	}
	return insert(ctx, rc, mm, categoryTable, []fieldValue{{"name", data.Name}})
}

func (CategoryBmc) Get(ctx context.Context, rc *core.Ctx, mm *ModelManager, id uuid.UUID) (Category, error) {
	return get[Category](ctx, mm, categoryTable, id)
}

func (CategoryBmc) List(ctx context.Context, rc *core.Ctx, mm *ModelManager, filters []CategoryFilter, opts *ListOptions) ([]Category, error) {
	return list[Category](ctx, mm, categoryTable, filters, opts)
}

func (CategoryBmc) Update(ctx context.Context, rc *core.Ctx, mm *ModelManager, id uuid.UUID, data CategoryForUpdate) error {
	if err := mm.rules.Check("category", "update", data); err != nil {
		return err
	}
	var fields []fieldValue
	if data.Name != nil {
		fields = append(fields, fieldValue{"name", *data.Name})
	}
	return update(ctx, rc, mm, categoryTable, id, fields)
}

func (CategoryBmc) Delete(ctx context.Context, rc *core.Ctx, mm *ModelManager, id uuid.UUID) error {
	return remove(ctx, mm, categoryTable, id)
}
