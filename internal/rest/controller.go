package rest

import (
	"context"

	"github.com/google/uuid"

	"rest-core/internal/core"
	"rest-core/internal/model"
)

// Controller is the capability set a model controller needs for its
// resource to get the five CRUD handlers. E is the entity, C and U the
// create and update payloads, F the filter.
type Controller[E, C, U, F any] interface {
	Create(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, data C) (uuid.UUID, error)
	Get(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID) (E, error)
	List(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, filters []F, opts *model.ListOptions) ([]E, error)
	Update(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID, data U) error
	Delete(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID) error
}
