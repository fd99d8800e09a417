package rest

import (
	"context"

	"rest-core/internal/core"
	"rest-core/internal/model"
)

// HandlerFunc is a framework-agnostic request handler. Adapters such as
// Fiber turn it into a host framework handler.
type HandlerFunc func(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req Request) (*Response, error)

// Descriptor names a resource. Plural is used for the list handler and the
// route path; it defaults to Suffix + "s", so irregular plurals must be
// given explicitly.
type Descriptor struct {
	Suffix string
	Plural string
}

func (d Descriptor) plural() string {
	if d.Plural != "" {
		return d.Plural
	}
	return d.Suffix + "s"
}

// Names lists the generated handler names in create, get, list, update,
// delete order.
func (d Descriptor) Names() []string {
	return []string{
		"create_" + d.Suffix,
		"get_" + d.Suffix,
		"list_" + d.plural(),
		"update_" + d.Suffix,
		"delete_" + d.Suffix,
	}
}

// Handlers is the CRUD handler set for one resource. It holds no request
// state and is safe for concurrent use.
type Handlers[E, C, U, F any] struct {
	bmc  Controller[E, C, U, F]
	desc Descriptor
}

func NewHandlers[E, C, U, F any](bmc Controller[E, C, U, F], desc Descriptor) *Handlers[E, C, U, F] {
	return &Handlers[E, C, U, F]{bmc: bmc, desc: desc}
}

func (h *Handlers[E, C, U, F]) Descriptor() Descriptor {
	return h.desc
}

// Create stores the payload, then reads the entity back so the response
// carries server-computed fields.
func (h *Handlers[E, C, U, F]) Create(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req Request) (*Response, error) {
	params, err := bindBody[ParamsForCreate[C]](req)
	if err != nil {
		return nil, err
	}
	id, err := h.bmc.Create(ctx, rc, mm, params.Data)
	if err != nil {
		return nil, err
	}
	entity, err := h.bmc.Get(ctx, rc, mm, id)
	if err != nil {
		return nil, err
	}
	return Created(entity), nil
}

func (h *Handlers[E, C, U, F]) Get(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req Request) (*Response, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}
	entity, err := h.bmc.Get(ctx, rc, mm, id)
	if err != nil {
		return nil, err
	}
	return OK(entity), nil
}

func (h *Handlers[E, C, U, F]) List(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req Request) (*Response, error) {
	params, err := bindList[F](req)
	if err != nil {
		return nil, err
	}
	entities, err := h.bmc.List(ctx, rc, mm, params.Filters, params.ListOptions)
	if err != nil {
		return nil, err
	}
	// Ensure non-nil slice for JSON
	if entities == nil {
		entities = []E{}
	}
	return OK(entities), nil
}

// Update applies the payload, then reads the entity back.
func (h *Handlers[E, C, U, F]) Update(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req Request) (*Response, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}
	params, err := bindBody[ParamsForUpdate[U]](req)
	if err != nil {
		return nil, err
	}
	if err := h.bmc.Update(ctx, rc, mm, id, params.Data); err != nil {
		return nil, err
	}
	entity, err := h.bmc.Get(ctx, rc, mm, id)
	if err != nil {
		return nil, err
	}
	return OK(entity), nil
}

func (h *Handlers[E, C, U, F]) Delete(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, req Request) (*Response, error) {
	id, err := pathID(req)
	if err != nil {
		return nil, err
	}
	if err := h.bmc.Delete(ctx, rc, mm, id); err != nil {
		return nil, err
	}
	return NoContent(), nil
}
