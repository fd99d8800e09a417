package rest

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rest-core/internal/core"
	"rest-core/internal/model"
)

type widget struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type widgetForCreate struct {
	Name string `json:"name" validate:"required"`
}

type widgetForUpdate struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type widgetFilter struct {
	Name string `json:"name"`
}

type mockBmc struct {
	mock.Mock
}

func (m *mockBmc) Create(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, data widgetForCreate) (uuid.UUID, error) {
	args := m.Called(ctx, rc, mm, data)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockBmc) Get(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID) (widget, error) {
	args := m.Called(ctx, rc, mm, id)
	return args.Get(0).(widget), args.Error(1)
}

func (m *mockBmc) List(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, filters []widgetFilter, opts *model.ListOptions) ([]widget, error) {
	args := m.Called(ctx, rc, mm, filters, opts)
	entities, _ := args.Get(0).([]widget)
	return entities, args.Error(1)
}

func (m *mockBmc) Update(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID, data widgetForUpdate) error {
	args := m.Called(ctx, rc, mm, id, data)
	return args.Error(0)
}

func (m *mockBmc) Delete(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID) error {
	args := m.Called(ctx, rc, mm, id)
	return args.Error(0)
}

type fakeRequest struct {
	params map[string]string
	query  map[string]string
	body   string
}

func (r fakeRequest) Param(name string) string { return r.params[name] }
func (r fakeRequest) Query(name string) string { return r.query[name] }
func (r fakeRequest) Body() []byte             { return []byte(r.body) }

func newWidgetHandlers(bmc *mockBmc) *Handlers[widget, widgetForCreate, widgetForUpdate, widgetFilter] {
	return NewHandlers[widget, widgetForCreate, widgetForUpdate, widgetFilter](bmc, Descriptor{Suffix: "widget"})
}
