package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rest-core/internal/core"
	"rest-core/internal/model"
	"rest-core/internal/rest"
)

type publishing[E, C, U, F any] struct {
	inner  rest.Controller[E, C, U, F]
	entity string
	pub    *Publisher
}

// Wrap returns a controller that publishes an Event after each successful
// write of inner. Publish failures are logged and never fail the write.
// A nil publisher returns inner unchanged.
func Wrap[E, C, U, F any](inner rest.Controller[E, C, U, F], entity string, pub *Publisher) rest.Controller[E, C, U, F] {
	if pub == nil {
		return inner
	}
	return &publishing[E, C, U, F]{inner: inner, entity: entity, pub: pub}
}

func (p *publishing[E, C, U, F]) Create(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, data C) (uuid.UUID, error) {
	id, err := p.inner.Create(ctx, rc, mm, data)
	if err != nil {
		return id, err
	}
	p.emit(ctx, rc, ActionCreated, id)
	return id, nil
}

func (p *publishing[E, C, U, F]) Get(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID) (E, error) {
	return p.inner.Get(ctx, rc, mm, id)
}

func (p *publishing[E, C, U, F]) List(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, filters []F, opts *model.ListOptions) ([]E, error) {
	return p.inner.List(ctx, rc, mm, filters, opts)
}

func (p *publishing[E, C, U, F]) Update(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID, data U) error {
	if err := p.inner.Update(ctx, rc, mm, id, data); err != nil {
		return err
	}
	p.emit(ctx, rc, ActionUpdated, id)
	return nil
}

func (p *publishing[E, C, U, F]) Delete(ctx context.Context, rc *core.Ctx, mm *model.ModelManager, id uuid.UUID) error {
	if err := p.inner.Delete(ctx, rc, mm, id); err != nil {
		return err
	}
	p.emit(ctx, rc, ActionDeleted, id)
	return nil
}

func (p *publishing[E, C, U, F]) emit(ctx context.Context, rc *core.Ctx, action string, id uuid.UUID) {
	err := p.pub.Publish(ctx, Event{
		Entity:     p.entity,
		Action:     action,
		ID:         id,
		UserID:     rc.UserID(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity": p.entity,
			"action": action,
			"id":     id.String(),
		}).WithError(err).Warn("change event not published")
	}
}
