package events

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"rest-core/internal/config"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event describes a committed write to an entity.
type Event struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	writer MessageWriter
}

func NewPublisher(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

// NewKafkaWriter builds a writer that keys messages by entity id so that
// events for one entity land on one partition in order.
func NewKafkaWriter(cfg config.EventsConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func (p *Publisher) Publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.ID.String()),
		Value: value,
	}); err != nil {
		return fmt.Errorf("publish %s %s: %w", e.Entity, e.Action, err)
	}
	return nil
}
