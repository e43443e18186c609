package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// EventPublisher публикует события заказов в Kafka, ключ сообщения — ID заказа.
type EventPublisher struct {
	producer *Producer
	topic    string
}

// NewEventPublisher создаёт паблишер событий заказа.
func NewEventPublisher(producer *Producer, topic string) *EventPublisher {
	if topic == "" {
		topic = DefaultOrderEventsTopic
	}
	return &EventPublisher{producer: producer, topic: topic}
}

func (p *EventPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	if p == nil || p.producer == nil {
		return fmt.Errorf("kafka event publisher is not initialized")
	}

	payload, err := json.Marshal(NewOrderEventMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return p.producer.Send(ctx, p.topic, event.Order.ID, payload, map[string]string{
		HeaderEventType: string(event.Type),
	})
}

// NoopPublisher используется, когда Kafka не настроена.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }

var (
	_ domain.EventPublisher = (*EventPublisher)(nil)
	_ domain.EventPublisher = NoopPublisher{}
)
