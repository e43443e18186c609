package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

func newTestProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()
	mockProducer := mocks.NewSyncProducer(t, nil)
	return NewProducerWithClient(mockProducer, log.WithField("component", "kafka-producer-test")), mockProducer
}

func TestProducer_PublishEvent(t *testing.T) {
	producer, mockProducer := newTestProducer(t)

	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != DefaultOrderEventsTopic {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "order-123" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})

	if err := producer.PublishEvent(DefaultOrderEventsTopic, "order-123", map[string]string{"a": "b"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	producer, mockProducer := newTestProducer(t)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	if err := producer.PublishEvent(DefaultOrderEventsTopic, "order-123", nil); err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	producer, mockProducer := newTestProducer(t)

	if err := producer.PublishEvent(DefaultOrderEventsTopic, "k", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_SendHeaders(t *testing.T) {
	producer, mockProducer := newTestProducer(t)

	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if len(msg.Headers) != 1 || string(msg.Headers[0].Key) != HeaderCorrelationID || string(msg.Headers[0].Value) != "corr-1" {
			return errors.New("missing correlation header")
		}
		return nil
	})

	if err := producer.Send(context.Background(), "topic", "k", []byte("{}"), map[string]string{HeaderCorrelationID: "corr-1"}); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_SendCanceledContext(t *testing.T) {
	producer, mockProducer := newTestProducer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := producer.Send(ctx, "topic", "k", nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewOrderEventMessage(t *testing.T) {
	occurred := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	event := domain.OrderEvent{
		Type: domain.OrderEventStatusChanged,
		Order: domain.Order{
			ID:          "order-1",
			Status:      domain.OrderStatusDelivered,
			TotalAmount: decimal.RequireFromString("12.50"),
			TotalItems:  2,
		},
		PreviousStatus: domain.OrderStatusPending,
		OccurredAt:     occurred,
	}

	msg := NewOrderEventMessage(event)
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["event_type"] != "order.status_changed" {
		t.Errorf("unexpected event_type %v", decoded["event_type"])
	}
	if decoded["previous_status"] != "PENDING" || decoded["status"] != "DELIVERED" {
		t.Errorf("unexpected statuses %v -> %v", decoded["previous_status"], decoded["status"])
	}
	if decoded["total_amount"] != "12.5" {
		t.Errorf("unexpected total_amount %v", decoded["total_amount"])
	}
	if !msg.Timestamp.Equal(occurred) {
		t.Errorf("unexpected timestamp %v", msg.Timestamp)
	}
}
