package kafka

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// Topics по умолчанию
const (
	DefaultProductsRequestTopic = "products.validate"
	DefaultProductsReplyTopic   = "orders.products.replies"
	DefaultOrderEventsTopic     = "orders.events"
)

// Kafka headers для request/reply и событий
const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderReplyTo       = "x-reply-to"
	HeaderEventType     = "x-event-type"
)

// OrderEventMessage — JSON-представление события заказа в топике.
type OrderEventMessage struct {
	EventType      domain.OrderEventType `json:"event_type"`
	OrderID        string                `json:"order_id"`
	Status         string                `json:"status"`
	PreviousStatus string                `json:"previous_status,omitempty"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	TotalItems     int32                 `json:"total_items"`
	Timestamp      time.Time             `json:"timestamp"`
}

// NewOrderEventMessage строит сообщение из доменного события.
func NewOrderEventMessage(event domain.OrderEvent) OrderEventMessage {
	ts := event.OccurredAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return OrderEventMessage{
		EventType:      event.Type,
		OrderID:        event.Order.ID,
		Status:         string(event.Order.Status),
		PreviousStatus: string(event.PreviousStatus),
		TotalAmount:    event.Order.TotalAmount,
		TotalItems:     event.Order.TotalItems,
		Timestamp:      ts,
	}
}

// ProductValidationRequest — запрос к сервису товаров.
type ProductValidationRequest struct {
	IDs []int64 `json:"ids"`
}

// ProductPayload — запись каталога в ответе сервиса товаров.
type ProductPayload struct {
	ID    int64           `json:"id"`
	Price decimal.Decimal `json:"price"`
	Name  string          `json:"name"`
}

// ProductValidationReply — ответ сервиса товаров. Непустой Error означает отказ.
type ProductValidationReply struct {
	Products []ProductPayload `json:"products"`
	Error    string           `json:"error,omitempty"`
}

// ToDomain переводит ответ в доменные записи.
func (r ProductValidationReply) ToDomain() []domain.Product {
	products := make([]domain.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, domain.Product{ID: p.ID, Price: p.Price, Name: p.Name})
	}
	return products
}
