package domain

import (
	"context"
	"time"
)

// ProductValidator описывает обращение к авторитетному сервису товаров.
type ProductValidator interface {
	// Validate возвращает записи каталога по набору id или ошибку,
	// если хотя бы один id неизвестен либо вызов не удался.
	Validate(ctx context.Context, ids []int64) ([]Product, error)
}

// EventPublisher публикует события жизненного цикла заказа.
type EventPublisher interface {
	// Publish передаёт событие наружу; ошибки не влияют на результат операции.
	Publish(ctx context.Context, event OrderEvent) error
}

// OrderEventType — тип события заказа.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent описывает публикуемое событие заказа.
type OrderEvent struct {
	Type           OrderEventType
	Order          Order
	PreviousStatus OrderStatus
	OccurredAt     time.Time
}

// IdempotencyStore хранит состояние обработки запросов по idempotency-key.
type IdempotencyStore interface {
	// Begin резервирует ключ. Если ключ уже есть, возвращает существующую запись
	// и ErrIdempotencyKeyAlreadyExists либо ErrIdempotencyHashMismatch.
	Begin(ctx context.Context, key, requestHash string, ttl time.Duration) (IdempotencyRecord, error)
	// Complete фиксирует успешный результат (ID созданного заказа).
	Complete(ctx context.Context, key, orderID string) error
	// Release снимает резерв после неуспешной обработки, чтобы запрос можно было повторить.
	Release(ctx context.Context, key string) error
}
