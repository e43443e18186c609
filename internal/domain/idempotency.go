package domain

import (
	"errors"
	"time"
)

// IdempotencyStatus описывает жизненный цикл ключа идемпотентности.
type IdempotencyStatus string

const (
	// IdempotencyStatusProcessing означает, что запрос принят и ещё обрабатывается.
	IdempotencyStatusProcessing IdempotencyStatus = "processing"
	// IdempotencyStatusDone означает, что заказ создан и его ID сохранён.
	IdempotencyStatusDone IdempotencyStatus = "done"
)

var (
	ErrIdempotencyKeyRequired      = errors.New("idempotency key is required")
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	ErrIdempotencyHashMismatch     = errors.New("idempotency key is used with different request")
	ErrIdempotencyKeyNotFound      = errors.New("idempotency key not found")
	ErrIdempotencyInProgress       = errors.New("request with this idempotency key is still in progress")
)

// IdempotencyRecord хранит состояние обработки запроса с idempotency-key.
type IdempotencyRecord struct {
	Key         string            `json:"key"`
	RequestHash string            `json:"request_hash"`
	Status      IdempotencyStatus `json:"status"`
	OrderID     string            `json:"order_id,omitempty"`
	ExpiresAt   time.Time         `json:"expires_at"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s IdempotencyStatus) Valid() bool {
	switch s {
	case IdempotencyStatusProcessing, IdempotencyStatusDone:
		return true
	default:
		return false
	}
}

// IsIdempotencyConflict проверяет, что ключ уже занят.
func IsIdempotencyConflict(err error) bool {
	return errors.Is(err, ErrIdempotencyKeyAlreadyExists) || errors.Is(err, ErrIdempotencyHashMismatch)
}
