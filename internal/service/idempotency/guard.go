package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// DefaultTTL — срок хранения ключа, если не задан в конфигурации.
const DefaultTTL = 24 * time.Hour

// Outcome — результат выполнения запроса под ключом идемпотентности.
type Outcome struct {
	OrderID string
	// Replayed означает, что заказ был создан раньше и возвращён из хранилища.
	Replayed bool
}

// Guard гарантирует, что создание заказа выполнится не больше одного раза на ключ.
type Guard struct {
	store  domain.IdempotencyStore
	ttl    time.Duration
	logger *log.Entry
}

// NewGuard создаёт guard поверх хранилища ключей.
func NewGuard(store domain.IdempotencyStore, ttl time.Duration, logger *log.Entry) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.WithField("component", "idempotency")
	}
	return &Guard{store: store, ttl: ttl, logger: logger}
}

// Execute резервирует ключ и вызывает create. Повтор с тем же ключом и тем же телом
// возвращает ранее созданный заказ, с другим телом — ErrIdempotencyHashMismatch,
// пока первый запрос выполняется — ErrIdempotencyInProgress.
// Неуспешный create снимает резерв, чтобы клиент мог повторить запрос.
func (g *Guard) Execute(ctx context.Context, key, requestHash string, create func(ctx context.Context) (string, error)) (Outcome, error) {
	logger := g.logger.WithField("idempotency_key", key)

	record, err := g.store.Begin(ctx, key, requestHash, g.ttl)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrIdempotencyHashMismatch):
		logger.Warn("idempotency key reused with different payload")
		return Outcome{}, err
	case errors.Is(err, domain.ErrIdempotencyKeyAlreadyExists):
		if record.Status == domain.IdempotencyStatusDone && record.OrderID != "" {
			logger.WithField("order_id", record.OrderID).Info("idempotent replay")
			return Outcome{OrderID: record.OrderID, Replayed: true}, nil
		}
		return Outcome{}, domain.ErrIdempotencyInProgress
	default:
		return Outcome{}, fmt.Errorf("begin idempotent request: %w", err)
	}

	orderID, err := create(ctx)
	if err != nil {
		if releaseErr := g.store.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
			logger.WithError(releaseErr).Warn("failed to release idempotency key")
		}
		return Outcome{}, err
	}

	if err := g.store.Complete(context.WithoutCancel(ctx), key, orderID); err != nil {
		// Заказ уже создан: ошибка фиксации ключа не должна превращаться в ошибку запроса.
		logger.WithError(err).WithField("order_id", orderID).Error("failed to complete idempotency key")
	}
	return Outcome{OrderID: orderID}, nil
}

// HashRequest вычисляет sha256 от имени метода и детерминированной protobuf-сериализации запроса.
func HashRequest(method string, request proto.Message) (string, error) {
	if request == nil {
		return "", errors.New("request is nil")
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal request for hashing: %w", err)
	}

	payload := make([]byte, 0, len(method)+1+len(data))
	payload = append(payload, method...)
	payload = append(payload, ':')
	payload = append(payload, data...)

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
