package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

const (
	keyPrefix  = "orders:idem:"
	defaultTTL = 24 * time.Hour
)

// NewClient создаёт клиента Redis с короткими таймаутами на операции.
func NewClient(addr string) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

// IdempotencyStore хранит ключи идемпотентности в Redis.
// Резерв ключа делается через SET NX, срок жизни задаёт TTL ключа.
type IdempotencyStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

// NewIdempotencyStore создаёт хранилище поверх готового клиента.
func NewIdempotencyStore(client goredis.UniversalClient) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *IdempotencyStore) Begin(ctx context.Context, key, requestHash string, ttl time.Duration) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := s.now()
	record := domain.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Status:      domain.IdempotencyStatusProcessing,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("marshal idempotency record: %w", err)
	}

	// Вторая попытка нужна, если чужой ключ истёк между SET NX и GET.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := s.client.SetNX(ctx, keyPrefix+key, payload, ttl).Result()
		if err != nil {
			return domain.IdempotencyRecord{}, fmt.Errorf("reserve idempotency key: %w", err)
		}
		if ok {
			return record, nil
		}

		existing, err := s.get(ctx, key)
		if errors.Is(err, domain.ErrIdempotencyKeyNotFound) {
			continue
		}
		if err != nil {
			return domain.IdempotencyRecord{}, err
		}
		if existing.RequestHash != requestHash {
			return existing, domain.ErrIdempotencyHashMismatch
		}
		return existing, domain.ErrIdempotencyKeyAlreadyExists
	}

	return domain.IdempotencyRecord{}, fmt.Errorf("reserve idempotency key %q: %w", key, domain.ErrIdempotencyKeyAlreadyExists)
}

func (s *IdempotencyStore) Complete(ctx context.Context, key, orderID string) error {
	key = strings.TrimSpace(key)
	record, err := s.get(ctx, key)
	if err != nil {
		return err
	}

	record.Status = domain.IdempotencyStatusDone
	record.OrderID = orderID
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal idempotency record: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+key, payload, goredis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("complete idempotency key: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+strings.TrimSpace(key)).Err(); err != nil {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}

// Ping проверяет доступность Redis для readiness.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *IdempotencyStore) get(ctx context.Context, key string) (domain.IdempotencyRecord, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyNotFound
	}
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("load idempotency key: %w", err)
	}

	var record domain.IdempotencyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("decode idempotency record: %w", err)
	}
	return record, nil
}

var _ domain.IdempotencyStore = (*IdempotencyStore)(nil)
