package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore — in-memory хранилище ключей идемпотентности.
// Просроченные записи считаются отсутствующими и удаляются DeleteExpired.
type IdempotencyStore struct {
	mu    sync.RWMutex
	items map[string]domain.IdempotencyRecord
	now   func() time.Time
}

// NewIdempotencyStore создаёт in-memory реализацию IdempotencyStore.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		items: make(map[string]domain.IdempotencyRecord),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *IdempotencyStore) Begin(_ context.Context, key, requestHash string, ttl time.Duration) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.items[key]; ok && existing.ExpiresAt.After(now) {
		if existing.RequestHash != requestHash {
			return existing, domain.ErrIdempotencyHashMismatch
		}
		return existing, domain.ErrIdempotencyKeyAlreadyExists
	}

	record := domain.IdempotencyRecord{
		Key:         key,
		RequestHash: requestHash,
		Status:      domain.IdempotencyStatusProcessing,
		ExpiresAt:   now.Add(ttl),
		CreatedAt:   now,
	}
	s.items[key] = record
	return record, nil
}

func (s *IdempotencyStore) Complete(_ context.Context, key, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.items[strings.TrimSpace(key)]
	if !ok {
		return domain.ErrIdempotencyKeyNotFound
	}
	record.Status = domain.IdempotencyStatusDone
	record.OrderID = orderID
	s.items[record.Key] = record
	return nil
}

func (s *IdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, strings.TrimSpace(key))
	return nil
}

// DeleteExpired удаляет записи с истёкшим TTL, не больше limit за вызов (если limit > 0).
func (s *IdempotencyStore) DeleteExpired(_ context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, record := range s.items {
		if record.ExpiresAt.After(before) {
			continue
		}

		delete(s.items, key)
		removed++
		if limit > 0 && removed >= limit {
			break
		}
	}

	return removed, nil
}

// Len возвращает число хранимых ключей.
func (s *IdempotencyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

var _ domain.IdempotencyStore = (*IdempotencyStore)(nil)
