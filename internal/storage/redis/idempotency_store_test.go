package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

func newTestStore(t *testing.T) (*IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := NewClient(srv.Addr())
	t.Cleanup(func() { _ = client.Close() })

	return NewIdempotencyStore(client), srv
}

func TestIdempotencyStore_BeginCompleteReplay(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestStore(t)

	record, err := store.Begin(ctx, "key-1", "hash-1", time.Hour)
	require.NoError(t, err)
	require.Equal(t, domain.IdempotencyStatusProcessing, record.Status)
	require.True(t, srv.Exists(keyPrefix+"key-1"))

	existing, err := store.Begin(ctx, "key-1", "hash-1", time.Hour)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)
	require.Equal(t, domain.IdempotencyStatusProcessing, existing.Status)

	require.NoError(t, store.Complete(ctx, "key-1", "order-1"))

	existing, err = store.Begin(ctx, "key-1", "hash-1", time.Hour)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyAlreadyExists)
	require.Equal(t, domain.IdempotencyStatusDone, existing.Status)
	require.Equal(t, "order-1", existing.OrderID)

	require.Greater(t, srv.TTL(keyPrefix+"key-1"), time.Duration(0), "complete must keep ttl")
}

func TestIdempotencyStore_HashMismatch(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.Begin(ctx, "key-2", "hash-a", time.Hour)
	require.NoError(t, err)

	_, err = store.Begin(ctx, "key-2", "hash-b", time.Hour)
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)
}

func TestIdempotencyStore_ReleaseAndExpiry(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestStore(t)

	_, err := store.Begin(ctx, "key-3", "hash", time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "key-3"))

	_, err = store.Begin(ctx, "key-3", "hash", time.Minute)
	require.NoError(t, err, "released key must be reusable")

	srv.FastForward(2 * time.Minute)
	_, err = store.Begin(ctx, "key-3", "other-hash", time.Minute)
	require.NoError(t, err, "expired key must be reusable")
}

func TestIdempotencyStore_Errors(t *testing.T) {
	ctx := context.Background()
	store, srv := newTestStore(t)

	_, err := store.Begin(ctx, " ", "hash", time.Minute)
	require.ErrorIs(t, err, domain.ErrIdempotencyKeyRequired)

	require.ErrorIs(t, store.Complete(ctx, "missing", "order-1"), domain.ErrIdempotencyKeyNotFound)

	require.NoError(t, store.Ping(ctx))
	srv.Close()
	require.Error(t, store.Ping(ctx))
}
