package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

func TestGuard_ExecuteOnceAndReplay(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyStore(), time.Hour, nil)

	calls := 0
	create := func(context.Context) (string, error) {
		calls++
		return "order-1", nil
	}

	first, err := guard.Execute(ctx, "key", "hash", create)
	require.NoError(t, err)
	require.Equal(t, Outcome{OrderID: "order-1"}, first)

	second, err := guard.Execute(ctx, "key", "hash", create)
	require.NoError(t, err)
	require.Equal(t, Outcome{OrderID: "order-1", Replayed: true}, second)
	require.Equal(t, 1, calls)
}

func TestGuard_HashMismatch(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyStore(), time.Hour, nil)

	_, err := guard.Execute(ctx, "key", "hash-a", func(context.Context) (string, error) { return "order-1", nil })
	require.NoError(t, err)

	_, err = guard.Execute(ctx, "key", "hash-b", func(context.Context) (string, error) { return "order-2", nil })
	require.ErrorIs(t, err, domain.ErrIdempotencyHashMismatch)
}

func TestGuard_InProgress(t *testing.T) {
	ctx := context.Background()
	store := memory.NewIdempotencyStore()
	guard := NewGuard(store, time.Hour, nil)

	_, err := store.Begin(ctx, "key", "hash", time.Hour)
	require.NoError(t, err)

	_, err = guard.Execute(ctx, "key", "hash", func(context.Context) (string, error) {
		t.Fatal("create must not be called while first request is in flight")
		return "", nil
	})
	require.ErrorIs(t, err, domain.ErrIdempotencyInProgress)
}

func TestGuard_FailureReleasesKey(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyStore(), time.Hour, nil)

	boom := errors.New("validation failed")
	_, err := guard.Execute(ctx, "key", "hash", func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	outcome, err := guard.Execute(ctx, "key", "hash", func(context.Context) (string, error) { return "order-2", nil })
	require.NoError(t, err)
	require.Equal(t, "order-2", outcome.OrderID)
	require.False(t, outcome.Replayed)
}

func TestHashRequest(t *testing.T) {
	a, err := HashRequest("CreateOrder", wrapperspb.String("lines:1x2"))
	require.NoError(t, err)
	b, err := HashRequest("CreateOrder", wrapperspb.String("lines:1x2"))
	require.NoError(t, err)
	c, err := HashRequest("CreateOrder", wrapperspb.String("lines:1x3"))
	require.NoError(t, err)
	d, err := HashRequest("OtherMethod", wrapperspb.String("lines:1x2"))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.NotEqual(t, a, d, "method name is part of the hash")
	require.Len(t, a, 64)

	_, err = HashRequest("CreateOrder", nil)
	require.Error(t, err)
}
