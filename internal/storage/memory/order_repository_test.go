package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
)

func newOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:          id,
		Status:      domain.OrderStatusPending,
		TotalAmount: decimal.NewFromInt(20),
		TotalItems:  2,
		Lines: []domain.OrderLine{
			{ID: id + "-line-1", ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(10), Name: "Widget", CreatedAt: createdAt},
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())

	created, err := repo.Create(ctx, order)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Lines[0].OrderID != order.ID {
		t.Fatalf("expected line order_id %s, got %s", order.ID, created.Lines[0].OrderID)
	}
	if created.Lines[0].Name != "" {
		t.Fatalf("product name must not be persisted")
	}

	stored, err := repo.Get(ctx, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID || len(stored.Lines) != 1 {
		t.Fatalf("unexpected stored order: %+v", stored)
	}

	if _, err := repo.Create(ctx, order); !errors.Is(err, domain.ErrOrderAlreadyExists) {
		t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := memory.NewOrderRepository()
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())
	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	order.Lines[0].Quantity = 100
	got, _ := repo.Get(ctx, order.ID)
	got.Lines[0].Quantity = 50

	again, _ := repo.Get(ctx, order.ID)
	if again.Lines[0].Quantity != 2 {
		t.Fatalf("repository state leaked: quantity=%d", again.Lines[0].Quantity)
	}
}

func TestOrderRepository_ListPage(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	base := time.Now().UTC()

	for i := 0; i < 5; i++ {
		order := newOrder(fmt.Sprintf("order-%d", i), base.Add(time.Duration(i)*time.Minute))
		if i%2 == 1 {
			order.Status = domain.OrderStatusCancelled
		}
		if _, err := repo.Create(ctx, order); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, total, err := repo.ListPage(ctx, domain.OrderFilter{}, 0, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(page) != 2 {
		t.Fatalf("expected total=5 len=2, got total=%d len=%d", total, len(page))
	}
	if page[0].ID != "order-4" || page[1].ID != "order-3" {
		t.Fatalf("unexpected order: %s, %s", page[0].ID, page[1].ID)
	}
	if page[0].Lines != nil {
		t.Fatalf("list view must not contain lines")
	}

	cancelled := domain.OrderStatusCancelled
	page, total, err = repo.ListPage(ctx, domain.OrderFilter{Status: &cancelled}, 0, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(page) != 2 {
		t.Fatalf("expected 2 cancelled orders, got total=%d len=%d", total, len(page))
	}

	page, total, err = repo.ListPage(ctx, domain.OrderFilter{}, 10, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 5 || len(page) != 0 {
		t.Fatalf("expected empty page past the end, got total=%d len=%d", total, len(page))
	}
}

func TestOrderRepository_ListPageTieBreakByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	at := time.Now().UTC()

	for _, id := range []string{"a", "c", "b"} {
		if _, err := repo.Create(ctx, newOrder(id, at)); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, _, err := repo.ListPage(ctx, domain.OrderFilter{}, 0, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page[0].ID != "c" || page[1].ID != "b" || page[2].ID != "a" {
		t.Fatalf("unexpected tie-break order: %s %s %s", page[0].ID, page[1].ID, page[2].ID)
	}
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC().Add(-time.Hour))
	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, order.ID, domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != domain.OrderStatusDelivered {
		t.Fatalf("expected DELIVERED, got %s", updated.Status)
	}
	if !updated.UpdatedAt.After(order.UpdatedAt) {
		t.Fatalf("expected updated_at to move forward")
	}
	if len(updated.Lines) != 1 {
		t.Fatalf("expected lines to be returned")
	}

	if _, err := repo.UpdateStatus(ctx, "missing", domain.OrderStatusDelivered); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, order.ID, "SHIPPED"); !errors.Is(err, domain.ErrUnknownOrderStatus) {
		t.Fatalf("expected ErrUnknownOrderStatus, got %v", err)
	}
}

func TestOrderRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := memory.NewOrderRepository()
	if _, err := repo.Create(ctx, newOrder("order-1", time.Now())); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
