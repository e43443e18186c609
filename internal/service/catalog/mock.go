package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// MockService — in-memory каталог товаров, реализующий ProductValidator.
// Используется для локальной разработки и в тестах.
type MockService struct {
	mu       sync.Mutex
	products map[int64]domain.Product

	// ValidateErr, если задан, возвращается вместо ответа каталога.
	ValidateErr error

	calls [][]int64
}

// NewMockService возвращает каталог, заполненный переданными товарами.
func NewMockService(products ...domain.Product) *MockService {
	m := &MockService{products: make(map[int64]domain.Product, len(products))}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

// Put добавляет или заменяет товар.
func (m *MockService) Put(p domain.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[p.ID] = p
}

// Delete убирает товар из каталога.
func (m *MockService) Delete(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
}

// Validate возвращает записи по всем id либо ошибку, если хотя бы один неизвестен.
func (m *MockService) Validate(ctx context.Context, ids []int64) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, append([]int64(nil), ids...))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}

	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := m.products[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
		}
		result = append(result, p)
	}
	return result, nil
}

// Calls возвращает копию аргументов всех вызовов Validate.
func (m *MockService) Calls() [][]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]int64, len(m.calls))
	for i, c := range m.calls {
		out[i] = append([]int64(nil), c...)
	}
	return out
}

var _ domain.ProductValidator = (*MockService)(nil)
