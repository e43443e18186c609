package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MoneyScale — число знаков после запятой у денежных колонок (NUMERIC(14,2)).
const MoneyScale int32 = 2

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — начальный статус только что созданного заказа.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusDelivered — заказ доставлен клиенту.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses возвращает весь словарь статусов в стабильном порядке.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled}
}

// Valid проверяет, что статус относится к объявленному словарю.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus разбирает статус из внешнего представления.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	if !status.Valid() {
		return "", ErrUnknownOrderStatus
	}
	return status, nil
}

// Product — запись авторитетного каталога товаров.
type Product struct {
	ID    int64
	Price decimal.Decimal
	Name  string
}

// OrderLineRequest — позиция из клиентского запроса.
// Price приходит от клиента и никогда не используется для расчёта сумм.
type OrderLineRequest struct {
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

// OrderLine — сохранённая позиция заказа.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID int64
	Quantity  int32
	// Price — цена из каталога на момент создания заказа, дальше не пересчитывается.
	Price decimal.Decimal
	// Name не хранится в БД и подставляется при чтении из ответа каталога.
	Name      string
	CreatedAt time.Time
}

// Order агрегирует состояние заказа и его позиции.
type Order struct {
	ID          string
	Status      OrderStatus
	TotalAmount decimal.Decimal
	TotalItems  int32
	Paid        bool
	PaidAt      *time.Time
	Lines       []OrderLine
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderFilter ограничивает выборку списка заказов.
type OrderFilter struct {
	// Status == nil означает "все статусы".
	Status *OrderStatus
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if !o.Status.Valid() {
		errs = append(errs, ErrUnknownOrderStatus)
	}
	if len(o.Lines) == 0 {
		errs = append(errs, ErrLinesRequired)
	}

	// Сверяем итоги заказа с позициями: price * quantity.
	calc := decimal.Zero
	var items int64
	for _, line := range o.Lines {
		if line.ProductID <= 0 {
			errs = append(errs, ErrProductIDInvalid)
		}
		if line.Quantity <= 0 {
			errs = append(errs, ErrQuantityInvalid)
		}
		if line.Price.IsNegative() {
			errs = append(errs, ErrPriceNegative)
		}
		calc = calc.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
		items += int64(line.Quantity)
	}
	if !calc.Equal(o.TotalAmount) {
		errs = append(errs, ErrAmountMismatch)
	}
	if items > math.MaxInt32 {
		errs = append(errs, ErrTotalItemsOverflow)
	} else if items != int64(o.TotalItems) {
		errs = append(errs, ErrItemsMismatch)
	}

	return errs
}

// SumQuantities складывает количества в int64; ok == false, если сумма не помещается в int32.
func SumQuantities(quantities ...int32) (int32, bool) {
	var total int64
	for _, q := range quantities {
		total += int64(q)
	}
	if total > math.MaxInt32 || total < math.MinInt32 {
		return 0, false
	}
	return int32(total), true
}

// ProductIDs возвращает уникальные идентификаторы товаров позиций в порядке первого появления.
func (o *Order) ProductIDs() []int64 {
	ids := make([]int64, 0, len(o.Lines))
	for _, line := range o.Lines {
		ids = append(ids, line.ProductID)
	}
	return DistinctProductIDs(ids)
}

// DistinctProductIDs убирает дубликаты, сохраняя порядок первого появления.
func DistinctProductIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// Clone возвращает глубокую копию заказа, чтобы хранилища не делили срез позиций с вызывающим кодом.
func (o Order) Clone() Order {
	dst := o
	if o.Lines != nil {
		dst.Lines = append([]OrderLine(nil), o.Lines...)
	}
	if o.PaidAt != nil {
		paidAt := *o.PaidAt
		dst.PaidAt = &paidAt
	}
	return dst
}
