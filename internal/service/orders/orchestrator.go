package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
)

// DefaultValidationTimeout ограничивает ожидание ответа каталога товаров.
const DefaultValidationTimeout = 5 * time.Second

// Причины неуспешного создания заказа для метрик.
const (
	failureInput       = "input"
	failureValidation  = "validation"
	failurePricing     = "pricing"
	failureInvariants  = "invariants"
	failurePersistence = "persistence"
)

// Orchestrator описывает операции над заказами, доступные транспортному слою.
type Orchestrator interface {
	Create(ctx context.Context, lines []domain.OrderLineRequest) (domain.Order, error)
	FindAll(ctx context.Context, req domain.PageRequest) (domain.OrderPage, error)
	FindOne(ctx context.Context, id string) (domain.Order, error)
	ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)
}

// Metrics — метрики, которые пишет оркестратор.
type Metrics interface {
	RecordOrderCreated()
	RecordCreateFailed(reason string)
	RecordStatusChanged(status string)
	RecordValidation(result string, duration time.Duration)
	RecordEnrichmentFailed()
}

// Options задаёт необязательные зависимости оркестратора.
type Options struct {
	// ValidationTimeout — предел ожидания каталога; 0 означает DefaultValidationTimeout.
	ValidationTimeout time.Duration
	// StatusMachine — таблица переходов; nil означает разрешающую таблицу.
	StatusMachine *domain.StatusMachine
	// Publisher получает события после фиксации; nil отключает публикацию.
	Publisher domain.EventPublisher
	Metrics   Metrics
	Logger    *log.Entry

	now   func() time.Time
	newID func() string
}

type orchestrator struct {
	orders            domain.OrderRepository
	products          domain.ProductValidator
	statuses          *domain.StatusMachine
	publisher         domain.EventPublisher
	metrics           Metrics
	logger            *log.Entry
	validationTimeout time.Duration
	now               func() time.Time
	newID             func() string
}

// NewOrchestrator создаёт оркестратор заказов.
func NewOrchestrator(orders domain.OrderRepository, products domain.ProductValidator, opts Options) Orchestrator {
	o := &orchestrator{
		orders:            orders,
		products:          products,
		statuses:          opts.StatusMachine,
		publisher:         opts.Publisher,
		metrics:           opts.Metrics,
		logger:            opts.Logger,
		validationTimeout: opts.ValidationTimeout,
		now:               opts.now,
		newID:             opts.newID,
	}
	if o.statuses == nil {
		o.statuses = domain.PermissiveStatusMachine()
	}
	if o.metrics == nil {
		o.metrics = noopMetrics{}
	}
	if o.logger == nil {
		o.logger = log.WithField("component", "orders")
	}
	if o.validationTimeout <= 0 {
		o.validationTimeout = DefaultValidationTimeout
	}
	if o.now == nil {
		o.now = func() time.Time { return time.Now().UTC() }
	}
	if o.newID == nil {
		o.newID = uuid.NewString
	}
	return o
}

// Create проверяет товары в каталоге, пересчитывает суммы по ценам каталога
// и атомарно сохраняет заказ вместе с позициями.
func (o *orchestrator) Create(ctx context.Context, lines []domain.OrderLineRequest) (domain.Order, error) {
	logger := o.logger.WithField("operation", "create")

	if err := checkLineRequests(lines); err != nil {
		logger.WithError(err).Warn("order request rejected")
		return domain.Order{}, o.creationFailed(failureInput, err, err.Error())
	}

	ids := distinctRequestIDs(lines)
	catalog, err := o.validate(ctx, ids)
	if err != nil {
		logger.WithError(err).WithField("product_ids", ids).Warn("product validation failed")
		return domain.Order{}, o.creationFailed(failureValidation, domain.ErrValidationFailed, "product validation failed")
	}

	order, err := o.buildOrder(lines, catalog)
	if err != nil {
		logger.WithError(err).WithField("product_ids", ids).Error("authoritative price resolution failed")
		return domain.Order{}, o.creationFailed(failurePricing, err, "failed to create order")
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		joined := errors.Join(errs...)
		logger.WithError(joined).WithField("order_id", order.ID).Error("order invariants violated")
		return domain.Order{}, o.creationFailed(failureInvariants, joined, "failed to create order")
	}

	created, err := o.orders.Create(ctx, order)
	if err != nil {
		logger.WithError(err).WithField("order_id", order.ID).Error("persist order failed")
		return domain.Order{}, o.creationFailed(failurePersistence, nil, "failed to create order")
	}

	attachNames(&created, catalog)
	o.metrics.RecordOrderCreated()
	logger.WithFields(log.Fields{
		"order_id":     created.ID,
		"total_amount": created.TotalAmount.String(),
		"total_items":  created.TotalItems,
	}).Info("order created")

	o.publish(ctx, domain.OrderEvent{Type: domain.OrderEventCreated, Order: created, OccurredAt: created.CreatedAt})
	return created, nil
}

// FindAll возвращает страницу заказов без позиций и без названий товаров.
func (o *orchestrator) FindAll(ctx context.Context, req domain.PageRequest) (domain.OrderPage, error) {
	req = req.Normalize()

	items, total, err := o.orders.ListPage(ctx, domain.OrderFilter{Status: req.Status}, req.Offset(), req.Limit)
	if err != nil {
		o.logger.WithError(err).WithFields(log.Fields{
			"page":  req.Page,
			"limit": req.Limit,
		}).Error("list orders failed")
		return domain.OrderPage{}, domain.NewOperationError(domain.ErrStorageFailed, nil, "failed to list orders")
	}

	return domain.OrderPage{
		Orders: items,
		Meta: domain.PageMeta{
			Total:    total,
			Page:     req.Page,
			LastPage: domain.LastPage(total, req.Limit),
		},
	}, nil
}

// FindOne загружает заказ с позициями и подставляет названия товаров из каталога.
func (o *orchestrator) FindOne(ctx context.Context, id string) (domain.Order, error) {
	order, _, err := o.findOne(ctx, id)
	return order, err
}

func (o *orchestrator) findOne(ctx context.Context, id string) (domain.Order, map[int64]domain.Product, error) {
	logger := o.logger.WithField("order_id", id)

	order, err := o.orders.Get(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Order{}, nil, domain.NewOperationError(domain.ErrOrderNotFound, nil, fmt.Sprintf("order %s not found", id))
		}
		logger.WithError(err).Error("load order failed")
		return domain.Order{}, nil, domain.NewOperationError(domain.ErrStorageFailed, nil, fmt.Sprintf("failed to load order %s", id))
	}

	ids := order.ProductIDs()
	if len(ids) == 0 {
		return order, map[int64]domain.Product{}, nil
	}

	catalog, err := o.validate(ctx, ids)
	if err != nil {
		o.metrics.RecordEnrichmentFailed()
		logger.WithError(err).WithField("product_ids", ids).Warn("order enrichment failed")
		return domain.Order{}, nil, domain.NewOperationError(
			domain.ErrEnrichmentFailed,
			nil,
			fmt.Sprintf("failed to resolve products of order %s", id),
		)
	}

	attachNames(&order, catalog)
	return order, catalog, nil
}

// ChangeStatus переводит заказ в новый статус через таблицу переходов.
// Повторная установка текущего статуса ничего не меняет.
func (o *orchestrator) ChangeStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	logger := o.logger.WithFields(log.Fields{
		"operation": "change_status",
		"order_id":  id,
		"status":    status,
	})

	if !status.Valid() {
		logger.Warn("unknown target status")
		return domain.Order{}, statusChangeFailed(id, status, domain.ErrUnknownOrderStatus)
	}

	current, catalog, err := o.findOne(ctx, id)
	if err != nil {
		logger.WithError(err).Warn("status change aborted: order is not readable")
		return domain.Order{}, statusChangeFailed(id, status, err)
	}
	if current.Status == status {
		return current, nil
	}

	if err := o.statuses.Transition(current.Status, status); err != nil {
		logger.WithError(err).WithField("from", current.Status).Warn("status transition rejected")
		return domain.Order{}, statusChangeFailed(id, status, err)
	}

	updated, err := o.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.WithError(err).Error("persist status failed")
		return domain.Order{}, statusChangeFailed(id, status, err)
	}

	attachNames(&updated, catalog)
	o.metrics.RecordStatusChanged(string(status))
	logger.WithField("from", current.Status).Info("order status changed")

	o.publish(ctx, domain.OrderEvent{
		Type:           domain.OrderEventStatusChanged,
		Order:          updated,
		PreviousStatus: current.Status,
		OccurredAt:     updated.UpdatedAt,
	})
	return updated, nil
}

// validate делает один вызов каталога с ограничением по времени и проверяет,
// что в ответе есть каждый запрошенный товар.
func (o *orchestrator) validate(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.validationTimeout)
	defer cancel()

	start := time.Now()
	products, err := o.products.Validate(callCtx, ids)
	duration := time.Since(start)

	if err != nil {
		result := metrics.ValidationResultFailed
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			result = metrics.ValidationResultTimeout
		}
		o.metrics.RecordValidation(result, duration)
		return nil, err
	}

	catalog := make(map[int64]domain.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			o.metrics.RecordValidation(metrics.ValidationResultFailed, duration)
			return nil, fmt.Errorf("%w: id %d missing in response", domain.ErrProductNotFound, id)
		}
	}

	o.metrics.RecordValidation(metrics.ValidationResultOK, duration)
	return catalog, nil
}

// buildOrder собирает заказ по ценам каталога; цена из запроса игнорируется.
func (o *orchestrator) buildOrder(lines []domain.OrderLineRequest, catalog map[int64]domain.Product) (domain.Order, error) {
	now := o.now()
	order := domain.Order{
		ID:          o.newID(),
		Status:      domain.OrderStatusPending,
		TotalAmount: decimal.Zero,
		Lines:       make([]domain.OrderLine, 0, len(lines)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, line := range lines {
		product, ok := catalog[line.ProductID]
		if !ok {
			return domain.Order{}, fmt.Errorf("%w: product %d", domain.ErrPriceUnresolved, line.ProductID)
		}
		// цена приводится к точности NUMERIC(14,2) до расчёта суммы
		price := product.Price.Round(domain.MoneyScale)
		order.Lines = append(order.Lines, domain.OrderLine{
			ID:        o.newID(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
			CreatedAt: now,
		})
		order.TotalAmount = order.TotalAmount.Add(price.Mul(decimal.NewFromInt32(line.Quantity)))
		order.TotalItems += line.Quantity
	}

	return order, nil
}

func (o *orchestrator) creationFailed(reason string, cause error, message string) error {
	o.metrics.RecordCreateFailed(reason)
	return domain.NewOperationError(domain.ErrOrderCreationFailed, cause, message)
}

func (o *orchestrator) publish(ctx context.Context, event domain.OrderEvent) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		o.logger.WithError(err).WithFields(log.Fields{
			"event":    event.Type,
			"order_id": event.Order.ID,
		}).Warn("failed to publish order event")
	}
}

// statusChangeFailed сворачивает любую причину в ErrStatusChangeFailed,
// сохраняя класс причины для логов и errors.Is.
func statusChangeFailed(id string, status domain.OrderStatus, cause error) error {
	var reason error
	switch {
	case errors.Is(cause, domain.ErrOrderNotFound):
		reason = domain.ErrOrderNotFound
	case errors.Is(cause, domain.ErrEnrichmentFailed):
		reason = domain.ErrEnrichmentFailed
	case errors.Is(cause, domain.ErrStorageFailed):
		reason = domain.ErrStorageFailed
	case errors.Is(cause, domain.ErrStatusTransitionForbidden):
		reason = domain.ErrStatusTransitionForbidden
	case errors.Is(cause, domain.ErrUnknownOrderStatus):
		reason = domain.ErrUnknownOrderStatus
	}
	return domain.NewOperationError(
		domain.ErrStatusChangeFailed,
		reason,
		fmt.Sprintf("failed to change status of order %s to %s", id, status),
	)
}

func checkLineRequests(lines []domain.OrderLineRequest) error {
	if len(lines) == 0 {
		return domain.ErrLinesRequired
	}
	quantities := make([]int32, 0, len(lines))
	for _, line := range lines {
		if line.ProductID <= 0 {
			return domain.ErrProductIDInvalid
		}
		if line.Quantity <= 0 {
			return domain.ErrQuantityInvalid
		}
		quantities = append(quantities, line.Quantity)
	}
	if _, ok := domain.SumQuantities(quantities...); !ok {
		return domain.ErrTotalItemsOverflow
	}
	return nil
}

func distinctRequestIDs(lines []domain.OrderLineRequest) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	return domain.DistinctProductIDs(ids)
}

func attachNames(order *domain.Order, catalog map[int64]domain.Product) {
	for i := range order.Lines {
		if p, ok := catalog[order.Lines[i].ProductID]; ok {
			order.Lines[i].Name = p.Name
		}
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordOrderCreated()                    {}
func (noopMetrics) RecordCreateFailed(string)              {}
func (noopMetrics) RecordStatusChanged(string)             {}
func (noopMetrics) RecordValidation(string, time.Duration) {}
func (noopMetrics) RecordEnrichmentFailed()                {}

var _ Metrics = (*metrics.OrderMetrics)(nil)
