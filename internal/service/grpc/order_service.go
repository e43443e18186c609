package grpcsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/service/idempotency"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const idempotencyKeyHeader = "idempotency-key"

// OrderService реализует gRPC API поверх оркестратора заказов.
type OrderService struct {
	ordersv1.UnimplementedOrderServiceServer

	orders orders.Orchestrator
	guard  *idempotency.Guard
	logger *log.Entry
}

// NewOrderService конструирует сервис. guard == nil отключает поддержку idempotency-key.
func NewOrderService(orchestrator orders.Orchestrator, guard *idempotency.Guard, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.WithField("component", "order-service")
	}
	return &OrderService{
		orders: orchestrator,
		guard:  guard,
		logger: logger,
	}
}

// CreateOrder создаёт заказ. С метаданными idempotency-key повтор запроса возвращает уже созданный заказ.
func (s *OrderService) CreateOrder(ctx context.Context, req *ordersv1.CreateOrderRequest) (*ordersv1.CreateOrderResponse, error) {
	lines, err := toDomainLines(req)
	if err != nil {
		return nil, err
	}

	key := readIdempotencyKey(ctx)
	if s.guard == nil || key == "" {
		order, err := s.orders.Create(ctx, lines)
		if err != nil {
			return nil, s.toStatus(err, "CreateOrder")
		}
		return &ordersv1.CreateOrderResponse{Order: toAPIOrder(order)}, nil
	}

	hash, err := idempotency.HashRequest(ordersv1.OrderService_CreateOrder_FullMethodName, req)
	if err != nil {
		s.logger.WithError(err).Warn("failed to build idempotency request hash")
		return nil, status.Error(codes.Internal, "failed to initialize idempotency request")
	}

	var created domain.Order
	outcome, err := s.guard.Execute(ctx, key, hash, func(ctx context.Context) (string, error) {
		order, err := s.orders.Create(ctx, lines)
		if err != nil {
			return "", err
		}
		created = order
		return order.ID, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIdempotencyHashMismatch):
			return nil, status.Error(codes.AlreadyExists, "idempotency key is already used with different request payload")
		case errors.Is(err, domain.ErrIdempotencyInProgress):
			return nil, status.Error(codes.Aborted, "request with the same idempotency key is already processing")
		default:
			return nil, s.toStatus(err, "CreateOrder")
		}
	}

	if !outcome.Replayed {
		return &ordersv1.CreateOrderResponse{Order: toAPIOrder(created)}, nil
	}

	order, err := s.orders.FindOne(ctx, outcome.OrderID)
	if err != nil {
		return nil, s.toStatus(err, "CreateOrderReplay")
	}
	return &ordersv1.CreateOrderResponse{Order: toAPIOrder(order)}, nil
}

// ListOrders возвращает страницу заказов без названий товаров.
func (s *OrderService) ListOrders(ctx context.Context, req *ordersv1.ListOrdersRequest) (*ordersv1.ListOrdersResponse, error) {
	if req.GetPage() < 0 {
		return nil, status.Error(codes.InvalidArgument, "page must be >= 1")
	}
	if req.GetLimit() < 0 || req.GetLimit() > domain.MaxPageLimit {
		return nil, status.Errorf(codes.InvalidArgument, "limit must be between 1 and %d", domain.MaxPageLimit)
	}

	pageReq := domain.PageRequest{Page: int(req.GetPage()), Limit: int(req.GetLimit())}
	if req.GetStatus() != ordersv1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
		orderStatus, err := parseStatus(req.GetStatus())
		if err != nil {
			return nil, err
		}
		pageReq.Status = &orderStatus
	}

	page, err := s.orders.FindAll(ctx, pageReq)
	if err != nil {
		return nil, s.toStatus(err, "ListOrders")
	}

	result := make([]*ordersv1.Order, 0, len(page.Orders))
	for _, order := range page.Orders {
		result = append(result, toAPIOrder(order))
	}

	return &ordersv1.ListOrdersResponse{
		Orders: result,
		Meta: &ordersv1.PageMeta{
			Total:    int64(page.Meta.Total),
			Page:     int32(page.Meta.Page),     //nolint:gosec // страница ограничена входным int32.
			LastPage: int32(page.Meta.LastPage), //nolint:gosec // lastPage <= total.
		},
	}, nil
}

// GetOrder возвращает заказ с названиями товаров.
func (s *OrderService) GetOrder(ctx context.Context, req *ordersv1.GetOrderRequest) (*ordersv1.GetOrderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validateOrderID(req.GetOrderId()); err != nil {
		return nil, err
	}

	order, err := s.orders.FindOne(ctx, req.GetOrderId())
	if err != nil {
		return nil, s.toStatus(err, "GetOrder")
	}
	return &ordersv1.GetOrderResponse{Order: toAPIOrder(order)}, nil
}

// ChangeOrderStatus переводит заказ в новый статус.
func (s *OrderService) ChangeOrderStatus(ctx context.Context, req *ordersv1.ChangeOrderStatusRequest) (*ordersv1.ChangeOrderStatusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validateOrderID(req.GetOrderId()); err != nil {
		return nil, err
	}
	orderStatus, err := parseStatus(req.GetStatus())
	if err != nil {
		return nil, err
	}

	order, err := s.orders.ChangeStatus(ctx, req.GetOrderId(), orderStatus)
	if err != nil {
		return nil, s.toStatus(err, "ChangeOrderStatus")
	}
	return &ordersv1.ChangeOrderStatusResponse{Order: toAPIOrder(order)}, nil
}

// toStatus переводит ошибку оркестратора в gRPC статус. Причины наружу не отдаются.
func (s *OrderService) toStatus(err error, operation string) error {
	logger := s.logger.WithError(err).WithField("operation", operation)

	if _, ok := status.FromError(err); ok {
		return err
	}

	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		logger.Warn("order operation failed")
		return status.Error(codeFor(opErr.Kind), opErr.Message)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("order operation timed out")
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		logger.Error("unexpected order operation error")
		return status.Error(codes.Internal, "internal error")
	}
}

func codeFor(kind error) codes.Code {
	switch {
	case errors.Is(kind, domain.ErrOrderCreationFailed),
		errors.Is(kind, domain.ErrStatusChangeFailed),
		errors.Is(kind, domain.ErrValidationFailed):
		return codes.InvalidArgument
	case errors.Is(kind, domain.ErrOrderNotFound):
		return codes.NotFound
	case errors.Is(kind, domain.ErrEnrichmentFailed):
		return codes.FailedPrecondition
	case errors.Is(kind, domain.ErrStorageFailed):
		return codes.Internal
	default:
		return codes.Internal
	}
}

func toDomainLines(req *ordersv1.CreateOrderRequest) ([]domain.OrderLineRequest, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if len(req.GetLines()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "order must contain at least one line")
	}

	lines := make([]domain.OrderLineRequest, 0, len(req.GetLines()))
	quantities := make([]int32, 0, len(req.GetLines()))
	for idx, line := range req.GetLines() {
		if line == nil {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d] is nil", idx)
		}
		if line.GetProductId() <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d].product_id must be > 0", idx)
		}
		if line.GetQuantity() <= 0 {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d].quantity must be > 0", idx)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(line.GetPrice()))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d].price must be a decimal number", idx)
		}
		if !price.IsPositive() {
			return nil, status.Errorf(codes.InvalidArgument, "lines[%d].price must be > 0", idx)
		}
		lines = append(lines, domain.OrderLineRequest{
			ProductID: line.GetProductId(),
			Quantity:  line.GetQuantity(),
			Price:     price,
		})
		quantities = append(quantities, line.GetQuantity())
	}
	if _, ok := domain.SumQuantities(quantities...); !ok {
		return nil, status.Error(codes.InvalidArgument, "total quantity exceeds int32 range")
	}
	return lines, nil
}

func validateOrderID(id string) error {
	if id == "" {
		return status.Error(codes.InvalidArgument, "order_id is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return status.Error(codes.InvalidArgument, "order_id must be a valid UUID")
	}
	return nil
}

var (
	statusToDomain = map[ordersv1.OrderStatus]domain.OrderStatus{
		ordersv1.OrderStatus_ORDER_STATUS_PENDING:   domain.OrderStatusPending,
		ordersv1.OrderStatus_ORDER_STATUS_DELIVERED: domain.OrderStatusDelivered,
		ordersv1.OrderStatus_ORDER_STATUS_CANCELLED: domain.OrderStatusCancelled,
	}
	statusFromDomain = map[domain.OrderStatus]ordersv1.OrderStatus{
		domain.OrderStatusPending:   ordersv1.OrderStatus_ORDER_STATUS_PENDING,
		domain.OrderStatusDelivered: ordersv1.OrderStatus_ORDER_STATUS_DELIVERED,
		domain.OrderStatusCancelled: ordersv1.OrderStatus_ORDER_STATUS_CANCELLED,
	}
)

// parseStatus отклоняет UNSPECIFIED и номера вне словаря.
func parseStatus(raw ordersv1.OrderStatus) (domain.OrderStatus, error) {
	orderStatus, ok := statusToDomain[raw]
	if !ok {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("status must be one of %s", statusVocabulary()))
	}
	return orderStatus, nil
}

func statusVocabulary() string {
	statuses := domain.OrderStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, statusFromDomain[s].String())
	}
	return strings.Join(names, ", ")
}

func readIdempotencyKey(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(idempotencyKeyHeader)
		if len(values) > 0 {
			return strings.TrimSpace(values[0])
		}
	}
	return ""
}

func toAPIOrder(order domain.Order) *ordersv1.Order {
	result := &ordersv1.Order{
		Id:          order.ID,
		Status:      statusFromDomain[order.Status],
		TotalAmount: order.TotalAmount.StringFixed(domain.MoneyScale),
		TotalItems:  order.TotalItems,
		Paid:        order.Paid,
		CreatedAt:   timestamppb.New(order.CreatedAt),
		UpdatedAt:   timestamppb.New(order.UpdatedAt),
	}
	if len(order.Lines) == 0 {
		return result
	}

	result.Lines = make([]*ordersv1.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		result.Lines = append(result.Lines, &ordersv1.OrderLine{
			Id:        line.ID,
			ProductId: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price.StringFixed(domain.MoneyScale),
			Name:      line.Name,
		})
	}
	return result
}
