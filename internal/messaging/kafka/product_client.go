package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// ErrProductServiceRejected — сервис товаров ответил ошибкой.
var ErrProductServiceRejected = errors.New("product service rejected request")

// ProductClient реализует ProductValidator поверх Kafka request/reply.
// Запрос уходит в requestTopic с заголовками x-correlation-id и x-reply-to,
// ответ приходит в replyTopic и сопоставляется с ожидающим вызовом по correlation id.
type ProductClient struct {
	producer     *Producer
	requestTopic string
	replyTopic   string
	logger       *log.Entry
	newID        func() string

	mu      sync.Mutex
	pending map[string]chan ProductValidationReply
}

// NewProductClient создаёт клиента. Ответы нужно передавать в HandleReply
// (обычно через Consumer, подписанный на replyTopic).
func NewProductClient(producer *Producer, requestTopic, replyTopic string, logger *log.Entry) *ProductClient {
	if requestTopic == "" {
		requestTopic = DefaultProductsRequestTopic
	}
	if replyTopic == "" {
		replyTopic = DefaultProductsReplyTopic
	}
	if logger == nil {
		logger = log.WithField("component", "product-client")
	}
	return &ProductClient{
		producer:     producer,
		requestTopic: requestTopic,
		replyTopic:   replyTopic,
		logger:       logger,
		newID:        uuid.NewString,
		pending:      make(map[string]chan ProductValidationReply),
	}
}

// Validate отправляет запрос и ждёт ответ, пока не истечёт ctx.
func (c *ProductClient) Validate(ctx context.Context, ids []int64) ([]domain.Product, error) {
	payload, err := json.Marshal(ProductValidationRequest{IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal product request: %w", err)
	}

	correlationID := c.newID()
	replies := c.register(correlationID)
	defer c.unregister(correlationID)

	if err := c.producer.Send(ctx, c.requestTopic, correlationID, payload, map[string]string{
		HeaderCorrelationID: correlationID,
		HeaderReplyTo:       c.replyTopic,
	}); err != nil {
		return nil, fmt.Errorf("send product request: %w", err)
	}

	select {
	case reply := <-replies:
		if reply.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrProductServiceRejected, reply.Error)
		}
		return reply.ToDomain(), nil
	case <-ctx.Done():
		return nil, fmt.Errorf("wait product reply %s: %w", correlationID, ctx.Err())
	}
}

// HandleReply передаёт ответ ожидающему вызову. Ответы без адресата отбрасываются.
func (c *ProductClient) HandleReply(_ context.Context, message *sarama.ConsumerMessage) error {
	correlationID := headerValue(message, HeaderCorrelationID)
	logger := c.logger.WithFields(log.Fields{
		"correlation_id": correlationID,
		"offset":         message.Offset,
	})
	if correlationID == "" {
		logger.Warn("product reply without correlation id dropped")
		return nil
	}

	var reply ProductValidationReply
	if err := json.Unmarshal(message.Value, &reply); err != nil {
		logger.WithError(err).Warn("malformed product reply dropped")
		reply = ProductValidationReply{Error: "malformed reply"}
	}

	c.mu.Lock()
	ch, ok := c.pending[correlationID]
	c.mu.Unlock()
	if !ok {
		logger.Debug("late product reply dropped")
		return nil
	}

	select {
	case ch <- reply:
	default:
		logger.Warn("duplicate product reply dropped")
	}
	return nil
}

// Pending возвращает число ожидающих ответа запросов.
func (c *ProductClient) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *ProductClient) register(correlationID string) chan ProductValidationReply {
	ch := make(chan ProductValidationReply, 1)
	c.mu.Lock()
	c.pending[correlationID] = ch
	c.mu.Unlock()
	return ch
}

func (c *ProductClient) unregister(correlationID string) {
	c.mu.Lock()
	delete(c.pending, correlationID)
	c.mu.Unlock()
}

var _ domain.ProductValidator = (*ProductClient)(nil)
