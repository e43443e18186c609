package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

// MessageHandler обрабатывает сообщение из Kafka
type MessageHandler func(ctx context.Context, message *sarama.ConsumerMessage) error

// ErrConsumerNotAssigned — группа ещё не получила партиции.
var ErrConsumerNotAssigned = errors.New("kafka consumer is waiting for partition assignment")

// Consumer читает топики через consumer group и передаёт сообщения в handler
type Consumer struct {
	consumer sarama.ConsumerGroup
	topics   []string
	handler  MessageHandler
	logger   *log.Entry
	wg       sync.WaitGroup

	assigned     chan struct{}
	assignedOnce sync.Once
}

// NewConsumer создает новый Kafka consumer, читающий только новые сообщения
func NewConsumer(brokers []string, groupID string, topics []string, handler MessageHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	return newConsumer(consumer, topics, handler, log.WithFields(log.Fields{"component": "kafka-consumer", "group": groupID})), nil
}

func newConsumer(group sarama.ConsumerGroup, topics []string, handler MessageHandler, logger *log.Entry) *Consumer {
	return &Consumer{
		consumer: group,
		topics:   topics,
		handler:  handler,
		logger:   logger,
		assigned: make(chan struct{}),
	}
}

// Start запускает consumer
func (c *Consumer) Start(ctx context.Context) error {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			// Consume должен вызываться в цикле, так как при rebalance он завершается
			if err := c.consumer.Consume(ctx, c.topics, c); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				c.logger.WithError(err).Error("error from consumer")
			}

			if ctx.Err() != nil {
				return
			}
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for err := range c.consumer.Errors() {
			c.logger.WithError(err).Error("consumer error")
		}
	}()

	c.logger.WithField("topics", c.topics).Info("kafka consumer started")
	return nil
}

// Stop останавливает consumer
func (c *Consumer) Stop() error {
	if err := c.consumer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("kafka consumer stopped")
	return nil
}

// Assigned закрывается после первого назначения партиций.
// С OffsetNewest сообщения, записанные раньше, группа не увидит.
func (c *Consumer) Assigned() <-chan struct{} {
	return c.assigned
}

// CheckAssigned подходит для readiness: ошибка, пока партиции не назначены.
func (c *Consumer) CheckAssigned(ctx context.Context) error {
	select {
	case <-c.assigned:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrConsumerNotAssigned
	}
}

// Setup вызывается при старте consumer session
func (c *Consumer) Setup(session sarama.ConsumerGroupSession) error {
	c.assignedOnce.Do(func() {
		c.logger.WithField("claims", session.Claims()).Info("kafka consumer partitions assigned")
		close(c.assigned)
	})
	return nil
}

// Cleanup вызывается при завершении consumer session
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim обрабатывает сообщения из partition
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			fields := log.Fields{
				"topic":     message.Topic,
				"partition": message.Partition,
				"offset":    message.Offset,
			}
			c.logger.WithFields(fields).Debug("received message")

			if err := c.handler(session.Context(), message); err != nil {
				// Не маркируем: сообщение будет перечитано после rebalance
				c.logger.WithError(err).WithFields(fields).Error("message processing failed")
				continue
			}

			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}
