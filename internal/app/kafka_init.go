package app

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
)

// replyGroupPrefix — у каждого экземпляра своя consumer group, чтобы ответ
// каталога дошёл до того процесса, который ждёт его по correlation id.
const replyGroupPrefix = "orders-product-replies-"

// initKafkaProducer инициализирует Kafka producer если brokers не пустой.
// Возвращает nil, nil если brokers пустой.
func initKafkaProducer(brokers []string, logger *log.Entry) (*kafka.Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(brokers)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer")
		return nil, err
	}

	logger.WithField("brokers", brokers).Info("kafka producer initialized")
	return producer, nil
}

// initProductClient поднимает ProductValidator поверх Kafka request/reply
// и consumer, который доставляет ответы ожидающим запросам.
func initProductClient(cfg Config, producer *kafka.Producer, logger *log.Entry) (*kafka.ProductClient, *kafka.Consumer, error) {
	if producer == nil {
		return nil, nil, fmt.Errorf("kafka product validator requires kafka producer")
	}

	client := kafka.NewProductClient(
		producer,
		cfg.ProductsRequestTopic,
		cfg.ProductsReplyTopic,
		logger.WithField("layer", "product-client"),
	)

	groupID := replyGroupPrefix + uuid.NewString()
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, groupID, []string{cfg.ProductsReplyTopic}, client.HandleReply)
	if err != nil {
		return nil, nil, fmt.Errorf("create product reply consumer: %w", err)
	}

	logger.WithFields(log.Fields{
		"request_topic": cfg.ProductsRequestTopic,
		"reply_topic":   cfg.ProductsReplyTopic,
		"group":         groupID,
	}).Info("kafka product validator initialized")
	return client, consumer, nil
}

// closeKafka закрывает Kafka producer если он не nil.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}

	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
	} else {
		logger.Info("kafka producer closed")
	}
}
