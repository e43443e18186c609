package kafka

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
)

// RetryConfig задаёт экспоненциальную задержку между попытками публикации.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig возвращает конфигурацию по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
	}
}

// RetryingPublisher повторяет публикацию события при ошибках брокера.
// Отмена контекста прерывает ожидание между попытками.
type RetryingPublisher struct {
	next   domain.EventPublisher
	config RetryConfig
	logger *log.Entry
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewRetryingPublisher оборачивает паблишер логикой повторов.
func NewRetryingPublisher(next domain.EventPublisher, config RetryConfig, logger *log.Entry) *RetryingPublisher {
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.BackoffFactor < 1 {
		config.BackoffFactor = 1
	}
	if logger == nil {
		logger = log.WithField("component", "retrying-publisher")
	}
	return &RetryingPublisher{
		next:   next,
		config: config,
		logger: logger,
		sleep:  sleepContext,
	}
}

func (p *RetryingPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	delay := p.config.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, event)
		if err == nil {
			if attempt > 1 {
				p.logger.WithFields(log.Fields{
					"event_type": event.Type,
					"order_id":   event.Order.ID,
					"attempt":    attempt,
				}).Info("order event published after retry")
			}
			return nil
		}
		lastErr = err

		if attempt == p.config.MaxAttempts {
			break
		}

		p.logger.WithError(err).WithFields(log.Fields{
			"event_type": event.Type,
			"order_id":   event.Order.ID,
			"attempt":    attempt,
			"delay":      delay,
		}).Warn("order event publish failed, retrying")

		if err := p.sleep(ctx, delay); err != nil {
			return fmt.Errorf("publish order event: %w", err)
		}

		delay = time.Duration(float64(delay) * p.config.BackoffFactor)
		if p.config.MaxDelay > 0 && delay > p.config.MaxDelay {
			delay = p.config.MaxDelay
		}
	}

	return fmt.Errorf("publish order event after %d attempts: %w", p.config.MaxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ domain.EventPublisher = (*RetryingPublisher)(nil)
