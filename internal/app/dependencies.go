package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orders/internal/metrics"
	"github.com/vladislavdragonenkov/orders/internal/service/catalog"
	"github.com/vladislavdragonenkov/orders/internal/service/idempotency"
	"github.com/vladislavdragonenkov/orders/internal/storage/memory"
	"github.com/vladislavdragonenkov/orders/internal/storage/postgres"
	"github.com/vladislavdragonenkov/orders/internal/storage/redis"
)

// runtimeDependencies — внешние зависимости, выбранные конфигурацией.
type runtimeDependencies struct {
	repo      domain.OrderRepository
	products  domain.ProductValidator
	publisher domain.EventPublisher
	idemStore domain.IdempotencyStore

	// cleanup задан только для in-memory хранилища ключей; Redis удаляет их по TTL.
	cleanup       *idempotency.CleanupWorker
	replyConsumer *kafka.Consumer
	checkers      map[string]healthcheck.Checker

	closers []func()
}

func (d *runtimeDependencies) addCloser(fn func()) {
	d.closers = append(d.closers, fn)
}

// close освобождает ресурсы в обратном порядке создания.
func (d *runtimeDependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
	d.closers = nil
}

// initRuntimeDependencies создаёт хранилища, каталог и публикацию событий.
// При ошибке уже открытые ресурсы закрываются.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (_ *runtimeDependencies, err error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &runtimeDependencies{checkers: make(map[string]healthcheck.Checker)}
	defer func() {
		if err != nil {
			deps.close()
		}
	}()

	if err := initStorage(ctx, cfg, deps, logger); err != nil {
		return nil, err
	}

	producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, fmt.Errorf("init kafka producer: %w", err)
	}
	if producer != nil {
		deps.addCloser(func() { closeKafka(producer, logger) })
		deps.publisher = kafka.NewRetryingPublisher(
			kafka.NewEventPublisher(producer, cfg.EventsTopic),
			kafka.DefaultRetryConfig(),
			logger.WithField("component", "order-events"),
		)
	} else {
		deps.publisher = kafka.NoopPublisher{}
	}

	switch cfg.ProductValidator {
	case ValidatorMemory, "":
		deps.products = catalog.NewMockService(cfg.CatalogProducts()...)
		logger.WithField("products", len(cfg.Products)).Info("using in-memory product catalog")
	case ValidatorKafka:
		client, consumer, err := initProductClient(cfg, producer, logger)
		if err != nil {
			return nil, err
		}
		deps.products = client
		deps.replyConsumer = consumer
		deps.checkers["kafka-replies"] = healthcheck.NewSimpleChecker("kafka-replies", consumer.CheckAssigned)
	default:
		return nil, fmt.Errorf("unsupported product validator %q", cfg.ProductValidator)
	}

	initIdempotency(cfg, deps, logger)
	return deps, nil
}

func initStorage(ctx context.Context, cfg Config, deps *runtimeDependencies, logger *log.Entry) error {
	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		deps.repo = memory.NewOrderRepository()
		logger.Info("using in-memory order storage")
		return nil
	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("postgres dsn is required for postgres storage driver")
		}
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		deps.addCloser(func() {
			if err := store.Close(); err != nil {
				logger.WithError(err).Warn("failed to close postgres")
			}
		})

		if cfg.PostgresAutoMigrate {
			applied, err := store.MigrateUp(ctx, 0)
			if err != nil {
				return fmt.Errorf("apply postgres migrations: %w", err)
			}
			logger.WithField("applied", applied).Info("postgres migrations applied")
		}

		deps.repo = postgres.NewOrderRepository(store)
		deps.checkers["postgres"] = healthcheck.NewSimpleChecker("postgres", store.Ping)
		logger.Info("using postgres order storage")
		return nil
	default:
		return fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func initIdempotency(cfg Config, deps *runtimeDependencies, logger *log.Entry) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(cfg.RedisAddr)
		store := redis.NewIdempotencyStore(client)
		deps.idemStore = store
		// Без Redis заказы создаются, но запросы с idempotency-key будут падать.
		deps.checkers["redis"] = healthcheck.DegradedChecker{Checker: healthcheck.NewSimpleChecker("redis", store.Ping)}
		deps.addCloser(func() {
			if err := client.Close(); err != nil {
				logger.WithError(err).Warn("failed to close redis client")
			}
		})
		logger.WithField("addr", cfg.RedisAddr).Info("using redis idempotency store")
		return
	}

	store := memory.NewIdempotencyStore()
	deps.idemStore = store
	deps.cleanup = idempotency.NewCleanupWorker(
		store,
		idempotency.WithLogger(logger.WithField("layer", "idempotency-cleanup")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
		idempotency.WithMetrics(metrics.NewOrderMetrics()),
	)
	logger.Info("using in-memory idempotency store")
}
