package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/orders/internal/domain"
	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orders/internal/service/idempotency"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"

	ValidatorMemory = "memory"
	ValidatorKafka  = "kafka"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	defaultIdempotencyCleanupInterval  = 10 * time.Minute
	defaultIdempotencyCleanupBatchSize = 500
)

// ProductConfig — товар in-memory каталога из YAML.
type ProductConfig struct {
	ID    int64           `yaml:"id"`
	Price decimal.Decimal `yaml:"price"`
	Name  string          `yaml:"name"`
}

// Config описывает настройки запуска приложения.
type Config struct {
	GRPCAddr    string `yaml:"grpc_addr"`
	MetricsAddr string `yaml:"metrics_addr"`

	StorageDriver       string `yaml:"storage_driver"`
	PostgresDSN         string `yaml:"postgres_dsn"`
	PostgresAutoMigrate bool   `yaml:"postgres_auto_migrate"`

	ProductValidator     string        `yaml:"product_validator"`
	KafkaBrokers         []string      `yaml:"kafka_brokers"`
	ProductsRequestTopic string        `yaml:"products_request_topic"`
	ProductsReplyTopic   string        `yaml:"products_reply_topic"`
	EventsTopic          string        `yaml:"events_topic"`
	ValidationTimeout    time.Duration `yaml:"validation_timeout"`

	RedisAddr                   string        `yaml:"redis_addr"`
	IdempotencyTTL              time.Duration `yaml:"idempotency_ttl"`
	IdempotencyCleanupInterval  time.Duration `yaml:"idempotency_cleanup_interval"`
	IdempotencyCleanupBatchSize int           `yaml:"idempotency_cleanup_batch_size"`

	StrictStatusTransitions bool `yaml:"strict_status_transitions"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Products наполняет in-memory каталог (ProductValidator=memory).
	Products []ProductConfig `yaml:"products"`
}

// DefaultConfig возвращает настройки для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		ProductValidator:            ValidatorMemory,
		ProductsRequestTopic:        kafka.DefaultProductsRequestTopic,
		ProductsReplyTopic:          kafka.DefaultProductsReplyTopic,
		EventsTopic:                 kafka.DefaultOrderEventsTopic,
		ValidationTimeout:           orders.DefaultValidationTimeout,
		IdempotencyTTL:              idempotency.DefaultTTL,
		IdempotencyCleanupInterval:  defaultIdempotencyCleanupInterval,
		IdempotencyCleanupBatchSize: defaultIdempotencyCleanupBatchSize,
		LogLevel:                    "info",
		LogFormat:                   LogFormatText,
	}
}

// LoadConfig собирает конфигурацию: .env -> YAML (ORDERS_CONFIG_FILE) -> переменные окружения.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		// Уже выставленные переменные окружения godotenv не перезаписывает.
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	cfg := DefaultConfig()
	if path := strings.TrimSpace(os.Getenv("ORDERS_CONFIG_FILE")); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		if !ok {
			return "", false
		}
		value = strings.TrimSpace(value)
		return value, value != ""
	}

	strs := map[string]*string{
		"ORDERS_GRPC_ADDR":              &c.GRPCAddr,
		"ORDERS_METRICS_ADDR":           &c.MetricsAddr,
		"ORDERS_STORAGE_DRIVER":         &c.StorageDriver,
		"ORDERS_POSTGRES_DSN":           &c.PostgresDSN,
		"ORDERS_PRODUCT_VALIDATOR":      &c.ProductValidator,
		"ORDERS_PRODUCTS_REQUEST_TOPIC": &c.ProductsRequestTopic,
		"ORDERS_PRODUCTS_REPLY_TOPIC":   &c.ProductsReplyTopic,
		"ORDERS_EVENTS_TOPIC":           &c.EventsTopic,
		"ORDERS_REDIS_ADDR":             &c.RedisAddr,
		"ORDERS_LOG_LEVEL":              &c.LogLevel,
		"ORDERS_LOG_FORMAT":             &c.LogFormat,
	}
	for key, dst := range strs {
		if value, ok := get(key); ok {
			*dst = value
		}
	}

	bools := map[string]*bool{
		"ORDERS_POSTGRES_AUTO_MIGRATE":     &c.PostgresAutoMigrate,
		"ORDERS_STRICT_STATUS_TRANSITIONS": &c.StrictStatusTransitions,
	}
	for key, dst := range bools {
		if value, ok := get(key); ok {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s: invalid boolean %q", key, value)
			}
			*dst = parsed
		}
	}

	durations := map[string]*time.Duration{
		"ORDERS_VALIDATION_TIMEOUT":           &c.ValidationTimeout,
		"ORDERS_IDEMPOTENCY_TTL":              &c.IdempotencyTTL,
		"ORDERS_IDEMPOTENCY_CLEANUP_INTERVAL": &c.IdempotencyCleanupInterval,
	}
	for key, dst := range durations {
		if value, ok := get(key); ok {
			parsed, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("%s: invalid duration %q", key, value)
			}
			*dst = parsed
		}
	}

	if value, ok := get("ORDERS_IDEMPOTENCY_CLEANUP_BATCH_SIZE"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("ORDERS_IDEMPOTENCY_CLEANUP_BATCH_SIZE: invalid integer %q", value)
		}
		c.IdempotencyCleanupBatchSize = parsed
	}

	if value, ok := get("KAFKA_BROKERS"); ok {
		c.KafkaBrokers = splitBrokers(value)
	}
	return nil
}

// Validate отклоняет противоречивые настройки до старта зависимостей.
func (c Config) Validate() error {
	var errs []error

	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("grpc address is required"))
	}
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres dsn is required for postgres storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver %q", c.StorageDriver))
	}

	switch c.ProductValidator {
	case ValidatorMemory:
	case ValidatorKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("kafka brokers are required for kafka product validator"))
		}
		if c.ProductsRequestTopic == "" || c.ProductsReplyTopic == "" {
			errs = append(errs, errors.New("products request and reply topics are required"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported product validator %q", c.ProductValidator))
	}

	if c.ValidationTimeout <= 0 {
		errs = append(errs, errors.New("validation timeout must be positive"))
	}
	if c.IdempotencyTTL <= 0 {
		errs = append(errs, errors.New("idempotency ttl must be positive"))
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		errs = append(errs, fmt.Errorf("unsupported log format %q", c.LogFormat))
	}

	seen := make(map[int64]struct{}, len(c.Products))
	for _, p := range c.Products {
		if p.ID <= 0 {
			errs = append(errs, fmt.Errorf("catalog product id must be positive, got %d", p.ID))
		}
		if p.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("catalog product %d has negative price", p.ID))
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("catalog product %d is declared twice", p.ID))
		}
		seen[p.ID] = struct{}{}
	}

	return errors.Join(errs...)
}

// StatusMachine возвращает таблицу переходов согласно настройке строгости.
func (c Config) StatusMachine() *domain.StatusMachine {
	if c.StrictStatusTransitions {
		return domain.StrictStatusMachine()
	}
	return domain.PermissiveStatusMachine()
}

// CatalogProducts переводит товары из конфигурации в доменные записи.
func (c Config) CatalogProducts() []domain.Product {
	products := make([]domain.Product, 0, len(c.Products))
	for _, p := range c.Products {
		products = append(products, domain.Product{ID: p.ID, Price: p.Price, Name: p.Name})
	}
	return products
}

func splitBrokers(raw string) []string {
	parts := strings.Split(raw, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			brokers = append(brokers, part)
		}
	}
	return brokers
}
