package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты вызова каталога товаров.
const (
	ValidationResultOK      = "ok"
	ValidationResultFailed  = "failed"
	ValidationResultTimeout = "timeout"
)

// OrderMetrics содержит метрики операций над заказами.
type OrderMetrics struct {
	ordersCreated      prometheus.Counter
	createFailures     *prometheus.CounterVec
	statusChanges      *prometheus.CounterVec
	validationDuration *prometheus.HistogramVec
	enrichmentFailures prometheus.Counter

	idempotencyRemoved prometheus.Counter
	idempotencyErrors  prometheus.Counter
}

// NewOrderMetrics регистрирует метрики в DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer регистрирует метрики в переданном registerer.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		}),
		createFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orders_create_failures_total",
			Help: "Total number of failed order creations by reason",
		}, []string{"reason"}),
		statusChanges: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orders_status_changes_total",
			Help: "Total number of applied status changes by target status",
		}, []string{"status"}),
		validationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "orders_product_validation_duration_seconds",
			Help:    "Duration of product validation calls in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"result"}),
		enrichmentFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_enrichment_failures_total",
			Help: "Total number of failed product name enrichments",
		}),
		idempotencyRemoved: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_idempotency_cleanup_removed_total",
			Help: "Total number of expired idempotency keys removed",
		}),
		idempotencyErrors: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orders_idempotency_cleanup_errors_total",
			Help: "Total number of idempotency cleanup errors",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *OrderMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordCreateFailed учитывает неуспешное создание заказа.
func (m *OrderMetrics) RecordCreateFailed(reason string) {
	m.createFailures.WithLabelValues(reason).Inc()
}

// RecordStatusChanged учитывает применённую смену статуса.
func (m *OrderMetrics) RecordStatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// RecordValidation записывает длительность и результат вызова каталога.
func (m *OrderMetrics) RecordValidation(result string, duration time.Duration) {
	m.validationDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordEnrichmentFailed увеличивает счётчик неудачных обогащений.
func (m *OrderMetrics) RecordEnrichmentFailed() {
	m.enrichmentFailures.Inc()
}

// RecordIdempotencyCleanup учитывает результат прохода очистки ключей.
func (m *OrderMetrics) RecordIdempotencyCleanup(removed int, err error) {
	if err != nil {
		m.idempotencyErrors.Inc()
		return
	}
	if removed > 0 {
		m.idempotencyRemoved.Add(float64(removed))
	}
}
