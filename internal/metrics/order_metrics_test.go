package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestNewOrderMetrics(t *testing.T) {
	metrics := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.createFailures == nil {
		t.Error("createFailures counter vec should not be nil")
	}
	if metrics.statusChanges == nil {
		t.Error("statusChanges counter vec should not be nil")
	}
	if metrics.validationDuration == nil {
		t.Error("validationDuration histogram vec should not be nil")
	}
	if metrics.enrichmentFailures == nil {
		t.Error("enrichmentFailures counter should not be nil")
	}
}

func TestNewOrderMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewOrderMetricsWithRegisterer(reg)
	second := NewOrderMetricsWithRegisterer(reg)

	first.RecordOrderCreated()
	second.RecordOrderCreated()

	if got := testutil.ToFloat64(first.ordersCreated); got != 2 {
		t.Fatalf("expected shared counter value 2, got %f", got)
	}
}

func TestRecordOrderCreated(t *testing.T) {
	metrics := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())
	metrics.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := metrics.ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1.0 {
		t.Errorf("expected counter value 1.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordFailuresAndStatusChanges(t *testing.T) {
	metrics := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordCreateFailed("validation")
	metrics.RecordCreateFailed("validation")
	metrics.RecordCreateFailed("persistence")
	metrics.RecordStatusChanged("DELIVERED")
	metrics.RecordEnrichmentFailed()

	if got := testutil.ToFloat64(metrics.createFailures.WithLabelValues("validation")); got != 2 {
		t.Errorf("expected 2 validation failures, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.createFailures.WithLabelValues("persistence")); got != 1 {
		t.Errorf("expected 1 persistence failure, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.statusChanges.WithLabelValues("DELIVERED")); got != 1 {
		t.Errorf("expected 1 status change, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.enrichmentFailures); got != 1 {
		t.Errorf("expected 1 enrichment failure, got %f", got)
	}
}

func TestRecordValidation(t *testing.T) {
	metrics := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())
	metrics.RecordValidation(ValidationResultOK, 20*time.Millisecond)
	metrics.RecordValidation(ValidationResultTimeout, 5*time.Second)

	if got := testutil.CollectAndCount(metrics.validationDuration); got != 2 {
		t.Fatalf("expected 2 label series, got %d", got)
	}
}

func TestRecordIdempotencyCleanup(t *testing.T) {
	metrics := NewOrderMetricsWithRegisterer(prometheus.NewRegistry())

	metrics.RecordIdempotencyCleanup(3, nil)
	metrics.RecordIdempotencyCleanup(0, nil)
	metrics.RecordIdempotencyCleanup(0, errors.New("boom"))

	if got := testutil.ToFloat64(metrics.idempotencyRemoved); got != 3 {
		t.Errorf("expected 3 removed keys, got %f", got)
	}
	if got := testutil.ToFloat64(metrics.idempotencyErrors); got != 1 {
		t.Errorf("expected 1 cleanup error, got %f", got)
	}
}
