package kv

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors used by instrumented storages.
type Metrics struct {
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

// NewMetrics creates the storage collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Storage operations by backend, operation and result.",
	}, []string{"backend", "operation", "result"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "storefront",
		Subsystem: "storage",
		Name:      "operation_duration_seconds",
		Help:      "Storage operation latency.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	}, []string{"backend", "operation"})

	var err error
	if operations, err = register(reg, operations); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	return &Metrics{operations: operations, latency: latency}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// InstrumentedStorage records metrics for every call to the wrapped Storage.
type InstrumentedStorage struct {
	next    Storage
	backend string
	metrics *Metrics
}

// Instrument wraps s. backend labels the series (for example "redis").
func Instrument(s Storage, backend string, m *Metrics) *InstrumentedStorage {
	return &InstrumentedStorage{next: s, backend: backend, metrics: m}
}

func (s *InstrumentedStorage) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	v, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return v, err
}

func (s *InstrumentedStorage) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

func (s *InstrumentedStorage) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *InstrumentedStorage) Close() error {
	return Close(s.next)
}

func (s *InstrumentedStorage) observe(op string, start time.Time, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrNotFound):
		result = "miss"
	case err != nil:
		result = "error"
	}
	s.metrics.operations.WithLabelValues(s.backend, op, result).Inc()
	s.metrics.latency.WithLabelValues(s.backend, op).Observe(time.Since(start).Seconds())
}
