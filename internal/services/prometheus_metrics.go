package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	lookupRequests *prometheus.CounterVec
	lookupDuration prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		lookupRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_lookup_requests_total",
				Help: "Total number of customer lookup requests",
			},
			[]string{"outcome"},
		),
		lookupDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_lookup_duration_milliseconds",
				Help:    "Customer lookup duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) RecordLookupRequest(outcome string) {
	m.lookupRequests.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) RecordLookupDuration(duration time.Duration) {
	m.lookupDuration.Observe(float64(duration.Milliseconds()))
}

// NoopMetrics is a metrics recorder that discards all observations.
// Used in tests and anywhere metrics collection is not wired up.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface {
	return &NoopMetrics{}
}

func (m *NoopMetrics) RecordLookupRequest(outcome string)          {}
func (m *NoopMetrics) RecordLookupDuration(duration time.Duration) {}
