// Package metrics provides custom Prometheus metrics for the frequency
// compliance and buffer pool components.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// AES5Metrics contains all Prometheus metrics related to frequency
// validation and classification.
type AES5Metrics struct {
	ValidationsTotal  *prometheus.CounterVec
	DeviationPPM      prometheus.Histogram
	RateCategoryTotal *prometheus.CounterVec
	ValidationLatency prometheus.Histogram
	registry          *prometheus.Registry
}

// NewAES5Metrics creates a new instance of AES5Metrics.
// It requires a Prometheus registry to register the metrics.
// It returns an error if metric registration fails.
func NewAES5Metrics(registry *prometheus.Registry) (*AES5Metrics, error) {
	m := &AES5Metrics{registry: registry}
	if err := m.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize AES5 metrics: %w", err)
	}
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register AES5 metrics: %w", err)
	}
	return m, nil
}

// initMetrics initializes all metrics for AES5Metrics.
func (m *AES5Metrics) initMetrics() error {
	m.ValidationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aes5_validations_total",
		Help: "Total number of frequency validations by status",
	}, []string{"status"})

	m.DeviationPPM = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aes5_deviation_ppm",
		Help:    "Measured frequency deviation from the closest standard frequency in ppm",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	m.RateCategoryTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aes5_rate_category_total",
		Help: "Total number of rate category classifications by band",
	}, []string{"category"})

	m.ValidationLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aes5_validation_latency_seconds",
		Help:    "Latency of frequency validation calls in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0000001, 4, 10),
	})

	return nil
}

// RecordValidation records one completed validation with its status label
// and measured deviation.
func (m *AES5Metrics) RecordValidation(status string, deviationPPM float64) {
	m.ValidationsTotal.WithLabelValues(status).Inc()
	m.DeviationPPM.Observe(deviationPPM)
}

// RecordRateCategory records one rate classification by band name.
func (m *AES5Metrics) RecordRateCategory(category string) {
	m.RateCategoryTotal.WithLabelValues(category).Inc()
}

// RecordValidationLatency records an observed validation latency.
func (m *AES5Metrics) RecordValidationLatency(seconds float64) {
	m.ValidationLatency.Observe(seconds)
}

// Describe implements the prometheus.Collector interface.
func (m *AES5Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.ValidationsTotal.Describe(ch)
	m.DeviationPPM.Describe(ch)
	m.RateCategoryTotal.Describe(ch)
	m.ValidationLatency.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *AES5Metrics) Collect(ch chan<- prometheus.Metric) {
	m.ValidationsTotal.Collect(ch)
	m.DeviationPPM.Collect(ch)
	m.RateCategoryTotal.Collect(ch)
	m.ValidationLatency.Collect(ch)
}
