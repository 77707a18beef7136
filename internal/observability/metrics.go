// Package observability provides metrics and monitoring capabilities for
// the AES5 compliance core.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/audiotools/aes5-go/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry  *prometheus.Registry
	AES5      *metrics.AES5Metrics
	FramePool *metrics.FramePoolMetrics
}

// NewMetrics creates a new instance of Metrics, initializing all metric
// collectors. It returns an error if any metric collector fails to
// initialize.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	aes5Metrics, err := metrics.NewAES5Metrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES5 metrics: %w", err)
	}

	framePoolMetrics, err := metrics.NewFramePoolMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame pool metrics: %w", err)
	}

	return &Metrics{
		registry:  registry,
		AES5:      aes5Metrics,
		FramePool: framePoolMetrics,
	}, nil
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
