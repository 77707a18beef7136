package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// FramePoolMetrics contains all Prometheus metrics related to the static
// buffer pool.
type FramePoolMetrics struct {
	AllocationsTotal *prometheus.CounterVec
	ReleasesTotal    *prometheus.CounterVec
	InUseSlots       prometheus.Gauge
	SuccessRate      prometheus.Gauge
	registry         *prometheus.Registry
}

// NewFramePoolMetrics creates a new instance of FramePoolMetrics.
// It requires a Prometheus registry to register the metrics.
// It returns an error if metric registration fails.
func NewFramePoolMetrics(registry *prometheus.Registry) (*FramePoolMetrics, error) {
	m := &FramePoolMetrics{registry: registry}
	if err := m.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize frame pool metrics: %w", err)
	}
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register frame pool metrics: %w", err)
	}
	return m, nil
}

// initMetrics initializes all metrics for FramePoolMetrics.
func (m *FramePoolMetrics) initMetrics() error {
	m.AllocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "framepool_allocations_total",
		Help: "Total number of buffer allocation attempts by result",
	}, []string{"result"})

	m.ReleasesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "framepool_releases_total",
		Help: "Total number of buffer releases by result",
	}, []string{"result"})

	m.InUseSlots = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "framepool_in_use_slots",
		Help: "Number of pool slots currently handed out",
	})

	m.SuccessRate = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "framepool_allocation_success_rate",
		Help: "Fraction of allocation attempts that succeeded",
	})

	return nil
}

// RecordAllocation records one allocation attempt outcome ("ok" or
// "exhausted").
func (m *FramePoolMetrics) RecordAllocation(result string) {
	m.AllocationsTotal.WithLabelValues(result).Inc()
}

// RecordRelease records one release outcome ("ok" or "rejected").
func (m *FramePoolMetrics) RecordRelease(result string) {
	m.ReleasesTotal.WithLabelValues(result).Inc()
}

// UpdateUsage publishes a pool usage snapshot.
func (m *FramePoolMetrics) UpdateUsage(inUseSlots int, successRate float64) {
	m.InUseSlots.Set(float64(inUseSlots))
	m.SuccessRate.Set(successRate)
}

// Describe implements the prometheus.Collector interface.
func (m *FramePoolMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.AllocationsTotal.Describe(ch)
	m.ReleasesTotal.Describe(ch)
	m.InUseSlots.Describe(ch)
	m.SuccessRate.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *FramePoolMetrics) Collect(ch chan<- prometheus.Metric) {
	m.AllocationsTotal.Collect(ch)
	m.ReleasesTotal.Collect(ch)
	m.InUseSlots.Collect(ch)
	m.SuccessRate.Collect(ch)
}
