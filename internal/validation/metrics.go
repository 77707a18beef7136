package validation

import "sync/atomic"

// Metrics tracks validation counts and latencies. All fields are updated
// with atomic operations and read without locking; snapshots taken under
// concurrent updates are eventually consistent, never torn.
type Metrics struct {
	totalValidations      atomic.Uint64
	successfulValidations atomic.Uint64
	failedValidations     atomic.Uint64
	totalLatencyNs        atomic.Uint64
	maxLatencyNs          atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of validation metrics.
type MetricsSnapshot struct {
	TotalValidations      uint64
	SuccessfulValidations uint64
	FailedValidations     uint64
	TotalLatencyNs        uint64
	MaxLatencyNs          uint64
}

// AverageLatencyNs returns the mean observed latency, or 0 before any calls.
func (s MetricsSnapshot) AverageLatencyNs() uint64 {
	if s.TotalValidations == 0 {
		return 0
	}
	return s.TotalLatencyNs / s.TotalValidations
}

// record updates all counters for a completed validation.
func (m *Metrics) record(result Status, latencyNs uint64) {
	m.totalValidations.Add(1)
	m.totalLatencyNs.Add(latencyNs)

	if result == StatusValid {
		m.successfulValidations.Add(1)
	} else {
		m.failedValidations.Add(1)
	}

	// CAS loop so a slower writer never overwrites a larger maximum.
	for {
		current := m.maxLatencyNs.Load()
		if latencyNs <= current {
			return
		}
		if m.maxLatencyNs.CompareAndSwap(current, latencyNs) {
			return
		}
	}
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		TotalValidations:      m.totalValidations.Load(),
		SuccessfulValidations: m.successfulValidations.Load(),
		FailedValidations:     m.failedValidations.Load(),
		TotalLatencyNs:        m.totalLatencyNs.Load(),
		MaxLatencyNs:          m.maxLatencyNs.Load(),
	}
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	m.totalValidations.Store(0)
	m.successfulValidations.Store(0)
	m.failedValidations.Store(0)
	m.totalLatencyNs.Store(0)
	m.maxLatencyNs.Store(0)
}
