package validation

import "time"

// Func is a caller-supplied validation function. Implementations must be
// pure: the same value and context always produce the same status.
type Func func(value uint32, ctx any) Status

const (
	// MaxBatchSize caps the number of values examined per BatchValidate call.
	MaxBatchSize = 1000

	// DefaultMaxLatencyNs is the advisory real-time latency budget.
	DefaultMaxLatencyNs uint64 = 1_000_000
)

// Core dispatches validation functions and records latency and outcome
// metrics. The zero value is not usable; construct with NewCore. A single
// Core is safe for unbounded concurrent callers.
type Core struct {
	metrics Metrics
}

// NewCore creates a validation core with zeroed metrics.
func NewCore() *Core {
	return &Core{}
}

// Validate runs fn against value, times the call and records metrics.
// A nil fn returns StatusInternalError without crashing; the failed call
// is still counted.
func (c *Core) Validate(value uint32, fn Func, ctx any) Status {
	if fn == nil {
		c.metrics.record(StatusInternalError, 0)
		return StatusInternalError
	}

	start := time.Now()
	result := fn(value, ctx)
	latencyNs := uint64(time.Since(start))

	c.metrics.record(result, latencyNs)
	return result
}

// BatchValidate runs fn against each value sequentially and returns the
// first non-valid status (short-circuit), or StatusValid when every value
// passes. The whole batch is timed and recorded as a single validation.
// Batches larger than MaxBatchSize are truncated.
func (c *Core) BatchValidate(values []uint32, fn Func, ctx any) Status {
	if len(values) == 0 || fn == nil {
		c.metrics.record(StatusInternalError, 0)
		return StatusInternalError
	}

	batch := values
	if len(batch) > MaxBatchSize {
		batch = batch[:MaxBatchSize]
	}

	start := time.Now()
	result := StatusValid
	for _, v := range batch {
		if r := fn(v, ctx); r != StatusValid {
			result = r
			break
		}
	}
	latencyNs := uint64(time.Since(start))

	c.metrics.record(result, latencyNs)
	return result
}

// Metrics returns a snapshot of the accumulated metrics.
func (c *Core) Metrics() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// ResetMetrics zeroes all accumulated metrics.
func (c *Core) ResetMetrics() {
	c.metrics.Reset()
}

// MeetsRealtimeConstraints reports whether the maximum observed latency is
// within maxLatencyNs. This is a post-hoc self-check, not a deadline
// enforcement mechanism. Passing 0 applies DefaultMaxLatencyNs.
func (c *Core) MeetsRealtimeConstraints(maxLatencyNs uint64) bool {
	if maxLatencyNs == 0 {
		maxLatencyNs = DefaultMaxLatencyNs
	}
	return c.metrics.Snapshot().MaxLatencyNs <= maxLatencyNs
}
