// Package validation provides a reusable, real-time-safe validation
// dispatcher. A Core executes caller-supplied validation functions against
// uint32 values, records success and latency metrics with lock-free
// atomics, and supports batch validation with short-circuit semantics.
//
// Nothing in this package blocks or allocates on the hot path, so Validate
// may be called from audio callback contexts. Metrics snapshots are
// eventually consistent: concurrent increments are atomic but unordered.
package validation
