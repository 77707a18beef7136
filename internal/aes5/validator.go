package aes5

import (
	"fmt"
	"math"

	"github.com/audiotools/aes5-go/internal/errors"
	"github.com/audiotools/aes5-go/internal/validation"
)

// Component identifier for aes5 errors
const ComponentAES5 = "aes5"

// DefaultTolerancePPM is the deviation budget applied when the caller does
// not specify one.
const DefaultTolerancePPM uint32 = 1000

// DefaultPullTolerancePPM is the wider budget applied to pull-up/pull-down
// matches. The standard leaves the exact figure open, so it is configurable
// via WithPullTolerancePPM; 0 disables the special case.
const DefaultPullTolerancePPM uint32 = 2000

// ComplianceVerifier answers exact clause-membership questions.
// *ComplianceEngine is the production implementation.
type ComplianceVerifier interface {
	Verify(frequency uint32, clause Clause) bool
}

// MetricsCore dispatches validation functions and accumulates metrics.
// *validation.Core is the production implementation.
type MetricsCore interface {
	Validate(value uint32, fn validation.Func, ctx any) validation.Status
	BatchValidate(values []uint32, fn validation.Func, ctx any) validation.Status
	Metrics() validation.MetricsSnapshot
	ResetMetrics()
	MeetsRealtimeConstraints(maxLatencyNs uint64) bool
}

// FrequencySource supplies a frequency reading from an injected
// collaborator, typically a hardware adapter. The core never talks to
// hardware directly.
type FrequencySource interface {
	SampleRate() uint32
}

// Result is the outcome of validating one frequency. It is fully populated
// on failure as well, so callers can report the closest standard frequency
// and the measured deviation instead of a bare boolean.
type Result struct {
	Status                   validation.Status
	DetectedFrequency        uint32
	ClosestStandardFrequency uint32
	ApplicableClause         Clause
	DeviationPPM             float64
}

// IsValid reports whether the frequency passed validation.
func (r Result) IsValid() bool {
	return r.Status == validation.StatusValid
}

// Description returns a human-readable explanation of the result.
func (r Result) Description() string {
	switch r.Status {
	case validation.StatusValid:
		return fmt.Sprintf("frequency %d Hz complies with AES5 clause %s", r.DetectedFrequency, r.ApplicableClause)
	case validation.StatusOutOfTolerance:
		return fmt.Sprintf("frequency %d Hz deviates %.1f ppm from %d Hz (clause %s)",
			r.DetectedFrequency, r.DeviationPPM, r.ClosestStandardFrequency, r.ApplicableClause)
	case validation.StatusInvalidInput:
		return "invalid input frequency (must be > 0)"
	case validation.StatusInternalError:
		return "internal validation error"
	default:
		return "unknown validation result"
	}
}

// ToleranceWindow is the absolute frequency window a ppm budget allows
// around a nominal standard frequency.
type ToleranceWindow struct {
	NominalFrequency uint32
	TolerancePPM     uint32
	MinFrequency     uint32
	MaxFrequency     uint32
}

// FrequencyValidator resolves candidate frequencies against the standard
// frequency set. Construct with NewFrequencyValidator; the zero value is
// not usable. All configuration is fixed at construction, so a single
// validator is safe for concurrent use.
type FrequencyValidator struct {
	engine           ComplianceVerifier
	core             MetricsCore
	tolerancePPM     uint32
	pullTolerancePPM uint32
	strict           bool
}

// Option configures a FrequencyValidator.
type Option func(*FrequencyValidator)

// WithTolerancePPM sets the default deviation budget.
func WithTolerancePPM(ppm uint32) Option {
	return func(v *FrequencyValidator) { v.tolerancePPM = ppm }
}

// WithPullTolerancePPM sets the budget applied when the closest match is a
// pull-up/pull-down variant. 0 makes pull variants use the caller's budget.
func WithPullTolerancePPM(ppm uint32) Option {
	return func(v *FrequencyValidator) { v.pullTolerancePPM = ppm }
}

// WithStrictMode requires exact membership in the standard frequency set:
// frequencies that are merely within tolerance of a standard frequency
// report StatusOutOfTolerance.
func WithStrictMode(strict bool) Option {
	return func(v *FrequencyValidator) { v.strict = strict }
}

// NewFrequencyValidator creates a validator with the given collaborators.
// Both are required; missing collaborators are a construction error so
// that Validate never needs to report StatusInternalError for a reason the
// factory could have caught.
func NewFrequencyValidator(engine ComplianceVerifier, core MetricsCore, opts ...Option) (*FrequencyValidator, error) {
	if engine == nil || core == nil {
		return nil, errors.Newf("frequency validator requires a compliance engine and a validation core").
			Component(ComponentAES5).
			Category(errors.CategoryConfiguration).
			Context("operation", "new_frequency_validator").
			Context("engine_missing", engine == nil).
			Context("core_missing", core == nil).
			Build()
	}

	v := &FrequencyValidator{
		engine:           engine,
		core:             core,
		tolerancePPM:     DefaultTolerancePPM,
		pullTolerancePPM: DefaultPullTolerancePPM,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// validateRequest carries per-call state through the validation core so
// concurrent callers never share mutable validator state.
type validateRequest struct {
	validator    *FrequencyValidator
	tolerancePPM uint32
	result       Result
}

// validateFrequencyFunc is the validation.Func executed and timed by the
// metrics core.
func validateFrequencyFunc(frequency uint32, ctx any) validation.Status {
	req, ok := ctx.(*validateRequest)
	if !ok || req.validator == nil {
		return validation.StatusInternalError
	}
	req.result = req.validator.validateInternal(frequency, req.tolerancePPM)
	return req.result.Status
}

// Validate checks frequency against the validator's configured tolerance
// budget. Metrics are recorded on every call, including invalid input.
func (v *FrequencyValidator) Validate(frequency uint32) Result {
	return v.ValidateWithTolerance(frequency, v.tolerancePPM)
}

// ValidateWithTolerance checks frequency against an explicit ppm budget.
// A budget of 0 requires an exact match.
func (v *FrequencyValidator) ValidateWithTolerance(frequency, tolerancePPM uint32) Result {
	req := validateRequest{validator: v, tolerancePPM: tolerancePPM}
	v.core.Validate(frequency, validateFrequencyFunc, &req)
	return req.result
}

// ValidateAll checks every frequency against the given budget and returns
// the first non-valid status, or StatusValid when all pass. The batch is
// recorded as a single validation in the metrics.
func (v *FrequencyValidator) ValidateAll(frequencies []uint32, tolerancePPM uint32) validation.Status {
	req := validateRequest{validator: v, tolerancePPM: tolerancePPM}
	return v.core.BatchValidate(frequencies, validateFrequencyFunc, &req)
}

// ValidateSource reads the current sample rate from an injected frequency
// source and validates it. A nil source reports StatusInternalError.
func (v *FrequencyValidator) ValidateSource(source FrequencySource) Result {
	if source == nil {
		return Result{Status: validation.StatusInternalError}
	}
	return v.Validate(source.SampleRate())
}

// validateInternal is the pure validation path shared by single and batch
// validation. It never allocates.
func (v *FrequencyValidator) validateInternal(frequency, tolerancePPM uint32) Result {
	if frequency == 0 {
		return Result{
			Status:            validation.StatusInvalidInput,
			DetectedFrequency: frequency,
			ApplicableClause:  ClauseUnknown,
		}
	}

	closest := ClosestStandardFrequency(frequency)
	clause := clauseForFrequency(closest)
	deviation := TolerancePPM(frequency, closest)

	result := Result{
		DetectedFrequency:        frequency,
		ClosestStandardFrequency: closest,
		ApplicableClause:         clause,
		DeviationPPM:             deviation,
	}

	budget := float64(tolerancePPM)
	if clause == ClauseAnnexA && v.pullTolerancePPM > 0 {
		budget = float64(v.pullTolerancePPM)
	}

	switch {
	case v.strict && !v.engine.Verify(frequency, clause):
		// Strict mode: within-tolerance is not enough, the frequency must
		// be an exact member of the matched clause.
		result.Status = validation.StatusOutOfTolerance
	case deviation <= budget:
		result.Status = validation.StatusValid
	default:
		result.Status = validation.StatusOutOfTolerance
	}

	return result
}

// ClosestStandardFrequency returns the member of the standard frequency
// set with the smallest absolute distance to frequency. Distance ties are
// broken toward the lower frequency. Pure and allocation-free.
func ClosestStandardFrequency(frequency uint32) uint32 {
	closest := standardFrequencies[0]
	best := absDiff(frequency, closest)
	for _, candidate := range standardFrequencies[1:] {
		// Strict less-than keeps the earlier (lower) member on ties.
		if d := absDiff(frequency, candidate); d < best {
			best = d
			closest = candidate
		}
	}
	return closest
}

// TolerancePPM returns the deviation of measured from reference in parts
// per million. A zero reference yields MaxFloat64; the standard set never
// contains zero, so this only guards misuse.
func TolerancePPM(measured, reference uint32) float64 {
	if reference == 0 {
		return math.MaxFloat64
	}
	if measured == reference {
		return 0.0
	}
	diff := float64(absDiff(measured, reference))
	return diff / float64(reference) * 1_000_000.0
}

// ToleranceWindows returns the absolute frequency window each standard
// frequency accepts under the given ppm budget.
func ToleranceWindows(tolerancePPM uint32) []ToleranceWindow {
	factor := float64(tolerancePPM) / 1_000_000.0
	windows := make([]ToleranceWindow, 0, len(standardFrequencies))
	for _, f := range standardFrequencies {
		windows = append(windows, ToleranceWindow{
			NominalFrequency: f,
			TolerancePPM:     tolerancePPM,
			MinFrequency:     uint32(float64(f) * (1.0 - factor)),
			MaxFrequency:     uint32(float64(f) * (1.0 + factor)),
		})
	}
	return windows
}

// Metrics returns a snapshot of the validation core's metrics.
func (v *FrequencyValidator) Metrics() validation.MetricsSnapshot {
	return v.core.Metrics()
}

// ResetMetrics zeroes the validation core's metrics.
func (v *FrequencyValidator) ResetMetrics() {
	v.core.ResetMetrics()
}

// MeetsRealtimeConstraints reports whether observed latency stays within
// the advisory budget. Pass 0 for the default budget.
func (v *FrequencyValidator) MeetsRealtimeConstraints(maxLatencyNs uint64) bool {
	return v.core.MeetsRealtimeConstraints(maxLatencyNs)
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
