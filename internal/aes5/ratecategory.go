package aes5

import (
	"sync/atomic"

	"github.com/audiotools/aes5-go/internal/errors"
	"github.com/audiotools/aes5-go/internal/validation"
)

// BaseFrequency is the 48 kHz reference all rate multipliers relate to.
const BaseFrequency uint32 = 48000

// RateCategory names a frequency band relative to the 48 kHz reference.
type RateCategory uint8

const (
	// RateUnknown marks frequencies outside every documented band.
	RateUnknown RateCategory = iota
	RateQuarter
	RateHalf
	RateBasic
	RateDouble
	RateQuadruple
	RateOctuple
)

// String returns the short band name.
func (c RateCategory) String() string {
	switch c {
	case RateQuarter:
		return "Quarter"
	case RateHalf:
		return "Half"
	case RateBasic:
		return "Basic"
	case RateDouble:
		return "Double"
	case RateQuadruple:
		return "Quadruple"
	case RateOctuple:
		return "Octuple"
	default:
		return "Unknown"
	}
}

// Name returns the long band name.
func (c RateCategory) Name() string {
	if c == RateUnknown {
		return "Unknown"
	}
	return c.String() + " Rate"
}

// Section returns the clause the rate bands are defined in.
func (c RateCategory) Section() string {
	if c == RateUnknown {
		return "unknown"
	}
	return ClauseMultiples.String()
}

// rateBand is one inclusive classification range.
type rateBand struct {
	category RateCategory
	minHz    uint32
	maxHz    uint32
}

// rateBands covers ~7.75 kHz to 432 kHz. The bands are non-overlapping and
// leave gaps between them; frequencies in a gap classify as RateUnknown.
// Never mutated after initialization.
var rateBands = [...]rateBand{
	{RateQuarter, 7750, 13500},
	{RateHalf, 15500, 27000},
	{RateBasic, 31000, 54000},
	{RateDouble, 62000, 108000},
	{RateQuadruple, 124000, 216000},
	{RateOctuple, 248000, 432000},
}

// CategoryRange returns the inclusive frequency bounds of a band.
func CategoryRange(category RateCategory) (minHz, maxHz uint32, ok bool) {
	for _, band := range rateBands {
		if band.category == category {
			return band.minHz, band.maxHz, true
		}
	}
	return 0, 0, false
}

// RateCategoryResult is the outcome of classifying one frequency.
type RateCategoryResult struct {
	Frequency  uint32
	Category   RateCategory
	Multiplier float64
	Valid      bool
}

// RateCategoryManager classifies frequencies into rate bands. It caches
// the last computed classification, which matters because real workloads
// query a fixed device rate once per frame. Cache hits bypass the metrics
// core: only genuinely computed classifications count as validations.
// Safe for concurrent callers; the cache is a single atomic pointer swap.
type RateCategoryManager struct {
	core  MetricsCore
	cache atomic.Pointer[RateCategoryResult]
}

// NewRateCategoryManager creates a manager backed by the given metrics core.
func NewRateCategoryManager(core MetricsCore) (*RateCategoryManager, error) {
	if core == nil {
		return nil, errors.Newf("rate category manager requires a validation core").
			Component(ComponentAES5).
			Category(errors.CategoryConfiguration).
			Context("operation", "new_rate_category_manager").
			Build()
	}
	return &RateCategoryManager{core: core}, nil
}

// classifyRateCategoryFunc is the validation.Func executed and timed by
// the metrics core. Classification is pure on the frequency, so no
// per-call context is needed.
func classifyRateCategoryFunc(frequency uint32, _ any) validation.Status {
	if classifyBand(frequency) == RateUnknown {
		return validation.StatusInvalidInput
	}
	return validation.StatusValid
}

// Classify places frequency into its rate band and computes the multiplier
// relative to 48 kHz. Out-of-band frequencies yield RateUnknown with
// multiplier 0 and Valid false.
func (m *RateCategoryManager) Classify(frequency uint32) RateCategoryResult {
	if cached := m.cache.Load(); cached != nil && cached.Frequency == frequency {
		return *cached
	}

	m.core.Validate(frequency, classifyRateCategoryFunc, nil)

	category := classifyBand(frequency)
	result := RateCategoryResult{
		Frequency: frequency,
		Category:  category,
		Valid:     category != RateUnknown,
	}
	if result.Valid {
		result.Multiplier = float64(frequency) / float64(BaseFrequency)
	}

	m.cache.Store(&result)
	return result
}

// Category returns just the band for frequency.
func (m *RateCategoryManager) Category(frequency uint32) RateCategory {
	return m.Classify(frequency).Category
}

// Multiplier returns just the rate multiplier for frequency.
func (m *RateCategoryManager) Multiplier(frequency uint32) float64 {
	return m.Classify(frequency).Multiplier
}

// IsValidCategory reports whether frequency falls inside any band.
func (m *RateCategoryManager) IsValidCategory(frequency uint32) bool {
	return m.Classify(frequency).Valid
}

// Metrics returns a snapshot of the metrics core. Cache hits are not
// reflected here.
func (m *RateCategoryManager) Metrics() validation.MetricsSnapshot {
	return m.core.Metrics()
}

// ResetMetrics zeroes the metrics core.
func (m *RateCategoryManager) ResetMetrics() {
	m.core.ResetMetrics()
}

// MeetsRealtimeConstraints reports whether observed latency stays within
// the advisory budget. Pass 0 for the default budget.
func (m *RateCategoryManager) MeetsRealtimeConstraints(maxLatencyNs uint64) bool {
	return m.core.MeetsRealtimeConstraints(maxLatencyNs)
}

// classifyBand is the pure band lookup.
func classifyBand(frequency uint32) RateCategory {
	for _, band := range rateBands {
		if frequency >= band.minHz && frequency <= band.maxHz {
			return band.category
		}
	}
	return RateUnknown
}
