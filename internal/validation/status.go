package validation

// Status is the outcome of a single validation.
type Status uint8

const (
	// StatusValid means the value passed validation.
	StatusValid Status = iota
	// StatusOutOfTolerance means the value is numerically sound but exceeds
	// the accepted deviation budget.
	StatusOutOfTolerance
	// StatusInvalidInput means the value is nonsensical (e.g. zero frequency).
	StatusInvalidInput
	// StatusInternalError means a collaborator was missing or invalid,
	// e.g. a nil validation function. Callers should treat it as retryable.
	StatusInternalError
)

// String returns the short status name.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusOutOfTolerance:
		return "out_of_tolerance"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// Description returns a human-readable explanation of the status.
func (s Status) Description() string {
	switch s {
	case StatusValid:
		return "value is valid"
	case StatusOutOfTolerance:
		return "value is outside acceptable tolerance"
	case StatusInvalidInput:
		return "invalid input value"
	case StatusInternalError:
		return "internal validation error"
	default:
		return "unknown validation result"
	}
}
