package aes5

// ComplianceEngine verifies exact clause membership of sampling
// frequencies. It holds only static reference data, so a single instance
// is safe for unsynchronized concurrent use. Verify performs no heap
// allocation and no string handling, keeping it inside the real-time
// budget of an audio-processing frame.
type ComplianceEngine struct{}

// NewComplianceEngine returns a compliance engine backed by the static
// clause tables.
func NewComplianceEngine() *ComplianceEngine {
	return &ComplianceEngine{}
}

// Verify reports whether frequency is an exact member of the clause's
// frequency set. Zero frequencies and unknown clauses are never compliant.
func (e *ComplianceEngine) Verify(frequency uint32, clause Clause) bool {
	if frequency == 0 {
		return false
	}

	switch clause {
	case ClausePrimary:
		return contains(primaryFrequencies[:], frequency)
	case ClauseOther:
		return contains(otherFrequencies[:], frequency)
	case ClauseMultiples:
		return contains(multipleFrequencies[:], frequency)
	case ClauseLegacy:
		return contains(legacyFrequencies[:], frequency)
	case ClauseAnnexA:
		return contains(annexFrequencies[:], frequency)
	default:
		return false
	}
}

// VerifyIdentifier is the string-keyed boundary form of Verify. Unknown
// identifiers return false rather than an error.
func (e *ComplianceEngine) VerifyIdentifier(frequency uint32, identifier string) bool {
	clause, ok := ParseClause(identifier)
	if !ok {
		return false
	}
	return e.Verify(frequency, clause)
}

// SupportedFrequencies returns the frequencies belonging to a clause.
// The returned slice is a copy and may be modified by the caller.
func (e *ComplianceEngine) SupportedFrequencies(clause Clause) []uint32 {
	var set []uint32
	switch clause {
	case ClausePrimary:
		set = primaryFrequencies[:]
	case ClauseOther:
		set = otherFrequencies[:]
	case ClauseMultiples:
		set = multipleFrequencies[:]
	case ClauseLegacy:
		set = legacyFrequencies[:]
	case ClauseAnnexA:
		set = annexFrequencies[:]
	default:
		return nil
	}
	out := make([]uint32, len(set))
	copy(out, set)
	return out
}

// IsClauseSupported reports whether the engine has a frequency table for
// the clause.
func (e *ComplianceEngine) IsClauseSupported(clause Clause) bool {
	switch clause {
	case ClausePrimary, ClauseOther, ClauseMultiples, ClauseLegacy, ClauseAnnexA:
		return true
	default:
		return false
	}
}

func contains(set []uint32, frequency uint32) bool {
	for _, f := range set {
		if f == frequency {
			return true
		}
	}
	return false
}
