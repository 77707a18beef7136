package aes5

import "strings"

// Clause identifies a normative section of AES5. Integer codes are used
// internally so hot-path lookups never touch strings; parsing happens only
// at the API boundary.
type Clause uint8

const (
	// ClauseUnknown is returned for frequencies outside every clause.
	ClauseUnknown Clause = iota
	// ClausePrimary is clause 5.1, the primary sampling frequency (48 kHz).
	ClausePrimary
	// ClauseOther is clause 5.2, the other recommended frequencies.
	ClauseOther
	// ClauseMultiples is clause 5.3, multiples and divisions of the
	// recommended frequencies.
	ClauseMultiples
	// ClauseLegacy is clause 5.4, legacy sampling frequencies.
	ClauseLegacy
	// ClauseAnnexA covers the video pull-up/pull-down variants.
	ClauseAnnexA
)

// String returns the clause identifier as printed in the standard.
func (c Clause) String() string {
	switch c {
	case ClausePrimary:
		return "5.1"
	case ClauseOther:
		return "5.2"
	case ClauseMultiples:
		return "5.3"
	case ClauseLegacy:
		return "5.4"
	case ClauseAnnexA:
		return "A.1"
	default:
		return "unknown"
	}
}

// ParseClause converts a clause identifier string to its integer code.
// Unknown identifiers return ClauseUnknown and false.
func ParseClause(s string) (Clause, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "5.1":
		return ClausePrimary, true
	case "5.2":
		return ClauseOther, true
	case "5.3":
		return ClauseMultiples, true
	case "5.4":
		return ClauseLegacy, true
	case "A.1", "ANNEX-A", "ANNEX A":
		return ClauseAnnexA, true
	default:
		return ClauseUnknown, false
	}
}
