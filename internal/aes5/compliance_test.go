package aes5

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplianceEngineVerify(t *testing.T) {
	engine := NewComplianceEngine()

	cases := []struct {
		name      string
		frequency uint32
		clause    Clause
		want      bool
	}{
		{"PrimaryMember", 48000, ClausePrimary, true},
		{"PrimaryNonMember", 44100, ClausePrimary, false},
		{"OtherConsumer", 44100, ClauseOther, true},
		{"OtherHighBandwidth", 96000, ClauseOther, true},
		{"OtherNonMember", 48000, ClauseOther, false},
		{"Legacy", 32000, ClauseLegacy, true},
		{"LegacyNonMember", 48000, ClauseLegacy, false},
		{"AnnexPullDown", 47952, ClauseAnnexA, true},
		{"AnnexPullUp", 48048, ClauseAnnexA, true},
		{"AnnexNonMember", 48000, ClauseAnnexA, false},
		{"MultiplesDouble441", 88200, ClauseMultiples, true},
		{"MultiplesQuad48", 192000, ClauseMultiples, true},
		{"MultiplesOctuple441", 352800, ClauseMultiples, true},
		{"MultiplesNonMember", 48000, ClauseMultiples, false},
		{"NearMissNotCompliant", 48001, ClausePrimary, false},
		{"ZeroFrequency", 0, ClausePrimary, false},
		{"UnknownClause", 48000, ClauseUnknown, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, engine.Verify(tc.frequency, tc.clause))
		})
	}
}

func TestComplianceEngineVerifyIdentifier(t *testing.T) {
	engine := NewComplianceEngine()

	assert.True(t, engine.VerifyIdentifier(48000, "5.1"))
	assert.True(t, engine.VerifyIdentifier(44100, "5.2"))
	assert.True(t, engine.VerifyIdentifier(32000, "5.4"))
	assert.True(t, engine.VerifyIdentifier(47952, "A.1"))
	assert.True(t, engine.VerifyIdentifier(48048, "annex-a"))

	// Unknown identifiers return false, never an error.
	assert.False(t, engine.VerifyIdentifier(48000, "9.9"))
	assert.False(t, engine.VerifyIdentifier(48000, ""))
	assert.False(t, engine.VerifyIdentifier(48000, "primary"))
}

func TestComplianceEngineSupportedFrequencies(t *testing.T) {
	engine := NewComplianceEngine()

	assert.Equal(t, []uint32{48000}, engine.SupportedFrequencies(ClausePrimary))
	assert.Equal(t, []uint32{44100, 96000}, engine.SupportedFrequencies(ClauseOther))
	assert.Equal(t, []uint32{32000}, engine.SupportedFrequencies(ClauseLegacy))
	assert.Equal(t, []uint32{47952, 48048}, engine.SupportedFrequencies(ClauseAnnexA))
	assert.Nil(t, engine.SupportedFrequencies(ClauseUnknown))

	// The returned slice is a copy; mutating it must not poison the tables.
	set := engine.SupportedFrequencies(ClausePrimary)
	set[0] = 1
	assert.True(t, engine.Verify(48000, ClausePrimary))
}

func TestComplianceEngineIsClauseSupported(t *testing.T) {
	engine := NewComplianceEngine()

	for _, clause := range []Clause{ClausePrimary, ClauseOther, ClauseMultiples, ClauseLegacy, ClauseAnnexA} {
		assert.True(t, engine.IsClauseSupported(clause), clause.String())
	}
	assert.False(t, engine.IsClauseSupported(ClauseUnknown))
	assert.False(t, engine.IsClauseSupported(Clause(200)))
}

func TestParseClause(t *testing.T) {
	cases := []struct {
		input string
		want  Clause
		ok    bool
	}{
		{"5.1", ClausePrimary, true},
		{"5.2", ClauseOther, true},
		{"5.3", ClauseMultiples, true},
		{"5.4", ClauseLegacy, true},
		{"A.1", ClauseAnnexA, true},
		{"a.1", ClauseAnnexA, true},
		{" 5.1 ", ClausePrimary, true},
		{"annex-a", ClauseAnnexA, true},
		{"5.9", ClauseUnknown, false},
		{"", ClauseUnknown, false},
	}

	for _, tc := range cases {
		clause, ok := ParseClause(tc.input)
		assert.Equal(t, tc.want, clause, "input %q", tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}

func TestClauseRoundTrip(t *testing.T) {
	for _, clause := range []Clause{ClausePrimary, ClauseOther, ClauseMultiples, ClauseLegacy, ClauseAnnexA} {
		parsed, ok := ParseClause(clause.String())
		assert.True(t, ok)
		assert.Equal(t, clause, parsed)
	}
	assert.Equal(t, "unknown", ClauseUnknown.String())
}
