package aes5

// Reference frequencies in Hz. The pull variants are the primary frequency
// scaled by 1001/1000 and 1000/1001 for video-sync workflows.
const (
	PrimaryFrequency  uint32 = 48000
	ConsumerFrequency uint32 = 44100
	HighBandwidth     uint32 = 96000
	LegacyFrequency   uint32 = 32000
	PullUpFrequency   uint32 = PrimaryFrequency * 1001 / 1000
	PullDownFrequency uint32 = PrimaryFrequency * 1000 / 1001
)

// standardFrequencies is the complete reference set, ordered ascending so
// the closest-frequency scan breaks distance ties toward the lower member.
// Never mutated after initialization; safe for unsynchronized reads.
var standardFrequencies = [...]uint32{
	LegacyFrequency,   // 32000, clause 5.4
	ConsumerFrequency, // 44100, clause 5.2
	PullDownFrequency, // 47952, Annex A
	PrimaryFrequency,  // 48000, clause 5.1
	PullUpFrequency,   // 48048, Annex A
	HighBandwidth,     // 96000, clause 5.2
}

// Clause membership tables. Exact frequency sets, no tolerance applied.
var (
	primaryFrequencies = [...]uint32{PrimaryFrequency}
	otherFrequencies   = [...]uint32{ConsumerFrequency, HighBandwidth}
	legacyFrequencies  = [...]uint32{LegacyFrequency}
	annexFrequencies   = [...]uint32{PullDownFrequency, PullUpFrequency}

	// Clause 5.3: doublings and halvings of the 48 kHz and 44.1 kHz
	// families within the practical classification range.
	multipleFrequencies = [...]uint32{
		11025, 12000, 22050, 24000,
		88200, 96000, 176400, 192000, 352800, 384000,
	}
)

// StandardFrequencies returns a copy of the reference frequency set in
// ascending order.
func StandardFrequencies() []uint32 {
	out := make([]uint32, len(standardFrequencies))
	copy(out, standardFrequencies[:])
	return out
}

// clauseForFrequency maps a member of the standard frequency set to its
// clause. Non-members map to ClauseUnknown.
func clauseForFrequency(frequency uint32) Clause {
	switch frequency {
	case PrimaryFrequency:
		return ClausePrimary
	case ConsumerFrequency, HighBandwidth:
		return ClauseOther
	case LegacyFrequency:
		return ClauseLegacy
	case PullDownFrequency, PullUpFrequency:
		return ClauseAnnexA
	default:
		return ClauseUnknown
	}
}
