package framepool

import "time"

// headerMagic marks live headers handed out by a pool ("AES5" in ASCII).
const headerMagic uint32 = 0x41455335

// AudioFormat describes the frames a buffer will carry. SampleRate is
// expected to be an AES5 frequency, but the pool does not enforce that;
// compliance checking belongs to the validator.
type AudioFormat struct {
	SampleRate       uint32
	ChannelCount     uint16
	SampleSizeBits   uint16
	FrameSizeSamples uint32
}

// frameBytes returns the byte size of one frame period, or 0 when the
// format carries no sizing information. Computed in 64-bit so oversized
// formats report their true size instead of wrapping.
func (f AudioFormat) frameBytes() uint64 {
	return uint64(f.FrameSizeSamples) * uint64(f.ChannelCount) * uint64(f.SampleSizeBits) / 8
}

// BufferHeader describes one allocated audio buffer. The pool owns the
// backing store; a header is a borrowed view valid until Release. Callers
// must not modify header fields other than DataSize and the Data contents;
// a header whose checksum no longer matches its fields is refused on
// release.
type BufferHeader struct {
	BufferID       uint32 // slot index within the owning pool
	SequenceNumber uint64
	Timestamp      uint64 // nanoseconds from the injected clock
	SampleRate     uint32
	ChannelCount   uint16
	SampleSizeBits uint16
	FrameSize      uint32 // samples per frame period
	DataSize       uint32 // valid bytes in Data, always <= Capacity
	Capacity       uint32
	Checksum       uint32
	Magic          uint32
	Data           []byte // borrowed view of the slot's backing store
}

// computeChecksum folds the header's metadata fields with FNV-1a. DataSize
// is deliberately excluded so callers may shrink the valid length without
// invalidating the header; everything identifying the buffer is covered.
func (h *BufferHeader) computeChecksum() uint32 {
	const (
		offset32 uint32 = 2166136261
		prime32  uint32 = 16777619
	)
	sum := offset32
	sum = (sum ^ h.BufferID) * prime32
	sum = (sum ^ uint32(h.SequenceNumber)) * prime32
	sum = (sum ^ uint32(h.SequenceNumber>>32)) * prime32
	sum = (sum ^ uint32(h.Timestamp)) * prime32
	sum = (sum ^ uint32(h.Timestamp>>32)) * prime32
	sum = (sum ^ h.SampleRate) * prime32
	sum = (sum ^ uint32(h.ChannelCount)) * prime32
	sum = (sum ^ uint32(h.SampleSizeBits)) * prime32
	sum = (sum ^ h.FrameSize) * prime32
	sum = (sum ^ h.Capacity) * prime32
	sum = (sum ^ h.Magic) * prime32
	return sum
}

// valid reports whether the header still matches what the pool handed out.
func (h *BufferHeader) valid() bool {
	return h.Magic == headerMagic &&
		h.DataSize <= h.Capacity &&
		h.Checksum == h.computeChecksum()
}

// Clock supplies timestamps for buffer headers. Production code injects a
// hardware or sample-clock adapter; SystemClock is the wall-clock default.
type Clock interface {
	NowNanos() uint64
}

type systemClock struct{}

func (systemClock) NowNanos() uint64 {
	return uint64(time.Now().UnixNano())
}

// SystemClock reads the operating system clock.
var SystemClock Clock = systemClock{}
