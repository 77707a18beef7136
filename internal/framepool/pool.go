package framepool

import (
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/audiotools/aes5-go/internal/errors"
	"github.com/audiotools/aes5-go/internal/logging"
)

// Component identifier for framepool errors
const ComponentFramePool = "framepool"

// Slot lifecycle states. A slot is observable as available only after a
// release has finished clearing its metadata.
const (
	slotFree uint32 = iota
	slotInUse
	slotReleasing
)

type slot struct {
	state  atomic.Uint32
	header BufferHeader
	data   []byte
}

// Pool is a fixed array of independently sized buffer slots. Construct
// with New; the zero value is not usable. All methods are safe for
// unbounded concurrent callers and never block.
type Pool struct {
	id     uuid.UUID
	slots  []slot
	clock  Clock
	logger *slog.Logger

	cursor         atomic.Uint64
	sequence       atomic.Uint64
	attempts       atomic.Uint64
	allocations    atomic.Uint64
	failedAllocs   atomic.Uint64
	releases       atomic.Uint64
	failedReleases atomic.Uint64
	inUse          atomic.Int64
}

// PoolOption configures a Pool at construction.
type PoolOption func(*Pool)

// WithClock injects the timestamp source for buffer headers.
func WithClock(clock Clock) PoolOption {
	return func(p *Pool) {
		if clock != nil {
			p.clock = clock
		}
	}
}

// New creates a pool of slotCount buffers of bufferBytes each. This is the
// only point the pool allocates; every later operation reuses this arena.
func New(slotCount, bufferBytes int, opts ...PoolOption) (*Pool, error) {
	if slotCount <= 0 || bufferBytes <= 0 {
		return nil, errors.Newf("invalid pool dimensions: %d slots of %d bytes", slotCount, bufferBytes).
			Component(ComponentFramePool).
			Category(errors.CategoryValidation).
			Context("operation", "new_pool").
			Context("slots", slotCount).
			Context("buffer_bytes", bufferBytes).
			Build()
	}

	p := &Pool{
		id:    uuid.New(),
		slots: make([]slot, slotCount),
		clock: SystemClock,
	}
	for _, opt := range opts {
		opt(p)
	}

	// One contiguous arena, sliced per slot.
	arena := make([]byte, slotCount*bufferBytes)
	for i := range p.slots {
		p.slots[i].data = arena[i*bufferBytes : (i+1)*bufferBytes : (i+1)*bufferBytes]
	}

	p.logger = logging.ForService("framepool").With("pool_id", p.id.String())
	p.logger.Info("static buffer pool created",
		"slots", slotCount,
		"buffer_bytes", bufferBytes)

	return p, nil
}

// ID returns the pool's identity tag.
func (p *Pool) ID() uuid.UUID {
	return p.id
}

// Allocate hands out a free slot initialized for format, or nil when the
// pool is exhausted or the format does not fit a slot. The scan starts at
// a rotating cursor so repeated allocate/release cycles spread across
// slots. Never blocks, never allocates.
func (p *Pool) Allocate(format AudioFormat) *BufferHeader {
	p.attempts.Add(1)

	n := uint64(len(p.slots))
	start := p.cursor.Add(1)

	for i := uint64(0); i < n; i++ {
		idx := (start + i) % n
		s := &p.slots[idx]
		if !s.state.CompareAndSwap(slotFree, slotInUse) {
			continue
		}

		dataSize := format.frameBytes()
		if dataSize > uint64(cap(s.data)) {
			// Format does not fit; put the slot back untouched.
			s.state.Store(slotFree)
			p.failedAllocs.Add(1)
			return nil
		}

		h := &s.header
		h.BufferID = uint32(idx)
		h.SequenceNumber = p.sequence.Add(1)
		h.Timestamp = p.clock.NowNanos()
		h.SampleRate = format.SampleRate
		h.ChannelCount = format.ChannelCount
		h.SampleSizeBits = format.SampleSizeBits
		h.FrameSize = format.FrameSizeSamples
		h.DataSize = uint32(dataSize)
		h.Capacity = uint32(cap(s.data))
		h.Magic = headerMagic
		h.Data = s.data[:dataSize]
		h.Checksum = h.computeChecksum()

		p.allocations.Add(1)
		p.inUse.Add(1)
		return h
	}

	// Full pass found no free slot.
	p.failedAllocs.Add(1)
	return nil
}

// Release returns a buffer to the pool. It validates the header before
// clearing: wrong magic, mismatched checksum, out-of-bounds sizes, foreign
// pointers and double releases all fail cleanly without disturbing any
// other slot's state.
func (p *Pool) Release(h *BufferHeader) bool {
	p.releases.Add(1)

	if h == nil || !h.valid() {
		p.failedReleases.Add(1)
		return false
	}

	idx := h.BufferID
	if idx >= uint32(len(p.slots)) {
		p.failedReleases.Add(1)
		return false
	}
	s := &p.slots[idx]
	if &s.header != h {
		// A copy of a real header, or a header from another pool.
		p.failedReleases.Add(1)
		return false
	}

	// Claim the release so a concurrent double release observes either
	// slotReleasing or slotFree and fails the CAS.
	if !s.state.CompareAndSwap(slotInUse, slotReleasing) {
		p.failedReleases.Add(1)
		return false
	}

	s.header = BufferHeader{}
	p.inUse.Add(-1)
	s.state.Store(slotFree)
	return true
}

// Stats is a point-in-time view of pool usage, derived entirely from
// atomic counters. Concurrent allocation and release never block a reader.
type Stats struct {
	PoolID             string
	TotalSlots         int
	InUseSlots         int
	AvailableSlots     int
	AllocationAttempts uint64
	Allocations        uint64
	FailedAllocations  uint64
	Releases           uint64
	FailedReleases     uint64
	SuccessRate        float64
}

// Stats returns current pool statistics.
func (p *Pool) Stats() Stats {
	inUse := int(p.inUse.Load())
	attempts := p.attempts.Load()
	allocations := p.allocations.Load()

	successRate := 0.0
	if attempts > 0 {
		successRate = float64(allocations) / float64(attempts)
	}

	return Stats{
		PoolID:             p.id.String(),
		TotalSlots:         len(p.slots),
		InUseSlots:         inUse,
		AvailableSlots:     len(p.slots) - inUse,
		AllocationAttempts: attempts,
		Allocations:        allocations,
		FailedAllocations:  p.failedAllocs.Load(),
		Releases:           p.releases.Load(),
		FailedReleases:     p.failedReleases.Load(),
		SuccessRate:        successRate,
	}
}
