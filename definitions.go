package xorindex

// counterEntry is C[i][j]: the live-key count and XOR-multiplexed hash
// for segment i's slot j. While totalKeys==1, xorMultiplex equals the
// hash of the single remaining key touching this slot — the invariant
// the peeling engine relies on to never need a per-slot key list.
type counterEntry struct {
	totalKeys    int16
	xorMultiplex uint64
}

// peelEntry is a (keyHash, segment-local slot) pair waiting to be peeled
// from one segment's queue. Queues are modeled as a stack (push/pop off
// the end) rather than a literal FIFO: the drain algorithm's staleness
// check and XOR self-correction make dequeue order irrelevant to
// correctness, and a stack lets every segment reuse one flat,
// never-reallocated backing slice.
type peelEntry struct {
	hash uint64
	slot uint32
}

// stackEntry is an entry on the peeling stack S: a key's hash together
// with the absolute slot (segment*L + segment-local slot) it was peeled
// into. The encoder walks these in reverse to assign fingerprints.
type stackEntry struct {
	hash    uint64
	absSlot uint32
}

// Filter is the immutable query artifact produced by Build. It supports
// Contains (probabilistic membership) and Index (perfect hash over the
// key set it was built from) with no synchronization required for
// concurrent readers.
type Filter[T Unsigned] struct {
	seed          uint64
	segments      uint32
	segmentLength uint32
	fingerprints  []T
	originTags    []uint8 // nil when built with WithOriginTags(false)
	attempts      int
	idx           segmentIndexer
}

// Seed returns the final successful construction seed.
func (f *Filter[T]) Seed() uint64 { return f.seed }

// Size returns m, the length of the fingerprint array.
func (f *Filter[T]) Size() int { return len(f.fingerprints) }

// Segments returns s, the number of hash segments.
func (f *Filter[T]) Segments() int { return int(f.segments) }

// Attempts returns the number of peeling attempts construction took.
func (f *Filter[T]) Attempts() int { return f.attempts }

// RawFingerprints exposes the fingerprint array for external
// serialization. Callers must not mutate the returned slice.
func (f *Filter[T]) RawFingerprints() []T { return f.fingerprints }

// RawOriginTags exposes the origin-tag array for external serialization.
// Returns nil if the filter was built with WithOriginTags(false).
func (f *Filter[T]) RawOriginTags() []uint8 { return f.originTags }

// HasOriginTags reports whether Index is supported by this filter.
func (f *Filter[T]) HasOriginTags() bool { return f.originTags != nil }
