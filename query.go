package xorindex

// maxInlineSegments bounds the stack-allocated slot scratch Index uses;
// segment counts above this (well past the s=3 design point) fall back to
// a heap allocation.
const maxInlineSegments = 8

// Contains reports whether key is likely a member of the set the filter
// was built from. There are no false negatives for keys the filter was
// built from; for other keys the false-positive rate is approximately
// 2^-W where W is the fingerprint width.
func (f *Filter[T]) Contains(key uint64) bool {
	h := H(key ^ f.seed)
	want := fingerprintOf[T](h)
	return want == f.accumulate(h)
}

// Index returns a stable slot in [0, Size()) that uniquely identifies
// key's position among the filter's key set, or -1 if key is definitely
// absent or its fingerprint collides without matching an origin tag.
// Callers that need certainty (as opposed to "probably a member, and if
// so, here's where") should follow a non-negative Index with an equality
// check against whatever payload they stored at that slot.
func (f *Filter[T]) Index(key uint64) int {
	if f.originTags == nil {
		panic("xorindex: Index called on a filter built with WithOriginTags(false)")
	}
	h := H(key ^ f.seed)
	want := fingerprintOf[T](h)

	l := f.segmentLength
	s := int(f.segments)
	var slotsArr [maxInlineSegments]uint32
	slots := slotsArr[:0]
	if s <= maxInlineSegments {
		slots = slotsArr[:s]
	} else {
		slots = make([]uint32, s)
	}
	acc := T(0)
	for i := 0; i < s; i++ {
		j := f.idx.index(h, i, l)
		slots[i] = uint32(i)*l + j
		acc ^= f.fingerprints[slots[i]]
	}
	if want != acc {
		return -1
	}
	for i := 0; i < s; i++ {
		if f.originTags[slots[i]] == uint8(i) {
			return int(slots[i])
		}
	}
	return -1
}

// accumulate computes the XOR of the s fingerprints h hashes to.
func (f *Filter[T]) accumulate(h uint64) T {
	l := f.segmentLength
	s := int(f.segments)
	acc := T(0)
	for i := 0; i < s; i++ {
		j := f.idx.index(h, i, l)
		acc ^= f.fingerprints[uint32(i)*l+j]
	}
	return acc
}
