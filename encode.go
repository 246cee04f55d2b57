package xorindex

// encode walks the peeling stack in reverse insertion order, assigning
// each slot its fingerprint and, if requested, its origin
// segment tag. Processing in reverse means that by the time a key's
// primary slot is assigned, the other s-1 slots it touches have either
// already received their final value (peeled later, so written earlier
// in this reverse pass) or still hold the zero value they were
// initialized with, which is the correct XOR identity for a key not yet
// processed.
func (b *Builder[T]) encode(cfg *buildConfig, s, l int, seed uint64, idx segmentIndexer, attempt int) (*Filter[T], error) {
	m := l * s
	fingerprints := make([]T, m)
	var originTags []uint8
	if cfg.originTags {
		originTags = make([]uint8, m)
	}

	n := len(b.stack)
	for i := n - 1; i >= 0; i-- {
		e := b.stack[i]
		segment := int(e.absSlot) / l
		f := fingerprintOf[T](e.hash)
		var acc T
		for _, other := range b.segMap[segment] {
			j := idx.index(e.hash, other, uint32(l))
			acc ^= fingerprints[other*l+int(j)]
		}
		fingerprints[e.absSlot] = f ^ acc
		if originTags != nil {
			originTags[e.absSlot] = uint8(segment)
		}
	}

	return &Filter[T]{
		seed:          seed,
		segments:      uint32(s),
		segmentLength: uint32(l),
		fingerprints:  fingerprints,
		originTags:    originTags,
		attempts:      attempt,
		idx:           idx,
	}, nil
}
