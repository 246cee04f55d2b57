package xorindex

import (
	"fmt"
	"math/rand"
)

// Builder holds the scratch arrays the peeling engine needs — per-segment
// counters, per-segment peel stacks, and the peeling stack itself — so
// that building many filters in sequence (e.g. partitioned key sets)
// amortizes allocation instead of paying for it on every call. Zero value
// is ready to use; call Release to drop the backing arrays.
//
// Generalized from a fixed fuse-segment geometry to the arbitrary
// s-segment layout this filter uses.
type Builder[T Unsigned] struct {
	counters  [][]counterEntry
	queues    [][]peelEntry
	queueSize []int
	stack     []stackEntry
	hbuf      []uint32
	segMap    [][]int
	segMapS   int
}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder[T Unsigned]() *Builder[T] {
	return &Builder[T]{}
}

// Release drops the Builder's scratch arrays so they can be garbage
// collected. The Builder remains usable afterward; the next Build simply
// reallocates.
func (b *Builder[T]) Release() {
	b.counters = nil
	b.queues = nil
	b.queueSize = nil
	b.stack = nil
	b.hbuf = nil
	b.segMap = nil
	b.segMapS = 0
}

// Build constructs a Filter over keys, which the caller must guarantee are
// unique (duplicate keys are a contract violation with undefined results,
// not a checked error).
func Build[T Unsigned](keys []uint64, opts ...Option) (*Filter[T], error) {
	return NewBuilder[T]().Build(keys, opts...)
}

// Build constructs a Filter over keys, reusing this Builder's scratch
// arrays across calls.
func (b *Builder[T]) Build(keys []uint64, opts ...Option) (*Filter[T], error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.segments < 2 {
		return nil, wrapInvalidConfig("segments must be >= 2")
	}
	n := len(keys)
	if n == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, ErrEmptyKeySet)
	}

	s := cfg.segments
	_, l := size(n, s)
	idx := newSegmentIndexer(s)
	b.ensureCapacity(s, l, n)

	seed := cfg.seed
	if !cfg.haveSeed {
		seed = rand.Uint64()
	}

	attempt := 0
	for {
		attempt++
		if attempt > cfg.maxAttempts {
			return nil, &BudgetExceededError{Attempts: attempt - 1}
		}
		seed = H(seed)

		for i := 0; i < s; i++ {
			clearCounters(b.counters[i][:l])
			b.queueSize[i] = 0
		}

		for _, k := range keys {
			h := H(k ^ seed)
			idx.indexAll(h, uint32(l), b.hbuf)
			for i := 0; i < s; i++ {
				j := b.hbuf[i]
				c := &b.counters[i][j]
				c.totalKeys++
				c.xorMultiplex ^= h
			}
		}

		for j := uint32(0); j < uint32(l); j++ {
			for i := 0; i < s; i++ {
				c := &b.counters[i][j]
				if c.totalKeys == 1 {
					b.enqueue(i, peelEntry{hash: c.xorMultiplex, slot: j})
				}
			}
		}

		stackSize := b.drain(s, l, idx)

		if stackSize == n {
			return b.encode(cfg, s, l, seed, idx, attempt)
		}
	}
}

// drain repeatedly dequeues singleton slots across all s segments —
// peeling them onto the stack and decrementing the counters of the other
// segments their key touches — until every queue is empty. Dequeued
// entries are re-validated against the live counter (staleness check):
// an entry enqueued when a slot had count 1 may have since been
// decremented to 0 by another segment's peel before it is popped.
func (b *Builder[T]) drain(s, l int, idx segmentIndexer) int {
	stackSize := 0
	for {
		any := false
		for i := 0; i < s; i++ {
			for b.queueSize[i] > 0 {
				b.queueSize[i]--
				entry := b.queues[i][b.queueSize[i]]
				j := entry.slot
				if b.counters[i][j].totalKeys == 0 {
					continue
				}
				any = true
				h := entry.hash
				absSlot := j + uint32(i)*uint32(l)
				b.stack[stackSize] = stackEntry{hash: h, absSlot: absSlot}
				stackSize++
				for _, ip := range b.segMap[i] {
					jp := idx.index(h, ip, uint32(l))
					cp := &b.counters[ip][jp]
					cp.totalKeys--
					cp.xorMultiplex ^= h
					if cp.totalKeys == 1 {
						b.enqueue(ip, peelEntry{hash: cp.xorMultiplex, slot: jp})
					}
				}
			}
		}
		if !any {
			break
		}
	}
	return stackSize
}

func (b *Builder[T]) enqueue(segment int, e peelEntry) {
	b.queues[segment][b.queueSize[segment]] = e
	b.queueSize[segment]++
}

// ensureCapacity grows the Builder's scratch arrays to fit s segments of
// length l and n keys, reusing existing backing arrays when they are
// already large enough.
func (b *Builder[T]) ensureCapacity(s, l, n int) {
	if len(b.counters) != s {
		b.counters = make([][]counterEntry, s)
		b.queues = make([][]peelEntry, s)
		b.queueSize = make([]int, s)
	}
	for i := 0; i < s; i++ {
		if cap(b.counters[i]) < l {
			b.counters[i] = make([]counterEntry, l)
			b.queues[i] = make([]peelEntry, l)
		} else {
			b.counters[i] = b.counters[i][:l]
			b.queues[i] = b.queues[i][:l]
		}
	}
	if cap(b.stack) < n {
		b.stack = make([]stackEntry, n)
	} else {
		b.stack = b.stack[:n]
	}
	if cap(b.hbuf) < s {
		b.hbuf = make([]uint32, s)
	} else {
		b.hbuf = b.hbuf[:s]
	}
	if b.segMapS != s {
		b.segMap = buildSegmentMap(s)
		b.segMapS = s
	}
}

// clearCounters resets a segment's live counters to zero without
// reallocating, between peeling attempts.
func clearCounters(c []counterEntry) {
	for i := range c {
		c[i] = counterEntry{}
	}
}

// buildSegmentMap precomputes, for each source segment i, the ascending
// list of the other s-1 segments.
func buildSegmentMap(s int) [][]int {
	m := make([][]int, s)
	for i := 0; i < s; i++ {
		others := make([]int, 0, s-1)
		for j := 0; j < s; j++ {
			if j != i {
				others = append(others, j)
			}
		}
		m[i] = others
	}
	return m
}

func wrapInvalidConfig(msg string) error {
	return &invalidConfigError{msg: msg}
}

type invalidConfigError struct {
	msg string
}

func (e *invalidConfigError) Error() string {
	return "xorindex: invalid configuration: " + e.msg
}

func (e *invalidConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
