// Package xorindex implements a peeling-based XOR filter that doubles as a
// perfect hash index over a static set of 64-bit keys. The index is not
// minimal: its slots range over the whole fingerprint array, which is
// about 1.23 times the key count plus 32.
//
// Construction takes a set of unique uint64 keys and produces an immutable
// Filter supporting two queries: Contains, a probabilistic membership test
// with no false negatives, and Index, a perfect hash returning a stable
// slot in [0, Size()) for every key used to build the filter. Callers
// typically use Index to place external payloads into a parallel array and
// use the returned slot (plus an equality check against that payload) to
// resolve membership exactly.
//
// The filter is built once and never mutated afterward; there is no
// insert or delete. Construction is single-threaded, but the resulting
// Filter is safe for unbounded concurrent readers.
package xorindex
