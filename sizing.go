package xorindex

import "math"

// size computes the fingerprint array length m and per-segment block
// length L for n keys split across s segments.
//
// m = ceilToMultiple(32 + ceil(1.23*n), s). The division here rounds up,
// not down: a filter that advertised a Size() smaller than the slot count
// its own sizing arithmetic implies would be an observable correctness
// bug for Index callers, so under-allocation is never silently accepted.
func size(n, s int) (m, l int) {
	a := 32 + int(math.Ceil(1.23*float64(n)))
	l = ceilDiv(a, s)
	m = l * s
	return m, l
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
