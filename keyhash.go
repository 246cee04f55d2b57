package xorindex

import "github.com/cespare/xxhash"

// HashBytes turns an arbitrary byte-slice payload into the uint64 key
// this package's core consumes. The core itself never touches anything
// but uint64 keys (hashing domain objects is explicitly the caller's
// job); this is the idiomatic way to get there for byte-oriented
// payloads.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashString is a convenience wrapper over HashBytes for string payloads.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
