//go:build (!amd64 && !386 && !arm && !arm64 && !ppc64le && !mipsle && !mips64le && !mips64p32le && !wasm) || appengine
// +build !amd64,!386,!arm,!arm64,!ppc64le,!mipsle,!mips64le,!mips64p32le,!wasm appengine

package xorindex

import (
	"encoding/binary"
	"io"
)

const serializationVersion = 1

// Save writes the filter to w in the portable little-endian layout:
// version byte, segment count, fingerprint width, an origin-tags-present
// flag, seed, fingerprint array length, the fingerprint array, and
// (if present) the origin-tag array. This is the encoding/binary path
// used on architectures without an efficient unaligned unsafe cast.
func (f *Filter[T]) Save(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint8(serializationVersion)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.segments); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint8(widthOf[T]())); err != nil {
		return err
	}
	hasTags := uint8(0)
	if f.originTags != nil {
		hasTags = 1
	}
	if err := binary.Write(w, binary.LittleEndian, hasTags); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, f.seed); err != nil {
		return err
	}
	fpLen := uint32(len(f.fingerprints))
	if err := binary.Write(w, binary.LittleEndian, fpLen); err != nil {
		return err
	}
	for _, fp := range f.fingerprints {
		if err := binary.Write(w, binary.LittleEndian, fp); err != nil {
			return err
		}
	}
	if hasTags == 1 {
		if _, err := w.Write(f.originTags); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a filter previously written by Save.
func Load[T Unsigned](r io.Reader) (*Filter[T], error) {
	var f Filter[T]
	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.segments); err != nil {
		return nil, err
	}
	var width uint8
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, err
	}
	if int(width) != widthOf[T]() {
		return nil, ErrWidthMismatch
	}
	var hasTags uint8
	if err := binary.Read(r, binary.LittleEndian, &hasTags); err != nil {
		return nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &f.seed); err != nil {
		return nil, err
	}
	var fpLen uint32
	if err := binary.Read(r, binary.LittleEndian, &fpLen); err != nil {
		return nil, err
	}
	f.fingerprints = make([]T, fpLen)
	for i := range f.fingerprints {
		if err := binary.Read(r, binary.LittleEndian, &f.fingerprints[i]); err != nil {
			return nil, err
		}
	}
	if hasTags == 1 {
		f.originTags = make([]uint8, fpLen)
		if _, err := io.ReadFull(r, f.originTags); err != nil {
			return nil, err
		}
	}
	if f.segments != 0 {
		f.segmentLength = uint32(fpLen) / f.segments
	}
	f.idx = newSegmentIndexer(int(f.segments))
	return &f, nil
}
