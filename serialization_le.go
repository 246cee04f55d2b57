//go:build amd64 || 386 || arm || arm64 || ppc64le || mipsle || mips64le || mips64p32le || wasm

package xorindex

import (
	"io"
	"unsafe"
)

// Save writes the filter to w assuming a little-endian host, using direct
// byte copies of the fingerprint array for performance.
func (f *Filter[T]) Save(w io.Writer) error {
	if _, err := w.Write([]byte{uint8(serializationVersion)}); err != nil {
		return err
	}
	if _, err := w.Write((*[4]byte)(unsafe.Pointer(&f.segments))[:]); err != nil {
		return err
	}
	width := uint8(widthOf[T]())
	if _, err := w.Write([]byte{width}); err != nil {
		return err
	}
	hasTags := uint8(0)
	if f.originTags != nil {
		hasTags = 1
	}
	if _, err := w.Write([]byte{hasTags}); err != nil {
		return err
	}
	if _, err := w.Write((*[8]byte)(unsafe.Pointer(&f.seed))[:]); err != nil {
		return err
	}
	fpLen := uint32(len(f.fingerprints))
	if _, err := w.Write((*[4]byte)(unsafe.Pointer(&fpLen))[:]); err != nil {
		return err
	}
	if len(f.fingerprints) > 0 {
		size := int(unsafe.Sizeof(f.fingerprints[0]))
		bytes := unsafe.Slice((*byte)(unsafe.Pointer(&f.fingerprints[0])), len(f.fingerprints)*size)
		if _, err := w.Write(bytes); err != nil {
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

const serializationVersion = 1

// Load reads a filter previously written by Save, assuming a
// little-endian host.
func Load[T Unsigned](r io.Reader) (*Filter[T], error) {
	var f Filter[T]
	var header [1]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, (*[4]byte)(unsafe.Pointer(&f.segments))[:]); err != nil {
		return nil, err
	}
	var width [1]byte
	if _, err := io.ReadFull(r, width[:]); err != nil {
		return nil, err
	}
	if int(width[0]) != widthOf[T]() {
		return nil, ErrWidthMismatch
	}
	var hasTags [1]byte
	if _, err := io.ReadFull(r, hasTags[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, (*[8]byte)(unsafe.Pointer(&f.seed))[:]); err != nil {
		return nil, err
	}
	var fpLen uint32
	if _, err := io.ReadFull(r, (*[4]byte)(unsafe.Pointer(&fpLen))[:]); err != nil {
		return nil, err
	}
	f.fingerprints = make([]T, fpLen)
	if fpLen > 0 {
		size := int(unsafe.Sizeof(f.fingerprints[0]))
		bytes := unsafe.Slice((*byte)(unsafe.Pointer(&f.fingerprints[0])), int(fpLen)*size)
		if _, err := io.ReadFull(r, bytes); err != nil {
			return nil, err
		}
	}
	if hasTags[0] == 1 {
		f.originTags = make([]uint8, fpLen)
		if _, err := io.ReadFull(r, f.originTags); err != nil {
			return nil, err
		}
	}
	if f.segments != 0 {
		f.segmentLength = fpLen / f.segments
	}
	f.idx = newSegmentIndexer(int(f.segments))
	return &f, nil
}
