package scan

import "unsafe"

// Batch widths in bytes.
const (
	SSE2Width     = 16
	NEONWidth     = 16
	AVX2Width     = 32
	AVX512BWWidth = 64
)

// baseAddr returns the address of the first element of s, 0 for a nil slice.
func baseAddr[T any](s []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// isAligned reports whether the element at byte offset off from base sits on
// a width boundary. width must be a power of two.
func isAligned(base uintptr, off, width int) bool {
	return (base+uintptr(off))&uintptr(width-1) == 0
}
