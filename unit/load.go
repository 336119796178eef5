package unit

import "encoding/binary"

// Load16 copies a UTF-16 byte buffer into units of type T. The bytes must
// already be in T's byte order; a trailing odd byte is dropped. Load16
// allocates and exists for callers holding raw bytes, the scan entry points
// never call it.
func Load16[T Char16LE | Char16BE](b []byte) []T {
	out := make([]T, len(b)/2)
	for i := range out {
		out[i] = T(binary.NativeEndian.Uint16(b[2*i:]))
	}
	return out
}

// Load32 is the UTF-32 counterpart of Load16; trailing bytes that do not
// form a whole unit are dropped.
func Load32[T Char32LE | Char32BE](b []byte) []T {
	out := make([]T, len(b)/4)
	for i := range out {
		out[i] = T(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return out
}

// Store16 appends the bytes of units to dst, preserving their byte order.
func Store16[T Char16LE | Char16BE](dst []byte, units []T) []byte {
	for _, u := range units {
		dst = binary.NativeEndian.AppendUint16(dst, uint16(u))
	}
	return dst
}

// Store32 appends the bytes of units to dst, preserving their byte order.
func Store32[T Char32LE | Char32BE](dst []byte, units []T) []byte {
	for _, u := range units {
		dst = binary.NativeEndian.AppendUint32(dst, uint32(u))
	}
	return dst
}
