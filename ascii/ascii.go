// Package ascii holds the ASCII helpers behind the ASCII code paths of uni.
package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
)

// ValidString reports whether s consists of 7-bit ASCII bytes only.
func ValidString(s string) bool {
	return segascii.ValidString(s)
}

// Valid reports whether b consists of 7-bit ASCII bytes only.
func Valid(b []byte) bool {
	return segascii.Valid(b)
}

// IndexMask returns the index of the first byte of s sharing a bit with
// mask, or -1 if there is none. IndexMask(s, 0x80) finds the first
// non-ASCII byte.
func IndexMask[T string | []byte](s T, mask byte) int {
	return indexMaskGo(s, mask)
}
