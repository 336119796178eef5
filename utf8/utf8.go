// Package utf8 holds the UTF-8 helpers used by uni: validation with an ASCII
// fast path and bounded code point counting.
package utf8

import (
	stdlib "unicode/utf8"
	"unsafe"

	"github.com/mhr3/unicount/ascii"
	"github.com/mhr3/unicount/internal/scan"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	idx := ascii.IndexMask(s, 0x80)
	if idx == -1 {
		return true
	}
	return stdlib.ValidString(s[idx:])
}

// Valid reports whether b is entirely valid UTF-8.
func Valid(b []byte) bool {
	idx := ascii.IndexMask(b, 0x80)
	if idx == -1 {
		return true
	}
	return stdlib.Valid(b[idx:])
}

// Count returns the number of bytes of b that are not continuation bytes.
// For valid UTF-8 this is the number of code points. Zero bytes are counted
// like any other byte.
func Count(b []byte) int {
	return scan.Count8(b)
}

// CountString is like Count but takes a string.
func CountString(s string) int {
	return scan.Count8(unsafe.Slice(unsafe.StringData(s), len(s)))
}
