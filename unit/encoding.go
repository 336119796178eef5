package unit

import "fmt"

// Encoding names the encoding of a code-unit type.
type Encoding uint8

const (
	ASCII Encoding = iota
	UTF8
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE
)

var encodingNames = [...]string{
	ASCII:   "ASCII",
	UTF8:    "UTF-8",
	UTF16BE: "UTF-16BE",
	UTF16LE: "UTF-16LE",
	UTF32BE: "UTF-32BE",
	UTF32LE: "UTF-32LE",
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// IsVariable reports whether a code point may span more than one unit.
func (e Encoding) IsVariable() bool {
	return e == UTF8 || e == UTF16BE || e == UTF16LE
}

// UnitSize returns the size of one storage unit in bytes.
func (e Encoding) UnitSize() int {
	switch e {
	case UTF16BE, UTF16LE:
		return 2
	case UTF32BE, UTF32LE:
		return 4
	}
	return 1
}

// IsBigEndianOrder reports whether e stores multi-byte units big-endian.
// Single-byte encodings report false.
func (e Encoding) IsBigEndianOrder() bool {
	return e == UTF16BE || e == UTF32BE
}

// NeedsSwap reports whether units of e must be byte-swapped to be read as
// host integers.
func (e Encoding) NeedsSwap() bool {
	if e.UnitSize() == 1 {
		return false
	}
	return e.IsBigEndianOrder() != IsBigEndian
}
