package uni

import (
	"github.com/mhr3/unicount/internal/assert"
	"github.com/mhr3/unicount/unit"
)

// seqLenAt returns the number of units of the code point starting at i,
// clamped to the end of s.
func seqLenAt[T unit.Unit](s []T, i int) int {
	n := s[i].SequenceLength()
	if i+n > len(s) {
		return len(s) - i
	}
	return n
}

func isTrailAt[T unit.Unit](s []T, i int) bool {
	switch unit.EncodingOf[T]() {
	case unit.UTF8:
		return unit.IsTrail(cast[byte](s)[i])
	case unit.UTF16LE:
		return cast[unit.Char16LE](s)[i].IsTrailSurrogate()
	case unit.UTF16BE:
		return cast[unit.Char16BE](s)[i].IsTrailSurrogate()
	}
	return false
}

// decodeAt decodes the code point starting at unit i. A size of 0 marks an
// invalid sequence.
func decodeAt[T unit.Unit](s []T, i int) (rune, int) {
	switch unit.EncodingOf[T]() {
	case unit.UTF8:
		return DecodeUTF8(cast[unit.Char8](s[i:]))
	case unit.UTF16LE:
		return DecodeUTF16(cast[unit.Char16LE](s[i:]))
	case unit.UTF16BE:
		return DecodeUTF16(cast[unit.Char16BE](s[i:]))
	case unit.UTF32LE:
		return cast[unit.Char32LE](s)[i].Rune(), 1
	case unit.UTF32BE:
		return cast[unit.Char32BE](s)[i].Rune(), 1
	}
	return rune(cast[byte](s)[i]), 1
}

// advance moves n code points forward from the code point starting at i.
func advance[T unit.Unit](s []T, i, n int) int {
	if !unit.EncodingOf[T]().IsVariable() {
		return i + n
	}
	for ; n > 0 && i < len(s); n-- {
		i += seqLenAt(s, i)
	}
	return i
}

// retreat moves n code points back from the code point starting at i.
func retreat[T unit.Unit](s []T, i, n int) int {
	if !unit.EncodingOf[T]().IsVariable() {
		return i - n
	}
	for ; n > 0 && i > 0; n-- {
		i--
		for i > 0 && isTrailAt(s, i) {
			i--
			if unit.EncodingOf[T]() != unit.UTF8 {
				break
			}
		}
	}
	return i
}

// OffsetFront returns the unit offset of code point i of s, counting from
// the start. It is O(1) for fixed-width units and O(i) otherwise.
func OffsetFront[T unit.Unit](s []T, i int) int {
	return advance(s, 0, i)
}

// OffsetBack returns the unit offset of code point i of s, counting from
// the end: 0 is the last code point.
func OffsetBack[T unit.Unit](s []T, i int) int {
	return retreat(s, len(s), i+1)
}

// IndexFront returns code point i of s, counting from the start.
func IndexFront[T unit.Unit](s []T, i int) rune {
	assert.NotEmpty(len(s), "string")
	r, n := decodeAt(s, OffsetFront(s, i))
	assert.True(n != 0, "invalid sequence")
	return r
}

// IndexBack returns code point i of s, counting from the end: 0 is the
// last code point.
func IndexBack[T unit.Unit](s []T, i int) rune {
	assert.NotEmpty(len(s), "string")
	r, n := decodeAt(s, OffsetBack(s, i))
	assert.True(n != 0, "invalid sequence")
	return r
}
