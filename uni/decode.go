package uni

import (
	"unicode/utf8"

	"github.com/mhr3/unicount/unit"
)

// DecodeUTF8 decodes the code point at the start of s and returns it with
// its length in units. It returns U+FFFD and 0 when s is empty, does not
// start with a lead byte or is shorter than the sequence the lead byte
// announces. Continuation bytes are not checked.
func DecodeUTF8(s []unit.Char8) (rune, int) {
	if len(s) == 0 || !s[0].IsValidLead() {
		return utf8.RuneError, 0
	}
	n := s[0].SequenceLength()
	if len(s) < n {
		return utf8.RuneError, 0
	}

	r := rune(s[0])
	switch n {
	case 1:
		return r, 1
	case 2:
		return (r&0x1F)<<6 | rune(s[1]&0x3F), 2
	case 3:
		return (r&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3
	}
	return (r&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F), 4
}

// DecodeUTF16 decodes the code point at the start of s and returns it with
// its length in units. A lead surrogate without a trail surrogate after it
// yields U+FFFD and 0. A lone trail surrogate decodes as itself.
func DecodeUTF16[T unit.Wide16](s []T) (rune, int) {
	if len(s) == 0 {
		return utf8.RuneError, 0
	}
	first := s[0].AsHost()
	if !unit.IsLeadSurrogate(first) {
		return rune(first), 1
	}
	if len(s) > 1 {
		if second := s[1].AsHost(); unit.IsTrailSurrogate(second) {
			return SurrogateToCodePoint(first, second), 2
		}
	}
	return utf8.RuneError, 0
}

// SurrogateToCodePoint combines a lead and a trail surrogate, both host
// values.
func SurrogateToCodePoint(lead, trail uint16) rune {
	return rune(lead)<<10 + rune(trail) - (unit.LeadSurrogateMin<<10 + unit.TrailSurrogateMin - 0x10000)
}

// EncodeUTF16 writes cp to dst as one or two host-order units and returns
// the number written, or 0 when dst is too short.
func EncodeUTF16(cp rune, dst []uint16) int {
	if unit.IsInBMP(cp) {
		if len(dst) < 1 {
			return 0
		}
		dst[0] = uint16(cp)
		return 1
	}
	if len(dst) < 2 {
		return 0
	}
	dst[0] = uint16(unit.LeadOffset + cp>>10)
	dst[1] = uint16(unit.TrailSurrogateMin + cp&0x3FF)
	return 2
}

// RuneLen8 returns the number of UTF-8 bytes needed for cp, or -1 when cp
// is negative or above unit.MaxCodePoint.
func RuneLen8(cp rune) int {
	switch {
	case cp < 0:
		return -1
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	case cp <= unit.MaxCodePoint:
		return 4
	}
	return -1
}
