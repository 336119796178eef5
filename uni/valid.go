package uni

import (
	"github.com/mhr3/unicount/ascii"
	"github.com/mhr3/unicount/unit"
	"github.com/mhr3/unicount/utf8"
)

// Valid reports whether s is well formed in its encoding. Surrogate code
// points are rejected in UTF-8 and UTF-32, and in UTF-16 every lead
// surrogate must be followed by a trail surrogate. Zero units are valid.
func Valid[T unit.Unit](s []T) bool {
	switch enc := unit.EncodingOf[T](); enc {
	case unit.ASCII:
		return ascii.Valid(cast[byte](s))
	case unit.UTF8:
		return utf8.Valid(cast[byte](s))
	case unit.UTF16LE, unit.UTF16BE:
		return valid16(cast[uint16](s), enc.NeedsSwap())
	default:
		return valid32(cast[uint32](s), enc.NeedsSwap())
	}
}

func valid16(s []uint16, swap bool) bool {
	for i := 0; i < len(s); i++ {
		v := s[i]
		if swap {
			v = unit.Swap16(v)
		}
		switch {
		case unit.IsTrailSurrogate(v):
			return false
		case unit.IsLeadSurrogate(v):
			i++
			if i == len(s) {
				return false
			}
			next := s[i]
			if swap {
				next = unit.Swap16(next)
			}
			if !unit.IsTrailSurrogate(next) {
				return false
			}
		}
	}
	return true
}

func valid32(s []uint32, swap bool) bool {
	for _, v := range s {
		if swap {
			v = unit.Swap32(v)
		}
		if v > unit.MaxCodePoint || (v >= unit.LeadSurrogateMin && v <= unit.TrailSurrogateMax) {
			return false
		}
	}
	return true
}
