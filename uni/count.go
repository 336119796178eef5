package uni

import (
	"github.com/mhr3/unicount/internal/scan"
	"github.com/mhr3/unicount/unit"
	"github.com/mhr3/unicount/utf8"
)

// countLeaf is the largest range CountLen counts without splitting.
const countLeaf = 512

// CountLen returns the number of code points in the first n units of s.
// Zero units are counted like any other. n must not exceed len(s).
func CountLen[T unit.Unit](s []T, n int) int {
	s = s[:n]
	if !unit.EncodingOf[T]().IsVariable() {
		return n
	}
	return countRange(s)
}

// countRange splits s in halves on a code point boundary until the pieces
// are small enough to count directly.
func countRange[T unit.Unit](s []T) int {
	if len(s) <= countLeaf {
		return countLinear(s)
	}
	mid := boundary(s, len(s)/2)
	if mid == 0 || mid == len(s) {
		// no boundary in the upper half, a split would not shrink s
		return countLinear(s)
	}
	return countRange(s[:mid]) + countRange(s[mid:])
}

func countLinear[T unit.Unit](s []T) int {
	switch enc := unit.EncodingOf[T](); enc {
	case unit.UTF8:
		return utf8.Count(cast[byte](s))
	case unit.UTF16LE, unit.UTF16BE:
		return scan.Count16(cast[uint16](s), enc.NeedsSwap())
	}
	return len(s)
}

// boundary moves i forward to the start of the code point that i falls in
// or, for a continuation unit, the one after it.
func boundary[T unit.Unit](s []T, i int) int {
	switch unit.EncodingOf[T]() {
	case unit.UTF8:
		b := cast[byte](s)
		for i < len(b) && unit.IsTrail(b[i]) {
			i++
		}
	case unit.UTF16LE, unit.UTF16BE:
		if i < len(s) && isTrailAt(s, i) {
			i++
		}
	}
	return i
}

// CountAndMiddle returns the number of code points in the first n units of
// s and the unit offset of the middle code point. For an even count the
// middle is the last code point of the first half.
func CountAndMiddle[T unit.Unit](s []T, n int) (count, middle int) {
	s = s[:n]
	if !unit.EncodingOf[T]().IsVariable() {
		return n, n / 2
	}

	second := boundary(s, n/2)
	lhs := countRange(s[:second])
	rhs := countRange(s[second:])
	count = lhs + rhs

	half := count / 2
	if lhs < half {
		second = advance(s, second, half-lhs)
	} else if rhs < half {
		second = retreat(s, second, half-rhs)
	}
	if count%2 == 0 && count != 0 {
		second = retreat(s, second, 1)
	}
	return count, second
}
