package scan

import (
	"encoding/binary"
	"math/bits"

	"github.com/mhr3/unicount/unit"
)

// The batch kernels share one shape: a scalar prologue up to the first
// width-aligned unit, a main loop over whole batches without a zero unit
// and a scalar epilogue that runs to the NUL. A batch that holds the NUL is
// left to the epilogue since it may also end mid-sequence.

func len8Batch(s []byte, width int) (points, units int) {
	base := baseAddr(s)
	i := 0
	for ; !isAligned(base, i, width); i++ {
		if s[i] == 0 {
			return points, i
		}
		if !unit.IsTrail(s[i]) {
			points++
		}
	}

batches:
	for len(s)-i >= width {
		trails := 0
		for w := i; w < i+width; w += 8 {
			x := binary.LittleEndian.Uint64(s[w:])
			if zero8(x) != 0 {
				break batches
			}
			trails += bits.OnesCount64(trail8(x))
		}
		points += width - trails
		i += width
	}

	for ; s[i] != 0; i++ {
		if !unit.IsTrail(s[i]) {
			points++
		}
	}
	return points, i
}

func len16Batch(s []uint16, swap bool, width int) (points, units int) {
	base := baseAddr(s)
	n := width / 2
	i := 0
	for ; !isAligned(base, 2*i, width); i++ {
		if s[i] == 0 {
			return points, i
		}
		if !isTrail16(s[i], swap) {
			points++
		}
	}

batches:
	for len(s)-i >= n {
		trails := 0
		for w := i; w < i+n; w += 4 {
			x := load16(s[w:])
			if zero16(x) != 0 {
				break batches
			}
			trails += bits.OnesCount64(trail16(x, swap))
		}
		points += n - trails
		i += n
	}

	for ; s[i] != 0; i++ {
		if !isTrail16(s[i], swap) {
			points++
		}
	}
	return points, i
}

func isTrail16(v uint16, swap bool) bool {
	if swap {
		v = bits.ReverseBytes16(v)
	}
	return unit.IsTrailSurrogate(v)
}

func unitLen8Batch(s []byte, width int) int {
	base := baseAddr(s)
	i := 0
	for ; !isAligned(base, i, width); i++ {
		if s[i] == 0 {
			return i
		}
	}
	for ; len(s)-i >= width; i += width {
		for w := i; w < i+width; w += 8 {
			if m := zero8(binary.LittleEndian.Uint64(s[w:])); m != 0 {
				return w + bits.TrailingZeros64(m)/8
			}
		}
	}
	for s[i] != 0 {
		i++
	}
	return i
}

func unitLen16Batch(s []uint16, width int) int {
	base := baseAddr(s)
	n := width / 2
	i := 0
	for ; !isAligned(base, 2*i, width); i++ {
		if s[i] == 0 {
			return i
		}
	}
	for ; len(s)-i >= n; i += n {
		for w := i; w < i+n; w += 4 {
			if m := zero16(load16(s[w:])); m != 0 {
				return w + bits.TrailingZeros64(m)/16
			}
		}
	}
	for s[i] != 0 {
		i++
	}
	return i
}

func unitLen32Batch(s []uint32, width int) int {
	base := baseAddr(s)
	n := width / 4
	i := 0
	for ; !isAligned(base, 4*i, width); i++ {
		if s[i] == 0 {
			return i
		}
	}
	for ; len(s)-i >= n; i += n {
		for w := i; w < i+n; w += 2 {
			if m := zero32(load32(s[w:])); m != 0 {
				return w + bits.TrailingZeros64(m)/32
			}
		}
	}
	for s[i] != 0 {
		i++
	}
	return i
}
