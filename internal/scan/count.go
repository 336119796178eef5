package scan

import (
	"encoding/binary"
	"math/bits"

	"github.com/mhr3/unicount/unit"
)

// Count8 returns the number of non-continuation bytes in s. Unlike the Len
// kernels it is bounded by len(s) and does not stop at zero bytes.
func Count8(s []byte) int {
	n := len(s)
	i := 0
	for ; len(s)-i >= 8; i += 8 {
		n -= bits.OnesCount64(trail8(binary.LittleEndian.Uint64(s[i:])))
	}
	for ; i < len(s); i++ {
		if unit.IsTrail(s[i]) {
			n--
		}
	}
	return n
}

// Count16 is the UTF-16 counterpart of Count8, skipping trail surrogates.
func Count16(s []uint16, swap bool) int {
	n := len(s)
	i := 0
	for ; len(s)-i >= 4; i += 4 {
		n -= bits.OnesCount64(trail16(load16(s[i:]), swap))
	}
	for ; i < len(s); i++ {
		if isTrail16(s[i], swap) {
			n--
		}
	}
	return n
}
