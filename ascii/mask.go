package ascii

import "math/bits"

const lsb = 0x0101010101010101

func indexMaskGo[T string | []byte](s T, mask byte) int {
	m := uint64(mask) * lsb

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		if w := load64(s) & m; w != 0 {
			return pos + bits.TrailingZeros64(w)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}
