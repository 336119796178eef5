package ascii

// EqualFold reports whether a and b are equal under ASCII case folding.
// Bytes outside 'a'-'z' and 'A'-'Z' must match exactly.
func EqualFold[T string | []byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		x, y := load64(a), load64(b)
		if x != y && foldWord(x) != foldWord(y) {
			return false
		}
		a, b = a[8:], b[8:]
	}

	// zero padding never folds, so the tail compares as one short word
	var x, y uint64
	for i := len(a) - 1; i >= 0; i-- {
		x = x<<8 | uint64(a[i])
		y = y<<8 | uint64(b[i])
	}
	return x == y || foldWord(x) == foldWord(y)
}

func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	// folds into a single 64-bit load
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// lowerMask sets the top bit of every byte of x that is in 'a'-'z'.
func lowerMask(x uint64) uint64 {
	const m, n = 'a' - 1, 'z' + 1

	above := uint64(lsb * (127 + n))
	low := x & (lsb * 127)
	below := uint64(lsb * (127 - m))
	return (above - low) & ^x & (low + below) & (lsb * 128)
}

// foldWord upper-cases every ASCII letter in x.
func foldWord(x uint64) uint64 {
	return x - lowerMask(x)>>2
}
