package scan

const (
	msb8  = 0x8080808080808080
	low7  = 0x7F7F7F7F7F7F7F7F
	msb16 = 0x8000800080008000
	low15 = 0x7FFF7FFF7FFF7FFF
	msb32 = 0x8000000080000000
	low31 = 0x7FFFFFFF7FFFFFFF
)

// zero8 sets the top bit of every byte lane of x that is zero. Unlike the
// classic haszero trick there is no borrow between lanes, so every bit is
// exact and the mask can be popcounted or scanned for the first lane.
func zero8(x uint64) uint64 {
	return ^(((x & low7) + low7) | x) & msb8
}

func zero16(x uint64) uint64 {
	return ^(((x & low15) + low15) | x) & msb16
}

func zero32(x uint64) uint64 {
	return ^(((x & low31) + low31) | x) & msb32
}

// trail8 sets the top bit of every byte lane holding 0b10xxxxxx: bit 7 set
// and bit 6 (shifted into bit 7) clear.
func trail8(x uint64) uint64 {
	return x &^ (x << 1) & msb8
}

// Trail surrogate patterns, broadcast to four 16-bit lanes. The swapped
// variants match units stored in the opposite of host byte order.
const (
	trailMask16      = 0xFC00FC00FC00FC00
	trailValue16     = 0xDC00DC00DC00DC00
	trailMask16Swap  = 0x00FC00FC00FC00FC
	trailValue16Swap = 0x00DC00DC00DC00DC
)

// trail16 sets the top bit of every 16-bit lane holding a trail surrogate.
func trail16(x uint64, swap bool) uint64 {
	if swap {
		return zero16(x&trailMask16Swap ^ trailValue16Swap)
	}
	return zero16(x&trailMask16 ^ trailValue16)
}

func load16(s []uint16) uint64 {
	_ = s[3]
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32 | uint64(s[3])<<48
}

func load32(s []uint32) uint64 {
	_ = s[1]
	return uint64(s[0]) | uint64(s[1])<<32
}
