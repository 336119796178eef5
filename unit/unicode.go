package unit

const (
	LeadSurrogateMin  = 0xD800
	LeadSurrogateMax  = 0xDBFF
	TrailSurrogateMin = 0xDC00
	TrailSurrogateMax = 0xDFFF

	// LeadOffset is LeadSurrogateMin - (0x10000 >> 10).
	LeadOffset = 0xD7C0
	// MaxCodePoint is the largest valid code point.
	MaxCodePoint = 0x10FFFF

	// MaxSequence8 is the longest UTF-8 sequence, in units.
	MaxSequence8 = 4
	// MaxSequence16 is the longest UTF-16 sequence, in units.
	MaxSequence16 = 2
)

// IsLeadSurrogate reports whether the host-order value v is a lead (high)
// surrogate.
func IsLeadSurrogate(v uint16) bool {
	return v >= LeadSurrogateMin && v <= LeadSurrogateMax
}

// IsTrailSurrogate reports whether the host-order value v is a trail (low)
// surrogate.
func IsTrailSurrogate(v uint16) bool {
	return v >= TrailSurrogateMin && v <= TrailSurrogateMax
}

// IsTrail reports whether b is a UTF-8 continuation byte (0b10xxxxxx).
func IsTrail(b byte) bool {
	return b>>6 == 0b10
}

// SequenceLength8 returns the length of the UTF-8 sequence that b starts.
// Bytes that cannot start a sequence report 1 so that scans always advance.
func SequenceLength8(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b>>5 == 0b110:
		return 2
	case b>>4 == 0b1110:
		return 3
	case b>>3 == 0b11110:
		return 4
	}
	return 1
}

// SequenceLength16 returns the length of the UTF-16 sequence that the
// host-order value v starts.
func SequenceLength16(v uint16) int {
	if IsLeadSurrogate(v) {
		return 2
	}
	return 1
}

// IsInBMP reports whether cp lies in the Basic Multilingual Plane.
func IsInBMP(cp rune) bool {
	return uint32(cp) < 0x10000
}
