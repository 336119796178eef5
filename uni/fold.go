package uni

import (
	"github.com/mhr3/unicount/ascii"
	"github.com/mhr3/unicount/unit"
)

// EqualFoldASCII reports whether a and b are equal under ASCII case
// folding.
func EqualFoldASCII(a, b []unit.ASCIIChar) bool {
	return ascii.EqualFold(cast[byte](a), cast[byte](b))
}

// ToUpperASCII upper-cases the letters of s in place.
func ToUpperASCII(s []unit.ASCIIChar) {
	for i, c := range s {
		s[i] = ascii.ToUpper(c)
	}
}

// ToLowerASCII lower-cases the letters of s in place.
func ToLowerASCII(s []unit.ASCIIChar) {
	for i, c := range s {
		s[i] = ascii.ToLower(c)
	}
}
