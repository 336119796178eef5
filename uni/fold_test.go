package uni

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhr3/unicount/ascii"
	"github.com/mhr3/unicount/unit"
)

func TestEqualFoldASCII(t *testing.T) {
	for _, s := range samples {
		if !ascii.ValidString(s) {
			continue
		}
		upper := []unit.ASCIIChar(s)
		ToUpperASCII(upper)
		assert.Equal(t, strings.ToUpper(s), string(upper))

		lower := []unit.ASCIIChar(s)
		ToLowerASCII(lower)
		assert.Equal(t, strings.ToLower(s), string(lower))

		assert.True(t, EqualFoldASCII(upper, lower), "%q", s)
		assert.True(t, EqualFoldASCII([]unit.ASCIIChar(s), upper), "%q", s)
	}

	assert.False(t, EqualFoldASCII([]unit.ASCIIChar("abc"), []unit.ASCIIChar("abd")))
	assert.False(t, EqualFoldASCII([]unit.ASCIIChar("abc"), []unit.ASCIIChar("ab")))
	assert.True(t, EqualFoldASCII(nil, []unit.ASCIIChar{}))
}

func TestASCIICharClasses(t *testing.T) {
	s := []unit.ASCIIChar("a1 !Z\x7F")
	assert.True(t, ascii.IsLower(s[0]))
	assert.True(t, ascii.IsDigit(s[1]))
	assert.True(t, ascii.IsBlank(s[2]))
	assert.True(t, ascii.IsPunct(s[3]))
	assert.True(t, ascii.IsUpper(s[4]))
	assert.True(t, ascii.IsControl(s[5]))
	assert.Equal(t, unit.ASCIIChar('A'), ascii.ToUpper(s[0]))
}
