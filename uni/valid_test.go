package uni

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhr3/unicount/unit"
)

func TestValid(t *testing.T) {
	for _, s := range samples {
		assert.True(t, Valid([]unit.Char8(s)), "UTF-8 %q", s)
		assert.True(t, Valid(toUTF16LE(t, s)), "UTF-16LE %q", s)
		assert.True(t, Valid(toUTF16BE(t, s)), "UTF-16BE %q", s)
		assert.True(t, Valid(toUTF32LE(t, s)), "UTF-32LE %q", s)
		assert.True(t, Valid(toUTF32BE(t, s)), "UTF-32BE %q", s)
	}

	assert.True(t, Valid([]unit.ASCIIChar("plain\x00text")))
	assert.False(t, Valid([]unit.ASCIIChar("caf\xE9")))
}

func TestValidRejects(t *testing.T) {
	for _, s := range []string{"\x80", "a\xC3", "\xED\xA0\x80", "\xF4\x90\x80\x80", "\xC0\xAF"} {
		assert.False(t, Valid([]unit.Char8(s)), "%q", s)
	}

	le := func(v ...uint16) []unit.Char16LE {
		out := make([]unit.Char16LE, len(v))
		for i := range v {
			out[i] = unit.NewChar16LE(v[i])
		}
		return out
	}
	be := func(v ...uint16) []unit.Char16BE {
		out := make([]unit.Char16BE, len(v))
		for i := range v {
			out[i] = unit.NewChar16BE(v[i])
		}
		return out
	}
	for _, v := range [][]uint16{
		{0xD800},
		{'a', 0xDC00},
		{0xD83D, 'a'},
		{0xD83D, 0xD83D, 0xDE00},
	} {
		assert.False(t, Valid(le(v...)), "%04X", v)
		assert.False(t, Valid(be(v...)), "%04X", v)
	}
	assert.True(t, Valid(be(0xD83D, 0xDE00, 0)))

	for _, cp := range []rune{0xD800, 0xDFFF, 0x110000, -1} {
		assert.False(t, Valid([]unit.Char32LE{unit.NewChar32LE('a'), unit.NewChar32LE(cp)}), "%X", cp)
		assert.False(t, Valid([]unit.Char32BE{unit.NewChar32BE(cp)}), "%X", cp)
	}
}

func TestValidUTF16Bytes(t *testing.T) {
	// the unit views written back out match the bytes they were loaded from
	for _, s := range samples {
		w := toUTF16BE(t, s)
		b := unit.Store16(nil, w)
		assert.Len(t, b, 2*len(w))
		assert.Equal(t, w, unit.Load16[unit.Char16BE](b))
		assert.True(t, Valid(unit.Load16[unit.Char16BE](b)))
	}
}
