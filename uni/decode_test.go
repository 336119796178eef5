package uni

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/mhr3/unicount/unit"
)

func TestDecodeUTF8(t *testing.T) {
	for _, s := range samples {
		for i, want := range s {
			r, n := DecodeUTF8([]unit.Char8(s[i:]))
			assert.Equal(t, want, r, "%q at %d", s, i)
			assert.Equal(t, utf8.RuneLen(want), n)
		}
	}

	invalid := [][]unit.Char8{
		nil,
		{0x80},
		{0xBF, 'a'},
		{0xF8, 0x80, 0x80, 0x80},
		{0xFF},
		{0xE1, 0x84}, // truncated
	}
	for _, s := range invalid {
		r, n := DecodeUTF8(s)
		assert.Equal(t, utf8.RuneError, r, "% x", s)
		assert.Zero(t, n, "% x", s)
	}
}

func TestDecodeUTF16(t *testing.T) {
	for _, s := range samples {
		le := toUTF16LE(t, s)
		be := toUTF16BE(t, s)
		i := 0
		for _, want := range s {
			r, n := DecodeUTF16(le[i:])
			assert.Equal(t, want, r)
			r2, n2 := DecodeUTF16(be[i:])
			assert.Equal(t, want, r2)
			assert.Equal(t, n, n2)
			assert.Equal(t, utf16.RuneLen(want), n)
			i += n
		}
	}

	r, n := DecodeUTF16([]unit.Char16BE{unit.NewChar16BE(0xD800), unit.NewChar16BE('a')})
	assert.Equal(t, utf8.RuneError, r, "lead surrogate without trail")
	assert.Zero(t, n)

	r, n = DecodeUTF16([]unit.Char16LE{unit.NewChar16LE(0xD800)})
	assert.Equal(t, utf8.RuneError, r, "truncated pair")
	assert.Zero(t, n)

	r, n = DecodeUTF16([]unit.Char16LE{unit.NewChar16LE(0xDC05)})
	assert.Equal(t, rune(0xDC05), r, "lone trail decodes as itself")
	assert.Equal(t, 1, n)
}

func TestSurrogates(t *testing.T) {
	for _, cp := range []rune{0x10000, 0x1F600, 0x10FFFF, 0x12345} {
		var buf [2]uint16
		assert.Equal(t, 2, EncodeUTF16(cp, buf[:]))

		lead, trail := utf16.EncodeRune(cp)
		assert.Equal(t, uint16(lead), buf[0])
		assert.Equal(t, uint16(trail), buf[1])
		assert.Equal(t, cp, SurrogateToCodePoint(buf[0], buf[1]))
		assert.Zero(t, EncodeUTF16(cp, buf[:1]))
	}

	var one [1]uint16
	assert.Equal(t, 1, EncodeUTF16('\u20AC', one[:]))
	assert.Equal(t, uint16('\u20AC'), one[0])
	assert.Zero(t, EncodeUTF16('a', nil))
}

func TestRuneLen8(t *testing.T) {
	for _, cp := range []rune{0, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, unit.MaxCodePoint} {
		assert.Equal(t, utf8.RuneLen(cp), RuneLen8(cp), "%U", cp)
	}
	assert.Equal(t, -1, RuneLen8(unit.MaxCodePoint+1))
	assert.Equal(t, -1, RuneLen8(-1))
	assert.Equal(t, 3, RuneLen8(0xD800), "surrogates are encoded like any other code point")
}
