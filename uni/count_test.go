package uni

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhr3/unicount/unit"
)

func TestCountLen(t *testing.T) {
	long := strings.Repeat(samples[len(samples)-3]+samples[len(samples)-1], 20)
	inputs := append([]string{long}, samples...)

	for _, s := range inputs {
		// every code point boundary, so both even and odd counts are covered
		for n := 0; n <= len(s); n++ {
			if n < len(s) && !utf8.RuneStart(s[n]) {
				continue
			}
			want := utf8.RuneCountInString(s[:n])
			require.Equal(t, want, CountLen([]unit.Char8(s), n), "UTF-8 %q[:%d]", s, n)
		}

		le := toUTF16LE(t, s)
		be := toUTF16BE(t, s)
		want := utf8.RuneCountInString(s)
		assert.Equal(t, want, CountLen(le, len(le)), "UTF-16LE %q", s)
		assert.Equal(t, want, CountLen(be, len(be)), "UTF-16BE %q", s)

		u32 := toUTF32LE(t, s)
		assert.Equal(t, len(u32), CountLen(u32, len(u32)))
	}
}

func TestCountLenIgnoresZeros(t *testing.T) {
	s := []unit.Char8("a\x00b\x00\u1100")
	assert.Equal(t, 5, CountLen(s, len(s)))
	assert.Equal(t, 2, CountLen(s, 2))
}

func TestCountLenSplitsOnBoundaries(t *testing.T) {
	// larger than one leaf and made of 3 byte sequences only, so the split
	// point lands inside a sequence
	s := strings.Repeat("\u1100", 3*countLeaf+1)
	assert.Equal(t, 3*countLeaf+1, CountLen([]unit.Char8(s), len(s)))

	w := toUTF16BE(t, strings.Repeat("\U0001F600", countLeaf+3))
	assert.Equal(t, countLeaf+3, CountLen(w, len(w)))
}

func TestCountLenLongContinuationRun(t *testing.T) {
	// the upper half holds no sequence start, so there is nowhere to split
	for _, s := range []string{
		"a" + strings.Repeat("\x80", 3*countLeaf),
		strings.Repeat("\xBF", 2*countLeaf+1),
		strings.Repeat("ab", countLeaf) + strings.Repeat("\x80", 2*countLeaf),
	} {
		want := 0
		for i := 0; i < len(s); i++ {
			if utf8.RuneStart(s[i]) {
				want++
			}
		}
		assert.Equal(t, want, CountLen([]unit.Char8(s), len(s)), "%d units", len(s))
	}

	// same shape for UTF-16: a lead followed by a long run of trails
	w := make([]unit.Char16LE, 0, 2*countLeaf+1)
	w = append(w, unit.NewChar16LE('a'))
	for range 2 * countLeaf {
		w = append(w, unit.NewChar16LE(0xDC00))
	}
	assert.Equal(t, 1, CountLen(w, len(w)))
}

func TestCountAndMiddleUTF8(t *testing.T) {
	tests := []struct {
		in     string
		middle int
	}{
		{"", 0},
		{"1", 0},
		{"10", 0},
		{"100", 1},
		{"1000", 1},
		{"10000", 2},
		{"100000", 2},
		{"1000000", 3},
		{"10000000", 3},
		{"100000000", 4},
		{"1000000000", 4},
		{"\u0100ab", 2},
		{"\u1100ab", 3},
		{"\u1100\u1100\u1100ab", 6},
		{"\u1100\u1100\u1100abc", 6},
		{"ab\u1100\u1100\u1100", 5},
		{"abc\u1100\u1100\u1100", 2},
		{"\u1100\u1100\u1100abcd", 9},
		{"\u1100\u1100\u1100abcdf", 9},
	}
	for _, tt := range tests {
		count, middle := CountAndMiddle([]unit.Char8(tt.in), len(tt.in))
		assert.Equal(t, utf8.RuneCountInString(tt.in), count, "%q", tt.in)
		assert.Equal(t, tt.middle, middle, "%q", tt.in)
	}
}

func TestCountAndMiddleUTF16(t *testing.T) {
	for _, s := range samples {
		w := toUTF16LE(t, s)
		count, middle := CountAndMiddle(w, len(w))
		require.Equal(t, utf8.RuneCountInString(s), count, "%q", s)
		if count == 0 {
			assert.Zero(t, middle)
			continue
		}
		assert.False(t, w[middle].IsTrailSurrogate(), "%q: middle %d splits a pair", s, middle)

		idx := CountLen(w, middle)
		if count%2 == 0 {
			assert.Equal(t, count/2-1, idx, "%q", s)
		} else {
			assert.Contains(t, []int{count / 2, count/2 + 1}, idx, "%q", s)
		}
	}
}

func TestCountAndMiddleFixed(t *testing.T) {
	a := []unit.ASCIIChar("abcdefg")
	count, middle := CountAndMiddle(a, len(a))
	assert.Equal(t, 7, count)
	assert.Equal(t, 3, middle)

	w := toUTF32BE(t, "\U0001F600\U0001F600\U0001F600\U0001F600")
	count, middle = CountAndMiddle(w, len(w))
	assert.Equal(t, 4, count)
	assert.Equal(t, 2, middle)
}
