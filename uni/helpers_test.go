package uni

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/mhr3/unicount/unit"
)

var samples = []string{
	"",
	"a",
	"hello world",
	"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!?",
	"\u0100ab",
	"\u1100\u1100\u1100abcd",
	"ab\u1100\u1100\u1100",
	"\u0288\u0119\u0835\u0E34\u021B",
	"брэд-ЛГТМ, ☺☻☹ and 😀😃😄😁 mixed with ascii text that runs for a while",
	"\U0010FFFF\U00010000\uFFFF\u0800\u07FF\u0080\u007F",
	"日本語のテキストが六十四バイトを超える長さで続きます。日本語のテキストが続きます。",
}

func terminated[T unit.Unit](s []T) []T {
	return append(s[:len(s):len(s)], 0)
}

func toUTF16LE(t testing.TB, s string) []unit.Char16LE {
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return unit.Load16[unit.Char16LE](b)
}

func toUTF16BE(t testing.TB, s string) []unit.Char16BE {
	b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return unit.Load16[unit.Char16BE](b)
}

func utf32Bytes(t testing.TB, s string, order utf32.Endianness) []byte {
	b, err := utf32.UTF32(order, utf32.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func toUTF32LE(t testing.TB, s string) []unit.Char32LE {
	return unit.Load32[unit.Char32LE](utf32Bytes(t, s, utf32.LittleEndian))
}

func toUTF32BE(t testing.TB, s string) []unit.Char32BE {
	return unit.Load32[unit.Char32BE](utf32Bytes(t, s, utf32.BigEndian))
}
