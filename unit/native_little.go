//go:build !(mips || mips64 || ppc64 || s390x)

package unit

const (
	// UTF16 is UTF-16 in host byte order.
	UTF16 = UTF16LE
	// UTF32 is UTF-32 in host byte order.
	UTF32 = UTF32LE
)

type (
	// Char16 is a 16-bit unit in host byte order.
	Char16 = Char16LE
	// Char16Other is a 16-bit unit in the opposite of host byte order.
	Char16Other = Char16BE
	// Char32 is a 32-bit unit in host byte order.
	Char32 = Char32LE
	// Char32Other is a 32-bit unit in the opposite of host byte order.
	Char32Other = Char32BE
)
