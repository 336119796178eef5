package unit

// Unit is the set of all code-unit types.
type Unit interface {
	ASCIIChar | Char8 | Char16LE | Char16BE | Char32LE | Char32BE
	Encoding() Encoding
	SequenceLength() int
}

// Fixed is the set of code-unit types where one unit is one code point.
type Fixed interface {
	ASCIIChar | Char32LE | Char32BE
}

// Variable is the set of code-unit types where a code point may take more
// than one unit.
type Variable interface {
	Char8 | Char16LE | Char16BE
}

// Wide16 is the set of UTF-16 unit types.
type Wide16 interface {
	Char16LE | Char16BE
	AsHost() uint16
	IsLeadSurrogate() bool
	IsTrailSurrogate() bool
}

// Wide32 is the set of UTF-32 unit types.
type Wide32 interface {
	Char32LE | Char32BE
	AsHost() uint32
	IsValid() bool
}

// EncodingOf returns the encoding of the unit type T.
func EncodingOf[T Unit]() Encoding {
	var zero T
	return zero.Encoding()
}
