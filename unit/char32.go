package unit

// Char32LE is a little-endian UTF-32 storage unit.
type Char32LE uint32

// Char32BE is a big-endian UTF-32 storage unit.
type Char32BE uint32

// NewChar32LE stores the code point cp as a little-endian unit.
func NewChar32LE(cp rune) Char32LE { return Char32LE(HostToLittle32(uint32(cp))) }

// NewChar32BE stores the code point cp as a big-endian unit.
func NewChar32BE(cp rune) Char32BE { return Char32BE(HostToBig32(uint32(cp))) }

func (Char32LE) Encoding() Encoding { return UTF32LE }
func (Char32BE) Encoding() Encoding { return UTF32BE }

// AsHost returns the unit as a host-order integer.
func (c Char32LE) AsHost() uint32 { return LittleToHost32(uint32(c)) }

// AsHost returns the unit as a host-order integer.
func (c Char32BE) AsHost() uint32 { return BigToHost32(uint32(c)) }

// Rune returns the unit as a code point. Values above MaxCodePoint are
// returned unchanged; check IsValid first.
func (c Char32LE) Rune() rune { return rune(c.AsHost()) }

// Rune returns the unit as a code point. Values above MaxCodePoint are
// returned unchanged; check IsValid first.
func (c Char32BE) Rune() rune { return rune(c.AsHost()) }

func (c Char32LE) AsLittle() Char32LE { return c }
func (c Char32LE) AsBig() Char32BE    { return Char32BE(Swap32(uint32(c))) }
func (c Char32BE) AsLittle() Char32LE { return Char32LE(Swap32(uint32(c))) }
func (c Char32BE) AsBig() Char32BE    { return c }

// InEndian returns the raw storage representation.
func (c Char32LE) InEndian() uint32 { return uint32(c) }

// InEndian returns the raw storage representation.
func (c Char32BE) InEndian() uint32 { return uint32(c) }

// IsValid reports whether the unit holds a code point <= MaxCodePoint.
func (c Char32LE) IsValid() bool { return c.AsHost() <= MaxCodePoint }

// IsValid reports whether the unit holds a code point <= MaxCodePoint.
func (c Char32BE) IsValid() bool { return c.AsHost() <= MaxCodePoint }

func (Char32LE) SequenceLength() int { return 1 }
func (Char32BE) SequenceLength() int { return 1 }
