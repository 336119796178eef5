package unit

// Char16LE is a little-endian UTF-16 storage unit.
type Char16LE uint16

// Char16BE is a big-endian UTF-16 storage unit.
type Char16BE uint16

// NewChar16LE stores the host-order value v as a little-endian unit.
func NewChar16LE(v uint16) Char16LE { return Char16LE(HostToLittle16(v)) }

// NewChar16BE stores the host-order value v as a big-endian unit.
func NewChar16BE(v uint16) Char16BE { return Char16BE(HostToBig16(v)) }

func (Char16LE) Encoding() Encoding { return UTF16LE }
func (Char16BE) Encoding() Encoding { return UTF16BE }

// AsHost returns the unit as a host-order integer.
func (c Char16LE) AsHost() uint16 { return LittleToHost16(uint16(c)) }

// AsHost returns the unit as a host-order integer.
func (c Char16BE) AsHost() uint16 { return BigToHost16(uint16(c)) }

// AsLittle is a no-op.
func (c Char16LE) AsLittle() Char16LE { return c }

// AsBig byte-swaps c into a big-endian unit.
func (c Char16LE) AsBig() Char16BE { return Char16BE(Swap16(uint16(c))) }

// AsLittle byte-swaps c into a little-endian unit.
func (c Char16BE) AsLittle() Char16LE { return Char16LE(Swap16(uint16(c))) }

// AsBig is a no-op.
func (c Char16BE) AsBig() Char16BE { return c }

// InEndian returns the raw storage representation.
func (c Char16LE) InEndian() uint16 { return uint16(c) }

// InEndian returns the raw storage representation.
func (c Char16BE) InEndian() uint16 { return uint16(c) }

func (c Char16LE) IsLeadSurrogate() bool  { return IsLeadSurrogate(c.AsHost()) }
func (c Char16LE) IsTrailSurrogate() bool { return IsTrailSurrogate(c.AsHost()) }
func (c Char16BE) IsLeadSurrogate() bool  { return IsLeadSurrogate(c.AsHost()) }
func (c Char16BE) IsTrailSurrogate() bool { return IsTrailSurrogate(c.AsHost()) }

// SequenceLength returns 2 for a lead surrogate, 1 otherwise.
func (c Char16LE) SequenceLength() int { return SequenceLength16(c.AsHost()) }

// SequenceLength returns 2 for a lead surrogate, 1 otherwise.
func (c Char16BE) SequenceLength() int { return SequenceLength16(c.AsHost()) }
