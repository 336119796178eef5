package unit

// ASCIIChar is a 7-bit character stored in a byte.
type ASCIIChar uint8

// Encoding returns ASCII.
func (ASCIIChar) Encoding() Encoding { return ASCII }

// IsValid reports whether c is in the 7-bit range.
func (c ASCIIChar) IsValid() bool { return c < 0x80 }

// SequenceLength is always 1.
func (ASCIIChar) SequenceLength() int { return 1 }

// Char8 is a UTF-8 storage unit.
type Char8 uint8

// Encoding returns UTF8.
func (Char8) Encoding() Encoding { return UTF8 }

// IsTrail reports whether c is a continuation byte.
func (c Char8) IsTrail() bool { return IsTrail(byte(c)) }

// IsValidLead reports whether c may start a sequence: ASCII or a lead byte
// up to 0b11110111.
func (c Char8) IsValidLead() bool {
	return !c.IsTrail() && c <= 0b11110111
}

// SequenceLength returns the sequence length announced by c, 1 for bytes
// that are not a valid lead.
func (c Char8) SequenceLength() int { return SequenceLength8(byte(c)) }
