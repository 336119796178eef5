package uni

import (
	"errors"
	"fmt"

	"github.com/mhr3/unicount/ascii"
	"github.com/mhr3/unicount/unit"
)

// ConvError is the outcome of a conversion.
type ConvError uint8

const (
	// NoError means the whole input was converted.
	NoError ConvError = iota
	// NotEnoughSpace means the output filled up before the input ended.
	NotEnoughSpace
	// InvalidInput means the input holds a unit that cannot be converted.
	InvalidInput
)

var (
	ErrNotEnoughSpace = errors.New("uni: not enough space in output")
	ErrInvalidInput   = errors.New("uni: invalid input")
)

func (e ConvError) String() string {
	switch e {
	case NoError:
		return "NoError"
	case NotEnoughSpace:
		return "NotEnoughSpace"
	case InvalidInput:
		return "InvalidInput"
	}
	return fmt.Sprintf("ConvError(%d)", uint8(e))
}

// Err returns nil for NoError and the matching sentinel error otherwise.
func (e ConvError) Err() error {
	switch e {
	case NoError:
		return nil
	case NotEnoughSpace:
		return ErrNotEnoughSpace
	case InvalidInput:
		return ErrInvalidInput
	}
	return fmt.Errorf("uni: unknown conversion result %d", uint8(e))
}

// ToUTF8 converts UTF-32 units from src into UTF-8 bytes in dst. It
// returns the number of bytes written, the number of units consumed and
// the outcome. Conversion stops at the first unit above unit.MaxCodePoint
// (InvalidInput) or at the first code point that does not fit in the rest
// of dst (NotEnoughSpace); src[consumed] is that unit. Sequences are never
// written partially.
func ToUTF8[T unit.Wide32](dst []byte, src []T) (written, consumed int, res ConvError) {
	for consumed < len(src) {
		n, r := encodeRune8(dst[written:], src[consumed].AsHost())
		if r != NoError {
			return written, consumed, r
		}
		written += n
		consumed++
	}
	return written, consumed, NoError
}

// encodeRune8 writes the code point cp to dst.
func encodeRune8(dst []byte, cp uint32) (int, ConvError) {
	switch {
	case cp > unit.MaxCodePoint:
		return 0, InvalidInput
	case cp < 0x80:
		if len(dst) < 1 {
			return 0, NotEnoughSpace
		}
		dst[0] = byte(cp)
		return 1, NoError
	case cp < 0x800:
		if len(dst) < 2 {
			return 0, NotEnoughSpace
		}
		dst[0] = byte(cp>>6) | 0xC0
		dst[1] = byte(cp)&0x3F | 0x80
		return 2, NoError
	case cp < 0x10000:
		if len(dst) < 3 {
			return 0, NotEnoughSpace
		}
		dst[0] = byte(cp>>12) | 0xE0
		dst[1] = byte(cp>>6)&0x3F | 0x80
		dst[2] = byte(cp)&0x3F | 0x80
		return 3, NoError
	}
	if len(dst) < 4 {
		return 0, NotEnoughSpace
	}
	dst[0] = byte(cp>>18) | 0xF0
	dst[1] = byte(cp>>12)&0x3F | 0x80
	dst[2] = byte(cp>>6)&0x3F | 0x80
	dst[3] = byte(cp)&0x3F | 0x80
	return 4, NoError
}

// ASCIIToUTF8 copies ASCII units from src into dst. It stops at the first
// byte with the high bit set (InvalidInput) or when dst is full
// (NotEnoughSpace), whichever comes first.
func ASCIIToUTF8(dst []byte, src []unit.ASCIIChar) (written, consumed int, res ConvError) {
	in := cast[byte](src)
	n := min(len(in), len(dst))
	if bad := ascii.IndexMask(in[:n], 0x80); bad >= 0 {
		copy(dst, in[:bad])
		return bad, bad, InvalidInput
	}
	copy(dst, in[:n])
	if n < len(in) {
		return n, n, NotEnoughSpace
	}
	return n, n, NoError
}
