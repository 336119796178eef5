package uni

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/transform"

	"github.com/mhr3/unicount/unit"
)

type utf32Decoder struct {
	transform.NopResetter
	order binary.ByteOrder
}

// NewUTF32Transformer returns a transformer from UTF-32 bytes in enc's byte
// order to UTF-8. enc must be unit.UTF32LE or unit.UTF32BE. Invalid code
// points fail with ErrInvalidInput, as does a partial unit at the end of
// the input.
func NewUTF32Transformer(enc unit.Encoding) transform.Transformer {
	switch enc {
	case unit.UTF32LE:
		return utf32Decoder{order: binary.LittleEndian}
	case unit.UTF32BE:
		return utf32Decoder{order: binary.BigEndian}
	}
	panic(fmt.Sprintf("uni: NewUTF32Transformer: %s is not a UTF-32 encoding", enc))
}

func (d utf32Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for len(src)-nSrc >= 4 {
		n, res := encodeRune8(dst[nDst:], d.order.Uint32(src[nSrc:]))
		switch res {
		case NotEnoughSpace:
			return nDst, nSrc, transform.ErrShortDst
		case InvalidInput:
			return nDst, nSrc, ErrInvalidInput
		}
		nDst += n
		nSrc += 4
	}
	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, ErrInvalidInput
	}
	return nDst, nSrc, nil
}
