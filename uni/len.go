package uni

import (
	"github.com/mhr3/unicount/internal/scan"
	"github.com/mhr3/unicount/unit"
)

// LenInfo holds both lengths of a string.
type LenInfo struct {
	CodePoints int
	Units      int
}

// Backend returns the name of the scanning kernels picked for this CPU.
func Backend() string {
	return scan.Best().Name
}

// UnitLen returns the number of units before the first zero unit of s.
func UnitLen[T unit.Unit](s []T) int {
	assertTerminated(s)
	k := scan.Best()
	switch unit.EncodingOf[T]().UnitSize() {
	case 1:
		return k.UnitLen8(cast[byte](s))
	case 2:
		return k.UnitLen16(cast[uint16](s))
	default:
		return k.UnitLen32(cast[uint32](s))
	}
}

// Len returns the code point and unit counts before the first zero unit
// of s.
func Len[T unit.Unit](s []T) LenInfo {
	assertTerminated(s)
	k := scan.Best()
	switch enc := unit.EncodingOf[T](); enc {
	case unit.UTF8:
		points, units := k.Len8(cast[byte](s))
		return LenInfo{CodePoints: points, Units: units}
	case unit.UTF16LE, unit.UTF16BE:
		points, units := k.Len16(cast[uint16](s), enc.NeedsSwap())
		return LenInfo{CodePoints: points, Units: units}
	}
	n := UnitLen(s)
	return LenInfo{CodePoints: n, Units: n}
}

// StrLen returns the number of code points before the first zero unit of s.
func StrLen[T unit.Unit](s []T) int {
	return Len(s).CodePoints
}
