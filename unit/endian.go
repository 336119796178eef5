package unit

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// IsBigEndian reports whether the host stores integers big-endian.
const IsBigEndian = cpu.IsBigEndian

// Swap16 reverses the bytes of v.
func Swap16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// Swap32 reverses the bytes of v.
func Swap32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// HostToLittle16 converts a host-order value to its little-endian storage form.
func HostToLittle16(v uint16) uint16 {
	if IsBigEndian {
		return Swap16(v)
	}
	return v
}

// HostToBig16 converts a host-order value to its big-endian storage form.
func HostToBig16(v uint16) uint16 {
	if IsBigEndian {
		return v
	}
	return Swap16(v)
}

// LittleToHost16 reads a little-endian storage value as a host integer.
func LittleToHost16(v uint16) uint16 { return HostToLittle16(v) }

// BigToHost16 reads a big-endian storage value as a host integer.
func BigToHost16(v uint16) uint16 { return HostToBig16(v) }

// HostToLittle32 converts a host-order value to its little-endian storage form.
func HostToLittle32(v uint32) uint32 {
	if IsBigEndian {
		return Swap32(v)
	}
	return v
}

// HostToBig32 converts a host-order value to its big-endian storage form.
func HostToBig32(v uint32) uint32 {
	if IsBigEndian {
		return v
	}
	return Swap32(v)
}

// LittleToHost32 reads a little-endian storage value as a host integer.
func LittleToHost32(v uint32) uint32 { return HostToLittle32(v) }

// BigToHost32 reads a big-endian storage value as a host integer.
func BigToHost32(v uint32) uint32 { return HostToBig32(v) }
