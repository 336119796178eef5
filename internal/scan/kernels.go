package scan

import (
	"github.com/mhr3/unicount/internal/dispatch"
)

// Kernels is one backend's set of scanning routines. All of them require a
// zero unit in the input and never read outside of it.
type Kernels struct {
	Name  string
	Width int // batch width in bytes, 1 for the scalar backend

	// Len8 and Len16 return the code point count (non-trail units) and the
	// unit count before the first zero unit. swap marks 16-bit units stored
	// in the opposite of host byte order.
	Len8  func(s []byte) (points, units int)
	Len16 func(s []uint16, swap bool) (points, units int)

	UnitLen8  func(s []byte) int
	UnitLen16 func(s []uint16) int
	UnitLen32 func(s []uint32) int
}

var Scalar = Kernels{
	Name:      "scalar",
	Width:     1,
	Len8:      len8Scalar,
	Len16:     len16Scalar,
	UnitLen8:  unitLen8Scalar,
	UnitLen16: unitLen16Scalar,
	UnitLen32: unitLen32Scalar,
}

var (
	SSE2     = batchKernels("sse2", SSE2Width)
	AVX2     = batchKernels("avx2", AVX2Width)
	AVX512BW = batchKernels("avx512bw", AVX512BWWidth)
	NEON     = batchKernels("neon", NEONWidth)
)

func batchKernels(name string, width int) Kernels {
	return Kernels{
		Name:      name,
		Width:     width,
		Len8:      func(s []byte) (int, int) { return len8Batch(s, width) },
		Len16:     func(s []uint16, swap bool) (int, int) { return len16Batch(s, swap, width) },
		UnitLen8:  func(s []byte) int { return unitLen8Batch(s, width) },
		UnitLen16: func(s []uint16) int { return unitLen16Batch(s, width) },
		UnitLen32: func(s []uint32) int { return unitLen32Batch(s, width) },
	}
}

// Backends returns every kernel set, whatever the host supports. The
// kernels are portable Go, so tests run all of them on any machine.
func Backends() []Kernels {
	return []Kernels{Scalar, SSE2, AVX2, AVX512BW, NEON}
}

var best = dispatch.Lazy(table...)

// Best returns the kernel set chosen for the running CPU.
func Best() Kernels {
	return best().Impl
}
