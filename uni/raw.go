package uni

import (
	"slices"
	"unsafe"

	"github.com/mhr3/unicount/internal/assert"
	"github.com/mhr3/unicount/unit"
)

// cast reinterprets s as a slice of U. Both element types must have the
// same size.
func cast[U, T any](s []T) []U {
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

func assertTerminated[T unit.Unit](s []T) {
	if assert.Enabled {
		assert.True(slices.Contains(s, T(0)), "missing NUL terminator")
	}
}
