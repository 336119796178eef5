//go:build (!amd64 && !arm64) || noasm

package scan

import (
	"github.com/mhr3/unicount/internal/cpufeat"
	"github.com/mhr3/unicount/internal/dispatch"
)

var table = []dispatch.Candidate[Kernels]{
	{Name: Scalar.Name, Feature: cpufeat.Default, Impl: Scalar},
}
