//go:build amd64 && !noasm

package scan

import (
	"github.com/mhr3/unicount/internal/cpufeat"
	"github.com/mhr3/unicount/internal/dispatch"
)

// SSE2 is part of the amd64 baseline.
var table = []dispatch.Candidate[Kernels]{
	{Name: AVX512BW.Name, Feature: cpufeat.AVX512BW, Impl: AVX512BW},
	{Name: AVX2.Name, Feature: cpufeat.AVX2, Impl: AVX2},
	{Name: SSE2.Name, Feature: cpufeat.Default, Impl: SSE2},
}
