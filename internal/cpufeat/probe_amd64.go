//go:build amd64 && !noasm

package cpufeat

import (
	"github.com/segmentio/asm/cpu"
	"github.com/segmentio/asm/cpu/x86"
)

var x86Features = []struct {
	has  x86.Feature
	flag Feature
}{
	{x86.SSE2, SSE2},
	{x86.SSE42, SSE42},
	{x86.AVX2, AVX2},
	{x86.AVX512F, AVX512F},
	{x86.AVX512BW, AVX512BW},
}

func probe() Set {
	var s Set
	for _, f := range x86Features {
		if cpu.X86.Has(f.has) {
			s = s.With(f.flag)
		}
	}
	return s
}
