//go:build arm64 && !noasm

package cpufeat

import (
	"github.com/segmentio/asm/cpu"
	"github.com/segmentio/asm/cpu/arm64"
)

func probe() Set {
	var s Set
	if cpu.ARM64.Has(arm64.ASIMD) {
		s = s.With(NEON)
	}
	return s
}
