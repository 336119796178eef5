// Package cpufeat detects the instruction-set extensions the scan kernels
// care about. Detection runs once per process; the result never changes.
package cpufeat

import (
	"math/bits"
	"os"
	"strings"
	"sync"
)

// Feature is a single instruction-set extension.
type Feature uint32

const (
	// Default is the "no extension required" feature. Every detected Set
	// contains it, so a dispatch table ending in Default always resolves.
	Default Feature = 1 << iota
	SSE2
	SSE42
	AVX2
	AVX512F
	AVX512BW
	NEON
)

var featureNames = [...]string{
	"default",
	"sse2",
	"sse4.2",
	"avx2",
	"avx512f",
	"avx512bw",
	"neon",
}

func (f Feature) String() string {
	if f == 0 || f&(f-1) != 0 {
		return Set(f).String()
	}
	i := bits.TrailingZeros32(uint32(f))
	if i < len(featureNames) {
		return featureNames[i]
	}
	return "unknown"
}

// Set is a bitmask of Features.
type Set uint32

// Has reports whether every bit of f is present in s.
func (s Set) Has(f Feature) bool {
	return Set(f)&s == Set(f)
}

// With returns s extended by f.
func (s Set) With(f Feature) Set {
	return s | Set(f)
}

// String lists the features from the most to the least specific one,
// e.g. "avx2|sse2|default".
func (s Set) String() string {
	if s == 0 {
		return "none"
	}
	var b strings.Builder
	for i := len(featureNames) - 1; i >= 0; i-- {
		if s&(1<<i) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(featureNames[i])
	}
	return b.String()
}

// EnvNoSIMD names the environment variable that restricts detection to
// Default. It is read once, together with the CPU probe.
const EnvNoSIMD = "UNICOUNT_NOSIMD"

var detect = sync.OnceValue(func() Set {
	if noSIMD(os.Getenv(EnvNoSIMD)) {
		return Set(Default)
	}
	return probe().With(Default)
})

// Detect returns the features supported by the host CPU. The probe runs on
// the first call only.
func Detect() Set {
	return detect()
}

func noSIMD(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
