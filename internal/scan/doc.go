// Package scan holds the length-scanning kernels behind the uni entry points.
//
// Every kernel family has a scalar reference implementation and batch
// implementations sized after the vector registers of SSE2/NEON (16 bytes),
// AVX2 (32 bytes) and AVX-512BW (64 bytes). A batch is handled as uint64
// lanes (SWAR); the per-lane zero and trail tests are exact, so all backends
// return identical counts for identical input.
//
// The *Len kernels require a zero unit somewhere in the slice and stop at
// the first one. A slice without one runs into Go's bounds check.
package scan
