// Package dispatch picks one implementation out of an ordered table of
// feature-gated candidates and caches the choice for the process lifetime.
//
// Tables list the most specific (fastest) candidate first and must end with
// a candidate requiring cpufeat.Default:
//
//	var len8 = dispatch.Lazy(
//		dispatch.Candidate[func([]byte) int]{Name: "avx2", Feature: cpufeat.AVX2, Impl: len8AVX2},
//		dispatch.Candidate[func([]byte) int]{Name: "scalar", Feature: cpufeat.Default, Impl: len8Scalar},
//	)
//
//	n := len8()(buf)
package dispatch

import (
	"fmt"
	"sync"

	"github.com/mhr3/unicount/internal/cpufeat"
)

// Candidate is one entry of a dispatch table. Every candidate of a table
// shares the same implementation type F.
type Candidate[F any] struct {
	Name    string
	Feature cpufeat.Feature
	Impl    F
}

// Choose returns the first candidate whose feature is contained in set.
// A single-entry table is returned as is, whatever the set holds.
func Choose[F any](set cpufeat.Set, table ...Candidate[F]) Candidate[F] {
	validate(table)
	if len(table) == 1 {
		return table[0]
	}
	for _, c := range table {
		if set.Has(c.Feature) {
			return c
		}
	}
	// set lacked Default; the table still guarantees a fallback.
	return table[len(table)-1]
}

// Lazy returns a getter for the candidate chosen against cpufeat.Detect.
// The choice is computed on the first call and shared by all goroutines.
// A single-entry table never triggers feature detection.
func Lazy[F any](table ...Candidate[F]) func() Candidate[F] {
	validate(table)
	if len(table) == 1 {
		only := table[0]
		return func() Candidate[F] { return only }
	}
	table = append([]Candidate[F](nil), table...)
	return sync.OnceValue(func() Candidate[F] {
		return Choose(cpufeat.Detect(), table...)
	})
}

func validate[F any](table []Candidate[F]) {
	switch {
	case len(table) == 0:
		panic("dispatch: empty table")
	case len(table) > 1 && table[len(table)-1].Feature != cpufeat.Default:
		panic(fmt.Sprintf("dispatch: last candidate %q must require %s, got %s",
			table[len(table)-1].Name, cpufeat.Default, table[len(table)-1].Feature))
	}
}
