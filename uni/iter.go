package uni

import (
	"iter"

	"github.com/mhr3/unicount/internal/assert"
	"github.com/mhr3/unicount/unit"
)

// Iterator walks the code points of a unit slice in both directions. The
// zero value is an exhausted iterator over an empty slice.
type Iterator[T unit.Unit] struct {
	s   []T
	pos int
}

// NewIterator returns an iterator positioned on the first code point of s.
func NewIterator[T unit.Unit](s []T) Iterator[T] {
	return Iterator[T]{s: s}
}

// IteratorAt returns an iterator positioned at unit pos, which must start a
// code point.
func IteratorAt[T unit.Unit](s []T, pos int) Iterator[T] {
	assert.True(pos >= 0 && pos <= len(s), "iterator position out of range")
	assert.True(pos == len(s) || !isTrailAt(s, pos), "iterator position inside a code point")
	return Iterator[T]{s: s, pos: pos}
}

// Next moves to the next code point. It does nothing once Done.
func (it *Iterator[T]) Next() {
	if it.pos < len(it.s) {
		it.pos += seqLenAt(it.s, it.pos)
	}
}

// Prev moves to the previous code point. It does nothing at the start.
func (it *Iterator[T]) Prev() {
	assert.True(it.pos > 0, "Prev at start of string")
	it.pos = retreat(it.s, it.pos, 1)
}

// Value decodes the current code point. It must not be called once Done.
func (it *Iterator[T]) Value() rune {
	r, n := decodeAt(it.s, it.pos)
	assert.True(n != 0, "invalid sequence")
	return r
}

// Pos returns the unit offset of the current code point.
func (it *Iterator[T]) Pos() int { return it.pos }

// Done reports whether the iterator moved past the last code point.
func (it *Iterator[T]) Done() bool { return it.pos >= len(it.s) }

// Len returns the number of units from the current position to the end.
func (it *Iterator[T]) Len() int { return len(it.s) - it.pos }

// CodePoints returns a sequence of unit offsets and code points of s.
func CodePoints[T unit.Unit](s []T) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for it := NewIterator(s); !it.Done(); it.Next() {
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}
