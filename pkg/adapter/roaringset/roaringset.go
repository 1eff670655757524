// Package roaringset implements a compressed set of small unsigned integers
// on top of github.com/RoaringBitmap/roaring.
package roaringset

import (
	"iter"

	"github.com/RoaringBitmap/roaring"

	"go.llib.dev/views/pkg/datastruct"
)

type BitConstraint interface {
	~uint8 | ~uint16 | ~uint32
}

// Set is a bitmap backed set.
// The zero value is an empty set ready to use.
type Set[T BitConstraint] struct {
	bm roaring.Bitmap
}

var (
	_ datastruct.SetReader[uint32]       = (*Set[uint32])(nil)
	_ datastruct.ReverseIterable[uint32] = (*Set[uint32])(nil)
)

func Of[T BitConstraint](vs ...T) *Set[T] {
	var s Set[T]
	for _, v := range vs {
		s.Add(v)
	}
	return &s
}

// Add reports whether v was not yet present.
func (s *Set[T]) Add(v T) bool {
	return s.bm.CheckedAdd(uint32(v))
}

func (s *Set[T]) Delete(v T) bool {
	return s.bm.CheckedRemove(uint32(v))
}

func (s *Set[T]) Contains(v T) bool {
	return s.bm.Contains(uint32(v))
}

func (s *Set[T]) Len() int {
	return int(s.bm.GetCardinality())
}

// Iter iterates the elements in ascending order.
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.bm.Iterate(func(x uint32) bool {
			return yield(T(x))
		})
	}
}

// Backward iterates the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.bm.ReverseIterator()
		for it.HasNext() {
			if !yield(T(it.Next())) {
				return
			}
		}
	}
}
