// Package btreeset implements a sorted set on top of github.com/google/btree.
package btreeset

import (
	"iter"

	"github.com/google/btree"

	"go.llib.dev/views/pkg/datastruct"
)

const degree = 32

// Set keeps its elements sorted by the less function it was made with.
type Set[T comparable] struct {
	tree *btree.BTreeG[T]
}

var (
	_ datastruct.SetReader[int]       = (*Set[int])(nil)
	_ datastruct.ReverseIterable[int] = (*Set[int])(nil)
)

// New makes an empty set ordered by less.
// less must be a strict weak ordering consistent with ==.
func New[T comparable](less func(a, b T) bool, vs ...T) *Set[T] {
	s := &Set[T]{tree: btree.NewG(degree, btree.LessFunc[T](less))}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add reports whether v was not yet present.
func (s *Set[T]) Add(v T) bool {
	_, replaced := s.tree.ReplaceOrInsert(v)
	return !replaced
}

func (s *Set[T]) Delete(v T) bool {
	_, ok := s.tree.Delete(v)
	return ok
}

func (s *Set[T]) Contains(v T) bool {
	return s.tree.Has(v)
}

func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Iter iterates the elements in ascending order.
func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Ascend(btree.ItemIteratorG[T](yield))
	}
}

// Backward iterates the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Descend(btree.ItemIteratorG[T](yield))
	}
}

// Min returns the smallest element.
func (s *Set[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest element.
func (s *Set[T]) Max() (T, bool) {
	return s.tree.Max()
}
