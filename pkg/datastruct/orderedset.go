package datastruct

import (
	"iter"

	list "github.com/bahlo/generic-list-go"
)

// OrderedSet is a set that iterates its elements in insertion order.
type OrderedSet[T comparable] struct {
	order    list.List[T]
	elements map[T]*list.Element[T]
}

var (
	_ SetReader[int]       = (*OrderedSet[int])(nil)
	_ ReverseIterable[int] = (*OrderedSet[int])(nil)
)

func MakeOrderedSet[T comparable](vs ...T) *OrderedSet[T] {
	var set OrderedSet[T]
	set.Append(vs...)
	return &set
}

func (s *OrderedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *OrderedSet[T]) add(v T) {
	if s.elements == nil {
		s.elements = make(map[T]*list.Element[T])
	}
	if _, ok := s.elements[v]; ok {
		return
	}
	s.elements[v] = s.order.PushBack(v)
}

func (s *OrderedSet[T]) Delete(v T) bool {
	e, ok := s.elements[v]
	if !ok {
		return false
	}
	s.order.Remove(e)
	delete(s.elements, v)
	return true
}

func (s *OrderedSet[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.elements[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}

func (s *OrderedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for e := s.order.Front(); e != nil; e = e.Next() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for e := s.order.Back(); e != nil; e = e.Prev() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (s *OrderedSet[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}
