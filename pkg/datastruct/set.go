package datastruct

import "iter"

// Set is a plain unordered collection of unique elements.
type Set[T comparable] struct {
	vs map[T]struct{}
}

var _ SetReader[int] = (*Set[int])(nil)

func MakeSet[T comparable](vs ...T) *Set[T] {
	var set Set[T]
	for _, v := range vs {
		set.Add(v)
	}
	return &set
}

// SetFromMap returns a Set which uses m as its storage.
// Changes made to m are visible through the Set and the other way around.
func SetFromMap[T comparable](m map[T]struct{}) *Set[T] {
	return &Set[T]{vs: m}
}

func (s *Set[T]) Add(vs ...T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	for _, v := range vs {
		s.vs[v] = struct{}{}
	}
}

func (s *Set[T]) Delete(v T) bool {
	if s == nil || s.vs == nil {
		return false
	}
	if _, ok := s.vs[v]; !ok {
		return false
	}
	delete(s.vs, v)
	return true
}

func (s *Set[T]) Contains(v T) bool {
	if s == nil || s.vs == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vs)
}

func (s *Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (s *Set[T]) ToSlice() []T {
	var out []T
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}
