package datastruct

import (
	"iter"
	"slices"
)

// List is a plain slice based sequence.
// Its methods have pointer receivers, so a *List observes appends made through any other path.
type List[T any] []T

var _ SequenceReader[int] = (*List[int])(nil)

// ListOf returns a List that shares the caller's slice variable.
func ListOf[T any](ptr *[]T) *List[T] {
	return (*List[T])(ptr)
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(*l)
}

func (l *List[T]) Lookup(index int) (T, bool) {
	if index < 0 || l.Len() <= index {
		var zero T
		return zero, false
	}
	return (*l)[index], true
}

func (l *List[T]) Set(index int, v T) bool {
	if index < 0 || l.Len() <= index {
		return false
	}
	(*l)[index] = v
	return true
}

func (l *List[T]) Append(vs ...T) {
	*l = append(*l, vs...)
}

func (l *List[T]) Insert(index int, vs ...T) bool {
	if index < 0 || l.Len() < index {
		return false
	}
	*l = slices.Insert(*l, index, vs...)
	return true
}

func (l *List[T]) Delete(index int) bool {
	if index < 0 || l.Len() <= index {
		return false
	}
	*l = slices.Delete(*l, index, index+1)
	return true
}

// Iter walks the list by index, so the length is re-evaluated on each step.
func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield((*l)[i]) {
				return
			}
		}
	}
}

func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.Len() - 1; 0 <= i; i-- {
			if l.Len() <= i {
				continue
			}
			if !yield((*l)[i]) {
				return
			}
		}
	}
}

func (l *List[T]) ToSlice() []T {
	if l == nil {
		return nil
	}
	return slices.Clone(*l)
}
