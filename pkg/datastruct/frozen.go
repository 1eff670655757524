package datastruct

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash"
)

// Tuple is an immutable sequence.
// Since its content can not change, it is a Hasher.
type Tuple[T any] struct {
	vs []T
}

var (
	_ SequenceReader[int]  = Tuple[int]{}
	_ Iterable[int]        = Tuple[int]{}
	_ ReverseIterable[int] = Tuple[int]{}
	_ Hasher               = Tuple[int]{}
)

// TupleOf makes a Tuple from a copy of the given values.
func TupleOf[T any](vs ...T) Tuple[T] {
	return Tuple[T]{vs: slices.Clone(vs)}
}

func (t Tuple[T]) Len() int { return len(t.vs) }

func (t Tuple[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(t.vs) <= index {
		var zero T
		return zero, false
	}
	return t.vs[index], true
}

func (t Tuple[T]) Iter() iter.Seq[T] { return slices.Values(t.vs) }

func (t Tuple[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(t.vs) {
			if !yield(v) {
				return
			}
		}
	}
}

func (t Tuple[T]) ToSlice() []T { return slices.Clone(t.vs) }

func (t Tuple[T]) Hash() (uint64, error) {
	h := hasher{Hash64: xxhash.New()}
	h.tag(tagSeq)
	h.u64(uint64(len(t.vs)))
	for _, v := range t.vs {
		sum, err := HashOf(v)
		if err != nil {
			return 0, err
		}
		h.u64(sum)
	}
	return h.Sum64(), nil
}

// FrozenSet is an immutable set of unique elements.
type FrozenSet[T comparable] struct {
	vs map[T]struct{}
}

var (
	_ SetReader[int] = FrozenSet[int]{}
	_ Hasher         = FrozenSet[int]{}
)

func FreezeSet[T comparable](vs ...T) FrozenSet[T] {
	m := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return FrozenSet[T]{vs: m}
}

func (s FrozenSet[T]) Contains(v T) bool {
	_, ok := s.vs[v]
	return ok
}

func (s FrozenSet[T]) Len() int { return len(s.vs) }

func (s FrozenSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}

func (s FrozenSet[T]) ToSlice() []T {
	out := make([]T, 0, len(s.vs))
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

func (s FrozenSet[T]) Hash() (uint64, error) {
	sums := make([]uint64, 0, len(s.vs))
	for v := range s.vs {
		sum, err := HashOf(v)
		if err != nil {
			return 0, err
		}
		sums = append(sums, sum)
	}
	return hashUnordered(sums), nil
}

// FrozenMap is an immutable key-value collection.
type FrozenMap[K comparable, V any] struct {
	m map[K]V
}

var (
	_ MapReader[string, int] = FrozenMap[string, int]{}
	_ Hasher                 = FrozenMap[string, int]{}
)

// FreezeMap makes a FrozenMap from a copy of m.
func FreezeMap[K comparable, V any](m map[K]V) FrozenMap[K, V] {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return FrozenMap[K, V]{m: out}
}

func (m FrozenMap[K, V]) Lookup(key K) (V, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m FrozenMap[K, V]) Len() int { return len(m.m) }

func (m FrozenMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.m {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (m FrozenMap[K, V]) Hash() (uint64, error) {
	sums := make([]uint64, 0, len(m.m))
	for k, v := range m.m {
		sum, err := HashOf(struct {
			K K
			V V
		}{K: k, V: v})
		if err != nil {
			return 0, err
		}
		sums = append(sums, sum)
	}
	return hashUnordered(sums), nil
}
