// Package ordmap implements an insertion-ordered mapping on top of github.com/elliotchance/orderedmap.
//
// The order is kept by a linked list, so the mapping can be iterated in both directions,
// which makes it a reversible underlying collection for view.Mapping.
package ordmap

import (
	"iter"

	"github.com/elliotchance/orderedmap"

	"go.llib.dev/views/pkg/datastruct"
)

// Map is an insertion-ordered mapping.
// Setting an existing key keeps its original position.
type Map[K comparable, V any] struct {
	om *orderedmap.OrderedMap
}

var (
	_ datastruct.MapReader[string, int]        = (*Map[string, int])(nil)
	_ datastruct.ReverseIterable2[string, int] = (*Map[string, int])(nil)
)

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{om: orderedmap.NewOrderedMap()}
}

func (m *Map[K, V]) init() {
	if m.om == nil {
		m.om = orderedmap.NewOrderedMap()
	}
}

func (m *Map[K, V]) Set(key K, val V) {
	m.init()
	m.om.Set(key, val)
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if m.om == nil {
		return false
	}
	if _, ok := m.om.Get(key); !ok {
		return false
	}
	m.om.Delete(key)
	return true
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	if m.om == nil {
		var zero V
		return zero, false
	}
	val, ok := m.om.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return cast[V](val), true
}

func (m *Map[K, V]) Len() int {
	if m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Iter iterates the entries in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.om == nil {
			return
		}
		for e := m.om.Front(); e != nil; e = e.Next() {
			if !yield(cast[K](e.Key), cast[V](e.Value)) {
				return
			}
		}
	}
}

// Backward iterates the entries from the most recently inserted one.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.om == nil {
			return
		}
		for e := m.om.Back(); e != nil; e = e.Prev() {
			if !yield(cast[K](e.Key), cast[V](e.Value)) {
				return
			}
		}
	}
}

// cast converts a stored value back to its static type.
// A nil interface value becomes the zero value.
func cast[T any](v any) T {
	out, _ := v.(T)
	return out
}
