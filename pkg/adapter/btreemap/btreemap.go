// Package btreemap implements a key-sorted mapping on top of github.com/tidwall/btree.
package btreemap

import (
	"iter"

	"github.com/tidwall/btree"

	"go.llib.dev/views/pkg/datastruct"
)

// Ordered lists the key types the tree can sort.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Map keeps its entries ordered by key.
// The zero value is an empty map ready to use.
type Map[K Ordered, V any] struct {
	tree btree.Map[K, V]
}

var (
	_ datastruct.MapReader[string, int]        = (*Map[string, int])(nil)
	_ datastruct.ReverseIterable2[string, int] = (*Map[string, int])(nil)
)

func (m *Map[K, V]) Set(key K, val V) {
	m.tree.Set(key, val)
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.tree.Delete(key)
	return ok
}

func (m *Map[K, V]) Lookup(key K) (V, bool) {
	return m.tree.Get(key)
}

func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Iter iterates the entries in ascending key order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Scan(yield)
	}
}

// Backward iterates the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Reverse(yield)
	}
}
