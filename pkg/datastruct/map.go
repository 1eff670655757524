package datastruct

import "iter"

// Map is a plain map[K]V that implements MapReader.
type Map[K comparable, V any] map[K]V

var _ MapReader[string, int] = Map[string, int]{}

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, val V) { m[key] = val }

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func (m Map[K, V]) ToMap() map[K]V {
	return m
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// CloneMap makes a shallow copy of any MapReader into a new Map.
func CloneMap[K comparable, V any](m MapReader[K, V]) Map[K, V] {
	out := make(Map[K, V], m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}
