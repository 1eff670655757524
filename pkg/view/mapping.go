package view

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"go.llib.dev/views/pkg/compare"
	"go.llib.dev/views/pkg/datastruct"
)

// Mapping is a read-only, live view over a key-value collection.
// The zero value is a view over an empty mapping.
type Mapping[K comparable, V any] struct {
	m datastruct.MapReader[K, V]
}

var (
	_ datastruct.MapReader[string, int] = Mapping[string, int]{}
	_ datastruct.Hasher                 = Mapping[string, int]{}
	_ fmt.Stringer                      = Mapping[string, int]{}
)

// NewMapping wraps m without copying it.
// It fails with ErrTypeKind when m is nil.
func NewMapping[K comparable, V any](m datastruct.MapReader[K, V]) (Mapping[K, V], error) {
	if isNil(m) {
		return Mapping[K, V]{}, ErrTypeKind.F("%s requires a mapping, got %T", KindMapping, m)
	}
	return Mapping[K, V]{m: m}, nil
}

// MapOf wraps a Go map.
func MapOf[K comparable, V any](m map[K]V) Mapping[K, V] {
	return Mapping[K, V]{m: datastruct.Map[K, V](m)}
}

// AsMapping checks at runtime whether v can be viewed as a mapping of K to V.
// v may be a datastruct.MapReader[K, V] or a map[K]V.
func AsMapping[K comparable, V any](v any) (Mapping[K, V], error) {
	switch m := v.(type) {
	case datastruct.MapReader[K, V]:
		return NewMapping(m)
	case map[K]V:
		return MapOf(m), nil
	default:
		return Mapping[K, V]{}, ErrTypeKind.F("%s requires a mapping of %s to %s, got %T",
			KindMapping, reflect.TypeFor[K](), reflect.TypeFor[V](), v)
	}
}

func (v Mapping[K, V]) reader() datastruct.MapReader[K, V] {
	if v.m == nil {
		return datastruct.Map[K, V](nil)
	}
	return v.m
}

// Get returns the value stored under key, or ErrNotFound.
func (v Mapping[K, V]) Get(key K) (V, error) {
	val, ok := v.reader().Lookup(key)
	if !ok {
		return val, ErrNotFound.F("%s: key %v", KindMapping, key)
	}
	return val, nil
}

func (v Mapping[K, V]) Lookup(key K) (V, bool) {
	return v.reader().Lookup(key)
}

// GetOr returns the value stored under key, or def when the key is absent.
func (v Mapping[K, V]) GetOr(key K, def V) V {
	if val, ok := v.reader().Lookup(key); ok {
		return val
	}
	return def
}

func (v Mapping[K, V]) Contains(key K) bool {
	_, ok := v.reader().Lookup(key)
	return ok
}

func (v Mapping[K, V]) Len() int {
	return v.reader().Len()
}

// Iter iterates the entries in the underlying mapping's current order.
func (v Mapping[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range v.reader().Iter() {
			if !yield(key, val) {
				return
			}
		}
	}
}

func (v Mapping[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range v.reader().Iter() {
			if !yield(key) {
				return
			}
		}
	}
}

func (v Mapping[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, val := range v.reader().Iter() {
			if !yield(val) {
				return
			}
		}
	}
}

// Backward iterates the entries in reverse order.
// The underlying mapping must implement datastruct.ReverseIterable2, otherwise ErrTypeKind is returned.
func (v Mapping[K, V]) Backward() (iter.Seq2[K, V], error) {
	switch r := v.reader().(type) {
	case datastruct.ReverseIterable2[K, V]:
		return r.Backward(), nil
	case Mapping[K, V]:
		return r.Backward()
	default:
		return nil, ErrTypeKind.F("%s: %T is not reversible", KindMapping, r)
	}
}

// Equal reports whether oth has the same keys, each mapped to an equal value.
// Iteration order is not taken into account.
func (v Mapping[K, V]) Equal(oth datastruct.MapReader[K, V]) bool {
	if isNil(oth) {
		return false
	}
	return v.Len() == oth.Len() && isSubmap[K, V](v.reader(), oth)
}

// IsSubsetOf reports whether every entry of the view is present in oth with an equal value.
func (v Mapping[K, V]) IsSubsetOf(oth datastruct.MapReader[K, V]) bool {
	if isNil(oth) {
		return v.Len() == 0
	}
	return v.Len() <= oth.Len() && isSubmap[K, V](v.reader(), oth)
}

func (v Mapping[K, V]) IsProperSubsetOf(oth datastruct.MapReader[K, V]) bool {
	return v.IsSubsetOf(oth) && !isNil(oth) && v.Len() < oth.Len()
}

// IsSupersetOf reports whether every entry of oth is present in the view with an equal value.
func (v Mapping[K, V]) IsSupersetOf(oth datastruct.MapReader[K, V]) bool {
	if isNil(oth) {
		return true
	}
	return oth.Len() <= v.Len() && isSubmap[K, V](oth, v.reader())
}

func (v Mapping[K, V]) IsProperSupersetOf(oth datastruct.MapReader[K, V]) bool {
	return v.IsSupersetOf(oth) && (isNil(oth) && 0 < v.Len() || !isNil(oth) && oth.Len() < v.Len())
}

func isSubmap[K comparable, V any](sub, super datastruct.MapReader[K, V]) bool {
	for key, val := range sub.Iter() {
		oth, ok := super.Lookup(key)
		if !ok || !compare.Equal(val, oth) {
			return false
		}
	}
	return true
}

// Union returns a new plain map with the entries of the view and oth.
// On key collision the value from oth wins.
// Neither operand is changed.
func (v Mapping[K, V]) Union(oth datastruct.MapReader[K, V]) datastruct.Map[K, V] {
	out := datastruct.CloneMap(v.reader())
	if isNil(oth) {
		return out
	}
	for key, val := range oth.Iter() {
		out[key] = val
	}
	return out
}

// Copy returns a view over a shallow copy of the underlying mapping.
// An immutable underlying mapping is shared instead of copied.
func (v Mapping[K, V]) Copy() Mapping[K, V] {
	if _, ok := v.reader().(datastruct.Hasher); ok {
		return v
	}
	return Mapping[K, V]{m: datastruct.CloneMap(v.reader())}
}

// ToMap returns the current content as a new Go map.
func (v Mapping[K, V]) ToMap() map[K]V {
	return datastruct.CloneMap(v.reader())
}

func (v Mapping[K, V]) String() string {
	var b strings.Builder
	b.WriteString(KindMapping)
	b.WriteString("{")
	var i int
	for key, val := range v.Iter() {
		if 0 < i {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %v", key, val)
		i++
	}
	b.WriteString("}")
	return b.String()
}

// Hash delegates to the underlying mapping.
// A mapping that is not a datastruct.Hasher is mutable, so hashing it fails with ErrTypeKind.
func (v Mapping[K, V]) Hash() (uint64, error) {
	return hashOf(KindMapping, v.reader())
}

// Underlying returns the wrapped mapping itself.
// Changes made through the returned value are visible through the view.
func (v Mapping[K, V]) Underlying() datastruct.MapReader[K, V] {
	return v.m
}

func (v Mapping[K, V]) Set(key K, val V) error {
	return unsupported(KindMapping, "Set")
}

func (v Mapping[K, V]) Delete(key K) error {
	return unsupported(KindMapping, "Delete")
}

func (v Mapping[K, V]) Clear() error {
	return unsupported(KindMapping, "Clear")
}

func (v Mapping[K, V]) Update(oth datastruct.MapReader[K, V]) error {
	return unsupported(KindMapping, "Update")
}

func (v Mapping[K, V]) Pop(key K) (V, error) {
	var zero V
	return zero, unsupported(KindMapping, "Pop")
}

func (v Mapping[K, V]) PopItem() (K, V, error) {
	var (
		key K
		val V
	)
	return key, val, unsupported(KindMapping, "PopItem")
}

func (v Mapping[K, V]) SetDefault(key K, def V) (V, error) {
	var zero V
	return zero, unsupported(KindMapping, "SetDefault")
}
