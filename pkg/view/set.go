package view

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"go.llib.dev/views/pkg/datastruct"
)

// Set is a read-only, live view over a collection of unique elements.
// The zero value is a view over an empty set.
type Set[T comparable] struct {
	s datastruct.SetReader[T]
}

var (
	_ datastruct.SetReader[int] = Set[int]{}
	_ datastruct.Hasher         = Set[int]{}
	_ fmt.Stringer              = Set[int]{}
)

// NewSet wraps s without copying it.
// It fails with ErrTypeKind when s is nil.
func NewSet[T comparable](s datastruct.SetReader[T]) (Set[T], error) {
	if isNil(s) {
		return Set[T]{}, ErrTypeKind.F("%s requires a set, got %T", KindSet, s)
	}
	return Set[T]{s: s}, nil
}

// SetOf wraps a Go map used as a set.
// Keys added to m are visible through the view.
func SetOf[T comparable](m map[T]struct{}) Set[T] {
	return Set[T]{s: datastruct.SetFromMap(m)}
}

// AsSet checks at runtime whether v can be viewed as a set of T.
// v may be a datastruct.SetReader[T] or a map[T]struct{}.
func AsSet[T comparable](v any) (Set[T], error) {
	switch s := v.(type) {
	case datastruct.SetReader[T]:
		return NewSet(s)
	case map[T]struct{}:
		return SetOf(s), nil
	default:
		return Set[T]{}, ErrTypeKind.F("%s requires a set of %s, got %T",
			KindSet, reflect.TypeFor[T](), v)
	}
}

func (v Set[T]) reader() datastruct.SetReader[T] {
	if v.s == nil {
		return (*datastruct.Set[T])(nil)
	}
	return v.s
}

func (v Set[T]) Contains(val T) bool {
	return v.reader().Contains(val)
}

func (v Set[T]) Len() int {
	return v.reader().Len()
}

func (v Set[T]) Iter() iter.Seq[T] {
	return v.reader().Iter()
}

// Backward iterates the elements in reverse order.
// The underlying set must implement datastruct.ReverseIterable, otherwise ErrTypeKind is returned.
func (v Set[T]) Backward() (iter.Seq[T], error) {
	switch r := v.reader().(type) {
	case datastruct.ReverseIterable[T]:
		return r.Backward(), nil
	case Set[T]:
		return r.Backward()
	default:
		return nil, ErrTypeKind.F("%s: %T is not reversible", KindSet, r)
	}
}

// Equal reports whether oth holds exactly the same elements.
func (v Set[T]) Equal(oth datastruct.SetReader[T]) bool {
	if isNil(oth) {
		return false
	}
	return v.Len() == oth.Len() && v.IsSubsetOf(oth)
}

// IsSubsetOf reports whether every element of the view is in oth.
func (v Set[T]) IsSubsetOf(oth datastruct.Iterable[T]) bool {
	has := membership(oth)
	for val := range v.Iter() {
		if !has(val) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every element of oth is in the view.
func (v Set[T]) IsSupersetOf(oth datastruct.Iterable[T]) bool {
	if isNil(oth) {
		return true
	}
	for val := range oth.Iter() {
		if !v.Contains(val) {
			return false
		}
	}
	return true
}

func (v Set[T]) IsProperSubsetOf(oth datastruct.SetReader[T]) bool {
	return !isNil(oth) && v.Len() < oth.Len() && v.IsSubsetOf(oth)
}

func (v Set[T]) IsProperSupersetOf(oth datastruct.SetReader[T]) bool {
	if isNil(oth) {
		return 0 < v.Len()
	}
	return oth.Len() < v.Len() && v.IsSupersetOf(oth)
}

// IsDisjoint reports whether the view and oth have no element in common.
func (v Set[T]) IsDisjoint(oth datastruct.Iterable[T]) bool {
	if isNil(oth) {
		return true
	}
	for val := range oth.Iter() {
		if v.Contains(val) {
			return false
		}
	}
	return true
}

// Union returns a new set with the elements of the view and every operand.
func (v Set[T]) Union(oths ...datastruct.Iterable[T]) *datastruct.Set[T] {
	out := datastruct.MakeSet(v.ToSlice()...)
	for _, oth := range oths {
		if isNil(oth) {
			continue
		}
		for val := range oth.Iter() {
			out.Add(val)
		}
	}
	return out
}

// Intersection returns a new set with the elements of the view that are present in every operand.
func (v Set[T]) Intersection(oths ...datastruct.Iterable[T]) *datastruct.Set[T] {
	filters := make([]func(T) bool, 0, len(oths))
	for _, oth := range oths {
		filters = append(filters, membership(oth))
	}
	out := datastruct.MakeSet[T]()
	for val := range v.Iter() {
		if allOf(filters, val) {
			out.Add(val)
		}
	}
	return out
}

// Difference returns a new set with the elements of the view that are in none of the operands.
func (v Set[T]) Difference(oths ...datastruct.Iterable[T]) *datastruct.Set[T] {
	filters := make([]func(T) bool, 0, len(oths))
	for _, oth := range oths {
		filters = append(filters, membership(oth))
	}
	out := datastruct.MakeSet[T]()
	for val := range v.Iter() {
		if !anyOf(filters, val) {
			out.Add(val)
		}
	}
	return out
}

// SymmetricDifference returns a new set with the elements that are in exactly one of the view and oth.
func (v Set[T]) SymmetricDifference(oth datastruct.Iterable[T]) *datastruct.Set[T] {
	out := v.Difference(oth)
	if isNil(oth) {
		return out
	}
	for val := range oth.Iter() {
		if !v.Contains(val) {
			out.Add(val)
		}
	}
	return out
}

// membership returns a lookup func for the elements of it.
// Non containable collections are read once into a temporary index.
func membership[T comparable](it datastruct.Iterable[T]) func(T) bool {
	if isNil(it) {
		return func(T) bool { return false }
	}
	if c, ok := it.(datastruct.Containable[T]); ok {
		return c.Contains
	}
	index := make(map[T]struct{})
	for val := range it.Iter() {
		index[val] = struct{}{}
	}
	return func(val T) bool {
		_, ok := index[val]
		return ok
	}
}

func allOf[T any](fns []func(T) bool, v T) bool {
	for _, fn := range fns {
		if !fn(v) {
			return false
		}
	}
	return true
}

func anyOf[T any](fns []func(T) bool, v T) bool {
	for _, fn := range fns {
		if fn(v) {
			return true
		}
	}
	return false
}

// Copy returns a view over a shallow copy of the underlying set.
// An immutable underlying set is shared instead of copied.
func (v Set[T]) Copy() Set[T] {
	if _, ok := v.reader().(datastruct.Hasher); ok {
		return v
	}
	return Set[T]{s: datastruct.MakeSet(v.ToSlice()...)}
}

// ToSlice returns the current elements as a new slice, in iteration order.
func (v Set[T]) ToSlice() []T {
	out := make([]T, 0, v.Len())
	for val := range v.Iter() {
		out = append(out, val)
	}
	return out
}

func (v Set[T]) String() string {
	var b strings.Builder
	b.WriteString(KindSet)
	b.WriteString("{")
	var i int
	for val := range v.Iter() {
		if 0 < i {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", val)
		i++
	}
	b.WriteString("}")
	return b.String()
}

// Hash delegates to the underlying set.
// A set that is not a datastruct.Hasher is mutable, so hashing it fails with ErrTypeKind.
func (v Set[T]) Hash() (uint64, error) {
	return hashOf(KindSet, v.reader())
}

// Underlying returns the wrapped set itself.
// Changes made through the returned value are visible through the view.
func (v Set[T]) Underlying() datastruct.SetReader[T] {
	return v.s
}

func (v Set[T]) Add(val T) error {
	return unsupported(KindSet, "Add")
}

func (v Set[T]) Remove(val T) error {
	return unsupported(KindSet, "Remove")
}

func (v Set[T]) Discard(val T) error {
	return unsupported(KindSet, "Discard")
}

func (v Set[T]) Pop() (T, error) {
	var zero T
	return zero, unsupported(KindSet, "Pop")
}

func (v Set[T]) Clear() error {
	return unsupported(KindSet, "Clear")
}

func (v Set[T]) Update(oths ...datastruct.Iterable[T]) error {
	return unsupported(KindSet, "Update")
}

func (v Set[T]) IntersectionUpdate(oths ...datastruct.Iterable[T]) error {
	return unsupported(KindSet, "IntersectionUpdate")
}

func (v Set[T]) DifferenceUpdate(oths ...datastruct.Iterable[T]) error {
	return unsupported(KindSet, "DifferenceUpdate")
}

func (v Set[T]) SymmetricDifferenceUpdate(oth datastruct.Iterable[T]) error {
	return unsupported(KindSet, "SymmetricDifferenceUpdate")
}
