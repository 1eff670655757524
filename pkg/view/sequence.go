package view

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"go.llib.dev/views/pkg/compare"
	"go.llib.dev/views/pkg/datastruct"
)

// Sequence is a read-only, live view over an integer indexed collection.
// The zero value is a view over an empty sequence.
type Sequence[T any] struct {
	s datastruct.SequenceReader[T]
}

var (
	_ datastruct.SequenceReader[int]  = Sequence[int]{}
	_ datastruct.Iterable[int]        = Sequence[int]{}
	_ datastruct.ReverseIterable[int] = Sequence[int]{}
	_ datastruct.Hasher               = Sequence[int]{}
	_ fmt.Stringer                    = Sequence[int]{}
)

// NewSequence wraps s without copying it.
// It fails with ErrTypeKind when s is nil.
func NewSequence[T any](s datastruct.SequenceReader[T]) (Sequence[T], error) {
	if isNil(s) {
		return Sequence[T]{}, ErrTypeKind.F("%s requires a sequence, got %T", KindSequence, s)
	}
	return Sequence[T]{s: s}, nil
}

// SliceOf wraps the caller's slice variable.
// Appends made through ptr are visible through the view.
func SliceOf[T any](ptr *[]T) Sequence[T] {
	if ptr == nil {
		return Sequence[T]{}
	}
	return Sequence[T]{s: datastruct.ListOf(ptr)}
}

// AsSequence checks at runtime whether v can be viewed as a sequence of T.
// v may be a datastruct.SequenceReader[T] or a *[]T.
func AsSequence[T any](v any) (Sequence[T], error) {
	switch s := v.(type) {
	case datastruct.SequenceReader[T]:
		return NewSequence(s)
	case *[]T:
		if s == nil {
			return Sequence[T]{}, ErrTypeKind.F("%s requires a sequence, got %T", KindSequence, v)
		}
		return SliceOf(s), nil
	default:
		return Sequence[T]{}, ErrTypeKind.F("%s requires a sequence of %s, got %T",
			KindSequence, reflect.TypeFor[T](), v)
	}
}

func (v Sequence[T]) reader() datastruct.SequenceReader[T] {
	if v.s == nil {
		return (*datastruct.List[T])(nil)
	}
	return v.s
}

// index resolves a possibly negative index against the current length.
func (v Sequence[T]) index(i int) (int, bool) {
	length := v.reader().Len()
	if i < 0 {
		i += length
	}
	return i, 0 <= i && i < length
}

// At returns the element at index i.
// Negative indices count from the end, -1 is the last element.
func (v Sequence[T]) At(i int) (T, error) {
	val, ok := v.Lookup(i)
	if !ok {
		return val, ErrIndexOutOfRange.F("%s: index %d, length %d", KindSequence, i, v.Len())
	}
	return val, nil
}

func (v Sequence[T]) Lookup(i int) (T, bool) {
	idx, ok := v.index(i)
	if !ok {
		var zero T
		return zero, false
	}
	return v.reader().Lookup(idx)
}

func (v Sequence[T]) Len() int {
	return v.reader().Len()
}

// Iter iterates the elements from the first to the last.
func (v Sequence[T]) Iter() iter.Seq[T] {
	if it, ok := v.reader().(datastruct.Iterable[T]); ok {
		return it.Iter()
	}
	return func(yield func(T) bool) {
		s := v.reader()
		for i := 0; i < s.Len(); i++ {
			val, ok := s.Lookup(i)
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}

// Backward iterates the elements from the last to the first.
func (v Sequence[T]) Backward() iter.Seq[T] {
	if it, ok := v.reader().(datastruct.ReverseIterable[T]); ok {
		return it.Backward()
	}
	return func(yield func(T) bool) {
		s := v.reader()
		for i := s.Len() - 1; 0 <= i; i-- {
			val, ok := s.Lookup(i)
			if !ok {
				continue
			}
			if !yield(val) {
				return
			}
		}
	}
}

func (v Sequence[T]) Contains(val T) bool {
	if c, ok := v.reader().(datastruct.Containable[T]); ok {
		return c.Contains(val)
	}
	_, err := v.Index(val)
	return err == nil
}

// Index returns the index of the first element equal to val, or ErrNotFound.
func (v Sequence[T]) Index(val T) (int, error) {
	return v.IndexIn(val, 0, v.Len())
}

// IndexIn is like Index but only searches the [start, stop) range.
// Negative bounds count from the end and out of range bounds are clamped.
func (v Sequence[T]) IndexIn(val T, start, stop int) (int, error) {
	s := v.reader()
	start, stop = clampIndex(start, s.Len()), clampIndex(stop, s.Len())
	for i := start; i < stop; i++ {
		got, ok := s.Lookup(i)
		if !ok {
			break
		}
		if compare.Equal(got, val) {
			return i, nil
		}
	}
	return -1, ErrNotFound.F("%s: %v is not in sequence", KindSequence, val)
}

func clampIndex(i, length int) int {
	if i < 0 {
		i += length
		if i < 0 {
			return 0
		}
	}
	if length < i {
		return length
	}
	return i
}

// Count returns the number of elements equal to val.
func (v Sequence[T]) Count(val T) int {
	var n int
	for got := range v.Iter() {
		if compare.Equal(got, val) {
			n++
		}
	}
	return n
}

// Slice returns a new list holding the elements of the [start, stop) range.
// Negative bounds count from the end and out of range bounds are clamped.
func (v Sequence[T]) Slice(start, stop int) datastruct.List[T] {
	return v.SliceSpan(Span{Start: start, HasStart: true, Stop: stop, HasStop: true})
}

// Span describes an extended slice.
// An unset bound defaults to the beginning or the end, depending on the direction of Step.
// A negative Step walks backwards, a zero Step is treated as 1.
type Span struct {
	Start    int
	HasStart bool
	Stop     int
	HasStop  bool
	Step     int
}

// SliceSpan returns a new list holding the elements selected by span.
func (v Sequence[T]) SliceSpan(span Span) datastruct.List[T] {
	s := v.reader()
	start, stop, step := span.indices(s.Len())
	out := datastruct.List[T]{}
	in := func(i int) bool {
		if 0 < step {
			return i < stop
		}
		return stop < i
	}
	for i := start; in(i); i += step {
		val, ok := s.Lookup(i)
		if !ok {
			break
		}
		out = append(out, val)
	}
	return out
}

func (span Span) indices(length int) (start, stop, step int) {
	step = span.Step
	if step == 0 {
		step = 1
	}
	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}
	bound := func(i int, has bool, def int) int {
		if !has {
			return def
		}
		if i < 0 {
			i += length
			if i < lower {
				return lower
			}
			return i
		}
		if upper < i {
			return upper
		}
		return i
	}
	if 0 < step {
		return bound(span.Start, span.HasStart, lower), bound(span.Stop, span.HasStop, upper), step
	}
	return bound(span.Start, span.HasStart, upper), bound(span.Stop, span.HasStop, lower), step
}

// Equal reports whether oth has the same length and equal elements at every index.
func (v Sequence[T]) Equal(oth datastruct.SequenceReader[T]) bool {
	if isNil(oth) {
		return false
	}
	if v.Len() != oth.Len() {
		return false
	}
	s := v.reader()
	for i := 0; i < s.Len(); i++ {
		a, aok := s.Lookup(i)
		b, bok := oth.Lookup(i)
		if aok != bok || !compare.Equal(a, b) {
			return false
		}
	}
	return true
}

// Compare orders the view and oth lexicographically.
// The first pair of unequal elements decides, otherwise the shorter sequence is the lesser.
// It fails with ErrTypeKind when the deciding elements have no natural order.
func (v Sequence[T]) Compare(oth datastruct.SequenceReader[T]) (int, error) {
	var err error
	cmp := v.CompareFunc(oth, func(a, b T) int {
		n, ok := compare.Values(a, b)
		if !ok && err == nil {
			err = ErrTypeKind.F("%s: %T values are not ordered", KindSequence, a)
		}
		return n
	})
	if err != nil {
		return 0, err
	}
	return cmp, nil
}

// CompareFunc is like Compare but orders unequal elements with cmp.
func (v Sequence[T]) CompareFunc(oth datastruct.SequenceReader[T], cmp func(a, b T) int) int {
	if isNil(oth) {
		oth = (*datastruct.List[T])(nil)
	}
	s := v.reader()
	for i := 0; ; i++ {
		a, aok := s.Lookup(i)
		b, bok := oth.Lookup(i)
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		if compare.Equal(a, b) {
			continue
		}
		if n := cmp(a, b); n != 0 {
			return n
		}
	}
}

func (v Sequence[T]) Less(oth datastruct.SequenceReader[T]) (bool, error) {
	n, err := v.Compare(oth)
	return n < 0, err
}

func (v Sequence[T]) LessOrEqual(oth datastruct.SequenceReader[T]) (bool, error) {
	n, err := v.Compare(oth)
	return err == nil && n <= 0, err
}

func (v Sequence[T]) Greater(oth datastruct.SequenceReader[T]) (bool, error) {
	n, err := v.Compare(oth)
	return 0 < n, err
}

func (v Sequence[T]) GreaterOrEqual(oth datastruct.SequenceReader[T]) (bool, error) {
	n, err := v.Compare(oth)
	return err == nil && 0 <= n, err
}

// Concat returns a new list with the elements of the view followed by the elements of oth.
func (v Sequence[T]) Concat(oth datastruct.SequenceReader[T]) datastruct.List[T] {
	out := datastruct.List[T](v.ToSlice())
	if isNil(oth) {
		return out
	}
	for i := 0; i < oth.Len(); i++ {
		val, ok := oth.Lookup(i)
		if !ok {
			break
		}
		out = append(out, val)
	}
	return out
}

// Repeat returns a new list with the content of the view repeated n times.
// For n <= 0 the result is empty.
func (v Sequence[T]) Repeat(n int) datastruct.List[T] {
	out := datastruct.List[T]{}
	if n <= 0 {
		return out
	}
	vs := v.ToSlice()
	for range n {
		out = append(out, vs...)
	}
	return out
}

// Reversed returns a new list with the elements in reverse order.
func (v Sequence[T]) Reversed() datastruct.List[T] {
	return datastruct.List[T](slices.Collect(v.Backward()))
}

// Copy returns a view over a shallow copy of the underlying sequence.
// An immutable underlying sequence is shared instead of copied.
func (v Sequence[T]) Copy() Sequence[T] {
	if _, ok := v.reader().(datastruct.Hasher); ok {
		return v
	}
	vs := v.ToSlice()
	return SliceOf(&vs)
}

// ToSlice returns the current content as a new slice.
func (v Sequence[T]) ToSlice() []T {
	out := make([]T, 0, v.Len())
	for val := range v.Iter() {
		out = append(out, val)
	}
	return out
}

func (v Sequence[T]) String() string {
	var b strings.Builder
	b.WriteString(KindSequence)
	b.WriteString("[")
	var i int
	for val := range v.Iter() {
		if 0 < i {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", val)
		i++
	}
	b.WriteString("]")
	return b.String()
}

// Hash delegates to the underlying sequence.
// A sequence that is not a datastruct.Hasher is mutable, so hashing it fails with ErrTypeKind.
func (v Sequence[T]) Hash() (uint64, error) {
	return hashOf(KindSequence, v.reader())
}

// Underlying returns the wrapped sequence itself.
// Changes made through the returned value are visible through the view.
func (v Sequence[T]) Underlying() datastruct.SequenceReader[T] {
	return v.s
}

func (v Sequence[T]) Set(i int, val T) error {
	return unsupported(KindSequence, "Set")
}

// Replace would assign vs to the [start, stop) range.
func (v Sequence[T]) Replace(start, stop int, vs ...T) error {
	return unsupported(KindSequence, "Replace")
}

func (v Sequence[T]) Append(vs ...T) error {
	return unsupported(KindSequence, "Append")
}

func (v Sequence[T]) Insert(i int, vs ...T) error {
	return unsupported(KindSequence, "Insert")
}

func (v Sequence[T]) Remove(val T) error {
	return unsupported(KindSequence, "Remove")
}

func (v Sequence[T]) Delete(i int) error {
	return unsupported(KindSequence, "Delete")
}

func (v Sequence[T]) Pop() (T, error) {
	var zero T
	return zero, unsupported(KindSequence, "Pop")
}

func (v Sequence[T]) Clear() error {
	return unsupported(KindSequence, "Clear")
}

func (v Sequence[T]) Sort(cmp func(a, b T) int) error {
	return unsupported(KindSequence, "Sort")
}

func (v Sequence[T]) Reverse() error {
	return unsupported(KindSequence, "Reverse")
}

func (v Sequence[T]) Extend(oth datastruct.SequenceReader[T]) error {
	return unsupported(KindSequence, "Extend")
}

func (v Sequence[T]) RepeatInPlace(n int) error {
	return unsupported(KindSequence, "RepeatInPlace")
}
