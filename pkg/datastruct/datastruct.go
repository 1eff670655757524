// Package datastruct holds the collection capability interfaces
// together with the plain collections that implement them.
//
// The Reader interfaces describe the minimum a collection must offer to be wrapped by a read-only view.
// Anything that implements them can serve as an underlying collection,
// the built-in collections of this package are only the most common choice.
package datastruct

import (
	"iter"

	"go.llib.dev/views/pkg/errorkit"
)

const (
	// ErrOperationNotSupported is returned when a mutating operation is attempted on a read-only collection.
	ErrOperationNotSupported errorkit.Error = "operation not supported"
	// ErrNotFound is returned when a required key or value is absent.
	ErrNotFound errorkit.Error = "not found"
	// ErrIndexOutOfRange is returned for an index outside the bounds of a sequence.
	ErrIndexOutOfRange errorkit.Error = "index out of range"
	// ErrTypeKind is returned when a value lacks a capability the operation needs,
	// such as hashing a mutable collection.
	ErrTypeKind errorkit.Error = "type kind error"
)

type Sizer interface {
	Len() int
}

type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type ReverseIterable[T any] interface {
	// Backward iterates the elements in reverse iteration order.
	Backward() iter.Seq[T]
}

type ReverseIterable2[K, V any] interface {
	// Backward iterates the entries in reverse iteration order.
	Backward() iter.Seq2[K, V]
}

type Containable[T any] interface {
	Contains(element T) bool
}

// Hasher is implemented by collections whose content can not change,
// thus they can produce a stable hash value.
// Hash fails with ErrTypeKind when an element itself is not hashable.
type Hasher interface {
	Hash() (uint64, error)
}

// MapReader is the read capability set of a key-value collection.
type MapReader[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Iter() iter.Seq2[K, V]
	Sizer
}

// SequenceReader is the read capability set of an integer indexed collection.
// Lookup is only expected to succeed for 0 <= index < Len().
//
// If the implementation is also Iterable or ReverseIterable,
// those are preferred over index based iteration.
type SequenceReader[T any] interface {
	Lookup(index int) (T, bool)
	Sizer
}

// SetReader is the read capability set of a collection of unique elements.
type SetReader[T comparable] interface {
	Containable[T]
	Iterable[T]
	Sizer
}
