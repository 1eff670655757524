// Package view provides read-only, live views over mutable collections.
//
// A view keeps a reference to the collection it wraps and delegates every read to it,
// so changes made to the underlying collection through any other path are visible through the view immediately.
// Views never copy the underlying collection and never cache derived data.
//
// Mutation is not part of a view's read API.
// The mutating method names of the wrapped collection kind are present,
// but they return an *UnsupportedOperationError without touching the underlying collection.
//
// Underlying gives back the wrapped collection itself.
// Whoever holds that reference can change what the view shows,
// thus it should be handed out only to code that is trusted with the original collection.
package view

import (
	"errors"
	"fmt"
	"reflect"

	"go.llib.dev/views/pkg/datastruct"
)

const (
	ErrOperationNotSupported = datastruct.ErrOperationNotSupported
	ErrNotFound              = datastruct.ErrNotFound
	ErrIndexOutOfRange       = datastruct.ErrIndexOutOfRange
	ErrTypeKind              = datastruct.ErrTypeKind
)

const (
	KindMapping  = "MappingView"
	KindSequence = "SequenceView"
	KindSet      = "SetView"
)

// UnsupportedOperationError is returned by every mutating method of a view.
type UnsupportedOperationError struct {
	// Kind is the name of the view kind, such as "MappingView".
	Kind string
	// Operation is the name of the rejected method.
	Operation string
}

func (err *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s does not support %s", ErrOperationNotSupported, err.Kind, err.Operation)
}

func (err *UnsupportedOperationError) Is(target error) bool {
	return errors.Is(ErrOperationNotSupported, target)
}

func unsupported(kind, op string) error {
	return &UnsupportedOperationError{Kind: kind, Operation: op}
}

// isNil reports whether v is a nil interface or holds a nil pointer.
// A nil map or slice is an empty collection, not a missing one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func hashOf(kind string, underlying any) (uint64, error) {
	h, ok := underlying.(datastruct.Hasher)
	if !ok {
		return 0, ErrTypeKind.F("%s: unhashable type: %T", kind, underlying)
	}
	return h.Hash()
}
