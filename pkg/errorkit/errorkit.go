// Package errorkit holds the error value helpers shared by the collection packages.
package errorkit

import "errors"

// As is a generic shorthand for errors.As.
func As[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
