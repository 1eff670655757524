// Package compare provides ordering and equality for values whose type is only known as a type parameter.
package compare

import (
	"cmp"
	"reflect"
	"time"

	gocmp "github.com/google/go-cmp/cmp"
)

// Interface defines how comparison can be implemented.
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}

type ShortInterface[T any] interface {
	// Cmp compares x and y and returns:
	//   - -1 if x  < y;
	//   -  0 if x == y;
	//   - +1 if x  > y.
	Cmp(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

// Values compares a and b by their natural order.
//
// The natural order comes from an Interface or ShortInterface implementation,
// from time.Time, or from the value's kind when it is a number, a string or a bool.
// Numbers of different kinds are comparable with each other.
// When no natural order exists, ok is false.
func Values[T any](a, b T) (_ int, ok bool) {
	switch x := any(a).(type) {
	case Interface[T]:
		return normalise(x.Compare(b)), true
	case ShortInterface[T]:
		return normalise(x.Cmp(b)), true
	}
	switch x := any(&a).(type) {
	case Interface[T]:
		return normalise(x.Compare(b)), true
	case ShortInterface[T]:
		return normalise(x.Cmp(b)), true
	}
	return values(any(a), any(b))
}

func values(a, b any) (int, bool) {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return ta.Compare(tb), true
	}
	var (
		x = reflect.ValueOf(a)
		y = reflect.ValueOf(b)
	)
	if !x.IsValid() || !y.IsValid() {
		return 0, false
	}
	kx, ky := kindOf(x), kindOf(y)
	switch {
	case kx == kindString && ky == kindString:
		return cmp.Compare(x.String(), y.String()), true
	case kx == kindBool && ky == kindBool:
		return cmp.Compare(boolToInt(x.Bool()), boolToInt(y.Bool())), true
	case kx == kindInt && ky == kindInt:
		return cmp.Compare(x.Int(), y.Int()), true
	case kx == kindUint && ky == kindUint:
		return cmp.Compare(x.Uint(), y.Uint()), true
	case isNumber(kx) && isNumber(ky):
		return cmp.Compare(toFloat(x, kx), toFloat(y, ky)), true
	default:
		return 0, false
	}
}

// Equal reports whether a and b are deeply equal.
// Types with an Equal method are compared with it.
// Unexported struct fields take part in the comparison.
func Equal[T any](a, b T) bool {
	return gocmp.Equal(a, b, exportAll)
}

var exportAll = gocmp.Exporter(func(reflect.Type) bool { return true })

type kind int

const (
	kindOther kind = iota
	kindString
	kindBool
	kindInt
	kindUint
	kindFloat
)

func kindOf(v reflect.Value) kind {
	switch v.Kind() {
	case reflect.String:
		return kindString
	case reflect.Bool:
		return kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	default:
		return kindOther
	}
}

func isNumber(k kind) bool {
	return k == kindInt || k == kindUint || k == kindFloat
}

func toFloat(v reflect.Value, k kind) float64 {
	switch k {
	case kindInt:
		return float64(v.Int())
	case kindUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func normalise(n int) int {
	switch {
	case n < 0:
		return -1
	case 0 < n:
		return 1
	default:
		return 0
	}
}
