package datastruct

import (
	"encoding/binary"
	"hash"
	"math"
	"reflect"

	"github.com/cespare/xxhash"
)

// HashOf computes a hash for v that is consistent with deep equality.
//
// Booleans, numbers, strings, and arrays or structs built from them are hashable.
// Pointers and interfaces are hashed through the value they refer to.
// A Hasher implementation takes precedence over the structural hash.
// Slices, maps and functions are mutable or opaque, so they fail with ErrTypeKind.
func HashOf(v any) (uint64, error) {
	h := hasher{Hash64: xxhash.New()}
	if err := h.value(reflect.ValueOf(v)); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagString
	tagSeq
	tagStruct
	tagHasher
	tagCycle
	tagChan
)

var hasherType = reflect.TypeOf((*Hasher)(nil)).Elem()

type hasher struct {
	hash.Hash64
	buf     [8]byte
	visited map[uintptr]struct{}
}

func (h *hasher) tag(t byte) { _, _ = h.Write([]byte{t}) }

func (h *hasher) u64(n uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], n)
	_, _ = h.Write(h.buf[:])
}

func (h *hasher) float(f float64) {
	if f == 0 { // -0 == +0
		f = 0
	}
	h.u64(math.Float64bits(f))
}

func (h *hasher) value(v reflect.Value) error {
	if !v.IsValid() {
		h.tag(tagNil)
		return nil
	}
	if v.CanInterface() && v.Type().Implements(hasherType) &&
		!(v.Kind() == reflect.Pointer && v.IsNil()) {
		sum, err := v.Interface().(Hasher).Hash()
		if err != nil {
			return err
		}
		h.tag(tagHasher)
		h.u64(sum)
		return nil
	}
	switch v.Kind() {
	case reflect.Bool:
		h.tag(tagBool)
		if v.Bool() {
			h.u64(1)
		} else {
			h.u64(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		h.tag(tagInt)
		h.u64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		h.tag(tagUint)
		h.u64(v.Uint())
	case reflect.Float32, reflect.Float64:
		h.tag(tagFloat)
		h.float(v.Float())
	case reflect.Complex64, reflect.Complex128:
		h.tag(tagComplex)
		c := v.Complex()
		h.float(real(c))
		h.float(imag(c))
	case reflect.String:
		h.tag(tagString)
		h.u64(uint64(v.Len()))
		_, _ = h.Write([]byte(v.String()))
	case reflect.Array:
		h.tag(tagSeq)
		h.u64(uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			if err := h.value(v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		h.tag(tagStruct)
		for i := 0; i < v.NumField(); i++ {
			if err := h.value(v.Field(i)); err != nil {
				return err
			}
		}
	case reflect.Interface:
		if v.IsNil() {
			h.tag(tagNil)
			return nil
		}
		return h.value(v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			h.tag(tagNil)
			return nil
		}
		if h.visited == nil {
			h.visited = make(map[uintptr]struct{})
		}
		if _, ok := h.visited[v.Pointer()]; ok {
			h.tag(tagCycle)
			return nil
		}
		h.visited[v.Pointer()] = struct{}{}
		defer delete(h.visited, v.Pointer())
		return h.value(v.Elem())
	case reflect.Chan, reflect.UnsafePointer:
		h.tag(tagChan)
		h.u64(uint64(v.Pointer()))
	default:
		return ErrTypeKind.F("unhashable type: %s", v.Type())
	}
	return nil
}

// hashUnordered combines element hashes so that the result does not depend on their order.
func hashUnordered(sums []uint64) uint64 {
	var (
		acc uint64
		buf [8]byte
	)
	for _, sum := range sums {
		binary.LittleEndian.PutUint64(buf[:], sum)
		acc += xxhash.Sum64(buf[:])
	}
	h := hasher{Hash64: xxhash.New()}
	h.u64(acc)
	h.u64(uint64(len(sums)))
	return h.Sum64()
}
