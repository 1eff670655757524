package view

import (
	"bytes"
	"encoding/gob"

	jsoniter "github.com/json-iterator/go"

	"go.llib.dev/views/pkg/datastruct"
)

// json is configured to behave like encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encoding a view writes out its current content.
// Decoding always produces a view over a new plain collection,
// so an immutable origin is not restored as immutable.

func (v Mapping[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToMap())
}

func (v *Mapping[K, V]) UnmarshalJSON(data []byte) error {
	var m map[K]V
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*v = MapOf(m)
	return nil
}

func (v Mapping[K, V]) GobEncode() ([]byte, error) {
	return gobEncode(v.ToMap())
}

func (v *Mapping[K, V]) GobDecode(data []byte) error {
	var m map[K]V
	if err := gobDecode(data, &m); err != nil {
		return err
	}
	*v = MapOf(m)
	return nil
}

func (v Sequence[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToSlice())
}

func (v *Sequence[T]) UnmarshalJSON(data []byte) error {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	*v = SliceOf(&vs)
	return nil
}

func (v Sequence[T]) GobEncode() ([]byte, error) {
	return gobEncode(v.ToSlice())
}

func (v *Sequence[T]) GobDecode(data []byte) error {
	var vs []T
	if err := gobDecode(data, &vs); err != nil {
		return err
	}
	*v = SliceOf(&vs)
	return nil
}

func (v Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToSlice())
}

func (v *Set[T]) UnmarshalJSON(data []byte) error {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	*v = Set[T]{s: datastruct.MakeSet(vs...)}
	return nil
}

func (v Set[T]) GobEncode() ([]byte, error) {
	return gobEncode(v.ToSlice())
}

func (v *Set[T]) GobDecode(data []byte) error {
	var vs []T
	if err := gobDecode(data, &vs); err != nil {
		return err
	}
	*v = Set[T]{s: datastruct.MakeSet(vs...)}
	return nil
}

func gobEncode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(data []byte, ptr any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(ptr)
}
