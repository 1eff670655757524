package datastruct_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/views/pkg/datastruct"
)

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	m := let.Var(s, func(t *testcase.T) datastruct.Map[string, int] {
		return datastruct.Map[string, int]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		var (
			key  string = t.Random.String()
			val1 int    = t.Random.Int()
			val2 int    = t.Random.Int()
		)

		_, ok := m.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Empty(t, m.Get(t).Keys())
		assert.Equal(t, 0, m.Get(t).Len())

		m.Get(t).Set(key, val1)
		got, ok := m.Get(t).Lookup(key)
		assert.True(t, ok)
		assert.Equal(t, val1, got)
		assert.Equal(t, val1, m.Get(t).Get(key))
		assert.Contains(t, m.Get(t).Keys(), key)
		assert.Equal(t, 1, m.Get(t).Len())

		m.Get(t).Set(key, val2)
		got, ok = m.Get(t).Lookup(key)
		assert.True(t, ok)
		assert.Equal(t, val2, got)
		assert.Equal(t, 1, m.Get(t).Len())

		m.Get(t).Delete(key)
		_, ok = m.Get(t).Lookup(key)
		assert.False(t, ok)
		assert.Empty(t, m.Get(t).Keys())
		assert.Equal(t, 0, m.Get(t).Len())
	})

	s.Test("#ToMap", func(t *testcase.T) {
		exp := map[string]int{}
		t.Random.Repeat(3, 7, func() {
			k := t.Random.HexN(5)
			v := t.Random.Int()
			exp[k] = v
			m.Get(t).Set(k, v)
		})
		assert.Equal(t, exp, m.Get(t).ToMap())
	})

	s.Test("#Iter", func(t *testcase.T) {
		exp := map[string]int{}
		t.Random.Repeat(3, 7, func() {
			k := t.Random.HexN(5)
			v := t.Random.Int()
			exp[k] = v
			m.Get(t).Set(k, v)
		})
		got := map[string]int{}
		for k, v := range m.Get(t).Iter() {
			got[k] = v
		}
		assert.Equal(t, exp, got)
	})

	s.Test("CloneMap is independent from the source", func(t *testcase.T) {
		key := t.Random.String()
		m.Get(t).Set(key, 1)
		clone := datastruct.CloneMap[string, int](m.Get(t))
		assert.Equal(t, m.Get(t).ToMap(), clone.ToMap())

		m.Get(t).Set(key, 2)
		assert.Equal(t, 1, clone.Get(key))
	})
}
