package datastruct_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/views/pkg/datastruct"
)

func ExampleOrderedSet() {
	var set datastruct.OrderedSet[string]
	set.Append("foo", "bar", "baz", "foo")
	set.ToSlice() // []string{"foo", "bar", "baz"}
	set.Len()     // 3
}

func ExampleOrderedSet_iterate() {
	set := datastruct.MakeOrderedSet("foo", "bar", "baz", "foo")

	for v := range set.Iter() {
		_ = v // "foo" -> "bar" -> "baz"
	}
}

func TestOrderedSet(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})
	t.Run("Append and Contains", func(t *testing.T) {
		var (
			set      datastruct.OrderedSet[int]
			value    = rnd.Int()
			othValue = random.Unique(rnd.Int, value)
		)

		assert.False(t, set.Contains(value))

		set.Append(value)
		assert.True(t, set.Contains(value))
		assert.False(t, set.Contains(othValue))
	})

	t.Run("ToSlice uniqueness", func(t *testing.T) {
		set := datastruct.MakeOrderedSet(1, 2, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, set.ToSlice())
		assert.Equal(t, 3, set.Len())
	})

	t.Run("ToSlice is ordered by default", func(t *testing.T) {
		exp := []int{1, 5, 2, 7, 3, 9}
		set := datastruct.MakeOrderedSet(exp...)
		assert.Equal(t, exp, set.ToSlice(), "values were expected, and in the same order")
		assert.Equal(t, exp, slices.Collect(set.Iter()))
	})

	t.Run("Backward", func(t *testing.T) {
		set := datastruct.MakeOrderedSet(1, 2, 3)
		assert.Equal(t, []int{3, 2, 1}, slices.Collect(set.Backward()))
	})

	t.Run("Delete keeps the order of the remaining elements", func(t *testing.T) {
		set := datastruct.MakeOrderedSet(1, 2, 3, 4)
		assert.True(t, set.Delete(2))
		assert.False(t, set.Delete(2))
		assert.Equal(t, []int{1, 3, 4}, set.ToSlice())
		set.Append(2)
		assert.Equal(t, []int{1, 3, 4, 2}, set.ToSlice())
	})
}

func TestSet(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("MakeSet", func(t *testing.T) {
		set := datastruct.MakeSet(1, 2, 2, 3)
		assert.Equal(t, 3, set.Len())
		assert.ContainsExactly(t, []int{1, 2, 3}, set.ToSlice())
	})

	t.Run("Add, Contains and Delete", func(t *testing.T) {
		var set datastruct.Set[string]
		v := rnd.String()
		assert.False(t, set.Contains(v))
		set.Add(v)
		assert.True(t, set.Contains(v))
		assert.True(t, set.Delete(v))
		assert.False(t, set.Contains(v))
		assert.False(t, set.Delete(v))
	})

	t.Run("SetFromMap shares the storage", func(t *testing.T) {
		m := map[string]struct{}{"a": {}}
		set := datastruct.SetFromMap(m)
		m["b"] = struct{}{}
		assert.True(t, set.Contains("b"))
		set.Add("c")
		_, ok := m["c"]
		assert.True(t, ok)
	})

	t.Run("nil set is empty", func(t *testing.T) {
		var set *datastruct.Set[int]
		assert.Equal(t, 0, set.Len())
		assert.False(t, set.Contains(1))
		assert.Empty(t, slices.Collect(set.Iter()))
	})
}
