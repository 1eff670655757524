package view_test

import (
	"bytes"
	"encoding/gob"
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/views/pkg/datastruct"
	"go.llib.dev/views/pkg/errorkit"
	"go.llib.dev/views/pkg/view"
)

func ExampleSliceOf() {
	xs := []int{1, 2, 3}
	ro := view.SliceOf(&xs)

	xs = append(xs, 4)
	ro.At(-1)      // 4, nil
	ro.Slice(1, 3) // [2 3]
	ro.Append(5)   // error: operation not supported
}

func TestSequence(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		xs = let.Var(s, func(t *testcase.T) *[]int {
			vs := []int{1, 2, 3}
			return &vs
		})
		subject = let.Var(s, func(t *testcase.T) view.Sequence[int] {
			return view.SliceOf(xs.Get(t))
		})
	)

	s.Describe("#At", func(s *testcase.Spec) {
		var index = let.VarOf(s, 0)
		act := let.Act2(func(t *testcase.T) (int, error) {
			return subject.Get(t).At(index.Get(t))
		})

		s.Then("first element is returned", func(t *testcase.T) {
			got, err := act(t)
			assert.NoError(t, err)
			assert.Equal(t, 1, got)
		})

		s.When("index is -1", func(s *testcase.Spec) {
			index.LetValue(s, -1)

			s.Then("last element is returned", func(t *testcase.T) {
				got, err := act(t)
				assert.NoError(t, err)
				assert.Equal(t, 3, got)
			})
		})

		s.When("index equals the length", func(s *testcase.Spec) {
			index.LetValue(s, 3)

			s.Then("index out of range is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, view.ErrIndexOutOfRange)
			})

			s.And("an element is appended to the underlying slice", func(s *testcase.Spec) {
				s.Before(func(t *testcase.T) {
					_ = subject.Get(t)
					*xs.Get(t) = append(*xs.Get(t), 4)
				})

				s.Then("the new element is visible", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, 4, got)
				})
			})
		})

		s.When("negative index is beyond the beginning", func(s *testcase.Spec) {
			index.LetValue(s, -4)

			s.Then("index out of range is returned", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, view.ErrIndexOutOfRange)
			})
		})
	})

	s.Test("#Slice", func(t *testcase.T) {
		*xs.Get(t) = []int{0, 1, 2, 3, 4}
		v := subject.Get(t)
		assert.Equal(t, datastruct.List[int]{1, 2}, v.Slice(1, 3))
		assert.Equal(t, datastruct.List[int]{3, 4}, v.Slice(-2, 100))
		assert.Equal(t, datastruct.List[int]{}, v.Slice(3, 1))
		assert.Equal(t, datastruct.List[int]{}, v.Slice(10, 20))
	})

	s.Test("#SliceSpan", func(t *testcase.T) {
		*xs.Get(t) = []int{0, 1, 2, 3, 4}
		v := subject.Get(t)
		assert.Equal(t, datastruct.List[int]{4, 3, 2, 1, 0}, v.SliceSpan(view.Span{Step: -1}))
		assert.Equal(t, datastruct.List[int]{0, 2, 4}, v.SliceSpan(view.Span{Step: 2}))
		assert.Equal(t, datastruct.List[int]{0, 1, 2, 3, 4}, v.SliceSpan(view.Span{}))
		assert.Equal(t, datastruct.List[int]{3, 1}, v.SliceSpan(view.Span{Start: 3, HasStart: true, Step: -2}))
		assert.Equal(t, datastruct.List[int]{4, 3}, v.SliceSpan(view.Span{Stop: 2, HasStop: true, Step: -1}))
	})

	s.Test("#Slice result is detached", func(t *testcase.T) {
		got := subject.Get(t).Slice(0, 2)
		got[0] = 42
		assert.Equal(t, []int{1, 2, 3}, *xs.Get(t))
	})

	s.Test("#Index #IndexIn #Count #Contains", func(t *testcase.T) {
		*xs.Get(t) = []int{5, 6, 5, 7}
		v := subject.Get(t)

		i, err := v.Index(5)
		assert.NoError(t, err)
		assert.Equal(t, 0, i)

		i, err = v.IndexIn(5, 1, 4)
		assert.NoError(t, err)
		assert.Equal(t, 2, i)

		_, err = v.IndexIn(5, 1, 2)
		assert.ErrorIs(t, err, view.ErrNotFound)

		_, err = v.Index(42)
		assert.ErrorIs(t, err, view.ErrNotFound)

		assert.Equal(t, 2, v.Count(5))
		assert.Equal(t, 0, v.Count(42))
		assert.True(t, v.Contains(7))
		assert.False(t, v.Contains(42))
	})

	s.Test("#Iter #Backward", func(t *testcase.T) {
		v := subject.Get(t)
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.Iter()))
		assert.Equal(t, []int{3, 2, 1}, slices.Collect(v.Backward()))
		assert.Equal(t, datastruct.List[int]{3, 2, 1}, v.Reversed())
	})

	s.Describe("mutators", func(s *testcase.Spec) {
		assertRejected := func(t *testcase.T, op string, err error) {
			t.Helper()
			assert.ErrorIs(t, err, view.ErrOperationNotSupported)
			uerr, ok := errorkit.As[*view.UnsupportedOperationError](err)
			assert.True(t, ok)
			assert.Equal(t, view.KindSequence, uerr.Kind)
			assert.Equal(t, op, uerr.Operation)
			assert.Equal(t, []int{1, 2, 3}, *xs.Get(t))
		}

		s.Test("Set", func(t *testcase.T) { assertRejected(t, "Set", subject.Get(t).Set(0, 42)) })
		s.Test("Replace", func(t *testcase.T) { assertRejected(t, "Replace", subject.Get(t).Replace(0, 2, 42)) })
		s.Test("Append", func(t *testcase.T) { assertRejected(t, "Append", subject.Get(t).Append(4)) })
		s.Test("Insert", func(t *testcase.T) { assertRejected(t, "Insert", subject.Get(t).Insert(0, 0)) })
		s.Test("Remove", func(t *testcase.T) { assertRejected(t, "Remove", subject.Get(t).Remove(1)) })
		s.Test("Delete", func(t *testcase.T) { assertRejected(t, "Delete", subject.Get(t).Delete(0)) })
		s.Test("Clear", func(t *testcase.T) { assertRejected(t, "Clear", subject.Get(t).Clear()) })
		s.Test("Reverse", func(t *testcase.T) { assertRejected(t, "Reverse", subject.Get(t).Reverse()) })
		s.Test("RepeatInPlace", func(t *testcase.T) { assertRejected(t, "RepeatInPlace", subject.Get(t).RepeatInPlace(2)) })
		s.Test("Pop", func(t *testcase.T) {
			_, err := subject.Get(t).Pop()
			assertRejected(t, "Pop", err)
		})
		s.Test("Sort", func(t *testcase.T) {
			assertRejected(t, "Sort", subject.Get(t).Sort(func(a, b int) int { return b - a }))
		})
		s.Test("Extend", func(t *testcase.T) {
			ext := datastruct.TupleOf(4, 5)
			assertRejected(t, "Extend", subject.Get(t).Extend(ext))
		})
	})

	s.Describe("#Compare", func(s *testcase.Spec) {
		s.Test("equal", func(t *testcase.T) {
			n, err := subject.Get(t).Compare(datastruct.TupleOf(1, 2, 3))
			assert.NoError(t, err)
			assert.Equal(t, 0, n)

			ok, err := subject.Get(t).LessOrEqual(datastruct.TupleOf(1, 2, 3))
			assert.NoError(t, err)
			assert.True(t, ok)
		})
		s.Test("first differing element decides", func(t *testcase.T) {
			ok, err := subject.Get(t).Less(datastruct.TupleOf(1, 3))
			assert.NoError(t, err)
			assert.True(t, ok)

			ok, err = subject.Get(t).Greater(datastruct.TupleOf(1, 2, 2, 9))
			assert.NoError(t, err)
			assert.True(t, ok)
		})
		s.Test("prefix is the lesser", func(t *testcase.T) {
			n, err := subject.Get(t).Compare(datastruct.TupleOf(1, 2, 3, 0))
			assert.NoError(t, err)
			assert.Equal(t, -1, n)

			ok, err := subject.Get(t).GreaterOrEqual(datastruct.TupleOf(1, 2))
			assert.NoError(t, err)
			assert.True(t, ok)
		})
		s.Test("elements without natural order", func(t *testcase.T) {
			type opaque struct{ n int }
			a := view.SliceOf(&[]opaque{{1}})
			_, err := a.Compare(datastruct.TupleOf(opaque{2}))
			assert.ErrorIs(t, err, view.ErrTypeKind)

			n, err := a.Compare(datastruct.TupleOf(opaque{1}))
			assert.NoError(t, err, "equal elements never need ordering")
			assert.Equal(t, 0, n)
		})
		s.Test("CompareFunc", func(t *testcase.T) {
			desc := func(a, b int) int { return b - a }
			assert.Equal(t, 1, subject.Get(t).CompareFunc(datastruct.TupleOf(1, 3), desc))
		})
	})

	s.Test("#Equal", func(t *testcase.T) {
		v := subject.Get(t)
		assert.True(t, v.Equal(datastruct.TupleOf(1, 2, 3)))
		assert.False(t, v.Equal(datastruct.TupleOf(1, 2)))
		assert.False(t, v.Equal(datastruct.TupleOf(1, 2, 4)))
		assert.False(t, v.Equal(nil))
	})

	s.Test("#Concat #Repeat", func(t *testcase.T) {
		v := subject.Get(t)
		assert.Equal(t, datastruct.List[int]{1, 2, 3, 4}, v.Concat(datastruct.TupleOf(4)))
		assert.Equal(t, datastruct.List[int]{1, 2, 3, 1, 2, 3}, v.Repeat(2))
		assert.Equal(t, datastruct.List[int]{}, v.Repeat(0))
		assert.Equal(t, datastruct.List[int]{}, v.Repeat(-1))
		assert.Equal(t, []int{1, 2, 3}, *xs.Get(t))
	})

	s.Test("#Copy is detached from the underlying slice", func(t *testcase.T) {
		cp := subject.Get(t).Copy()
		*xs.Get(t) = append(*xs.Get(t), 4)
		assert.Equal(t, 3, cp.Len())
		assert.Equal(t, 4, subject.Get(t).Len())
	})

	s.Test("#String", func(t *testcase.T) {
		assert.Equal(t, "SequenceView[1, 2, 3]", subject.Get(t).String())
	})

	s.Describe("#Hash", func(s *testcase.Spec) {
		s.Test("mutable underlying slice", func(t *testcase.T) {
			_, err := subject.Get(t).Hash()
			assert.ErrorIs(t, err, view.ErrTypeKind)
		})
		s.Test("tuple", func(t *testcase.T) {
			tuple := datastruct.TupleOf(1, 2, 3)
			v, err := view.NewSequence[int](tuple)
			assert.NoError(t, err)

			exp, err := tuple.Hash()
			assert.NoError(t, err)
			got, err := v.Hash()
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		})
		s.Test("tuple of unhashable elements", func(t *testcase.T) {
			v, err := view.NewSequence[[]int](datastruct.TupleOf([]int{1}))
			assert.NoError(t, err)
			_, err = v.Hash()
			assert.ErrorIs(t, err, view.ErrTypeKind)
		})
	})

	s.Test("JSON round trip", func(t *testcase.T) {
		data, err := json.Marshal(subject.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, "[1,2,3]", string(data))

		var got view.Sequence[int]
		assert.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, got.Equal(subject.Get(t)))
	})

	s.Test("gob round trip", func(t *testcase.T) {
		var buf bytes.Buffer
		assert.NoError(t, gob.NewEncoder(&buf).Encode(subject.Get(t)))

		var got view.Sequence[int]
		assert.NoError(t, gob.NewDecoder(&buf).Decode(&got))
		assert.Equal(t, []int{1, 2, 3}, got.ToSlice())
	})
}

func TestSequence_linkedList(t *testing.T) {
	var ll datastruct.LinkedList[string]
	ll.Append("a", "b")

	v, err := view.NewSequence[string](&ll)
	assert.NoError(t, err)
	ll.Append("c")

	got, err := v.At(-1)
	assert.NoError(t, err)
	assert.Equal(t, "c", got)
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(v.Backward()))
}

func TestSequence_zeroValue(t *testing.T) {
	var v view.Sequence[int]
	assert.Equal(t, 0, v.Len())
	_, err := v.At(0)
	assert.ErrorIs(t, err, view.ErrIndexOutOfRange)
	assert.Equal(t, datastruct.List[int]{}, v.SliceSpan(view.Span{Step: -1}))
	assert.Equal(t, "SequenceView[]", v.String())
}

func TestNewSequence(t *testing.T) {
	_, err := view.NewSequence[int](nil)
	assert.ErrorIs(t, err, view.ErrTypeKind)

	var list *datastruct.List[int]
	_, err = view.NewSequence[int](list)
	assert.ErrorIs(t, err, view.ErrTypeKind)
}

func TestAsSequence(t *testing.T) {
	xs := []int{1}
	v, err := view.AsSequence[int](&xs)
	assert.NoError(t, err)
	assert.Equal(t, 1, v.Len())

	_, err = view.AsSequence[int](xs)
	assert.ErrorIs(t, err, view.ErrTypeKind)

	_, err = view.AsSequence[int](map[int]int{})
	assert.ErrorIs(t, err, view.ErrTypeKind)
}
