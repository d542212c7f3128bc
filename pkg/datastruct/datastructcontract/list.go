// Package datastructcontract holds reusable testcase contracts for the datastruct interfaces.
package datastructcontract

import (
	"testing"

	"go.llib.dev/containershowcase/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

type ListConfig[T any] struct {
	// MakeT makes a value for the list.
	// Lists that only accept unique values should receive a MakeT that produces unique values.
	MakeT func(tb testing.TB) T
}

func (c ListConfig[T]) makeT(t *testcase.T) T {
	if c.MakeT == nil {
		t.Fatal("datastructcontract: ListConfig.MakeT is required")
	}
	return c.MakeT(t)
}

func List[T any](make func(tb testing.TB) datastruct.List[T], c ListConfig[T]) func(s *testcase.Spec) {
	return func(s *testcase.Spec) {
		s.Test("smoke", func(t *testcase.T) {
			var (
				list         = make(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeT(t) })
			)

			list.Append()
			assert.Equal(t, 0, list.Len())

			var expLen int
			for _, v := range expected {
				assert.Equal(t, expLen, list.Len())
				list.Append(v)
				expLen++
			}

			assert.ContainsExactly(t, expected, iterkit.Collect(list.Iter()))
			assert.ContainsExactly(t, expected, list.ToSlice())
		})

		s.Test("Append many", func(t *testcase.T) {
			var (
				list         = make(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeT(t) })
			)
			list.Append(expected...)
			assert.Equal(t, len(expected), list.Len())
			assert.ContainsExactly(t, expected, iterkit.Collect(list.Iter()))
			assert.ContainsExactly(t, expected, list.ToSlice())
		})

		s.Test("empty list yields nothing", func(t *testcase.T) {
			list := make(t)
			assert.Equal(t, 0, list.Len())
			assert.Empty(t, iterkit.Collect(list.Iter()))
			assert.Empty(t, list.ToSlice())
		})

		s.Test("iteration stops when the consumer breaks", func(t *testcase.T) {
			list := make(t)
			list.Append(random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeT(t) })...)

			var n int
			for range list.Iter() {
				n++
				break
			}
			assert.Equal(t, 1, n)
		})
	}
}

// OrderedList is a List that keeps the order in which the values were appended.
func OrderedList[T any](make func(tb testing.TB) datastruct.List[T], c ListConfig[T]) func(s *testcase.Spec) {
	return func(s *testcase.Spec) {
		List(make, c)(s)

		s.Test("ordered", func(t *testcase.T) {
			var (
				list         = make(t)
				expected []T = random.Slice(t.Random.IntBetween(3, 7), func() T { return c.makeT(t) })
			)
			list.Append(expected...)
			assert.Equal(t, expected, list.ToSlice())
			assert.Equal(t, expected, iterkit.Collect(list.Iter()))
		})
	}
}
