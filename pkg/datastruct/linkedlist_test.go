package datastruct_test

import (
	"slices"
	"testing"

	"go.llib.dev/containershowcase/pkg/datastruct"
	"go.llib.dev/containershowcase/pkg/datastruct/datastructcontract"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func ExampleLinkedList() {
	var ll datastruct.LinkedList[int]
	ll.Append(3, 7, 2, 9, 5)
	ll.Prepend(1)
	ll.ToSlice() // []int{1, 3, 7, 2, 9, 5}
	ll.Shift()   // 1, true
	ll.Pop()     // 5, true
}

func TestLinkedList(t *testing.T) {
	s := testcase.NewSpec(t)

	ll := let.Var(s, func(t *testcase.T) *datastruct.LinkedList[int] {
		return &datastruct.LinkedList[int]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		var ll datastruct.LinkedList[int]

		ll.Append(1, 2, 3)
		ll.Append(4)
		ll.Prepend(-1, 0)
		assert.Equal(t, []int{-1, 0, 1, 2, 3, 4}, ll.ToSlice())

		last, ok := ll.Pop()
		assert.True(t, ok)
		assert.Equal(t, 4, last)

		var popped []int
		for {
			last, ok := ll.Pop()
			if !ok {
				break
			}
			popped = append(popped, last)
		}

		assert.Equal(t, []int{3, 2, 1, 0, -1}, popped)

		ll.Append(1, 2, 3)
		ll.Prepend(0)
		assert.Equal(t, []int{0, 1, 2, 3}, ll.ToSlice())

		var shifted []int
		for {
			first, ok := ll.Shift()
			if !ok {
				break
			}
			shifted = append(shifted, first)
		}
		assert.Equal(t, []int{0, 1, 2, 3}, shifted)

		ll.Prepend(0, 1)
		ll.Append(2, 3)
		assert.Equal(t, 4, ll.Len())
		assert.Equal(t, []int{0, 1, 2, 3}, ll.ToSlice())
		assert.Equal(t, []int{3, 2, 1, 0}, iterkit.Collect(ll.Backward()))
	})

	s.Test("nil list is empty", func(t *testcase.T) {
		var ll *datastruct.LinkedList[int]
		assert.Equal(t, 0, ll.Len())
		assert.Empty(t, iterkit.Collect(ll.Iter()))
		assert.Empty(t, iterkit.Collect(ll.Backward()))
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		var (
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Append(newVS.Get(t)...)
		})

		s.Then("value is appended to the list", func(t *testcase.T) {
			act(t)

			assert.Equal(t, newVS.Get(t), ll.Get(t).ToSlice())
		})

		s.When("no new value is provided", func(s *testcase.Spec) {
			newVS.LetValue(s, nil)

			s.Then("nothing changes", func(t *testcase.T) {
				bl := ll.Get(t).Len()
				act(t)
				al := ll.Get(t).Len()
				assert.Equal(t, bl, al)
			})
		})

		s.When("elements were already present in the list", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				ll.Get(t).Append(existing.Get(t)...)
			})

			s.Then("the new value will be appended at the end", func(t *testcase.T) {
				act(t)

				expVS := slices.Concat(existing.Get(t), newVS.Get(t))
				assert.Equal(t, expVS, ll.Get(t).ToSlice())
			})

			s.Then("length is updated", func(t *testcase.T) {
				act(t)

				expLen := len(newVS.Get(t)) + len(existing.Get(t))
				assert.Equal(t, expLen, ll.Get(t).Len())
			})
		})
	})

	s.Describe("#Prepend", func(s *testcase.Spec) {
		var (
			newVS = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
			})
		)
		act := let.Act0(func(t *testcase.T) {
			ll.Get(t).Prepend(newVS.Get(t)...)
		})

		s.Then("value is added to the list", func(t *testcase.T) {
			act(t)

			assert.Equal(t, newVS.Get(t), ll.Get(t).ToSlice())
		})

		s.When("elements were already present in the list", func(s *testcase.Spec) {
			existing := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				ll.Get(t).Append(existing.Get(t)...)
			})

			s.Then("the new value will be added at the beginning", func(t *testcase.T) {
				act(t)

				expVS := slices.Concat(newVS.Get(t), existing.Get(t))
				assert.Equal(t, expVS, ll.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#Pop", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return ll.Get(t).Pop()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("result signals that the list has no more elements to be popped", func(t *testcase.T) {
				gotVal, gotFlag := act(t)
				assert.Equal(t, 0, gotVal)
				assert.False(t, gotFlag)
			})
		})

		s.When("list has element(s)", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				ll.Get(t).Append(values.Get(t)...)
			})

			s.Then("the last element is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[len(values.Get(t))-1], got)
			})

			s.Then("remaining slice matches expected", func(t *testcase.T) {
				act(t)

				expVS := values.Get(t)[:len(values.Get(t))-1]
				assert.Equal(t, expVS, ll.Get(t).ToSlice())
				assert.Equal(t, len(expVS), ll.Get(t).Len())
			})
		})
	})

	s.Describe("#Shift", func(s *testcase.Spec) {
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return ll.Get(t).Shift()
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("result signals that the list has no more elements to be shifted", func(t *testcase.T) {
				gotVal, gotFlag := act(t)
				assert.Equal(t, 0, gotVal)
				assert.False(t, gotFlag)
			})
		})

		s.When("list has element(s)", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 5), t.Random.Int)
			})

			s.Before(func(t *testcase.T) {
				ll.Get(t).Append(values.Get(t)...)
			})

			s.Then("the first element is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[0], got)
			})

			s.Then("remaining slice matches expected", func(t *testcase.T) {
				act(t)

				assert.Equal(t, values.Get(t)[1:], ll.Get(t).ToSlice())
			})
		})
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		var (
			index = let.VarOf(s, 0)
		)
		act := let.Act2(func(t *testcase.T) (int, bool) {
			return ll.Get(t).Lookup(index.Get(t))
		})

		s.When("list is empty", func(s *testcase.Spec) {
			s.Then("not found is reported", func(t *testcase.T) {
				v, ok := act(t)
				assert.Empty(t, v)
				assert.False(t, ok)
			})
		})

		s.When("list has elements", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(2, 9), t.Random.Int)
			})

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})

			s.Before(func(t *testcase.T) {
				ll.Get(t).Append(values.Get(t)...)
			})

			s.Then("the expected element is returned", func(t *testcase.T) {
				got, ok := act(t)
				assert.True(t, ok)
				assert.Equal(t, values.Get(t)[index.Get(t)], got)
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(-100, -1)
				})

				s.Then("not found is reported", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})

			s.And("index is out of range", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 10)
				})

				s.Then("not found is reported", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok)
				})
			})
		})
	})

	s.Describe("#Delete", func(s *testcase.Spec) {
		var (
			values = let.Var(s, func(t *testcase.T) []int {
				return random.Slice(t.Random.IntBetween(1, 9), t.Random.Int)
			})
			index = let.Var(s, func(t *testcase.T) int {
				return t.Random.IntN(len(values.Get(t)))
			})
		)
		act := let.Act(func(t *testcase.T) bool {
			return ll.Get(t).Delete(index.Get(t))
		})

		s.Before(func(t *testcase.T) {
			ll.Get(t).Append(values.Get(t)...)
		})

		s.Then("the element at the index is unlinked", func(t *testcase.T) {
			assert.True(t, act(t))

			exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
			assert.Equal(t, exp, iterkit.Collect(ll.Get(t).Iter()))
			assert.Equal(t, len(exp), ll.Get(t).Len())

			var backward = iterkit.Collect(ll.Get(t).Backward())
			slices.Reverse(backward)
			assert.Equal(t, exp, backward, "links in both direction are kept intact")
		})

		s.When("the list holds a single element", func(s *testcase.Spec) {
			values.Let(s, func(t *testcase.T) []int {
				return []int{t.Random.Int()}
			})

			s.Then("the list becomes empty", func(t *testcase.T) {
				assert.True(t, act(t))
				assert.Empty(t, ll.Get(t).ToSlice())
				assert.Equal(t, 0, ll.Get(t).Len())
				assert.Empty(t, iterkit.Collect(ll.Get(t).Backward()))
			})
		})

		s.When("index is out of range", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return len(values.Get(t))
			})

			s.Then("nothing is deleted", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), ll.Get(t).ToSlice())
			})
		})
	})

	s.Context("implements ordered List", datastructcontract.OrderedList(func(tb testing.TB) datastruct.List[int] {
		return &datastruct.LinkedList[int]{}
	}, datastructcontract.ListConfig[int]{
		MakeT: func(tb testing.TB) int { return testcase.ToT(&tb).Random.Int() },
	}))
}
