package render_test

import (
	"strings"
	"testing"

	"go.llib.dev/containershowcase/pkg/datastruct"
	"go.llib.dev/containershowcase/pkg/render"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

func ExampleSequence() {
	numbers := datastruct.Slice[int]{5, 2, 8, 4, 1}
	render.Sequence[int](&numbers) // "5 2 8 4 1"
}

func ExampleMapping() {
	ages := datastruct.NewSortedMap[string, int]()
	ages.Set("Bob", 30)
	ages.Set("Alice", 25)
	render.Mapping[string, int](ages) // "{Alice: 25} {Bob: 30}"
}

func TestSequence(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), func() int { return t.Random.IntBetween(-100, 100) })
	})
	act := let.Act(func(t *testcase.T) string {
		var ll datastruct.LinkedList[int]
		ll.Append(values.Get(t)...)
		return render.Sequence[int](&ll)
	})

	s.Then("elements are separated in traversal order", func(t *testcase.T) {
		parts := strings.Split(act(t), render.Separator)
		assert.Equal(t, len(values.Get(t)), len(parts))
		for i, v := range values.Get(t) {
			assert.Equal(t, render.Element(v), parts[i])
		}
	})

	s.When("the container is empty", func(s *testcase.Spec) {
		values.LetValue(s, nil)

		s.Then("empty listing is rendered", func(t *testcase.T) {
			assert.Equal(t, render.EmptyListing, act(t))
		})
	})

	s.Test("fixed dataset", func(t *testcase.T) {
		numbers := datastruct.Slice[int]{5, 2, 8, 4, 1}
		assert.Equal(t, "5 2 8 4 1", render.Sequence[int](&numbers))

		array := [5]int{10, 20, 30, 40, 50}
		view := datastruct.Slice[int](array[:])
		assert.Equal(t, "10 20 30 40 50", render.Sequence[int](&view))
	})

	s.Test("non numeric elements", func(t *testcase.T) {
		words := datastruct.NewSortedSet("foo", "bar", "baz")
		assert.Equal(t, "bar baz foo", render.Sequence[string](words))
	})
}

func TestMapping(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("entries are rendered as {key: value}", func(t *testcase.T) {
		ages := datastruct.NewSortedMap[string, int]()
		ages.Set("Charlie", 35)
		ages.Set("Alice", 25)
		ages.Set("Bob", 30)
		assert.Equal(t, "{Alice: 25} {Bob: 30} {Charlie: 35}", render.Mapping[string, int](ages))
	})

	s.Test("multimap keeps every entry", func(t *testcase.T) {
		ages := datastruct.NewSortedMultiMap[string, int]()
		ages.Add("Bob", 30)
		ages.Add("Alice", 25, 40)
		assert.Equal(t, "{Alice: 25} {Alice: 40} {Bob: 30}", render.Mapping[string, int](ages))
	})

	s.Test("hash map entries are all present", func(t *testcase.T) {
		ages := datastruct.Map[string, int]{"Alice": 25, "Bob": 30}
		got := render.Mapping[string, int](ages)
		assert.Contains(t, got, "{Alice: 25}")
		assert.Contains(t, got, "{Bob: 30}")
		assert.Equal(t, len("{Alice: 25} {Bob: 30}"), len(got))
	})
}

func TestSeq(t *testing.T) {
	assert.Equal(t, render.EmptyListing, render.Seq[int](nil))
	assert.Equal(t, render.EmptyListing, render.Seq2[string, int](nil))

	var stack datastruct.Stack[int]
	stack.Push(0, 1, 2, 3, 4)
	assert.Equal(t, "4 3 2 1 0", render.Seq(stack.Iter()))
}

func TestEmptyContainers(t *testing.T) {
	sequences := map[string]datastruct.Sequenced[int]{
		"slice":           &datastruct.Slice[int]{},
		"linked list":     &datastruct.LinkedList[int]{},
		"forward list":    &datastruct.ForwardList[int]{},
		"deque":           &datastruct.Deque[int]{},
		"sorted set":      datastruct.NewSortedSet[int](),
		"sorted multiset": datastruct.NewSortedMultiSet[int](),
		"hash set":        &datastruct.Set[int]{},
		"hash multiset":   &datastruct.MultiSet[int]{},
		"stack":           &datastruct.Stack[int]{},
		"queue":           &datastruct.Queue[int]{},
		"priority queue":  datastruct.NewMaxPriorityQueue[int](),
	}
	for name, c := range sequences {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, render.EmptyListing, render.Sequence(c))
		})
	}

	mappings := map[string]datastruct.Mapped[string, int]{
		"sorted map":      datastruct.NewSortedMap[string, int](),
		"sorted multimap": datastruct.NewSortedMultiMap[string, int](),
		"hash map":        datastruct.Map[string, int]{},
		"hash multimap":   datastruct.MultiMap[string, int]{},
	}
	for name, c := range mappings {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, render.EmptyListing, render.Mapping(c))
		})
	}
}
