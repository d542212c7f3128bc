package showcase

import (
	"context"
	"iter"
	"slices"

	"go.llib.dev/containershowcase/pkg/datastruct"
	"go.llib.dev/containershowcase/pkg/render"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	refBTree = "https://pkg.go.dev/github.com/google/btree"
	refMaps  = "https://go.dev/blog/maps"
)

type person struct {
	Name string
	Age  int
}

var people = []person{{"Alice", 25}, {"Bob", 30}, {"Charlie", 35}}

// multiPeople holds an additional entry for an already present name.
var multiPeople = slices.Concat(people, []person{{"Alice", 40}})

var setInput = []int{1, 2, 3, 2, 4, 5}

// Containers demonstrates every container kind, each with its own fixed dataset.
func Containers(ctx context.Context) []Section {
	var sections []Section
	for _, demo := range containerDemos {
		sec := demo()
		logger.Debug(ctx, "container demonstrated",
			logging.Field("section", sec.Title),
			logging.Field("lines", len(sec.Body)))
		sections = append(sections, sec)
	}
	return sections
}

var containerDemos = []func() Section{
	showSlice,
	showLinkedList,
	showDeque,
	showSortedSet,
	showSortedMultiSet,
	showSortedMap,
	showSortedMultiMap,
	showHashSet,
	showHashMultiSet,
	showHashMap,
	showHashMultiMap,
	showArray,
	showStack,
	showQueue,
	showPriorityQueue,
	showForwardList,
}

func showSlice() Section {
	numbers := datastruct.Slice[int](Numbers())
	return Section{
		Title:     "slice",
		Body:      []string{elements("Slice", render.Sequence[int](&numbers))},
		Advice:    "Use a slice when you need a dynamic array that allows efficient insertion and deletion at the end, and random access to elements.",
		Reference: "https://go.dev/blog/slices-intro",
	}
}

func showLinkedList() Section {
	var list datastruct.LinkedList[int]
	list.Append(3, 7, 2, 9, 5)
	return Section{
		Title:     "linked list",
		Body:      []string{elements("Linked list", render.Sequence[int](&list))},
		Advice:    "Use a linked list when you need efficient insertion and deletion at any position, but random access is not required.",
		Reference: "https://pkg.go.dev/container/list",
	}
}

func showDeque() Section {
	var dq datastruct.Deque[int]
	dq.PushBack(4, 6, 2, 7, 9)
	return Section{
		Title:  "deque",
		Body:   []string{elements("Deque", render.Sequence[int](&dq))},
		Advice: "Use a deque when you need a double-ended queue that allows efficient insertion and deletion at both ends, while indexing stays possible.",
	}
}

func showSortedSet() Section {
	set := datastruct.NewSortedSet(setInput...)
	return Section{
		Title:     "sorted set",
		Body:      []string{elements("Sorted set", render.Sequence[int](set))},
		Advice:    "Use a sorted set when you need unique elements kept in sorted order, with efficient insertion, deletion and searching.",
		Reference: refBTree,
	}
}

func showSortedMultiSet() Section {
	set := datastruct.NewSortedMultiSet(setInput...)
	return Section{
		Title:     "sorted multiset",
		Body:      []string{elements("Sorted multiset", render.Sequence[int](set))},
		Advice:    "Use a sorted multiset when elements may repeat, but they still have to be kept in sorted order.",
		Reference: refBTree,
	}
}

func showSortedMap() Section {
	ages := datastruct.NewSortedMap[string, int]()
	for _, p := range people {
		ages.Set(p.Name, p.Age)
	}
	return Section{
		Title:     "sorted map",
		Body:      []string{elements("Sorted map", render.Mapping[string, int](ages))},
		Advice:    "Use a sorted map when you need key-value pairs kept in sorted order of keys, with efficient insertion, deletion and searching based on keys.",
		Reference: refBTree,
	}
}

func showSortedMultiMap() Section {
	ages := datastruct.NewSortedMultiMap[string, int]()
	for _, p := range multiPeople {
		ages.Add(p.Name, p.Age)
	}
	return Section{
		Title:     "sorted multimap",
		Body:      []string{elements("Sorted multimap", render.Mapping[string, int](ages))},
		Advice:    "Use a sorted multimap when a key may hold several values, and the keys have to be kept in sorted order.",
		Reference: refBTree,
	}
}

func showHashSet() Section {
	set := datastruct.MakeSet(setInput...)
	return Section{
		Title:     "hash set",
		Body:      []string{elements("Hash set", render.Sequence[int](&set))},
		Advice:    "Use a hash set when you need unique elements with fast membership checks, and the order of the elements doesn't matter.",
		Reference: refMaps,
	}
}

func showHashMultiSet() Section {
	set := datastruct.MakeMultiSet(setInput...)
	return Section{
		Title:     "hash multiset",
		Body:      []string{elements("Hash multiset", render.Sequence[int](&set))},
		Advice:    "Use a hash multiset when you need to count occurrences of elements, and their order doesn't matter.",
		Reference: refMaps,
	}
}

func showHashMap() Section {
	ages := datastruct.Map[string, int]{}
	for _, p := range people {
		ages.Set(p.Name, p.Age)
	}
	return Section{
		Title:     "hash map",
		Body:      []string{elements("Hash map", render.Mapping[string, int](ages))},
		Advice:    "Use a hash map when you need fast lookup of values by key, and the order of the keys doesn't matter.",
		Reference: refMaps,
	}
}

func showHashMultiMap() Section {
	ages := datastruct.MultiMap[string, int]{}
	for _, p := range multiPeople {
		ages.Add(p.Name, p.Age)
	}
	return Section{
		Title:     "hash multimap",
		Body:      []string{elements("Hash multimap", render.Mapping[string, int](ages))},
		Advice:    "Use a hash multimap when a key may hold several values, and the order of the keys doesn't matter.",
		Reference: refMaps,
	}
}

func showArray() Section {
	array := [5]int{10, 20, 30, 40, 50}
	view := datastruct.Slice[int](array[:])
	return Section{
		Title:     "array",
		Body:      []string{elements("Array", render.Sequence[int](&view))},
		Advice:    "Use an array when the number of elements is fixed and known at compile time.",
		Reference: "https://go.dev/ref/spec#Array_types",
	}
}

func showStack() Section {
	var stack datastruct.Stack[int]
	for i := 0; i < 5; i++ {
		stack.Push(i)
	}
	return Section{
		Title:  "stack",
		Body:   []string{elements("Stack", render.Seq(drain(stack.Pop)))},
		Advice: "Use a stack when you need a Last-In-First-Out (LIFO) data structure that allows insertion and deletion at the top.",
	}
}

func showQueue() Section {
	var queue datastruct.Queue[int]
	for i := 0; i < 5; i++ {
		queue.Push(i)
	}
	return Section{
		Title:  "queue",
		Body:   []string{elements("Queue", render.Seq(drain(queue.Pop)))},
		Advice: "Use a queue when you need a First-In-First-Out (FIFO) data structure that allows insertion at the back and deletion at the front.",
	}
}

func showPriorityQueue() Section {
	pq := datastruct.NewMaxPriorityQueue(3, 1, 4, 1, 5, 9, 2, 6)
	return Section{
		Title:     "priority queue",
		Body:      []string{elements("Priority queue", render.Seq(drain(pq.Pop)))},
		Advice:    "Use a priority queue when you always need to retrieve the element with the highest priority first.",
		Reference: "https://pkg.go.dev/container/heap",
	}
}

func showForwardList() Section {
	var list datastruct.ForwardList[int]
	list.PushFront(1, 2, 3, 4, 5)
	return Section{
		Title:  "forward list",
		Body:   []string{elements("Forward list", render.Sequence[int](&list))},
		Advice: "Use a forward list when you need a singly linked list that allows efficient insertion after any element, but no backward traversal is possible.",
	}
}

// drain consumes a container through its pop function, yielding the elements in removal order.
func drain[T any](pop func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
