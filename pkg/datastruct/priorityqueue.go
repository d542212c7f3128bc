package datastruct

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// PriorityQueue only gives access to its highest priority element.
// Priority is defined by a LessFunc, where the greatest element comes out first.
// Elements with equal priority are popped in the order they were pushed.
type PriorityQueue[T any] struct {
	tree *btree.BTreeG[seqEntry[T]]
	seq  uint64
}

// NewMaxPriorityQueue makes a PriorityQueue that pops the largest value first.
func NewMaxPriorityQueue[T cmp.Ordered](vs ...T) *PriorityQueue[T] {
	return NewPriorityQueue[T](ascending[T], vs...)
}

// NewMinPriorityQueue makes a PriorityQueue that pops the smallest value first.
func NewMinPriorityQueue[T cmp.Ordered](vs ...T) *PriorityQueue[T] {
	return NewPriorityQueue[T](func(a, b T) bool { return cmp.Less(b, a) }, vs...)
}

func NewPriorityQueue[T any](less LessFunc[T], vs ...T) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{
		tree: btree.NewG[seqEntry[T]](btreeDegree, func(a, b seqEntry[T]) bool {
			if less(a.value, b.value) {
				return true
			}
			if less(b.value, a.value) {
				return false
			}
			// among equals the earlier pushed one counts as greater
			return b.seq < a.seq
		}),
	}
	pq.Push(vs...)
	return pq
}

func (pq *PriorityQueue[T]) Push(vs ...T) {
	for _, v := range vs {
		pq.seq++
		pq.tree.ReplaceOrInsert(seqEntry[T]{value: v, seq: pq.seq})
	}
}

// Pop removes and returns the highest priority element.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	e, ok := pq.tree.DeleteMax()
	return e.value, ok
}

// Peek returns the highest priority element without removing it.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	e, ok := pq.tree.Max()
	return e.value, ok
}

func (pq *PriorityQueue[T]) IsEmpty() bool { return pq.Len() == 0 }

func (pq *PriorityQueue[T]) Len() int { return pq.tree.Len() }

// Iter yields the elements in the order Pop would return them, without removing them.
func (pq *PriorityQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		pq.tree.Descend(func(e seqEntry[T]) bool {
			return yield(e.value)
		})
	}
}
