package datastruct

import (
	"iter"
	"slices"
)

// LinkedList is a doubly linked list.
// Insertion and removal at both ends is O(1), random access is O(n).
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

var _ List[any] = (*LinkedList[any])(nil)

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

// Backward iterates the list from the tail to the head.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for current := ll.tail; current != nil; current = current.prev {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds elements to the beginning of the list, keeping their argument order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for _, v := range slices.Backward(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

// Shift removes and returns the first element.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	}
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

// Pop removes and returns the last element.
func (ll *LinkedList[T]) Pop() (T, bool) {
	var last = ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	var prev = ll.tail.prev
	if prev != nil {
		prev.next = nil
	}
	if prev == nil {
		ll.head = nil
	}
	ll.tail = prev
	ll.length--
	return last.data, true
}

func (ll *LinkedList[T]) First() (T, bool) {
	if ll == nil || ll.head == nil {
		var zero T
		return zero, false
	}
	return ll.head.data, true
}

func (ll *LinkedList[T]) Last() (T, bool) {
	if ll == nil || ll.tail == nil {
		var zero T
		return zero, false
	}
	return ll.tail.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	elem, ok := ll.elemAt(index)
	if !ok {
		var zero T
		return zero, false
	}
	return elem.data, true
}

// Delete unlinks the element at the given index.
func (ll *LinkedList[T]) Delete(index int) bool {
	elem, ok := ll.elemAt(index)
	if !ok {
		return false
	}
	if elem.prev != nil {
		elem.prev.next = elem.next
	} else {
		ll.head = elem.next
	}
	if elem.next != nil {
		elem.next.prev = elem.prev
	} else {
		ll.tail = elem.prev
	}
	ll.length--
	return true
}

func (ll *LinkedList[T]) elemAt(index int) (*llElem[T], bool) {
	if index < 0 || ll.Len() <= index {
		return nil, false
	}
	// walk from the closer end
	if index < ll.length/2 {
		current := ll.head
		for i := 0; i < index; i++ {
			current = current.next
		}
		return current, true
	}
	current := ll.tail
	for i := ll.length - 1; index < i; i-- {
		current = current.prev
	}
	return current, true
}
