package datastruct

import "iter"

// ForwardList is a singly linked list.
// Insertion and removal are O(1) at the front and after a known element,
// but it can only be traversed from front to back.
type ForwardList[T any] struct {
	head   *flElem[T]
	length int
}

type flElem[T any] struct {
	data T
	next *flElem[T]
}

func (fl *ForwardList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if fl == nil {
			return
		}
		for current := fl.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

// PushFront adds elements to the front of the list, keeping their argument order.
//
//	fl.PushFront(1, 2, 3) // 1 -> 2 -> 3 -> (previous front)
func (fl *ForwardList[T]) PushFront(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		fl.head = &flElem[T]{data: vs[i], next: fl.head}
		fl.length++
	}
}

func (fl *ForwardList[T]) PopFront() (T, bool) {
	if fl.head == nil {
		var zero T
		return zero, false
	}
	first := fl.head
	fl.head = first.next
	fl.length--
	return first.data, true
}

func (fl *ForwardList[T]) Front() (T, bool) {
	if fl == nil || fl.head == nil {
		var zero T
		return zero, false
	}
	return fl.head.data, true
}

// InsertAfter links v right after the element at the given index.
func (fl *ForwardList[T]) InsertAfter(index int, v T) bool {
	if index < 0 || fl.Len() <= index {
		return false
	}
	current := fl.head
	for i := 0; i < index; i++ {
		current = current.next
	}
	current.next = &flElem[T]{data: v, next: current.next}
	fl.length++
	return true
}

func (fl *ForwardList[T]) Len() int {
	if fl == nil {
		return 0
	}
	return fl.length
}

func (fl *ForwardList[T]) ToSlice() []T {
	var vs []T
	for v := range fl.Iter() {
		vs = append(vs, v)
	}
	return vs
}
