package datastruct

import (
	"iter"
	"slices"
)

// Stack is a LIFO container backed by a slice.
type Stack[T any] []T

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

// Push a new value onto the stack
func (s *Stack[T]) Push(vs ...T) {
	*s = append(*s, vs...)
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	index := len(*s) - 1
	element := (*s)[index]
	*s = (*s)[:index]
	return element, true
}

// Last returns the top element of the stack without removing it.
func (s *Stack[T]) Last() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	return (*s)[(len(*s) - 1)], true
}

func (s *Stack[T]) Len() int { return len(*s) }

// Iter yields the elements in the order Pop would return them, without removing them.
func (s *Stack[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(*s) {
			if !yield(v) {
				return
			}
		}
	}
}

// Queue is a FIFO container backed by a LinkedList.
type Queue[T any] struct {
	list LinkedList[T]
}

// Push adds values to the back of the queue.
func (q *Queue[T]) Push(vs ...T) {
	q.list.Append(vs...)
}

// Pop removes and returns the front element. Return false if queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	return q.list.Shift()
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, bool) {
	return q.list.First()
}

// Back returns the most recently pushed element.
func (q *Queue[T]) Back() (T, bool) {
	return q.list.Last()
}

func (q *Queue[T]) IsEmpty() bool { return q.list.Len() == 0 }

func (q *Queue[T]) Len() int { return q.list.Len() }

// Iter yields the elements in the order Pop would return them, without removing them.
func (q *Queue[T]) Iter() iter.Seq[T] {
	return q.list.Iter()
}
