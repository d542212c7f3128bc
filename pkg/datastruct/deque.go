package datastruct

import "iter"

const dequeMinCapacity = 8

// Deque is a double-ended queue backed by a growable ring buffer.
// Pushing and popping at both ends is amortised O(1), and elements can be accessed by index.
type Deque[T any] struct {
	buf    []T
	head   int
	length int
}

func (d *Deque[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if d == nil {
			return
		}
		for i := 0; i < d.length; i++ {
			if !yield(d.buf[d.index(i)]) {
				return
			}
		}
	}
}

func (d *Deque[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.length
}

func (d *Deque[T]) PushBack(vs ...T) {
	for _, v := range vs {
		d.grow()
		d.buf[d.index(d.length)] = v
		d.length++
	}
}

// PushFront pushes the values to the front one by one,
// so they end up in reverse argument order.
func (d *Deque[T]) PushFront(vs ...T) {
	for _, v := range vs {
		d.grow()
		d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
		d.buf[d.head] = v
		d.length++
	}
}

func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.index(1)
	d.length--
	return v, true
}

func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	i := d.index(d.length - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.length--
	return v, true
}

func (d *Deque[T]) Front() (T, bool) { return d.Lookup(0) }

func (d *Deque[T]) Back() (T, bool) { return d.Lookup(d.Len() - 1) }

// Lookup gives random access to the elements, counting from the front.
func (d *Deque[T]) Lookup(index int) (T, bool) {
	if index < 0 || d.Len() <= index {
		var zero T
		return zero, false
	}
	return d.buf[d.index(index)], true
}

func (d *Deque[T]) ToSlice() []T {
	var vs []T
	for v := range d.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (d *Deque[T]) index(offset int) int {
	return (d.head + offset) % len(d.buf)
}

func (d *Deque[T]) grow() {
	if d.length < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size < dequeMinCapacity {
		size = dequeMinCapacity
	}
	buf := make([]T, size)
	for i := 0; i < d.length; i++ {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}
