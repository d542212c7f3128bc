package datastruct

import (
	"iter"
	"slices"
)

// Slice is the dynamic array of the showcase.
// It is a plain []T with the container methods on top,
// so conversion between the two is free.
type Slice[T any] []T

var _ List[any] = (*Slice[any])(nil)

func (s *Slice[T]) Append(vs ...T) {
	*s = append(*s, vs...)
}

func (s Slice[T]) Iter() iter.Seq[T] {
	return slices.Values(s)
}

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) ToSlice() []T {
	return slices.Clone([]T(s))
}

// Lookup gives random access to the elements.
func (s Slice[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(s) <= index {
		var zero T
		return zero, false
	}
	return s[index], true
}
