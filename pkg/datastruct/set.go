package datastruct

import (
	"iter"
	"maps"
)

func MakeSet[T comparable](vs ...T) Set[T] {
	var set Set[T]
	set.Append(vs...)
	return set
}

// Set is a hash based set of unique values.
// Its iteration order is unspecified.
type Set[T comparable] struct {
	vs map[T]struct{}
}

var _ List[any] = (*Set[any])(nil)

func (s *Set[T]) Add(v T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	s.vs[v] = struct{}{}
}

func (s *Set[T]) Append(vs ...T) {
	for _, v := range vs {
		s.Add(v)
	}
}

func (s Set[T]) FromSlice(vs []T) Set[T] {
	s.vs = maps.Clone(s.vs)
	s.Append(vs...)
	return s
}

func (s Set[T]) Has(v T) bool {
	if s.vs == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

func (s *Set[T]) Delete(v T) {
	delete(s.vs, v)
}

func (s Set[T]) Len() int { return len(s.vs) }

func (s Set[T]) Iter() iter.Seq[T] {
	return maps.Keys(s.vs)
}

func (s Set[T]) ToSlice() []T {
	var out []T
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

func MakeMultiSet[T comparable](vs ...T) MultiSet[T] {
	var set MultiSet[T]
	set.Append(vs...)
	return set
}

// MultiSet is a hash based bag, which keeps every occurrence of a value.
// Its iteration order is unspecified, but equal values are yielded next to each other.
type MultiSet[T comparable] struct {
	counts map[T]int
	length int
}

var _ List[any] = (*MultiSet[any])(nil)

func (s *MultiSet[T]) Add(v T) {
	if s.counts == nil {
		s.counts = make(map[T]int)
	}
	s.counts[v]++
	s.length++
}

func (s *MultiSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.Add(v)
	}
}

// Count tells how many times v occurs in the set.
func (s MultiSet[T]) Count(v T) int {
	return s.counts[v]
}

func (s MultiSet[T]) Has(v T) bool {
	return 0 < s.Count(v)
}

// Delete removes a single occurrence of v.
func (s *MultiSet[T]) Delete(v T) bool {
	n, ok := s.counts[v]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(s.counts, v)
	} else {
		s.counts[v] = n - 1
	}
	s.length--
	return true
}

func (s MultiSet[T]) Len() int { return s.length }

func (s MultiSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, n := range s.counts {
			for range n {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func (s MultiSet[T]) ToSlice() []T {
	var out []T
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}
