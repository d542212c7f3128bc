package datastruct

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

const btreeDegree = 32

// LessFunc reports whether a sorts before b.
type LessFunc[T any] func(a, b T) bool

func ascending[T cmp.Ordered](a, b T) bool { return cmp.Less(a, b) }

func ascend[T any](tree *btree.BTreeG[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if tree == nil {
			return
		}
		tree.Ascend(func(item T) bool {
			return yield(item)
		})
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// SortedSet holds unique values in ascending order.
type SortedSet[T any] struct {
	tree *btree.BTreeG[T]
}

var _ List[int] = (*SortedSet[int])(nil)

func NewSortedSet[T cmp.Ordered](vs ...T) *SortedSet[T] {
	return NewSortedSetFunc[T](ascending[T], vs...)
}

func NewSortedSetFunc[T any](less LessFunc[T], vs ...T) *SortedSet[T] {
	s := &SortedSet[T]{tree: btree.NewG[T](btreeDegree, btree.LessFunc[T](less))}
	s.Append(vs...)
	return s
}

// Append adds the values not yet present. An already present equal value is kept.
func (s *SortedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		if s.tree.Has(v) {
			continue
		}
		s.tree.ReplaceOrInsert(v)
	}
}

func (s *SortedSet[T]) Has(v T) bool { return s.tree.Has(v) }

func (s *SortedSet[T]) Delete(v T) bool {
	_, ok := s.tree.Delete(v)
	return ok
}

func (s *SortedSet[T]) Min() (T, bool) { return s.tree.Min() }

func (s *SortedSet[T]) Max() (T, bool) { return s.tree.Max() }

func (s *SortedSet[T]) Len() int { return s.tree.Len() }

func (s *SortedSet[T]) Iter() iter.Seq[T] { return ascend(s.tree) }

func (s *SortedSet[T]) ToSlice() []T {
	var out []T
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// SortedMultiSet holds values in ascending order and keeps duplicates.
// Equal values are yielded in the order they were added.
type SortedMultiSet[T any] struct {
	tree *btree.BTreeG[seqEntry[T]]
	less LessFunc[T]
	seq  uint64
}

type seqEntry[T any] struct {
	value T
	seq   uint64
}

var _ List[int] = (*SortedMultiSet[int])(nil)

func NewSortedMultiSet[T cmp.Ordered](vs ...T) *SortedMultiSet[T] {
	return NewSortedMultiSetFunc[T](ascending[T], vs...)
}

func NewSortedMultiSetFunc[T any](less LessFunc[T], vs ...T) *SortedMultiSet[T] {
	s := &SortedMultiSet[T]{
		less: less,
		tree: btree.NewG[seqEntry[T]](btreeDegree, func(a, b seqEntry[T]) bool {
			if less(a.value, b.value) {
				return true
			}
			if less(b.value, a.value) {
				return false
			}
			return a.seq < b.seq
		}),
	}
	s.Append(vs...)
	return s
}

func (s *SortedMultiSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.seq++
		s.tree.ReplaceOrInsert(seqEntry[T]{value: v, seq: s.seq})
	}
}

// equal iterates the entries holding a value equal to v.
func (s *SortedMultiSet[T]) equal(v T) iter.Seq[seqEntry[T]] {
	return func(yield func(seqEntry[T]) bool) {
		s.tree.AscendGreaterOrEqual(seqEntry[T]{value: v}, func(e seqEntry[T]) bool {
			if s.less(v, e.value) {
				return false
			}
			return yield(e)
		})
	}
}

// Count tells how many times v occurs in the set.
func (s *SortedMultiSet[T]) Count(v T) int {
	var n int
	for range s.equal(v) {
		n++
	}
	return n
}

func (s *SortedMultiSet[T]) Has(v T) bool { return 0 < s.Count(v) }

// Delete removes the earliest added occurrence of v.
func (s *SortedMultiSet[T]) Delete(v T) bool {
	var (
		first seqEntry[T]
		found bool
	)
	for e := range s.equal(v) {
		first, found = e, true
		break
	}
	if !found {
		return false
	}
	_, ok := s.tree.Delete(first)
	return ok
}

func (s *SortedMultiSet[T]) Len() int { return s.tree.Len() }

func (s *SortedMultiSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range ascend(s.tree) {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (s *SortedMultiSet[T]) ToSlice() []T {
	var out []T
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// SortedMap is a key value store with unique keys, iterated in ascending key order.
type SortedMap[K comparable, V any] struct {
	tree *btree.BTreeG[kvEntry[K, V]]
}

type kvEntry[K, V any] struct {
	key   K
	value V
	seq   uint64
}

var _ KVS[string, int] = (*SortedMap[string, int])(nil)

func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return NewSortedMapFunc[K, V](ascending[K])
}

func NewSortedMapFunc[K comparable, V any](less LessFunc[K]) *SortedMap[K, V] {
	return &SortedMap[K, V]{
		tree: btree.NewG[kvEntry[K, V]](btreeDegree, func(a, b kvEntry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

func (m *SortedMap[K, V]) Lookup(key K) (V, bool) {
	e, ok := m.tree.Get(kvEntry[K, V]{key: key})
	return e.value, ok
}

func (m *SortedMap[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

func (m *SortedMap[K, V]) Set(key K, val V) {
	m.tree.ReplaceOrInsert(kvEntry[K, V]{key: key, value: val})
}

func (m *SortedMap[K, V]) Delete(key K) {
	m.tree.Delete(kvEntry[K, V]{key: key})
}

func (m *SortedMap[K, V]) Len() int { return m.tree.Len() }

func (m *SortedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.Iter() {
		keys = append(keys, k)
	}
	return keys
}

func (m *SortedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.Iter() {
		out[k] = v
	}
	return out
}

func (m *SortedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range ascend(m.tree) {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// SortedMultiMap is a key value store where a key can hold multiple values.
// Entries are iterated in ascending key order, the values of a key in the order they were added.
type SortedMultiMap[K comparable, V any] struct {
	tree *btree.BTreeG[kvEntry[K, V]]
	less LessFunc[K]
	seq  uint64
}

var _ MultiKVS[string, int] = (*SortedMultiMap[string, int])(nil)

func NewSortedMultiMap[K cmp.Ordered, V any]() *SortedMultiMap[K, V] {
	return NewSortedMultiMapFunc[K, V](ascending[K])
}

func NewSortedMultiMapFunc[K comparable, V any](less LessFunc[K]) *SortedMultiMap[K, V] {
	return &SortedMultiMap[K, V]{
		less: less,
		tree: btree.NewG[kvEntry[K, V]](btreeDegree, func(a, b kvEntry[K, V]) bool {
			if less(a.key, b.key) {
				return true
			}
			if less(b.key, a.key) {
				return false
			}
			return a.seq < b.seq
		}),
	}
}

func (m *SortedMultiMap[K, V]) Add(key K, vs ...V) {
	for _, v := range vs {
		m.seq++
		m.tree.ReplaceOrInsert(kvEntry[K, V]{key: key, value: v, seq: m.seq})
	}
}

func (m *SortedMultiMap[K, V]) entries(key K) []kvEntry[K, V] {
	var out []kvEntry[K, V]
	m.tree.AscendGreaterOrEqual(kvEntry[K, V]{key: key}, func(e kvEntry[K, V]) bool {
		if m.less(key, e.key) {
			return false
		}
		out = append(out, e)
		return true
	})
	return out
}

func (m *SortedMultiMap[K, V]) Lookup(key K) ([]V, bool) {
	es := m.entries(key)
	if len(es) == 0 {
		return nil, false
	}
	vs := make([]V, 0, len(es))
	for _, e := range es {
		vs = append(vs, e.value)
	}
	return vs, true
}

// Count tells how many values are stored under the key.
func (m *SortedMultiMap[K, V]) Count(key K) int {
	return len(m.entries(key))
}

func (m *SortedMultiMap[K, V]) Delete(key K) {
	for _, e := range m.entries(key) {
		m.tree.Delete(e)
	}
}

// Len is the number of key-value entries, not the number of distinct keys.
func (m *SortedMultiMap[K, V]) Len() int { return m.tree.Len() }

// Keys returns the distinct keys in ascending order.
func (m *SortedMultiMap[K, V]) Keys() []K {
	var keys []K
	for k := range m.Iter() {
		if n := len(keys); 0 < n && !m.less(keys[n-1], k) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

func (m *SortedMultiMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range ascend(m.tree) {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
