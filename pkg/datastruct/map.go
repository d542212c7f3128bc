package datastruct

import (
	"iter"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Map is a hash based key value store with unique keys.
// Its iteration order is unspecified.
type Map[K comparable, V any] map[K]V

var _ KVS[any, any] = (*Map[any, any])(nil)

func (m Map[K, V]) Lookup(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m *Map[K, V]) Set(key K, val V) {
	if *m == nil {
		*m = make(Map[K, V])
	}
	(*m)[key] = val
}

func (m Map[K, V]) Delete(key K) { delete(m, key) }

func (m Map[K, V]) Len() int { return len(m) }

func (m Map[K, V]) Keys() []K {
	return lo.Keys(map[K]V(m))
}

func (m Map[K, V]) ToMap() map[K]V {
	return m
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return maps.All(m)
}

// MultiMap is a hash based key value store where a key can hold multiple values.
// Keys come in unspecified order, the values of a key in the order they were added.
type MultiMap[K comparable, V any] map[K][]V

var _ MultiKVS[string, any] = (*MultiMap[string, any])(nil)

func (m *MultiMap[K, V]) Add(key K, vs ...V) {
	if *m == nil {
		*m = make(MultiMap[K, V])
	}
	(*m)[key] = append((*m)[key], vs...)
}

func (m MultiMap[K, V]) Lookup(key K) ([]V, bool) {
	vs, ok := m[key]
	return slices.Clone(vs), ok
}

func (m MultiMap[K, V]) Delete(key K) { delete(m, key) }

// Count tells how many values are stored under the key.
func (m MultiMap[K, V]) Count(key K) int {
	return len(m[key])
}

// Len is the number of key-value entries, not the number of distinct keys.
func (m MultiMap[K, V]) Len() int {
	var n int
	for _, vs := range m {
		n += len(vs)
	}
	return n
}

func (m MultiMap[K, V]) Keys() []K {
	return lo.Keys(map[K][]V(m))
}

func (m MultiMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, vs := range m {
			for _, v := range vs {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
