// Package datastruct holds the container types of the showcase.
//
// Every container exposes its content through iteration,
// either as a Sequenced value stream or as a Mapped key-value stream,
// so any of them can be rendered without knowing its concrete shape.
package datastruct

import "iter"

// Sequenced is anything that can produce a forward sequence of its elements.
type Sequenced[T any] interface {
	Iter() iter.Seq[T]
}

// Mapped is anything that can produce a forward sequence of key-value pairs.
type Mapped[K, V any] interface {
	Iter() iter.Seq2[K, V]
}

type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Sequenced[T]
	Sizer
}

// KVS stands for Key Value Store, and a common interface for map[K]V like types with unique keys.
type KVS[K comparable, V any] interface {
	Lookup(key K) (V, bool)
	Get(key K) V
	Set(key K, val V)
	Delete(key K)
	Keys() []K
	ToMap() map[K]V
	Mapped[K, V]
	Sizer
}

// MultiKVS is a key value store where a key may hold more than one value.
type MultiKVS[K comparable, V any] interface {
	Add(key K, vs ...V)
	Lookup(key K) ([]V, bool)
	Delete(key K)
	Mapped[K, V]
	Sizer
}

type Sizer interface {
	Len() int
}
