// Package render turns the contents of a container into a single line of text.
//
// Containers are rendered through their capabilities instead of their concrete type:
// anything that can yield its elements (datastruct.Sequenced) or its key value pairs (datastruct.Mapped)
// renders in its own traversal order.
package render

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/containershowcase/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
)

const (
	// Separator is placed between two rendered elements.
	Separator = " "
	// EmptyListing is the rendering of a container without elements.
	EmptyListing = ""
)

// Sequence renders the elements of c in traversal order.
//
//	render.Sequence[int](&datastruct.Slice[int]{5, 2, 8}) // "5 2 8"
func Sequence[T any](c datastruct.Sequenced[T]) string {
	return Seq(c.Iter())
}

// Mapping renders the entries of c in traversal order, each as {key: value}.
//
//	render.Mapping[string, int](ages) // "{Alice: 25} {Bob: 30}"
func Mapping[K, V any](c datastruct.Mapped[K, V]) string {
	return Seq2(c.Iter())
}

// Seq renders the values of an iterator.
func Seq[T any](seq iter.Seq[T]) string {
	if seq == nil {
		return EmptyListing
	}
	return join(iterkit.Collect(iterkit.Map[string, T](seq, Element[T])))
}

// Seq2 renders the key value pairs of an iterator.
func Seq2[K, V any](seq iter.Seq2[K, V]) string {
	if seq == nil {
		return EmptyListing
	}
	return join(iterkit.Collect2[string, K, V](seq, Entry[K, V]))
}

// Element renders a single element.
func Element[T any](v T) string {
	return fmt.Sprintf("%v", v)
}

// Entry renders a single key value pair.
func Entry[K, V any](key K, value V) string {
	return fmt.Sprintf("{%v: %v}", key, value)
}

func join(parts []string) string {
	if len(parts) == 0 {
		return EmptyListing
	}
	return strings.Join(parts, Separator)
}
