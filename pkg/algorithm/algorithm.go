// Package algorithm holds the generic sequence algorithms of the showcase.
//
// The functions never modify their input, each returns a fresh result,
// so a sequence can be threaded through them step by step.
package algorithm

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrEmptyInput is returned by algorithms that need at least one element.
const ErrEmptyInput errorkit.Error = "empty input"

// Integer permits any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SortAscending returns a copy of vs in ascending natural order.
func SortAscending[T cmp.Ordered](vs []T) []T {
	out := slices.Clone(vs)
	slices.Sort(out)
	if out == nil {
		out = []T{}
	}
	return out
}

// FindExtremes returns the smallest and largest element of vs.
// An empty vs yields ErrEmptyInput.
func FindExtremes[T cmp.Ordered](vs []T) (lowest, highest T, err error) {
	if len(vs) == 0 {
		return lowest, highest, ErrEmptyInput
	}
	return lo.Min(vs), lo.Max(vs), nil
}

// FindAndRemoveFirst returns vs without the first element equal to v,
// and reports whether such element was found.
// When v is absent, an unchanged copy of vs is returned.
func FindAndRemoveFirst[T comparable](vs []T, v T) ([]T, bool) {
	index := lo.IndexOf(vs, v)
	if index < 0 {
		return slices.Clone(vs), false
	}
	return lo.DropByIndex(vs, index), true
}

// CountEqual tells how many elements of vs equal v.
func CountEqual[T comparable](vs []T, v T) int {
	return lo.Count(vs, v)
}

// MapSquare returns the square of each element, keeping the order.
// A square which doesn't fit into T wraps around.
func MapSquare[T Integer](vs []T) []T {
	return lo.Map(vs, func(v T, _ int) T {
		return v * v
	})
}

// SumAll adds up the elements of vs, starting from zero.
// The sum wraps around when it doesn't fit into T.
func SumAll[T Integer](vs []T) T {
	return lo.Sum(vs)
}
