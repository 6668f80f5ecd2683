// Package types holds small generic containers shared across packages.
package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a read-mostly hash set for comparable types.
//
// A Set is populated once through NewSet and then only queried, which makes it
// safe for concurrent readers.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements. Duplicates collapse.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Has reports whether value is a member of the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// SortedSlice returns the members of an ordered set in ascending order.
//
// Useful for logging and for deterministic iteration in tests.
func SortedSlice[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
