package set

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set provides a wrapper around a map[T]struct{}. The zero value is an empty set.
type Set[T comparable] struct {
	values map[T]struct{}
}

// Insert adds value to the set and reports whether it was not yet present.
func (s *Set[T]) Insert(value T) bool {
	if s.values == nil {
		s.values = make(map[T]struct{})
	}

	if _, exists := s.values[value]; exists {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

func (s *Set[T]) Values() iter.Seq[T] {
	return maps.Keys(s.values)
}

// Sorted returns the values of s in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	values := slices.Sorted(s.Values())
	if values == nil {
		return []T{}
	}

	return values
}
