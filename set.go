package aoc

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Set is a set of coordinates.
type Set[T constraints.Signed] map[Coord[T]]struct{}

// NewSet returns a set holding coords.
func NewSet[T constraints.Signed](coords ...Coord[T]) Set[T] {
	s := make(Set[T], len(coords))
	for _, c := range coords {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was not already present.
func (s Set[T]) Add(c Coord[T]) bool {
	if _, ok := s[c]; ok {
		return false
	}
	s[c] = struct{}{}
	return true
}

func (s Set[T]) Has(c Coord[T]) bool {
	_, ok := s[c]
	return ok
}

func (s Set[T]) Len() int { return len(s) }

// Slice returns the members of s in Compare order.
func (s Set[T]) Slice() []Coord[T] {
	out := maps.Keys(s)
	slices.SortFunc(out, Compare[T])
	return out
}
