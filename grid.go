package aoc

import (
	"unicode"

	"golang.org/x/exp/maps"
)

// Grid is a character grid keyed by (row, column), matching the
// orientation of Cardinal. Absent keys are outside the grid.
type Grid map[Coordinate]rune

// GridFromString builds a Grid from lines of text. Whitespace cells
// are left out.
func GridFromString(s string) Grid {
	g := Grid{}
	for y, line := range Lines(s) {
		for x, r := range []rune(line) {
			if unicode.IsSpace(r) {
				continue
			}
			g[C(y, x)] = r
		}
	}
	return g
}

// Has reports whether c is a cell of the grid.
func (g Grid) Has(c Coordinate) bool {
	_, ok := g[c]
	return ok
}

// PosSetWithValue returns the positions holding v.
func (g Grid) PosSetWithValue(v rune) Set[int] {
	s := Set[int]{}
	for p, r := range g {
		if r == v {
			s.Add(p)
		}
	}
	return s
}

// Find returns the first position, in Compare order, holding v.
func (g Grid) Find(v rune) (Coordinate, bool) {
	pos := g.PosSetWithValue(v)
	if pos.Len() == 0 {
		return Coordinate{}, false
	}
	return pos.Slice()[0], true
}

// Bounds returns the smallest and largest row and column in use.
func (g Grid) Bounds() (lo, hi Coordinate, err error) {
	return Bounds(maps.Keys(g))
}
