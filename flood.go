package aoc

import "golang.org/x/exp/constraints"

// FloodFill returns every coordinate reachable from start by single
// axis unit steps without leaving the coordinates accepted by valid.
//
// The start itself must be valid; if it is not, the result is empty.
func FloodFill[T constraints.Signed](start Coord[T], valid func(Coord[T]) bool) Set[T] {
	seen := Set[T]{}
	if !valid(start) {
		return seen
	}
	seen.Add(start)
	expand(start, func(_, to Coord[T]) bool {
		return valid(to) && seen.Add(to)
	}, func([]Coord[T]) bool { return true })
	return seen
}

// Distances runs a breadth-first search from start and returns the
// number of steps to each reached coordinate. canStep decides whether
// a single unit step from one coordinate to its neighbor is allowed.
func Distances[T constraints.Signed](start Coord[T], canStep func(from, to Coord[T]) bool) map[Coord[T]]int {
	dist := map[Coord[T]]int{start: 0}
	expand(start, func(from, to Coord[T]) bool {
		if _, ok := dist[to]; ok || !canStep(from, to) {
			return false
		}
		dist[to] = dist[from] + 1
		return true
	}, func([]Coord[T]) bool { return true })
	return dist
}

// ShortestPath returns the fewest steps from start to any coordinate
// for which done reports true. It reports false if none is reachable.
func ShortestPath[T constraints.Signed](start Coord[T], done func(Coord[T]) bool, canStep func(from, to Coord[T]) bool) (steps int, ok bool) {
	if done(start) {
		return 0, true
	}
	seen := Set[T]{start: {}}
	expand(start, func(from, to Coord[T]) bool {
		return !seen.Has(to) && canStep(from, to) && seen.Add(to)
	}, func(frontier []Coord[T]) bool {
		steps++
		for _, c := range frontier {
			if done(c) {
				ok = true
				return false
			}
		}
		return true
	})
	if !ok {
		return 0, false
	}
	return steps, true
}

// expand grows a breadth-first frontier from start one round at a
// time. visit is called for each candidate neighbor of the current
// frontier and returns true to add it to the next one. After each
// round, onRound is called with the new frontier; returning false
// stops the search. The search also stops when a round is empty.
func expand[T constraints.Signed](start Coord[T], visit func(from, to Coord[T]) bool, onRound func(frontier []Coord[T]) bool) {
	steps := UnitSteps[T](start.Dim())
	frontier := []Coord[T]{start}
	for len(frontier) > 0 {
		var next []Coord[T]
		for _, from := range frontier {
			for _, s := range steps {
				if to := from.Add(s); visit(from, to) {
					next = append(next, to)
				}
			}
		}
		if len(next) == 0 || !onRound(next) {
			return
		}
		frontier = next
	}
}
