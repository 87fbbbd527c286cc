package aoc

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// cardinal holds the steps of DirLeft, DirUp, DirRight and DirDown on
// a (row, column) grid. Read through Cardinal and Direction.Step only.
var cardinal = [4]Coordinate{C(0, -1), C(-1, 0), C(0, 1), C(1, 0)}

// Cardinal returns the left, up, right and down steps, in that order.
func Cardinal() []Coordinate {
	steps := cardinal
	return steps[:]
}

// UnitSteps returns the 2*dim single-axis unit vectors: +1 then -1
// along each axis in turn.
func UnitSteps[T constraints.Signed](dim int) []Coord[T] {
	if dim < 1 || dim > MaxDims {
		panic(fmt.Sprintf("unit steps: unsupported dimension %d", dim))
	}
	steps := make([]Coord[T], 0, 2*dim)
	for i := 0; i < dim; i++ {
		s := Coord[T]{n: dim}
		s.v[i] = 1
		steps = append(steps, s)
		s.v[i] = -1
		steps = append(steps, s)
	}
	return steps
}

// Direction names one of the cardinal steps.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// ParseDirection accepts the letters L, U, R and D.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L":
		return DirLeft, nil
	case "U":
		return DirUp, nil
	case "R":
		return DirRight, nil
	case "D":
		return DirDown, nil
	}
	return 0, errors.Wrapf(ErrFormat, "direction %q", s)
}

func (d Direction) Step() Coordinate {
	if d < DirLeft || d > DirDown {
		panic(fmt.Sprintf("bad direction %d", int(d)))
	}
	return cardinal[d]
}

// Turn returns the direction a quarter turn clockwise (right) or
// counterclockwise from d.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "L"
	case DirUp:
		return "U"
	case DirRight:
		return "R"
	case DirDown:
		return "D"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
