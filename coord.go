package aoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// MaxDims is the largest supported coordinate dimension.
const MaxDims = 4

// Coord is an immutable integer point with between 1 and MaxDims axes.
//
// Coords are comparable and can be used as map keys. The zero Coord
// has no axes and is not a valid coordinate; build them with NewCoord,
// MustCoord or C.
//
// Binary operations require both operands to have the same dimension
// and panic with a *DimensionError otherwise.
type Coord[T constraints.Signed] struct {
	n int
	v [MaxDims]T
}

type Coordinate = Coord[int]

// NewCoord returns the coordinate with the given axis values.
func NewCoord[T constraints.Signed](vals ...T) (Coord[T], error) {
	if len(vals) == 0 || len(vals) > MaxDims {
		return Coord[T]{}, errors.Wrapf(ErrDimension, "coordinate with %d axes", len(vals))
	}
	c := Coord[T]{n: len(vals)}
	copy(c.v[:], vals)
	return c, nil
}

// MustCoord is like NewCoord but panics on error.
func MustCoord[T constraints.Signed](vals ...T) Coord[T] {
	return MustGet(NewCoord(vals...))
}

// C is shorthand for MustCoord with int axes.
func C(vals ...int) Coordinate { return MustCoord(vals...) }

// ParseCoord parses comma separated integers such as "2,-3,5".
func ParseCoord(s string) (Coordinate, error) {
	fields := strings.Split(s, ",")
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Coordinate{}, errors.Wrapf(ErrFormat, "coordinate %q: field %q", s, f)
		}
		vals = append(vals, n)
	}
	return NewCoord(vals...)
}

func (c Coord[T]) Dim() int { return c.n }

// At returns the value of axis i.
func (c Coord[T]) At(i int) T {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("axis %d out of range for %d-d coordinate", i, c.n))
	}
	return c.v[i]
}

// Values returns a copy of the axis values.
func (c Coord[T]) Values() []T {
	return append([]T(nil), c.v[:c.n]...)
}

func (c Coord[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < c.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(c.v[i]), 10))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c Coord[T]) mustMatch(op string, o Coord[T]) {
	if c.n != o.n {
		panic(&DimensionError{Op: op, Want: c.n, Got: o.n})
	}
}

// with returns c with axis i set to v.
func (c Coord[T]) with(i int, v T) Coord[T] {
	c.v[i] = v
	return c
}

func (c Coord[T]) Add(o Coord[T]) Coord[T] {
	c.mustMatch("add", o)
	for i := 0; i < c.n; i++ {
		c.v[i] += o.v[i]
	}
	return c
}

func (c Coord[T]) Sub(o Coord[T]) Coord[T] {
	c.mustMatch("sub", o)
	for i := 0; i < c.n; i++ {
		c.v[i] -= o.v[i]
	}
	return c
}

// Scale multiplies every axis by k.
func (c Coord[T]) Scale(k T) Coord[T] {
	for i := 0; i < c.n; i++ {
		c.v[i] *= k
	}
	return c
}

func (c Coord[T]) allAxes(op string, o Coord[T], f func(a, b T) bool) bool {
	c.mustMatch(op, o)
	for i := 0; i < c.n; i++ {
		if !f(c.v[i], o.v[i]) {
			return false
		}
	}
	return true
}

// AllLess reports whether c is strictly less than o on every axis.
//
// The All* methods form a partial order: two coordinates that differ
// in mixed directions are neither less nor greater than each other.
// Use Compare for a total order.
func (c Coord[T]) AllLess(o Coord[T]) bool {
	return c.allAxes("less", o, func(a, b T) bool { return a < b })
}

func (c Coord[T]) AllLessEq(o Coord[T]) bool {
	return c.allAxes("less-equal", o, func(a, b T) bool { return a <= b })
}

func (c Coord[T]) AllGreater(o Coord[T]) bool {
	return c.allAxes("greater", o, func(a, b T) bool { return a > b })
}

func (c Coord[T]) AllGreaterEq(o Coord[T]) bool {
	return c.allAxes("greater-equal", o, func(a, b T) bool { return a >= b })
}

// Compare orders coordinates lexicographically by axis. On a tie of
// the shared axes the lower dimension sorts first.
func Compare[T constraints.Signed](a, b Coord[T]) int {
	for i := 0; i < min(a.n, b.n); i++ {
		switch {
		case a.v[i] < b.v[i]:
			return -1
		case a.v[i] > b.v[i]:
			return 1
		}
	}
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	}
	return 0
}

// Distance returns the euclidean distance between c and o.
func (c Coord[T]) Distance(o Coord[T]) float64 {
	c.mustMatch("distance", o)
	var sum float64
	for i := 0; i < c.n; i++ {
		d := float64(c.v[i]) - float64(o.v[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanDistance returns the sum of the absolute axis differences.
func (c Coord[T]) ManhattanDistance(o Coord[T]) T {
	c.mustMatch("manhattan distance", o)
	var sum T
	for i := 0; i < c.n; i++ {
		sum += AbsDiff(c.v[i], o.v[i])
	}
	return sum
}

// IsTouching reports whether c and o are at most one step apart on
// every axis, diagonals included. Identical coordinates only touch
// when overlap is true.
func (c Coord[T]) IsTouching(o Coord[T], overlap bool) bool {
	c.mustMatch("touching", o)
	if !overlap && c == o {
		return false
	}
	for i := 0; i < c.n; i++ {
		if AbsDiff(c.v[i], o.v[i]) > 1 {
			return false
		}
	}
	return true
}

// Toward returns c moved at most one step on every axis toward o.
func (c Coord[T]) Toward(o Coord[T]) Coord[T] {
	c.mustMatch("toward", o)
	for i := 0; i < c.n; i++ {
		c.v[i] += Sign(o.v[i]-c.v[i], 0)
	}
	return c
}

// Neighbors returns the coordinates one unit step away from c along a
// single axis, in UnitSteps order.
func (c Coord[T]) Neighbors() []Coord[T] {
	steps := UnitSteps[T](c.n)
	for i, s := range steps {
		steps[i] = c.Add(s)
	}
	return steps
}

// Bounds returns the per-axis minimum and maximum of coords.
func Bounds[T constraints.Signed](coords []Coord[T]) (lo, hi Coord[T], err error) {
	if len(coords) == 0 {
		return lo, hi, errors.Wrap(ErrEmpty, "bounds of no coordinates")
	}
	lo, hi = coords[0], coords[0]
	for _, c := range coords[1:] {
		if c.n != lo.n {
			return Coord[T]{}, Coord[T]{}, errors.Wrapf(ErrDimension, "bounds: %v and %v", lo, c)
		}
		for i := 0; i < c.n; i++ {
			lo.v[i] = min(lo.v[i], c.v[i])
			hi.v[i] = max(hi.v[i], c.v[i])
		}
	}
	return lo, hi, nil
}
