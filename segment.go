package aoc

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Segment is an axis-aligned run of coordinates between two inclusive
// endpoints. Start is always the lexicographically smaller endpoint.
type Segment[T constraints.Signed] struct {
	start, end Coord[T]
	axis       int // varying axis; -1 when start == end
}

type LineSegment = Segment[int]

// NewSegment returns the segment between a and b, which must have the
// same dimension and differ on at most one axis. Diagonal segments
// are not supported.
func NewSegment[T constraints.Signed](a, b Coord[T]) (Segment[T], error) {
	if a.n == 0 || a.n != b.n {
		return Segment[T]{}, errors.Wrapf(ErrDimension, "segment %v -> %v", a, b)
	}
	axis := -1
	for i := 0; i < a.n; i++ {
		if a.v[i] == b.v[i] {
			continue
		}
		if axis >= 0 {
			return Segment[T]{}, errors.Wrapf(ErrNotAxisAligned, "segment %v -> %v", a, b)
		}
		axis = i
	}
	if Compare(a, b) > 0 {
		a, b = b, a
	}
	return Segment[T]{start: a, end: b, axis: axis}, nil
}

// MustSegment is like NewSegment but panics on error.
func MustSegment[T constraints.Signed](a, b Coord[T]) Segment[T] {
	return MustGet(NewSegment(a, b))
}

// ParsePath parses a path such as "498,4 -> 498,6 -> 496,6" into the
// segments joining consecutive points. A path of a single point is a
// single-point segment.
func ParsePath(s string) ([]LineSegment, error) {
	var pts []Coordinate
	for _, f := range strings.Split(s, "->") {
		c, err := ParseCoord(f)
		if err != nil {
			return nil, errors.Wrapf(err, "path %q", s)
		}
		pts = append(pts, c)
	}
	if len(pts) == 1 {
		pts = append(pts, pts[0])
	}
	segs := make([]LineSegment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		seg, err := NewSegment(pts[i-1], pts[i])
		if err != nil {
			return nil, errors.Wrapf(err, "path %q", s)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func (s Segment[T]) Start() Coord[T] { return s.start }
func (s Segment[T]) End() Coord[T]   { return s.end }

// Axis returns the index of the axis the segment runs along, or -1 for
// a single-point segment.
func (s Segment[T]) Axis() int { return s.axis }

// Len returns the number of coordinates on the segment.
func (s Segment[T]) Len() int {
	if s.axis < 0 {
		return 1
	}
	return int(int64(s.end.v[s.axis])-int64(s.start.v[s.axis])) + 1
}

func (s Segment[T]) String() string {
	return s.start.String() + " -> " + s.end.String()
}

// Intersect reports whether p lies on the segment.
func (s Segment[T]) Intersect(p Coord[T]) bool {
	return s.start.AllLessEq(p) && p.AllLessEq(s.end)
}

// ForPoints calls f for each coordinate from start to end inclusive,
// stopping early if f returns false.
func (s Segment[T]) ForPoints(f func(Coord[T]) (keepGoing bool)) {
	p := s.start
	for {
		if !f(p) || p == s.end {
			return
		}
		p.v[s.axis]++
	}
}

// Points returns every coordinate on the segment, start first.
func (s Segment[T]) Points() []Coord[T] {
	pts := make([]Coord[T], 0, s.Len())
	s.ForPoints(func(p Coord[T]) bool {
		pts = append(pts, p)
		return true
	})
	return pts
}

// Merge returns the segment spanning s and o when the two are
// collinear and overlap or touch end to end. Otherwise it returns s
// and false.
func (s Segment[T]) Merge(o Segment[T]) (Segment[T], bool) {
	s.start.mustMatch("merge", o.start)
	axis := s.axis
	if axis < 0 {
		axis = o.axis
	}
	if axis < 0 {
		// Two points can only line up along the first axis they differ on.
		axis = 0
		for i := 0; i < s.start.n; i++ {
			if s.start.v[i] != o.start.v[i] {
				axis = i
				break
			}
		}
	}
	if o.axis >= 0 && o.axis != axis {
		return s, false
	}
	for i := 0; i < s.start.n; i++ {
		if i != axis && s.start.v[i] != o.start.v[i] {
			return s, false
		}
	}
	lo1, hi1 := s.start.v[axis], s.end.v[axis]
	lo2, hi2 := o.start.v[axis], o.end.v[axis]
	if gapped(hi1, lo2) || gapped(hi2, lo1) {
		return s, false
	}
	m := Segment[T]{
		start: s.start.with(axis, min(lo1, lo2)),
		end:   s.start.with(axis, max(hi1, hi2)),
		axis:  axis,
	}
	if m.start == m.end {
		m.axis = -1
	}
	return m, true
}

// gapped reports whether at least one cell separates a range ending at
// hi from one starting at lo.
func gapped[T constraints.Signed](hi, lo T) bool {
	return int64(lo)-int64(hi) > 1
}

// MergeAll merges segments until no two of them can be merged. The
// result is sorted by start coordinate.
func MergeAll[T constraints.Signed](segs []Segment[T]) []Segment[T] {
	out := slices.Clone(segs)
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); {
				m, ok := out[i].Merge(out[j])
				if !ok {
					j++
					continue
				}
				out[i] = m
				out = slices.Delete(out, j, j+1)
				merged = true
			}
		}
	}
	slices.SortFunc(out, func(a, b Segment[T]) int {
		if c := Compare(a.start, b.start); c != 0 {
			return c
		}
		return Compare(a.end, b.end)
	})
	return out
}
