package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegment(t *testing.T) {
	s, err := NewSegment(C(2, 9), C(2, 5))
	require.NoError(t, err)
	assert.Equal(t, C(2, 5), s.Start())
	assert.Equal(t, C(2, 9), s.End())
	assert.Equal(t, 1, s.Axis())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "(2, 5) -> (2, 9)", s.String())

	_, err = NewSegment(C(0, 0), C(1, 1))
	assert.ErrorIs(t, err, ErrNotAxisAligned)
	_, err = NewSegment(C(0, 0), C(0, 0, 1))
	assert.ErrorIs(t, err, ErrDimension)
	assert.Panics(t, func() { MustSegment(C(0, 0), C(2, 3)) })

	p := MustSegment(C(4, 4), C(4, 4))
	assert.Equal(t, -1, p.Axis())
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, []Coordinate{C(4, 4)}, p.Points())
}

func TestSegmentPoints(t *testing.T) {
	s := MustSegment(C(2, 5), C(2, 9))
	want := []Coordinate{C(2, 5), C(2, 6), C(2, 7), C(2, 8), C(2, 9)}
	assert.Equal(t, want, s.Points())
	assert.Equal(t, want, s.Points(), "iteration must restart")
	for _, p := range want {
		assert.True(t, s.Intersect(p), "point %v", p)
	}
	for _, p := range []Coordinate{C(2, 4), C(2, 10), C(3, 7), C(1, 7)} {
		assert.False(t, s.Intersect(p), "point %v", p)
	}

	var got []Coordinate
	s.ForPoints(func(p Coordinate) bool {
		got = append(got, p)
		return len(got) < 2
	})
	assert.Equal(t, want[:2], got)

	s3 := MustSegment(C(1, 3, 2), C(1, 1, 2))
	assert.Equal(t, []Coordinate{C(1, 1, 2), C(1, 2, 2), C(1, 3, 2)}, s3.Points())

	dimensionPanic(t, func() { s.Intersect(C(2, 5, 0)) })
}

func TestSegmentMerge(t *testing.T) {
	seg := func(a, b Coordinate) LineSegment { return MustSegment(a, b) }
	base := seg(C(0, 0), C(0, 3))

	tests := []struct {
		name  string
		other LineSegment
		want  LineSegment
		ok    bool
	}{
		{"self", base, base, true},
		{"disjoint", seg(C(0, 5), C(0, 7)), base, false},
		{"adjacent", seg(C(0, 4), C(0, 7)), seg(C(0, 0), C(0, 7)), true},
		{"adjacent before", seg(C(0, -2), C(0, -1)), seg(C(0, -2), C(0, 3)), true},
		{"overlap", seg(C(0, 2), C(0, 6)), seg(C(0, 0), C(0, 6)), true},
		{"contained", seg(C(0, 1), C(0, 2)), base, true},
		{"point", seg(C(0, 4), C(0, 4)), seg(C(0, 0), C(0, 4)), true},
		{"parallel", seg(C(1, 0), C(1, 3)), base, false},
		{"perpendicular", seg(C(0, 0), C(3, 0)), base, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := base.Merge(tt.other)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	got, ok := seg(C(0, 0), C(0, 0)).Merge(seg(C(0, 1), C(0, 1)))
	assert.True(t, ok)
	assert.Equal(t, seg(C(0, 0), C(0, 1)), got)

	_, ok = seg(C(0, 0), C(0, 0)).Merge(seg(C(1, 1), C(1, 1)))
	assert.False(t, ok)
}

func TestMergeAll(t *testing.T) {
	row := func(lo, hi int) LineSegment { return MustSegment(C(lo, 10), C(hi, 10)) }
	segs := []LineSegment{row(12, 12), row(2, 14), row(30, 31), row(-2, 2), row(16, 24), row(14, 18)}
	got := MergeAll(segs)
	assert.Equal(t, []LineSegment{row(-2, 24), row(30, 31)}, got)
	assert.Equal(t, 27, got[0].Len())
	assert.Equal(t, row(12, 12), segs[0], "input must not be modified")

	assert.Empty(t, MergeAll[int](nil))
}

func TestParsePath(t *testing.T) {
	segs, err := ParsePath("498,4 -> 498,6 -> 496,6")
	require.NoError(t, err)
	assert.Equal(t, []LineSegment{
		MustSegment(C(498, 4), C(498, 6)),
		MustSegment(C(496, 6), C(498, 6)),
	}, segs)

	segs, err = ParsePath("3,4")
	require.NoError(t, err)
	assert.Equal(t, []LineSegment{MustSegment(C(3, 4), C(3, 4))}, segs)

	_, err = ParsePath("1,1 -> 2,2")
	assert.ErrorIs(t, err, ErrNotAxisAligned)
	_, err = ParsePath("1,1 -> 1,a")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestSegmentNarrowType(t *testing.T) {
	c := MustCoord[int8]
	s := MustSegment(c(0, -100), c(0, 100))
	assert.Equal(t, 201, s.Len())
	pts := s.Points()
	assert.Len(t, pts, 201)
	assert.Equal(t, c(0, 100), pts[200])

	lo := MustSegment(c(0, -100), c(0, -90))
	hi := MustSegment(c(0, 90), c(0, 100))
	got, ok := lo.Merge(hi)
	assert.False(t, ok)
	assert.Equal(t, lo, got)
	got, ok = hi.Merge(lo)
	assert.False(t, ok)
	assert.Equal(t, hi, got)

	full := MustSegment(c(0, -128), c(0, 127))
	assert.Equal(t, 256, full.Len())
	assert.Len(t, full.Points(), 256)
}
