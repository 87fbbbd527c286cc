package aoc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func digit(r rune) (int, error) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), nil
	}
	return 0, errors.Wrapf(ErrFormat, "bogus digit %q", r)
}

// Digits returns the value of each character of s, which must all be
// decimal digits.
func Digits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		d, err := digit(r)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", len(out))
		}
		out = append(out, d)
	}
	return out, nil
}

// DigitGrid converts rows of digit characters into a rectangular grid
// of their values, so "123" becomes the row [1 2 3].
func DigitGrid(lines []string) ([][]int, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrEmpty, "digit grid")
	}
	grid := make([][]int, len(lines))
	for y, line := range lines {
		row, err := Digits(line)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", y)
		}
		if y > 0 && len(row) != len(grid[0]) {
			return nil, errors.Wrapf(ErrRagged, "row %d has %d columns, want %d", y, len(row), len(grid[0]))
		}
		grid[y] = row
	}
	return grid, nil
}

// DigitGridPadded is DigitGrid followed by Pad.
func DigitGridPadded(lines []string, width, fill int) ([][]int, error) {
	grid, err := DigitGrid(lines)
	if err != nil {
		return nil, err
	}
	return Pad(grid, fill, width)
}

// LineInts converts each line as a whole to an integer, so "123"
// becomes 123.
func LineInts(lines []string) ([]int, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrEmpty, "line ints")
	}
	out := make([]int, len(lines))
	for y, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, errors.Wrapf(ErrFormat, "row %d: %q is not an integer", y, line)
		}
		out[y] = n
	}
	return out, nil
}

// PadWidths is the number of fill rows or columns to add on each side
// of a grid.
type PadWidths struct {
	Top, Bottom, Left, Right int
}

// Pad surrounds grid with width rows and columns of fill on every side.
func Pad[T any](grid [][]T, fill T, width int) ([][]T, error) {
	return PadEach(grid, fill, PadWidths{Top: width, Bottom: width, Left: width, Right: width})
}

// PadEach surrounds grid with fill, using a separate width per side.
// The input is not modified.
func PadEach[T any](grid [][]T, fill T, w PadWidths) ([][]T, error) {
	if w.Top < 0 || w.Bottom < 0 || w.Left < 0 || w.Right < 0 {
		return nil, errors.Wrapf(ErrPadWidth, "%+v", w)
	}
	var cols int
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	for y, row := range grid {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrRagged, "row %d has %d columns, want %d", y, len(row), cols)
		}
	}
	width := w.Left + cols + w.Right
	fillRow := func() []T {
		r := make([]T, width)
		for i := range r {
			r[i] = fill
		}
		return r
	}
	out := make([][]T, 0, w.Top+len(grid)+w.Bottom)
	for i := 0; i < w.Top; i++ {
		out = append(out, fillRow())
	}
	for _, row := range grid {
		r := fillRow()
		copy(r[w.Left:], row)
		out = append(out, r)
	}
	for i := 0; i < w.Bottom; i++ {
		out = append(out, fillRow())
	}
	return out, nil
}
