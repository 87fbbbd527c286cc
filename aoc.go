// Package aoc holds the geometry and search helpers shared by
// Advent of Code puzzle solvers: integer coordinates, axis-aligned
// segments, flood fill and digit grids.
package aoc

import (
	"bufio"
	"log"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sign returns 1 for positive x, -1 for negative x and zero for 0.
func Sign[T constraints.Signed](x, zero T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return zero
}

// Lines splits puzzle text into lines, dropping line terminators.
// A trailing newline does not produce an empty last line.
func Lines(text string) []string {
	var lines []string
	s := bufio.NewScanner(strings.NewReader(text))
	s.Buffer(nil, max(len(text)+1, bufio.MaxScanTokenSize))
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
	return lines
}

// Timed calls f and logs how long it took.
func Timed[T any](name string, f func() T) T {
	t0 := time.Now()
	v := f()
	log.Printf("%s took %v", name, time.Since(t0).Round(time.Microsecond))
	return v
}
