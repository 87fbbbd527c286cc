package aoc

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDimension is reported when coordinates of different dimension
	// are combined, or a coordinate has an unsupported dimension.
	ErrDimension = errors.New("dimension mismatch")

	// ErrNotAxisAligned is reported when segment endpoints differ on
	// more than one axis.
	ErrNotAxisAligned = errors.New("segment is not axis-aligned")

	ErrFormat   = errors.New("malformed input")
	ErrRagged   = errors.New("rows have inconsistent lengths")
	ErrEmpty    = errors.New("empty input")
	ErrPadWidth = errors.New("negative pad width")
)

// DimensionError is the panic value of coordinate arithmetic and
// comparison on operands of different dimension.
type DimensionError struct {
	Op        string
	Want, Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v: want %d axes, got %d", e.Op, ErrDimension, e.Want, e.Got)
}

func (e *DimensionError) Is(target error) bool { return target == ErrDimension }
