package aabb

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when 2D and 3D values are combined.
	ErrDimensionMismatch = errors.New("aabb: dimension mismatch")

	// ErrInvalidArgument is returned for absent or malformed arguments.
	ErrInvalidArgument = errors.New("aabb: invalid argument")

	// ErrUnsupportedEndpoint is returned by ResizeFromEndpoint for a corner
	// name the box's dimensionality does not have. It wraps ErrInvalidArgument.
	ErrUnsupportedEndpoint = fmt.Errorf("%w: unsupported endpoint", ErrInvalidArgument)

	// ErrUnsupportedEdge is returned by ResizeFromEdge for a face name the
	// box's dimensionality does not have. It wraps ErrInvalidArgument.
	ErrUnsupportedEdge = fmt.Errorf("%w: unsupported edge", ErrInvalidArgument)
)

func mismatch(want, got Dim) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrDimensionMismatch, want, got)
}
