// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All constructors and accessors return these sentinels (possibly wrapped with
// operation context); callers match them with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a non-positive axis.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates that a variable, node or mode index is outside valid bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths or shapes between operands,
	// e.g., FromSlice with len(data) != vars*nodes*modes, or SetSlot with a short slice.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")
)

// arrayErrorf wraps an underlying error with the given operation tag.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
