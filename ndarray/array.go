// SPDX-License-Identifier: MIT
// Package ndarray: Array is a concrete, row-major [variable, node, mode] block
// of float64 values stored in one flat slice for cache-friendly slot access.

package ndarray

import (
	"fmt"
	"math"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "NewArray"
	opFrom     = "FromSlice"
	opAt       = "At"
	opSet      = "Set"
	opSlot     = "Slot"
	opSetSlot  = "SetSlot"
	opAllClose = "AllClose"
)

// Shape describes the extent of each axis: Vars × Nodes × Modes.
type Shape struct {
	Vars  int // leading axis (state variable or sample slot)
	Nodes int // network nodes
	Modes int // modes per node
}

// SlotLen returns Nodes*Modes, the number of elements in one slot.
// Complexity: O(1).
func (s Shape) SlotLen() int {
	return s.Nodes * s.Modes
}

// Len returns the total number of elements.
// Complexity: O(1).
func (s Shape) Len() int {
	return s.Vars * s.Nodes * s.Modes
}

// String renders the shape as (v, n, m).
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Vars, s.Nodes, s.Modes)
}

// valid reports whether every axis is positive and Vars*Nodes*Modes fits
// in an int, so Len and SlotLen never wrap.
func (s Shape) valid() bool {
	if s.Vars <= 0 || s.Nodes <= 0 || s.Modes <= 0 {
		return false
	}
	if s.Nodes > math.MaxInt/s.Modes {
		return false
	}

	return s.Vars <= math.MaxInt/(s.Nodes*s.Modes)
}

// Array is a dense [variable, node, mode] array of float64 values.
// shape holds the axis extents and data holds shape.Len() elements with the
// mode axis varying fastest.
type Array struct {
	shape Shape     // axis extents
	data  []float64 // flat backing storage, length == shape.Len()
}

// NewArray creates a vars×nodes×modes Array initialized to zeros.
// Stage 1 (Validate): ensure every axis > 0 and the element count fits in an int.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(v*n*m) time and memory.
func NewArray(vars, nodes, modes int) (*Array, error) {
	sh := Shape{Vars: vars, Nodes: nodes, Modes: modes}
	// Validate dimensions
	if !sh.valid() {
		return nil, arrayErrorf(opNew, ErrBadShape)
	}

	return &Array{shape: sh, data: make([]float64, sh.Len())}, nil
}

// FromSlice creates an Array of the given shape holding a copy of data.
// data must be laid out row-major ([v][n][m], mode fastest).
// Returns ErrBadShape for non-positive axes or an element count that
// overflows int, and ErrDimensionMismatch when
// len(data) != vars*nodes*modes.
// Complexity: O(v*n*m).
func FromSlice(vars, nodes, modes int, data []float64) (*Array, error) {
	sh := Shape{Vars: vars, Nodes: nodes, Modes: modes}
	if !sh.valid() {
		return nil, arrayErrorf(opFrom, ErrBadShape)
	}
	if len(data) != sh.Len() {
		return nil, arrayErrorf(opFrom, ErrDimensionMismatch)
	}
	// Deep copy to prevent external mutation
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Array{shape: sh, data: buf}, nil
}

// Shape returns the axis extents.
// Complexity: O(1).
func (a *Array) Shape() Shape {
	return a.shape
}

// Vars returns the extent of the leading (variable/slot) axis.
func (a *Array) Vars() int { return a.shape.Vars }

// Nodes returns the extent of the node axis.
func (a *Array) Nodes() int { return a.shape.Nodes }

// Modes returns the extent of the mode axis.
func (a *Array) Modes() int { return a.shape.Modes }

// indexOf computes the flat index for (v, n, m) or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array) indexOf(tag string, v, n, m int) (int, error) {
	if v < 0 || v >= a.shape.Vars || n < 0 || n >= a.shape.Nodes || m < 0 || m >= a.shape.Modes {
		return 0, fmt.Errorf("%s(%d,%d,%d): %w", tag, v, n, m, ErrOutOfRange)
	}

	return (v*a.shape.Nodes+n)*a.shape.Modes + m, nil
}

// At retrieves the element at (v, n, m).
// Complexity: O(1).
func (a *Array) At(v, n, m int) (float64, error) {
	idx, err := a.indexOf(opAt, v, n, m)
	if err != nil {
		return 0, err
	}

	return a.data[idx], nil
}

// Set assigns x at (v, n, m).
// Complexity: O(1).
func (a *Array) Set(v, n, m int, x float64) error {
	idx, err := a.indexOf(opSet, v, n, m)
	if err != nil {
		return err
	}
	a.data[idx] = x

	return nil
}

// Flat returns the element at flat row-major offset i, mirroring numpy's
// a.flat[i]. Returns ErrOutOfRange when i is outside [0, Len).
// Complexity: O(1).
func (a *Array) Flat(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("Flat(%d): %w", i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// Slot returns a copy of the [node, mode] block of slot v as a flat slice.
// Complexity: O(n*m).
func (a *Array) Slot(v int) ([]float64, error) {
	if v < 0 || v >= a.shape.Vars {
		return nil, fmt.Errorf("%s(%d): %w", opSlot, v, ErrOutOfRange)
	}
	k := a.shape.SlotLen()
	out := make([]float64, k)
	copy(out, a.data[v*k:(v+1)*k])

	return out, nil
}

// SetSlot overwrites slot v with vals, which must hold exactly Nodes*Modes values.
// Complexity: O(n*m).
func (a *Array) SetSlot(v int, vals []float64) error {
	if v < 0 || v >= a.shape.Vars {
		return fmt.Errorf("%s(%d): %w", opSetSlot, v, ErrOutOfRange)
	}
	k := a.shape.SlotLen()
	if len(vals) != k {
		return fmt.Errorf("%s(%d): %w", opSetSlot, v, ErrDimensionMismatch)
	}
	copy(a.data[v*k:(v+1)*k], vals)

	return nil
}

// SlotView returns slot v without copying. The returned slice aliases the
// array's storage and MUST be treated as read-only; use Slot for a copy.
// Complexity: O(1).
func (a *Array) SlotView(v int) ([]float64, error) {
	if v < 0 || v >= a.shape.Vars {
		return nil, fmt.Errorf("SlotView(%d): %w", v, ErrOutOfRange)
	}

	return a.slotView(v), nil
}

// slotView is SlotView without the bounds check.
func (a *Array) slotView(v int) []float64 {
	k := a.shape.SlotLen()

	return a.data[v*k : (v+1)*k]
}

// Data returns a copy of the flat backing storage.
// Complexity: O(v*n*m).
func (a *Array) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// Clone returns a deep copy of the Array.
// Complexity: O(v*n*m) time and memory.
func (a *Array) Clone() *Array {
	buf := make([]float64, len(a.data))
	copy(buf, a.data)

	return &Array{shape: a.shape, data: buf}
}

// String implements fmt.Stringer for debugging: one line per slot.
func (a *Array) String() string {
	var sb strings.Builder
	for v := 0; v < a.shape.Vars; v++ {
		sb.WriteString("[")
		for i, x := range a.slotView(v) {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", x)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
