// SPDX-License-Identifier: MIT

package ndarray

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) when every element satisfies the relation.
// Tolerances must be finite; negative values are normalized to |x|.
// Time: O(v*n*m). Space: O(1).
func AllClose(a, b *Array, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, arrayErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, arrayErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, arrayErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, arrayErrorf(opAllClose, err)
	}

	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > atol+rtol*math.Abs(b.data[i]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and bit-identical elements.
// NaN compares equal to NaN so repeated evaluations can be checked for
// determinism. Complexity: O(v*n*m).
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.shape != b.shape {
		return false
	}
	for i := range a.data {
		if math.Float64bits(a.data[i]) != math.Float64bits(b.data[i]) {
			return false
		}
	}

	return true
}
