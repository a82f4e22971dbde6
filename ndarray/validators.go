// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Single source of truth for nil/shape/finite checks shared by callers
//     (the transform evaluator and monitors) and by AllClose.
//   - Return sentinels wrapped with the validator name so errors.Is works.

package ndarray

import "math"

// ValidateNotNil ensures the array reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(a *Array) error {
	if a == nil {
		return arrayErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical shapes.
// Assumes both are non-nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b *Array) error {
	if a.shape != b.shape {
		return arrayErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures no element of a is NaN or ±Inf.
// Complexity: O(v*n*m).
func ValidateFinite(a *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	for _, x := range a.data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return arrayErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
