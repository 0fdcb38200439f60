// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Validators run before any allocation, so a failing kernel never produces output.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns a *ShapeError tagged with op on mismatch.
func ValidateSameShape(op string, a, b *Matrix) error {
	if a.r != b.r || a.c != b.c {
		return &ShapeError{Op: op, Expected: a.Shape(), Actual: b.Shape()}
	}

	return nil
}

// ValidateBinarySameShape runs NotNil(a) → NotNil(b) → SameShape(a, b).
func ValidateBinarySameShape(op string, a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(op, a, b)
}

// ValidateMulCompatible runs NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// The *ShapeError carries Expected=(a.Cols, *) and Actual=b.Shape().
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return &ShapeError{Op: opMatMul, Expected: Shape{Rows: a.c, Cols: -1}, Actual: b.Shape()}
	}

	return nil
}

// ValidateRange accepts finite bounds with low < high.
func ValidateRange(low, high float32) error {
	l, h := float64(low), float64(high)
	if math.IsNaN(l) || math.IsNaN(h) || math.IsInf(l, 0) || math.IsInf(h, 0) || !(low < high) {
		return &RangeError{Low: low, High: high}
	}

	return nil
}
