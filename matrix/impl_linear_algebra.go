// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels of the core:
// matrix multiplication, transpose, dot product and comparisons.
// All functions perform strict fail-fast validation and return clear errors
// on shape mismatches.
//
// Determinism:
//   - MatMul accumulates every output cell strictly left to right over k, starting
//     from 0, with each product rounded to float32 before the add (the explicit
//     conversion also prevents fused multiply-add). Row-parallel execution does
//     not change a single bit of the result.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtensor/internal/parallel"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum float32 = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opDiv       = "Div"
	opMatMul    = "MatMul"
	opTranspose = "Transpose"
	opDot       = "Dot"
	opAllClose  = "AllClose"
)

// MatMul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each output row i (in parallel when A's policy allows) run
//     i→k→j over row-major strides, accumulating into C's row i.
//
// Behavior highlights:
//   - No zero-skipping: 0 × ±Inf and 0 × NaN must still yield NaN.
//
// Inputs:
//   - A: left matrix with shape (m × k).
//   - B: right matrix with shape (k × n).
//
// Returns:
//   - *Matrix: new C with shape (m × n), inheriting A's policy.
//
// Errors:
//   - ErrNilMatrix (nil input), *ShapeError (errors.Is ErrShapeMismatch).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func MatMul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := a.like(aRows, bCols)
	// da layout: i*aCols + k; db layout: k*bCols + j.
	parallel.For(aRows, func(i int) {
		rowA := a.data[i*aCols : (i+1)*aCols]
		rowR := res.data[i*bCols : (i+1)*bCols]
		for k, av := range rowA {
			rowB := b.data[k*bCols : (k+1)*bCols]
			for j, bv := range rowB {
				rowR[j] += float32(av * bv)
			}
		}
	}, a.par)

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil and never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := m.like(cols, rows) // dims flipped
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Dot returns the sequential left-to-right sum of x[n]*y[n].
// It is the reduction MatMul applies to every output cell.
func Dot(x, y []float32) (float32, error) {
	if len(x) != len(y) {
		return 0, &ShapeError{
			Op:       opDot,
			Expected: Shape{Rows: 1, Cols: len(x)},
			Actual:   Shape{Rows: 1, Cols: len(y)},
		}
	}
	sum := ZeroSum
	for n := range x {
		sum += float32(x[n] * y[n])
	}

	return sum, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal elements
// under float32 ==. NaN is never equal to anything; nil equals only nil.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are treated as |rtol|, |atol|.
//   - Any NaN element makes the result false.
func AllClose(a, b *Matrix, rtol, atol float32) (bool, error) {
	rt, at := float64(rtol), float64(atol)
	if math.IsNaN(rt) || math.IsNaN(at) || math.IsInf(rt, 0) || math.IsInf(at, 0) {
		return false, fmt.Errorf("%s: tolerance (%g, %g): %w", opAllClose, rtol, atol, ErrInvalidRange)
	}
	rt, at = math.Abs(rt), math.Abs(at)
	if err := ValidateBinarySameShape(opAllClose, a, b); err != nil {
		return false, err
	}

	for idx := range a.data {
		av, bv := float64(a.data[idx]), float64(b.data[idx])
		if av == bv { // covers equal infinities
			continue
		}
		if !(math.Abs(av-bv) <= at+rt*math.Abs(bv)) { // NaN fails here
			return false, nil
		}
	}

	return true, nil
}
