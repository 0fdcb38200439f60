// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels over equal-shaped matrices (Broadcast) and scalar mapping (Apply).
//   - One flat loop per output row; rows are the unit of parallel work.
//
// Determinism & Performance:
//   - Every output cell depends on exactly one cell per operand, so row scheduling
//     cannot change results.
//   - No hidden allocations beyond the output matrix; O(r*c) time and space.
//   - Division follows IEEE-754: x/0 = ±Inf, 0/0 = NaN. It is not an error.

package matrix

import (
	"github.com/katalvlaran/lvtensor/internal/parallel"
)

const opApply = "Apply"

// Broadcast combines two equal-shaped matrices position by position:
// out[i,j] = a[i,j] op b[i,j].
//
// Implementation:
//   - Stage 1: validate op, then NotNil(a), NotNil(b), SameShape(a, b).
//   - Stage 2: allocate the result and run the op-specific row loop.
//
// Errors:
//   - ErrUnknownOp, ErrNilMatrix, *ShapeError (errors.Is ErrShapeMismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Operands are never mutated; the result inherits a's execution policy.
func Broadcast(a, b *Matrix, op Op) (*Matrix, error) {
	if !op.valid() {
		return nil, matrixErrorf(op.String(), ErrUnknownOp)
	}
	if err := ValidateBinarySameShape(op.String(), a, b); err != nil {
		return nil, err
	}

	res := a.like(a.r, a.c)
	cols := a.c
	// The switch sits outside the row loop so each inner loop is branch-free.
	var row func(i int)
	switch op {
	case OpAdd:
		row = func(i int) {
			lo, hi := i*cols, (i+1)*cols
			for k := lo; k < hi; k++ {
				res.data[k] = a.data[k] + b.data[k]
			}
		}
	case OpSub:
		row = func(i int) {
			lo, hi := i*cols, (i+1)*cols
			for k := lo; k < hi; k++ {
				res.data[k] = a.data[k] - b.data[k]
			}
		}
	case OpMul:
		row = func(i int) {
			lo, hi := i*cols, (i+1)*cols
			for k := lo; k < hi; k++ {
				res.data[k] = a.data[k] * b.data[k]
			}
		}
	case OpDiv:
		row = func(i int) {
			lo, hi := i*cols, (i+1)*cols
			for k := lo; k < hi; k++ {
				res.data[k] = a.data[k] / b.data[k]
			}
		}
	}
	parallel.For(a.r, row, a.par)

	return res, nil
}

// Apply returns a new matrix of the same shape with out[i,j] = f(m[i,j]).
// f must be pure: under a parallel policy it is called from several goroutines.
//
// Errors:
//   - ErrNilMatrix, ErrNilFunc.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Apply(m *Matrix, f func(float32) float32) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	if f == nil {
		return nil, matrixErrorf(opApply, ErrNilFunc)
	}

	res := m.like(m.r, m.c)
	cols := m.c
	parallel.For(m.r, func(i int) {
		lo, hi := i*cols, (i+1)*cols
		for k := lo; k < hi; k++ {
			res.data[k] = f(m.data[k])
		}
	}, m.par)

	return res, nil
}
