// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and structured error carriers.
// All kernels return these sentinels (directly or through a carrier that
// unwraps to them) and tests MUST check them via errors.Is / errors.As.
// No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added with fmt.Errorf("ctx: %w", ErrX)
// or via the carriers below; callers still match with errors.Is.

var (
	// ErrInvalidShape is returned when a requested shape is invalid (rows<=0 or cols<=0,
	// ragged rows in FromRows).
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub on different shapes, or MatMul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidRange signals InitUniform bounds that do not satisfy low < high
	// with both ends finite.
	ErrInvalidRange = errors.New("matrix: invalid range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunc indicates that Apply was given a nil mapping function.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrNilSource indicates that InitUniform was given a nil random source.
	ErrNilSource = errors.New("matrix: nil random source")

	// ErrUnknownOp marks an Op value outside the defined elementwise set.
	ErrUnknownOp = errors.New("matrix: unknown elementwise op")
)

// ShapeError reports two incompatible shapes.
// Expected is what the left operand requires; Actual is what was supplied.
// For MatMul, Expected.Cols is -1 (any column count is accepted).
type ShapeError struct {
	Op       string
	Expected Shape
	Actual   Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: expected %v, got %v", e.Op, ErrShapeMismatch, e.Expected, e.Actual)
}

// Unwrap exposes ErrShapeMismatch to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// IndexError reports an out-of-bounds coordinate together with the matrix shape.
type IndexError struct {
	Op    string
	Row   int
	Col   int
	Shape Shape
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Matrix.%s(%d,%d): %v for shape %v", e.Op, e.Row, e.Col, ErrIndexOutOfBounds, e.Shape)
}

// Unwrap exposes ErrIndexOutOfBounds to errors.Is.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// RangeError reports rejected InitUniform bounds.
type RangeError struct {
	Low  float32
	High float32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("InitUniform: %v: [%g, %g)", ErrInvalidRange, e.Low, e.High)
}

// Unwrap exposes ErrInvalidRange to errors.Is.
func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
