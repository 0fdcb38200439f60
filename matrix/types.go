// SPDX-License-Identifier: MIT

// Package matrix: small value types shared by the kernels.
// This file contains ONLY domain-facing types (Shape, Op). Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

import "fmt"

// Shape is the (rows, cols) pair describing a matrix's dimensions.
// A negative field means "any" and only appears in ShapeError.Expected.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%s, %s)", dim(s.Rows), dim(s.Cols))
}

func dim(n int) string {
	if n < 0 {
		return "*"
	}

	return fmt.Sprint(n)
}

// Op selects the scalar operator applied position by position in Broadcast.
type Op int

// Elementwise operators.
const (
	OpAdd Op = iota // a + b
	OpSub           // a - b
	OpMul           // a * b (Hadamard)
	OpDiv           // a / b (IEEE-754, no zero check)
)

// String returns the operation tag used in error messages.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return opAdd
	case OpSub:
		return opSub
	case OpMul:
		return opHadamard
	case OpDiv:
		return opDiv
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// valid reports whether op is one of the defined operators.
func (op Op) valid() bool { return op >= OpAdd && op <= OpDiv }
