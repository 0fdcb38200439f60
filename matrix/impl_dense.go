// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major float32 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/Ones/FromSlice: O(r*c); At/Set: O(1); Clone/Data: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvtensor/internal/parallel"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in IndexError
	ctxSet = "Set" // method tag used in IndexError
)

// ---------- Formatting literals ----------
const (
	_fmtHeader   = "Matrix size: %s\n"
	_fmtRowOpen  = "[ "
	_fmtCell     = "%8.4f "
	_fmtRowClose = "]\n"
)

// Matrix is a concrete row-major matrix of float32 values.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - par is the execution policy for kernels that take this matrix as left operand.
type Matrix struct {
	r, c int             // row and column counts
	data []float32       // contiguous row-major storage (len == r*c)
	par  parallel.Config // execution policy, inherited by results
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols matrix with every element set to the configured fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits in int; else ErrInvalidShape.
//   - Stage 2: resolve options, allocate buffer, write fill (skipped for 0).
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Zero-sized matrices are rejected rather than represented as empty values.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 || cols > math.MaxInt/rows {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	o := gatherOptions(opts...)

	m := &Matrix{r: rows, c: cols, data: make([]float32, rows*cols), par: o.par}
	if o.fill != 0 {
		for i := range m.data {
			m.data[i] = o.fill
		}
	}

	return m, nil
}

// Ones creates a rows×cols matrix filled with 1.
// Equivalent to New(rows, cols, WithFill(1)); options given later override the fill.
func Ones(rows, cols int, opts ...Option) (*Matrix, error) {
	return New(rows, cols, append([]Option{WithFill(1)}, opts...)...)
}

// FromSlice creates a rows×cols matrix holding a copy of data in row-major order.
// Returns ErrInvalidShape for non-positive dimensions and a *ShapeError when
// len(data) != rows*cols.
func FromSlice(rows, cols int, data []float32, opts ...Option) (*Matrix, error) {
	m, err := New(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf("FromSlice", err)
	}
	if len(data) != rows*cols {
		return nil, &ShapeError{
			Op:       "FromSlice",
			Expected: Shape{Rows: rows, Cols: cols},
			Actual:   Shape{Rows: 1, Cols: len(data)},
		}
	}
	copy(m.data, data)

	return m, nil
}

// FromRows creates a matrix from a slice of equally long rows (copied).
// Empty input, empty rows or ragged rows return ErrInvalidShape.
func FromRows(rows [][]float32, opts ...Option) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidShape)
	}
	r, c := len(rows), len(rows[0])
	m, err := New(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), c, ErrInvalidShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int, opts ...Option) (*Matrix, error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	clear(m.data) // a WithFill option must not leak into the off-diagonal
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// like allocates a zero matrix of the given shape carrying m's execution policy.
// Shape must already be validated by the caller.
func (m *Matrix) like(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]float32, rows*cols), par: m.par}
}

// Rows returns the row count (0 for a nil matrix).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil matrix).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single value.
func (m *Matrix) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// Len returns the number of stored elements (rows*cols).
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// indexOf computes the row-major offset or returns an *IndexError tagged with method.
// A nil receiver yields ErrNilMatrix wrapped with method.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(method, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, &IndexError{Op: method, Row: row, Col: col, Shape: m.Shape()}
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - *IndexError (errors.Is ErrIndexOutOfBounds) when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) At(row, col int) (float32, error) {
	off, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Any float32 is accepted, including NaN and ±Inf.
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - *IndexError (errors.Is ErrIndexOutOfBounds) when out of bounds.
func (m *Matrix) Set(row, col int, v float32) error {
	off, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// Data returns a copy of the row-major buffer (nil for a nil matrix).
func (m *Matrix) Data() []float32 {
	if m == nil {
		return nil
	}
	cp := make([]float32, len(m.data))
	copy(cp, m.data)

	return cp
}

// Row returns a copy of row i, or an *IndexError.
func (m *Matrix) Row(i int) ([]float32, error) {
	if m == nil {
		return nil, matrixErrorf("Row", ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, &IndexError{Op: "Row", Row: i, Col: 0, Shape: m.Shape()}
	}
	out := make([]float32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer, same execution policy).
// Cloning a nil matrix returns nil.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := m.like(m.r, m.c)
	copy(cp.data, m.data)

	return cp
}

// String renders the matrix as
//
//	Matrix size: (r, c)
//	[   0.1234   -0.5000 ]
//
// one line per row, each element formatted with %8.4f and followed by a space.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, _fmtHeader, m.Shape())
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, _fmtCell, m.data[base+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
