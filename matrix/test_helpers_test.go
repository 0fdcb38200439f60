// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep randomness seeded so every run sees the same data.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
)

// tb is the subset of testing.TB the helpers need (shared by tests and benchmarks).
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// mustNew allocates an r×c zero matrix or fails the test.
func mustNew(t tb, r, c int, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(r, c, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFromRows builds a matrix from literal rows or fails the test.
func mustFromRows(t tb, rows [][]float32, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// randomMatrix returns an r×c matrix drawn from U[-1, 1) with the given seed.
func randomMatrix(t tb, r, c int, seed uint64, opts ...matrix.Option) *matrix.Matrix {
	t.Helper()
	m := mustNew(t, r, c, opts...)
	if err := m.InitUniform(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), -1, 1); err != nil {
		t.Fatalf("InitUniform: %v", err)
	}

	return m
}

// at reads (i,j) or fails the test.
func at(t *testing.T, m *matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// shapes used by property-style tests.
var propertyShapes = []matrix.Shape{
	{Rows: 1, Cols: 1},
	{Rows: 1, Cols: 7},
	{Rows: 7, Cols: 1},
	{Rows: 3, Cols: 2},
	{Rows: 5, Cols: 5},
	{Rows: 130, Cols: 17}, // above DefaultMinParallelRows
}

// float32NaN returns a quiet NaN of type float32.
func float32NaN() float32 { return float32(math.NaN()) }

// isInfOrNaN reports whether v is ±Inf or NaN.
func isInfOrNaN(v float32) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
