// Package lvtensor is a small dense-matrix core: row-major float32 storage,
// shape-checked elementwise operators, matrix multiplication, transpose and
// functional mapping.
//
// Everything lives under two packages:
//
//	matrix/            — the Matrix type, its constructors, kernels and sentinel errors
//	internal/parallel/ — bounded row-parallel loop shared by the kernels
//
// cmd/matrixdemo prints the classic walkthrough: two 3×2 matrices, a uniform
// re-draw, a difference, a product with a transpose, and a squared map.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float32{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]float32{{5, 6}, {7, 8}})
//	c, _ := a.MatMul(b) // [[19 22] [43 50]]
//
// Errors are values: shape and index violations come back as *matrix.ShapeError
// and *matrix.IndexError, both matching their sentinels under errors.Is.
//
//	go get github.com/katalvlaran/lvtensor
package lvtensor
