// Package matrix implements a dense, row-major float32 matrix.
//
// The matrix package provides:
//
//   - Construction with strict shape validation (New, Ones, FromSlice, FromRows, Identity)
//     and seeded uniform initialization (InitUniform).
//   - Bounds-checked element access (At, Set) that returns errors instead of panicking.
//   - Elementwise operators over equal shapes (Add, Sub, Hadamard, Div via Broadcast).
//   - Matrix multiplication (MatMul), transpose (Transpose) and scalar mapping (Apply).
//
// Every operation either reads its operands and returns a freshly allocated
// matrix, or mutates the receiver in place without changing its shape
// (Set, InitUniform). Failures are reported through the sentinel errors in
// errors.go; shape and index failures carry *ShapeError / *IndexError details.
//
// Row-parallel execution is configured per matrix (WithWorkers, WithSequential)
// and never changes results.
package matrix
