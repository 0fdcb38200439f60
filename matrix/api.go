// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points over the canonical kernels (Broadcast, Apply, MatMul, Transpose).
//   - Offer both call styles: package functions (Add(a, b)) and methods (a.Add(b)).
//   - Each facade delegates to exactly one kernel.

package matrix

// ---------- Elementwise (O(rc)) ----------

// Add computes the element-wise sum a + b.
func Add(a, b *Matrix) (*Matrix, error) { return Broadcast(a, b, OpAdd) }

// Sub computes the element-wise difference a − b.
func Sub(a, b *Matrix) (*Matrix, error) { return Broadcast(a, b, OpSub) }

// Hadamard computes the element-wise product a ⊙ b.
func Hadamard(a, b *Matrix) (*Matrix, error) { return Broadcast(a, b, OpMul) }

// Div computes the element-wise quotient a / b with IEEE-754 semantics.
func Div(a, b *Matrix) (*Matrix, error) { return Broadcast(a, b, OpDiv) }

// ---------- Linear algebra ----------

// Product is an alias for MatMul: matrix product a × b. Complexity O(m*k*n).
func Product(a, b *Matrix) (*Matrix, error) { return MatMul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// ---------- Method forms ----------

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return Broadcast(m, other, OpAdd) }

// Sub returns m − other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return Broadcast(m, other, OpSub) }

// MulElem returns the Hadamard product m ⊙ other.
func (m *Matrix) MulElem(other *Matrix) (*Matrix, error) { return Broadcast(m, other, OpMul) }

// Div returns m / other element-wise.
func (m *Matrix) Div(other *Matrix) (*Matrix, error) { return Broadcast(m, other, OpDiv) }

// MatMul returns the matrix product m × other.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) { return MatMul(m, other) }

// Transpose returns mᵀ.
func (m *Matrix) Transpose() (*Matrix, error) { return Transpose(m) }

// Apply returns a new matrix with f applied to every element.
func (m *Matrix) Apply(f func(float32) float32) (*Matrix, error) { return Apply(m, f) }
