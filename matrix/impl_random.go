// SPDX-License-Identifier: MIT

// Package matrix - randomized initialization.
//
// Determinism:
//   - No process-wide generator is touched: the caller passes the rand.Source,
//     so a fixed seed reproduces the same matrix.
//   - Elements are drawn in row-major order 0..n-1.

package matrix

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const opInitUniform = "InitUniform"

// InitUniform replaces every element, in place, with an independent draw from
// the continuous uniform distribution on [low, high).
//
// Implementation:
//   - Stage 1: validate src and bounds (finite, low < high).
//   - Stage 2: sample in float64 via distuv.Uniform and narrow to float32.
//     A draw that rounds up to high is replaced by the largest float32 below high,
//     keeping the half-open contract.
//
// Errors:
//   - ErrNilMatrix, ErrNilSource, *RangeError (errors.Is ErrInvalidRange).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - On error the matrix is left untouched.
func (m *Matrix) InitUniform(src rand.Source, low, high float32) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opInitUniform, err)
	}
	if src == nil {
		return matrixErrorf(opInitUniform, ErrNilSource)
	}
	if err := ValidateRange(low, high); err != nil {
		return err
	}

	u := distuv.Uniform{Min: float64(low), Max: float64(high), Src: src}
	below := math.Nextafter32(high, low)
	for i := range m.data {
		v := float32(u.Rand())
		if v >= high {
			v = below
		}
		m.data[i] = v
	}

	return nil
}
