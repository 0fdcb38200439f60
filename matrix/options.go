// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No global mutable state; every matrix carries its own execution policy.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The execution policy never changes results. MatMul accumulates each cell in
//     fixed k order, so parallel and sequential runs are bit-identical.
//   - Results of binary kernels inherit the policy of the left operand.
package matrix

import (
	"math"

	"github.com/katalvlaran/lvtensor/internal/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFill is the value New writes into every element.
	DefaultFill float32 = 0

	// DefaultMinParallelRows is the row count below which kernels stay sequential.
	DefaultMinParallelRows = parallel.DefaultMinChunkSize
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFillInvalid    = "matrix: WithFill: value must not be NaN"
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
	panicMinRowsInvalid = "matrix: WithMinParallelRows: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use With* helpers.
type Options struct {
	fill float32
	par  parallel.Config
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		fill: DefaultFill,
		par:  parallel.DefaultConfig(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithFill sets the value New writes into every element.
// Panics on NaN, which would make every constructed matrix unequal to itself.
func WithFill(v float32) Option {
	if math.IsNaN(float64(v)) {
		panic(panicFillInvalid)
	}

	return func(o *Options) { o.fill = v }
}

// WithWorkers bounds the goroutines used by row-parallel kernels.
// n == 1 disables parallel execution.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.par.NumWorkers = n
		o.par.Enabled = n > 1
	}
}

// WithMinParallelRows sets the row count below which kernels run sequentially.
func WithMinParallelRows(n int) Option {
	if n < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.par.MinChunkSize = n }
}

// WithSequential forces every kernel on the matrix to run on the calling goroutine.
func WithSequential() Option {
	return func(o *Options) { o.par = parallel.Sequential }
}
