// SPDX-License-Identifier: MIT
//
// For and Config are adapted from internal/parallel in github.com/born-ml/born
// (Apache License 2.0). See NOTICE.

// Package parallel provides the bounded row-parallel loop used by matrix kernels.
//
// Determinism:
//   - Each index is visited exactly once; chunks are contiguous and disjoint.
//   - Callers own per-index output slots, so results never depend on scheduling.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// DefaultMinChunkSize is the number of indices below which For stays sequential.
const DefaultMinChunkSize = 64

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // whether parallel execution is enabled
	NumWorkers   int  // upper bound on goroutines per call
	MinChunkSize int  // minimum indices per goroutine
}

// Sequential is the configuration that never spawns goroutines.
var Sequential = Config{Enabled: false, NumWorkers: 1, MinChunkSize: DefaultMinChunkSize}

// Workers reports the default worker count: physical cores when cpuid can
// detect them, runtime.NumCPU otherwise.
func Workers() int {
	n := cpuid.CPU.PhysicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n <= 0 {
		n = 1
	}

	return n
}

// DefaultConfig returns defaults sized to the host CPU.
func DefaultConfig() Config {
	n := Workers()

	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: DefaultMinChunkSize,
	}
}

// For executes f(i) for i in [0, n).
// Falls back to a plain loop if parallelism is disabled or n is too small.
// f must be safe to call concurrently for distinct i.
func For(n int, f func(i int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
