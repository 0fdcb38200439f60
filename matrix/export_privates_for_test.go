// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for options and execution policy.
//
// Purpose:
//   - Expose a read-only snapshot of the internal Options and of a matrix's
//     execution policy to matrix_test without widening the production API.
//
// Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Fill         float32
	Parallel     bool
	NumWorkers   int
	MinChunkSize int
}

func snapshotOf(fill float32, enabled bool, workers, minChunk int) OptionsSnapshot {
	return OptionsSnapshot{Fill: fill, Parallel: enabled, NumWorkers: workers, MinChunkSize: minChunk}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o.fill, o.par.Enabled, o.par.NumWorkers, o.par.MinChunkSize)
}

// PolicySnapshot_TestOnly reports the execution policy carried by m (Fill is always 0).
func PolicySnapshot_TestOnly(m *Matrix) OptionsSnapshot {
	return snapshotOf(0, m.par.Enabled, m.par.NumWorkers, m.par.MinChunkSize)
}
