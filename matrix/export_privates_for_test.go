// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Helpers and Options Snapshot
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY, enabling white-box
//     verification without widening the production API.
//
// Provided Surface:
//   - PaddingFor_TestOnly: the shared pad-rounding helper behind both
//     operand padding steps of the tiled kernels.
//   - ExportedNewDenseWithPolicy: construct Dense with an explicit numeric
//     policy (e.g. to admit NaN/Inf test payloads).
//   - GatherOptionsSnapshot_TestOnly: stable, read-only view of internal
//     Options for asserting defaults and "last writer wins".
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields; tests will
//     catch drift.

// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
var ExportedNewDenseWithPolicy = newDenseWithPolicy

// PaddingFor_TestOnly forwards to the private paddingFor helper.
func PaddingFor_TestOnly(dim, tile int) int {
	return paddingFor(dim, tile)
}

// TilerBlocks_TestOnly exposes the staged blocks of a Tiler so tests can
// assert the transposed layout of the right tile after Load.
func TilerBlocks_TestOnly(t *Tiler) (lhs, rhsT *Block) {
	return t.lhs, t.rhsT
}

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Strategy Strategy
	TileSize int
	Workers  int
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal gathering.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Strategy: o.strategy,
		TileSize: o.tileSize,
		Workers:  o.workers,
	}
}
