// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Offer intention-revealing constructors (NewZeros, NewIdentity,
//     ZerosLike) on top of the core Dense constructors.
//   - Offer one configurable entry point (Multiply) that dispatches to the
//     strategy kernels via functional options, so callers who do not care
//     which kernel runs get the documented default.
//
// Determinism & Policy:
//   - Facades add no behavior of their own: validation, numeric policy and
//     loop orders all live in the kernels they delegate to.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1 // diagonal write, flat offset i*(n+1)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging or expectation buffers in tests.
// Complexity: O(r*c).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Multiply computes C = A × B with the strategy selected by the options
// (DefaultStrategy when none given). It is the single convenience surface
// over MultiplyNaive / MultiplyBLAS / MultiplyTiled / MultiplyTiledParallel;
// all of those remain directly callable for explicit control.
//
// Errors: whatever the selected kernel returns (ErrNilMatrix,
// ErrDimensionMismatch, ErrInvalidTileSize).
// Complexity: that of the selected kernel.
func Multiply(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	switch o.strategy {
	case StrategyNaive:
		return MultiplyNaive(a, b)
	case StrategyBLAS:
		return MultiplyBLAS(a, b)
	case StrategyTiledParallel:
		return MultiplyTiledParallel(a, b, o.tileSize, o.workers)
	default: // StrategyTiled — the documented default
		return MultiplyTiled(a, b, o.tileSize)
	}
}
