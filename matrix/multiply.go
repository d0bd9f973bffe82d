// SPDX-License-Identifier: MIT

// Package matrix - multiplication strategies.
//
// Purpose:
//   - Declare the interchangeable multiplication kernels over the same Dense
//     representation: the naive triple loop (MultiplyNaive), the cache-aware
//     tiled kernel (MultiplyTiled) and its grid-parallel variant
//     (MultiplyTiledParallel). The BLAS delegate lives in blas.go.
//   - All kernels share one contract: ValidateMultiplication first, then
//     produce a fresh a.Rows()×b.Cols() Dense without mutating the operands.
//
// Determinism:
//   - Fixed loop orders everywhere; the parallel variant partitions the
//     output grid so no two workers ever touch the same result cell, making
//     its result bit-identical to the sequential tiled kernel.

package matrix

import (
	"fmt"
	"runtime"
	"sync"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNaive         = "MultiplyNaive"
	opTiled         = "MultiplyTiled"
	opTiledParallel = "MultiplyTiledParallel"
	opBLAS          = "MultiplyBLAS"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// paddingFor returns the number of extra cells needed to round dim up to the
// next multiple of tile: (tile - dim%tile) % tile. A dim that is already a
// multiple (including zero) needs no padding. Shared by every padding step so
// the rounding can never diverge between operands.
// Precondition: tile > 0 (callers validate via ValidateTileSize).
// Complexity: O(1).
func paddingFor(dim, tile int) int {
	return (tile - dim%tile) % tile
}

// asDense returns m as *Dense, copying through the public contract when m is
// some other implementation. The returned matrix must be treated as read-only
// when borrowed (copied == false).
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	r, c := m.Rows(), m.Cols()
	d, _ := newDenseWithPolicy(r, c, false) // shapes already validated by callers
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, _ = m.At(i, j)
			d.data[i*c+j] = v
		}
	}

	return d
}

// MultiplyNaive computes C = A × B with the straightforward triple loop.
//
// Implementation:
//   - Stage 1: ValidateMultiplication(a, b).
//   - Stage 2: for each output cell (i,k), accumulate Σ_j a(i,j)·b(j,k) in a
//     scalar, in source order — no reordering, no compensated summation.
//
// Behavior highlights:
//   - The left operand is walked row-major; the right operand is walked down
//     a column (stride = cols). This is the intentionally memory-unfriendly
//     baseline the tiled kernel is measured against.
//   - Fast path for *Dense operands works on the flat buffers; the generic
//     fallback goes through At and preserves the identical loop order.
//
// Returns:
//   - *Dense: freshly allocated a.Rows()×b.Cols() result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validation).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func MultiplyNaive(a, b Matrix) (*Dense, error) {
	if err := ValidateMultiplication(a, b); err != nil {
		return nil, matrixErrorf(opNaive, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNaive, err)
	}

	var i, k, j int
	var sum float64

	// Fast path: both operands are Dense — index the flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var aBase int
			for i = 0; i < rows; i++ {
				aBase = i * inner
				for k = 0; k < cols; k++ {
					sum = 0
					for j = 0; j < inner; j++ { // rhs column walk, stride = cols
						sum += da.data[aBase+j] * db.data[j*cols+k]
					}
					res.data[i*cols+k] = sum
				}
			}
			return res, nil
		}
	}

	// Generic fallback: identical loop order through the public contract.
	var av, bv float64
	for i = 0; i < rows; i++ {
		for k = 0; k < cols; k++ {
			sum = 0
			for j = 0; j < inner; j++ {
				av, err = a.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opNaive, err)
				}
				bv, err = b.At(j, k)
				if err != nil {
					return nil, matrixErrorf(opNaive, err)
				}
				sum += av * bv
			}
			res.data[i*cols+k] = sum
		}
	}

	return res, nil
}

// MultiplyTiled computes C = A × B by processing the operands in fixed-size
// square tiles, staging the right tile transposed so the innermost reduction
// runs with unit stride on both sides.
//
// Implementation:
//   - Stage 1: ValidateMultiplication(a, b) and ValidateTileSize(tileSize).
//   - Stage 2: pad both operands up to the next tile multiple via
//     NewDensePadded (zero padding contributes nothing to the sums) and
//     allocate the result at the padded output shape.
//   - Stage 3: grid walk — outer it over padded rows, middle kt over padded
//     columns; per (it,kt) reset the Block accumulator and walk the shared
//     reduction dimension jt: Tiler.Load + Tiler.Multiply. After jt is
//     exhausted the accumulator holds the complete output tile; Block.Save
//     adds it into the result.
//   - Stage 4: Unpad the result back to a.Rows()×b.Cols().
//
// Behavior highlights:
//   - Dimensions that are not tile multiples are handled uniformly by the
//     padding, not by special-casing the last tile: one code path, at the
//     cost of some dead arithmetic over the zero stripes.
//   - tileSize larger than every dimension still works — padding rounds each
//     dimension up to at least one full tile.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidTileSize.
//
// Complexity:
//   - Time O(r'·n'·c') over padded shapes, Space O(r'·c' + n'·(r'+c')) for
//     the padded copies plus O(tileSize²) staging.
func MultiplyTiled(a, b Matrix, tileSize int) (*Dense, error) {
	if err := ValidateMultiplication(a, b); err != nil {
		return nil, matrixErrorf(opTiled, err)
	}
	if err := ValidateTileSize(tileSize); err != nil {
		return nil, matrixErrorf(opTiled, err)
	}

	da, db := asDense(a), asDense(b)

	// Round every dimension up to the next tile multiple. The reduction
	// padding is computed once (a.Cols == b.Rows after validation).
	padRows := paddingFor(da.r, tileSize)
	padInner := paddingFor(da.c, tileSize)
	padCols := paddingFor(db.c, tileSize)

	pl, err := NewDensePadded(da, padRows, padInner)
	if err != nil {
		return nil, matrixErrorf(opTiled, err)
	}
	pr, err := NewDensePadded(db, padInner, padCols)
	if err != nil {
		return nil, matrixErrorf(opTiled, err)
	}

	// Result at the padded output shape; unpadded at the end.
	res, err := newDenseWithPolicy(pl.r, pr.c, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTiled, err)
	}

	acc, err := NewBlock(tileSize)
	if err != nil {
		return nil, matrixErrorf(opTiled, err)
	}
	tiler, err := NewTiler(tileSize)
	if err != nil {
		return nil, matrixErrorf(opTiled, err)
	}

	var it, kt, jt int
	for it = 0; it < pl.r; it += tileSize {
		for kt = 0; kt < pr.c; kt += tileSize {
			acc.Reset(0) // fresh accumulator per output tile
			for jt = 0; jt < pl.c; jt += tileSize {
				if err = tiler.Load(pl, it, jt, pr, jt, kt); err != nil {
					return nil, matrixErrorf(opTiled, err)
				}
				if err = tiler.Multiply(acc); err != nil {
					return nil, matrixErrorf(opTiled, err)
				}
			}
			if err = acc.Save(res, it, kt); err != nil {
				return nil, matrixErrorf(opTiled, err)
			}
		}
	}

	// Strip the padding added to the left operand's rows and the right
	// operand's columns; the reduction padding never appears in the output.
	if err = res.Unpad(padRows, padCols); err != nil {
		return nil, matrixErrorf(opTiled, err)
	}

	return res, nil
}

// MultiplyTiledParallel is MultiplyTiled with the outer (it,kt) tile grid
// partitioned across workers. Each worker owns whole output tiles and its own
// Block/Tiler pair, so no locking is needed on the result: a correct grid
// partition never lands two workers on overlapping cells.
//
// Implementation:
//   - Stage 1–2: identical to MultiplyTiled (validation, padding, result).
//   - Stage 3: enumerate output tiles as flat indices, feed them through a
//     channel to `workers` goroutines; each goroutine runs the per-tile
//     reduction loop independently.
//   - Stage 4: Unpad, as in the sequential kernel.
//
// Inputs:
//   - workers: goroutine count; <= 0 selects runtime.NumCPU().
//
// Determinism:
//   - Tile-internal loop order is fixed and tiles are disjoint, so the result
//     is bit-identical to MultiplyTiled regardless of scheduling.
//
// Errors:
//   - As MultiplyTiled; the first worker error (an internal mis-sizing) wins.
//
// Complexity:
//   - Time O(r'·n'·c' / workers) ideally, Space O(workers·tileSize²) staging.
func MultiplyTiledParallel(a, b Matrix, tileSize, workers int) (*Dense, error) {
	if err := ValidateMultiplication(a, b); err != nil {
		return nil, matrixErrorf(opTiledParallel, err)
	}
	if err := ValidateTileSize(tileSize); err != nil {
		return nil, matrixErrorf(opTiledParallel, err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	da, db := asDense(a), asDense(b)

	padRows := paddingFor(da.r, tileSize)
	padInner := paddingFor(da.c, tileSize)
	padCols := paddingFor(db.c, tileSize)

	pl, err := NewDensePadded(da, padRows, padInner)
	if err != nil {
		return nil, matrixErrorf(opTiledParallel, err)
	}
	pr, err := NewDensePadded(db, padInner, padCols)
	if err != nil {
		return nil, matrixErrorf(opTiledParallel, err)
	}
	res, err := newDenseWithPolicy(pl.r, pr.c, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTiledParallel, err)
	}

	// Output tile grid: gridRows × gridCols whole tiles (shapes are padded).
	gridRows := pl.r / tileSize
	gridCols := pr.c / tileSize
	totalTiles := gridRows * gridCols
	if workers > totalTiles && totalTiles > 0 {
		workers = totalTiles // no point spinning up idle goroutines
	}

	jobs := make(chan int, totalTiles)
	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	var w int
	for w = 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Per-worker staging: accumulator and tiler are never shared.
			acc, berr := NewBlock(tileSize)
			if berr != nil {
				errOnce.Do(func() { firstErr = berr })
				return
			}
			tiler, terr := NewTiler(tileSize)
			if terr != nil {
				errOnce.Do(func() { firstErr = terr })
				return
			}
			var it, kt, jt int
			for tile := range jobs {
				it = (tile / gridCols) * tileSize
				kt = (tile % gridCols) * tileSize
				acc.Reset(0)
				for jt = 0; jt < pl.c; jt += tileSize {
					if lerr := tiler.Load(pl, it, jt, pr, jt, kt); lerr != nil {
						errOnce.Do(func() { firstErr = lerr })
						return
					}
					if merr := tiler.Multiply(acc); merr != nil {
						errOnce.Do(func() { firstErr = merr })
						return
					}
				}
				if serr := acc.Save(res, it, kt); serr != nil {
					errOnce.Do(func() { firstErr = serr })
					return
				}
			}
		}()
	}

	var tile int
	for tile = 0; tile < totalTiles; tile++ {
		jobs <- tile
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, matrixErrorf(opTiledParallel, firstErr)
	}
	if err = res.Unpad(padRows, padCols); err != nil {
		return nil, matrixErrorf(opTiledParallel, err)
	}

	return res, nil
}
