// SPDX-License-Identifier: MIT

// Package matrix implements a dense double-precision matrix multiplication
// engine with three interchangeable strategies over one row-major
// representation:
//
//   - MultiplyNaive — the straightforward triple loop, the memory-unfriendly
//     baseline (left operand row-major, right operand walked down columns).
//   - MultiplyBLAS — delegation to gonum's blas64 GEMM behind the narrow
//     GemmKernel contract; the testing oracle for the other two.
//   - MultiplyTiled — the cache-aware kernel: operands are padded up to a
//     multiple of the tile size, walked as a 3-D grid of square tiles, and
//     each right-operand tile is staged transposed so the innermost
//     reduction runs with unit stride on both sides. The padding is stripped
//     off the result afterwards. MultiplyTiledParallel partitions the output
//     tile grid across workers with per-worker staging.
//
// Supporting types:
//
//   - Dense — bounds-checked row-major float64 storage with zero-extension
//     (NewDensePadded) and in-place truncation (Unpad).
//   - Block — the per-tile accumulator (Reset / Accumulate / Save).
//   - Tiler — stages one tile pair (right tile transposed) and runs the
//     localized multiply-accumulate.
//
// Error handling follows the package-wide sentinel discipline (errors.go):
// public entry points return errors matched via errors.Is, never panic on
// user input, and every strategy validates shapes before any allocation.
package matrix
