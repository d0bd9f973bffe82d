// SPDX-License-Identifier: MIT

// Package matrix - the BLAS reference strategy.
//
// Purpose:
//   - Delegate the whole multiplication to an optimized general matrix
//     multiply (GEMM) routine after the same shape validation as the other
//     strategies. Its role in the design is as an oracle: the naive and
//     tiled kernels are tested against it.
//   - Keep the actual routine behind a narrow GemmKernel function type so the
//     default (gonum's blas64) can be swapped or stubbed in tests without
//     linking anything vendor-specific.
//
// The default kernel computes pure C = A·B: row-major, no transposition,
// alpha fixed to 1 and beta fixed to 0.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// GEMM scale factors fixed by the design: pure product, no addend.
const (
	gemmAlpha = 1.0 // scale on the product A·B
	gemmBeta  = 0.0 // scale on the existing C content
)

// GemmKernel is the narrow contract of an external general matrix multiply:
// C = alpha·A·B + beta·C over row-major buffers with explicit leading
// dimensions. A is m×k with leading dimension lda, B is k×n with ldb,
// C is m×n with ldc. Implementations must not retain the slices.
type GemmKernel func(m, n, k int, alpha float64, a []float64, lda int,
	b []float64, ldb int, beta float64, c []float64, ldc int)

// gonumGemm adapts gonum's blas64.Gemm to the GemmKernel contract,
// wrapping each buffer as a row-major General with stride = cols.
// Mirrors the usual gonum bridge (General{Rows, Cols, Data, Stride}).
func gonumGemm(m, n, k int, alpha float64, a []float64, lda int,
	b []float64, ldb int, beta float64, c []float64, ldc int) {
	ga := blas64.General{Rows: m, Cols: k, Data: a, Stride: lda}
	gb := blas64.General{Rows: k, Cols: n, Data: b, Stride: ldb}
	gc := blas64.General{Rows: m, Cols: n, Data: c, Stride: ldc}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha, ga, gb, beta, gc)
}

// MultiplyBLAS computes C = A × B by delegating to the gonum blas64 GEMM
// kernel. Correctness contract: bit-for-bit as good as the trusted routine.
//
// Implementation:
//   - Stage 1: ValidateMultiplication(a, b).
//   - Stage 2: hand the flat row-major buffers to the default kernel with
//     alpha=1, beta=0 and leading dimensions equal to the column counts.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from validation).
//
// Complexity:
//   - Time O(r·n·c) inside the kernel, Space O(r·c) for the result.
func MultiplyBLAS(a, b Matrix) (*Dense, error) {
	return MultiplyBLASKernel(gonumGemm, a, b)
}

// MultiplyBLASKernel is MultiplyBLAS with an explicit kernel, letting tests
// substitute a stub or callers plug an alternative GEMM implementation.
// A nil kernel falls back to the gonum default.
func MultiplyBLASKernel(kernel GemmKernel, a, b Matrix) (*Dense, error) {
	if err := ValidateMultiplication(a, b); err != nil {
		return nil, matrixErrorf(opBLAS, err)
	}
	if kernel == nil {
		kernel = gonumGemm // default to the trusted routine
	}

	da, db := asDense(a), asDense(b)
	rows, inner, cols := da.r, da.c, db.c

	res, err := newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opBLAS, err)
	}
	// Degenerate shapes: nothing for the kernel to do.
	if rows == 0 || cols == 0 || inner == 0 {
		return res, nil
	}

	// Row-major, no transposition, alpha=1, beta=0: pure C = A·B.
	kernel(rows, cols, inner, gemmAlpha,
		da.data, inner, // A: rows×inner, lda = inner
		db.data, cols, // B: inner×cols, ldb = cols
		gemmBeta,
		res.data, cols) // C: rows×cols, ldc = cols

	return res, nil
}
