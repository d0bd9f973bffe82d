// SPDX-License-Identifier: MIT

// Package matrix - Tiler: tile staging and the transposed micro-kernel.
//
// Purpose:
//   - Stage one dim×dim sub-block from each operand of a tiled multiply:
//     the left tile in row-major order, the right tile TRANSPOSED.
//   - Run the multiply-accumulate of the staged pair into a caller-supplied
//     Block with unit stride on both sides of the inner reduction.
//
// Why transpose the right tile? In C[i,k] += Σ_j A[i,j]·B[j,k] the factor
// B[j,k] walks a column, i.e. memory with stride = cols. Storing the right
// tile as rhsT(k,j) == B(j,k) turns that column walk into a row walk, so the
// innermost loop reads both staged buffers sequentially. That is the entire
// point of the staging step.
//
// A Tiler is transient: one instance is reused across all grid cells of a
// single multiplication call and has no identity beyond it.

package matrix

import "fmt"

// Tiler stages a matching pair of square tiles and multiplies them.
// lhs holds the left tile row-major; rhsT holds the right tile transposed.
type Tiler struct {
	dim  int    // tile dimension (>0)
	lhs  *Block // left tile, row-major
	rhsT *Block // right tile, transposed layout
}

// NewTiler creates a Tiler with two zeroed dim×dim staging blocks.
// Errors: ErrInvalidDimensions when dim <= 0.
// Complexity: O(dim²).
func NewTiler(dim int) (*Tiler, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("NewTiler(%d): %w", dim, ErrInvalidDimensions)
	}
	lhs, err := NewBlock(dim)
	if err != nil {
		return nil, err
	}
	rhsT, err := NewBlock(dim)
	if err != nil {
		return nil, err
	}

	return &Tiler{dim: dim, lhs: lhs, rhsT: rhsT}, nil
}

// Dim returns the tile dimension. Complexity: O(1).
func (t *Tiler) Dim() int { return t.dim }

// Load stages the dim×dim sub-block of lhs at (lhsRow,lhsCol) in row-major
// order and the sub-block of rhs at (rhsRow,rhsCol) transposed, so that
// rhsT(c,r) == rhs(rhsRow+r, rhsCol+c).
//
// Implementation:
//   - Stage 1: validate operands and that both tiles fit entirely inside
//     their (padded) sources. The tiled kernel always pads shapes up to a
//     tile multiple first, so a failure here is an internal mis-sizing.
//   - Stage 2: copy the left tile row by row (contiguous copy per row).
//   - Stage 3: scatter the right tile into transposed position; reads are
//     sequential along the source row, writes stride by dim.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(dim²), Space O(1) — staging buffers are preallocated.
func (t *Tiler) Load(lhs *Dense, lhsRow, lhsCol int, rhs *Dense, rhsRow, rhsCol int) error {
	if lhs == nil || rhs == nil {
		return fmt.Errorf("Tiler.Load: %w", ErrNilMatrix)
	}
	if lhsRow < 0 || lhsCol < 0 || lhsRow+t.dim > lhs.r || lhsCol+t.dim > lhs.c {
		return fmt.Errorf("Tiler.Load: lhs tile (%d,%d): %w", lhsRow, lhsCol, ErrOutOfRange)
	}
	if rhsRow < 0 || rhsCol < 0 || rhsRow+t.dim > rhs.r || rhsCol+t.dim > rhs.c {
		return fmt.Errorf("Tiler.Load: rhs tile (%d,%d): %w", rhsRow, rhsCol, ErrOutOfRange)
	}

	ldata := lhs.RawData()
	rdata := rhs.RawData()
	var r, c, src int

	// Left tile: straight row-major copy, one contiguous copy per row.
	for r = 0; r < t.dim; r++ {
		src = (lhsRow+r)*lhs.c + lhsCol
		copy(t.lhs.data[r*t.dim:(r+1)*t.dim], ldata[src:src+t.dim])
	}

	// Right tile: transpose while staging. Source rows are read sequentially;
	// destination writes stride by dim (column of rhsT).
	for r = 0; r < t.dim; r++ {
		src = (rhsRow+r)*rhs.c + rhsCol
		for c = 0; c < t.dim; c++ {
			t.rhsT.data[c*t.dim+r] = rdata[src+c]
		}
	}

	return nil
}

// Multiply accumulates the product of the staged pair into acc:
// acc(i,k) += Σ_j lhs(i,j) · rhsT(k,j). Both staged buffers are walked with
// unit stride in the inner loop — the payoff of the transposed staging.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (accumulator dimension disagrees).
//
// Complexity:
//   - Time O(dim³), Space O(1).
func (t *Tiler) Multiply(acc *Block) error {
	if acc == nil {
		return fmt.Errorf("Tiler.Multiply: %w", ErrNilMatrix)
	}
	if acc.dim != t.dim {
		return fmt.Errorf("Tiler.Multiply: accumulator dim %d, want %d: %w",
			acc.dim, t.dim, ErrDimensionMismatch)
	}

	d := t.dim
	var i, k, j, lhsBase, rhsBase int
	var sum float64
	for i = 0; i < d; i++ {
		lhsBase = i * d
		for k = 0; k < d; k++ {
			rhsBase = k * d
			sum = 0
			for j = 0; j < d; j++ { // unit stride on both operands
				sum += t.lhs.data[lhsBase+j] * t.rhsT.data[rhsBase+j]
			}
			acc.data[lhsBase+k] += sum
		}
	}

	return nil
}
