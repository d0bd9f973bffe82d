// SPDX-License-Identifier: MIT

// Package matrix - Block: the fixed-size square accumulator of the tiled kernel.
//
// Purpose:
//   - Hold one dim×dim output tile while the reduction dimension is walked.
//   - Reset to a scalar before each accumulation pass, absorb partial
//     products from the Tiler, and finally add its contents into the
//     destination Dense at a tile offset (Save).
//
// A Block is transient: a multiplication call creates it, reuses it for every
// (it,kt) grid cell, and drops it when the call returns. It never outlives
// its producing call.

package matrix

import "fmt"

// Block is a square dim×dim accumulator with a flat row-major buffer.
// Element (i,j) lives at i*dim + j, mirroring the Dense layout so Save can
// stream rows with copy-friendly strides.
type Block struct {
	dim  int       // tile dimension (>0)
	data []float64 // flat row-major storage (len == dim*dim)
}

// NewBlock creates a zero-filled dim×dim accumulator.
// Errors: ErrInvalidDimensions when dim <= 0 — a zero-sized accumulator has
// no meaningful tile to hold.
// Complexity: O(dim²).
func NewBlock(dim int) (*Block, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("NewBlock(%d): %w", dim, ErrInvalidDimensions)
	}

	return &Block{dim: dim, data: make([]float64, dim*dim)}, nil
}

// Dim returns the tile dimension. Complexity: O(1).
func (b *Block) Dim() int { return b.dim }

// At returns element (i,j) of the block, bounds-checked.
// Complexity: O(1).
func (b *Block) At(i, j int) (float64, error) {
	if i < 0 || i >= b.dim || j < 0 || j >= b.dim {
		return 0, fmt.Errorf("Block.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return b.data[i*b.dim+j], nil
}

// Set assigns element (i,j) of the block, bounds-checked.
// Complexity: O(1).
func (b *Block) Set(i, j int, v float64) error {
	if i < 0 || i >= b.dim || j < 0 || j >= b.dim {
		return fmt.Errorf("Block.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	b.data[i*b.dim+j] = v

	return nil
}

// Reset fills the whole block with the scalar v.
// The tiled kernel resets to zero before each (it,kt) reduction pass.
// Complexity: O(dim²).
func (b *Block) Reset(v float64) {
	for idx := range b.data {
		b.data[idx] = v
	}
}

// Accumulate adds other into b elementwise (b += other).
// Errors: ErrDimensionMismatch when the dimensions differ, ErrNilMatrix on a
// nil argument.
// Complexity: O(dim²).
func (b *Block) Accumulate(other *Block) error {
	if other == nil {
		return fmt.Errorf("Block.Accumulate: %w", ErrNilMatrix)
	}
	if other.dim != b.dim {
		return fmt.Errorf("Block.Accumulate: dim %d vs %d: %w", b.dim, other.dim, ErrDimensionMismatch)
	}
	for idx := range b.data {
		b.data[idx] += other.data[idx]
	}

	return nil
}

// Save adds the block's contents into the rectangular region of dst whose
// top-left corner is (rowOff, colOff). The write is additive, matching the
// accumulator contract: the destination tile may already hold partial sums.
//
// Implementation:
//   - Stage 1: validate dst and that the dim×dim region fits inside it.
//   - Stage 2: stream block rows onto the destination rows through the flat
//     buffer (the RawData capability boundary); both sides advance with unit
//     stride inside a row.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (region does not fit — an internal
//     mis-sizing, propagate, do not swallow).
//
// Complexity:
//   - Time O(dim²), Space O(1).
func (b *Block) Save(dst *Dense, rowOff, colOff int) error {
	if dst == nil {
		return fmt.Errorf("Block.Save: %w", ErrNilMatrix)
	}
	if rowOff < 0 || colOff < 0 || rowOff+b.dim > dst.r || colOff+b.dim > dst.c {
		return fmt.Errorf("Block.Save(%d,%d): %dx%d block: %w",
			rowOff, colOff, b.dim, b.dim, ErrOutOfRange)
	}

	out := dst.RawData()
	var i, j, src, dstOff int
	for i = 0; i < b.dim; i++ {
		src = i * b.dim                      // block row start
		dstOff = (rowOff+i)*dst.c + colOff   // destination row start
		for j = 0; j < b.dim; j++ {          // additive write, unit stride
			out[dstOff+j] += b.data[src+j]
		}
	}

	return nil
}
