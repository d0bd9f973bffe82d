// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates a nonsensical shape request
	// (negative rows/cols, negative padding, non-positive block dimension).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row, column or flat offset) is
	// outside valid bounds. Public indexers (At/Set/AtFlat/SetFlat) MUST
	// return this, not panic. It also flags a tile or save region that does
	// not fit inside its destination — a programming error, not a runtime
	// condition; propagate, do not swallow.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: multiplication where a.Cols != b.Rows, a flat buffer whose
	// length disagrees with rows*cols, an Unpad removing more than present,
	// or two blocks of different dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows indicates that the nested-slice constructor received rows
	// of unequal length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrInvalidTileSize indicates a non-positive tile size passed to a tiled
	// multiplication. Tile sizes must be >= 1; padding rounds every dimension
	// up, so any positive size is legal regardless of the operand shapes.
	ErrInvalidTileSize = errors.New("matrix: tile size must be > 0")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrUnsupportedTensor indicates that an interop conversion received a
	// tensor of unsupported rank or element type (only 2-D float64 is
	// convertible into a Dense).
	ErrUnsupportedTensor = errors.New("matrix: unsupported tensor layout")
)
