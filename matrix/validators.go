// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//   - Every multiplication strategy calls ValidateMultiplication first; no
//     strategy proceeds on mismatched shapes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// A typed nil *Dense also fails: it would panic on the first access.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMultiplication – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// The shared precondition of every multiplication strategy: the inner
// (reduction) dimensions must agree before any allocation happens.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMultiplication(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMultiplication", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMultiplication", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMultiplication", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTileSize – Ensures a tiled multiplication received a usable tile
// dimension. The tiled kernel pads every dimension up to a tile multiple, so
// any positive size is legal, including sizes larger than the operands.
//
// Errors: ErrInvalidTileSize when t <= 0.
// Complexity: O(1).
func ValidateTileSize(t int) error {
	if t <= 0 {
		return validatorErrorf("ValidateTileSize", ErrInvalidTileSize)
	}

	return nil
}
