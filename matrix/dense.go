// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support zero-extension (NewDensePadded) and in-place truncation (Unpad),
//     the pair that lets the tiled kernel round shapes up to a tile multiple
//     and strip the padding off the result afterwards.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     NewDensePadded: O(r'*c'); Unpad: O(r'*c') compaction in place.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxAtFlat  = "AtFlat"  // flat-index read tag
	ctxSetFlat = "SetFlat" // flat-index write tag
	ctxUnpad   = "Unpad"   // in-place truncation tag
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero-sized shapes are degenerate but legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set and ingestion
//     (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf on the mutation surface
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and apply the default numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-sized shapes (0×n, n×0, 0×0) are accepted: they are degenerate but
//     legal operands, and every kernel handles them by producing an empty result.
//
// Returns:
//   - *Dense: newly allocated matrix, or ErrInvalidDimensions on negatives.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy is a helper for tests/kernels to override numeric policy.
// Complexity: O(rows*cols).
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// NewDenseFromFlat creates an r×c matrix from a flat row-major buffer.
//
// Implementation:
//   - Stage 1: validate shape (non-negative) and len(data) == rows*cols.
//   - Stage 2: enforce numeric policy over the whole buffer when enabled.
//   - Stage 3: copy the buffer (the matrix owns its storage; the caller's
//     slice stays independent).
//
// Errors:
//   - ErrInvalidDimensions (negative shape), ErrDimensionMismatch (length
//     disagreement), ErrNaNInf (non-finite entry under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromFlat(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFromFlat: len(data)=%d, want %d: %w",
			len(data), rows*cols, ErrDimensionMismatch)
	}
	// Numeric policy: reject NaN/Inf at ingestion (single pass).
	if DefaultValidateNaNInf {
		for idx, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewDenseFromFlat: data[%d]: %w", idx, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data) // deep copy: the caller keeps ownership of its slice

	return &Dense{r: rows, c: cols, data: buf, validateNaNInf: DefaultValidateNaNInf}, nil
}

// NewDenseFromRows creates a matrix from a nested slice of rows.
//
// Implementation:
//   - Stage 1: derive shape from the outer slice and the first row; an empty
//     outer slice yields the legal 0×0 matrix.
//   - Stage 2: verify every row has the same length (ErrRaggedRows otherwise)
//     and enforce the numeric policy.
//   - Stage 3: pack rows into the flat buffer in order.
//
// Behavior highlights:
//   - Fail-fast on ragged input instead of silently assuming uniform rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	nr := len(rows)
	if nr == 0 {
		return NewDense(0, 0)
	}
	nc := len(rows[0])

	m := &Dense{
		r:              nr,
		c:              nc,
		data:           make([]float64, 0, nr*nc),
		validateNaNInf: DefaultValidateNaNInf,
	}
	var i int
	for i = 0; i < nr; i++ {
		if len(rows[i]) != nc {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w",
				i, len(rows[i]), nc, ErrRaggedRows)
		}
		if m.validateNaNInf {
			for j, v := range rows[i] {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("NewDenseFromRows: (%d,%d): %w", i, j, ErrNaNInf)
				}
			}
		}
		m.data = append(m.data, rows[i]...) // rows are contiguous in row-major order
	}

	return m, nil
}

// NewDensePadded creates a zero-extended copy of src.
//
// The result has shape (src.Rows()+extraRows) × (src.Cols()+extraCols);
// cells within the source bounds copy the source value, cells in the new
// padding stripes stay zero. The tiled kernel uses this to round operand
// shapes up to the next multiple of the tile size: zero padding contributes
// nothing to the sums, so correctness is preserved.
//
// Implementation:
//   - Stage 1: validate src non-nil and extras non-negative.
//   - Stage 2: allocate the padded buffer (zero-filled).
//   - Stage 3: copy src row by row; each row lands at its new, wider offset.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (negative extras).
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c') where r'=r+extraRows, c'=c+extraCols.
func NewDensePadded(src *Dense, extraRows, extraCols int) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("NewDensePadded: %w", ErrNilMatrix)
	}
	if extraRows < 0 || extraCols < 0 {
		return nil, fmt.Errorf("NewDensePadded: extras (%d,%d): %w",
			extraRows, extraCols, ErrInvalidDimensions)
	}

	nr := src.r + extraRows
	nc := src.c + extraCols
	buf := make([]float64, nr*nc) // zero-filled: the padding stripes need no extra pass

	// Copy each source row into its (wider) destination row.
	var i int
	for i = 0; i < src.r; i++ {
		copy(buf[i*nc:i*nc+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return &Dense{r: nr, c: nc, data: buf, validateNaNInf: src.validateNaNInf}, nil
}

// Unpad truncates the matrix in place to (r-removeRows) × (c-removeCols),
// keeping only the top-left sub-region and discarding everything else.
// This is the inverse of NewDensePadded for the padding the tiled kernel adds.
//
// Implementation:
//   - Stage 1: validate removals (non-negative, not exceeding current shape).
//   - Stage 2: compact surviving rows toward the front of the buffer. Rows are
//     walked front to back; every destination offset is <= its source offset,
//     so the in-place copy never overwrites unread data.
//   - Stage 3: shrink the slice header and update the shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (removing more than present or a
//     negative amount).
//
// Complexity:
//   - Time O(r'*c'), Space O(1) — no reallocation; the backing array is reused.
func (m *Dense) Unpad(removeRows, removeCols int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxUnpad, ErrNilMatrix)
	}
	if removeRows < 0 || removeCols < 0 || removeRows > m.r || removeCols > m.c {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxUnpad, removeRows, removeCols, ErrDimensionMismatch)
	}

	nr := m.r - removeRows
	nc := m.c - removeCols
	if nc != m.c {
		// Row width shrinks: compact row i from offset i*c to offset i*nc.
		var i int
		for i = 0; i < nr; i++ {
			copy(m.data[i*nc:(i+1)*nc], m.data[i*m.c:i*m.c+nc])
		}
	}
	m.data = m.data[:nr*nc] // drop the tail; capacity is retained for reuse
	m.r = nr
	m.c = nc

	return nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData exposes the flat row-major backing slice (shared storage, not a copy).
// This is the documented capability boundary for kernels that need sequential
// access (Block.Save, Tiler.Load, the BLAS bridge): mutations through the
// returned slice are visible in the matrix. Callers outside this package
// should treat it as read-only.
// Complexity: O(1).
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods (At/Set) wrap with coordinates
// and method name. Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns the sentinel error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the flat buffer.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// AtFlat returns the value at flat offset idx (row-major order).
// Complexity: O(1).
func (m *Dense) AtFlat(idx int) (float64, error) {
	if idx < 0 || idx >= len(m.data) {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxAtFlat, idx, ErrOutOfRange)
	}

	return m.data[idx], nil
}

// SetFlat stores v at flat offset idx, honoring the numeric policy.
// Complexity: O(1).
func (m *Dense) SetFlat(idx int, v float64) error {
	if idx < 0 || idx >= len(m.data) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetFlat, idx, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetFlat, idx, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Equal reports whether m and other have the same shape and identical
// element sequences (exact float64 comparison, no tolerance).
// A nil other or a nil receiver is never equal to anything.
// Complexity: O(r*c).
func (m *Dense) Equal(other Matrix) bool {
	if m == nil || other == nil {
		return false
	}
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	// Fast path: compare flat buffers directly.
	if od, ok := other.(*Dense); ok {
		for idx := range m.data {
			if m.data[idx] != od.data[idx] {
				return false
			}
		}
		return true
	}
	// Generic fallback through the public contract.
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, _ = other.At(i, j) // bounds are valid after the shape check
			if m.data[i*m.c+j] != v {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports whether m and other agree within tolerance tol
// (|a-b| <= tol elementwise). Shape must match exactly. A negative tol is
// flipped to its absolute value. Complexity: O(r*c).
func (m *Dense) EqualApprox(other Matrix, tol float64) bool {
	if m == nil || other == nil {
		return false
	}
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	if tol < 0 {
		tol = -tol
	}
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, _ = other.At(i, j)
			if math.Abs(m.data[i*m.c+j]-v) > tol {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String renders a readable row-wise dump for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
