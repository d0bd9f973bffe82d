// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation:
// constructors, bounds-checked access, padding/unpadding and equality.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// TestNewDenseNegativeDimensions ensures NewDense rejects negative shapes.
func TestNewDenseNegativeDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)  // expect sentinel

	_, err = matrix.NewDense(5, -1)                       // negative cols
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)  // expect sentinel
}

// TestNewDenseZeroSized verifies that degenerate shapes are legal.
func TestNewDenseZeroSized(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m, err := matrix.NewDense(shape[0], shape[1]) // degenerate but legal
		require.NoError(t, err)                       // no error on zero sizes
		require.Equal(t, shape[0], m.Rows())          // shape preserved
		require.Equal(t, shape[1], m.Cols())
	}
}

// TestRowsColsShape verifies the dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m := mustDense(t, 3, 4)          // 3x4 zero matrix
	require.Equal(t, 3, m.Rows())    // row count
	require.Equal(t, 4, m.Cols())    // column count
	r, c := m.Shape()                // packed accessor
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustDense(t, 2, 2) // 2x2 matrix

	_, err := m.At(-1, 0)                         // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect sentinel

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)                       // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)                      // negative column
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)          // 2x3 matrix
	require.NoError(t, m.Set(1, 2, 7.89)) // write bottom-right element

	val, err := m.At(1, 2)      // read it back
	require.NoError(t, err)     // access succeeds
	require.Equal(t, 7.89, val) // value round-trips
}

// TestFlatAccess verifies the flat-index accessors share bounds and layout
// with the coordinate accessors.
func TestFlatAccess(t *testing.T) {
	m := mustDense(t, 2, 3)              // 2x3 matrix, 6 flat cells
	require.NoError(t, m.SetFlat(5, 42)) // flat offset 5 == (1,2)

	v, err := m.At(1, 2)    // coordinate view of the same cell
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	v, err = m.AtFlat(5) // flat read
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	_, err = m.AtFlat(6)                          // one past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetFlat(-1, 0), matrix.ErrOutOfRange) // negative offset
}

// TestSetRejectsNaNInf ensures the default numeric policy guards the
// mutation surface.
func TestSetRejectsNaNInf(t *testing.T) {
	m := mustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)        // NaN rejected
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)       // +Inf rejected
	require.ErrorIs(t, m.SetFlat(0, math.Inf(-1)), matrix.ErrNaNInf)     // -Inf rejected
}

// TestNewDenseFromFlat verifies buffer-length validation and value layout.
func TestNewDenseFromFlat(t *testing.T) {
	m, err := matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, 4}) // row-major fill
	require.NoError(t, err)

	v, err := m.At(1, 0) // second row, first column
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // row-major layout: offset 2

	_, err = matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3})       // short buffer
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, math.NaN()}) // non-finite payload
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFromFlatCopies ensures the constructor does not alias the
// caller's slice.
func TestNewDenseFromFlatCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFromFlat(2, 2, src)
	require.NoError(t, err)

	src[0] = 99 // mutate the caller's slice after construction

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // matrix is unaffected
}

// TestNewDenseFromRows verifies nested construction and ragged detection.
func TestNewDenseFromRows(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // uniform 2x3
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}}) // ragged input
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	empty, err := matrix.NewDenseFromRows(nil) // empty outer slice => 0x0
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 0, empty.Cols())
}

// TestNewDensePadded verifies zero extension: source cells copy, padding
// stripes stay zero.
func TestNewDensePadded(t *testing.T) {
	src := fromRows(t, [][]float64{{1, 2}, {3, 4}}) // 2x2 source

	p, err := matrix.NewDensePadded(src, 1, 2) // extend to 3x4
	require.NoError(t, err)
	require.Equal(t, 3, p.Rows())
	require.Equal(t, 4, p.Cols())

	var i, j int
	var v float64
	for i = 0; i < p.Rows(); i++ {
		for j = 0; j < p.Cols(); j++ {
			v, err = p.At(i, j)
			require.NoError(t, err)
			if i < 2 && j < 2 {
				want, _ := src.At(i, j)
				require.Equal(t, want, v) // source region copies
			} else {
				require.Zero(t, v) // padding stripes are zero
			}
		}
	}

	_, err = matrix.NewDensePadded(src, -1, 0)           // negative extras
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDensePadded(nil, 1, 1)            // nil source
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPaddingRoundTrip checks NewDensePadded followed by Unpad reproduces the
// source exactly for several non-negative extras.
func TestPaddingRoundTrip(t *testing.T) {
	src := mustDense(t, 3, 5)
	fillDenseRand(t, src, 7)

	for _, extras := range [][2]int{{0, 0}, {1, 0}, {0, 4}, {2, 3}, {5, 5}} {
		p, err := matrix.NewDensePadded(src, extras[0], extras[1]) // extend
		require.NoError(t, err)
		require.NoError(t, p.Unpad(extras[0], extras[1])) // shrink back in place
		require.True(t, src.Equal(p), "round trip failed for extras %v", extras)
	}
}

// TestUnpadErrors verifies Unpad's removal bounds.
func TestUnpadErrors(t *testing.T) {
	m := mustDense(t, 2, 2)

	require.ErrorIs(t, m.Unpad(3, 0), matrix.ErrDimensionMismatch)  // removes more rows than present
	require.ErrorIs(t, m.Unpad(0, -1), matrix.ErrDimensionMismatch) // negative removal
	require.NoError(t, m.Unpad(2, 2))                               // shrinking to 0x0 is legal
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not
// share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()                      // deep copy
	require.NoError(t, clone.Set(0, 0, 3.0)) // mutate the clone only

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal) // original unchanged
}

// TestEqual verifies exact equality semantics over shape and content.
func TestEqual(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := fromRows(t, [][]float64{{1, 2}, {3, 5}}) // one differing cell
	d := fromRows(t, [][]float64{{1, 2, 0}, {3, 4, 0}}) // different shape

	require.True(t, a.Equal(b))  // identical content
	require.False(t, a.Equal(c)) // value mismatch
	require.False(t, a.Equal(d)) // shape mismatch
	require.False(t, a.Equal(nil))
}

// TestEqualApprox verifies the tolerance-based comparison.
func TestEqualApprox(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}})
	b := fromRows(t, [][]float64{{1 + 1e-12, 2 - 1e-12}})

	require.True(t, a.EqualApprox(b, 1e-9))   // within tolerance
	require.False(t, a.EqualApprox(b, 1e-15)) // beyond tolerance
	require.True(t, a.EqualApprox(b, -1e-9))  // negative tol is normalized
}

// TestStringOutput checks the row-wise diagnostic formatting.
func TestStringOutput(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3.5, 4}})
	require.Equal(t, "[1, 2]\n[3.5, 4]\n", m.String()) // %g formatting per cell
}

// TestNumericPolicyDisabled verifies that a Dense built with the guard off
// admits non-finite values through the mutation surface.
func TestNumericPolicyDisabled(t *testing.T) {
	m, err := matrix.ExportedNewDenseWithPolicy(1, 1, false) // policy off
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, math.NaN())) // NaN admitted without the guard

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v)) // stored as-is
}

// TestRawDataSharesStorage documents the capability boundary: RawData is a
// live view, not a copy.
func TestRawDataSharesStorage(t *testing.T) {
	m := mustDense(t, 1, 2)
	raw := m.RawData()
	raw[1] = 6.5 // write through the raw view

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 6.5, v) // visible through the public accessor
}
