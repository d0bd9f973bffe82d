// SPDX-License-Identifier: MIT

// Package matrix_test: shared helpers for the matrix package test suite.
// Helpers fail the calling test on any setup error so individual tests stay
// focused on the behavior under verification.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// closeTol is the elementwise tolerance for cross-strategy comparisons.
// All agreement properties in the suite hold well within 1e-9 for the
// magnitudes used here.
const closeTol = 1e-9

// mustDense creates an r×c zero Dense or fails the test.
func mustDense(tb testing.TB, rows, cols int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(rows, cols) // allocate zero-filled matrix
	require.NoError(tb, err)              // creation must succeed in helpers

	return m
}

// fromRows builds a Dense from nested rows or fails the test.
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows) // pack rows into flat storage
	require.NoError(tb, err)                // rows are uniform in tests using this helper

	return m
}

// fillDenseRand fills m with deterministic pseudo-random values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed)) // deterministic stream per seed
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1)) // finite by construction
		}
	}
}

// requireAllClose asserts want and got agree in shape and elementwise within tol.
func requireAllClose(tb testing.TB, want, got *matrix.Dense, tol float64) {
	tb.Helper()
	require.NotNil(tb, got)                  // kernel must produce a result
	require.Equal(tb, want.Rows(), got.Rows()) // shape must match exactly
	require.Equal(tb, want.Cols(), got.Cols())
	require.True(tb, want.EqualApprox(got, tol),
		"matrices differ beyond tol=%g:\nwant:\n%sgot:\n%s", tol, want, got)
}
