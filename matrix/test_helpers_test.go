// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Small deterministic constructors that abort the test on error.
//   - A wrapper that hides *Dense so kernels exercise the interface path.
//   - Tolerance assertions for whole matrices.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// hide wraps any Matrix to defeat the *Dense type assertion, forcing the
// code under test onto its At/Set fallback path.
type hide struct{ matrix.Matrix }

// mustFromRows builds a Dense from nested rows or aborts the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireMatClose asserts every element of got matches want within tol.
func requireMatClose(t *testing.T, got matrix.Matrix, want [][]float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, tol, "element (%d,%d)", i, j)
		}
	}
}

// requireSameMat asserts two matrices agree elementwise within tol.
func requireSameMat(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "row count")
	require.Equal(t, a.Cols(), b.Cols(), "column count")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, av, bv, tol, "element (%d,%d)", i, j)
		}
	}
}

// requireOrthonormalCols asserts mᵀ·m ≈ I within tol, i.e. the columns of
// m form an orthonormal set.
func requireOrthonormalCols(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	gram, err := matrix.Mul(mt, m)
	require.NoError(t, err)
	for i := 0; i < gram.Rows(); i++ {
		for j := 0; j < gram.Cols(); j++ {
			v, err := gram.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, v, tol, "gram (%d,%d)", i, j)
		}
	}
}
