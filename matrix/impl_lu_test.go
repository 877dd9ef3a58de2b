// SPDX-License-Identifier: MIT
// Package matrix_test covers the LU decomposition with partial pivoting:
// factor shapes, the P·A = L·U identity, determinants and solving.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// luFixture is a 3×3 matrix that forces a row swap during pivoting.
func luFixture(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustFromRows(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
}

// TestLUFactorsReconstruct verifies L·U equals the row-permuted input.
func TestLUFactorsReconstruct(t *testing.T) {
	a := luFixture(t)
	lu, err := matrix.DecomposeLU(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(lu.L(), lu.U())
	require.NoError(t, err)

	// Rebuild P·A from the pivot vector and compare.
	piv := lu.Piv()
	for i := range piv {
		for j := 0; j < a.Cols(); j++ {
			want, err := a.At(piv[i], j)
			require.NoError(t, err)
			got, err := prod.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12, "element (%d,%d)", i, j)
		}
	}
}

// TestLUUnitLowerTriangular verifies the structural invariants of L and U.
func TestLUUnitLowerTriangular(t *testing.T) {
	lu, err := matrix.DecomposeLU(luFixture(t))
	require.NoError(t, err)

	l, u := lu.L(), lu.U()
	for i := 0; i < l.Rows(); i++ {
		for j := 0; j < l.Cols(); j++ {
			lv, err := l.At(i, j)
			require.NoError(t, err)
			switch {
			case i == j:
				require.Equal(t, 1.0, lv, "L diagonal")
			case j > i:
				require.Equal(t, 0.0, lv, "L upper part")
			}
			if i > j {
				uv, err := u.At(i, j)
				require.NoError(t, err)
				require.Equal(t, 0.0, uv, "U lower part")
			}
		}
	}
}

// TestLUWideFactorization covers m < n inputs: the accessors stay within the
// m×n buffer, L and U come back trapezoidal, L·U still reconstructs P·A, and
// the underdetermined solve is rejected instead of running off the triangle.
func TestLUWideFactorization(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	lu, err := matrix.DecomposeLU(a)
	require.NoError(t, err)

	require.True(t, lu.IsNonsingular())

	l, u := lu.L(), lu.U()
	require.Equal(t, 2, l.Rows())
	require.Equal(t, 2, l.Cols())
	require.Equal(t, 2, u.Rows())
	require.Equal(t, 3, u.Cols())

	prod, err := matrix.Mul(l, u)
	require.NoError(t, err)
	piv := lu.Piv()
	for i := range piv {
		for j := 0; j < a.Cols(); j++ {
			want, err := a.At(piv[i], j)
			require.NoError(t, err)
			got, err := prod.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12, "element (%d,%d)", i, j)
		}
	}

	_, err = lu.Solve(mustFromRows(t, [][]float64{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLUDet verifies the determinant sign tracks the row swaps.
func TestLUDet(t *testing.T) {
	// [[2,1],[1,3]]: no swap, det = 5 exactly in binary arithmetic.
	lu, err := matrix.DecomposeLU(mustFromRows(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)
	d, err := lu.Det()
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	// [[0,1],[1,0]]: one swap, det = -1.
	lu, err = matrix.DecomposeLU(mustFromRows(t, [][]float64{{0, 1}, {1, 0}}))
	require.NoError(t, err)
	d, err = lu.Det()
	require.NoError(t, err)
	require.Equal(t, -1.0, d)
}

// TestLUDetNonSquare ensures Det rejects rectangular factorizations.
func TestLUDetNonSquare(t *testing.T) {
	lu, err := matrix.DecomposeLU(mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}))
	require.NoError(t, err)

	_, err = lu.Det()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestLUSolve verifies a hand-checked system: 2x+y=3, x+3y=4 ⇒ x=y=1.
func TestLUSolve(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 1}, {1, 3}})
	b := mustFromRows(t, [][]float64{{3}, {4}})

	lu, err := matrix.DecomposeLU(a)
	require.NoError(t, err)
	require.True(t, lu.IsNonsingular())

	x, err := lu.Solve(b)
	require.NoError(t, err)
	requireMatClose(t, x, [][]float64{{1}, {1}}, 1e-12)

	// Residual check through the original matrix.
	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	requireSameMat(t, ax, b, 1e-12)
}

// TestLUSolveMultiRHS verifies column-wise solving against two right-hand
// sides at once.
func TestLUSolveMultiRHS(t *testing.T) {
	a := luFixture(t)
	b := mustFromRows(t, [][]float64{{1, 0}, {0, 1}, {0, 0}})

	lu, err := matrix.DecomposeLU(a)
	require.NoError(t, err)
	x, err := lu.Solve(b)
	require.NoError(t, err)

	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	requireSameMat(t, ax, b, 1e-12)
}

// TestLUSolveSingular ensures a rank-deficient system reports ErrSingular.
func TestLUSolveSingular(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	b := mustFromRows(t, [][]float64{{1}, {2}})

	lu, err := matrix.DecomposeLU(a)
	require.NoError(t, err)
	require.False(t, lu.IsNonsingular())

	_, err = lu.Solve(b)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestLUSolveRowMismatch ensures conformance validation fires before any
// substitution work.
func TestLUSolveRowMismatch(t *testing.T) {
	lu, err := matrix.DecomposeLU(mustFromRows(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)

	_, err = lu.Solve(mustFromRows(t, [][]float64{{1}, {2}, {3}}))
	require.ErrorIs(t, err, matrix.ErrRowMismatch)
}

// TestDecomposeLUValidation covers the factory's nil check.
func TestDecomposeLUValidation(t *testing.T) {
	_, err := matrix.DecomposeLU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestLUInputUntouched ensures the factory copies rather than mutates.
func TestLUInputUntouched(t *testing.T) {
	a := luFixture(t)
	_, err := matrix.DecomposeLU(a)
	require.NoError(t, err)
	requireMatClose(t, a, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}}, 0)
}
