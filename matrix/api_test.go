// SPDX-License-Identifier: MIT
// Package matrix_test covers the facade layer: constructors and the
// one-call Solve/Inverse/Det/Rank/Cond/Norm2 entry points.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestNewIdentity verifies the identity constructor and its shape check.
func TestNewIdentity(t *testing.T) {
	eye, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireMatClose(t, eye, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 0)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestZerosIdentityLike verifies the shape-copying constructors.
func TestZerosIdentityLike(t *testing.T) {
	src := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	z, err := matrix.ZerosLike(src)
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = matrix.IdentityLike(src) // rectangular source
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq := mustFromRows(t, [][]float64{{7, 0}, {0, 7}})
	eye, err := matrix.IdentityLike(sq)
	require.NoError(t, err)
	requireMatClose(t, eye, [][]float64{{1, 0}, {0, 1}}, 0)
}

// TestSolveSquare verifies the LU route: 2x+y=3, x+3y=4 ⇒ x=y=1.
func TestSolveSquare(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 1}, {1, 3}})
	b := mustFromRows(t, [][]float64{{3}, {4}})

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	requireMatClose(t, x, [][]float64{{1}, {1}}, 1e-12)
}

// TestSolveRectangular verifies the QR least-squares route.
func TestSolveRectangular(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})
	b := mustFromRows(t, [][]float64{{1}, {1}, {2}})

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	requireMatClose(t, x, [][]float64{{1}, {1}}, 1e-12)
}

// TestSolveErrors covers nil, conformance and singularity propagation.
func TestSolveErrors(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	b := mustFromRows(t, [][]float64{{1}, {2}})

	_, err := matrix.Solve(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Solve(a, mustFromRows(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrRowMismatch)

	_, err = matrix.Solve(a, b) // exactly singular square system
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolveTranspose verifies X·A = B through the transposed route:
// solving against the identity must produce A⁻¹.
func TestSolveTranspose(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 1}, {1, 3}})
	eye, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	x, err := matrix.SolveTranspose(a, eye)
	require.NoError(t, err)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireSameMat(t, x, inv, 1e-12)

	// Column conformance check: B must share A's column count.
	_, err = matrix.SolveTranspose(a, mustFromRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse verifies A·A⁻¹ = I and the error taxonomy.
func TestInverse(t *testing.T) {
	a := mustFromRows(t, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireMatClose(t, prod, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1e-12)

	_, err = matrix.Inverse(mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(mustFromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestDetFacade verifies the sign and magnitude routed through LU.
func TestDetFacade(t *testing.T) {
	d, err := matrix.Det(mustFromRows(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	d, err = matrix.Det(mustFromRows(t, [][]float64{{1, 2}, {2, 4}})) // singular
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	_, err = matrix.Det(mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestRankCondNorm2Facades verifies the SVD-routed scalars.
func TestRankCondNorm2Facades(t *testing.T) {
	a := mustFromRows(t, [][]float64{{3, 0}, {0, -4}})

	r, err := matrix.Rank(a)
	require.NoError(t, err)
	require.Equal(t, 2, r)

	c, err := matrix.Cond(a)
	require.NoError(t, err)
	require.InDelta(t, 4.0/3.0, c, 1e-12)

	n2, err := matrix.Norm2(a)
	require.NoError(t, err)
	require.InDelta(t, 4.0, n2, 1e-12)
}
