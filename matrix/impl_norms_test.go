// SPDX-License-Identifier: MIT
// Package matrix_test covers Trace, Norm1, NormInf and NormF.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestTrace verifies the diagonal sum, including the rectangular case that
// sums only the min(r,c) leading diagonal.
func TestTrace(t *testing.T) {
	sq := mustFromRows(t, [][]float64{{1, -2}, {3, 4}})
	tr, err := matrix.Trace(sq)
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err = matrix.Trace(rect) // 1 + 5, no ErrNonSquare
	require.NoError(t, err)
	require.Equal(t, 6.0, tr)

	_, err = matrix.Trace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNorms verifies the three norms on one fixed matrix:
// columns sums {4, 6}, row sums {3, 7}, Frobenius √30.
func TestNorms(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}, {3, 4}})

	n1, err := matrix.Norm1(m)
	require.NoError(t, err)
	require.Equal(t, 6.0, n1)

	ninf, err := matrix.NormInf(m)
	require.NoError(t, err)
	require.Equal(t, 7.0, ninf)

	nf, err := matrix.NormF(m)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(30), nf, 1e-12)
}

// TestNormsFallbackParity asserts the interface path agrees with the
// Dense fast path.
func TestNormsFallbackParity(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2, 0.5}, {3, 4, -7}})

	for _, norm := range []func(matrix.Matrix) (float64, error){
		matrix.Norm1, matrix.NormInf, matrix.NormF,
	} {
		fast, err := norm(m)
		require.NoError(t, err)
		slow, err := norm(hide{m})
		require.NoError(t, err)
		require.InDelta(t, fast, slow, 1e-12)
	}
}
