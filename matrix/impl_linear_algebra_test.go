// SPDX-License-Identifier: MIT
// Package matrix_test covers the canonical kernels Mul, Transpose and
// MatVec, including fast-path vs fallback parity.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestMulKnownProduct checks a hand-computed 3×3 product.
func TestMulKnownProduct(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 7}, {5, 2, 6}, {-1, -5, 4}})
	b := mustFromRows(t, [][]float64{{4, 3, 1}, {-7, 2, -1}, {-1, 0, -2}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatClose(t, c, [][]float64{
		{-17, 7, -15},
		{0, 19, -9},
		{27, -13, -4},
	}, 0)
}

// TestMulRectangular checks shape propagation for a 2×3 · 3×1 product.
func TestMulRectangular(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 0, 2}, {0, 3, -1}})
	b := mustFromRows(t, [][]float64{{1}, {2}, {3}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireMatClose(t, c, [][]float64{{7}, {3}}, 0)
}

// TestMulDimensionMismatch ensures inner-dimension validation fires.
func TestMulDimensionMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})
	b := mustFromRows(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulFallbackParity asserts the interface fallback path matches the
// Dense fast path exactly.
func TestMulFallbackParity(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 7}, {5, 2, 6}, {-1, -5, 4}})
	b := mustFromRows(t, [][]float64{{4, 3, 1}, {-7, 2, -1}, {-1, 0, -2}})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireSameMat(t, fast, slow, 0)
}

// TestTranspose checks mᵀ on a rectangular matrix and on the fallback path.
func TestTranspose(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	requireMatClose(t, mt, [][]float64{{1, 4}, {2, 5}, {3, 6}}, 0)

	mt2, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	requireSameMat(t, mt, mt2, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec checks y = m·x and its length validation.
func TestMatVec(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := matrix.MatVec(m, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(m, []float64{1, 2, 3}) // wrong length
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	y2, err := matrix.MatVec(hide{m}, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, y, y2)
}
