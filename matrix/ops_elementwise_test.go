// SPDX-License-Identifier: MIT
// Package matrix_test covers the elementwise kernels: Add, Sub, Hadamard,
// HadamardDiv, Scale and their in-place variants.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestAddSub verifies elementwise addition and subtraction on the Dense
// fast path and on the interface fallback.
func TestAddSub(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	requireMatClose(t, sum, [][]float64{{11, 22}, {33, 44}}, 0)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	requireMatClose(t, diff, [][]float64{{9, 18}, {27, 36}}, 0)

	// Fallback path must agree with the fast path exactly.
	sum2, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	requireSameMat(t, sum, sum2, 0)
}

// TestAddShapeMismatch ensures shape validation fires before any work.
func TestAddShapeMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})
	b := mustFromRows(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestHadamard verifies the elementwise product and quotient, including
// IEEE semantics for division by zero.
func TestHadamard(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -2}, {3, 0}})
	b := mustFromRows(t, [][]float64{{2, 2}, {2, 2}})

	prod, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	requireMatClose(t, prod, [][]float64{{2, -4}, {6, 0}}, 0)

	quot, err := matrix.HadamardDiv(b, a)
	require.NoError(t, err)
	v, err := quot.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
	v, err = quot.At(1, 1) // 2/0 follows IEEE, no error
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestScale verifies scalar multiplication leaves the input untouched.
func TestScale(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	out, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	requireMatClose(t, out, [][]float64{{-2, -4}, {-6, -8}}, 0)
	requireMatClose(t, a, [][]float64{{1, 2}, {3, 4}}, 0) // source intact
}

// TestInPlaceVariants verifies AddInPlace/SubInPlace/ScaleInPlace mutate
// dst and enforce shape agreement.
func TestInPlaceVariants(t *testing.T) {
	dst := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	src := mustFromRows(t, [][]float64{{1, 1}, {1, 1}})

	require.NoError(t, matrix.AddInPlace(dst, src))
	requireMatClose(t, dst, [][]float64{{2, 3}, {4, 5}}, 0)

	require.NoError(t, matrix.SubInPlace(dst, src))
	requireMatClose(t, dst, [][]float64{{1, 2}, {3, 4}}, 0)

	require.NoError(t, matrix.HadamardInPlace(dst, src))
	requireMatClose(t, dst, [][]float64{{1, 2}, {3, 4}}, 0)

	require.NoError(t, matrix.ScaleInPlace(dst, 2))
	requireMatClose(t, dst, [][]float64{{2, 4}, {6, 8}}, 0)

	bad := mustFromRows(t, [][]float64{{1, 1, 1}})
	require.ErrorIs(t, matrix.AddInPlace(dst, bad), matrix.ErrDimensionMismatch)
}
