// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation of
// the Matrix interface.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// TestNewDenseInvalidShape ensures NewDense rejects non-positive dimensions.
func TestNewDenseInvalidShape(t *testing.T) {
	_, err := matrix.NewDense(0, 5) // zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, -1) // negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowsCols verifies Rows() and Cols() report the constructed shape.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestNewDenseFilled verifies every element receives the fill value.
func TestNewDenseFilled(t *testing.T) {
	m, err := matrix.NewDenseFilled(2, 3, 7.5)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 7.5, v)
		}
	}
}

// TestNewDenseFromFlat verifies row-major placement and length validation.
func TestNewDenseFromFlat(t *testing.T) {
	m, err := matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	requireMatClose(t, m, [][]float64{{1, 2}, {3, 4}}, 0)

	_, err = matrix.NewDenseFromFlat(2, 2, []float64{1, 2, 3}) // short buffer
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromFlat(0, 2, nil) // shape error has priority
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNewDenseFromRows verifies nested-row construction and the ragged and
// empty input errors.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	requireMatClose(t, m, [][]float64{{1, 2}, {3, 4}}, 0)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}}) // ragged
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil) // empty
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSetOutOfRange ensures At() and Set() reject invalid indices.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone() deep-copies the backing storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()

	require.NoError(t, clone.Set(0, 0, 3.0)) // mutate the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original unchanged
}

// TestFlatReturnsCopy ensures Flat() does not alias the matrix storage.
func TestFlatReturnsCopy(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	flat := m.Flat()
	flat[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestDenseString checks the row-per-line rendering used by the CLI.
func TestDenseString(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2.5}, {-3, 4}})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
