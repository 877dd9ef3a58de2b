// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridges between the matrix package and the fixed-dimension value
//     vectors in package vector: row/column embeddings, column-per-vector
//     assembly, and column extraction.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/vector"
)

// RowVector2 returns the 1×2 matrix [x y].
func RowVector2(v vector.Vec2) *Dense {
	d, _ := NewDenseFromFlat(1, 2, []float64{v.X, v.Y})

	return d
}

// RowVector3 returns the 1×3 matrix [x y z].
func RowVector3(v vector.Vec3) *Dense {
	d, _ := NewDenseFromFlat(1, 3, []float64{v.X, v.Y, v.Z})

	return d
}

// RowVector4 returns the 1×4 matrix [x y z w].
func RowVector4(v vector.Vec4) *Dense {
	d, _ := NewDenseFromFlat(1, 4, []float64{v.X, v.Y, v.Z, v.W})

	return d
}

// ColumnVector2 returns the 2×1 matrix [x y]ᵀ.
func ColumnVector2(v vector.Vec2) *Dense {
	d, _ := NewDenseFromFlat(2, 1, []float64{v.X, v.Y})

	return d
}

// ColumnVector3 returns the 3×1 matrix [x y z]ᵀ.
func ColumnVector3(v vector.Vec3) *Dense {
	d, _ := NewDenseFromFlat(3, 1, []float64{v.X, v.Y, v.Z})

	return d
}

// ColumnVector4 returns the 4×1 matrix [x y z w]ᵀ.
func ColumnVector4(v vector.Vec4) *Dense {
	d, _ := NewDenseFromFlat(4, 1, []float64{v.X, v.Y, v.Z, v.W})

	return d
}

// RowVector embeds any of the three fixed-dimension vector types as a 1×d
// matrix.
//
// Errors: ErrBadVector for any other dynamic type.
func RowVector(v any) (*Dense, error) {
	switch t := v.(type) {
	case vector.Vec2:
		return RowVector2(t), nil
	case vector.Vec3:
		return RowVector3(t), nil
	case vector.Vec4:
		return RowVector4(t), nil
	default:
		return nil, matrixErrorf(opVector,
			fmt.Errorf("%w: %T", ErrBadVector, v))
	}
}

// ColumnVector embeds any of the three fixed-dimension vector types as a
// d×1 matrix.
//
// Errors: ErrBadVector for any other dynamic type.
func ColumnVector(v any) (*Dense, error) {
	switch t := v.(type) {
	case vector.Vec2:
		return ColumnVector2(t), nil
	case vector.Vec3:
		return ColumnVector3(t), nil
	case vector.Vec4:
		return ColumnVector4(t), nil
	default:
		return nil, matrixErrorf(opVector,
			fmt.Errorf("%w: %T", ErrBadVector, v))
	}
}

// FromVectors2 assembles a 2×len matrix whose i-th column is vs[i].
//
// Errors: ErrBadShape for an empty slice.
func FromVectors2(vs []vector.Vec2) (*Dense, error) {
	d, err := NewDense(2, len(vs))
	if err != nil {
		return nil, matrixErrorf(opVector, err)
	}
	n := len(vs)
	for i, v := range vs {
		d.data[i] = v.X
		d.data[n+i] = v.Y
	}

	return d, nil
}

// FromVectors3 assembles a 3×len matrix whose i-th column is vs[i].
//
// Errors: ErrBadShape for an empty slice.
func FromVectors3(vs []vector.Vec3) (*Dense, error) {
	d, err := NewDense(3, len(vs))
	if err != nil {
		return nil, matrixErrorf(opVector, err)
	}
	n := len(vs)
	for i, v := range vs {
		d.data[i] = v.X
		d.data[n+i] = v.Y
		d.data[2*n+i] = v.Z
	}

	return d, nil
}

// FromVectors4 assembles a 4×len matrix whose i-th column is vs[i].
//
// Errors: ErrBadShape for an empty slice.
func FromVectors4(vs []vector.Vec4) (*Dense, error) {
	d, err := NewDense(4, len(vs))
	if err != nil {
		return nil, matrixErrorf(opVector, err)
	}
	n := len(vs)
	for i, v := range vs {
		d.data[i] = v.X
		d.data[n+i] = v.Y
		d.data[2*n+i] = v.Z
		d.data[3*n+i] = v.W
	}

	return d, nil
}

// extractColumn validates the bridge preconditions for column extraction:
// m non-nil, exactly wantRows rows, col within range.
func extractColumn(m Matrix, col, wantRows int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != wantRows {
		return fmt.Errorf("%w: have %d rows, want %d",
			ErrDimensionMismatch, m.Rows(), wantRows)
	}
	if col < 0 || col >= m.Cols() {
		return fmt.Errorf("%w: column %d of %d",
			ErrOutOfRange, col, m.Cols())
	}

	return nil
}

// ExtractVector2 reads column col of a 2-row matrix as a Vec2.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (Rows != 2),
// ErrOutOfRange (bad column).
func ExtractVector2(m Matrix, col int) (vector.Vec2, error) {
	if err := extractColumn(m, col, 2); err != nil {
		return vector.Vec2{}, matrixErrorf(opVector, err)
	}
	x, _ := m.At(0, col)
	y, _ := m.At(1, col)

	return vector.NewVec2(x, y), nil
}

// ExtractVector3 reads column col of a 3-row matrix as a Vec3.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (Rows != 3),
// ErrOutOfRange (bad column).
func ExtractVector3(m Matrix, col int) (vector.Vec3, error) {
	if err := extractColumn(m, col, 3); err != nil {
		return vector.Vec3{}, matrixErrorf(opVector, err)
	}
	x, _ := m.At(0, col)
	y, _ := m.At(1, col)
	z, _ := m.At(2, col)

	return vector.NewVec3(x, y, z), nil
}

// ExtractVector4 reads column col of a 4-row matrix as a Vec4.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (Rows != 4),
// ErrOutOfRange (bad column).
func ExtractVector4(m Matrix, col int) (vector.Vec4, error) {
	if err := extractColumn(m, col, 4); err != nil {
		return vector.Vec4{}, matrixErrorf(opVector, err)
	}
	x, _ := m.At(0, col)
	y, _ := m.At(1, col)
	z, _ := m.At(2, col)
	w, _ := m.At(3, col)

	return vector.NewVec4(x, y, z, w), nil
}

// SetVectors3 writes vs[i] into column i of an existing 3×len(vs) matrix.
// dst is mutated in place.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape is not 3×len(vs)).
func SetVectors3(dst Matrix, vs []vector.Vec3) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opVector, err)
	}
	if dst.Rows() != 3 || dst.Cols() != len(vs) {
		return matrixErrorf(opVector,
			fmt.Errorf("%w: have %dx%d, want 3x%d",
				ErrDimensionMismatch, dst.Rows(), dst.Cols(), len(vs)))
	}
	for i, v := range vs {
		if err := dst.Set(0, i, v.X); err != nil {
			return matrixErrorf(opVector, err)
		}
		if err := dst.Set(1, i, v.Y); err != nil {
			return matrixErrorf(opVector, err)
		}
		if err := dst.Set(2, i, v.Z); err != nil {
			return matrixErrorf(opVector, err)
		}
	}

	return nil
}
