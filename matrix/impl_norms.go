// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the scalar reductions: Trace and the matrix norms Norm1,
//     NormInf, NormF. Norm2 (spectral norm) lives in api.go because it
//     delegates to the singular value decomposition.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-paths read the flat buffer directly.
//   - NormF accumulates through Hypot so badly scaled entries cannot
//     overflow the running sum of squares.

package matrix

import (
	"fmt"
	"math"
)

// Trace returns the sum of the diagonal entries over min(r, c).
// Rectangular inputs are accepted; the diagonal simply stops at the shorter
// dimension. Only a nil input is an error.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(min(r,c)), Space O(1).
func Trace(m Matrix) (float64, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	// Diagonal length is the shorter of the two dimensions.
	k := m.Rows()
	if c := m.Cols(); c < k {
		k = c
	}

	sum := ZeroSum
	// Fast-path: flat stride walk over the Dense buffer.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < k; i++ {
			sum += d.data[i*d.c+i]
		}

		return sum, nil
	}

	// Fallback: interface reads along the diagonal.
	var v float64
	var err error
	for i := 0; i < k; i++ {
		v, err = m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// Norm1 returns the maximum absolute column sum.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(c) for the per-column accumulators.
func Norm1(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	rows, cols := m.Rows(), m.Cols()
	colSums := make([]float64, cols) // one accumulator per column

	// Fast-path: single row-major pass accumulating all columns at once.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				colSums[j] += math.Abs(d.data[base+j])
			}
		}
	} else {
		var v float64
		var err error
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return 0, matrixErrorf(opNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				colSums[j] += math.Abs(v)
			}
		}
	}

	// Reduce to the largest column sum (fixed order).
	norm := NormZero
	for j := 0; j < cols; j++ {
		if colSums[j] > norm {
			norm = colSums[j]
		}
	}

	return norm, nil
}

// NormInf returns the maximum absolute row sum.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func NormInf(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	rows, cols := m.Rows(), m.Cols()

	norm := NormZero
	// Fast-path: per-row flat accumulation.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			rowSum := ZeroSum
			for j := 0; j < cols; j++ {
				rowSum += math.Abs(d.data[base+j])
			}
			if rowSum > norm {
				norm = rowSum
			}
		}

		return norm, nil
	}

	// Fallback: interface reads in fixed i→j order.
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		rowSum := ZeroSum
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			rowSum += math.Abs(v)
		}
		if rowSum > norm {
			norm = rowSum
		}
	}

	return norm, nil
}

// NormF returns the Frobenius norm, sqrt of the sum of squared entries,
// accumulated through Hypot to guard against overflow.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func NormF(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	norm := NormZero
	// Fast-path: one pass over the flat buffer.
	if d, ok := m.(*Dense); ok {
		for idx := range d.data {
			norm = Hypot(norm, d.data[idx])
		}

		return norm, nil
	}

	// Fallback: interface reads in fixed i→j order.
	rows, cols := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNorm, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			norm = Hypot(norm, v)
		}
	}

	return norm, nil
}
