// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise kernels: Add, Sub, Hadamard (elementwise
//     product), HadamardDiv (elementwise right division), Scale, and their
//     in-place *InPlace variants.
//
// Design:
//   - Fresh-result kernels allocate exactly one Dense and never mutate inputs.
//   - In-place kernels require a concrete *Dense receiver (mutating through
//     the Matrix interface would hide aliasing from the caller).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on fast paths; i→j in fallbacks).
//   - Dense fast-path operates on a single flat buffer (row-major).

package matrix

import "fmt"

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation, allocation,
// and fast-path.
//
// Errors:
//   - ErrNilMatrix          (from ValidateBinarySameShape when a or b is nil).
//   - ErrDimensionMismatch  (from ValidateBinarySameShape when shapes differ).
//
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Validate shapes match
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct elementwise combination on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators (deterministic order)
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Read a(i,j).
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Read b(i,j).
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Write result(i,j).
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// Add computes the elementwise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the elementwise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// hadamardCombine shares validation/allocation for Hadamard and HadamardDiv.
// div selects elementwise division instead of multiplication.
func hadamardCombine(a, b Matrix, div bool, opTag string) (Matrix, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate the result Dense with the same shape.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			if div {
				for idx := 0; idx < length; idx++ { // fixed order, deterministic results
					res.data[idx] = da.data[idx] / db.data[idx] // IEEE semantics: 0/0 → NaN, x/0 → ±Inf
				}
			} else {
				for idx := 0; idx < length; idx++ {
					res.data[idx] = da.data[idx] * db.data[idx]
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop using At/Set (shape already validated).
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ { // fixed i-outer loop
		for j = 0; j < cols; j++ { // fixed j-inner loop
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if div {
				av /= bv
			} else {
				av *= bv
			}
			if err = res.Set(i, j, av); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) { return hadamardCombine(a, b, false, opHadamard) }

// HadamardDiv computes the elementwise quotient C[i,j] = a[i,j] / b[i,j]
// with a fresh Dense result. Division follows IEEE-754: zeros in b yield
// ±Inf or NaN, they are not rejected.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func HadamardDiv(a, b Matrix) (Matrix, error) { return hadamardCombine(a, b, true, opHadamardDiv) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path multiplies a *Dense backing slice in a single flat loop.
//
// Errors: ErrNilMatrix (from ValidateNotNil).
// Complexity: Time O(r*c), Space O(r*c).
//
// Notes:
//   - alpha = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf alphas propagate per IEEE semantics.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// inPlaceCombine applies dst[idx] = combine(dst[idx], src[idx]) over the flat
// buffer of dst. Shared backbone for the *InPlace kernels.
func inPlaceCombine(dst *Dense, src Matrix, opTag string, combine func(d, s float64) float64) error {
	// Validate dst non-nil (typed nil pointer) and src conformable.
	if dst == nil {
		return matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opTag, err)
	}

	// Fast-path: src is also *Dense → single flat loop.
	if ds, ok := src.(*Dense); ok {
		length := dst.r * dst.c
		for idx := 0; idx < length; idx++ {
			dst.data[idx] = combine(dst.data[idx], ds.data[idx])
		}

		return nil
	}

	// Fallback: read src through the interface, write dst flat.
	var (
		i, j int
		sv   float64
		err  error
	)
	for i = 0; i < dst.r; i++ {
		base := i * dst.c
		for j = 0; j < dst.c; j++ {
			sv, err = src.At(i, j)
			if err != nil {
				return matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			dst.data[base+j] = combine(dst.data[base+j], sv)
		}
	}

	return nil
}

// AddInPlace mutates dst elementwise: dst += src.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func AddInPlace(dst *Dense, src Matrix) error {
	return inPlaceCombine(dst, src, opAdd, func(d, s float64) float64 { return d + s })
}

// SubInPlace mutates dst elementwise: dst -= src.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func SubInPlace(dst *Dense, src Matrix) error {
	return inPlaceCombine(dst, src, opSub, func(d, s float64) float64 { return d - s })
}

// HadamardInPlace mutates dst elementwise: dst[i,j] *= src[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func HadamardInPlace(dst *Dense, src Matrix) error {
	return inPlaceCombine(dst, src, opHadamard, func(d, s float64) float64 { return d * s })
}

// HadamardDivInPlace mutates dst elementwise: dst[i,j] /= src[i,j].
// Division follows IEEE-754 semantics; zeros in src are not rejected.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func HadamardDivInPlace(dst *Dense, src Matrix) error {
	return inPlaceCombine(dst, src, opHadamardDiv, func(d, s float64) float64 { return d / s })
}

// ScaleInPlace mutates dst elementwise: dst[i,j] *= alpha.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func ScaleInPlace(dst *Dense, alpha float64) error {
	if dst == nil {
		return matrixErrorf(opScale, ErrNilMatrix)
	}
	for idx := range dst.data {
		dst.data[idx] *= alpha
	}

	return nil
}
