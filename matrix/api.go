// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - One-call facades over the decomposition factories: Solve, Inverse,
//     Det, Rank, Cond, Norm2, plus the zero/identity constructors.
//
// Dispatch rule:
//   - Square systems route through LU (cheapest exact factorization);
//     rectangular systems route through QR least squares. Rank, Cond and
//     Norm2 route through SVD. Each facade builds a fresh decomposition
//     per call; hold the decomposition object instead when solving
//     against several right-hand sides.

package matrix

import "fmt"

// NewZeros returns a rows×cols matrix of all zeros.
//
// Errors: ErrBadShape for non-positive dimensions.
// Complexity: Time O(r*c), Space O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity matrix.
//
// Errors: ErrBadShape for non-positive n.
// Complexity: Time O(n²), Space O(n²).
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}

	return d, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
//
// Errors: ErrNilMatrix.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity matrix matching m's row count.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// Solve computes X such that A·X = B. Square A routes through LU with
// partial pivoting; rectangular A yields the least-squares solution via
// Householder QR.
//
// Implementation:
//   - Stage 1: ValidateNotNil on both operands, ValidateSolveConformable.
//   - Stage 2: dispatch on A's shape, factor, substitute.
//
// Errors:
//   - ErrNilMatrix, ErrRowMismatch (A.Rows != B.Rows),
//     ErrSingular (square A with a zero pivot),
//     ErrRankDeficient (rectangular A without full column rank).
//
// Determinism: fixed pivoting and substitution orders.
// Complexity: Time O(n³ + n²·k) for n×n A and n×k B.
func Solve(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSolveConformable(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	if a.Rows() == a.Cols() {
		lu, err := DecomposeLU(a)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}

		return lu.Solve(b)
	}

	qr, err := DecomposeQR(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return qr.Solve(b)
}

// SolveTranspose computes X such that X·A = B, by solving Aᵀ·Xᵀ = Bᵀ and
// transposing back.
//
// Errors: as Solve, plus ErrDimensionMismatch when B.Cols != A.Cols.
// Complexity: as Solve plus two transposes.
func SolveTranspose(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolveTranspose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolveTranspose, err)
	}
	if b.Cols() != a.Cols() {
		return nil, matrixErrorf(opSolveTranspose,
			fmt.Errorf("%w: B is %dx%d, A has %d columns",
				ErrDimensionMismatch, b.Rows(), b.Cols(), a.Cols()))
	}

	at, err := Transpose(a)
	if err != nil {
		return nil, matrixErrorf(opSolveTranspose, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opSolveTranspose, err)
	}
	xt, err := Solve(at, bt)
	if err != nil {
		return nil, matrixErrorf(opSolveTranspose, err)
	}
	x, err := Transpose(xt)
	if err != nil {
		return nil, matrixErrorf(opSolveTranspose, err)
	}

	return x.(*Dense), nil
}

// Inverse computes A⁻¹ by solving A·X = I.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Inverse(a Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	eye, err := NewIdentity(a.Rows())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	x, err := Solve(a, eye)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return x, nil
}

// Det computes the determinant via the LU factorization: the product of
// the pivoted diagonal times the permutation sign. Exactly zero for
// singular inputs, no tolerance involved.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n³), Space O(n²).
func Det(a Matrix) (float64, error) {
	lu, err := DecomposeLU(a)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return lu.Det()
}

// Rank computes the numeric rank via SVD: the count of singular values
// above max(m,n)·σ₀·2⁻²³.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n).
func Rank(a Matrix) (int, error) {
	svd, err := DecomposeSVD(a)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return svd.Rank(), nil
}

// Cond computes the 2-norm condition number σ₀/σ_last via SVD. Returns
// +Inf for exactly singular inputs.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n).
func Cond(a Matrix) (float64, error) {
	svd, err := DecomposeSVD(a)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	return svd.Cond(), nil
}

// Norm2 computes the induced 2-norm (the largest singular value) via SVD.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n).
func Norm2(a Matrix) (float64, error) {
	svd, err := DecomposeSVD(a)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return svd.Norm2(), nil
}
