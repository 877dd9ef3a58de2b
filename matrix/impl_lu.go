// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - LU factorization with partial pivoting: P·A = L·U with L unit lower
//     triangular, U upper triangular and P a row permutation.
//   - Entry point for square solves, determinants and inversion.
//
// Algorithm:
//   - Crout/Doolittle elimination over the row-major working buffer. For
//     each column j: apply dot-product corrections from the already-computed
//     factors, pick the largest-magnitude pivot at or below the diagonal,
//     swap rows (tracking parity in pivsign), then scale the sub-diagonal
//     column by the pivot.
//
// Determinism & Performance:
//   - Fixed column-major elimination order; pivot ties resolve to the
//     smallest row index (strict > comparison).
//   - One working copy of the input; one scratch column; O(m*n) extra space.

package matrix

import (
	"fmt"
	"math"
)

// LUDecomposition holds the factors of P·A = L·U computed eagerly by
// DecomposeLU. The struct owns its buffers exclusively and is immutable
// after construction; the source Matrix is never retained.
type LUDecomposition struct {
	lu      []float64 // combined factors: L strictly below diagonal, U on/above
	m, n    int       // shape of the factored matrix
	piv     []int     // row permutation, always a permutation of [0..m)
	pivsign float64   // ±1, parity of row swaps; det = pivsign * Π U[i,i]
}

// DecomposeLU factors m into P·A = L·U with partial pivoting.
// The input is copied at entry and never mutated; factorization runs to
// completion before returning (eager evaluation).
//
// Implementation:
//   - Stage 1: ValidateNotNil; take a private row-major copy.
//   - Stage 2: column-by-column Doolittle elimination with row pivoting.
//
// Errors:
//   - ErrNilMatrix (nil input), wrapped At errors from non-Dense inputs.
//
// Complexity: Time O(m*n*min(m,n)), Space O(m*n).
func DecomposeLU(mx Matrix) (*LUDecomposition, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(mx); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	// Private working copy (decompositions never alias caller buffers).
	rows, cols, lu, err := denseCopyOf(mx)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	d := &LUDecomposition{lu: lu, m: rows, n: cols, piv: make([]int, rows), pivsign: 1}
	for i := 0; i < rows; i++ {
		d.piv[i] = i // identity permutation before any swaps
	}

	luColj := make([]float64, rows) // scratch: the active column
	var (
		i, j, k, kmax, p int
		s                float64
	)
	for j = 0; j < cols; j++ {
		// Copy the j-th column into scratch for locality.
		for i = 0; i < rows; i++ {
			luColj[i] = lu[i*cols+j]
		}

		// Apply previously computed transformations (dot-product updates).
		for i = 0; i < rows; i++ {
			kmax = i
			if j < kmax {
				kmax = j
			}
			s = ZeroSum
			for k = 0; k < kmax; k++ {
				s += lu[i*cols+k] * luColj[k]
			}
			luColj[i] -= s
			lu[i*cols+j] = luColj[i]
		}

		// Find the pivot: largest magnitude at or below the diagonal.
		p = j
		for i = j + 1; i < rows; i++ {
			if math.Abs(luColj[i]) > math.Abs(luColj[p]) {
				p = i
			}
		}
		if p != j {
			// Swap the full rows p and j in the working buffer.
			for k = 0; k < cols; k++ {
				lu[p*cols+k], lu[j*cols+k] = lu[j*cols+k], lu[p*cols+k]
			}
			// Mirror the swap in the permutation and flip parity.
			d.piv[p], d.piv[j] = d.piv[j], d.piv[p]
			d.pivsign = -d.pivsign
		}

		// Scale the sub-diagonal column by the pivot.
		if j < rows && lu[j*cols+j] != ZeroPivot {
			for i = j + 1; i < rows; i++ {
				lu[i*cols+j] /= lu[j*cols+j]
			}
		}
	}

	return d, nil
}

// minDim returns min(m, n), the length of the U diagonal.
func (d *LUDecomposition) minDim() int {
	if d.m < d.n {
		return d.m
	}

	return d.n
}

// IsNonsingular reports whether U has a full nonzero diagonal over
// min(m, n) entries. Only meaningful for square systems; a zero U diagonal
// entry makes Solve/Inverse fail with ErrSingular.
// Complexity: O(min(m,n)).
func (d *LUDecomposition) IsNonsingular() bool {
	for j := 0; j < d.minDim(); j++ {
		if d.lu[j*d.n+j] == ZeroPivot {
			return false
		}
	}

	return true
}

// L returns the unit lower trapezoidal factor as a fresh m×min(m,n) Dense
// (m×n for tall or square inputs).
// Complexity: O(m*min(m,n)).
func (d *LUDecomposition) L() *Dense {
	k := d.minDim()
	out, _ := NewDense(d.m, k) // shape is valid by construction
	for i := 0; i < d.m; i++ {
		for j := 0; j < k; j++ {
			switch {
			case i > j:
				out.data[i*k+j] = d.lu[i*d.n+j]
			case i == j:
				out.data[i*k+j] = 1.0 // unit diagonal
			}
		}
	}

	return out
}

// U returns the upper trapezoidal factor as a fresh min(m,n)×n Dense
// (n×n for tall or square inputs).
// Complexity: O(min(m,n)*n).
func (d *LUDecomposition) U() *Dense {
	k := d.minDim()
	out, _ := NewDense(k, d.n)
	for i := 0; i < k; i++ {
		for j := i; j < d.n; j++ {
			out.data[i*d.n+j] = d.lu[i*d.n+j]
		}
	}

	return out
}

// Piv returns a copy of the row permutation applied during pivoting.
// Complexity: O(m).
func (d *LUDecomposition) Piv() []int {
	out := make([]int, d.m)
	copy(out, d.piv)

	return out
}

// Det returns the determinant pivsign * Π U[i,i].
// Errors: ErrNonSquare when the factored matrix is not square.
// Complexity: O(n).
func (d *LUDecomposition) Det() (float64, error) {
	// Determinant is defined for square matrices only.
	if d.m != d.n {
		return 0, matrixErrorf(opDet, ErrNonSquare)
	}
	det := d.pivsign
	for j := 0; j < d.n; j++ {
		det *= d.lu[j*d.n+j]
	}

	return det, nil
}

// Solve returns X such that A·X = B using the stored factors:
// apply the row permutation to B, forward-substitute with L (unit diagonal),
// then back-substitute with U.
//
// Underdetermined factorizations (m < n) are rejected: forward/back
// substitution needs a full n-row triangle, which a wide buffer cannot hold.
//
// Errors:
//   - ErrNilMatrix         (nil B).
//   - ErrDimensionMismatch (wide factorization, m < n).
//   - ErrRowMismatch       (B.Rows() != A.Rows()).
//   - ErrSingular          (zero on the U diagonal).
//
// Complexity: Time O(n²·nx), Space O(m·nx) for the solution workspace.
func (d *LUDecomposition) Solve(b Matrix) (*Dense, error) {
	// Validate the right-hand side.
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if d.m < d.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	if b.Rows() != d.m {
		return nil, matrixErrorf(opSolve, ErrRowMismatch)
	}
	if !d.IsNonsingular() {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}

	// Copy B with its rows permuted to match the pivoting.
	nx := b.Cols()
	x := make([]float64, d.m*nx)
	if db, ok := b.(*Dense); ok {
		for i := 0; i < d.m; i++ {
			copy(x[i*nx:(i+1)*nx], db.data[d.piv[i]*nx:(d.piv[i]+1)*nx])
		}
	} else {
		var v float64
		var err error
		for i := 0; i < d.m; i++ {
			for j := 0; j < nx; j++ {
				v, err = b.At(d.piv[i], j)
				if err != nil {
					return nil, matrixErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", d.piv[i], j, err))
				}
				x[i*nx+j] = v
			}
		}
	}

	// Forward substitution: solve L·Y = P·B (unit diagonal).
	var i, j, k int
	for k = 0; k < d.n; k++ {
		for i = k + 1; i < d.n; i++ {
			for j = 0; j < nx; j++ {
				x[i*nx+j] -= x[k*nx+j] * d.lu[i*d.n+k]
			}
		}
	}
	// Back substitution: solve U·X = Y.
	for k = d.n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x[k*nx+j] /= d.lu[k*d.n+k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				x[i*nx+j] -= x[k*nx+j] * d.lu[i*d.n+k]
			}
		}
	}

	// Package the first n rows as the solution.
	out, err := NewDenseFromFlat(d.n, nx, x[:d.n*nx])
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return out, nil
}
