// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Householder QR factorization A = Q·R with Q column-orthonormal and R
//     upper triangular; entry point for least-squares solves of m×n systems
//     with m ≥ n.
//
// Algorithm:
//   - For each column k: accumulate the subcolumn 2-norm through Hypot
//     (never naive sum-of-squares), pick the reflection sign opposite to the
//     pivot entry, normalize the Householder vector so its leading entry is
//     +1, and apply the reflection to the trailing columns. The negated norm
//     lands in rdiag[k]; the reflection vectors stay below the diagonal.
//
// Determinism & Performance:
//   - Fixed k→j→i loop orders; one working copy of the input; O(n) rdiag.

package matrix

// QRDecomposition holds the Householder factorization computed eagerly by
// DecomposeQR. Reflection vectors live below the diagonal of qr, R strictly
// above it, and rdiag carries the R diagonal. Immutable after construction.
type QRDecomposition struct {
	qr    []float64 // packed Householder vectors (below diag) and R (above)
	m, n  int       // shape of the factored matrix
	rdiag []float64 // diagonal of R, sign opposite to the pivot entry
}

// DecomposeQR factors m into Q·R via successive Householder reflections.
// The input is copied at entry and never mutated.
//
// Errors: ErrNilMatrix, wrapped At errors from non-Dense inputs.
// Complexity: Time O(m*n²), Space O(m*n).
func DecomposeQR(mx Matrix) (*QRDecomposition, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(mx); err != nil {
		return nil, matrixErrorf(opQR, err)
	}
	// Private working copy.
	rows, cols, qr, err := denseCopyOf(mx)
	if err != nil {
		return nil, matrixErrorf(opQR, err)
	}

	d := &QRDecomposition{qr: qr, m: rows, n: cols, rdiag: make([]float64, cols)}
	var (
		i, j, k int
		nrm, s  float64
	)
	for k = 0; k < cols; k++ {
		// 2-norm of the k-th subcolumn, overflow-safe via Hypot.
		nrm = NormZero
		for i = k; i < rows; i++ {
			nrm = Hypot(nrm, qr[i*cols+k])
		}

		if nrm != NormZero {
			// Sign chosen opposite to the pivot entry for a well-defined R.
			if qr[k*cols+k] < 0 {
				nrm = -nrm
			}
			// Form the Householder vector; leading entry becomes +1.
			for i = k; i < rows; i++ {
				qr[i*cols+k] /= nrm
			}
			qr[k*cols+k] += 1.0

			// Apply the reflection to the remaining columns.
			for j = k + 1; j < cols; j++ {
				s = ZeroSum
				for i = k; i < rows; i++ {
					s += qr[i*cols+k] * qr[i*cols+j]
				}
				s = -s / qr[k*cols+k]
				for i = k; i < rows; i++ {
					qr[i*cols+j] += s * qr[i*cols+k]
				}
			}
		}
		d.rdiag[k] = -nrm
	}

	return d, nil
}

// IsFullRank reports whether R has a full nonzero diagonal, i.e. the least
// squares problem has a unique solution.
// Complexity: O(n).
func (d *QRDecomposition) IsFullRank() bool {
	for j := 0; j < d.n; j++ {
		if d.rdiag[j] == 0 {
			return false
		}
	}

	return true
}

// H returns the packed Householder vectors as a fresh m×n lower trapezoid.
// Complexity: O(m*n).
func (d *QRDecomposition) H() *Dense {
	out, _ := NewDense(d.m, d.n)
	for i := 0; i < d.m; i++ {
		base := i * d.n
		for j := 0; j <= i && j < d.n; j++ {
			out.data[base+j] = d.qr[base+j]
		}
	}

	return out
}

// R returns the upper triangular factor as a fresh n×n Dense: strict upper
// part from the working buffer, diagonal from rdiag.
// Complexity: O(n²).
func (d *QRDecomposition) R() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i := 0; i < d.n; i++ {
		base := i * d.n
		for j := i; j < d.n; j++ {
			if i == j {
				out.data[base+j] = d.rdiag[i]
			} else {
				out.data[base+j] = d.qr[base+j]
			}
		}
	}

	return out
}

// Q reconstructs the orthogonal factor (economy size, m×n) by applying the
// stored reflections to the identity in reverse column order.
// Complexity: O(m*n²).
func (d *QRDecomposition) Q() *Dense {
	out, _ := NewDense(d.m, d.n)
	var i, j, k int
	var s float64
	for k = d.n - 1; k >= 0; k-- {
		for i = 0; i < d.m; i++ {
			out.data[i*d.n+k] = 0.0
		}
		if k < d.m {
			out.data[k*d.n+k] = 1.0
		}
		for j = k; j < d.n; j++ {
			if d.qr[k*d.n+k] != 0 {
				s = ZeroSum
				for i = k; i < d.m; i++ {
					s += d.qr[i*d.n+k] * out.data[i*d.n+j]
				}
				s = -s / d.qr[k*d.n+k]
				for i = k; i < d.m; i++ {
					out.data[i*d.n+j] += s * d.qr[i*d.n+k]
				}
			}
		}
	}

	return out
}

// Solve returns the least-squares solution X minimizing ‖A·X − B‖₂:
// compute Qᵀ·B via the stored reflections, back-substitute R·X = Qᵀ·B, and
// keep the first n rows.
//
// Errors:
//   - ErrNilMatrix    (nil B).
//   - ErrRowMismatch  (B.Rows() != A.Rows()).
//   - ErrRankDeficient (zero entry in rdiag).
//
// Complexity: Time O(m*n*nx + n²*nx), Space O(m*nx).
func (d *QRDecomposition) Solve(b Matrix) (*Dense, error) {
	// Validate the right-hand side.
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if b.Rows() != d.m {
		return nil, matrixErrorf(opSolve, ErrRowMismatch)
	}
	if !d.IsFullRank() {
		return nil, matrixErrorf(opSolve, ErrRankDeficient)
	}

	// Working copy of B.
	_, nx, x, err := denseCopyOf(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Compute Y = Qᵀ·B in place by replaying the reflections.
	var i, j, k int
	var s float64
	for k = 0; k < d.n; k++ {
		for j = 0; j < nx; j++ {
			s = ZeroSum
			for i = k; i < d.m; i++ {
				s += d.qr[i*d.n+k] * x[i*nx+j]
			}
			s = -s / d.qr[k*d.n+k]
			for i = k; i < d.m; i++ {
				x[i*nx+j] += s * d.qr[i*d.n+k]
			}
		}
	}

	// Back-substitute R·X = Y.
	for k = d.n - 1; k >= 0; k-- {
		for j = 0; j < nx; j++ {
			x[k*nx+j] /= d.rdiag[k]
		}
		for i = 0; i < k; i++ {
			for j = 0; j < nx; j++ {
				x[i*nx+j] -= x[k*nx+j] * d.qr[i*d.n+k]
			}
		}
	}

	// The least-squares solution is the leading n×nx block.
	out, err := NewDenseFromFlat(d.n, nx, x[:d.n*nx])
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return out, nil
}
