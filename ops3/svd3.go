// SPDX-License-Identifier: MIT
// Package: ops3
//
// Purpose:
//   - Fixed-sweep Jacobi singular value decomposition of a 3×3 matrix.
//
// Method:
//   - sigma ← aᵀ·a; a fixed number of cyclic Jacobi sweeps over the pairs
//     (0,1), (0,2), (1,2) diagonalizes sigma while V accumulates the
//     rotations. u ← a·V then has orthogonal columns whose norms are the
//     singular magnitudes; Givens annihilation of the subdiagonal moves
//     those norms onto sigma's diagonal while U accumulates.
//   - U and V are pure rotation products, so det(U) = det(V) = +1; a
//     reflection in the input surfaces as a negative sigma entry instead.
//     Callers needing conventional non-negative singular values flip the
//     sign of the matching U or V column.

package ops3

import "math"

// SVD3 decomposes a ≈ u·sigma·vᵀ. u, sigma and v are caller-owned length-9
// buffers, fully overwritten; a is never mutated and may alias any of them.
// numIterations fixed Jacobi sweeps run unconditionally; 5 to 10 reaches
// roundoff for well-scaled input.
func SVD3(a []float64, numIterations int, u, sigma, v []float64) {
	// Stage the input: a is read again mid-decomposition, after the output
	// buffers it may alias have been overwritten.
	var t [9]float64
	copy(t[:], a[:9])
	a = t[:]

	// sigma ← aᵀa, the symmetric Gram matrix carrying σ² as eigenvalues.
	Mult3LeftTranspose(a, a, sigma)
	SetIdentity3(v)

	// Cyclic Jacobi sweeps: diagonalize sigma, accumulate V.
	for it := 0; it < numIterations; it++ {
		applyJacobi3(sigma, v, 0, 1)
		applyJacobi3(sigma, v, 0, 2)
		applyJacobi3(sigma, v, 1, 2)
	}

	// u ← a·V has orthogonal columns of norm |σ|. QR-annihilate its
	// subdiagonal: the Givens products land in U and the triangularized
	// remainder in sigma, which is diagonal up to roundoff.
	Mult3(a, v, u)
	Set3(sigma, u)
	SetIdentity3(u)
	qrAnnihilate3(u, sigma, 1, 0)
	qrAnnihilate3(u, sigma, 2, 0)
	qrAnnihilate3(u, sigma, 2, 1)

	// Discard the roundoff left off the diagonal.
	sigma[1], sigma[2], sigma[3] = 0, 0, 0
	sigma[5], sigma[6], sigma[7] = 0, 0, 0
}

// applyJacobi3 zeroes s[i,j] (and s[j,i]) with the two-sided rotation
// G·s·Gᵀ at angle φ = atan2(2·s[i,j], s[i,i]−s[j,j])/2, and folds Gᵀ into
// v so the product v·s·vᵀ is preserved.
func applyJacobi3(s, v []float64, i, j int) {
	phi := 0.5 * math.Atan2(2*s[i*3+j], s[i*3+i]-s[j*3+j])
	c := math.Cos(phi)
	sn := math.Sin(phi)
	PreMult3Givens(s, c, sn, i, j)
	PostMult3Givens(s, c, sn, i, j)
	PostMult3Givens(v, c, sn, i, j)
}

// qrAnnihilate3 zeroes r[row,col] (row > col) with a left Givens rotation
// in the (col, row) plane, folding the inverse rotation into u so u·r is
// preserved. A zero column pair leaves both factors untouched.
func qrAnnihilate3(u, r []float64, row, col int) {
	h := math.Hypot(r[col*3+col], r[row*3+col])
	if h == 0 {
		return
	}
	c := r[col*3+col] / h
	sn := r[row*3+col] / h
	PreMult3Givens(r, c, sn, col, row)
	PostMult3Givens(u, c, sn, col, row)
}
