// SPDX-License-Identifier: MIT
// Package: ops3
//
// Purpose:
//   - Core 3×3 kernels: copy, identity, the four multiplication variants,
//     transpose, determinant, and Givens rotation application.
//
// Layout:
//   - Row-major flat indexing throughout: element (r, c) lives at m[r*3+c].
//   - Every function tolerates out aliasing any input; products stage the
//     full result in a stack [9]float64 before writing, Givens updates
//     stage only the two affected rows or columns.

package ops3

// Set3 copies src into out.
func Set3(out, src []float64) {
	copy(out[:9], src[:9])
}

// SetIdentity3 writes the 3×3 identity into out.
func SetIdentity3(out []float64) {
	out[0], out[1], out[2] = 1, 0, 0
	out[3], out[4], out[5] = 0, 1, 0
	out[6], out[7], out[8] = 0, 0, 1
}

// Mult3 computes out = a·b. out may alias a or b.
func Mult3(a, b, out []float64) {
	var t [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[r*3+c] = a[r*3]*b[c] + a[r*3+1]*b[3+c] + a[r*3+2]*b[6+c]
		}
	}
	copy(out[:9], t[:])
}

// Mult3LeftTranspose computes out = aᵀ·b. out may alias a or b.
func Mult3LeftTranspose(a, b, out []float64) {
	var t [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[r*3+c] = a[r]*b[c] + a[3+r]*b[3+c] + a[6+r]*b[6+c]
		}
	}
	copy(out[:9], t[:])
}

// Mult3RightTranspose computes out = a·bᵀ. out may alias a or b.
func Mult3RightTranspose(a, b, out []float64) {
	var t [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[r*3+c] = a[r*3]*b[c*3] + a[r*3+1]*b[c*3+1] + a[r*3+2]*b[c*3+2]
		}
	}
	copy(out[:9], t[:])
}

// Mult3BothTranspose computes out = aᵀ·bᵀ. out may alias a or b.
func Mult3BothTranspose(a, b, out []float64) {
	var t [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[r*3+c] = a[r]*b[c*3] + a[3+r]*b[c*3+1] + a[6+r]*b[c*3+2]
		}
	}
	copy(out[:9], t[:])
}

// Transpose3 computes out = mᵀ. out may alias m.
func Transpose3(m, out []float64) {
	t := [9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
	copy(out[:9], t[:])
}

// Det3 returns the determinant of m by cofactor expansion along the
// first row.
func Det3(m []float64) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// SetGivens3 writes into out the identity with the rotation block
//
//	[ cos  sin]
//	[-sin  cos]
//
// embedded at the (i, j) axes, i < j. PreMult3Givens and PostMult3Givens
// apply the same rotation without materializing it.
func SetGivens3(out []float64, cos, sin float64, i, j int) {
	SetIdentity3(out)
	out[i*3+i] = cos
	out[i*3+j] = sin
	out[j*3+i] = -sin
	out[j*3+j] = cos
}

// PreMult3Givens computes m = G·m for the SetGivens3 rotation G(cos, sin,
// i, j), updating only rows i and j.
func PreMult3Givens(m []float64, cos, sin float64, i, j int) {
	var ri, rj [3]float64
	for c := 0; c < 3; c++ {
		ri[c] = cos*m[i*3+c] + sin*m[j*3+c]
		rj[c] = -sin*m[i*3+c] + cos*m[j*3+c]
	}
	for c := 0; c < 3; c++ {
		m[i*3+c] = ri[c]
		m[j*3+c] = rj[c]
	}
}

// PostMult3Givens computes m = m·Gᵀ for the SetGivens3 rotation G(cos,
// sin, i, j), updating only columns i and j.
func PostMult3Givens(m []float64, cos, sin float64, i, j int) {
	var ci, cj [3]float64
	for r := 0; r < 3; r++ {
		ci[r] = cos*m[r*3+i] + sin*m[r*3+j]
		cj[r] = -sin*m[r*3+i] + cos*m[r*3+j]
	}
	for r := 0; r < 3; r++ {
		m[r*3+i] = ci[r]
		m[r*3+j] = cj[r]
	}
}
