// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Eigenvalue decomposition of square matrices. A full elementwise
//     symmetry scan at construction picks one of two paths:
//
//     symmetric     tred2 (Householder tridiagonalization) followed by tql2
//     (implicit-shift QL); the spectrum is purely real, V is
//     orthonormal and A = V·D·Vᵀ.
//
//     nonsymmetric  orthes (Householder reduction to Hessenberg form)
//     followed by hqr2 (implicit-shift QR iteration to real
//     Schur form); complex conjugate eigenvalue pairs appear
//     as ± entries in the imaginary array and as 2×2 blocks
//     in D, and A·V = V·D with V generally non-orthogonal.
//
// Provenance:
//   - The numerics follow the Algol procedures tred2/tql2/orthes/hqr2 by
//     Bowdler, Martin, Reinsch and Wilkinson (Handbook for Automatic
//     Computation, Vol. II) and the corresponding EISPACK routines.
//
// Iteration policy:
//   - Neither the QL nor the Schur loop carries a hard iteration cap: both
//     are globally convergent in exact arithmetic, and the deflation-based
//     loop structure converges for the well-scaled inputs this package
//     targets. The singular value decomposition is the capped one.

package matrix

import "math"

// machEps is the double-precision unit roundoff (2⁻⁵²) used as the
// deflation threshold in the QL and Schur iterations.
var machEps = math.Pow(2.0, -52.0)

// EigenDecomposition holds the eigenvalues and eigenvectors computed eagerly
// by DecomposeEigen. The struct owns its buffers exclusively; the source
// Matrix is never retained. Immutable through the exported accessors.
type EigenDecomposition struct {
	n         int       // dimension of the (square) input
	symmetric bool      // result of the exact elementwise symmetry scan
	d, e      []float64 // eigenvalue real and imaginary parts, length n
	v         []float64 // eigenvector buffer, n×n row-major
	h         []float64 // Hessenberg working buffer (nonsymmetric path only)
	ort       []float64 // Householder scratch (nonsymmetric path only)

	// cdivr/cdivi receive the two outputs of the complex division helper
	// during the hqr2 back-substitution.
	cdivr, cdivi float64
}

// DecomposeEigen computes the eigenvalue decomposition of a square matrix.
// The input is copied at entry and never mutated; all iteration completes
// before the function returns.
//
// Implementation:
//   - Stage 1: ValidateNotNil → ValidateSquare; private copy of the entries.
//   - Stage 2: exact symmetry scan picks the path.
//   - Stage 3: symmetric → tred2 + tql2; nonsymmetric → orthes + hqr2.
//
// Errors: ErrNilMatrix, ErrNonSquare, wrapped At errors from non-Dense inputs.
// Complexity: Time O(n³) per phase, Space O(n²).
func DecomposeEigen(mx Matrix) (*EigenDecomposition, error) {
	// Validate: not nil, square.
	if err := ValidateNotNil(mx); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateSquare(mx); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	// Private working copy of the entries.
	n, _, a, err := denseCopyOf(mx)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	d := &EigenDecomposition{
		n: n,
		d: make([]float64, n),
		e: make([]float64, n),
		v: make([]float64, n*n),
	}

	// Exact elementwise symmetry scan (no tolerance: matches the reference
	// behavior; symmetrize upstream if inputs are numerically noisy).
	d.symmetric = true
	for j := 0; j < n && d.symmetric; j++ {
		for i := 0; i < n && d.symmetric; i++ {
			d.symmetric = a[i*n+j] == a[j*n+i]
		}
	}

	if d.symmetric {
		// Symmetric path: work directly inside V.
		copy(d.v, a)
		d.tred2()
		d.tql2()
	} else {
		// Nonsymmetric path: Hessenberg buffer + Householder scratch.
		d.h = make([]float64, n*n)
		d.ort = make([]float64, n)
		copy(d.h, a)
		d.orthes()
		d.hqr2()
	}

	return d, nil
}

// IsSymmetric reports which path the decomposition took.
func (d *EigenDecomposition) IsSymmetric() bool { return d.symmetric }

// RealEigenvalues returns a copy of the real parts of the eigenvalues.
// On the symmetric path the values are sorted ascending.
func (d *EigenDecomposition) RealEigenvalues() []float64 {
	out := make([]float64, d.n)
	copy(out, d.d)

	return out
}

// ImagEigenvalues returns a copy of the imaginary parts of the eigenvalues.
// All zero on the symmetric path; conjugate pairs appear as ± entries.
func (d *EigenDecomposition) ImagEigenvalues() []float64 {
	out := make([]float64, d.n)
	copy(out, d.e)

	return out
}

// V returns the eigenvector matrix as a fresh n×n Dense. Columns are
// orthonormal on the symmetric path.
func (d *EigenDecomposition) V() *Dense {
	out, _ := NewDense(d.n, d.n)
	copy(out.data, d.v)

	return out
}

// D returns the block-diagonal eigenvalue matrix as a fresh n×n Dense:
// real eigenvalues sit on the diagonal; a complex conjugate pair λ ± iμ
// occupies a 2×2 block [[λ, μ], [-μ, λ]], encoded by the off-diagonal
// entries e[i] > 0 (super-diagonal) and e[i] < 0 (sub-diagonal).
func (d *EigenDecomposition) D() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i := 0; i < d.n; i++ {
		out.data[i*d.n+i] = d.d[i]
		if d.e[i] > 0 {
			out.data[i*d.n+i+1] = d.e[i]
		} else if d.e[i] < 0 {
			out.data[i*d.n+i-1] = d.e[i]
		}
	}

	return out
}

// tred2 reduces the symmetric matrix stored in v to tridiagonal form by
// Householder similarity transforms, accumulating the orthogonal transform
// back into v. Diagonal lands in d, sub-diagonal in e.
func (d *EigenDecomposition) tred2() {
	n, v := d.n, d.v

	for j := 0; j < n; j++ {
		d.d[j] = v[(n-1)*n+j]
	}

	// Householder reduction to tridiagonal form.
	for i := n - 1; i > 0; i-- {
		// Scale to avoid under/overflow.
		scale := 0.0
		h := 0.0
		for k := 0; k < i; k++ {
			scale += math.Abs(d.d[k])
		}
		if scale == 0.0 {
			d.e[i] = d.d[i-1]
			for j := 0; j < i; j++ {
				d.d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0.0
				v[j*n+i] = 0.0
			}
		} else {
			// Generate Householder vector.
			for k := 0; k < i; k++ {
				d.d[k] /= scale
				h += d.d[k] * d.d[k]
			}
			f := d.d[i-1]
			g := math.Sqrt(h)
			if f > 0 {
				g = -g
			}
			d.e[i] = scale * g
			h -= f * g
			d.d[i-1] = f - g
			for j := 0; j < i; j++ {
				d.e[j] = 0.0
			}

			// Apply similarity transformation to remaining columns.
			for j := 0; j < i; j++ {
				f = d.d[j]
				v[j*n+i] = f
				g = d.e[j] + v[j*n+j]*f
				for k := j + 1; k <= i-1; k++ {
					g += v[k*n+j] * d.d[k]
					d.e[k] += v[k*n+j] * f
				}
				d.e[j] = g
			}
			f = 0.0
			for j := 0; j < i; j++ {
				d.e[j] /= h
				f += d.e[j] * d.d[j]
			}
			hh := f / (h + h)
			for j := 0; j < i; j++ {
				d.e[j] -= hh * d.d[j]
			}
			for j := 0; j < i; j++ {
				f = d.d[j]
				g = d.e[j]
				for k := j; k <= i-1; k++ {
					v[k*n+j] -= f*d.e[k] + g*d.d[k]
				}
				d.d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0.0
			}
		}
		d.d[i] = h
	}

	// Accumulate transformations.
	for i := 0; i < n-1; i++ {
		v[(n-1)*n+i] = v[i*n+i]
		v[i*n+i] = 1.0
		h := d.d[i+1]
		if h != 0.0 {
			for k := 0; k <= i; k++ {
				d.d[k] = v[k*n+i+1] / h
			}
			for j := 0; j <= i; j++ {
				g := 0.0
				for k := 0; k <= i; k++ {
					g += v[k*n+i+1] * v[k*n+j]
				}
				for k := 0; k <= i; k++ {
					v[k*n+j] -= g * d.d[k]
				}
			}
		}
		for k := 0; k <= i; k++ {
			v[k*n+i+1] = 0.0
		}
	}
	for j := 0; j < n; j++ {
		d.d[j] = v[(n-1)*n+j]
		v[(n-1)*n+j] = 0.0
	}
	v[(n-1)*n+n-1] = 1.0
	d.e[0] = 0.0
}

// tql2 diagonalizes the tridiagonal form via the implicit-shift QL
// algorithm (Wilkinson shift), accumulating rotations into v, then sorts
// the eigenvalues ascending with synchronized column swaps.
func (d *EigenDecomposition) tql2() {
	n, v := d.n, d.v

	for i := 1; i < n; i++ {
		d.e[i-1] = d.e[i]
	}
	d.e[n-1] = 0.0

	f := 0.0
	tst1 := 0.0
	for l := 0; l < n; l++ {
		// Find small subdiagonal element.
		tst1 = math.Max(tst1, math.Abs(d.d[l])+math.Abs(d.e[l]))
		m := l
		for m < n {
			if math.Abs(d.e[m]) <= machEps*tst1 {
				break
			}
			m++
		}

		// If m == l, d[l] is an eigenvalue; otherwise iterate. The loop
		// carries no cap: QL with Wilkinson shifts is globally convergent.
		if m > l {
			for {
				// Compute implicit shift.
				g := d.d[l]
				p := (d.d[l+1] - g) / (2.0 * d.e[l])
				r := Hypot(p, 1.0)
				if p < 0 {
					r = -r
				}
				d.d[l] = d.e[l] / (p + r)
				d.d[l+1] = d.e[l] * (p + r)
				dl1 := d.d[l+1]
				h := g - d.d[l]
				for i := l + 2; i < n; i++ {
					d.d[i] -= h
				}
				f += h

				// Implicit QL transformation.
				p = d.d[m]
				c := 1.0
				c2 := c
				c3 := c
				el1 := d.e[l+1]
				s := 0.0
				s2 := 0.0
				for i := m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					g = c * d.e[i]
					h = c * p
					r = Hypot(p, d.e[i])
					d.e[i+1] = s * r
					s = d.e[i] / r
					c = p / r
					p = c*d.d[i] - s*g
					d.d[i+1] = h + s*(c*g+s*d.d[i])

					// Accumulate transformation.
					for k := 0; k < n; k++ {
						h = v[k*n+i+1]
						v[k*n+i+1] = s*v[k*n+i] + c*h
						v[k*n+i] = c*v[k*n+i] - s*h
					}
				}
				p = -s * s2 * c3 * el1 * d.e[l] / dl1
				d.e[l] = s * p
				d.d[l] = c * p

				// Check for convergence.
				if math.Abs(d.e[l]) <= machEps*tst1 {
					break
				}
			}
		}
		d.d[l] += f
		d.e[l] = 0.0
	}

	// Sort eigenvalues ascending with synchronized eigenvector swaps.
	for i := 0; i < n-1; i++ {
		k := i
		p := d.d[i]
		for j := i + 1; j < n; j++ {
			if d.d[j] < p {
				k = j
				p = d.d[j]
			}
		}
		if k != i {
			d.d[k] = d.d[i]
			d.d[i] = p
			for j := 0; j < n; j++ {
				p = v[j*n+i]
				v[j*n+i] = v[j*n+k]
				v[j*n+k] = p
			}
		}
	}
}

// orthes reduces the working matrix h to upper Hessenberg form by
// Householder similarity transforms and accumulates the orthogonal
// transform into v.
func (d *EigenDecomposition) orthes() {
	n, h, v := d.n, d.h, d.v
	low := 0
	high := n - 1

	for m := low + 1; m <= high-1; m++ {
		// Scale column.
		scale := 0.0
		for i := m; i <= high; i++ {
			scale += math.Abs(h[i*n+m-1])
		}
		if scale != 0.0 {
			// Compute Householder transformation.
			hs := 0.0
			for i := high; i >= m; i-- {
				d.ort[i] = h[i*n+m-1] / scale
				hs += d.ort[i] * d.ort[i]
			}
			g := math.Sqrt(hs)
			if d.ort[m] > 0 {
				g = -g
			}
			hs -= d.ort[m] * g
			d.ort[m] -= g

			// Apply Householder similarity transformation
			// H = (I - u·uᵀ/h)·H·(I - u·uᵀ/h).
			for j := m; j < n; j++ {
				f := 0.0
				for i := high; i >= m; i-- {
					f += d.ort[i] * h[i*n+j]
				}
				f /= hs
				for i := m; i <= high; i++ {
					h[i*n+j] -= f * d.ort[i]
				}
			}
			for i := 0; i <= high; i++ {
				f := 0.0
				for j := high; j >= m; j-- {
					f += d.ort[j] * h[i*n+j]
				}
				f /= hs
				for j := m; j <= high; j++ {
					h[i*n+j] -= f * d.ort[j]
				}
			}
			d.ort[m] *= scale
			h[m*n+m-1] = scale * g
		}
	}

	// Accumulate transformations (Algol's ortran).
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				v[i*n+j] = 1.0
			} else {
				v[i*n+j] = 0.0
			}
		}
	}
	for m := high - 1; m >= low+1; m-- {
		if h[m*n+m-1] != 0.0 {
			for i := m + 1; i <= high; i++ {
				d.ort[i] = h[i*n+m-1]
			}
			for j := m; j <= high; j++ {
				g := 0.0
				for i := m; i <= high; i++ {
					g += d.ort[i] * v[i*n+j]
				}
				// Double division avoids possible underflow.
				g = (g / d.ort[m]) / h[m*n+m-1]
				for i := m; i <= high; i++ {
					v[i*n+j] += g * d.ort[i]
				}
			}
		}
	}
}

// cdiv performs the complex scalar division (xr+i·xi)/(yr+i·yi), leaving
// the quotient in cdivr/cdivi. Smith's algorithm: divide through by the
// larger denominator component to avoid overflow.
func (d *EigenDecomposition) cdiv(xr, xi, yr, yi float64) {
	var r, dv float64
	if math.Abs(yr) > math.Abs(yi) {
		r = yi / yr
		dv = yr + r*yi
		d.cdivr = (xr + r*xi) / dv
		d.cdivi = (xi - r*xr) / dv
	} else {
		r = yr / yi
		dv = yi + r*yr
		d.cdivr = (r*xr + xi) / dv
		d.cdivi = (r*xi - xr) / dv
	}
}

// hqr2 reduces the Hessenberg form to real Schur form by implicit-shift QR
// iteration, extracting eigenvalues into d/e as 1×1 and 2×2 blocks deflate,
// then back-substitutes to recover eigenvectors of the original matrix.
// Two exceptional shift strategies fire at iteration counts 10 and 30 to
// escape slow convergence.
func (d *EigenDecomposition) hqr2() {
	// Initialize.
	nn := d.n
	hb, v := d.h, d.v
	n := nn - 1
	low := 0
	high := nn - 1
	eps := machEps
	exshift := 0.0

	var p, q, r, s, z, t, w, x, y float64

	// Store roots isolated by balancing and compute matrix norm.
	norm := 0.0
	for i := 0; i < nn; i++ {
		if i < low || i > high {
			d.d[i] = hb[i*nn+i]
			d.e[i] = 0.0
		}
		j := i - 1
		if j < 0 {
			j = 0
		}
		for ; j < nn; j++ {
			norm += math.Abs(hb[i*nn+j])
		}
	}

	// Outer loop over eigenvalue index.
	iter := 0
	for n >= low {
		// Look for a single small sub-diagonal element.
		l := n
		for l > low {
			s = math.Abs(hb[(l-1)*nn+l-1]) + math.Abs(hb[l*nn+l])
			if s == 0.0 {
				s = norm
			}
			if math.Abs(hb[l*nn+l-1]) < eps*s {
				break
			}
			l--
		}

		// Check for convergence.
		if l == n {
			// One root found.
			hb[n*nn+n] += exshift
			d.d[n] = hb[n*nn+n]
			d.e[n] = 0.0
			n--
			iter = 0
		} else if l == n-1 {
			// Two roots found.
			w = hb[n*nn+n-1] * hb[(n-1)*nn+n]
			p = (hb[(n-1)*nn+n-1] - hb[n*nn+n]) / 2.0
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			hb[n*nn+n] += exshift
			hb[(n-1)*nn+n-1] += exshift
			x = hb[n*nn+n]

			if q >= 0 {
				// Real pair.
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d.d[n-1] = x + z
				d.d[n] = d.d[n-1]
				if z != 0.0 {
					d.d[n] = x - w/z
				}
				d.e[n-1] = 0.0
				d.e[n] = 0.0
				x = hb[n*nn+n-1]
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r

				// Row modification.
				for j := n - 1; j < nn; j++ {
					z = hb[(n-1)*nn+j]
					hb[(n-1)*nn+j] = q*z + p*hb[n*nn+j]
					hb[n*nn+j] = q*hb[n*nn+j] - p*z
				}
				// Column modification.
				for i := 0; i <= n; i++ {
					z = hb[i*nn+n-1]
					hb[i*nn+n-1] = q*z + p*hb[i*nn+n]
					hb[i*nn+n] = q*hb[i*nn+n] - p*z
				}
				// Accumulate transformations.
				for i := low; i <= high; i++ {
					z = v[i*nn+n-1]
					v[i*nn+n-1] = q*z + p*v[i*nn+n]
					v[i*nn+n] = q*v[i*nn+n] - p*z
				}
			} else {
				// Complex pair.
				d.d[n-1] = x + p
				d.d[n] = x + p
				d.e[n-1] = z
				d.e[n] = -z
			}
			n -= 2
			iter = 0
		} else {
			// No convergence yet: form shift.
			x = hb[n*nn+n]
			y = 0.0
			w = 0.0
			if l < n {
				y = hb[(n-1)*nn+n-1]
				w = hb[n*nn+n-1] * hb[(n-1)*nn+n]
			}

			// Wilkinson's original ad hoc shift.
			if iter == 10 {
				exshift += x
				for i := low; i <= n; i++ {
					hb[i*nn+i] -= x
				}
				s = math.Abs(hb[n*nn+n-1]) + math.Abs(hb[(n-1)*nn+n-2])
				y = 0.75 * s
				x = y
				w = -0.4375 * s * s
			}

			// MATLAB's new ad hoc shift.
			if iter == 30 {
				s = (y - x) / 2.0
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2.0+s)
					for i := low; i <= n; i++ {
						hb[i*nn+i] -= s
					}
					exshift += s
					w = 0.964
					x = w
					y = w
				}
			}

			iter++ // no cap: see the package iteration policy note

			// Look for two consecutive small sub-diagonal elements.
			m := n - 2
			for m >= l {
				z = hb[m*nn+m]
				r = x - z
				s = y - z
				p = (r*s-w)/hb[(m+1)*nn+m] + hb[m*nn+m+1]
				q = hb[(m+1)*nn+m+1] - z - r - s
				r = hb[(m+2)*nn+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(hb[m*nn+m-1])*(math.Abs(q)+math.Abs(r)) <
					eps*(math.Abs(p)*(math.Abs(hb[(m-1)*nn+m-1])+math.Abs(z)+
						math.Abs(hb[(m+1)*nn+m+1]))) {
					break
				}
				m--
			}

			for i := m + 2; i <= n; i++ {
				hb[i*nn+i-2] = 0.0
				if i > m+2 {
					hb[i*nn+i-3] = 0.0
				}
			}

			// Double QR step involving rows l:n and columns m:n.
			for k := m; k <= n-1; k++ {
				notlast := k != n-1
				if k != m {
					p = hb[k*nn+k-1]
					q = hb[(k+1)*nn+k-1]
					if notlast {
						r = hb[(k+2)*nn+k-1]
					} else {
						r = 0.0
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x != 0.0 {
						p /= x
						q /= x
						r /= x
					}
				}
				if x == 0.0 {
					break
				}
				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s != 0 {
					if k != m {
						hb[k*nn+k-1] = -s * x
					} else if l != m {
						hb[k*nn+k-1] = -hb[k*nn+k-1]
					}
					p += s
					x = p / s
					y = q / s
					z = r / s
					q /= p
					r /= p

					// Row modification.
					for j := k; j < nn; j++ {
						p = hb[k*nn+j] + q*hb[(k+1)*nn+j]
						if notlast {
							p += r * hb[(k+2)*nn+j]
							hb[(k+2)*nn+j] -= p * z
						}
						hb[k*nn+j] -= p * x
						hb[(k+1)*nn+j] -= p * y
					}
					// Column modification.
					iMax := k + 3
					if n < iMax {
						iMax = n
					}
					for i := 0; i <= iMax; i++ {
						p = x*hb[i*nn+k] + y*hb[i*nn+k+1]
						if notlast {
							p += z * hb[i*nn+k+2]
							hb[i*nn+k+2] -= p * r
						}
						hb[i*nn+k] -= p
						hb[i*nn+k+1] -= p * q
					}
					// Accumulate transformations.
					for i := low; i <= high; i++ {
						p = x*v[i*nn+k] + y*v[i*nn+k+1]
						if notlast {
							p += z * v[i*nn+k+2]
							v[i*nn+k+2] -= p * r
						}
						v[i*nn+k] -= p
						v[i*nn+k+1] -= p * q
					}
				}
			}
		}
	}

	// Backsubstitute to find vectors of the upper triangular form.
	if norm == 0.0 {
		return
	}

	for n = nn - 1; n >= 0; n-- {
		p = d.d[n]
		q = d.e[n]

		if q == 0 {
			// Real vector.
			l := n
			hb[n*nn+n] = 1.0
			for i := n - 1; i >= 0; i-- {
				w = hb[i*nn+i] - p
				r = 0.0
				for j := l; j <= n; j++ {
					r += hb[i*nn+j] * hb[j*nn+n]
				}
				if d.e[i] < 0.0 {
					z = w
					s = r
				} else {
					l = i
					if d.e[i] == 0.0 {
						if w != 0.0 {
							hb[i*nn+n] = -r / w
						} else {
							hb[i*nn+n] = -r / (eps * norm)
						}
					} else {
						// Solve real equations.
						x = hb[i*nn+i+1]
						y = hb[(i+1)*nn+i]
						q = (d.d[i]-p)*(d.d[i]-p) + d.e[i]*d.e[i]
						t = (x*s - z*r) / q
						hb[i*nn+n] = t
						if math.Abs(x) > math.Abs(z) {
							hb[(i+1)*nn+n] = (-r - w*t) / x
						} else {
							hb[(i+1)*nn+n] = (-s - y*t) / z
						}
					}

					// Overflow control.
					t = math.Abs(hb[i*nn+n])
					if (eps*t)*t > 1 {
						for j := i; j <= n; j++ {
							hb[j*nn+n] /= t
						}
					}
				}
			}
		} else if q < 0 {
			// Complex vector.
			l := n - 1

			// Last vector component imaginary so matrix is triangular.
			if math.Abs(hb[n*nn+n-1]) > math.Abs(hb[(n-1)*nn+n]) {
				hb[(n-1)*nn+n-1] = q / hb[n*nn+n-1]
				hb[(n-1)*nn+n] = -(hb[n*nn+n] - p) / hb[n*nn+n-1]
			} else {
				d.cdiv(0.0, -hb[(n-1)*nn+n], hb[(n-1)*nn+n-1]-p, q)
				hb[(n-1)*nn+n-1] = d.cdivr
				hb[(n-1)*nn+n] = d.cdivi
			}
			hb[n*nn+n-1] = 0.0
			hb[n*nn+n] = 1.0
			for i := n - 2; i >= 0; i-- {
				var ra, sa, vr, vi float64
				for j := l; j <= n; j++ {
					ra += hb[i*nn+j] * hb[j*nn+n-1]
					sa += hb[i*nn+j] * hb[j*nn+n]
				}
				w = hb[i*nn+i] - p

				if d.e[i] < 0.0 {
					z = w
					r = ra
					s = sa
				} else {
					l = i
					if d.e[i] == 0 {
						d.cdiv(-ra, -sa, w, q)
						hb[i*nn+n-1] = d.cdivr
						hb[i*nn+n] = d.cdivi
					} else {
						// Solve complex equations.
						x = hb[i*nn+i+1]
						y = hb[(i+1)*nn+i]
						vr = (d.d[i]-p)*(d.d[i]-p) + d.e[i]*d.e[i] - q*q
						vi = (d.d[i] - p) * 2.0 * q
						if vr == 0.0 && vi == 0.0 {
							vr = eps * norm * (math.Abs(w) + math.Abs(q) +
								math.Abs(x) + math.Abs(y) + math.Abs(z))
						}
						d.cdiv(x*r-z*ra+q*sa, x*s-z*sa-q*ra, vr, vi)
						hb[i*nn+n-1] = d.cdivr
						hb[i*nn+n] = d.cdivi
						if math.Abs(x) > (math.Abs(z) + math.Abs(q)) {
							hb[(i+1)*nn+n-1] = (-ra - w*hb[i*nn+n-1] + q*hb[i*nn+n]) / x
							hb[(i+1)*nn+n] = (-sa - w*hb[i*nn+n] - q*hb[i*nn+n-1]) / x
						} else {
							d.cdiv(-r-y*hb[i*nn+n-1], -s-y*hb[i*nn+n], z, q)
							hb[(i+1)*nn+n-1] = d.cdivr
							hb[(i+1)*nn+n] = d.cdivi
						}
					}

					// Overflow control.
					t = math.Max(math.Abs(hb[i*nn+n-1]), math.Abs(hb[i*nn+n]))
					if (eps*t)*t > 1 {
						for j := i; j <= n; j++ {
							hb[j*nn+n-1] /= t
							hb[j*nn+n] /= t
						}
					}
				}
			}
		}
	}

	// Vectors of isolated roots.
	for i := 0; i < nn; i++ {
		if i < low || i > high {
			for j := i; j < nn; j++ {
				v[i*nn+j] = hb[i*nn+j]
			}
		}
	}

	// Back transformation to get eigenvectors of the original matrix.
	for j := nn - 1; j >= low; j-- {
		for i := low; i <= high; i++ {
			z = 0.0
			kMax := j
			if high < kMax {
				kMax = high
			}
			for k := low; k <= kMax; k++ {
				z += v[i*nn+k] * hb[k*nn+j]
			}
			v[i*nn+j] = z
		}
	}
}
