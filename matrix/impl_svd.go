// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Singular value decomposition A = U·S·Vᵀ via Golub–Kahan
//     bidiagonalization followed by implicit-shift QR iteration on the
//     bidiagonal form. Singular values come out non-negative and sorted
//     descending; U and V carry orthonormal columns.
//
// Provenance:
//   - Follows the Algol procedure svd by Golub and Reinsch (Handbook for
//     Automatic Computation, Vol. II) in its LINPACK/JAMA formulation.
//
// Iteration policy:
//   - Unlike the eigenvalue iterations, the bidiagonal QR sweep carries a
//     hard cap of 500 iterations. On pathological inputs the loop exits
//     with the best available factors and Converged reports false; no
//     error is returned, since the partial factors are still usable for
//     rank estimation and diagnostics.

package matrix

import "math"

// svdMaxSweeps caps the implicit-shift QR iteration on the bidiagonal form.
const svdMaxSweeps = 500

// svdTiny guards the deflation tests against denormal breakdown (2⁻⁹⁶⁶).
var svdTiny = math.Pow(2.0, -966.0)

// rankEps is the relative threshold for the numeric rank test (2⁻²³,
// single-precision roundoff): σ counts toward the rank when it exceeds
// max(m,n)·σ₀·rankEps.
var rankEps = math.Pow(2.0, -23.0)

// SVDecomposition holds the factors computed eagerly by DecomposeSVD. The
// struct owns its buffers exclusively; immutable through the exported
// accessors.
type SVDecomposition struct {
	m, n      int
	u         []float64 // m×nu row-major, nu = min(m, n)
	v         []float64 // n×n row-major
	s         []float64 // singular values, descending, length min(m+1, n)
	converged bool
}

// DecomposeSVD computes the singular value decomposition of an m×n matrix.
// The input is copied at entry and never mutated; all iteration completes
// before the function returns.
//
// Implementation:
//   - Stage 1: ValidateNotNil; private copy of the entries.
//   - Stage 2: bidiagonalize via alternating left/right Householder
//     reflections, accumulating U and V.
//   - Stage 3: implicit-shift QR on the bidiagonal form until every
//     super-diagonal entry deflates, or the sweep cap fires.
//
// Errors: ErrNilMatrix, wrapped At errors from non-Dense inputs.
// Complexity: Time O(m·n·min(m,n)) plus the iterative sweeps, Space O(m·n).
func DecomposeSVD(mx Matrix) (*SVDecomposition, error) {
	// Validate: not nil. Any m×n shape is accepted.
	if err := ValidateNotNil(mx); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	m, n, a, err := denseCopyOf(mx)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	nu := m
	if n < nu {
		nu = n
	}
	sLen := m + 1
	if n < sLen {
		sLen = n
	}
	d := &SVDecomposition{
		m:         m,
		n:         n,
		u:         make([]float64, m*nu),
		v:         make([]float64, n*n),
		s:         make([]float64, sLen),
		converged: true,
	}
	e := make([]float64, n)
	work := make([]float64, m)

	u, v, s := d.u, d.v, d.s

	// Reduce a to bidiagonal form, storing the diagonal elements in s and
	// the super-diagonal elements in e.
	nct := m - 1
	if n < nct {
		nct = n
	}
	nrt := n - 2
	if m < nrt {
		nrt = m
	}
	if nrt < 0 {
		nrt = 0
	}
	kMax := nct
	if nrt > kMax {
		kMax = nrt
	}
	for k := 0; k < kMax; k++ {
		if k < nct {
			// Compute the transformation for the k-th column and place the
			// k-th diagonal in s[k]. Hypot accumulation avoids
			// under/overflow in the 2-norm.
			s[k] = 0
			for i := k; i < m; i++ {
				s[k] = Hypot(s[k], a[i*n+k])
			}
			if s[k] != 0.0 {
				if a[k*n+k] < 0.0 {
					s[k] = -s[k]
				}
				for i := k; i < m; i++ {
					a[i*n+k] /= s[k]
				}
				a[k*n+k] += 1.0
			}
			s[k] = -s[k]
		}
		for j := k + 1; j < n; j++ {
			if k < nct && s[k] != 0.0 {
				// Apply the transformation.
				t := 0.0
				for i := k; i < m; i++ {
					t += a[i*n+k] * a[i*n+j]
				}
				t = -t / a[k*n+k]
				for i := k; i < m; i++ {
					a[i*n+j] += t * a[i*n+k]
				}
			}
			// Place the k-th row of a into e for the subsequent row
			// transformation.
			e[j] = a[k*n+j]
		}
		if k < nct {
			// Place the transformation in u for later back multiplication.
			for i := k; i < m; i++ {
				u[i*nu+k] = a[i*n+k]
			}
		}
		if k < nrt {
			// Compute the k-th row transformation and place the k-th
			// super-diagonal in e[k].
			e[k] = 0
			for i := k + 1; i < n; i++ {
				e[k] = Hypot(e[k], e[i])
			}
			if e[k] != 0.0 {
				if e[k+1] < 0.0 {
					e[k] = -e[k]
				}
				for i := k + 1; i < n; i++ {
					e[i] /= e[k]
				}
				e[k+1] += 1.0
			}
			e[k] = -e[k]
			if k+1 < m && e[k] != 0.0 {
				// Apply the transformation.
				for i := k + 1; i < m; i++ {
					work[i] = 0.0
				}
				for j := k + 1; j < n; j++ {
					for i := k + 1; i < m; i++ {
						work[i] += e[j] * a[i*n+j]
					}
				}
				for j := k + 1; j < n; j++ {
					t := -e[j] / e[k+1]
					for i := k + 1; i < m; i++ {
						a[i*n+j] += t * work[i]
					}
				}
			}
			// Place the transformation in v for later back multiplication.
			for i := k + 1; i < n; i++ {
				v[i*n+k] = e[i]
			}
		}
	}

	// Set up the final bidiagonal matrix of order p.
	p := sLen
	if nct < n {
		s[nct] = a[nct*n+nct]
	}
	if m < p {
		s[p-1] = 0.0
	}
	if nrt+1 < p {
		e[nrt] = a[nrt*n+p-1]
	}
	e[p-1] = 0.0

	// Generate u.
	for j := nct; j < nu; j++ {
		for i := 0; i < m; i++ {
			u[i*nu+j] = 0.0
		}
		u[j*nu+j] = 1.0
	}
	for k := nct - 1; k >= 0; k-- {
		if s[k] != 0.0 {
			for j := k + 1; j < nu; j++ {
				t := 0.0
				for i := k; i < m; i++ {
					t += u[i*nu+k] * u[i*nu+j]
				}
				t = -t / u[k*nu+k]
				for i := k; i < m; i++ {
					u[i*nu+j] += t * u[i*nu+k]
				}
			}
			for i := k; i < m; i++ {
				u[i*nu+k] = -u[i*nu+k]
			}
			u[k*nu+k] = 1.0 + u[k*nu+k]
			for i := 0; i < k-1; i++ {
				u[i*nu+k] = 0.0
			}
		} else {
			for i := 0; i < m; i++ {
				u[i*nu+k] = 0.0
			}
			u[k*nu+k] = 1.0
		}
	}

	// Generate v.
	for k := n - 1; k >= 0; k-- {
		if k < nrt && e[k] != 0.0 {
			for j := k + 1; j < n; j++ {
				t := 0.0
				for i := k + 1; i < n; i++ {
					t += v[i*n+k] * v[i*n+j]
				}
				t = -t / v[(k+1)*n+k]
				for i := k + 1; i < n; i++ {
					v[i*n+j] += t * v[i*n+k]
				}
			}
		}
		for i := 0; i < n; i++ {
			v[i*n+k] = 0.0
		}
		v[k*n+k] = 1.0
	}

	// Main iteration loop for the singular values.
	pp := p - 1
	iter := 0
	for p > 0 {
		if iter >= svdMaxSweeps {
			d.converged = false
			break
		}

		// Inspect for negligible elements in the s and e arrays to decide
		// the action:
		//   kase 1  s[p-1] and e[k-1] negligible, k < p-1: deflate e[p-2]
		//   kase 2  s[k] negligible, k < p: split at k
		//   kase 3  e[k-1] negligible, k < p, and no smaller s: QR step
		//   kase 4  e[p-2] negligible: convergence at p
		var k, kase int
		for k = p - 2; k >= -1; k-- {
			if k == -1 {
				break
			}
			if math.Abs(e[k]) <= svdTiny+machEps*(math.Abs(s[k])+math.Abs(s[k+1])) {
				e[k] = 0.0
				break
			}
		}
		if k == p-2 {
			kase = 4
		} else {
			var ks int
			for ks = p - 1; ks >= k; ks-- {
				if ks == k {
					break
				}
				t := 0.0
				if ks != p {
					t = math.Abs(e[ks])
				}
				if ks != k+1 {
					t += math.Abs(e[ks-1])
				}
				if math.Abs(s[ks]) <= svdTiny+machEps*t {
					s[ks] = 0.0
					break
				}
			}
			if ks == k {
				kase = 3
			} else if ks == p-1 {
				kase = 1
			} else {
				kase = 2
				k = ks
			}
		}
		k++

		switch kase {
		case 1:
			// Deflate negligible s[p-1].
			f := e[p-2]
			e[p-2] = 0.0
			for j := p - 2; j >= k; j-- {
				t := Hypot(s[j], f)
				cs := s[j] / t
				sn := f / t
				s[j] = t
				if j != k {
					f = -sn * e[j-1]
					e[j-1] = cs * e[j-1]
				}
				for i := 0; i < n; i++ {
					t = cs*v[i*n+j] + sn*v[i*n+p-1]
					v[i*n+p-1] = -sn*v[i*n+j] + cs*v[i*n+p-1]
					v[i*n+j] = t
				}
			}
		case 2:
			// Split at negligible s[k].
			f := e[k-1]
			e[k-1] = 0.0
			for j := k; j < p; j++ {
				t := Hypot(s[j], f)
				cs := s[j] / t
				sn := f / t
				s[j] = t
				f = -sn * e[j]
				e[j] = cs * e[j]
				for i := 0; i < m; i++ {
					t = cs*u[i*nu+j] + sn*u[i*nu+k-1]
					u[i*nu+k-1] = -sn*u[i*nu+j] + cs*u[i*nu+k-1]
					u[i*nu+j] = t
				}
			}
		case 3:
			// One implicit-shift QR step on rows k..p-1.

			// Calculate the shift from the trailing 2×2.
			scale := math.Max(math.Max(math.Max(math.Max(
				math.Abs(s[p-1]), math.Abs(s[p-2])), math.Abs(e[p-2])),
				math.Abs(s[k])), math.Abs(e[k]))
			sp := s[p-1] / scale
			spm1 := s[p-2] / scale
			epm1 := e[p-2] / scale
			sk := s[k] / scale
			ek := e[k] / scale
			b := ((spm1+sp)*(spm1-sp) + epm1*epm1) / 2.0
			c := (sp * epm1) * (sp * epm1)
			shift := 0.0
			if b != 0.0 || c != 0.0 {
				shift = math.Sqrt(b*b + c)
				if b < 0.0 {
					shift = -shift
				}
				shift = c / (b + shift)
			}
			f := (sk+sp)*(sk-sp) + shift
			g := sk * ek

			// Chase zeros.
			for j := k; j < p-1; j++ {
				t := Hypot(f, g)
				cs := f / t
				sn := g / t
				if j != k {
					e[j-1] = t
				}
				f = cs*s[j] + sn*e[j]
				e[j] = cs*e[j] - sn*s[j]
				g = sn * s[j+1]
				s[j+1] = cs * s[j+1]
				for i := 0; i < n; i++ {
					t = cs*v[i*n+j] + sn*v[i*n+j+1]
					v[i*n+j+1] = -sn*v[i*n+j] + cs*v[i*n+j+1]
					v[i*n+j] = t
				}
				t = Hypot(f, g)
				cs = f / t
				sn = g / t
				s[j] = t
				f = cs*e[j] + sn*s[j+1]
				s[j+1] = -sn*e[j] + cs*s[j+1]
				g = sn * e[j+1]
				e[j+1] = cs * e[j+1]
				if j < m-1 {
					for i := 0; i < m; i++ {
						t = cs*u[i*nu+j] + sn*u[i*nu+j+1]
						u[i*nu+j+1] = -sn*u[i*nu+j] + cs*u[i*nu+j+1]
						u[i*nu+j] = t
					}
				}
			}
			e[p-2] = f
			iter++
		case 4:
			// Convergence at p.

			// Make the singular value positive.
			if s[k] <= 0.0 {
				if s[k] < 0.0 {
					s[k] = -s[k]
				} else {
					s[k] = 0.0
				}
				for i := 0; i <= pp; i++ {
					v[i*n+k] = -v[i*n+k]
				}
			}

			// Order the singular values descending.
			for k < pp {
				if s[k] >= s[k+1] {
					break
				}
				t := s[k]
				s[k] = s[k+1]
				s[k+1] = t
				if k < n-1 {
					for i := 0; i < n; i++ {
						t = v[i*n+k+1]
						v[i*n+k+1] = v[i*n+k]
						v[i*n+k] = t
					}
				}
				if k < m-1 {
					for i := 0; i < m; i++ {
						t = u[i*nu+k+1]
						u[i*nu+k+1] = u[i*nu+k]
						u[i*nu+k] = t
					}
				}
				k++
			}
			iter = 0
			p--
		}
	}

	return d, nil
}

// Converged reports whether the bidiagonal QR sweep deflated every
// super-diagonal entry before the iteration cap. False means the factors
// carry the best achieved approximation.
func (d *SVDecomposition) Converged() bool { return d.converged }

// SingularValues returns a copy of the singular values, non-negative and
// sorted descending.
func (d *SVDecomposition) SingularValues() []float64 {
	out := make([]float64, len(d.s))
	copy(out, d.s)

	return out
}

// U returns the left singular vectors as a fresh m×min(m,n) Dense with
// orthonormal columns.
func (d *SVDecomposition) U() *Dense {
	nu := d.m
	if d.n < nu {
		nu = d.n
	}
	out, _ := NewDense(d.m, nu)
	copy(out.data, d.u)

	return out
}

// V returns the right singular vectors as a fresh n×n orthogonal Dense.
func (d *SVDecomposition) V() *Dense {
	out, _ := NewDense(d.n, d.n)
	copy(out.data, d.v)

	return out
}

// S returns the diagonal singular value matrix as a fresh n×n Dense.
func (d *SVDecomposition) S() *Dense {
	out, _ := NewDense(d.n, d.n)
	for i := 0; i < d.n && i < len(d.s); i++ {
		out.data[i*d.n+i] = d.s[i]
	}

	return out
}

// Norm2 returns the induced 2-norm, σ₀.
func (d *SVDecomposition) Norm2() float64 { return d.s[0] }

// Cond returns the 2-norm condition number σ₀/σ_last over the min(m,n)
// leading singular values. +Inf for exactly singular inputs.
func (d *SVDecomposition) Cond() float64 {
	k := d.m
	if d.n < k {
		k = d.n
	}

	return d.s[0] / d.s[k-1]
}

// Rank returns the numeric rank: the count of singular values exceeding
// max(m,n)·σ₀·2⁻²³. The single-precision threshold is deliberate; it
// tolerates the noise floor of upstream geometry pipelines.
func (d *SVDecomposition) Rank() int {
	dim := d.m
	if d.n > dim {
		dim = d.n
	}
	tol := float64(dim) * d.s[0] * rankEps
	r := 0
	for _, sv := range d.s {
		if sv > tol {
			r++
		}
	}

	return r
}

// Pseudoinverse computes the Moore–Penrose pseudoinverse A⁺ = V·Σ⁺·Uᵀ.
// Singular values at or below 1e-300 invert to zero instead of overflowing,
// so exactly singular and rank-deficient inputs yield the minimum-norm
// least-squares inverse rather than an error.
//
// Errors: ErrNilMatrix, wrapped At errors from non-Dense inputs.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n).
func Pseudoinverse(mx Matrix) (*Dense, error) {
	svd, err := DecomposeSVD(mx)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	m, n := svd.m, svd.n
	nu := m
	if n < nu {
		nu = n
	}

	// out = V · Σ⁺ · Uᵀ, folded into a single pass: out[i][j] =
	// Σ_k v[i][k]·(1/σ_k)·u[j][k] over the k with invertible σ_k.
	out, _ := NewDense(n, m)
	for k := 0; k < nu && k < len(svd.s); k++ {
		if svd.s[k] <= 1e-300 {
			continue
		}
		inv := 1.0 / svd.s[k]
		for i := 0; i < n; i++ {
			vik := svd.v[i*n+k] * inv
			if vik == 0.0 {
				continue
			}
			for j := 0; j < m; j++ {
				out.data[i*m+j] += vik * svd.u[j*nu+k]
			}
		}
	}

	return out, nil
}
