// SPDX-License-Identifier: MIT

// Package ops3 provides allocation-free kernels over 3×3 matrices stored
// as caller-owned row-major []float64 slices of length 9.
//
// What you get:
//
//   - 🔢 Copy/identity: Set3, SetIdentity3.
//   - ✖️ Products: Mult3 and its three transposed variants, all safe when
//     out aliases either input.
//   - 🔄 Transpose3, Det3 (cofactor expansion).
//   - 📐 Givens rotations: SetGivens3, PreMult3Givens, PostMult3Givens —
//     the two-row/two-column updates that power the iterative kernels.
//   - 🧮 SVD3: fixed-sweep Jacobi singular value decomposition with
//     rotation-only (det = +1) U and V factors.
//
// Design notes:
//
//   - Nothing here allocates; every function writes into buffers the
//     caller provides. Aliasing between inputs and outputs is allowed
//     throughout and handled by staging through stack arrays.
//   - Slices shorter than 9 elements panic via the runtime bounds check;
//     there is no error channel on this hot path. The matrix package is
//     the validated, arbitrary-dimension counterpart.
package ops3
