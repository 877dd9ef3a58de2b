// Package densela is a dense, double-precision linear algebra toolkit:
// an arbitrary-dimension row-major matrix container with the four classical
// decompositions, plus an allocation-free 3×3 kernel for high-frequency
// callers.
//
// 🚀 What is densela?
//
//	A pure-Go numeric library that brings together:
//		• Dense containers: row-major flat-buffer matrices with checked accessors
//		• Elementwise ops: add, subtract, Hadamard product/division, scaling
//		• Decompositions: LU (partial pivoting), Householder QR,
//		  symmetric & general eigenvalue, singular value decomposition
//		• Solvers: square systems, least squares, inverses, pseudoinverses
//		• ops3: fixed 3×3 multiply/Givens/determinant/SVD over caller buffers
//
// ✨ Why choose densela?
//
//   - Deterministic – fixed loop orders, no hidden randomness, stable results
//   - Fail-fast – sentinel errors checked via errors.Is, never silent corruption
//   - Cache-friendly – flat row-major buffers, Dense fast-paths in every kernel
//   - Allocation-aware – the 3×3 hot path never allocates and tolerates aliasing
//
// Everything is organized under three subpackages plus a CLI:
//
//	matrix/      — Dense container, elementwise & core kernels, LU/QR/Eigen/SVD
//	ops3/        — fixed-size 3×3 kernel over raw 9-element buffers
//	vector/      — Vec2/Vec3/Vec4 value types bridged by matrix row/column helpers
//	cmd/densela/ — YAML-in, decomposition-out command line tool
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 2}, {1, 3}})
//	x, _ := matrix.Solve(a, b)     // LU for square, QR least squares otherwise
//	svd, _ := matrix.DecomposeSVD(a)
//	_ = svd.Converged()            // iteration cap surfaced as a status, not an error
//
// Dive into the package docs for the full decomposition contracts.
//
//	go get github.com/katalvlaran/densela
package densela
