// Package matrix offers a dense row-major float64 container together with
// the four classical matrix decompositions.
//
// The matrix package provides:
//
//   - Dense, a flat-buffer m×n container behind a small Matrix interface,
//     with checked accessors and deep Clone.
//   - Elementwise kernels (Add, Sub, Hadamard, HadamardDiv, Scale) and core
//     linear algebra (Mul, Transpose, MatVec, Trace, norms).
//   - Eager decomposition factories: DecomposeLU (partial pivoting),
//     DecomposeQR (Householder), DecomposeEigen (symmetric QL and real
//     Schur paths), DecomposeSVD (Golub–Kahan with implicit-shift QR).
//   - Facades over the decompositions: Solve, SolveTranspose, Inverse, Det,
//     Rank, Cond, Norm2, Pseudoinverse.
//   - Bridges between matrix rows/columns and the vector package types.
//
// Every decomposition copies the input buffer at construction and owns its
// working state exclusively: the source Matrix is safe to mutate or discard
// afterwards, and decomposing the same Matrix from several goroutines is
// safe as long as nothing mutates it concurrently.
//
// Dense matrices here target modest sizes (simulation-scale, typically
// below a few dozen rows); for the 3×3 hot path see the ops3 package.
package matrix
