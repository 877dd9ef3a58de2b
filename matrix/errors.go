// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> structural
// preconditions (square, row conformance, rank, singularity) -> vector
// bridge typing.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0),
	// or when nested-row input is ragged. Constructors must validate shape
	// before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// elementwise ops on different shapes, Mul where a.Cols != b.Rows, or a
	// flat buffer whose length disagrees with rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Det and eigen decomposition; Trace intentionally tolerates
	// rectangular inputs).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRowMismatch signals that a right-hand side passed to a solver has a
	// row count different from the system's.
	ErrRowMismatch = errors.New("matrix: right-hand side row count mismatch")

	// ErrSingular is returned by LU-based solves and inversion when a zero
	// pivot makes the system unsolvable.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrRankDeficient is returned by QR-based least-squares solves when a
	// zero appears on the R diagonal.
	ErrRankDeficient = errors.New("matrix: rank deficient matrix")

	// ErrBadVector marks a value passed to RowVector/ColumnVector that is
	// none of the recognized 2/3/4-dimensional vector types.
	ErrBadVector = errors.New("matrix: not a recognized vector type")
)
