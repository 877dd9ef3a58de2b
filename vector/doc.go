// SPDX-License-Identifier: MIT

// Package vector provides small fixed-dimension vector value types.
//
// Vec2, Vec3 and Vec4 are plain value structs with componentwise access
// and a handful of closed-form helpers (dot product, magnitude). They carry
// no matrix dependency; the matrix package bridges them to rows and columns
// of dense matrices.
//
// All types are copied by value; there is no shared mutable state.
package vector
