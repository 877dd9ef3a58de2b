// SPDX-License-Identifier: MIT
// Package vector_test covers the fixed-dimension value vectors.

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/vector"
)

// TestDimensions verifies the Dimension() contract for all three types.
func TestDimensions(t *testing.T) {
	require.Equal(t, 2, vector.NewVec2(1, 2).Dimension())
	require.Equal(t, 3, vector.NewVec3(1, 2, 3).Dimension())
	require.Equal(t, 4, vector.NewVec4(1, 2, 3, 4).Dimension())
}

// TestComponent verifies indexed access and the out-of-range panic.
func TestComponent(t *testing.T) {
	v := vector.NewVec3(10, 20, 30)
	require.Equal(t, 10.0, v.Component(0))
	require.Equal(t, 20.0, v.Component(1))
	require.Equal(t, 30.0, v.Component(2))

	require.Panics(t, func() { v.Component(3) })
	require.Panics(t, func() { v.Component(-1) })

	v4 := vector.NewVec4(1, 2, 3, 4)
	require.Equal(t, 4.0, v4.Component(3))
}

// TestDotMagnitude verifies the inner product and Euclidean length.
func TestDotMagnitude(t *testing.T) {
	a := vector.NewVec3(1, 2, 2)
	b := vector.NewVec3(2, -1, 0)

	require.Equal(t, 0.0, a.Dot(b)) // orthogonal pair
	require.Equal(t, 3.0, a.Magnitude())
	require.InDelta(t, math.Sqrt(5), b.Magnitude(), 1e-15)

	require.Equal(t, 11.0, vector.NewVec2(1, 2).Dot(vector.NewVec2(3, 4)))
}

// TestArithmetic verifies Add, Sub and Scale are value-semantic.
func TestArithmetic(t *testing.T) {
	a := vector.NewVec2(1, 2)
	b := vector.NewVec2(3, 4)

	require.Equal(t, vector.NewVec2(4, 6), a.Add(b))
	require.Equal(t, vector.NewVec2(-2, -2), a.Sub(b))
	require.Equal(t, vector.NewVec2(2, 4), a.Scale(2))
	require.Equal(t, vector.NewVec2(1, 2), a) // receiver untouched
}

// TestCross verifies the right-handed cross product on the basis vectors.
func TestCross(t *testing.T) {
	x := vector.NewVec3(1, 0, 0)
	y := vector.NewVec3(0, 1, 0)
	z := vector.NewVec3(0, 0, 1)

	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x, y.Cross(z))
	require.Equal(t, vector.NewVec3(0, 0, -1), y.Cross(x))
}
