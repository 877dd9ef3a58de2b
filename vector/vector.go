// SPDX-License-Identifier: MIT
// Package vector: Vec2/Vec3/Vec4 value types.
//
// Design notes:
//   - Components are exported fields; construction is by struct literal or
//     the New* helpers. Methods never mutate the receiver.
//   - Component(i) panics on an out-of-range index: a bad component index is
//     a programmer error on a fixed-dimension type, not a runtime condition.

package vector

import "math"

// Vec2 is a two-dimensional vector with components (X, Y).
type Vec2 struct {
	X, Y float64
}

// Vec3 is a three-dimensional vector with components (X, Y, Z).
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a four-dimensional vector with components (X, Y, Z, W).
type Vec4 struct {
	X, Y, Z, W float64
}

// NewVec2 builds a Vec2 from its components.
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// NewVec3 builds a Vec3 from its components.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// NewVec4 builds a Vec4 from its components.
func NewVec4(x, y, z, w float64) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Dimension reports the number of components (always 2).
func (Vec2) Dimension() int { return 2 }

// Dimension reports the number of components (always 3).
func (Vec3) Dimension() int { return 3 }

// Dimension reports the number of components (always 4).
func (Vec4) Dimension() int { return 4 }

// Component returns the i-th component in (x, y) order.
// Panics if i is outside [0, 2).
func (v Vec2) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("vector: Vec2 component index out of range")
}

// Component returns the i-th component in (x, y, z) order.
// Panics if i is outside [0, 3).
func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vector: Vec3 component index out of range")
}

// Component returns the i-th component in (x, y, z, w) order.
// Panics if i is outside [0, 4).
func (v Vec4) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("vector: Vec4 component index out of range")
}

// Dot returns the scalar product v·u.
func (v Vec2) Dot(u Vec2) float64 { return v.X*u.X + v.Y*u.Y }

// Dot returns the scalar product v·u.
func (v Vec3) Dot(u Vec3) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Dot returns the scalar product v·u.
func (v Vec4) Dot(u Vec4) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W }

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.Dot(v)) }

// Magnitude returns the Euclidean length of v.
func (v Vec4) Magnitude() float64 { return math.Sqrt(v.Dot(v)) }

// Add returns the componentwise sum v + u.
func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

// Add returns the componentwise sum v + u.
func (v Vec3) Add(u Vec3) Vec3 { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }

// Add returns the componentwise sum v + u.
func (v Vec4) Add(u Vec4) Vec4 { return Vec4{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W} }

// Sub returns the componentwise difference v - u.
func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

// Sub returns the componentwise difference v - u.
func (v Vec3) Sub(u Vec3) Vec3 { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }

// Sub returns the componentwise difference v - u.
func (v Vec4) Sub(u Vec4) Vec4 { return Vec4{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W} }

// Scale returns v multiplied by the scalar alpha.
func (v Vec2) Scale(alpha float64) Vec2 { return Vec2{alpha * v.X, alpha * v.Y} }

// Scale returns v multiplied by the scalar alpha.
func (v Vec3) Scale(alpha float64) Vec3 { return Vec3{alpha * v.X, alpha * v.Y, alpha * v.Z} }

// Scale returns v multiplied by the scalar alpha.
func (v Vec4) Scale(alpha float64) Vec4 {
	return Vec4{alpha * v.X, alpha * v.Y, alpha * v.Z, alpha * v.W}
}

// Cross returns the cross product v × u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}
