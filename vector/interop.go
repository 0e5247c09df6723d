package vector

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromR3 converts a gonum spatial vector into a Vec3D.
func FromR3(v r3.Vec) Vec3D[float64] {
	return V3(v.X, v.Y, v.Z)
}

// ToR3 converts v into a gonum spatial vector.
func ToR3(v Vec3D[float64]) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// FromF32Vec2 converts an x/image f32.Vec2 into a Vec2D.
func FromF32Vec2(v f32.Vec2) Vec2D[float32] { return Vec2D[float32](v) }

// ToF32Vec2 converts v into an x/image f32.Vec2.
func ToF32Vec2(v Vec2D[float32]) f32.Vec2 { return f32.Vec2(v) }

// FromF32Vec3 converts an x/image f32.Vec3 into a Vec3D.
func FromF32Vec3(v f32.Vec3) Vec3D[float32] { return Vec3D[float32](v) }

// ToF32Vec3 converts v into an x/image f32.Vec3.
func ToF32Vec3(v Vec3D[float32]) f32.Vec3 { return f32.Vec3(v) }
