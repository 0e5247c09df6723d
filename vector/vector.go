package vector

import (
	"github.com/hupe1980/handyman/vector/vec2d"
	"github.com/hupe1980/handyman/vector/vec3d"
)

// Vec2D is a two-dimensional vector. See package vec2d for its operations.
type Vec2D[I any] = vec2d.Vec2D[I]

// Vec3D is a three-dimensional vector. See package vec3d for its operations.
type Vec3D[I any] = vec3d.Vec3D[I]

// V2 is a convenience function to create a Vec2D.
func V2[I any](x, y I) Vec2D[I] {
	return vec2d.New(x, y)
}

// V3 is a convenience function to create a Vec3D.
func V3[I any](x, y, z I) Vec3D[I] {
	return vec3d.New(x, y, z)
}

// FromSlice2 copies a two-element slice into a Vec2D.
// It returns *ErrDimensionMismatch if len(s) != 2.
func FromSlice2[I any](s []I) (Vec2D[I], error) {
	if len(s) != 2 {
		return Vec2D[I]{}, &ErrDimensionMismatch{Expected: 2, Actual: len(s)}
	}
	return vec2d.FromTuple([2]I(s)), nil
}

// FromSlice3 copies a three-element slice into a Vec3D.
// It returns *ErrDimensionMismatch if len(s) != 3.
func FromSlice3[I any](s []I) (Vec3D[I], error) {
	if len(s) != 3 {
		return Vec3D[I]{}, &ErrDimensionMismatch{Expected: 3, Actual: len(s)}
	}
	return vec3d.FromTuple([3]I(s)), nil
}
