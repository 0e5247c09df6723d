// Package vec3d provides Vec3D, a three-dimensional vector over any scalar type.
package vec3d

import "fmt"

// Vec3D is a three-dimensional vector [x y z] with components of type I.
// Like an array, it is copied on assignment.
type Vec3D[I any] [3]I

// New returns the vector [x y z].
func New[I any](x, y, z I) Vec3D[I] {
	return Vec3D[I]{x, y, z}
}

// FromTuple returns the vector [t[0] t[1] t[2]].
func FromTuple[I any](t [3]I) Vec3D[I] {
	return Vec3D[I](t)
}

// X returns the x component.
func (v Vec3D[I]) X() I { return v[0] }

// Y returns the y component.
func (v Vec3D[I]) Y() I { return v[1] }

// Z returns the z component.
func (v Vec3D[I]) Z() I { return v[2] }

// Array returns the components as an ordered tuple (x, y, z).
func (v Vec3D[I]) Array() [3]I { return [3]I(v) }

// String formats v as (x, y, z).
func (v Vec3D[I]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

// Apply returns [f(x) f(y) f(z)], calling f in component order.
func Apply[I, U any](v Vec3D[I], f func(I) U) Vec3D[U] {
	x := f(v[0])
	y := f(v[1])
	z := f(v[2])
	return Vec3D[U]{x, y, z}
}

// ZipWith returns [f(a.x, b.x) f(a.y, b.y) f(a.z, b.z)], calling f in
// component order.
func ZipWith[I, O, U any](a Vec3D[I], b Vec3D[O], f func(I, O) U) Vec3D[U] {
	x := f(a[0], b[0])
	y := f(a[1], b[1])
	z := f(a[2], b[2])
	return Vec3D[U]{x, y, z}
}

// EqualFunc reports whether a and b are equal component by component.
func EqualFunc[I, O any](a Vec3D[I], b Vec3D[O], eq func(I, O) bool) bool {
	return eq(a[0], b[0]) && eq(a[1], b[1]) && eq(a[2], b[2])
}
