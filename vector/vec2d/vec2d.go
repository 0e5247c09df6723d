// Package vec2d provides Vec2D, a two-dimensional vector over any scalar type.
//
// Construction, access and the functional transforms Apply and ZipWith work
// for every component type. Zero, One, Mul, Add and Neg need the scalar to
// be a builtin number; any other scalar plugs in through a ring from the
// scalar package (see Over and OverSigned).
package vec2d

import "fmt"

// Vec2D is a two-dimensional vector [x y] with components of type I.
//
// It is a plain value: assigning or passing a Vec2D copies both components.
// When I is comparable, Vec2D values can be compared with ==.
type Vec2D[I any] [2]I

// New returns the vector [x y].
func New[I any](x, y I) Vec2D[I] {
	return Vec2D[I]{x, y}
}

// FromTuple returns the vector [t[0] t[1]].
//
// Using New or a composite literal is preferred; FromTuple is convenient
// when the components already come as an array.
func FromTuple[I any](t [2]I) Vec2D[I] {
	return Vec2D[I](t)
}

// X returns the x component.
func (v Vec2D[I]) X() I { return v[0] }

// Y returns the y component.
func (v Vec2D[I]) Y() I { return v[1] }

// Array returns the components as an ordered tuple (x, y).
func (v Vec2D[I]) Array() [2]I { return [2]I(v) }

// String formats v as (x, y).
func (v Vec2D[I]) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}

// Apply returns [f(x) f(y)]. f is called once per component, x first.
func Apply[I, U any](v Vec2D[I], f func(I) U) Vec2D[U] {
	x := f(v[0])
	y := f(v[1])
	return Vec2D[U]{x, y}
}

// ZipWith returns [f(a.x, b.x) f(a.y, b.y)]. f is called once per
// component pair, x first.
func ZipWith[I, O, U any](a Vec2D[I], b Vec2D[O], f func(I, O) U) Vec2D[U] {
	x := f(a[0], b[0])
	y := f(a[1], b[1])
	return Vec2D[U]{x, y}
}

// EqualFunc reports whether a and b are equal component by component,
// using eq to compare scalars.
func EqualFunc[I, O any](a Vec2D[I], b Vec2D[O], eq func(I, O) bool) bool {
	return eq(a[0], b[0]) && eq(a[1], b[1])
}
