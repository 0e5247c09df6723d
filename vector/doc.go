// Package vector provides generic two- and three-dimensional vectors.
//
// The vector types live in the vec2d and vec3d packages; this package
// re-exports them under a common name together with a few shorthands.
//
// # Quick Start
//
//	a := vector.V2(1, 2)
//	b := vector.V2(3, 4)
//	vec2d.Add(a, b)                                 // (4, 6)
//	vec2d.Mul(vector.V2(1, 3), 2)                   // (2, 6)
//	vec2d.Neg(vector.V2(2, -3))                     // (-2, 3)
//	vec2d.Apply(a, func(x int) int { return x + 2 }) // (3, 4)
//
// # Scalars
//
// Any type can be a component. Arithmetic needs a ring from the scalar
// package. Builtin numbers use one implicitly:
//
//	vec3d.Add(vector.V3(1, 2, 3), vector.V3(4, 5, 6))
//
// Other scalars pass their ring explicitly:
//
//	ops := vec3d.OverSigned[decimal.Decimal](scalar.Decimal{})
//	ops.Neg(v)
//
// # Value Semantics
//
// Vectors are fixed-size arrays. They are copied on assignment, never
// share state, and every operation returns a new vector, so they can be
// used from multiple goroutines without synchronization.
package vector
