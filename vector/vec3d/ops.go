package vec3d

import "github.com/hupe1980/handyman/scalar"

// ZeroOf returns the additive identity vector [0 0 0] of id.
func ZeroOf[I any](id scalar.Identity[I]) Vec3D[I] {
	z := id.Zero()
	return Vec3D[I]{z, z, z}
}

// OneOf returns the multiplicative identity vector [1 1 1] of id.
func OneOf[I any](id scalar.Identity[I]) Vec3D[I] {
	u := id.One()
	return Vec3D[I]{u, u, u}
}

// Ops provides the arithmetic of Vec3D[I] over a ring.
type Ops[I any] struct {
	r scalar.Ring[I]
}

// Over returns the vector operations backed by r.
func Over[I any](r scalar.Ring[I]) Ops[I] {
	return Ops[I]{r: r}
}

// Zero returns [0 0 0].
func (o Ops[I]) Zero() Vec3D[I] { return ZeroOf[I](o.r) }

// One returns [1 1 1].
func (o Ops[I]) One() Vec3D[I] { return OneOf[I](o.r) }

// Mul returns v with every component multiplied by k.
func (o Ops[I]) Mul(v Vec3D[I], k I) Vec3D[I] {
	return Apply(v, func(x I) I { return o.r.Mul(x, k) })
}

// Add returns the component-wise sum of a and b.
func (o Ops[I]) Add(a, b Vec3D[I]) Vec3D[I] {
	return ZipWith(a, b, o.r.Add)
}

// SignedOps extends Ops with negation.
type SignedOps[I any] struct {
	Ops[I]
	r scalar.SignedRing[I]
}

// OverSigned returns the vector operations backed by the signed ring r.
func OverSigned[I any](r scalar.SignedRing[I]) SignedOps[I] {
	return SignedOps[I]{Ops: Over[I](r), r: r}
}

// Neg returns v * -1.
func (o SignedOps[I]) Neg(v Vec3D[I]) Vec3D[I] {
	return o.Mul(v, o.r.Neg(o.r.One()))
}

// Zero returns the zero vector of a builtin numeric type.
func Zero[I scalar.Number]() Vec3D[I] {
	return ZeroOf[I](scalar.Native[I]{})
}

// One returns the vector [1 1 1] of a builtin numeric type.
func One[I scalar.Number]() Vec3D[I] {
	return OneOf[I](scalar.Native[I]{})
}

// Mul returns v scaled by k.
func Mul[I scalar.Number](v Vec3D[I], k I) Vec3D[I] {
	return Over[I](scalar.Native[I]{}).Mul(v, k)
}

// Add returns a + b.
func Add[I scalar.Number](a, b Vec3D[I]) Vec3D[I] {
	return Over[I](scalar.Native[I]{}).Add(a, b)
}

// Neg returns -v.
func Neg[I scalar.Signed](v Vec3D[I]) Vec3D[I] {
	return OverSigned[I](scalar.NativeSigned[I]{}).Neg(v)
}
