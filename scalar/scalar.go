package scalar

import "golang.org/x/exp/constraints"

// Number is the set of builtin types with native + and * operators.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Signed is the subset of Number whose values have a meaningful negation.
type Signed interface {
	constraints.Signed | constraints.Float | constraints.Complex
}

// Identity provides the additive and multiplicative identities of I.
type Identity[I any] interface {
	// Zero returns the value z such that x + z == x.
	Zero() I
	// One returns the value u such that x * u == x.
	One() I
}

// Ring provides addition and multiplication over I.
type Ring[I any] interface {
	Identity[I]
	Add(a, b I) I
	Mul(a, b I) I
}

// SignedRing is a Ring whose elements can be negated.
type SignedRing[I any] interface {
	Ring[I]
	Neg(a I) I
}

// Native is the Ring of a builtin numeric type, backed by the Go operators.
type Native[I Number] struct{}

// Compile time checks to ensure the native rings satisfy their interfaces.
var (
	_ Ring[uint8]         = Native[uint8]{}
	_ SignedRing[int]     = NativeSigned[int]{}
	_ SignedRing[float64] = NativeSigned[float64]{}
)

// Zero returns the zero value of I.
func (Native[I]) Zero() I {
	var z I
	return z
}

// One returns 1.
func (Native[I]) One() I { return 1 }

// Add returns a + b.
func (Native[I]) Add(a, b I) I { return a + b }

// Mul returns a * b.
func (Native[I]) Mul(a, b I) I { return a * b }

// Equal reports whether a == b.
func (Native[I]) Equal(a, b I) bool { return a == b }

// NativeSigned is the SignedRing of a builtin signed numeric type.
type NativeSigned[I Signed] struct {
	Native[I]
}

// Neg returns -a.
func (NativeSigned[I]) Neg(a I) I { return -a }
