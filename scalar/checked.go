package scalar

import (
	"github.com/hupe1980/handyman/internal/conv"
	"golang.org/x/exp/constraints"
)

// ErrOverflow is the error a checked ring panics with (possibly wrapped)
// when an operation overflows the component type.
var ErrOverflow = conv.ErrOverflow

// Checked is the Ring of a builtin integer type that panics on overflow
// instead of wrapping around.
//
// The panic value is an error; recover it and test with errors.Is(err, ErrOverflow).
type Checked[I constraints.Integer] struct{}

var (
	_ Ring[uint32]      = Checked[uint32]{}
	_ SignedRing[int16] = CheckedSigned[int16]{}
)

// Zero returns 0.
func (Checked[I]) Zero() I { return 0 }

// One returns 1.
func (Checked[I]) One() I { return 1 }

// Add returns a + b. It panics if the sum overflows I.
func (Checked[I]) Add(a, b I) I { return must[I](conv.AddExact(a, b)) }

// Mul returns a * b. It panics if the product overflows I.
func (Checked[I]) Mul(a, b I) I { return must[I](conv.MulExact(a, b)) }

// CheckedSigned is the SignedRing counterpart of Checked. Negating the
// minimum value of I panics.
type CheckedSigned[I constraints.Signed] struct {
	Checked[I]
}

// Neg returns -a. It panics if a is the minimum value of I.
func (CheckedSigned[I]) Neg(a I) I { return must[I](conv.NegExact(a)) }

func must[I any](v I, err error) I {
	if err != nil {
		panic(err)
	}
	return v
}
