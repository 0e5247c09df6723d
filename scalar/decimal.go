package scalar

import "github.com/shopspring/decimal"

// Decimal is the SignedRing of arbitrary-precision decimals.
//
// Decimal values are not comparable with ==: 1.0 and 1.00 are numerically
// equal but structurally different. Use Equal for numeric comparison.
type Decimal struct{}

var _ SignedRing[decimal.Decimal] = Decimal{}

var decimalOne = decimal.NewFromInt(1)

// Zero returns decimal 0.
func (Decimal) Zero() decimal.Decimal { return decimal.Zero }

// One returns decimal 1.
func (Decimal) One() decimal.Decimal { return decimalOne }

// Add returns a + b.
func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }

// Mul returns a * b without rounding.
func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

// Neg returns -a.
func (Decimal) Neg(a decimal.Decimal) decimal.Decimal { return a.Neg() }

// Equal reports whether a and b represent the same number.
func (Decimal) Equal(a, b decimal.Decimal) bool { return a.Equal(b) }
