// Package scalar defines the capabilities a component type must provide
// for the vector operations that need them.
//
// Capabilities are layered:
//
//	any            construction, accessors, Apply, ZipWith
//	Identity[I]    Zero, One
//	Ring[I]        Identity plus Add and Mul
//	SignedRing[I]  Ring plus Neg
//
// Builtin numeric types get their rings for free through Native and
// NativeSigned; the Number and Signed constraints describe which builtin
// types qualify. Other scalars plug in by implementing the interfaces,
// as Decimal does for github.com/shopspring/decimal.
//
// # Overflow
//
// Native rings wrap on integer overflow, exactly like the Go operators.
// Checked and CheckedSigned panic instead, with an error matching
// ErrOverflow:
//
//	ops := vec2d.Over[int8](scalar.Checked[int8]{})
//	ops.Add(vec2d.New[int8](100, 0), vec2d.New[int8](100, 0)) // panics
package scalar
