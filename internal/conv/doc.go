// Package conv provides exact integer arithmetic.
//
// The functions report overflow instead of silently wrapping, which lets
// scalar rings built on top of them fail loudly when a vector operation
// exceeds the range of the component type.
//
// Use cases:
//   - Overflow-checked scalar rings (see scalar.Checked)
//   - Validating arithmetic on untrusted component values
//
// For arithmetic that is provably in range by domain constraints, use the
// plain Go operators instead to avoid overhead.
package conv
