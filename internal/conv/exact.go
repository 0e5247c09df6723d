package conv

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is wrapped by every error returned from this package.
var ErrOverflow = errors.New("integer overflow")

// AddExact returns a+b, or an error if the sum does not fit in I.
func AddExact[I constraints.Integer](a, b I) (I, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return s, nil
}

// MulExact returns a*b, or an error if the product does not fit in I.
func MulExact[I constraints.Integer](a, b I) (I, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	// The sign test catches MinInt * -1, where the division check alone passes.
	if p/b != a || (p < 0) != ((a < 0) != (b < 0)) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return p, nil
}

// NegExact returns -a, or an error if a is the minimum value of I.
func NegExact[I constraints.Signed](a I) (I, error) {
	n := -a
	if a != 0 && n == a {
		return 0, fmt.Errorf("%w: -(%d)", ErrOverflow, a)
	}
	return n, nil
}
