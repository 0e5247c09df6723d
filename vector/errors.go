package vector

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is matched by every *ErrDimensionMismatch via errors.Is.
var ErrInvalidDimension = errors.New("invalid dimension")

// ErrDimensionMismatch indicates a slice whose length differs from the
// arity of the requested vector type.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidDimension }
