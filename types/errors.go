package types

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates two vectors that must share a dimension do not
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidOption indicates an option value outside its allowed set
	ErrInvalidOption = errors.New("invalid option")
)

// DimensionError wraps ErrDimensionMismatch with both lengths.
func DimensionError(got, want int) error {
	return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, got, want)
}
