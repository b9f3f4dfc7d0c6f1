package utils

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type, including named ones.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the magnitude of value. Unsigned values are returned as is.
//
// For the minimum value of a signed integer type the negation overflows and
// the result stays negative, callers must treat a negative result as "too big".
func Abs[T Number](value T) T {
	if value < 0 {
		return -value
	}

	return value
}
