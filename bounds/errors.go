package bounds

import (
	"errors"
	"fmt"

	"rangeguard/primitive"
	"rangeguard/utils"
)

var ErrOutOfRange = errors.New("value is out of range")

// RangeError describes a rejected value. It unwraps to ErrOutOfRange.
type RangeError struct {
	Kind  primitive.KindEnum
	Value any
	Min   any
	Max   any
	Abs   bool // the magnitude of Value was checked
}

func (e *RangeError) Error() string {
	what := "value"
	if e.Abs {
		what = "magnitude of"
	}

	return fmt.Sprintf("%s %s %v is out of range [%v, %v]", e.Kind.Name(), what, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func newRangeError[T utils.Number](value, min, max T, abs bool) *RangeError {
	return &RangeError{
		Kind:  primitive.Of[T](),
		Value: value,
		Min:   min,
		Max:   max,
		Abs:   abs,
	}
}
