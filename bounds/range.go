package bounds

import (
	"fmt"

	"rangeguard/utils"
)

// Range is an inclusive [Min, Max] interval.
type Range[T utils.Number] struct {
	Min T
	Max T
}

func NewRange[T utils.Number](min, max T) Range[T] {
	return Range[T]{
		Min: min,
		Max: max,
	}
}

// Valid reports whether Min <= Max.
func (r Range[T]) Valid() bool {
	return r.Min <= r.Max
}

func (r Range[T]) Contains(value T) bool {
	return utils.IsInRange(r.Min, value, r.Max)
}

func (r Range[T]) ContainsAbs(value T) bool {
	return utils.IsInAbsRange(r.Min, value, r.Max)
}

func (r Range[T]) Check(value T) (T, error) {
	return CheckRange(value, r.Min, r.Max)
}

func (r Range[T]) CheckAbs(value T) (T, error) {
	return CheckRangeAbs(value, r.Min, r.Max)
}

func (r Range[T]) OrDefault(value, def T) T {
	return CheckRangeDefault(value, r.Min, r.Max, def)
}

func (r Range[T]) Clamp(value T) T {
	return Clamp(value, r.Min, r.Max)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
