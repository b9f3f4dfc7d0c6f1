package bounds

import "rangeguard/utils"

// CheckRange returns value if min <= value <= max, both inclusive.
// Otherwise it returns the zero value and a *RangeError.
//
// min <= max is not enforced. A NaN is never rejected.
func CheckRange[T utils.Number](value, min, max T) (T, error) {
	if !utils.IsInRange(min, value, max) {
		var zero T
		return zero, newRangeError(value, min, max, false)
	}

	return value, nil
}

// CheckRangeAbs checks |value| against [min, max], both inclusive, and
// returns the original signed value on success.
//
// A negative min never rejects anything, so it disables the lower bound.
// The minimum value of a signed integer type is always rejected.
func CheckRangeAbs[T utils.Number](value, min, max T) (T, error) {
	if !utils.IsInAbsRange(min, value, max) {
		var zero T
		return zero, newRangeError(value, min, max, true)
	}

	return value, nil
}

// CheckRangeDefault returns value if min <= value <= max, otherwise def.
// It never fails; compare the result with value to detect a substitution.
func CheckRangeDefault[T utils.Number](value, min, max, def T) T {
	if !utils.IsInRange(min, value, max) {
		return def
	}

	return value
}

// Clamp returns min if value is below it, max if value is above it, value otherwise.
func Clamp[T utils.Number](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}

	return value
}
