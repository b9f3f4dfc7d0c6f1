package utils

// IsInRange checks if a value is within the specified range, both inclusive.
//
// The test is written as two strict rejections, so a NaN is never rejected.
func IsInRange[T Number](min T, value T, max T) bool {
	return !(value < min) && !(value > max)
}

// IsInAbsRange checks if the magnitude of a value is within the specified range, both inclusive.
// A negative min disables the lower bound.
func IsInAbsRange[T Number](min T, value T, max T) bool {
	abs := Abs(value)
	if value < 0 && abs < 0 {
		// magnitude of the minimum signed integer is not representable
		return false
	}

	return IsInRange(min, abs, max)
}
