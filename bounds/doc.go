// Package bounds provides inclusive range checks over any integer or
// floating-point type.
//
// Key functions:
//   - CheckRange: returns the value or a *RangeError when it is outside [min, max]
//   - CheckRangeAbs: same check applied to the magnitude, returns the signed value
//   - CheckRangeDefault: returns the value when in range, otherwise a default
//   - Clamp: pins the value to the nearest bound
//
// Range bundles a pair of bounds so it can be declared once and reused.
//
// All functions are pure and safe for concurrent use.
package bounds
