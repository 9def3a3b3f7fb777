package utils

import "math"

// WithinTolerance reports whether value is within tolerancePercent of
// reference, symmetrically. A zero reference requires an exact match; there
// is no percentage of zero to divide by.
func WithinTolerance(value, reference, tolerancePercent float64) bool {
	if reference == 0 {
		return value == 0
	}
	diff := math.Abs(value-reference) / math.Abs(reference) * 100.0
	return diff <= tolerancePercent
}

// VariancePct returns the difference between two values as a percentage of
// the larger magnitude. Two zeros have zero variance.
func VariancePct(a, b float64) float64 {
	larger := math.Max(math.Abs(a), math.Abs(b))
	if larger == 0 {
		return 0
	}
	return math.Abs(a-b) / larger * 100.0
}

// Clamp01 clamps v to the closed interval [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
