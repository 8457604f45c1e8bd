// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/solar-quote/pkg/constants"
)

// CeilCount rounds a fractional requirement up to the next whole unit. Negative
// and NaN inputs yield zero; values beyond int range saturate at math.MaxInt.
func CeilCount(val float64) int {
	if math.IsNaN(val) || val <= 0 {
		return 0
	}
	c := math.Ceil(val)
	if c >= math.MaxInt {
		return math.MaxInt
	}
	return int(c)
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// RoundWhole rounds half away from zero to a whole number, used for display
// values such as battery amp-hours.
func RoundWhole(val float64) int64 {
	return int64(math.Round(val))
}

// Round rounds a value to two decimals.
func Round(val float64) float64 {
	return math.Round(val*100) / 100
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.FloatTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Percent converts a fraction to a whole percentage, e.g. 0.934 -> 93.
func Percent(fraction float64) int {
	return int(math.Round(fraction * constants.PercentageMultiplier))
}
