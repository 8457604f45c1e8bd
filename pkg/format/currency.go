// Package format renders money and engineering figures for proposals.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Pesos returns a whole-peso string with a dollar sign and dot thousands
// separators (e.g., "-$1.234.567").
func Pesos(amount int64) string {
	if amount < 0 {
		return "-$" + groupThousands(uint64(-amount))
	}
	return "$" + groupThousands(uint64(amount))
}

// Watts renders a rating, switching to kW from 1000 W (e.g., "850 W", "5 kW",
// "7.2 kW").
func Watts(watts int) string {
	if watts < 1000 && watts > -1000 {
		return fmt.Sprintf("%d W", watts)
	}
	kw := strconv.FormatFloat(float64(watts)/1000, 'f', -1, 64)
	return kw + " kW"
}

func groupThousands(value uint64) string {
	digits := strconv.FormatUint(value, 10)
	if len(digits) <= 3 {
		return digits
	}

	var builder strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			builder.WriteByte('.')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
