// Package datetime provides date and time utility functions for proposal
// headers.
package datetime

import (
	"time"

	"github.com/iwvelando/solar-quote/pkg/constants"
)

// DateLayout is the format of proposal issue and validity dates.
const DateLayout = constants.DateLayout

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidUntil is the last day a quote issued at issued may be accepted.
// Non-positive validity means the quote expires the day it is issued.
func ValidUntil(issued time.Time, days int) string {
	if days < 0 {
		days = 0
	}
	return issued.AddDate(0, 0, days).Format(DateLayout)
}
