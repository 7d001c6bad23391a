package trip

import (
	"fmt"
	"time"
)

// travelYear infers which calendar year a trip in the given month belongs to.
// Months already past roll over to next year; the current month still counts
// while it is its first day. The inferred date is never in the past.
func travelYear(month int, now time.Time) int {
	currentMonth := int(now.Month())
	if month < currentMonth || (month == currentMonth && now.Day() > 1) {
		return now.Year() + 1
	}
	return now.Year()
}

// travelDate synthesizes the search date as the first day of the resolved
// month. No day-of-month input is supported.
func travelDate(month int, now time.Time) string {
	return fmt.Sprintf("%04d-%02d-01", travelYear(month, now), month)
}
