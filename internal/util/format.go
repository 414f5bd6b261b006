package util

import (
	"fmt"
)

// FormatChunk renders hours and minutes compactly, e.g. "8h30m".
func FormatChunk(hours, minutes int) string {
	return fmt.Sprintf("%dh%dm", hours, minutes)
}

// FormatHoursMinutes renders hours and minutes for reading, e.g. "8h 30m".
// Minutes alone are shown without the hour part.
func FormatHoursMinutes(hours, minutes int) string {
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// DecimalHours converts hours and minutes to fractional hours.
func DecimalHours(hours, minutes int) float64 {
	return float64(hours) + float64(minutes)/60
}

// FormatDecimalHours renders fractional hours with two decimals, e.g. "8.50".
func FormatDecimalHours(hours, minutes int) string {
	return fmt.Sprintf("%.2f", DecimalHours(hours, minutes))
}
