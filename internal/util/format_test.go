package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatChunk(t *testing.T) {
	tests := []struct {
		hours    int
		minutes  int
		expected string
	}{
		{0, 0, "0h0m"},
		{8, 30, "8h30m"},
		{0, 5, "0h5m"},
		{12, 0, "12h0m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatChunk(tt.hours, tt.minutes))
		})
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	tests := []struct {
		name     string
		hours    int
		minutes  int
		expected string
	}{
		{"zero", 0, 0, "0m"},
		{"minutes only", 0, 45, "45m"},
		{"exactly one hour", 1, 0, "1h 0m"},
		{"hours and minutes", 25, 45, "25h 45m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHoursMinutes(tt.hours, tt.minutes))
		})
	}
}

func TestDecimalHours(t *testing.T) {
	assert.InDelta(t, 8.5, DecimalHours(8, 30), 1e-9)
	assert.InDelta(t, 0.25, DecimalHours(0, 15), 1e-9)
	assert.Equal(t, "2.33", FormatDecimalHours(2, 20))
	assert.Equal(t, "0.00", FormatDecimalHours(0, 0))
}
