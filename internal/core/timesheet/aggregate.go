package timesheet

import "github.com/penwyp/go-timesheets/internal/core/model"

// Aggregate sums the hours and minutes of all chunks and carries every full
// 60 minutes into the hours once, after summing.
func Aggregate(chunks []model.WorkChunk) model.Totals {
	var totals model.Totals
	for _, chunk := range chunks {
		totals.Hours += chunk.Hours
		totals.Minutes += chunk.Minutes
	}
	return Normalize(totals)
}

// Normalize moves whole hours out of the minutes so that Minutes < 60.
func Normalize(totals model.Totals) model.Totals {
	for totals.Minutes >= 60 {
		totals.Minutes -= 60
		totals.Hours++
	}
	return totals
}
