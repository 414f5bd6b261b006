package timesheet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-timesheets/internal/core/model"
)

// Default window boundaries used when no dates are given on the command line.
const (
	DefaultStartDate = "2000-01-01"
	DefaultEndDate   = "2100-01-01"
)

// ErrInvalidRange is returned when the start date lies after the end date.
var ErrInvalidRange = errors.New("start date is after end date")

// dateLayouts are tried in order when parsing a calendar date. Slash dates
// are month first.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
}

// ParseDate parses a calendar date and returns midnight of that day.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return midnight(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or MM/DD/YYYY)", value)
}

// NewDateRange builds the window [start, end+1 day) from two calendar dates,
// so that the end date itself is included in full.
func NewDateRange(start, end time.Time) (model.DateRange, error) {
	r := model.DateRange{
		Start: midnight(start),
		End:   midnight(end).AddDate(0, 0, 1),
	}
	if r.Start.After(r.End) {
		return model.DateRange{}, fmt.Errorf("%w: %s > %s",
			ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return r, nil
}

// ParseDateRange parses the inclusive start and end dates given by the user.
func ParseDateRange(startDate, endDate string) (model.DateRange, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("start date: %w", err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("end date: %w", err)
	}
	return NewDateRange(start, end)
}

// InWindow reports whether t falls inside r: start inclusive, end exclusive.
func InWindow(t time.Time, r model.DateRange) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
