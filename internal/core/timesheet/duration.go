package timesheet

import (
	"fmt"
	"time"
)

// DefaultTimeLayout reads "day/month/year hour:minute:second AM|PM".
// Day, month and hour may be written with or without a leading zero.
const DefaultTimeLayout = "2/1/2006 3:04:05 PM"

// ParseError is returned when a date and time pair does not match the layout.
type ParseError struct {
	Value  string
	Layout string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %q: %v", e.Value, e.Layout, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Duration is the elapsed time of a single timesheet row.
type Duration struct {
	Start   time.Time
	End     time.Time
	Hours   int
	Minutes int
	// Inverted is set when the end time lies before the start time. Hours and
	// Minutes then hold the magnitude of the difference.
	Inverted bool
}

// DurationCalculator turns a row's date, start and end strings into a Duration.
type DurationCalculator struct {
	layout string
}

// NewDurationCalculator creates a calculator for the given time layout. An
// empty layout selects DefaultTimeLayout.
func NewDurationCalculator(layout string) *DurationCalculator {
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return &DurationCalculator{layout: layout}
}

// Layout returns the layout date+time strings are parsed with.
func (c *DurationCalculator) Layout() string {
	return c.layout
}

// Compute parses "date startTime" and "date endTime" and returns the elapsed
// whole hours and remaining whole minutes. Seconds are discarded.
func (c *DurationCalculator) Compute(date, startTime, endTime string) (Duration, error) {
	start, err := c.parse(date, startTime)
	if err != nil {
		return Duration{}, err
	}
	end, err := c.parse(date, endTime)
	if err != nil {
		return Duration{}, err
	}

	d := Duration{Start: start, End: end}
	elapsed := end.Sub(start)
	if elapsed < 0 {
		// An end past midnight is not moved to the next day.
		d.Inverted = true
		elapsed = -elapsed
	}
	d.Hours = int(elapsed / time.Hour)
	d.Minutes = int(elapsed % time.Hour / time.Minute)
	return d, nil
}

func (c *DurationCalculator) parse(date, clock string) (time.Time, error) {
	value := date + " " + clock
	t, err := time.Parse(c.layout, value)
	if err != nil {
		return time.Time{}, &ParseError{Value: value, Layout: c.layout, Err: err}
	}
	return t, nil
}
