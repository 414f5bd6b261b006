package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-timesheets/internal/core/model"
)

// Formatter writes a finished report.
type Formatter interface {
	Format(report *model.Report) error
}

// NewFormatter returns the formatter for the named output format.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "", model.OutputText:
		return NewTextFormatter(w), nil
	case model.OutputJSON:
		return NewJSONFormatter(w), nil
	case model.OutputCSV:
		return NewCSVFormatter(w), nil
	case model.OutputTable:
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (text, json, csv, table)", format)
	}
}

// inclusiveEnd turns the exclusive window end back into the last included day.
func inclusiveEnd(r model.DateRange) string {
	if r.End.IsZero() {
		return ""
	}
	return r.End.AddDate(0, 0, -1).Format("2006-01-02")
}

func formatDate(r model.DateRange) string {
	if r.Start.IsZero() {
		return ""
	}
	return r.Start.Format("2006-01-02")
}
