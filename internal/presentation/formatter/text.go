package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-timesheets/internal/core/model"
)

// TextFormatter prints the two total lines.
type TextFormatter struct {
	w io.Writer
}

func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{w: w}
}

func (f *TextFormatter) Format(report *model.Report) error {
	if _, err := fmt.Fprintf(f.w, "Total hours: %d\n", report.Totals.Hours); err != nil {
		return err
	}
	_, err := fmt.Fprintf(f.w, "Total minutes: %d\n", report.Totals.Minutes)
	return err
}
