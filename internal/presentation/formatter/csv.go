package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/util"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(report *model.Report) error {
	w := csv.NewWriter(f.w)

	headers := []string{"File", "Sheet", "Row", "Start", "Hours", "Minutes", "Decimal Hours"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, chunk := range report.Chunks {
		record := []string{
			chunk.File,
			chunk.Sheet,
			strconv.Itoa(chunk.Row),
			chunk.Start.Format("2006-01-02 15:04:05"),
			strconv.Itoa(chunk.Hours),
			strconv.Itoa(chunk.Minutes),
			util.FormatDecimalHours(chunk.Hours, chunk.Minutes),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	total := []string{
		"Total", "", "", "",
		strconv.Itoa(report.Totals.Hours),
		strconv.Itoa(report.Totals.Minutes),
		util.FormatDecimalHours(report.Totals.Hours, report.Totals.Minutes),
	}
	if err := w.Write(total); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
