package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/util"
)

// maxSheetWidth caps the sheet column; longer titles are truncated.
const maxSheetWidth = 32

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		headers: []string{"Date", "Sheet", "Row", "Duration"},
	}
}

func (f *TableFormatter) Format(report *model.Report) error {
	rows := make([][]string, 0, len(report.Chunks)+1)
	for _, chunk := range report.Chunks {
		rows = append(rows, []string{
			chunk.Start.Format("2006-01-02 15:04"),
			util.Truncate(chunk.Sheet, maxSheetWidth),
			strconv.Itoa(chunk.Row),
			util.FormatHoursMinutes(chunk.Hours, chunk.Minutes),
		})
	}
	total := []string{"Total", "", "", util.FormatHoursMinutes(report.Totals.Hours, report.Totals.Minutes)}

	widths := f.calculateColumnWidths(append(rows, total))

	var b strings.Builder
	f.writeBorder(&b, widths, "top")
	f.writeRow(&b, f.headers, widths)
	f.writeBorder(&b, widths, "middle")
	for _, row := range rows {
		f.writeRow(&b, row, widths)
	}
	if len(rows) > 0 {
		f.writeBorder(&b, widths, "middle")
	}
	f.writeRow(&b, total, widths)
	f.writeBorder(&b, widths, "bottom")

	_, err := io.WriteString(f.w, b.String())
	return err
}

// calculateColumnWidths sizes each column by display width, not bytes.
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}
	for _, row := range rows {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// writeBorder writes table borders (top, middle, bottom)
func (f *TableFormatter) writeBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// writeRow writes one row; the first two columns are left-aligned, the
// numeric ones right-aligned.
func (f *TableFormatter) writeRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		var cell string
		if i < 2 {
			cell = util.PadRight(value, widths[i])
		} else {
			cell = util.PadLeft(value, widths[i])
		}
		fmt.Fprintf(b, " %s │", cell)
	}
	b.WriteString("\n")
}
