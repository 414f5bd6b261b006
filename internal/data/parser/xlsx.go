package parser

import (
	"fmt"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/util"
	"github.com/xuri/excelize/v2"
)

type xlsxWorkbook struct {
	file   *excelize.File
	names  []string
	filter *ColumnFilter
}

func openXLSX(path string, filter *ColumnFilter) (Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to open workbook: %s - %v", path, err))
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &xlsxWorkbook{
		file:   f,
		names:  f.GetSheetList(),
		filter: filter,
	}, nil
}

func (w *xlsxWorkbook) SheetCount() int {
	return len(w.names)
}

func (w *xlsxWorkbook) Sheet(index int) (Sheet, error) {
	if index < 0 || index >= len(w.names) {
		return nil, fmt.Errorf("sheet index %d out of range (%d sheets)", index, len(w.names))
	}
	name := w.names[index]

	// GetRows returns formatted cell values, with trailing empty cells and
	// rows trimmed.
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = w.filter.Apply(row)
	}
	return newGridSheet(name, cells, w.filter), nil
}

func (w *xlsxWorkbook) Close() error {
	return w.file.Close()
}

// gridSheet serves rows from an in-memory grid already cut to the filter.
type gridSheet struct {
	title   string
	cells   [][]string
	lastRow int
	filter  *ColumnFilter
}

func newGridSheet(title string, cells [][]string, filter *ColumnFilter) *gridSheet {
	lastRow := len(cells)
	for lastRow > 0 && empty(cells[lastRow-1]) {
		lastRow--
	}
	return &gridSheet{
		title:   title,
		cells:   cells,
		lastRow: lastRow,
		filter:  filter,
	}
}

func (s *gridSheet) Title() string {
	return s.title
}

func (s *gridSheet) LastRow() int {
	return s.lastRow
}

func (s *gridSheet) Row(index int) model.TimesheetRow {
	if index < 1 || index > len(s.cells) {
		return model.TimesheetRow{Row: index}
	}
	return rowFromCells(index, s.cells[index-1], s.filter)
}
