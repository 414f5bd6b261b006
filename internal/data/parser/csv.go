package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// csvWorkbook is a CSV file exposed as a workbook with a single sheet named
// after the file.
type csvWorkbook struct {
	sheet *gridSheet
}

func openCSV(path string, filter *ColumnFilter) (Workbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", path, err)
	}

	cells := make([][]string, len(records))
	for i, record := range records {
		cells[i] = filter.Apply(record)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &csvWorkbook{sheet: newGridSheet(title, cells, filter)}, nil
}

func (w *csvWorkbook) SheetCount() int {
	return 1
}

func (w *csvWorkbook) Sheet(index int) (Sheet, error) {
	if index != 0 {
		return nil, fmt.Errorf("sheet index %d out of range (1 sheet)", index)
	}
	return w.sheet, nil
}

func (w *csvWorkbook) Close() error {
	return nil
}
