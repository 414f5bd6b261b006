package fixtures

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// Header is the first row written to every generated sheet.
var Header = []string{"Date", "Start", "End", "Task", "Client"}

// Entry is one data row of a generated timesheet.
type Entry struct {
	Date   string
	Start  string
	End    string
	Task   string
	Client string
}

func (e Entry) cells() []string {
	return []string{e.Date, e.Start, e.End, e.Task, e.Client}
}

// Number formats applied to typed cells. They render back as the text the
// default time layout expects.
const (
	DateNumFmt = "dd/mm/yyyy"
	TimeNumFmt = "hh:mm:ss AM/PM"
)

// Layouts used to read Entry values when a sheet is written with typed cells.
const (
	entryDateLayout = "02/01/2006"
	entryTimeLayout = "03:04:05 PM"
)

// SheetData is a named worksheet and its data rows.
type SheetData struct {
	Name    string
	Entries []Entry
	// Typed stores Date as a date serial and Start/End as day fractions, styled
	// with DateNumFmt and TimeNumFmt, the way spreadsheet programs save them.
	// Entry values must then follow 02/01/2006 and 03:04:05 PM.
	Typed bool
}

// TestDataGenerator writes timesheet files into a base directory.
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{baseDir: baseDir}
}

// GenerateWorkbook writes an .xlsx file with the given sheets, in order, and
// returns its path. Cells are stored as text so that the formatted value read
// back is exactly the value written.
func (g *TestDataGenerator) GenerateWorkbook(name string, sheets ...SheetData) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("at least one sheet is required")
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newCellStyles(f)
	if err != nil {
		return "", err
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return "", err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return "", err
		}

		if sheet.Typed {
			if err := writeTypedSheet(f, sheet, styles); err != nil {
				return "", err
			}
			continue
		}

		rows := append([][]string{Header}, entriesToCells(sheet.Entries)...)
		for r, row := range rows {
			for c, value := range row {
				if value == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return "", err
				}
				if err := f.SetCellStr(sheet.Name, cell, value); err != nil {
					return "", err
				}
			}
		}
	}

	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateCSV writes a .csv timesheet with a header row and returns its path.
func (g *TestDataGenerator) GenerateCSV(name string, entries ...Entry) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.WriteAll(append([][]string{Header}, entriesToCells(entries)...)); err != nil {
		return "", err
	}
	return path, nil
}

func entriesToCells(entries []Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.cells())
	}
	return rows
}

type cellStyles struct {
	date int
	time int
}

func newCellStyles(f *excelize.File) (cellStyles, error) {
	dateFmt, timeFmt := DateNumFmt, TimeNumFmt
	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return cellStyles{}, err
	}
	clock, err := f.NewStyle(&excelize.Style{CustomNumFmt: &timeFmt})
	if err != nil {
		return cellStyles{}, err
	}
	return cellStyles{date: date, time: clock}, nil
}

func writeTypedSheet(f *excelize.File, sheet SheetData, styles cellStyles) error {
	if err := f.SetSheetRow(sheet.Name, "A1", &Header); err != nil {
		return err
	}

	for i, e := range sheet.Entries {
		row := i + 2

		day, err := time.Parse(entryDateLayout, e.Date)
		if err != nil {
			return fmt.Errorf("row %d date: %w", row, err)
		}
		if err := setStyledValue(f, sheet.Name, "A", row, day, styles.date); err != nil {
			return err
		}

		for _, c := range []struct {
			col   string
			value string
		}{{"B", e.Start}, {"C", e.End}} {
			clock, err := time.Parse(entryTimeLayout, c.value)
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", row, c.col, err)
			}
			if err := setStyledValue(f, sheet.Name, c.col, row, dayFraction(clock), styles.time); err != nil {
				return err
			}
		}

		for col, value := range map[string]string{"D": e.Task, "E": e.Client} {
			if value == "" {
				continue
			}
			if err := f.SetCellStr(sheet.Name, fmt.Sprintf("%s%d", col, row), value); err != nil {
				return err
			}
		}
	}
	return nil
}

func setStyledValue(f *excelize.File, sheet, col string, row int, value interface{}, style int) error {
	cell := fmt.Sprintf("%s%d", col, row)
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

// dayFraction is the spreadsheet representation of a clock time.
func dayFraction(t time.Time) float64 {
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return float64(seconds) / 86400
}
