package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/util"
)

// ErrUnsupportedFormat is returned for files whose extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported timesheet format")

// Sheet gives typed access to the data rows of one worksheet.
type Sheet interface {
	// Title is the worksheet name.
	Title() string
	// LastRow is the 1-based index of the last populated row, 0 when empty.
	LastRow() int
	// Row returns the fields of the 1-based row index. Missing cells are empty.
	Row(index int) model.TimesheetRow
}

// Workbook is an opened timesheet file.
type Workbook interface {
	SheetCount() int
	// Sheet loads the worksheet at the 0-based index.
	Sheet(index int) (Sheet, error)
	Close() error
}

// Opener opens timesheet files.
type Opener interface {
	Open(path string) (Workbook, error)
}

// Parser opens spreadsheet and CSV timesheets, reading only the columns of
// its filter.
type Parser struct {
	filter *ColumnFilter
}

// NewParser creates a Parser reading columns A through E.
func NewParser() *Parser {
	filter, _ := NewColumnFilter(model.FirstColumn, model.LastColumn)
	return &Parser{filter: filter}
}

// Open picks a reader by file extension and opens the file.
func (p *Parser) Open(path string) (Workbook, error) {
	ext := strings.ToLower(filepath.Ext(path))
	util.LogDebug(fmt.Sprintf("Start parsing file: %s (%s)", path, ext))

	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return openXLSX(path, p.filter)
	case ".csv":
		return openCSV(path, p.filter)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// rowFromCells maps the cells of one row onto a TimesheetRow. cells[0] is the
// first column of the filter.
func rowFromCells(index int, cells []string, filter *ColumnFilter) model.TimesheetRow {
	return model.TimesheetRow{
		Row:        index,
		Date:       filter.Cell(cells, model.ColumnDate),
		StartTime:  filter.Cell(cells, model.ColumnStartTime),
		EndTime:    filter.Cell(cells, model.ColumnEndTime),
		ClientName: filter.Cell(cells, model.ColumnClient),
	}
}
