package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ColumnFilter restricts reading to an inclusive span of columns.
type ColumnFilter struct {
	first int
	last  int
}

// NewColumnFilter creates a filter for the columns first..last, given as
// letters such as "A" and "E".
func NewColumnFilter(first, last string) (*ColumnFilter, error) {
	f, err := excelize.ColumnNameToNumber(first)
	if err != nil {
		return nil, fmt.Errorf("invalid first column %q: %w", first, err)
	}
	l, err := excelize.ColumnNameToNumber(last)
	if err != nil {
		return nil, fmt.Errorf("invalid last column %q: %w", last, err)
	}
	if f > l {
		return nil, fmt.Errorf("column span %s:%s is reversed", first, last)
	}
	return &ColumnFilter{first: f, last: l}, nil
}

// Width is the number of columns kept.
func (c *ColumnFilter) Width() int {
	return c.last - c.first + 1
}

// Contains reports whether the 1-based column number is kept.
func (c *ColumnFilter) Contains(column int) bool {
	return column >= c.first && column <= c.last
}

// Apply cuts a full row of cells (cells[0] being column A) down to the span.
func (c *ColumnFilter) Apply(cells []string) []string {
	out := make([]string, c.Width())
	for i := range out {
		src := c.first - 1 + i
		if src < len(cells) {
			out[i] = cells[src]
		}
	}
	return out
}

// Cell returns the value of the named column from a row already cut down by
// Apply. Columns outside the span read as empty.
func (c *ColumnFilter) Cell(cells []string, column string) string {
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil || !c.Contains(n) {
		return ""
	}
	idx := n - c.first
	if idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// empty reports whether every cell in the slice is blank.
func empty(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}
