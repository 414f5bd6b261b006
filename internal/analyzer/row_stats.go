package analyzer

import (
	"fmt"

	"github.com/penwyp/go-timesheets/internal/util"
)

// rowOutcome says what happened to a scanned row.
type rowOutcome int

const (
	outcomeMatched rowOutcome = iota
	outcomeEmpty
	outcomeOtherClient
	outcomeOutOfWindow
	outcomeUnparsable
)

func (o rowOutcome) String() string {
	switch o {
	case outcomeMatched:
		return "matched"
	case outcomeEmpty:
		return "empty"
	case outcomeOtherClient:
		return "other client"
	case outcomeOutOfWindow:
		return "outside date window"
	case outcomeUnparsable:
		return "unparsable"
	default:
		return "unknown"
	}
}

// RowStats counts row outcomes over a run.
type RowStats struct {
	scanned  int
	outcomes map[rowOutcome]int
}

// NewRowStats creates an empty RowStats.
func NewRowStats() *RowStats {
	return &RowStats{outcomes: make(map[rowOutcome]int)}
}

func (s *RowStats) record(o rowOutcome) {
	s.scanned++
	s.outcomes[o]++
}

// Scanned is the number of data rows looked at.
func (s *RowStats) Scanned() int {
	return s.scanned
}

// Matched is the number of rows that became work chunks.
func (s *RowStats) Matched() int {
	return s.outcomes[outcomeMatched]
}

// Log writes the counters at debug level.
func (s *RowStats) Log() {
	util.LogDebug(fmt.Sprintf("Rows scanned: %d, matched: %d, empty: %d, other client: %d, outside window: %d, unparsable: %d",
		s.scanned,
		s.outcomes[outcomeMatched],
		s.outcomes[outcomeEmpty],
		s.outcomes[outcomeOtherClient],
		s.outcomes[outcomeOutOfWindow],
		s.outcomes[outcomeUnparsable]))
}
