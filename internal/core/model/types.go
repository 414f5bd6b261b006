package model

import "time"

// TimesheetRow is one data row of a sheet, restricted to the fields the
// pipeline reads. It is built per row by the reader and discarded right after.
type TimesheetRow struct {
	Row        int    `json:"row"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	ClientName string `json:"clientName"`
}

// WorkChunk is the duration of one matched row.
type WorkChunk struct {
	Hours   int       `json:"hours"`
	Minutes int       `json:"minutes"`
	Start   time.Time `json:"start"`
	File    string    `json:"file"`
	Sheet   string    `json:"sheet"`
	Row     int       `json:"row"`
}

// Totals is the normalized sum of a set of work chunks. Minutes is always
// below 60 once produced by the aggregator.
type Totals struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// DateRange admits instants in [Start, End).
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RowError records a row that was skipped because its date or times could
// not be parsed.
type RowError struct {
	File   string `json:"file"`
	Sheet  string `json:"sheet"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Report is the result of a completed run.
type Report struct {
	Client  string      `json:"client"`
	Range   DateRange   `json:"range"`
	Chunks  []WorkChunk `json:"chunks"`
	Totals  Totals      `json:"totals"`
	Files   int         `json:"files"`
	Sheets  int         `json:"sheets"`
	Skipped []RowError  `json:"skipped,omitempty"`
}

// IsEmpty reports whether none of the fields read from the row hold a value.
func (r TimesheetRow) IsEmpty() bool {
	return r.Date == "" && r.StartTime == "" && r.EndTime == "" && r.ClientName == ""
}
