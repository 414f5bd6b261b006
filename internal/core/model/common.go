package model

// Column letters of the timesheet layout. Only columns A through E are read.
const (
	ColumnDate      = "A"
	ColumnStartTime = "B"
	ColumnEndTime   = "C"
	ColumnClient    = "E"

	FirstColumn = "A"
	LastColumn  = "E"
)

// HeaderRow is never scanned; data starts on the row after it.
const (
	HeaderRow    = 1
	FirstDataRow = HeaderRow + 1
)

// Output formats
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputCSV   = "csv"
	OutputTable = "table"
)
