package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/core/timesheet"
	"github.com/penwyp/go-timesheets/internal/data/parser"
	"github.com/penwyp/go-timesheets/internal/data/scanner"
	"github.com/penwyp/go-timesheets/internal/util"
)

type Config struct {
	Client string
	Files  []string
	Range  model.DateRange
	// TimeLayout parses "<date> <time>" strings; empty means the default.
	TimeLayout string
}

// Analyzer runs the filter and aggregation pipeline over a list of files.
type Analyzer struct {
	config     *Config
	opener     parser.Opener
	calculator *timesheet.DurationCalculator

	// verbose receives sheet titles, per-row durations and skip notices.
	verbose io.Writer
	color   bool
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithOpener replaces the file opener.
func WithOpener(opener parser.Opener) Option {
	return func(a *Analyzer) {
		a.opener = opener
	}
}

// WithVerboseOutput enables verbose lines on w.
func WithVerboseOutput(w io.Writer, color bool) Option {
	return func(a *Analyzer) {
		a.verbose = w
		a.color = color
	}
}

func New(config *Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		config:     config,
		opener:     parser.NewParser(),
		calculator: timesheet.NewDurationCalculator(config.TimeLayout),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run processes every file in order and returns the report. The first file
// that is missing, not a regular file or unreadable ends the run with an
// error; files after it are not looked at.
func (a *Analyzer) Run(ctx context.Context) (*model.Report, error) {
	startTime := time.Now()
	util.LogInfof("Collecting hours for client %q from %d files", a.config.Client, len(a.config.Files))

	report := &model.Report{
		Client: a.config.Client,
		Range:  a.config.Range,
		Chunks: make([]model.WorkChunk, 0),
	}
	stats := NewRowStats()

	for _, file := range a.config.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.processFile(ctx, file, report, stats); err != nil {
			return nil, err
		}
	}

	report.Totals = timesheet.Aggregate(report.Chunks)

	stats.Log()
	util.LogDebug(fmt.Sprintf("Run finished: duration %v, %d files, %d sheets, %d chunks, totals %s",
		time.Since(startTime), report.Files, report.Sheets, len(report.Chunks),
		util.FormatChunk(report.Totals.Hours, report.Totals.Minutes)))

	return report, nil
}

func (a *Analyzer) processFile(ctx context.Context, path string, report *model.Report, stats *RowStats) error {
	if err := scanner.Check(path); err != nil {
		util.LogErrorf("Input file rejected: %v", err)
		return err
	}

	fileStart := time.Now()
	wb, err := a.opener.Open(path)
	if err != nil {
		return err
	}
	// The workbook is released before the next file is opened.
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			util.LogWarnf("Failed to close %s: %v", path, cerr)
		}
	}()

	for i := 0; i < wb.SheetCount(); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		sheet, err := wb.Sheet(i)
		if err != nil {
			return fmt.Errorf("failed to load sheet %d of %s: %w", i, path, err)
		}
		a.processSheet(path, sheet, report, stats)
		report.Sheets++
	}
	report.Files++

	util.LogDebugf("File processed: %s, %d sheets, duration %v", path, wb.SheetCount(), time.Since(fileStart))
	return nil
}

func (a *Analyzer) processSheet(path string, sheet parser.Sheet, report *model.Report, stats *RowStats) {
	a.printVerbose(util.FormatSheetTitle(sheet.Title(), a.color))

	for index := model.FirstDataRow; index <= sheet.LastRow(); index++ {
		row := sheet.Row(index)
		outcome, chunk, err := a.evaluateRow(row)
		stats.record(outcome)

		switch outcome {
		case outcomeMatched:
			chunk.File = path
			chunk.Sheet = sheet.Title()
			report.Chunks = append(report.Chunks, chunk)
			a.printVerbose(util.FormatChunk(chunk.Hours, chunk.Minutes))
		case outcomeUnparsable:
			report.Skipped = append(report.Skipped, model.RowError{
				File:   path,
				Sheet:  sheet.Title(),
				Row:    index,
				Reason: err.Error(),
			})
			util.LogWarn("Skipping row with unparsable date or time",
				util.Field{Key: "file", Value: path},
				util.Field{Key: "sheet", Value: sheet.Title()},
				util.Field{Key: "row", Value: index},
				util.Field{Key: "error", Value: err.Error()})
			a.printVerbose(util.FormatWarning(fmt.Sprintf("Skipped row %d: %v", index, err), a.color))
		}
	}
}

// evaluateRow applies the client filter, the duration calculation and the
// date window, in that order.
func (a *Analyzer) evaluateRow(row model.TimesheetRow) (rowOutcome, model.WorkChunk, error) {
	if row.IsEmpty() {
		return outcomeEmpty, model.WorkChunk{}, nil
	}
	if !timesheet.MatchesClient(row.ClientName, a.config.Client) {
		return outcomeOtherClient, model.WorkChunk{}, nil
	}

	d, err := a.calculator.Compute(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		var parseErr *timesheet.ParseError
		if !errors.As(err, &parseErr) {
			util.LogDebug(fmt.Sprintf("Unexpected duration error on row %d: %v", row.Row, err))
		}
		return outcomeUnparsable, model.WorkChunk{}, err
	}

	if !timesheet.InWindow(d.Start, a.config.Range) {
		return outcomeOutOfWindow, model.WorkChunk{}, nil
	}

	if d.Inverted {
		util.LogWarn("End time is before start time, using the absolute difference",
			util.Field{Key: "row", Value: row.Row},
			util.Field{Key: "date", Value: row.Date},
			util.Field{Key: "start", Value: row.StartTime},
			util.Field{Key: "end", Value: row.EndTime})
	}

	return outcomeMatched, model.WorkChunk{
		Hours:   d.Hours,
		Minutes: d.Minutes,
		Start:   d.Start,
		Row:     row.Row,
	}, nil
}

func (a *Analyzer) printVerbose(line string) {
	if a.verbose == nil {
		return
	}
	fmt.Fprintln(a.verbose, line)
}
