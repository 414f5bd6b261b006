package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-timesheets/internal/core/model"
	"github.com/penwyp/go-timesheets/internal/util"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

type jsonTotals struct {
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	DecimalHours float64 `json:"decimalHours"`
}

type jsonReport struct {
	Client    string            `json:"client"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Files     int               `json:"files"`
	Sheets    int               `json:"sheets"`
	Totals    jsonTotals        `json:"totals"`
	Chunks    []model.WorkChunk `json:"chunks"`
	Skipped   []model.RowError  `json:"skipped"`
}

func (f *JSONFormatter) Format(report *model.Report) error {
	out := jsonReport{
		Client:    report.Client,
		StartDate: formatDate(report.Range),
		EndDate:   inclusiveEnd(report.Range),
		Files:     report.Files,
		Sheets:    report.Sheets,
		Totals: jsonTotals{
			Hours:        report.Totals.Hours,
			Minutes:      report.Totals.Minutes,
			DecimalHours: util.DecimalHours(report.Totals.Hours, report.Totals.Minutes),
		},
		Chunks:  report.Chunks,
		Skipped: report.Skipped,
	}
	if out.Chunks == nil {
		out.Chunks = []model.WorkChunk{}
	}
	if out.Skipped == nil {
		out.Skipped = []model.RowError{}
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.w.Write(data)
	return err
}
