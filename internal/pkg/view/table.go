package view

import (
	"strconv"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
)

// DefaultMaxRows is how many records a dashboard table shows
const DefaultMaxRows = 10

// Column renders one table cell from a record
type Column[T any] struct {
	Label  string
	Format func(T) string
}

// Table is a pre-rendered record table ready for the template
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Shown   int
	Total   int
}

// Truncated reports whether the footer should say how many rows are hidden
func (t Table) Truncated() bool {
	return t.Total > t.Shown
}

// BuildTable formats at most maxRows records through the given columns.
// maxRows <= 0 shows every record.
func BuildTable[T any](title string, records []T, columns []Column[T], maxRows int) Table {
	shown := records
	if maxRows > 0 && len(shown) > maxRows {
		shown = shown[:maxRows]
	}

	t := Table{
		Title:   title,
		Headers: make([]string, len(columns)),
		Rows:    make([][]string, 0, len(shown)),
		Shown:   len(shown),
		Total:   len(records),
	}
	for i, c := range columns {
		t.Headers[i] = c.Label
	}
	for _, r := range shown {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = c.Format(r)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// AttendanceColumns is the attendance table layout
var AttendanceColumns = []Column[workforce.AttendanceRecord]{
	{Label: "Date", Format: func(r workforce.AttendanceRecord) string { return r.Date }},
	{Label: "Supervisor", Format: func(r workforce.AttendanceRecord) string { return r.SupervisorName }},
	{Label: "Worker", Format: func(r workforce.AttendanceRecord) string { return r.WorkerName }},
	{Label: "Total Hours", Format: func(r workforce.AttendanceRecord) string { return Hours(r.TotalManhours) }},
	{Label: "OT Hours", Format: func(r workforce.AttendanceRecord) string { return Hours(r.OTHours) }},
	{Label: "End Shift", Format: func(r workforce.AttendanceRecord) string { return Hours(r.EndShiftManhours) }},
}

// PerformanceColumns is the performance table layout
var PerformanceColumns = []Column[workforce.PerformanceRecord]{
	{Label: "Supervisor", Format: func(r workforce.PerformanceRecord) string { return r.SupName }},
	{Label: "Erection", Format: func(r workforce.PerformanceRecord) string { return Decimal(r.Erection, 0) }},
	{Label: "Dismantling", Format: func(r workforce.PerformanceRecord) string { return Decimal(r.Dismantling, 0) }},
	{Label: "Equivalent", Format: func(r workforce.PerformanceRecord) string { return Decimal(r.Equivalent, 0) }},
	{Label: "Total Manhours", Format: func(r workforce.PerformanceRecord) string { return Hours(r.TotalManhours) }},
	{Label: "Productivity", Format: func(r workforce.PerformanceRecord) string { return Decimal(r.Productivity, 2) }},
}

// Hours formats a manhour figure, e.g. 8.5 -> "8.5h"
func Hours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "h"
}

// Decimal formats v with a fixed number of decimals; 0 keeps the shortest form
func Decimal(v float64, places int) string {
	if places <= 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}
