package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the dashboard workbook
const (
	SheetSummary     = "Summary"
	SheetInsights    = "Insights"
	SheetAttendance  = "Attendance"
	SheetPerformance = "Performance"
)

// WriteDashboardXLSX writes the dashboard as a workbook with one sheet per section
func WriteDashboardXLSX(w io.Writer, d *workforce.DashboardResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}
	for _, name := range []string{SheetInsights, SheetAttendance, SheetPerformance} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create %s sheet: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	summary := [][]interface{}{
		{"Metric", "Value"},
		{"Load ID", d.LoadID},
		{"Generated At", d.GeneratedAt},
		{"Attendance Source", string(d.Sources.Attendance)},
		{"Performance Source", string(d.Sources.Performance)},
		{"Total Workers", d.AttendanceStats.TotalWorkers},
		{"Total Manhours", d.AttendanceStats.TotalManhours},
		{"Total OT Hours", d.AttendanceStats.TotalOTHours},
		{"Manhours per Worker", d.AttendanceStats.AvgProductivity},
		{"Total Erection", d.PerformanceStats.TotalErection},
		{"Total Dismantling", d.PerformanceStats.TotalDismantling},
		{"Average Productivity", d.PerformanceStats.AvgProductivity},
		{"Top Performer", d.PerformanceStats.TopPerformer},
		{"Top Performer Score", d.PerformanceStats.TopPerformerScore},
	}
	if err := writeRows(f, SheetSummary, summary, headerStyle); err != nil {
		return err
	}

	insights := [][]interface{}{{"Type", "Title", "Description"}}
	for _, in := range d.Insights {
		insights = append(insights, []interface{}{string(in.Type), in.Title, in.Description})
	}
	if err := writeRows(f, SheetInsights, insights, headerStyle); err != nil {
		return err
	}

	attendance := [][]interface{}{toRow(workforce.DatasetAttendance.Columns())}
	for _, r := range d.AttendanceRecords {
		attendance = append(attendance, []interface{}{
			r.Date, r.SupervisorName, r.WorkerName, r.TotalManhours, r.OTHours, r.EndShiftManhours,
		})
	}
	if err := writeRows(f, SheetAttendance, attendance, headerStyle); err != nil {
		return err
	}

	performance := [][]interface{}{toRow(workforce.DatasetPerformance.Columns())}
	for _, r := range d.PerformanceRecords {
		performance = append(performance, []interface{}{
			r.SupName, r.Erection, r.Dismantling, r.Equivalent, r.TotalManhours, r.Productivity,
		})
	}
	if err := writeRows(f, SheetPerformance, performance, headerStyle); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", lastCol, 20)
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
