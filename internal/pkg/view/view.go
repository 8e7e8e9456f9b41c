package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders server-side pages
type Renderer interface {
	RenderDashboard(w io.Writer, d *workforce.DashboardResponse) error
	RenderError(w io.Writer, message string) error
}

type rendererImpl struct {
	templates *template.Template
}

// NewRenderer parses the embedded page templates
func NewRenderer() (Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"decimal": Decimal,
		"hours":   Hours,
		"width": func(percent float64) template.CSS {
			return template.CSS(fmt.Sprintf("width: %s%%", Decimal(percent, 2)))
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	return &rendererImpl{templates: tmpl}, nil
}

// StatCard is one of the headline numbers at the top of the dashboard
type StatCard struct {
	Title string
	Value string
	Hint  string
}

type dashboardPage struct {
	Dashboard        *workforce.DashboardResponse
	Cards            []StatCard
	AttendanceTable  Table
	PerformanceTable Table
}

// RenderDashboard writes the full dashboard page
func (r *rendererImpl) RenderDashboard(w io.Writer, d *workforce.DashboardResponse) error {
	page := dashboardPage{
		Dashboard:        d,
		Cards:            StatCards(d),
		AttendanceTable:  BuildTable("Attendance Records", d.AttendanceRecords, AttendanceColumns, DefaultMaxRows),
		PerformanceTable: BuildTable("Supervisor Performance", d.PerformanceRecords, PerformanceColumns, DefaultMaxRows),
	}

	if err := r.templates.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// RenderError writes a standalone error page
func (r *rendererImpl) RenderError(w io.Writer, message string) error {
	data := struct{ Message string }{Message: message}
	if err := r.templates.ExecuteTemplate(w, "error.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// StatCards builds the four headline cards
func StatCards(d *workforce.DashboardResponse) []StatCard {
	top := d.PerformanceStats.TopPerformer
	if top == "" {
		top = "-"
	}

	return []StatCard{
		{
			Title: "Total Workers",
			Value: fmt.Sprintf("%d", d.AttendanceStats.TotalWorkers),
			Hint:  fmt.Sprintf("%s OT hours", Decimal(d.AttendanceStats.TotalOTHours, 0)),
		},
		{
			Title: "Total Hours",
			Value: Hours(d.AttendanceStats.TotalManhours),
			Hint:  fmt.Sprintf("%s per worker", Hours(d.AttendanceStats.AvgProductivity)),
		},
		{
			Title: "Productivity",
			Value: Decimal(d.PerformanceStats.AvgProductivity, 1),
			Hint:  "Average across supervisors",
		},
		{
			Title: "Top Performer",
			Value: top,
			Hint:  fmt.Sprintf("Score %s", Decimal(d.PerformanceStats.TopPerformerScore, 1)),
		},
	}
}
