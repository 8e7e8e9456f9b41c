package workforce

// ========== STAT CARDS ==========

// AttendanceStats summarises an attendance record set
type AttendanceStats struct {
	TotalWorkers    int     `json:"total_workers"`
	TotalManhours   float64 `json:"total_manhours"`
	TotalOTHours    float64 `json:"total_ot_hours"`
	AvgProductivity float64 `json:"avg_productivity"` // manhours per distinct worker
}

// PerformanceStats summarises a performance record set
type PerformanceStats struct {
	TotalErection     float64 `json:"total_erection"`
	TotalDismantling  float64 `json:"total_dismantling"`
	AvgProductivity   float64 `json:"avg_productivity"`
	TopPerformer      string  `json:"top_performer"`
	TopPerformerScore float64 `json:"top_performer_score"`
}

// ========== INSIGHTS ==========

// Severity classifies an insight for display
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
	SeverityNeutral  Severity = "neutral"
)

// Insight is a single heuristic observation over the datasets
type Insight struct {
	Type        Severity `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// ========== CHART ==========

// ChartPoint is one bar of the productivity chart
type ChartPoint struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"` // bar width relative to the largest value
	Color   int     `json:"color"`   // palette slot 1..5
}

// ========== WORKER ROSTER ==========

// WorkerSummary counts the attendance entries of a single worker
type WorkerSummary struct {
	WorkerName     string  `json:"worker_name"`
	SupervisorName string  `json:"supervisor_name"`
	DaysPresent    int     `json:"days_present"`
	TotalManhours  float64 `json:"total_manhours"`
	TotalOTHours   float64 `json:"total_ot_hours"`
}

// ========== COMBINED DASHBOARD ==========

// DataSources reports where each dataset of a load came from
type DataSources struct {
	Attendance  Origin `json:"attendance"`
	Performance Origin `json:"performance"`
}

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	LoadID             string              `json:"load_id"`
	GeneratedAt        string              `json:"generated_at"`
	Sources            DataSources         `json:"sources"`
	AttendanceStats    AttendanceStats     `json:"attendance_stats"`
	PerformanceStats   PerformanceStats    `json:"performance_stats"`
	Insights           []Insight           `json:"insights"`
	ProductivityChart  []ChartPoint        `json:"productivity_chart"`
	Workers            []WorkerSummary     `json:"workers"`
	AttendanceRecords  []AttendanceRecord  `json:"attendance_records"`
	PerformanceRecords []PerformanceRecord `json:"performance_records"`
}

// DatasetResponse is the response of the single dataset endpoint
type DatasetResponse struct {
	Dataset Dataset     `json:"dataset"`
	Origin  Origin      `json:"origin"`
	Count   int         `json:"count"`
	Records interface{} `json:"records"`
}
