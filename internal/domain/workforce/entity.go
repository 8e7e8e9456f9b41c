package workforce

// Dataset identifies one of the upstream CSV sheets
type Dataset string

const (
	DatasetAttendance  Dataset = "attendance"
	DatasetPerformance Dataset = "performance"
)

// Datasets lists every dataset served by the dashboard, in fetch order
var Datasets = []Dataset{DatasetAttendance, DatasetPerformance}

// ParseDataset resolves a path or query value into a Dataset
func ParseDataset(s string) (Dataset, error) {
	for _, d := range Datasets {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrUnknownDataset
}

// Columns returns the positional header layout of the dataset's CSV
func (d Dataset) Columns() []string {
	switch d {
	case DatasetAttendance:
		return []string{"Date", "Supervisor Name", "Worker Name", "Total Manhours", "OT Hours", "End Shift Manhours"}
	case DatasetPerformance:
		return []string{"Sup Name", "Erection", "Dismantling", "Equivalent", "Total Manhours", "Productivity"}
	}
	return nil
}

func (d Dataset) String() string {
	return string(d)
}

// AttendanceRecord is one worker's hours on one date
type AttendanceRecord struct {
	Date             string  `json:"date"` // free text, e.g. "1-Aug-2025"
	SupervisorName   string  `json:"supervisorName"`
	WorkerName       string  `json:"workerName"`
	TotalManhours    float64 `json:"totalManhours"`
	OTHours          float64 `json:"otHours"`
	EndShiftManhours float64 `json:"endShiftManhours"`
}

// PerformanceRecord is one supervisor's work quantities for a reporting period
type PerformanceRecord struct {
	SupName       string  `json:"supName"`
	Erection      float64 `json:"erection"`
	Dismantling   float64 `json:"dismantling"`
	Equivalent    float64 `json:"equivalent"`
	TotalManhours float64 `json:"totalManhours"`
	Productivity  float64 `json:"productivity"`
}

// Origin tells whether a record set came from upstream or from the fixture
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// AttendanceSet is the result of an attendance fetch
type AttendanceSet struct {
	Records []AttendanceRecord
	Origin  Origin
}

// PerformanceSet is the result of a performance fetch
type PerformanceSet struct {
	Records []PerformanceRecord
	Origin  Origin
}
