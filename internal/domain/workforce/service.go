package workforce

import "context"

// Fetcher retrieves typed record sets, substituting the fallback fixture on any failure.
// Implementations never return an error.
type Fetcher interface {
	Attendance(ctx context.Context) AttendanceSet
	Performance(ctx context.Context) PerformanceSet
}

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard fetches both datasets concurrently and returns stats, insights and records
	GetDashboard(ctx context.Context) (*DashboardResponse, error)

	// GetDataset returns the records of a single dataset
	GetDataset(ctx context.Context, dataset Dataset) (*DatasetResponse, error)
}
