package workforce

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	fetcher workforce.Fetcher
	now     func() time.Time
}

func NewDashboardService(fetcher workforce.Fetcher) workforce.DashboardService {
	return &DashboardServiceImpl{
		fetcher: fetcher,
		now:     time.Now,
	}
}

// GetDashboard fetches both datasets in parallel and computes once both have resolved
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*workforce.DashboardResponse, error) {
	loadID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate load id: %w", err)
	}

	var (
		attendance  workforce.AttendanceSet
		performance workforce.PerformanceSet
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		attendance = s.fetcher.Attendance(gCtx)
		return nil
	})

	g.Go(func() error {
		performance = s.fetcher.Performance(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &workforce.DashboardResponse{
		LoadID:      loadID.String(),
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Sources: workforce.DataSources{
			Attendance:  attendance.Origin,
			Performance: performance.Origin,
		},
		AttendanceStats:    AttendanceStatsOf(attendance.Records),
		PerformanceStats:   PerformanceStatsOf(performance.Records),
		Insights:           GenerateInsights(attendance.Records, performance.Records),
		ProductivityChart:  ProductivityChart(performance.Records),
		Workers:            WorkerRoster(attendance.Records),
		AttendanceRecords:  attendance.Records,
		PerformanceRecords: performance.Records,
	}

	slog.Info("Dashboard computed",
		"load_id", resp.LoadID,
		"attendance_source", attendance.Origin,
		"attendance_records", len(attendance.Records),
		"performance_source", performance.Origin,
		"performance_records", len(performance.Records),
		"insights", len(resp.Insights))

	return resp, nil
}

// GetDataset returns the records of a single dataset
func (s *DashboardServiceImpl) GetDataset(ctx context.Context, dataset workforce.Dataset) (*workforce.DatasetResponse, error) {
	switch dataset {
	case workforce.DatasetAttendance:
		set := s.fetcher.Attendance(ctx)
		return &workforce.DatasetResponse{
			Dataset: dataset,
			Origin:  set.Origin,
			Count:   len(set.Records),
			Records: set.Records,
		}, nil
	case workforce.DatasetPerformance:
		set := s.fetcher.Performance(ctx)
		return &workforce.DatasetResponse{
			Dataset: dataset,
			Origin:  set.Origin,
			Count:   len(set.Records),
			Records: set.Records,
		}, nil
	default:
		return nil, workforce.ErrUnknownDataset
	}
}

// ProductivityChart builds one bar per performance record, scaled to the best score
func ProductivityChart(records []workforce.PerformanceRecord) []workforce.ChartPoint {
	var maxValue float64
	for _, r := range records {
		if r.Productivity > maxValue {
			maxValue = r.Productivity
		}
	}

	points := make([]workforce.ChartPoint, 0, len(records))
	for i, r := range records {
		var percent float64
		if maxValue > 0 {
			percent = round2(r.Productivity / maxValue * 100)
		}
		points = append(points, workforce.ChartPoint{
			Name:    r.SupName,
			Value:   r.Productivity,
			Percent: percent,
			Color:   i%5 + 1,
		})
	}
	return points
}

// WorkerRoster groups attendance by worker, in order of first appearance
func WorkerRoster(records []workforce.AttendanceRecord) []workforce.WorkerSummary {
	index := make(map[string]int)
	roster := make([]workforce.WorkerSummary, 0)

	for _, r := range records {
		i, ok := index[r.WorkerName]
		if !ok {
			i = len(roster)
			index[r.WorkerName] = i
			roster = append(roster, workforce.WorkerSummary{
				WorkerName:     r.WorkerName,
				SupervisorName: r.SupervisorName,
			})
		}
		roster[i].DaysPresent++
		roster[i].TotalManhours += r.TotalManhours
		roster[i].TotalOTHours += r.OTHours
	}
	return roster
}
