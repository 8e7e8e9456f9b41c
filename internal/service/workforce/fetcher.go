package workforce

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/fixtures"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/csvparse"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/validator"
)

type FetcherImpl struct {
	source       workforce.SourceRepository
	timeout      time.Duration
	strictSchema bool
}

// NewFetcher creates a fetcher reading from source. A zero timeout leaves the
// deadline to the caller's context; strictSchema turns a header mismatch into a fallback.
func NewFetcher(source workforce.SourceRepository, timeout time.Duration, strictSchema bool) workforce.Fetcher {
	return &FetcherImpl{
		source:       source,
		timeout:      timeout,
		strictSchema: strictSchema,
	}
}

// Attendance returns the live attendance records or, on any failure, the whole fallback fixture
func (f *FetcherImpl) Attendance(ctx context.Context) workforce.AttendanceSet {
	rows, err := f.fetchRows(ctx, workforce.DatasetAttendance)
	if err == nil {
		if records := MapAttendance(rows); len(records) > 0 {
			return workforce.AttendanceSet{Records: records, Origin: workforce.OriginLive}
		}
		err = workforce.ErrEmptyDataset
	}

	logFallback(workforce.DatasetAttendance, err)
	return workforce.AttendanceSet{Records: fixtures.FallbackAttendance(), Origin: workforce.OriginFallback}
}

// Performance returns the live performance records or the whole fallback fixture
func (f *FetcherImpl) Performance(ctx context.Context) workforce.PerformanceSet {
	rows, err := f.fetchRows(ctx, workforce.DatasetPerformance)
	if err == nil {
		if records := MapPerformance(rows); len(records) > 0 {
			return workforce.PerformanceSet{Records: records, Origin: workforce.OriginLive}
		}
		err = workforce.ErrEmptyDataset
	}

	logFallback(workforce.DatasetPerformance, err)
	return workforce.PerformanceSet{Records: fixtures.FallbackPerformance(), Origin: workforce.OriginFallback}
}

// fetchRows downloads and parses a dataset, header row included
func (f *FetcherImpl) fetchRows(ctx context.Context, dataset workforce.Dataset) ([][]string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	body, err := f.source.FetchCSV(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s csv: %w", dataset, err)
	}

	rows := csvparse.Parse(string(body))
	if len(rows) < 2 {
		return nil, workforce.ErrEmptyDataset
	}

	if err := validator.ValidateHeader(dataset.Columns(), rows[0]); err != nil {
		if f.strictSchema {
			return nil, fmt.Errorf("%w: %v", workforce.ErrSchemaMismatch, err)
		}
		slog.Warn("CSV header differs from expected columns, mapping by position",
			"dataset", dataset.String(),
			"error", err)
	}

	return rows, nil
}

func logFallback(dataset workforce.Dataset, err error) {
	slog.Warn("Using fallback dataset",
		"dataset", dataset.String(),
		"error", err)
}
