package workforce

import (
	"math"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/fixtures"
	"github.com/shopspring/decimal"
)

// AttendanceStatsOf computes the attendance stat cards. An empty record set
// reports the fallback fixture's manhours per worker instead of dividing by zero.
func AttendanceStatsOf(records []workforce.AttendanceRecord) workforce.AttendanceStats {
	workers := make(map[string]struct{}, len(records))
	manhours := decimal.Zero
	ot := decimal.Zero
	for _, r := range records {
		workers[r.WorkerName] = struct{}{}
		manhours = manhours.Add(toDecimal(r.TotalManhours))
		ot = ot.Add(toDecimal(r.OTHours))
	}

	stats := workforce.AttendanceStats{
		TotalWorkers:  len(workers),
		TotalManhours: manhours.InexactFloat64(),
		TotalOTHours:  ot.InexactFloat64(),
	}
	if stats.TotalWorkers == 0 {
		stats.AvgProductivity = fallbackAttendanceStats().AvgProductivity
		return stats
	}
	stats.AvgProductivity = manhours.Div(decimal.NewFromInt(int64(stats.TotalWorkers))).Round(2).InexactFloat64()
	return stats
}

// PerformanceStatsOf computes the performance stat cards. The top performer is
// the first record with the strictly greatest productivity.
func PerformanceStatsOf(records []workforce.PerformanceRecord) workforce.PerformanceStats {
	if len(records) == 0 {
		return workforce.PerformanceStats{
			AvgProductivity: fallbackPerformanceStats().AvgProductivity,
		}
	}

	erection := decimal.Zero
	dismantling := decimal.Zero
	productivity := decimal.Zero
	top := records[0]
	for _, r := range records {
		erection = erection.Add(toDecimal(r.Erection))
		dismantling = dismantling.Add(toDecimal(r.Dismantling))
		productivity = productivity.Add(toDecimal(r.Productivity))
		if r.Productivity > top.Productivity {
			top = r
		}
	}

	mean := productivity.Div(decimal.NewFromInt(int64(len(records))))
	return workforce.PerformanceStats{
		TotalErection:     erection.Round(2).InexactFloat64(),
		TotalDismantling:  dismantling.Round(2).InexactFloat64(),
		AvgProductivity:   mean.Round(2).InexactFloat64(),
		TopPerformer:      top.SupName,
		TopPerformerScore: top.Productivity,
	}
}

func fallbackAttendanceStats() workforce.AttendanceStats {
	return AttendanceStatsOf(fixtures.FallbackAttendance())
}

func fallbackPerformanceStats() workforce.PerformanceStats {
	return PerformanceStatsOf(fixtures.FallbackPerformance())
}

// round2 rounds half away from zero to two decimals; non-finite values become 0
func round2(v float64) float64 {
	return toDecimal(v).Round(2).InexactFloat64()
}

func toDecimal(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
