package workforce

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
)

// Insight thresholds
const (
	overtimeWarnHours   = 2.0
	topPerformerScore   = 3.0
	workloadImbalance   = 2.0
	efficiencyBenchmark = 2.5
)

// GenerateInsights evaluates the heuristic rules in a fixed order:
// overtime, top performers, workload balance, efficiency.
func GenerateInsights(attendance []workforce.AttendanceRecord, performance []workforce.PerformanceRecord) []workforce.Insight {
	insights := make([]workforce.Insight, 0, 4)

	if in, ok := overtimeInsight(attendance); ok {
		insights = append(insights, in)
	}
	if in, ok := topPerformerInsight(performance); ok {
		insights = append(insights, in)
	}
	if in, ok := workloadInsight(attendance); ok {
		insights = append(insights, in)
	}
	if in, ok := efficiencyInsight(performance); ok {
		insights = append(insights, in)
	}

	return insights
}

func overtimeInsight(records []workforce.AttendanceRecord) (workforce.Insight, bool) {
	if len(records) == 0 {
		return workforce.Insight{}, false
	}
	var total float64
	for _, r := range records {
		total += r.OTHours
	}
	avg := total / float64(len(records))
	if avg <= overtimeWarnHours {
		return workforce.Insight{}, false
	}
	return workforce.Insight{
		Type:        workforce.SeverityWarning,
		Title:       "High Overtime Detected",
		Description: fmt.Sprintf("Average overtime is %.1f hours. Consider optimizing work schedules.", avg),
	}, true
}

func topPerformerInsight(records []workforce.PerformanceRecord) (workforce.Insight, bool) {
	var top []workforce.PerformanceRecord
	for _, r := range records {
		if r.Productivity > topPerformerScore {
			top = append(top, r)
		}
	}
	if len(top) == 0 {
		return workforce.Insight{}, false
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Productivity > top[j].Productivity
	})
	return workforce.Insight{
		Type:        workforce.SeverityPositive,
		Title:       "High Performers Identified",
		Description: fmt.Sprintf("%s leads with %s productivity score.", top[0].SupName, formatScore(top[0].Productivity)),
	}, true
}

func workloadInsight(records []workforce.AttendanceRecord) (workforce.Insight, bool) {
	workload := SupervisorWorkload(records)
	if len(workload) == 0 {
		return workforce.Insight{}, false
	}

	maxLoad, minLoad := math.Inf(-1), math.Inf(1)
	for _, hours := range workload {
		maxLoad = math.Max(maxLoad, hours)
		minLoad = math.Min(minLoad, hours)
	}

	var uneven bool
	switch {
	case maxLoad <= 0:
		// nobody logged hours, nothing to compare
		uneven = false
	case minLoad <= 0:
		uneven = true
	default:
		uneven = maxLoad/minLoad > workloadImbalance
	}

	if uneven {
		return workforce.Insight{
			Type:        workforce.SeverityWarning,
			Title:       "Uneven Workload Distribution",
			Description: "Significant workload imbalance detected between supervisors.",
		}, true
	}
	return workforce.Insight{
		Type:        workforce.SeverityPositive,
		Title:       "Balanced Workload",
		Description: "Workload is well-distributed across supervisors.",
	}, true
}

func efficiencyInsight(records []workforce.PerformanceRecord) (workforce.Insight, bool) {
	if len(records) == 0 {
		return workforce.Insight{}, false
	}
	var total float64
	for _, r := range records {
		total += r.Productivity
	}
	avg := total / float64(len(records))
	if avg <= efficiencyBenchmark {
		return workforce.Insight{}, false
	}
	return workforce.Insight{
		Type:        workforce.SeverityPositive,
		Title:       "Above Average Efficiency",
		Description: fmt.Sprintf("Team productivity score of %.1f exceeds benchmarks.", avg),
	}, true
}

// SupervisorWorkload sums total manhours per supervisor
func SupervisorWorkload(records []workforce.AttendanceRecord) map[string]float64 {
	workload := make(map[string]float64)
	for _, r := range records {
		workload[r.SupervisorName] += r.TotalManhours
	}
	return workload
}

// formatScore prints a score the shortest way, "3.5" or "4"
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
