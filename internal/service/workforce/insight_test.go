package workforce

import (
	"testing"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(insights []workforce.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, in := range insights {
		out = append(out, in.Title)
	}
	return out
}

func TestGenerateInsights_Fixtures(t *testing.T) {
	insights := GenerateInsights(fixtures.FallbackAttendance(), fixtures.FallbackPerformance())

	// Mean OT is 1.5, below the overtime threshold. Workload is 16/8/8, ratio 2.
	require.Equal(t, []string{
		"High Performers Identified",
		"Balanced Workload",
		"Above Average Efficiency",
	}, titles(insights))

	assert.Equal(t, workforce.SeverityPositive, insights[0].Type)
	assert.Equal(t, "MAHENDRA KUMAR leads with 3.5 productivity score.", insights[0].Description)
	assert.Equal(t, "Team productivity score of 2.8 exceeds benchmarks.", insights[2].Description)
}

func TestGenerateInsights_OvertimeThreshold(t *testing.T) {
	records := []workforce.AttendanceRecord{
		{SupervisorName: "S", WorkerName: "A", TotalManhours: 8, OTHours: 3},
		{SupervisorName: "S", WorkerName: "B", TotalManhours: 8, OTHours: 2},
	}

	insights := GenerateInsights(records, nil)

	require.NotEmpty(t, insights)
	assert.Equal(t, workforce.SeverityWarning, insights[0].Type)
	assert.Equal(t, "High Overtime Detected", insights[0].Title)
	assert.Equal(t, "Average overtime is 2.5 hours. Consider optimizing work schedules.", insights[0].Description)
}

func TestGenerateInsights_OvertimeExactlyTwoDoesNotFire(t *testing.T) {
	records := []workforce.AttendanceRecord{
		{SupervisorName: "S", WorkerName: "A", TotalManhours: 8, OTHours: 2},
	}

	insights := GenerateInsights(records, nil)

	assert.NotContains(t, titles(insights), "High Overtime Detected")
}

func TestGenerateInsights_TopPerformerSortedDescending(t *testing.T) {
	performance := []workforce.PerformanceRecord{
		{SupName: "LOW", Productivity: 3.1},
		{SupName: "HIGH", Productivity: 4},
		{SupName: "TIE", Productivity: 4},
		{SupName: "BELOW", Productivity: 1},
	}

	insights := GenerateInsights(nil, performance)

	require.Len(t, insights, 2)
	assert.Equal(t, "HIGH leads with 4 productivity score.", insights[0].Description)
	assert.Equal(t, "Above Average Efficiency", insights[1].Title)
}

func TestGenerateInsights_UnevenWorkload(t *testing.T) {
	records := []workforce.AttendanceRecord{
		{SupervisorName: "BUSY", WorkerName: "A", TotalManhours: 30},
		{SupervisorName: "IDLE", WorkerName: "B", TotalManhours: 10},
	}

	insights := GenerateInsights(records, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, workforce.SeverityWarning, insights[0].Type)
	assert.Equal(t, "Uneven Workload Distribution", insights[0].Title)
}

func TestGenerateInsights_ZeroWorkloadSupervisorDoesNotCrash(t *testing.T) {
	records := []workforce.AttendanceRecord{
		{SupervisorName: "BUSY", WorkerName: "A", TotalManhours: 8},
		{SupervisorName: "IDLE", WorkerName: "B", TotalManhours: 0},
	}

	insights := GenerateInsights(records, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, "Uneven Workload Distribution", insights[0].Title)
}

func TestGenerateInsights_AllZeroWorkloadIsBalanced(t *testing.T) {
	records := []workforce.AttendanceRecord{
		{SupervisorName: "A", WorkerName: "A"},
		{SupervisorName: "B", WorkerName: "B"},
	}

	insights := GenerateInsights(records, nil)

	require.Len(t, insights, 1)
	assert.Equal(t, "Balanced Workload", insights[0].Title)
}

func TestGenerateInsights_EmptyInputs(t *testing.T) {
	insights := GenerateInsights(nil, nil)

	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestSupervisorWorkload(t *testing.T) {
	workload := SupervisorWorkload(fixtures.FallbackAttendance())

	assert.Equal(t, map[string]float64{
		"MAHENDRA KUMAR": 16,
		"HARKIRAT SINGH": 8,
		"PINTU SAH":      8,
	}, workload)
}
