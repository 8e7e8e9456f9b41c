package workforce

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
)

// MapAttendance converts parsed rows into attendance records. Row 0 is the header
// and is always skipped; every other row yields exactly one record.
func MapAttendance(rows [][]string) []workforce.AttendanceRecord {
	if len(rows) < 2 {
		return []workforce.AttendanceRecord{}
	}

	records := make([]workforce.AttendanceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, workforce.AttendanceRecord{
			Date:             cell(row, 0),
			SupervisorName:   cell(row, 1),
			WorkerName:       cell(row, 2),
			TotalManhours:    number(row, 3),
			OTHours:          number(row, 4),
			EndShiftManhours: number(row, 5),
		})
	}
	return records
}

// MapPerformance converts parsed rows into performance records, header skipped
func MapPerformance(rows [][]string) []workforce.PerformanceRecord {
	if len(rows) < 2 {
		return []workforce.PerformanceRecord{}
	}

	records := make([]workforce.PerformanceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, workforce.PerformanceRecord{
			SupName:       cell(row, 0),
			Erection:      number(row, 1),
			Dismantling:   number(row, 2),
			Equivalent:    number(row, 3),
			TotalManhours: number(row, 4),
			Productivity:  number(row, 5),
		})
	}
	return records
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func number(row []string, i int) float64 {
	return ParseNumber(cell(row, i))
}

// leadingNumber matches the longest decimal prefix of a cell, e.g. "12.5h" -> "12.5"
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the decimal numeric prefix of s. Cells with no such prefix,
// including empty ones and Go-only forms such as hex floats, are 0.
func ParseNumber(s string) float64 {
	prefix := leadingNumber.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || !isFinite(v) {
		return 0
	}
	return v
}
