package fixtures

import "github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"

// ==========================================
// FALLBACK ATTENDANCE
// ==========================================

var fallbackAttendance = [...]workforce.AttendanceRecord{
	{Date: "1-Aug-2025", SupervisorName: "MAHENDRA KUMAR", WorkerName: "AMAN KUMAR", TotalManhours: 8, OTHours: 4, EndShiftManhours: 12},
	{Date: "1-Aug-2025", SupervisorName: "MAHENDRA KUMAR", WorkerName: "ATUL MAHADEO", TotalManhours: 8, OTHours: 4, EndShiftManhours: 12},
	{Date: "1-Aug-2025", SupervisorName: "HARKIRAT SINGH", WorkerName: "DAULAT YADAV", TotalManhours: 8, OTHours: 0, EndShiftManhours: 8},
	{Date: "2-Aug-2025", SupervisorName: "PINTU SAH", WorkerName: "RAJESH KUMAR", TotalManhours: 8, OTHours: 2, EndShiftManhours: 10},
}

// FallbackAttendance returns a fresh copy of the attendance fixture shown when
// the live sheet cannot be used
func FallbackAttendance() []workforce.AttendanceRecord {
	records := make([]workforce.AttendanceRecord, len(fallbackAttendance))
	copy(records, fallbackAttendance[:])
	return records
}

// ==========================================
// FALLBACK PERFORMANCE
// ==========================================

var fallbackPerformance = [...]workforce.PerformanceRecord{
	{SupName: "MAHENDRA KUMAR", Erection: 2846.55, Dismantling: 1979.5, Equivalent: 3836.3, TotalManhours: 1100, Productivity: 3.5},
	{SupName: "PINTU SAH", Erection: 718, Dismantling: 583.75, Equivalent: 1009.9, TotalManhours: 430, Productivity: 2.3},
	{SupName: "SUNIL CHAUHAN", Erection: 807.375, Dismantling: 915.375, Equivalent: 1265.1, TotalManhours: 369, Productivity: 3.4},
	{SupName: "HARKIRAT SINGH", Erection: 1418.5, Dismantling: 1218.25, Equivalent: 2027.6, TotalManhours: 967, Productivity: 2.1},
}

// FallbackPerformance returns a fresh copy of the performance fixture
func FallbackPerformance() []workforce.PerformanceRecord {
	records := make([]workforce.PerformanceRecord, len(fallbackPerformance))
	copy(records, fallbackPerformance[:])
	return records
}
