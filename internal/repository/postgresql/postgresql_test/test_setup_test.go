package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/database"
)

// TestDatabaseSetup holds the connection used by repository tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL. ok is false when the variable is unset.
func NewTestDatabase(ctx context.Context) (setup *TestDatabaseSetup, ok bool, err error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, false, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return nil, true, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, true, nil
}

// sheetSchema creates session-local sheet tables that shadow any real ones
// and disappear with the surrounding transaction
var sheetSchema = []string{
	`CREATE TEMP TABLE attendance_sheet (
		row_no SERIAL PRIMARY KEY,
		date TEXT,
		supervisor_name TEXT,
		worker_name TEXT,
		total_manhours NUMERIC,
		ot_hours NUMERIC,
		end_shift_manhours NUMERIC
	) ON COMMIT DROP`,
	`CREATE TEMP TABLE performance_sheet (
		row_no SERIAL PRIMARY KEY,
		sup_name TEXT,
		erection NUMERIC,
		dismantling NUMERIC,
		equivalent NUMERIC,
		total_manhours NUMERIC,
		productivity NUMERIC
	) ON COMMIT DROP`,
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
