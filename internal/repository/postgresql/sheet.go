package postgresql

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/csvparse"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/database"
)

// sheetTable describes where a dataset's rows live. Columns are listed in CSV order.
type sheetTable struct {
	name    string
	columns []string
}

var sheetTables = map[workforce.Dataset]sheetTable{
	workforce.DatasetAttendance: {
		name:    "attendance_sheet",
		columns: []string{"date", "supervisor_name", "worker_name", "total_manhours", "ot_hours", "end_shift_manhours"},
	},
	workforce.DatasetPerformance: {
		name:    "performance_sheet",
		columns: []string{"sup_name", "erection", "dismantling", "equivalent", "total_manhours", "productivity"},
	},
}

type sheetRepositoryImpl struct {
	db *database.DB
}

// NewSheetRepository serves the dataset sheets from PostgreSQL tables, rendered as CSV
func NewSheetRepository(db *database.DB) workforce.SourceRepository {
	return &sheetRepositoryImpl{db: db}
}

// FetchCSV renders the dataset table as CSV text with the dataset's header row
func (r *sheetRepositoryImpl) FetchCSV(ctx context.Context, dataset workforce.Dataset) ([]byte, error) {
	table, ok := sheetTables[dataset]
	if !ok {
		return nil, workforce.ErrUnknownDataset
	}

	q := GetQuerier(ctx, r.db)

	// Cells are read as text so the mapper applies the same coercion as for a spreadsheet
	selects := make([]string, len(table.columns))
	for i, col := range table.columns {
		selects[i] = fmt.Sprintf("COALESCE(%s::text, '')", col)
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY row_no`, strings.Join(selects, ", "), table.name)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query %s: %v", workforce.ErrUpstreamUnavailable, table.name, err)
	}
	defer rows.Close()

	// Rows are written in the loose dialect csvparse reads, one line per table row
	var buf bytes.Buffer
	writeLine(&buf, dataset.Columns())

	record := make([]string, len(table.columns))
	dest := make([]interface{}, len(table.columns))
	for i := range record {
		dest[i] = &record[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table.name, err)
		}
		writeLine(&buf, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table.name, err)
	}

	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, fields []string) {
	buf.WriteString(csvparse.FormatLine(fields))
	buf.WriteByte('\n')
}
