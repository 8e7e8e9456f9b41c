package workforce

import "context"

// SourceRepository defines the interface for reading raw CSV sheets from the upstream store
type SourceRepository interface {
	// FetchCSV returns the dataset's CSV body verbatim, header row included
	FetchCSV(ctx context.Context, dataset Dataset) ([]byte, error)
}
