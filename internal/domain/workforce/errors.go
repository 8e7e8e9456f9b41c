package workforce

import "errors"

// Workforce domain errors
var (
	// Ingestion errors
	ErrUpstreamUnavailable = errors.New("upstream data source is unavailable")
	ErrEmptyDataset        = errors.New("dataset contains no data rows")
	ErrSchemaMismatch      = errors.New("csv header does not match the expected schema")

	// General errors
	ErrUnknownDataset = errors.New("unknown dataset")
)
