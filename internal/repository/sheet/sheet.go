package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
)

// maxBodyBytes caps a single sheet download
const maxBodyBytes = 10 << 20

var (
	ErrUnexpectedContentType = errors.New("upstream returned a non-csv document")
	ErrBodyTooLarge          = errors.New("upstream body exceeds size limit")
)

// StatusError is returned when the upstream answers with a non-2xx status
type StatusError struct {
	Dataset    workforce.Dataset
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s sheet responded with status %d", e.Dataset, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return workforce.ErrUpstreamUnavailable
}

type sheetRepositoryImpl struct {
	client *http.Client
	urls   map[workforce.Dataset]string
}

// NewSheetRepository reads published spreadsheet CSV exports over HTTP, one URL per dataset
func NewSheetRepository(client *http.Client, urls map[workforce.Dataset]string) workforce.SourceRepository {
	if client == nil {
		client = http.DefaultClient
	}
	return &sheetRepositoryImpl{client: client, urls: urls}
}

// FetchCSV downloads the dataset's sheet and returns the body verbatim
func (r *sheetRepositoryImpl) FetchCSV(ctx context.Context, dataset workforce.Dataset) ([]byte, error) {
	url, ok := r.urls[dataset]
	if !ok || url == "" {
		return nil, workforce.ErrUnknownDataset
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", workforce.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Dataset: dataset, StatusCode: resp.StatusCode}
	}

	// A sign-in or error page served with 200 is not a sheet
	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil && mediaType == "text/html" {
		return nil, ErrUnexpectedContentType
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s body: %w", dataset, err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	return body, nil
}
