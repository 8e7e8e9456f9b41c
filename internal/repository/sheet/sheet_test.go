package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/attendance", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write([]byte("Date,Supervisor Name\n1-Aug-2025,MAHENDRA KUMAR\n"))
	})
	mux.HandleFunc("/performance", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not published", http.StatusNotFound)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html>sign in</html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSheetRepository_FetchCSV_Success(t *testing.T) {
	srv := newTestServer(t)
	repo := NewSheetRepository(srv.Client(), map[workforce.Dataset]string{
		workforce.DatasetAttendance: srv.URL + "/attendance",
	})

	body, err := repo.FetchCSV(context.Background(), workforce.DatasetAttendance)

	require.NoError(t, err)
	assert.Equal(t, "Date,Supervisor Name\n1-Aug-2025,MAHENDRA KUMAR\n", string(body))
}

func TestSheetRepository_FetchCSV_NonOKStatus(t *testing.T) {
	srv := newTestServer(t)
	repo := NewSheetRepository(srv.Client(), map[workforce.Dataset]string{
		workforce.DatasetPerformance: srv.URL + "/performance",
	})

	_, err := repo.FetchCSV(context.Background(), workforce.DatasetPerformance)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.ErrorIs(t, err, workforce.ErrUpstreamUnavailable)
}

func TestSheetRepository_FetchCSV_HTMLIsRejected(t *testing.T) {
	srv := newTestServer(t)
	repo := NewSheetRepository(srv.Client(), map[workforce.Dataset]string{
		workforce.DatasetAttendance: srv.URL + "/login",
	})

	_, err := repo.FetchCSV(context.Background(), workforce.DatasetAttendance)

	assert.ErrorIs(t, err, ErrUnexpectedContentType)
}

func TestSheetRepository_FetchCSV_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/attendance"
	srv.Close()

	repo := NewSheetRepository(nil, map[workforce.Dataset]string{workforce.DatasetAttendance: url})

	_, err := repo.FetchCSV(context.Background(), workforce.DatasetAttendance)

	assert.ErrorIs(t, err, workforce.ErrUpstreamUnavailable)
}

func TestSheetRepository_FetchCSV_UnknownDataset(t *testing.T) {
	repo := NewSheetRepository(nil, map[workforce.Dataset]string{})

	_, err := repo.FetchCSV(context.Background(), workforce.DatasetPerformance)

	assert.ErrorIs(t, err, workforce.ErrUnknownDataset)
}
