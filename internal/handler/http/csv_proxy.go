package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/handler/http/response"
)

type CSVProxyHandler interface {
	// Attendance streams the attendance sheet as CSV
	Attendance(w http.ResponseWriter, r *http.Request)
	// Performance streams the performance sheet as CSV
	Performance(w http.ResponseWriter, r *http.Request)
}

type csvProxyHandlerImpl struct {
	source  workforce.SourceRepository
	timeout time.Duration
}

func NewCSVProxyHandler(source workforce.SourceRepository, timeout time.Duration) CSVProxyHandler {
	return &csvProxyHandlerImpl{source: source, timeout: timeout}
}

// Attendance handles GET /api/csv/attendance
func (h *csvProxyHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, workforce.DatasetAttendance)
}

// Performance handles GET /api/csv/performance
func (h *csvProxyHandlerImpl) Performance(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, workforce.DatasetPerformance)
}

func (h *csvProxyHandlerImpl) serve(w http.ResponseWriter, r *http.Request, dataset workforce.Dataset) {
	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	body, err := h.source.FetchCSV(ctx, dataset)
	if err != nil {
		slog.Error("Error fetching CSV", "dataset", dataset.String(), "error", err)
		response.InternalServerError(w, "Failed to fetch "+dataset.String()+" data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
