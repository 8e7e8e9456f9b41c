package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/export"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/validator"
)

// maxRecordLimit caps the limit query parameter
const maxRecordLimit = 1000

type DashboardHandler interface {
	// GetDashboard returns combined dashboard data
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// GetDataset returns the records of one dataset
	GetDataset(w http.ResponseWriter, r *http.Request)
	// ExportXLSX returns the dashboard as a workbook
	ExportXLSX(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService workforce.DashboardService
}

func NewDashboardHandler(dashboardService workforce.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDataset handles GET /api/v1/dashboard/{dataset}?limit=N
func (h *dashboardHandlerImpl) GetDataset(w http.ResponseWriter, r *http.Request) {
	dataset, ok := middleware.DatasetFromContext(r.Context())
	if !ok {
		response.HandleError(w, workforce.ErrUnknownDataset)
		return
	}

	limit, err := validator.ParseLimit("limit", r.URL.Query().Get("limit"), maxRecordLimit, maxRecordLimit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.GetDataset(r.Context(), dataset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result.Records = limitRecords(result.Records, limit)
	response.Success(w, result)
}

// ExportXLSX handles GET /api/v1/dashboard/export.xlsx
func (h *dashboardHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Build in memory so a failed export still gets a JSON error
	var buf bytes.Buffer
	if err := export.WriteDashboardXLSX(&buf, result); err != nil {
		slog.Error("Failed to build dashboard workbook", "load_id", result.LoadID, "error", err)
		response.InternalServerError(w, "Failed to build export")
		return
	}

	filename := fmt.Sprintf("workforce-dashboard-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// limitRecords trims a typed record slice to at most n entries
func limitRecords(records interface{}, n int) interface{} {
	switch rs := records.(type) {
	case []workforce.AttendanceRecord:
		if len(rs) > n {
			return rs[:n]
		}
	case []workforce.PerformanceRecord:
		if len(rs) > n {
			return rs[:n]
		}
	}
	return records
}
