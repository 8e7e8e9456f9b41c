package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/view"
)

type PageHandler interface {
	// Dashboard renders the HTML dashboard
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type pageHandlerImpl struct {
	dashboardService workforce.DashboardService
	renderer         view.Renderer
}

func NewPageHandler(dashboardService workforce.DashboardService, renderer view.Renderer) PageHandler {
	return &pageHandlerImpl{
		dashboardService: dashboardService,
		renderer:         renderer,
	}
}

// Dashboard handles GET /
func (h *pageHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("Failed to load dashboard", "error", err)
		h.writeErrorPage(w, http.StatusInternalServerError, "The dashboard could not be loaded. Please try again.")
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderDashboard(&buf, result); err != nil {
		slog.Error("Failed to render dashboard", "load_id", result.LoadID, "error", err)
		h.writeErrorPage(w, http.StatusInternalServerError, "The dashboard could not be rendered. Please try again.")
		return
	}

	writeHTML(w, http.StatusOK, &buf)
}

// writeErrorPage answers browsers with HTML; plain text if even the error page fails
func (h *pageHandlerImpl) writeErrorPage(w http.ResponseWriter, status int, message string) {
	var buf bytes.Buffer
	if err := h.renderer.RenderError(&buf, message); err != nil {
		slog.Error("Failed to render error page", "error", err)
		http.Error(w, message, status)
		return
	}
	writeHTML(w, status, &buf)
}

func writeHTML(w http.ResponseWriter, status int, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
