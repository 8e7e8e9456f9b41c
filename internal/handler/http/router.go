package http

import (
	"log/slog"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	allowedOrigins []string,
	dashboardHandler DashboardHandler,
	csvProxyHandler CSVProxyHandler,
	pageHandler PageHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.With(middleware.NoStore).Get("/", pageHandler.Dashboard)

	// Pass-through sheets for browser clients
	r.Route("/api/csv", func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Get("/attendance", csvProxyHandler.Attendance)
		r.Get("/performance", csvProxyHandler.Performance)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.NoStore)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetDashboard)
			r.Get("/export.xlsx", dashboardHandler.ExportXLSX)
			r.With(middleware.RequireDataset).Get("/{dataset}", dashboardHandler.GetDataset)
		})
	})
	return r
}
