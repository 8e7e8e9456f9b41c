package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/config"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	appHTTP "github.com/cmlabs-hris/workforce-analytics-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/logging"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/pkg/view"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/repository/sheet"
	workforceService "github.com/cmlabs-hris/workforce-analytics-go/internal/service/workforce"
)

const (
	appName    = "workforce-analytics"
	appVersion = "v1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Options{
		App:     appName,
		Version: appVersion,
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
	})
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source workforce.SourceRepository
	switch cfg.Upstream.Type {
	case config.UpstreamSheet:
		client := &http.Client{Timeout: cfg.Upstream.Timeout}
		source = sheet.NewSheetRepository(client, map[workforce.Dataset]string{
			workforce.DatasetAttendance:  cfg.Upstream.AttendanceURL,
			workforce.DatasetPerformance: cfg.Upstream.PerformanceURL,
		})
	case config.UpstreamPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			slog.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		source = postgresql.NewSheetRepository(db)
	default:
		slog.Error("Unsupported upstream type", "type", cfg.Upstream.Type)
		os.Exit(1)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("Failed to initialize page renderer", "error", err)
		os.Exit(1)
	}

	fetcher := workforceService.NewFetcher(source, cfg.Upstream.Timeout, cfg.Upstream.StrictSchema)
	dashboardSvc := workforceService.NewDashboardService(fetcher)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	csvProxyHandler := appHTTP.NewCSVProxyHandler(source, cfg.Upstream.Timeout)
	pageHandler := appHTTP.NewPageHandler(dashboardSvc, renderer)

	router := appHTTP.NewRouter(
		logger,
		cfg.App.CORSAllowedOrigins,
		dashboardHandler,
		csvProxyHandler,
		pageHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running", "addr", server.Addr, "upstream", cfg.Upstream.Type)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
