package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/inventory-tracker/api/openapi"
	"github.com/donaldgifford/inventory-tracker/internal/api/handlers"
	mw "github.com/donaldgifford/inventory-tracker/internal/api/middleware"
	"github.com/donaldgifford/inventory-tracker/internal/config"
	"github.com/donaldgifford/inventory-tracker/internal/engine"
	"github.com/donaldgifford/inventory-tracker/internal/telemetry"
	"github.com/donaldgifford/inventory-tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version, log)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Warn("flushing telemetry", "error", err)
		}
	}()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	sched, err := a.newScheduler()
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.RecoverStaleJobRuns(ctx)
	if err := a.engine.SyncStoreMetrics(ctx); err != nil {
		log.Warn("initial store metrics sync failed", "error", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Use(
		mw.RequestLog(logger.Component(log, "http")),
		mw.Metrics(),
		mw.Recovery(log),
	)

	health := handlers.NewHealthHandler(a.store)
	if a.lockPing != nil {
		health.WithDependency("lock", a.lockPing)
	}
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := newAPI(e)
	registerRoutes(api, a, sched)
	openapi.RegisterRoutes(e)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "check_interval", cfg.Schedule.CheckInterval)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sched.Start()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		log.Error("server error", "error", err)
	}

	log.Info("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Let a running check batch finish before closing the pool under it.
	select {
	case <-sched.Stop().Done():
	case <-sctx.Done():
		log.Warn("scheduler did not stop in time")
	}

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newAPI(e *echo.Echo) huma.API {
	return humaecho.New(e, huma.DefaultConfig("Inventory Tracker API", Version))
}

func registerRoutes(api huma.API, a *app, sched *engine.Scheduler) {
	handlers.RegisterInventoryRoutes(api, handlers.NewInventoryHandler(a.engine, a.store))
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(a.store))
	handlers.RegisterStoreRoutes(api, handlers.NewStoresHandler(a.store))
	handlers.RegisterRescoreRoutes(api, handlers.NewRescoreHandler(a.engine))
	handlers.RegisterTriggerRoutes(api, handlers.NewRunCheckHandler(sched))
	jobs := handlers.NewJobsHandler(a.store)
	if sched != nil {
		jobs.WithNextRuns(sched.NextRuns)
	}
	handlers.RegisterJobRoutes(api, jobs)
}
