package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/caroogle/bob/internal/api/handlers"
	"github.com/caroogle/bob/internal/api/middleware"
	"github.com/caroogle/bob/internal/engine"
	"github.com/caroogle/bob/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var noScheduler bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "serve the API without running scheduled jobs")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	e := newServer(a)

	var sched *engine.Scheduler
	if !noScheduler {
		s := &a.cfg.Schedule
		sched, err = engine.NewScheduler(a.engine, a.store, engine.Intervals{
			Matching:     s.MatchingInterval,
			Alerts:       s.AlertsInterval,
			Fingerprints: s.FingerprintInterval,
			Stagger:      s.StaggerOffset,
		}, logger.Component(a.log, "scheduler"))
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.RecoverStaleJobRuns(ctx)
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	a.log.Info("starting server", "addr", addr, "dealer", a.engine.Dealer())

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case <-quit:
	case serveErr = <-errCh:
		a.log.Error("server error", "err", serveErr)
	}

	a.log.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.log.Info("server stopped")
	return serveErr
}

// newServer builds the Echo instance with health checks, metrics and the Huma API.
func newServer(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	httpLog := logger.Component(a.log, "http")
	e.Use(
		middleware.Recovery(httpLog),
		middleware.RequestLog(httpLog),
		middleware.Metrics(),
	)

	health := handlers.NewHealthHandler(a.store, a.tables.Version())
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("bob API", Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(a.store))
	handlers.RegisterSalesRoutes(api, handlers.NewSalesHandler(a.store, a.normalizer))
	handlers.RegisterOpportunityRoutes(api, handlers.NewOpportunitiesHandler(a.store))
	handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(a.store))
	handlers.RegisterPreviewRoutes(api, handlers.NewPreviewHandler(a.engine))
	handlers.RegisterLadderRoutes(api, handlers.NewLadderHandler(a.tables.Ladders()))
	handlers.RegisterTriggerRoutes(api, handlers.NewTriggerHandler(a.engine))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(a.store))

	return e
}
