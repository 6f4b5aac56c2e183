package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/mercado-search/api/openapi"
	"github.com/donaldgifford/mercado-search/internal/api/handlers"
	"github.com/donaldgifford/mercado-search/internal/api/middleware"
	"github.com/donaldgifford/mercado-search/internal/engine"
	"github.com/donaldgifford/mercado-search/internal/meli"
	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/internal/store"
	"github.com/donaldgifford/mercado-search/internal/telemetry"
	"github.com/donaldgifford/mercado-search/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and favorites refresher",
		Long: "Serve the catalog and favorites HTTP API. Favorites are enabled when\n" +
			"database.host is configured; the refresher then re-fetches them every\n" +
			"favorites.refresh_interval unless favorites.refresh_disabled is set.",
		Example: `  mercado-search serve --config config.yaml`,
		RunE:    runServe,
	}
}

// serverDeps are the collaborators mounted on the HTTP server. Store and
// Refresher are nil when favorites are disabled.
type serverDeps struct {
	Log       *slog.Logger
	Repo      repository.Repository
	SiteID    string
	Limiter   *meli.RateLimiter
	Store     store.Store
	Refresher handlers.Refresher
}

// newServer builds the echo instance with middleware, probes, metrics and
// the huma API.
func newServer(d serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.Log))
	e.Use(middleware.RequestLog(d.Log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(d.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	cfg := huma.DefaultConfig("mercado-search API", Version)
	cfg.DocsPath = ""
	api := humaecho.New(e, cfg)
	openapi.RegisterRoutes(e, cfg.OpenAPIPath+".json")

	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(d.Repo, d.SiteID, d.Log))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(d.Limiter))
	if d.Store != nil {
		handlers.RegisterFavoriteRoutes(api, handlers.NewFavoritesHandler(d.Store, d.Repo, d.Refresher))
	}

	return e
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := cmd.Context()

	shutdownTracing, err := telemetry.SetupTracing(ctx, &cfg.Tracing, Version)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		tctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(tctx); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	rl := newRateLimiter(&cfg.Meli)
	repo := newRepository(&cfg.Meli, rl, log)

	deps := serverDeps{
		Log:     log,
		Repo:    repo,
		SiteID:  cfg.Meli.SiteID,
		Limiter: rl,
	}

	if cfg.Database.Enabled() {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pg.Close()

		applied, err := pg.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("database ready", "host", cfg.Database.Host, "migrations_applied", len(applied))

		eng := engine.NewEngine(pg, repo,
			engine.WithLogger(logger.Component(log, "refresher")),
			engine.WithNotifier(newNotifier(&cfg.Notify, log)),
			engine.WithDropsOnly(cfg.Notify.DropsOnly),
		)
		deps.Store = pg
		deps.Refresher = eng

		if !cfg.Favorites.RefreshDisabled {
			sched, err := engine.NewScheduler(eng, cfg.Favorites.RefreshInterval, logger.Component(log, "scheduler"))
			if err != nil {
				return fmt.Errorf("creating scheduler: %w", err)
			}
			sched.Start()
			defer func() { <-sched.Stop().Done() }()
		}
	} else {
		log.Info("database not configured, favorites disabled")
	}

	e := newServer(deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "site", cfg.Meli.SiteID)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
