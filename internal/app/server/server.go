package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdash/internal/domain/employees"
	"hrdash/internal/domain/goals"
	"hrdash/internal/domain/insights"
	"hrdash/internal/platform/config"
	"hrdash/internal/platform/db"
	"hrdash/internal/platform/metrics"
	"hrdash/internal/platform/seed"
	"hrdash/internal/platform/sqlite"
	"hrdash/internal/transport/http/api"
	authhandler "hrdash/internal/transport/http/handlers/auth"
	employeeshandler "hrdash/internal/transport/http/handlers/employees"
	goalshandler "hrdash/internal/transport/http/handlers/goals"
	insightshandler "hrdash/internal/transport/http/handlers/insights"
	"hrdash/internal/transport/http/middleware"
)

// Backend bundles the stores of one storage driver.
type Backend struct {
	Employees employees.StoreAPI
	Goals     goals.StoreAPI
	Insights  insights.StoreAPI
	Ping      func(ctx context.Context) error
	Close     func()
}

// OpenBackend connects to the configured driver and ensures the schema exists.
func OpenBackend(ctx context.Context, cfg config.Config) (Backend, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return Backend{}, err
		}
		return Backend{
			Employees: store,
			Goals:     store,
			Insights:  store,
			Ping:      store.Ping,
			Close: func() {
				if err := store.Close(); err != nil {
					slog.Warn("sqlite close failed", "err", err)
				}
			},
		}, nil
	case config.DriverPostgres:
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return Backend{}, err
		}
		if err := db.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return Backend{}, err
		}
		return Backend{
			Employees: employees.NewStore(pool),
			Goals:     goals.NewStore(pool),
			Insights:  insights.NewStore(pool),
			Ping:      pool.Ping,
			Close:     pool.Close,
		}, nil
	default:
		return Backend{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

type App struct {
	Config    config.Config
	Backend   Backend
	Directory *employees.Service
	Goals     *goals.Service
	Insights  *insights.Service
	Metrics   *metrics.Collector
	Router    http.Handler
}

// New wires services and routes over an open backend.
func New(cfg config.Config, backend Backend, logger *slog.Logger) *App {
	app := &App{
		Config:    cfg,
		Backend:   backend,
		Directory: employees.NewService(backend.Employees, employees.FirstNameAuthenticator{}),
		Goals:     goals.NewService(backend.Goals, goals.StatusPolicy{AllowDraftUpdate: cfg.AllowDraftUpdate}),
		Insights:  insights.NewService(backend.Insights),
	}
	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
	}
	app.Router = app.routes(logger)
	return app
}

func (a *App) routes(logger *slog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, a.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(a.Config.CORSAllowedOrigins))
	router.Use(middleware.SecureHeaders(a.Config.IsProduction()))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	router.Use(middleware.Auth(a.Config.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := a.Backend.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Metrics != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, a.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(a.Directory, a.Config.JWTSecret, a.Config.TokenTTL).RegisterRoutes(r)
		employeeshandler.NewHandler(a.Directory).RegisterRoutes(r)
		goalshandler.NewHandler(a.Goals).RegisterRoutes(r)
		insightshandler.NewHandler(a.Insights).RegisterRoutes(r)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.Fail(w, http.StatusNotFound, "not_found", "route not found", middleware.GetRequestID(r.Context()))
	})
	return router
}

// Run loads configuration, opens storage, applies the optional seed and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer backend.Close()

	app := New(cfg, backend, logger)

	if cfg.SeedFile != "" {
		n, err := seed.LoadFile(ctx, app.Directory, cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		logger.Info("seeded employees", "count", n, "file", cfg.SeedFile)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HR dashboard listening", "addr", cfg.Addr, "driver", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("HR dashboard stopped")
	return nil
}
