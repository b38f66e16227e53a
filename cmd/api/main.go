// Package main is the entry point for the toll plaza API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/toll-plaza/internal/config"
	"github.com/pkordes/toll-plaza/internal/fare"
	"github.com/pkordes/toll-plaza/internal/handler"
	"github.com/pkordes/toll-plaza/internal/handler/gen"
	"github.com/pkordes/toll-plaza/internal/metrics"
	"github.com/pkordes/toll-plaza/internal/middleware"
	"github.com/pkordes/toll-plaza/internal/publisher"
	"github.com/pkordes/toll-plaza/internal/repo"
	"github.com/pkordes/toll-plaza/internal/service"
	"github.com/pkordes/toll-plaza/migrations"
	"github.com/pkordes/toll-plaza/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Default text logger to stderr; the JSON logger needs LOG_LEVEL.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		sqlDB := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(context.Background(), sqlDB)
		_ = sqlDB.Close()
		if err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "count", applied)
	}

	// --- Domain -----------------------------------------------------------
	calc := fare.NewCalculator(cfg.Location)
	trips := repo.NewTripRepo(pool)
	tx := repo.NewTransactor(pool)
	collector := metrics.NewCollector()

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithObserver(collector),
	}
	if cfg.NATSURL != "" {
		pub, err := publisher.NewNATSPublisher(cfg.NATSURL, logger)
		if err != nil {
			slog.Error("failed to connect to nats", "url", cfg.NATSURL, "error", err)
			os.Exit(1)
		}
		defer pub.Close()
		opts = append(opts, service.WithPublisher(pub))
		slog.Info("publishing closed trips", "url", cfg.NATSURL, "subject", publisher.SubjectPrefix+".>")
	}

	tolls := service.NewTollService(trips, tx, calc, opts...)
	exports := service.NewExportService(trips, calc)

	// --- Router -----------------------------------------------------------
	// Order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts the StrictServerInterface
	// implementation to the ServerInterface chi expects, with our error bodies.
	server := handler.NewServer(tolls, exports, cfg.Location)
	strict := gen.NewStrictHandlerWithOptions(server,
		[]gen.StrictMiddlewareFunc{collector.StrictMiddleware()},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  handler.RequestErrorHandler,
			ResponseErrorHandlerFunc: handler.ResponseErrorHandler(logger),
		},
	)
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []gen.MiddlewareFunc{handler.ValidateJSONBody},
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "timezone", cfg.Location.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
