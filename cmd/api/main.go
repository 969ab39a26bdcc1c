package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	pgRepo "pressroom/internal/infra/adapter/persistence/postgres"
	"pressroom/internal/infra/db"
	"pressroom/internal/resilience/circuitbreaker"
	"pressroom/pkg/config"

	artUC "pressroom/internal/usecase/article"

	hhttp "pressroom/internal/handler/http"
	harticle "pressroom/internal/handler/http/article"
	"pressroom/internal/handler/http/requestid"
	"pressroom/internal/observability/logging"
	"pressroom/internal/observability/tracing"
)

func main() {
	logger := logging.NewLogger()
	// respond.SafeError logs through the default logger.
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := config.GetEnvString("VERSION", "dev")
	handler := setupServer(logger, database, version)

	runServer(logger, handler, version)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// setupServer wires the article service, routes, and middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, version string) http.Handler {
	// Query and exec calls go through a circuit breaker so a failing
	// database sheds load fast instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)
	artSvc := artUC.Service{Repo: pgRepo.NewArticleRepo(breaker)}

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, logger)

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	if config.GetEnvBool("TRACING_ENABLED", true) {
		chain = tracing.Middleware(chain)
	}
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
