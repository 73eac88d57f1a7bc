package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kitaplik/kitaplik/internal/config"
	"github.com/kitaplik/kitaplik/internal/db"
	logpkg "github.com/kitaplik/kitaplik/internal/logger"
	"github.com/kitaplik/kitaplik/internal/metrics"
	"github.com/kitaplik/kitaplik/internal/repository/catalog"
	chiTransport "github.com/kitaplik/kitaplik/internal/transport/chi"
	authoruc "github.com/kitaplik/kitaplik/internal/usecase/author"
	bookuc "github.com/kitaplik/kitaplik/internal/usecase/book"
	"github.com/kitaplik/kitaplik/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting kitaplik API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("engine_addrs", cfg.Engine.Addresses),
	)

	client, err := db.NewClient(db.Config{
		Addresses: cfg.Engine.Addresses,
		Username:  cfg.Engine.Username,
		Password:  cfg.Engine.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create engine client", zap.Error(err))
	}

	// Wait for the engine to be ready
	ctx := context.Background()
	if err := client.WaitForReady(ctx, time.Duration(cfg.Engine.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Engine not ready", zap.Error(err))
	}
	logger.Info("Connected to engine")

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	// Create repositories
	authorRepo := catalog.NewAuthorRepo(client, cfg.Indices.Authors)
	bookRepo := catalog.NewBookRepo(client, cfg.Indices.Books)

	// Create use case services
	authorSvc := authoruc.New(authorRepo, cfg.Search.DefaultPageSize)
	bookSvc := bookuc.New(bookRepo, cfg.Search.DefaultPageSize)

	// Create chi server
	server := chiTransport.NewServer(authorSvc, bookSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.IdentityMiddleware())
	r.Use(metrics.Middleware())

	server.Routes(r)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", healthHandler(client))

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// healthHandler reports liveness plus engine reachability.
func healthHandler(client *db.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := client.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  status,
			"version": version.Version,
		})
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
