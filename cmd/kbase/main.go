package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kbase/internal/config"
	"github.com/kailas-cloud/kbase/internal/db"
	dbRedis "github.com/kailas-cloud/kbase/internal/db/redis"
	logpkg "github.com/kailas-cloud/kbase/internal/logger"
	"github.com/kailas-cloud/kbase/internal/metrics"
	"github.com/kailas-cloud/kbase/internal/render"
	docrepo "github.com/kailas-cloud/kbase/internal/repository/document"
	"github.com/kailas-cloud/kbase/internal/tools"
	chiTransport "github.com/kailas-cloud/kbase/internal/transport/chi"
	mcptransport "github.com/kailas-cloud/kbase/internal/transport/mcp"
	documentuc "github.com/kailas-cloud/kbase/internal/usecase/document"
	healthuc "github.com/kailas-cloud/kbase/internal/usecase/health"
	searchuc "github.com/kailas-cloud/kbase/internal/usecase/search"
	"github.com/kailas-cloud/kbase/internal/version"
)

const instructions = "Search and read the internal knowledge base. " +
	"Use list_categories to discover topics, search_knowledge_base to find documents " +
	"and get_document to read one in full."

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting kbase server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("transport", cfg.Server.Transport),
		zap.String("store_backend", cfg.Store.Backend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Document source. The database is only opened for the redis backend.
	var store db.Store
	var loader docrepo.Loader
	switch cfg.Store.Backend {
	case config.BackendSample:
		loader = docrepo.SampleLoader{}
	case config.BackendFile:
		loader = docrepo.FileLoader{Path: cfg.Store.Path}
	case config.BackendRedis:
		store, err = openStore(ctx, &cfg, logger)
		if err != nil {
			logger.Fatal("Database unavailable", zap.Error(err))
		}
		defer store.Close()
		loader = docrepo.NewRedisLoader(store, cfg.Store.Key)
	default:
		logger.Fatal("Unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	repo, err := docrepo.Load(ctx, loader)
	if err != nil {
		logger.Fatal("Failed to load documents", zap.Error(err))
	}
	count, _ := repo.Count(ctx)
	logger.Info("Documents loaded", zap.Int("count", count))

	metrics.RegisterToolMetrics()

	// Use case services
	searchSvc := searchuc.New(repo)
	docSvc := documentuc.New(repo)

	// Pass nil interface (not typed nil pointer) when no database is configured.
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(repo, pinger)

	dispatcher, err := tools.New(searchSvc, docSvc, render.New(cfg.Response.CharacterLimit), logger)
	if err != nil {
		logger.Fatal("Failed to build tool dispatcher", zap.Error(err))
	}

	mcpServer := mcptransport.NewServer(mcptransport.Config{
		Name:         cfg.Server.Name,
		Version:      version.Version,
		Instructions: instructions,
	}, dispatcher, logger)

	switch cfg.Server.Transport {
	case config.TransportStdio:
		logger.Info("Serving MCP over stdio")
		if err := mcptransport.ServeStdio(ctx, mcpServer); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("stdio server stopped", zap.Error(err))
		}
	case config.TransportHTTP:
		server := chiTransport.NewServer(dispatcher, healthSvc, mcptransport.NewHTTPHandler(mcpServer, logger), logger)
		serveHTTP(ctx, &cfg, server, logger)
	}

	logger.Info("Server stopped gracefully")
}

// openStore connects to Valkey or Redis. Both speak RESP, so one rueidis store serves either driver.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (db.Store, error) {
	logger.Info("Connecting to database",
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")
	return store, nil
}

func serveHTTP(ctx context.Context, cfg *config.Config, server *chiTransport.Server, logger *zap.Logger) {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
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
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.CodeInternal,
						Message: "internal error",
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

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("mcp_session", r.Header.Get("Mcp-Session-Id")),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
