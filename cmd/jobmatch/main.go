package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/jobmatch/internal/bootstrap"
	"github.com/kailas-cloud/jobmatch/internal/config"
	logpkg "github.com/kailas-cloud/jobmatch/internal/logger"
	"github.com/kailas-cloud/jobmatch/internal/metrics"
	chiTransport "github.com/kailas-cloud/jobmatch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/jobmatch/internal/usecase/health"
	listinguc "github.com/kailas-cloud/jobmatch/internal/usecase/listing"
	matchuc "github.com/kailas-cloud/jobmatch/internal/usecase/match"
	"github.com/kailas-cloud/jobmatch/internal/version"
)

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

	logger.Info("Starting jobmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	ctx := context.Background()
	storage, err := bootstrap.Open(ctx, bootstrap.FromConfig(cfg))
	if err != nil {
		logger.Fatal("Listing store not ready", zap.Error(err))
	}
	defer storage.Close()
	logger.Info("Connected to listing store", zap.String("driver", storage.Driver))

	// Register metrics explicitly (no init())
	if err := metrics.RegisterHTTPMetrics(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}
	if err := metrics.RegisterMatchMetrics(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("Failed to register match metrics", zap.Error(err))
	}

	matchSvc := matchuc.New(storage.Listings).
		WithLimits(cfg.Match.DefaultLimit, cfg.Match.MaxLimit)
	listingSvc := listinguc.New(storage.Listings)
	healthSvc := healthuc.New(healthuc.Component{Name: "database", Pinger: storage.Pinger})

	server := chiTransport.NewServer(matchSvc, listingSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEvent(logger))
	r.Use(metrics.Middleware())
	server.Routes(r)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
