// The api process serves the dataset read endpoints with staleness-aware
// fallback, plus the admin refresh trigger and run-status endpoints.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ruraldata/internal/config"
	handler "ruraldata/internal/handler/http"
	"ruraldata/internal/infra/cachestore"
	"ruraldata/internal/infra/csvparse"
	"ruraldata/internal/infra/fetcher"
	"ruraldata/internal/observability/logging"
	"ruraldata/internal/observability/tracing"
	datasetUC "ruraldata/internal/usecase/dataset"
	refreshUC "ruraldata/internal/usecase/refresh"
	pkgconfig "ruraldata/pkg/config"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing := tracing.Setup()
	defer shutdownTracing()

	refreshConfig, err := config.LoadRefreshConfigFromEnv()
	if err != nil {
		logger.Error("failed to load refresh configuration", slog.Any("error", err))
		os.Exit(1)
	}

	sources, err := config.LoadRegistry(refreshConfig.RegistryFile)
	if err != nil {
		logger.Error("failed to load source registry", slog.Any("error", err))
		os.Exit(1)
	}

	store, err := cachestore.NewStore(refreshConfig.CacheDir)
	if err != nil {
		logger.Error("failed to open cache store", slog.Any("error", err))
		os.Exit(1)
	}

	readSvc := datasetUC.NewService(store, datasetUC.NewFallbackGenerator(), datasetUC.Thresholds{
		FreshMaxAge:  refreshConfig.FreshMaxAge,
		UsableMaxAge: refreshConfig.UsableMaxAge,
	})

	// The admin refresh endpoint shares the worker's pipeline; only the
	// caller differs.
	fetchConfig, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load fetcher configuration", slog.Any("error", err))
		os.Exit(1)
	}
	downloader, err := fetcher.NewDownloader(fetchConfig)
	if err != nil {
		logger.Error("failed to build downloader", slog.Any("error", err))
		os.Exit(1)
	}
	refreshSvc := refreshUC.NewService(downloader, csvparse.NewParser(), store, sources, refreshUC.Config{
		Interval: refreshConfig.Interval,
		Parallel: refreshConfig.Parallel,
	})

	router := handler.NewRouter(handler.RouterDeps{
		Logger:    logger,
		Reader:    readSvc,
		Refresher: refreshSvc,
		Store:     store,
		Entries:   store,
		Registry:  sources,
		Version:   version,
	})

	port := pkgconfig.GetEnvInt("API_PORT", 8080)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("api server starting",
			slog.Int("port", port),
			slog.Int("sources", len(sources)),
			slog.String("cache_dir", refreshConfig.CacheDir))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("api server failed", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("api server shutdown failed", slog.Any("error", err))
	}
	logger.Info("api server stopped")
}
