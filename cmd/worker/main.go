// The worker process refreshes the registered government datasets on a
// cron schedule and exposes health and metrics endpoints for probes.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"ruraldata/internal/config"
	"ruraldata/internal/infra/cachestore"
	"ruraldata/internal/infra/csvparse"
	"ruraldata/internal/infra/fetcher"
	workerPkg "ruraldata/internal/infra/worker"
	"ruraldata/internal/observability/logging"
	"ruraldata/internal/observability/tracing"
	refreshUC "ruraldata/internal/usecase/refresh"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	shutdownTracing := tracing.Setup()
	defer shutdownTracing()

	workerConfig, err := workerPkg.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	refreshConfig, err := config.LoadRefreshConfigFromEnv()
	if err != nil {
		logger.Error("failed to load refresh configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("refresh_timeout", workerConfig.RefreshTimeout),
		slog.String("cache_dir", refreshConfig.CacheDir),
		slog.Bool("parallel", refreshConfig.Parallel))

	svc, err := buildRefreshService(refreshConfig)
	if err != nil {
		logger.Error("failed to build refresh service", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	startMetricsServer(ctx, logger, workerConfig.MetricsPort)

	healthServer := workerPkg.NewHealthServer(listenAddr(workerConfig.HealthPort), logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	runCronWorker(ctx, logger, svc, workerConfig, healthServer)
}

// buildRefreshService wires the refresh pipeline: downloader, CSV parser
// and cache store over the configured source registry.
func buildRefreshService(cfg config.RefreshConfig) (*refreshUC.Service, error) {
	sources, err := config.LoadRegistry(cfg.RegistryFile)
	if err != nil {
		return nil, err
	}

	fetchConfig, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	downloader, err := fetcher.NewDownloader(fetchConfig)
	if err != nil {
		return nil, err
	}

	store, err := cachestore.NewStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	return refreshUC.NewService(downloader, csvparse.NewParser(), store, sources, refreshUC.Config{
		Interval: cfg.Interval,
		Parallel: cfg.Parallel,
	}), nil
}

// runCronWorker schedules refresh runs, performs one immediately at
// startup so a fresh deployment has data, and blocks until shutdown.
func runCronWorker(ctx context.Context, logger *slog.Logger, svc *refreshUC.Service, cfg workerPkg.Config, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runRefreshJob(ctx, logger, svc, cfg.RefreshTimeout)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	// Initial run so consumers are not waiting for the first tick.
	runRefreshJob(ctx, logger, svc, cfg.RefreshTimeout)

	<-ctx.Done()
	logger.Info("shutdown signal received, stopping scheduler")
	cronCtx := c.Stop()
	<-cronCtx.Done()
	logger.Info("worker stopped")
}

// runRefreshJob executes a single refresh run with a timeout.
func runRefreshJob(ctx context.Context, logger *slog.Logger, svc *refreshUC.Service, timeout time.Duration) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	summary, err := svc.RefreshAll(runCtx)
	if err != nil {
		logger.Error("refresh run could not persist its summary", slog.Any("error", err))
		return
	}

	logger.Info("scheduled refresh finished",
		slog.String("run_id", summary.RunID),
		slog.Int("succeeded", summary.Succeeded()),
		slog.Int("failed", summary.Failed()),
		slog.Time("next_update", summary.NextUpdate))
}
