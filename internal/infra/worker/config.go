// Package worker provides the scheduled-refresh process plumbing: its
// configuration, the cron schedule and the health check server used for
// liveness/readiness probes.
package worker

import (
	"fmt"
	"time"

	pkgconfig "ruraldata/pkg/config"

	"github.com/robfig/cron/v3"
)

// Config holds the settings for the refresh worker process.
type Config struct {
	// CronSchedule is the cron expression driving scheduled refresh runs.
	// Format: "minute hour day month weekday".
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	Timezone string

	// RefreshTimeout bounds a single refresh run; after it the run's
	// context is cancelled.
	RefreshTimeout time.Duration

	// HealthPort is the port for the worker's health check server.
	HealthPort int

	// MetricsPort is the port for the worker's Prometheus endpoint.
	MetricsPort int
}

// DefaultConfig returns a worker configuration that refreshes daily at
// 05:30 UTC with a 30-minute run timeout.
func DefaultConfig() Config {
	return Config{
		CronSchedule:   "30 5 * * *",
		Timezone:       "UTC",
		RefreshTimeout: 30 * time.Minute,
		HealthPort:     9091,
		MetricsPort:    9090,
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := cron.ParseStandard(c.CronSchedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", c.CronSchedule, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	if c.RefreshTimeout <= 0 {
		return fmt.Errorf("refresh timeout must be positive, got %v", c.RefreshTimeout)
	}
	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		return fmt.Errorf("health port must be in 1024-65535, got %d", c.HealthPort)
	}
	if c.MetricsPort < 1024 || c.MetricsPort > 65535 {
		return fmt.Errorf("metrics port must be in 1024-65535, got %d", c.MetricsPort)
	}
	return nil
}

// LoadConfigFromEnv builds a worker Config from environment variables.
//
// Variables:
//   - CRON_SCHEDULE      (default "30 5 * * *")
//   - WORKER_TIMEZONE    (default "UTC")
//   - REFRESH_TIMEOUT    (default "30m")
//   - WORKER_HEALTH_PORT (default 9091)
//   - WORKER_METRICS_PORT (default 9090)
func LoadConfigFromEnv() (Config, error) {
	defaults := DefaultConfig()
	cfg := Config{
		CronSchedule:   pkgconfig.GetEnvString("CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:       pkgconfig.GetEnvString("WORKER_TIMEZONE", defaults.Timezone),
		RefreshTimeout: pkgconfig.GetEnvDuration("REFRESH_TIMEOUT", defaults.RefreshTimeout),
		HealthPort:     pkgconfig.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
		MetricsPort:    pkgconfig.GetEnvInt("WORKER_METRICS_PORT", defaults.MetricsPort),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
