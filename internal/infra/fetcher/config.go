package fetcher

import (
	"fmt"
	"time"

	pkgconfig "ruraldata/pkg/config"
)

// Config holds the configuration for dataset downloads.
//
// Security settings:
//   - DenyPrivateIPs: blocks URLs resolving to private addresses
//   - MaxBodySize: bounds response size to prevent memory/disk exhaustion
//   - MaxRedirects: bounds redirect chains; the upstream behavior of
//     following redirects without limit is a latent defect this closes
//   - Timeout: bounds a single download
//
// Politeness settings:
//   - RatePerSecond/Burst: outbound request rate limit against the
//     government hosts
type Config struct {
	// Timeout is the maximum duration for a single download. Default: 30s.
	Timeout time.Duration

	// MaxBodySize is the maximum accepted response size in bytes.
	// Default: 50MB (the facility exports run tens of megabytes).
	MaxBodySize int64

	// MaxRedirects is the maximum number of redirects to follow.
	// Default: 5.
	MaxRedirects int

	// DenyPrivateIPs blocks URLs that resolve to private, loopback or
	// link-local addresses. Default: true.
	DenyPrivateIPs bool

	// RatePerSecond limits outbound requests per second. Default: 2.
	RatePerSecond float64

	// Burst is the rate limiter burst size. Default: 2.
	Burst int

	// WorkDir is where downloaded files are staged before parsing.
	// Default: "data/staging".
	WorkDir string

	// UserAgent identifies the service to upstream hosts.
	UserAgent string
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:        30 * time.Second,
		MaxBodySize:    50 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		RatePerSecond:  2,
		Burst:          2,
		WorkDir:        "data/staging",
		UserAgent:      "ruraldata-fetcher/1.0",
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxBodySize < 1024 {
		return fmt.Errorf("max body size must be at least 1KB, got %d", c.MaxBodySize)
	}
	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}
	if c.RatePerSecond <= 0 {
		return fmt.Errorf("rate per second must be positive, got %v", c.RatePerSecond)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", c.Burst)
	}
	if c.WorkDir == "" {
		return fmt.Errorf("work directory must be set")
	}
	return nil
}

// LoadConfigFromEnv loads the fetcher configuration from environment
// variables, falling back to defaults for unset values.
//
// Environment variables:
//   - FETCH_TIMEOUT: duration (default 30s)
//   - FETCH_MAX_BODY_SIZE: bytes (default 52428800)
//   - FETCH_MAX_REDIRECTS: integer (default 5)
//   - FETCH_DENY_PRIVATE_IPS: boolean (default true)
//   - FETCH_RATE_PER_SECOND: integer (default 2)
//   - FETCH_WORK_DIR: staging directory (default "data/staging")
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	cfg.Timeout = pkgconfig.GetEnvDuration("FETCH_TIMEOUT", cfg.Timeout)
	cfg.MaxBodySize = int64(pkgconfig.GetEnvInt("FETCH_MAX_BODY_SIZE", int(cfg.MaxBodySize)))
	cfg.MaxRedirects = pkgconfig.GetEnvInt("FETCH_MAX_REDIRECTS", cfg.MaxRedirects)
	cfg.DenyPrivateIPs = pkgconfig.GetEnvBool("FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	cfg.RatePerSecond = float64(pkgconfig.GetEnvInt("FETCH_RATE_PER_SECOND", int(cfg.RatePerSecond)))
	cfg.Burst = pkgconfig.GetEnvInt("FETCH_BURST", cfg.Burst)
	cfg.WorkDir = pkgconfig.GetEnvString("FETCH_WORK_DIR", cfg.WorkDir)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("fetcher configuration invalid: %w", err)
	}
	return cfg, nil
}
