package config

import (
	"fmt"
	"time"

	pkgconfig "ruraldata/pkg/config"
)

// RefreshConfig holds the settings that drive the refresh pipeline and the
// staleness windows on the read path.
type RefreshConfig struct {
	// Interval between scheduled refresh runs.
	Interval time.Duration

	// FreshMaxAge is how old a cache entry may be and still count as fresh.
	FreshMaxAge time.Duration

	// UsableMaxAge is the ceiling past which a cache entry is no longer
	// served at all and fallback data is synthesized instead.
	UsableMaxAge time.Duration

	// CacheDir is the directory holding per-source cache entries and the
	// run summary.
	CacheDir string

	// RegistryFile optionally points at a YAML source registry; empty
	// means the built-in registry.
	RegistryFile string

	// Parallel fans source refreshes out across goroutines.
	Parallel bool
}

// DefaultRefreshConfig returns the standard daily refresh with 24h/48h
// staleness windows.
func DefaultRefreshConfig() RefreshConfig {
	return RefreshConfig{
		Interval:     24 * time.Hour,
		FreshMaxAge:  24 * time.Hour,
		UsableMaxAge: 48 * time.Hour,
		CacheDir:     "data/cache",
		Parallel:     false,
	}
}

// Validate checks the configuration for consistency.
func (c *RefreshConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %v", c.Interval)
	}
	if c.FreshMaxAge <= 0 {
		return fmt.Errorf("fresh max age must be positive, got %v", c.FreshMaxAge)
	}
	if c.UsableMaxAge < c.FreshMaxAge {
		return fmt.Errorf("usable max age %v must be at least fresh max age %v", c.UsableMaxAge, c.FreshMaxAge)
	}
	if c.CacheDir == "" {
		return fmt.Errorf("cache directory is required")
	}
	return nil
}

// LoadRefreshConfigFromEnv builds a RefreshConfig from environment
// variables, falling back to defaults for anything unset.
func LoadRefreshConfigFromEnv() (RefreshConfig, error) {
	defaults := DefaultRefreshConfig()
	cfg := RefreshConfig{
		Interval:     pkgconfig.GetEnvDuration("REFRESH_INTERVAL", defaults.Interval),
		FreshMaxAge:  pkgconfig.GetEnvDuration("CACHE_FRESH_MAX_AGE", defaults.FreshMaxAge),
		UsableMaxAge: pkgconfig.GetEnvDuration("CACHE_USABLE_MAX_AGE", defaults.UsableMaxAge),
		CacheDir:     pkgconfig.GetEnvString("CACHE_DIR", defaults.CacheDir),
		RegistryFile: pkgconfig.GetEnvString("REGISTRY_FILE", ""),
		Parallel:     pkgconfig.GetEnvBool("REFRESH_PARALLEL", defaults.Parallel),
	}
	if err := cfg.Validate(); err != nil {
		return RefreshConfig{}, err
	}
	return cfg, nil
}
