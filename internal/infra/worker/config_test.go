package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "30 5 * * *", cfg.CronSchedule)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30*time.Minute, cfg.RefreshTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid cron expression",
			mutate:  func(c *Config) { c.CronSchedule = "not a cron" },
			wantErr: "cron schedule",
		},
		{
			name:    "invalid timezone",
			mutate:  func(c *Config) { c.Timezone = "Mars/Olympus" },
			wantErr: "timezone",
		},
		{
			name:    "zero refresh timeout",
			mutate:  func(c *Config) { c.RefreshTimeout = 0 },
			wantErr: "refresh timeout",
		},
		{
			name:    "privileged health port",
			mutate:  func(c *Config) { c.HealthPort = 80 },
			wantErr: "health port",
		},
		{
			name:    "metrics port out of range",
			mutate:  func(c *Config) { c.MetricsPort = 70000 },
			wantErr: "metrics port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "0 */6 * * *")
	t.Setenv("WORKER_TIMEZONE", "America/Chicago")
	t.Setenv("REFRESH_TIMEOUT", "15m")
	t.Setenv("WORKER_HEALTH_PORT", "19191")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "0 */6 * * *", cfg.CronSchedule)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, 15*time.Minute, cfg.RefreshTimeout)
	assert.Equal(t, 19191, cfg.HealthPort)
}

func TestLoadConfigFromEnv_InvalidSchedule(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "every day at noon")

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron schedule")
}
