package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, 3*time.Second, cfg.PaymentDelay)
	assert.Equal(t, 5, cfg.SubmitLimit)
	assert.Equal(t, 10*time.Second, cfg.SubmitWindow)
	assert.True(t, cfg.EnableMetrics)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LOGIN_DELAY", "250ms")
	t.Setenv("SUBMIT_LIMIT", "2")
	t.Setenv("ENABLE_METRICS", "false")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 250*time.Millisecond, cfg.LoginDelay)
	assert.Equal(t, 2, cfg.SubmitLimit)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("PAYMENT_DELAY", "soon")
	t.Setenv("ENABLE_METRICS", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 3*time.Second, cfg.PaymentDelay)
	assert.True(t, cfg.EnableMetrics)
}

func TestLoadConfig_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("port: \"9100\"\nstore_backend: memory\npayment_delay: 50ms\nsubmit_limit: 3\nenable_metrics: false\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9000")

	cfg := LoadConfig()

	// File wins over the environment for keys it names.
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 50*time.Millisecond, cfg.PaymentDelay)
	assert.Equal(t, 3, cfg.SubmitLimit)
	assert.False(t, cfg.EnableMetrics)

	// Keys absent from the file keep their environment or default values.
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
}
