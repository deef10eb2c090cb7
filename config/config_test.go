package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "en", cfg.App.Locale)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, SessionStoreFile, cfg.Session.Store)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://api.dental.test")
	t.Setenv("BACKEND_TIMEOUT", "3s")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_DB", "4")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.dental.test", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 4, cfg.Redis.DB)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nUI_LOCALE=de\nBACKEND_TIMEOUT=not-a-duration\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "de", cfg.App.Locale)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
}
