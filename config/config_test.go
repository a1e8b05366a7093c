package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"STATIC_DIR", "FRONTEND_DIST", "APP_ENV", "LOG_LEVEL", "APP_VERSION",
		"SECRET_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8100", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3254, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "homedesign", cfg.Database.Name)
	assert.Equal(t, "./static", cfg.Storage.StaticDir)
	assert.NotEmpty(t, cfg.App.SecretKey)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("STATIC_DIR", "/srv/static")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, filepath.Join("/srv/static", "models"), cfg.Storage.ModelsDir())
	assert.Equal(t, filepath.Join("/srv/static", "thumbnails"), cfg.Storage.ThumbnailsDir())
}

func TestLoadBadPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3254, cfg.Database.Port)
}
