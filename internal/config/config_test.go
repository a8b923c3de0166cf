package config_test

import (
	"testing"
	"time"

	"employee-admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DEFAULT_ADMIN_USERNAME", "admin")
	t.Setenv("DEFAULT_ADMIN_PASSWORD", "pw")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DEFAULT_ADMIN_USERNAME", "admin")
	t.Setenv("DEFAULT_ADMIN_PASSWORD", "pw")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DEFAULT_ADMIN_USERNAME", "")
	t.Setenv("DEFAULT_ADMIN_PASSWORD", "")

	_, err := config.Load()
	assert.Error(t, err)
}
