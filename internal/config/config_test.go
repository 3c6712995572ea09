package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_MODE", "dev")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("ACCESS_TOKEN_MINUTES", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 30, cfg.JWT.AccessTokenMins)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.IsProd())
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{AppMode: "prod"}

	t.Setenv("ALLOWED_ORIGINS", "")
	assert.Equal(t, "*", cfg.GetAllowedOrigins())

	t.Setenv("ALLOWED_ORIGINS", "https://fleet.example.com")
	assert.Equal(t, "https://fleet.example.com", cfg.GetAllowedOrigins())
}
