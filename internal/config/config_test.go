package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	base := Config{
		Port:       "8460",
		JWTSecret:  "a-development-secret-that-is-long-enough",
		DBPassword: "password",
		Env:        "development",
	}

	t.Run("development defaults pass", func(t *testing.T) {
		cfg := base
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port fails", func(t *testing.T) {
		cfg := base
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing secret fails", func(t *testing.T) {
		cfg := base
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default secret rejected in production", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short secret rejected in production", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("weak db password rejected in production", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "a-production-secret-that-is-long-enough!"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("strong production config passes", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "a-production-secret-that-is-long-enough!"
		cfg.DBPassword = "s0mething-actually-random"
		assert.NoError(t, cfg.Validate())
	})
}
