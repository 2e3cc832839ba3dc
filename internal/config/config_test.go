package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:      "8265",
		JWTSecret: "a-sufficiently-long-development-secret",
		Env:       "development",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid development config", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestConfigValidate_Production(t *testing.T) {
	t.Parallel()

	t.Run("default secret rejected", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		cfg.DBPassword = "strong-password-1"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short secret rejected", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "strong-password-1"
		assert.Error(t, cfg.Validate())
	})

	t.Run("weak db password rejected", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-sufficiently-long-production-secret!!"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("strong settings accepted", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "a-sufficiently-long-production-secret!!"
		cfg.DBPassword = "strong-password-1"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
