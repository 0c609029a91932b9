package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 8080
  env: production
database:
  driver: mysql
  url: "user:pass@tcp(localhost:3306)/jobs"
auth:
  jwt_secret: secret
workers:
  expiry_interval: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Workers.ExpiryInterval)
	assert.False(t, cfg.Email.Enabled)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"missing dsn", "auth:\n  jwt_secret: s\n"},
		{"unknown driver", "database:\n  driver: oracle\n  url: x\nauth:\n  jwt_secret: s\n"},
		{"missing secret", "database:\n  url: x\n"},
		{"email without host", "database:\n  url: x\nauth:\n  jwt_secret: s\nemail:\n  enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("SERVER_ENV", "test")
	t.Setenv("SERVER_PORT", "4001")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("EXPIRY_INTERVAL", "5m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Same(t, cfg, AppConfig)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 4001, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Workers.ExpiryInterval)
	assert.False(t, cfg.Email.Enabled)
}

func TestLoadConfig_BadPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "file::memory:")
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("JWT_SECRET", "s")

	_, err := LoadConfig()
	assert.Error(t, err)
}
