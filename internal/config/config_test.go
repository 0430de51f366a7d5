package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
redis:
  addr: "redis:6379"
  password: "secret"
  db: 1

log:
  dir: "/tmp/landlord"
  level: "debug"

table:
  expiration: 30
  seed: 42
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "/tmp/landlord", cfg.Log.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30, cfg.Table.Expiration)
	assert.Equal(t, uint64(42), cfg.Table.Seed)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "invalid: yaml: :::"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	// Not parallel: other tests in this package set environment variables

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, defaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, defaultTableExpiration, cfg.Table.Expiration)
	assert.Zero(t, cfg.Table.Seed)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, defaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, defaultLogLevel, cfg.Log.Level)
	assert.Equal(t, 2*time.Hour, cfg.Table.ExpirationDuration())
}

func TestTableConfig_ExpirationDuration(t *testing.T) {
	t.Parallel()

	cfg := &TableConfig{Expiration: 15}
	assert.Equal(t, 15*time.Minute, cfg.ExpirationDuration())
}

func TestLoadFromEnv(t *testing.T) {
	// Not parallel because it modifies environment variables
	t.Setenv("REDIS_ADDR", "env-redis:6380")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TABLE_SEED", "7")

	cfg, err := Load(writeConfig(t, "redis:\n  addr: file-redis:6379\n"))
	require.NoError(t, err)

	assert.Equal(t, "env-redis:6380", cfg.Redis.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, uint64(7), cfg.Table.Seed)
}
