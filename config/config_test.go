package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "confirmed", cfg.Ledger.Commitment)
	assert.Equal(t, 45*time.Second, cfg.Ledger.ConfirmTimeout)
	assert.Equal(t, 3, cfg.Backend.RetryAttempts)
	assert.True(t, cfg.Monitor.Enabled)
	assert.Equal(t, 5, cfg.Monitor.NotifyMaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Monitor.NotifyBackoff)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	yaml := `
server:
  port: 9999
  mode: release
ledger:
  rpc_url: http://node:8899
  program_id: aabb
  confirm_timeout: 10s
monitor:
  notify_max_attempts: 7
  health_interval: 5s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "http://node:8899", cfg.Ledger.RPCURL)
	assert.Equal(t, 10*time.Second, cfg.Ledger.ConfirmTimeout)
	assert.Equal(t, 7, cfg.Monitor.NotifyMaxAttempts)
	assert.Equal(t, 5*time.Second, cfg.Monitor.HealthInterval)
	// untouched values fall back to defaults
	assert.Equal(t, "http://localhost:4000", cfg.Backend.BaseURL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AXB_LEDGER_RPC_URL", "http://env-node:8899")
	t.Setenv("AXB_BACKEND_API_KEY", "env-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://env-node:8899", cfg.Ledger.RPCURL)
	assert.Equal(t, "env-key", cfg.Backend.APIKey)
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
