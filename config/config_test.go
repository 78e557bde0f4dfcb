package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, DefaultAutoApproveThreshold, cfg.Claim.AutoApproveThreshold)
	assert.Equal(t, 5*time.Second, cfg.Mall.Timeout)
	assert.Equal(t, "oms-user", cfg.Auth.Username)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("claim:\n  auto_approve_threshold: 500\n"), 0o600))
	t.Setenv("OMS_CLAIM_AUTO_APPROVE_THRESHOLD", "2500")
	t.Setenv("OMS_MALL_BASE_URL", "http://mall.internal")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.EqualValues(t, 2500, cfg.Claim.AutoApproveThreshold)
	assert.Equal(t, "http://mall.internal", cfg.Mall.BaseURL)
}

func TestLoadFrom_MissingExplicitFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
