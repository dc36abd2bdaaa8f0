package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaultsWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "loader must not create the config file")
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`timeouts:
  command: 2s
  lookup: 1500ms
public_ip:
  services:
    - https://ip.example.net
ports:
  local: [15678, 15432]
`), 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Timeouts.Command)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeouts.Lookup)
	assert.Equal(t, 10*time.Minute, cfg.Timeouts.Compose)
	assert.Equal(t, []string{"https://ip.example.net"}, cfg.PublicIP.Services)
	assert.Equal(t, []int{15678, 15432}, cfg.Ports.Local)
	assert.Equal(t, []int{80, 443}, cfg.Ports.Prod)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("N8N_READY_TIMEOUTS_LOOKUP", "3s")
	cfg, err := NewFileLoader(filepath.Join(t.TempDir(), "none.yaml")).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Timeouts.Lookup)
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeouts: [oops"), 0o600))
	_, err := NewFileLoader(path).Load(context.Background())
	assert.Error(t, err)
}

func TestPathHonoursEnv(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(ConfigPathEnv, custom)
	assert.Equal(t, custom, NewFileLoader("").Path())
}
