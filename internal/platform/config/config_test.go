package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.TopologyPath)
	assert.False(t, cfg.SeedDonors)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BLOODLINK_ADDR", ":9090")
	t.Setenv("BLOODLINK_SEED", "true")
	t.Setenv("BLOODLINK_TOPOLOGY", "/etc/bloodlink/topology.yaml")
	t.Setenv("BLOODLINK_SHUTDOWN_TIMEOUT", "30s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.SeedDonors)
	assert.Equal(t, "/etc/bloodlink/topology.yaml", cfg.TopologyPath)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}
