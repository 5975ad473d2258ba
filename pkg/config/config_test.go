package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSchedulerConfig(t *testing.T) {
	path := writeFile(t, `
grpcAddr: 127.0.0.1:9000
dataDir: /var/lib/flowsched
sendTimeout: 250ms
log:
  level: debug
  json: true
`)

	cfg, err := LoadSchedulerConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "127.0.0.1:9000", cfg.GRPCAddr)
	assert.Equal(t, "/var/lib/flowsched", cfg.DataDir)
	assert.Equal(t, 250*time.Millisecond, cfg.SendTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)

	// Unset keys keep their defaults
	assert.Equal(t, int64(10), cfg.MovePenalty)
	assert.Equal(t, 30*time.Second, cfg.ResyncInterval)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadSchedulerConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSchedulerConfig(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadSchedulerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadAgentConfig(writeFile(t, "profileInterval: [1, 2"))
	assert.Error(t, err)
}

func TestSchedulerConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SchedulerConfig)
	}{
		{"missing grpc addr", func(c *SchedulerConfig) { c.GRPCAddr = "" }},
		{"negative move penalty", func(c *SchedulerConfig) { c.MovePenalty = -1 }},
		{"negative buffer", func(c *SchedulerConfig) { c.CommandBuffer = -1 }},
		{"zero send timeout", func(c *SchedulerConfig) { c.SendTimeout = 0 }},
		{"zero resync", func(c *SchedulerConfig) { c.ResyncInterval = 0 }},
		{"bad log level", func(c *SchedulerConfig) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSchedulerConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultSchedulerConfig().Validate())
}

func TestLoadAgentConfig(t *testing.T) {
	id := uuid.New()
	path := writeFile(t, `
schedulerAddr: sched:7070
machineId: `+id.String()+`
profileInterval: 2s
httpAddr: 127.0.0.1:9100
benchmark:
  ipc: "3.5"
  memory: 8589934592
  network: 1000
  disk: 2000
`)

	cfg, err := LoadAgentConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "sched:7070", cfg.SchedulerAddr)
	assert.Equal(t, id.String(), cfg.MachineID)
	assert.Equal(t, 2*time.Second, cfg.ProfileInterval)
	assert.Equal(t, "127.0.0.1:9100", cfg.HTTPAddr)
	require.NotNil(t, cfg.Benchmark)
	assert.Equal(t, "3.5", cfg.Benchmark.IPC.String())
	assert.Equal(t, uint64(8589934592), cfg.Benchmark.Memory)
	assert.Equal(t, "flowsched", cfg.ContainerdNamespace)
}

func TestAgentConfigValidate(t *testing.T) {
	cfg := DefaultAgentConfig()
	assert.Error(t, cfg.Validate(), "machine id is required")

	cfg.MachineID = uuid.NewString()
	assert.NoError(t, cfg.Validate())

	cfg.ProfileInterval = 0
	assert.Error(t, cfg.Validate())
}
