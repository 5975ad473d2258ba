package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LogConfig selects the log level and encoding
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// SchedulerConfig holds the settings of the scheduler process
type SchedulerConfig struct {
	GRPCAddr       string        `yaml:"grpcAddr"`
	HTTPAddr       string        `yaml:"httpAddr"`
	DataDir        string        `yaml:"dataDir"`
	MovePenalty    int64         `yaml:"movePenalty"`
	CommandBuffer  int           `yaml:"commandBuffer"`
	SendTimeout    time.Duration `yaml:"sendTimeout"`
	ResyncInterval time.Duration `yaml:"resyncInterval"`
	Log            LogConfig     `yaml:"log"`
}

// DefaultSchedulerConfig returns the scheduler defaults. An empty DataDir
// keeps benchmarks in memory.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		GRPCAddr:       "0.0.0.0:7070",
		HTTPAddr:       "0.0.0.0:7080",
		MovePenalty:    10,
		CommandBuffer:  16,
		SendTimeout:    5 * time.Second,
		ResyncInterval: 30 * time.Second,
		Log:            LogConfig{Level: "info"},
	}
}

// Validate checks the scheduler settings
func (c SchedulerConfig) Validate() error {
	if c.GRPCAddr == "" {
		return fmt.Errorf("grpcAddr is required")
	}
	if c.MovePenalty < 0 {
		return fmt.Errorf("movePenalty must not be negative, got %d", c.MovePenalty)
	}
	if c.CommandBuffer < 0 {
		return fmt.Errorf("commandBuffer must not be negative, got %d", c.CommandBuffer)
	}
	if c.SendTimeout <= 0 {
		return fmt.Errorf("sendTimeout must be positive")
	}
	if c.ResyncInterval <= 0 {
		return fmt.Errorf("resyncInterval must be positive")
	}
	return c.Log.validate()
}

// AgentConfig holds the settings of an agent process
type AgentConfig struct {
	SchedulerAddr       string        `yaml:"schedulerAddr"`
	MachineID           string        `yaml:"machineId"`
	Hostname            string        `yaml:"hostname"`
	ContainerdSocket    string        `yaml:"containerdSocket"`
	ContainerdNamespace string        `yaml:"containerdNamespace"`
	ProfileInterval     time.Duration `yaml:"profileInterval"`
	RetryInterval       time.Duration `yaml:"retryInterval"`
	ProcRoot            string        `yaml:"procRoot"`
	// HTTPAddr serves agent health and metrics; empty disables it.
	HTTPAddr string `yaml:"httpAddr"`
	// NetworkBandwidth and DiskBandwidth are the machine capacities in
	// bytes per second used by the host benchmark.
	NetworkBandwidth uint64 `yaml:"networkBandwidth"`
	DiskBandwidth    uint64 `yaml:"diskBandwidth"`
	// Benchmark replaces the host benchmark when set.
	Benchmark *types.ResourceProfile `yaml:"benchmark"`
	Log       LogConfig              `yaml:"log"`
}

// DefaultAgentConfig returns the agent defaults
func DefaultAgentConfig() AgentConfig {
	hostname, _ := os.Hostname()
	return AgentConfig{
		SchedulerAddr:       "localhost:7070",
		Hostname:            hostname,
		ContainerdSocket:    "/run/containerd/containerd.sock",
		ContainerdNamespace: "flowsched",
		ProfileInterval:     10 * time.Second,
		RetryInterval:       5 * time.Second,
		ProcRoot:            "/proc",
		HTTPAddr:            "0.0.0.0:7081",
		NetworkBandwidth:    125_000_000,
		DiskBandwidth:       500_000_000,
		Log:                 LogConfig{Level: "info"},
	}
}

// Validate checks the agent settings
func (c AgentConfig) Validate() error {
	if c.SchedulerAddr == "" {
		return fmt.Errorf("schedulerAddr is required")
	}
	if _, err := uuid.Parse(c.MachineID); err != nil {
		return fmt.Errorf("machineId must be a UUID: %w", err)
	}
	if c.ProfileInterval <= 0 {
		return fmt.Errorf("profileInterval must be positive")
	}
	if c.Benchmark != nil {
		if err := c.Benchmark.Validate(); err != nil {
			return fmt.Errorf("invalid benchmark: %w", err)
		}
	}
	return c.Log.validate()
}

func (c LogConfig) validate() error {
	if _, err := log.ParseLevel(c.Level); err != nil {
		return err
	}
	return nil
}

// LoadSchedulerConfig reads path over the defaults. An empty path
// returns the defaults.
func LoadSchedulerConfig(path string) (SchedulerConfig, error) {
	cfg := DefaultSchedulerConfig()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadAgentConfig reads path over the defaults
func LoadAgentConfig(path string) (AgentConfig, error) {
	cfg := DefaultAgentConfig()
	if err := load(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(path string, out any) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}
