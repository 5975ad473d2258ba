package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cuemby/flowsched/pkg/agent"
	"github.com/cuemby/flowsched/pkg/client"
	"github.com/cuemby/flowsched/pkg/config"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/runtime"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run the agent of this server",
	Long: `Run the agent that executes the tasks the scheduler places on this
server. Tasks run as containerd containers; their resource usage is read
from /proc and reported to the scheduler.

The machine ID identifies the server across restarts and must be a UUID.`,
	RunE: runAgent,
}

func init() {
	agentCmd.Flags().String("scheduler", "", "Scheduler gRPC address")
	agentCmd.Flags().String("machine-id", "", "UUID of this server")
	agentCmd.Flags().String("hostname", "", "Hostname reported to the scheduler")
	agentCmd.Flags().String("containerd-socket", "", "containerd socket path")
	agentCmd.Flags().Duration("profile-interval", 0, "Period between task samples")
	agentCmd.Flags().String("http-addr", "", "Address for agent health and metrics (empty to disable)")

	rootCmd.AddCommand(agentCmd)
}

func loadAgentConfig(cmd *cobra.Command) (config.AgentConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAgentConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("scheduler") {
		cfg.SchedulerAddr, _ = flags.GetString("scheduler")
	}
	if flags.Changed("machine-id") {
		cfg.MachineID, _ = flags.GetString("machine-id")
	}
	if flags.Changed("hostname") {
		cfg.Hostname, _ = flags.GetString("hostname")
	}
	if flags.Changed("containerd-socket") {
		cfg.ContainerdSocket, _ = flags.GetString("containerd-socket")
	}
	if flags.Changed("profile-interval") {
		cfg.ProfileInterval, _ = flags.GetDuration("profile-interval")
	}
	if flags.Changed("http-addr") {
		cfg.HTTPAddr, _ = flags.GetString("http-addr")
	}
	return cfg, cfg.Validate()
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg, err := loadAgentConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cmd, cfg.Log); err != nil {
		return err
	}
	logger := log.WithComponent("main")

	rt, err := runtime.NewContainerdRuntime(cfg.ContainerdSocket, cfg.ContainerdNamespace)
	if err != nil {
		return err
	}
	defer rt.Close()

	c, err := client.NewClient(cfg.SchedulerAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to scheduler: %w", err)
	}
	defer c.Close()

	a := agent.NewAgent(agent.Config{
		ServerID:        uuid.MustParse(cfg.MachineID),
		Hostname:        cfg.Hostname,
		ProfileInterval: cfg.ProfileInterval,
		RetryInterval:   cfg.RetryInterval,
		Benchmark:       cfg.Benchmark,
	}, c, rt, agent.NewProcSampler(cfg.ProcRoot, cfg.NetworkBandwidth, cfg.DiskBandwidth))

	metrics.SetVersion(Version)
	metrics.SetCriticalComponents(agent.ComponentAgent, agent.ComponentRuntime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Run(gctx) })

	if cfg.HTTPAddr != "" {
		health := agent.NewHealthServer(cfg.HTTPAddr)
		g.Go(func() error {
			if err := health.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("health server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return health.Shutdown(shutdownCtx)
		})
	}

	logger.Info().
		Str("scheduler", cfg.SchedulerAddr).
		Str("machine_id", cfg.MachineID).
		Str("http_addr", cfg.HTTPAddr).
		Msg("Agent running")

	return g.Wait()
}
