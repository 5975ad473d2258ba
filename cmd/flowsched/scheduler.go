package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cuemby/flowsched/pkg/api"
	"github.com/cuemby/flowsched/pkg/config"
	"github.com/cuemby/flowsched/pkg/dashboard"
	"github.com/cuemby/flowsched/pkg/events"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/cuemby/flowsched/pkg/storage"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Run the scheduler",
	Long: `Run the scheduler with its gRPC API for agents and the CLI, and the
HTTP dashboard serving the flow graph, health and metrics.

Benchmarks are kept in a bbolt database under --data-dir, or in memory
when no data directory is given.`,
	RunE: runScheduler,
}

func init() {
	schedulerCmd.Flags().String("grpc-addr", "", "Address for the gRPC API")
	schedulerCmd.Flags().String("http-addr", "", "Address for the dashboard (empty to disable)")
	schedulerCmd.Flags().String("data-dir", "", "Directory for the benchmark database")
	schedulerCmd.Flags().Int64("move-penalty", 0, "Cost added to every move of a placed task")
	schedulerCmd.Flags().Duration("send-timeout", 0, "How long a pass waits on a full command stream")
	schedulerCmd.Flags().Duration("resync-interval", 0, "Period of the background scheduling pass")

	rootCmd.AddCommand(schedulerCmd)
}

func loadSchedulerConfig(cmd *cobra.Command) (config.SchedulerConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSchedulerConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("grpc-addr") {
		cfg.GRPCAddr, _ = flags.GetString("grpc-addr")
	}
	if flags.Changed("http-addr") {
		cfg.HTTPAddr, _ = flags.GetString("http-addr")
	}
	if flags.Changed("data-dir") {
		cfg.DataDir, _ = flags.GetString("data-dir")
	}
	if flags.Changed("move-penalty") {
		cfg.MovePenalty, _ = flags.GetInt64("move-penalty")
	}
	if flags.Changed("send-timeout") {
		cfg.SendTimeout, _ = flags.GetDuration("send-timeout")
	}
	if flags.Changed("resync-interval") {
		cfg.ResyncInterval, _ = flags.GetDuration("resync-interval")
	}
	return cfg, cfg.Validate()
}

func openStore(dataDir string) (storage.Store, error) {
	if dataDir == "" {
		return storage.NewMemoryStore(), nil
	}
	return storage.NewBoltStore(dataDir)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	cfg, err := loadSchedulerConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cmd, cfg.Log); err != nil {
		return err
	}
	logger := log.WithComponent("main")

	store, err := openStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sched := scheduler.NewScheduler(scheduler.Config{
		MovePenalty:    cfg.MovePenalty,
		CommandBuffer:  cfg.CommandBuffer,
		SendTimeout:    cfg.SendTimeout,
		ResyncInterval: cfg.ResyncInterval,
		Store:          store,
		Events:         broker,
	})
	sched.Start()
	defer sched.Stop()

	metrics.SetVersion(Version)
	metrics.RegisterComponent("scheduler", true, "running")
	metrics.SetCriticalComponents("scheduler", api.ComponentAPI)

	collector := metrics.NewCollector(sched)
	collector.Start()
	defer collector.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiServer := api.NewServer(sched)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(cfg.GRPCAddr); err != nil {
			return fmt.Errorf("API server error: %w", err)
		}
		return nil
	})

	var dash *dashboard.Server
	if cfg.HTTPAddr != "" {
		health := api.NewHealthServer(sched, store)
		dash = dashboard.NewServer(sched, broker, health.GetHandler())
		g.Go(func() error {
			if err := dash.Start(cfg.HTTPAddr); err != nil {
				return fmt.Errorf("dashboard error: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if dash != nil {
			if err := dash.Shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("Dashboard shutdown failed")
			}
		}
		// Closing the subscriptions ends the agent streams so GracefulStop
		// does not wait on them.
		sched.Stop()
		metrics.UpdateComponent("scheduler", false, "stopped")
		apiServer.Stop()
		return nil
	})

	logger.Info().
		Str("grpc_addr", cfg.GRPCAddr).
		Str("http_addr", cfg.HTTPAddr).
		Str("data_dir", cfg.DataDir).
		Msg("Scheduler running")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("Shutdown complete")
	return nil
}
