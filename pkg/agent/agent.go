package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cuemby/flowsched/pkg/client"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Component names reported to the metrics health checker.
const (
	ComponentAgent   = "agent"
	ComponentRuntime = "runtime"
)

// Runtime runs task containers on the local machine
type Runtime interface {
	// Start launches the task. The channel receives the exit code.
	Start(ctx context.Context, task *types.Task) (<-chan uint32, error)
	// Stop kills the task and removes its container.
	Stop(ctx context.Context, taskID uuid.UUID) error
	// Pid returns the host PID of the task's main process.
	Pid(ctx context.Context, taskID uuid.UUID) (uint32, error)
}

// Sampler measures the machine and the processes of its tasks
type Sampler interface {
	Benchmark() (types.ResourceProfile, error)
	// Sample returns the usage of pid since the previous call. ok is
	// false on the first call for a pid.
	Sample(pid uint32) (p types.ResourceProfile, ok bool, err error)
	Forget(pid uint32)
}

// Config holds agent configuration
type Config struct {
	ServerID        uuid.UUID
	Hostname        string
	ProfileInterval time.Duration
	RetryInterval   time.Duration
	// Benchmark, when set, is submitted instead of measuring the machine.
	Benchmark *types.ResourceProfile
}

// Agent executes the commands the scheduler sends for one server and
// reports usage samples of the tasks it runs.
type Agent struct {
	cfg     Config
	client  *client.Client
	runtime Runtime
	sampler Sampler
	logger  zerolog.Logger

	mu      sync.Mutex
	running map[uuid.UUID]*runningTask
}

type runningTask struct {
	task    *types.Task
	pid     uint32
	removed bool
}

// NewAgent creates an agent for cfg.ServerID
func NewAgent(cfg Config, c *client.Client, rt Runtime, sampler Sampler) *Agent {
	if cfg.ProfileInterval <= 0 {
		cfg.ProfileInterval = 10 * time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 5 * time.Second
	}
	metrics.RegisterComponent(ComponentAgent, false, "connecting to scheduler")
	metrics.RegisterComponent(ComponentRuntime, true, "ready")
	return &Agent{
		cfg:     cfg,
		client:  c,
		runtime: rt,
		sampler: sampler,
		logger:  log.WithComponent("agent").With().Str("server_id", cfg.ServerID.String()).Logger(),
		running: make(map[uuid.UUID]*runningTask),
	}
}

// Run keeps a session with the scheduler open until ctx is cancelled,
// reconnecting after RetryInterval when a session fails.
func (a *Agent) Run(ctx context.Context) error {
	for {
		err := a.session(ctx)
		if ctx.Err() != nil {
			metrics.UpdateComponent(ComponentAgent, false, "stopped")
			return nil
		}
		if err != nil {
			metrics.UpdateComponent(ComponentAgent, false, err.Error())
		}
		a.logger.Warn().Err(err).Dur("retry_in", a.cfg.RetryInterval).Msg("Scheduler session ended")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(a.cfg.RetryInterval):
		}
	}
}

// session subscribes before registering so that commands sent by the
// registration pass are not lost.
func (a *Agent) session(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cmds, errs, err := a.client.SubscribeTasks(ctx, a.cfg.ServerID)
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	shouldBenchmark, err := a.client.RegisterServer(ctx, a.cfg.ServerID, a.cfg.Hostname)
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	a.logger.Info().Str("hostname", a.cfg.Hostname).Bool("benchmark", shouldBenchmark).Msg("Registered with scheduler")
	metrics.UpdateComponent(ComponentAgent, true, "registered")

	if shouldBenchmark {
		if err := a.benchmark(ctx); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.processCommands(gctx, cmds, errs) })
	g.Go(func() error { return a.profileLoop(gctx) })
	return g.Wait()
}

func (a *Agent) benchmark(ctx context.Context) error {
	var p types.ResourceProfile
	if a.cfg.Benchmark != nil {
		p = *a.cfg.Benchmark
	} else {
		var err error
		if p, err = a.sampler.Benchmark(); err != nil {
			return fmt.Errorf("failed to benchmark machine: %w", err)
		}
	}
	if err := a.client.SubmitBenchmark(ctx, a.cfg.ServerID, p); err != nil {
		return fmt.Errorf("failed to submit benchmark: %w", err)
	}
	a.logger.Info().Stringer("profile", p).Msg("Benchmark submitted")
	return nil
}

func (a *Agent) processCommands(ctx context.Context, cmds <-chan types.TaskCommand, errs <-chan error) error {
	for {
		select {
		case cmd, ok := <-cmds:
			if !ok {
				if err := <-errs; err != nil {
					return err
				}
				return errors.New("command stream closed")
			}
			a.handle(ctx, cmd)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a *Agent) handle(ctx context.Context, cmd types.TaskCommand) {
	logger := log.WithTaskID(cmd.Task.ID.String())
	switch cmd.State {
	case types.CommandRun:
		if err := a.runTask(ctx, cmd.Task); err != nil {
			logger.Error().Err(err).Str("name", cmd.Task.Name).Msg("Failed to run task")
		}
	case types.CommandRemove:
		if err := a.removeTask(ctx, cmd.Task.ID); err != nil {
			logger.Error().Err(err).Str("name", cmd.Task.Name).Msg("Failed to remove task")
		}
	default:
		logger.Warn().Str("state", string(cmd.State)).Msg("Unknown command")
	}
}

func (a *Agent) runTask(ctx context.Context, task *types.Task) error {
	a.mu.Lock()
	if _, ok := a.running[task.ID]; ok {
		a.mu.Unlock()
		return nil
	}
	rt := &runningTask{task: task}
	a.running[task.ID] = rt
	a.mu.Unlock()

	exitC, err := a.runtime.Start(ctx, task)
	if err != nil {
		a.mu.Lock()
		delete(a.running, task.ID)
		a.mu.Unlock()
		metrics.UpdateComponent(ComponentRuntime, false, err.Error())
		return err
	}
	metrics.UpdateComponent(ComponentRuntime, true, "ready")
	metrics.AgentTasksRunning.Inc()

	logger := log.WithTaskID(task.ID.String())
	logger.Info().Str("name", task.Name).Str("image", task.Image).Msg("Task started")

	go a.monitor(rt, exitC)
	return nil
}

// monitor reports the exit of a task that was not removed by the scheduler.
func (a *Agent) monitor(rt *runningTask, exitC <-chan uint32) {
	code, ok := <-exitC
	if !ok {
		return
	}

	a.mu.Lock()
	removed := rt.removed
	if !removed {
		a.forget(rt)
	}
	a.mu.Unlock()
	if removed {
		return
	}

	logger := log.WithTaskID(rt.task.ID.String())
	logger.Info().Uint32("exit_code", code).Msg("Task exited")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.client.FinishTask(ctx, rt.task.ID); err != nil {
		logger.Error().Err(err).Msg("Failed to report finished task")
	}
	if err := a.runtime.Stop(ctx, rt.task.ID); err != nil {
		logger.Warn().Err(err).Msg("Failed to clean up container")
	}
}

func (a *Agent) removeTask(ctx context.Context, taskID uuid.UUID) error {
	a.mu.Lock()
	rt, ok := a.running[taskID]
	if ok {
		rt.removed = true
		a.forget(rt)
	}
	a.mu.Unlock()

	if err := a.runtime.Stop(ctx, taskID); err != nil {
		return err
	}
	logger := log.WithTaskID(taskID.String())
	logger.Info().Bool("was_running", ok).Msg("Task removed")
	return nil
}

// forget drops rt from the running set. Callers hold a.mu.
func (a *Agent) forget(rt *runningTask) {
	delete(a.running, rt.task.ID)
	if rt.pid != 0 {
		a.sampler.Forget(rt.pid)
	}
	metrics.AgentTasksRunning.Dec()
}

// Running returns the IDs of the tasks the agent currently runs.
func (a *Agent) Running() []uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(a.running))
	for id := range a.running {
		ids = append(ids, id)
	}
	return ids
}
