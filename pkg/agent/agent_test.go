package agent

import (
	"context"
	"errors"
	"net"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/cuemby/flowsched/pkg/api"
	"github.com/cuemby/flowsched/pkg/client"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

type fakeRuntime struct {
	mu       sync.Mutex
	exits    map[uuid.UUID]chan uint32
	started  []uuid.UUID
	stopped  []uuid.UUID
	startErr error
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{exits: make(map[uuid.UUID]chan uint32)}
}

func (r *fakeRuntime) Start(_ context.Context, task *types.Task) (<-chan uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.startErr != nil {
		return nil, r.startErr
	}
	ch := make(chan uint32, 1)
	r.exits[task.ID] = ch
	r.started = append(r.started, task.ID)
	return ch, nil
}

func (r *fakeRuntime) Stop(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = append(r.stopped, id)
	if ch, ok := r.exits[id]; ok {
		delete(r.exits, id)
		close(ch)
	}
	return nil
}

func (r *fakeRuntime) Pid(_ context.Context, id uuid.UUID) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.exits[id]; !ok {
		return 0, errors.New("not running")
	}
	return 42, nil
}

func (r *fakeRuntime) exit(id uuid.UUID, code uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exits[id] <- code
}

func (r *fakeRuntime) failStarts(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.startErr = err
}

func (r *fakeRuntime) wasStarted(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.started, id)
}

func (r *fakeRuntime) wasStopped(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.stopped, id)
}

type fakeSampler struct {
	benchmark    types.ResourceProfile
	benchmarkErr error
	sample       types.ResourceProfile
}

func (s *fakeSampler) Benchmark() (types.ResourceProfile, error) {
	return s.benchmark, s.benchmarkErr
}

func (s *fakeSampler) Sample(uint32) (types.ResourceProfile, bool, error) {
	return s.sample, true, nil
}

func (s *fakeSampler) Forget(uint32) {}

func testSampler() *fakeSampler {
	return &fakeSampler{
		benchmark: types.ResourceProfile{IPC: decimal.NewFromInt(4), Memory: 4096, Network: 100, Disk: 100},
		sample:    types.ResourceProfile{IPC: decimal.NewFromFloat(0.5), Memory: 512, Network: 10, Disk: 10},
	}
}

type fixture struct {
	sched   *scheduler.Scheduler
	runtime *fakeRuntime
	agent   *Agent
	id      uuid.UUID
}

func newFixture(t *testing.T, cfg Config, sampler Sampler) *fixture {
	t.Helper()

	sched := scheduler.NewScheduler(scheduler.Config{
		SendTimeout:    50 * time.Millisecond,
		ResyncInterval: 20 * time.Millisecond,
	})
	sched.Start()
	srv := api.NewServer(sched)
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		sched.Stop()
		srv.Stop()
	})

	c, err := client.NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	if cfg.ServerID == uuid.Nil {
		cfg.ServerID = uuid.New()
	}
	cfg.Hostname = "node-a"
	if cfg.ProfileInterval == 0 {
		cfg.ProfileInterval = time.Hour
	}
	cfg.RetryInterval = 20 * time.Millisecond

	rt := newFakeRuntime()
	a := NewAgent(cfg, c, rt, sampler)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("agent did not stop")
		}
	})

	f := &fixture{sched: sched, runtime: rt, agent: a, id: cfg.ServerID}
	require.Eventually(t, f.ready, 5*time.Second, 5*time.Millisecond)
	return f
}

func (f *fixture) ready() bool {
	if !f.sched.Subscribed(f.id) {
		return false
	}
	for _, s := range f.sched.Servers() {
		if s.ID == f.id {
			return s.Profile != nil
		}
	}
	return false
}

func (f *fixture) submit(t *testing.T, task *types.Task) {
	t.Helper()
	require.NoError(t, f.sched.InsertTask(task))
	require.Eventually(t, func() bool { return f.runtime.wasStarted(task.ID) }, 5*time.Second, 5*time.Millisecond)
}

func TestAgentSubmitsBenchmark(t *testing.T) {
	f := newFixture(t, Config{}, testSampler())

	servers := f.sched.Servers()
	require.Len(t, servers, 1)
	assert.Equal(t, "node-a", servers[0].Hostname)
	assert.Equal(t, uint64(4096), servers[0].Profile.Memory)
}

func TestAgentUsesStaticBenchmark(t *testing.T) {
	static := types.ResourceProfile{IPC: decimal.NewFromInt(8), Memory: 1 << 30, Network: 1000, Disk: 1000}
	sampler := testSampler()
	sampler.benchmarkErr = errors.New("no procfs")

	f := newFixture(t, Config{Benchmark: &static}, sampler)

	servers := f.sched.Servers()
	require.Len(t, servers, 1)
	assert.Equal(t, uint64(1<<30), servers[0].Profile.Memory)
}

func TestAgentReportsTaskExit(t *testing.T) {
	f := newFixture(t, Config{}, testSampler())

	task := types.NewTask("web", "busybox", "", nil, false)
	f.submit(t, task)
	assert.Contains(t, f.agent.Running(), task.ID)

	f.runtime.exit(task.ID, 0)

	require.Eventually(t, func() bool {
		got, err := f.sched.Task(task.ID)
		return err == nil && !got.Schedulable
	}, 5*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		return len(f.agent.Running()) == 0 && f.runtime.wasStopped(task.ID)
	}, 5*time.Second, 5*time.Millisecond)
}

func TestAgentRemovesTask(t *testing.T) {
	f := newFixture(t, Config{}, testSampler())

	task := types.NewTask("web", "busybox", "", nil, false)
	f.submit(t, task)

	require.NoError(t, f.sched.FinishTask(task.ID))

	require.Eventually(t, func() bool {
		return len(f.agent.Running()) == 0 && f.runtime.wasStopped(task.ID)
	}, 5*time.Second, 5*time.Millisecond)
}

func TestAgentStreamsProfiles(t *testing.T) {
	f := newFixture(t, Config{ProfileInterval: 10 * time.Millisecond}, testSampler())

	soft := types.NewTask("batch", "busybox", "", nil, false)
	f.submit(t, soft)

	require.Eventually(t, func() bool {
		got, err := f.sched.Task(soft.ID)
		return err == nil && len(got.Profiles[f.id]) > 0
	}, 5*time.Second, 10*time.Millisecond)

	got, err := f.sched.Task(soft.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(512), got.Profiles[f.id][0].Memory)
}

func TestAgentDoesNotProfileRealtimeTasks(t *testing.T) {
	f := newFixture(t, Config{ProfileInterval: 10 * time.Millisecond}, testSampler())

	rt := types.NewTask("rt", "busybox", "", nil, true)
	f.submit(t, rt)

	time.Sleep(100 * time.Millisecond)
	got, err := f.sched.Task(rt.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Profiles[f.id])
}
