package scheduler

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/cuemby/flowsched/pkg/events"
	"github.com/cuemby/flowsched/pkg/flow"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/storage"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, cfg Config) *Scheduler {
	t.Helper()
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 20 * time.Millisecond
	}
	s := NewScheduler(cfg)
	t.Cleanup(s.Stop)
	return s
}

func profile(ipc int64, mem, net, disk uint64) types.ResourceProfile {
	return types.ResourceProfile{IPC: decimal.NewFromInt(ipc), Memory: mem, Network: net, Disk: disk}
}

func request(mem uint64) *types.ResourceProfile {
	return &types.ResourceProfile{Memory: mem}
}

// addServer registers and subscribes a server, benchmarking it when p is set.
func addServer(t *testing.T, s *Scheduler, hostname string, p *types.ResourceProfile) (uuid.UUID, <-chan types.TaskCommand) {
	t.Helper()
	id := uuid.New()
	_, err := s.RegisterServer(id, hostname)
	require.NoError(t, err)

	ch, cancel := s.SubscribeTasks(id)
	t.Cleanup(cancel)

	if p != nil {
		require.NoError(t, s.SubmitBenchmark(id, *p))
	}
	return id, ch
}

func submit(t *testing.T, s *Scheduler, name string, req *types.ResourceProfile) *types.Task {
	t.Helper()
	task := types.NewTask(name, "docker.io/library/busybox:latest", "sleep 60", req, false)
	require.NoError(t, s.InsertTask(task))
	return task
}

// drain returns every command already buffered on ch.
func drain(ch <-chan types.TaskCommand) []types.TaskCommand {
	var out []types.TaskCommand
	for {
		select {
		case cmd, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, cmd)
		default:
			return out
		}
	}
}

type wantCmd struct {
	id    uuid.UUID
	state types.CommandState
}

func assertCommands(t *testing.T, ch <-chan types.TaskCommand, want ...wantCmd) {
	t.Helper()
	got := drain(ch)
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.id, got[i].Task.ID, "command %d", i)
		assert.Equal(t, w.state, got[i].State, "command %d", i)
	}
}

func TestRegisterServer(t *testing.T) {
	s := newTestScheduler(t, Config{})
	id := uuid.New()

	needsBenchmark, err := s.RegisterServer(id, "node-a")
	require.NoError(t, err)
	assert.True(t, needsBenchmark)

	require.NoError(t, s.SubmitBenchmark(id, profile(2, 1024, 100, 100)))

	needsBenchmark, err = s.RegisterServer(id, "node-a2")
	require.NoError(t, err)
	assert.False(t, needsBenchmark)

	servers := s.Servers()
	require.Len(t, servers, 1)
	assert.Equal(t, "node-a2", servers[0].Hostname)
	require.NotNil(t, servers[0].Profile)
	assert.Equal(t, uint64(1024), servers[0].Profile.Memory)
}

func TestRegisterServerUsesCachedBenchmark(t *testing.T) {
	store := storage.NewMemoryStore()
	id := uuid.New()

	first := newTestScheduler(t, Config{Store: store})
	_, err := first.RegisterServer(id, "node-a")
	require.NoError(t, err)
	require.NoError(t, first.SubmitBenchmark(id, profile(1, 512, 10, 10)))

	second := newTestScheduler(t, Config{Store: store})
	needsBenchmark, err := second.RegisterServer(id, "node-a")
	require.NoError(t, err)
	assert.False(t, needsBenchmark)

	servers := second.Servers()
	require.Len(t, servers, 1)
	require.NotNil(t, servers[0].Profile)
	assert.Equal(t, uint64(512), servers[0].Profile.Memory)
}

func TestSubmitBenchmarkErrors(t *testing.T) {
	s := newTestScheduler(t, Config{})

	err := s.SubmitBenchmark(uuid.New(), profile(1, 1, 1, 1))
	assert.ErrorIs(t, err, ErrServerNotFound)

	id, _ := addServer(t, s, "node-a", nil)
	err = s.SubmitBenchmark(id, profile(-1, 1, 1, 1))
	assert.ErrorIs(t, err, types.ErrInvalidProfile)
}

func TestInsertTaskValidation(t *testing.T) {
	s := newTestScheduler(t, Config{})

	tests := []struct {
		name string
		task *types.Task
		want error
	}{
		{"nil", nil, ErrInvalidTask},
		{"no name", &types.Task{Image: "busybox"}, ErrInvalidTask},
		{"no image", &types.Task{Name: "a"}, ErrInvalidTask},
		{"negative request", &types.Task{Name: "a", Image: "busybox", Request: &types.ResourceProfile{IPC: decimal.NewFromInt(-1)}}, types.ErrInvalidProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, s.InsertTask(tt.task), tt.want)
		})
	}

	submit(t, s, "web", nil)
	err := s.InsertTask(types.NewTask("web", "busybox", "", nil, false))
	assert.ErrorIs(t, err, ErrTaskExists)
	assert.Len(t, s.Tasks(), 1)
}

func TestSoftTaskPlacement(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(2, 1000, 1000, 1000)
	srv, ch := addServer(t, s, "node-a", &p)

	task := submit(t, s, "web", nil)
	assertCommands(t, ch, wantCmd{task.ID, types.CommandRun})

	placed, ok := s.Placement(task.ID)
	require.True(t, ok)
	assert.Equal(t, srv, placed)

	// A pass over an unchanged catalogue sends nothing.
	require.NoError(t, s.Reschedule())
	assertCommands(t, ch)
}

func TestUnprofiledServerIsNotUsed(t *testing.T) {
	s := newTestScheduler(t, Config{})
	srv, ch := addServer(t, s, "node-a", nil)

	task := submit(t, s, "web", nil)
	assertCommands(t, ch)
	_, ok := s.Placement(task.ID)
	assert.False(t, ok)

	require.NoError(t, s.SubmitBenchmark(srv, profile(1, 100, 100, 100)))
	assertCommands(t, ch, wantCmd{task.ID, types.CommandRun})
}

func TestRequestNeedsDominatingServer(t *testing.T) {
	s := newTestScheduler(t, Config{})
	small := profile(1, 100, 100, 100)
	large := profile(1, 200, 100, 100)
	_, smallCh := addServer(t, s, "small", &small)
	largeID, largeCh := addServer(t, s, "large", &large)

	fits := submit(t, s, "fits", request(150))
	assertCommands(t, largeCh, wantCmd{fits.ID, types.CommandRun})
	assertCommands(t, smallCh)

	placed, ok := s.Placement(fits.ID)
	require.True(t, ok)
	assert.Equal(t, largeID, placed)

	tooBig := submit(t, s, "too-big", request(300))
	assertCommands(t, largeCh)
	assertCommands(t, smallCh)
	_, ok = s.Placement(tooBig.ID)
	assert.False(t, ok)

	snap := s.Graph()
	require.NotNil(t, snap)
	for _, e := range snap.Edges {
		assert.GreaterOrEqual(t, e.Flow, int64(0))
		assert.LessOrEqual(t, e.Flow, e.Capacity)
		assert.GreaterOrEqual(t, int64(e.Cost), int64(0))
	}
}

func TestAdmissionControl(t *testing.T) {
	s := newTestScheduler(t, Config{})
	srv, ch := addServer(t, s, "node-a", nil)

	// Each request fits the server alone but not together.
	first := submit(t, s, "first", request(60))
	second := submit(t, s, "second", request(60))
	assertCommands(t, ch)

	require.NoError(t, s.SubmitBenchmark(srv, profile(1, 100, 100, 100)))
	assertCommands(t, ch, wantCmd{first.ID, types.CommandRun})

	_, ok := s.Placement(second.ID)
	assert.False(t, ok)

	require.NoError(t, s.Reschedule())
	assertCommands(t, ch)
}

func TestSoftTaskStaysOnCurrentServer(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	first, firstCh := addServer(t, s, "node-a", &p)

	task := submit(t, s, "web", nil)
	assertCommands(t, firstCh, wantCmd{task.ID, types.CommandRun})

	bigger := profile(4, 400, 400, 400)
	_, secondCh := addServer(t, s, "node-b", &bigger)
	assertCommands(t, firstCh)
	assertCommands(t, secondCh)

	placed, ok := s.Placement(task.ID)
	require.True(t, ok)
	assert.Equal(t, first, placed)
}

func TestFinishTaskSendsRemove(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	_, ch := addServer(t, s, "node-a", &p)

	task := submit(t, s, "job", nil)
	assertCommands(t, ch, wantCmd{task.ID, types.CommandRun})

	require.NoError(t, s.FinishTask(task.ID))
	assertCommands(t, ch, wantCmd{task.ID, types.CommandRemove})
	_, ok := s.Placement(task.ID)
	assert.False(t, ok)

	// Finishing twice is a no-op.
	require.NoError(t, s.FinishTask(task.ID))
	assertCommands(t, ch)

	assert.ErrorIs(t, s.FinishTask(uuid.New()), ErrTaskNotFound)
}

func TestResubmitFinishedTask(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	srv, ch := addServer(t, s, "node-a", &p)

	old := submit(t, s, "job", nil)
	require.NoError(t, s.InsertProfile(srv, old.ID, profile(1, 10, 10, 10)))
	require.NoError(t, s.FinishTask(old.ID))
	drain(ch)

	fresh := submit(t, s, "job", nil)
	assert.NotEqual(t, old.ID, fresh.ID)
	assertCommands(t, ch, wantCmd{fresh.ID, types.CommandRun})

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, fresh.ID, tasks[0].ID)
	assert.Len(t, tasks[0].Profiles[srv], 1)

	_, err := s.Task(old.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUndeliveredRemoveIsRetried(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	id := uuid.New()
	_, err := s.RegisterServer(id, "node-a")
	require.NoError(t, err)
	require.NoError(t, s.SubmitBenchmark(id, p))

	ch, cancel := s.SubscribeTasks(id)
	old := submit(t, s, "job", nil)
	assertCommands(t, ch, wantCmd{old.ID, types.CommandRun})
	cancel()

	// Without a subscription the Remove fails and the placement is kept.
	err = s.FinishTask(old.ID)
	require.ErrorIs(t, err, ErrNoSubscription)
	placed, ok := s.Placement(old.ID)
	require.True(t, ok)
	assert.Equal(t, id, placed)

	fresh := types.NewTask("job", "busybox", "", nil, false)
	err = s.InsertTask(fresh)
	require.ErrorIs(t, err, ErrNoSubscription)

	ch, cancel = s.SubscribeTasks(id)
	t.Cleanup(cancel)
	assertCommands(t, ch)

	require.NoError(t, s.Reschedule())
	assertCommands(t, ch,
		wantCmd{old.ID, types.CommandRemove},
		wantCmd{fresh.ID, types.CommandRun},
	)
	_, ok = s.Placement(old.ID)
	assert.False(t, ok)
}

func TestSubscribeReplaysPlacedTasks(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	srv, first := addServer(t, s, "node-a", &p)

	task := submit(t, s, "web", nil)
	assertCommands(t, first, wantCmd{task.ID, types.CommandRun})

	second, cancel := s.SubscribeTasks(srv)
	defer cancel()

	_, open := <-first
	assert.False(t, open, "replaced subscription is closed")
	assertCommands(t, second, wantCmd{task.ID, types.CommandRun})
	assert.True(t, s.Subscribed(srv))

	cancel()
	assert.False(t, s.Subscribed(srv))
	cancel()
}

func TestRemoveServerReschedules(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	first, firstCh := addServer(t, s, "node-a", &p)

	task := submit(t, s, "web", nil)
	assertCommands(t, firstCh, wantCmd{task.ID, types.CommandRun})

	second, secondCh := addServer(t, s, "node-b", &p)
	assertCommands(t, secondCh)

	require.NoError(t, s.RemoveServer(first))
	assertCommands(t, firstCh, wantCmd{task.ID, types.CommandRemove})
	_, open := <-firstCh
	assert.False(t, open)

	assertCommands(t, secondCh, wantCmd{task.ID, types.CommandRun})
	placed, ok := s.Placement(task.ID)
	require.True(t, ok)
	assert.Equal(t, second, placed)

	assert.ErrorIs(t, s.RemoveServer(first), ErrServerNotFound)
}

func TestRemoveServerLogsUndeliveredRemove(t *testing.T) {
	var buf bytes.Buffer
	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() { log.Init(log.Config{Level: log.InfoLevel, Output: io.Discard}) })

	s := newTestScheduler(t, Config{CommandBuffer: 1})
	p := profile(1, 100, 100, 100)
	id, _ := addServer(t, s, "node-a", &p)
	// The Run command fills the buffer, so the Remove times out.
	task := submit(t, s, "web", nil)

	require.NoError(t, s.RemoveServer(id))
	_, ok := s.Placement(task.ID)
	assert.False(t, ok)

	var found bool
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["message"] != "Failed to deliver remove to removed server" {
			continue
		}
		found = true
		assert.Equal(t, "warn", entry["level"])
		assert.Equal(t, id.String(), entry["server_id"])
		assert.Equal(t, task.ID.String(), entry["task_id"])
		assert.Contains(t, entry["error"], ErrSendTimeout.Error())
	}
	assert.True(t, found, "no warning for the undelivered remove")
}

func TestUnscheduledCostExceedsAnyPlacement(t *testing.T) {
	assert.Equal(t, int64(400), types.MaxProfile().Cost())
	assert.Equal(t, flow.Cost(800), UnscheduledCost())
	assert.Greater(t, UnscheduledCost(), flow.Cost(types.MaxProfile().Cost()))
}

func TestMissingSubscriptionKeepsTaskUnplaced(t *testing.T) {
	s := newTestScheduler(t, Config{})
	id := uuid.New()
	_, err := s.RegisterServer(id, "node-a")
	require.NoError(t, err)
	require.NoError(t, s.SubmitBenchmark(id, profile(1, 100, 100, 100)))

	task := types.NewTask("web", "busybox", "", nil, false)
	err = s.InsertTask(task)
	require.ErrorIs(t, err, ErrNoSubscription)
	_, ok := s.Placement(task.ID)
	assert.False(t, ok)

	ch, cancel := s.SubscribeTasks(id)
	defer cancel()
	require.NoError(t, s.Reschedule())
	assertCommands(t, ch, wantCmd{task.ID, types.CommandRun})
}

func TestSendTimeout(t *testing.T) {
	s := newTestScheduler(t, Config{CommandBuffer: 1})
	p := profile(1, 100, 100, 100)
	_, ch := addServer(t, s, "node-a", &p)

	submit(t, s, "a", nil)
	err := s.InsertTask(types.NewTask("b", "busybox", "", nil, false))
	require.ErrorIs(t, err, ErrSendTimeout)
	assert.Len(t, drain(ch), 1)
}

func TestGraphSnapshot(t *testing.T) {
	build := func() *GraphSnapshot {
		s := newTestScheduler(t, Config{})
		small := profile(1, 100, 100, 100)
		large := profile(2, 200, 200, 200)
		addServer(t, s, "small", &small)
		addServer(t, s, "large", &large)
		submit(t, s, "soft", nil)
		submit(t, s, "hard", request(120))
		return s.Graph()
	}

	a, b := build(), build()
	require.NotNil(t, a)
	assert.Equal(t, a.Dot, b.Dot)
	assert.Equal(t, a.Stats, b.Stats)
	assert.Contains(t, a.Dot, `[label="Cluster"]`)
	assert.Contains(t, a.Dot, `[label="Unscheduled"]`)

	keys := make(map[string]bool)
	for _, n := range a.Nodes {
		keys[n.Key] = true
	}
	assert.True(t, keys["virtual/Source"])
	assert.True(t, keys["virtual/Sink"])
	assert.True(t, keys["virtual/Cluster"])
	assert.Equal(t, int64(2), a.Stats.Flow)
}

func TestWatchGraph(t *testing.T) {
	s := newTestScheduler(t, Config{})
	ch, cancel := s.WatchGraph()
	defer cancel()

	require.NoError(t, s.Reschedule())

	select {
	case snap := <-ch:
		require.NotNil(t, snap)
		assert.Equal(t, uint64(1), snap.Pass)
	case <-time.After(time.Second):
		t.Fatal("no snapshot")
	}
}

func TestCounts(t *testing.T) {
	s := newTestScheduler(t, Config{})
	p := profile(1, 100, 100, 100)
	addServer(t, s, "node-a", &p)
	addServer(t, s, "node-b", nil)

	submit(t, s, "placed", nil)
	submit(t, s, "unscheduled", request(1000))
	done := submit(t, s, "done", nil)
	require.NoError(t, s.FinishTask(done.ID))

	c := s.Counts()
	assert.Equal(t, 1, c.ServersProfiled)
	assert.Equal(t, 1, c.ServersPending)
	assert.Equal(t, 1, c.TasksPlaced)
	assert.Equal(t, 1, c.TasksUnscheduled)
	assert.Equal(t, 1, c.TasksFinished)
	assert.Equal(t, 2, c.Subscriptions)
}

func TestPublishesPlacementEvents(t *testing.T) {
	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()
	sub := broker.Subscribe()

	s := newTestScheduler(t, Config{Events: broker})
	p := profile(1, 100, 100, 100)
	addServer(t, s, "node-a", &p)
	task := submit(t, s, "web", nil)

	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-sub:
			if ev.Type == events.EventTaskPlaced {
				assert.Equal(t, task.ID.String(), ev.Metadata["task_id"])
				return
			}
		case <-deadline:
			t.Fatal("no task.placed event")
		}
	}
}
