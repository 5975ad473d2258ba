package api

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/cuemby/flowsched/api/proto"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newTestServer(t *testing.T) (proto.SchedulerClient, *scheduler.Scheduler) {
	t.Helper()

	sched := scheduler.NewScheduler(scheduler.Config{SendTimeout: 50 * time.Millisecond})
	srv := NewServer(sched)
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		sched.Stop()
		srv.Stop()
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return proto.NewSchedulerClient(conn), sched
}

var testProfile = &proto.Profile{Ipc: "1.5", Memory: 1024, Network: 100, Disk: 100}

func registerServer(t *testing.T, ctx context.Context, c proto.SchedulerClient) uuid.UUID {
	t.Helper()
	id := uuid.New()
	resp, err := c.RegisterServer(ctx, &proto.RegisterServerRequest{MachineId: id.String(), Hostname: "node-a"})
	require.NoError(t, err)
	assert.True(t, resp.ShouldBenchmark)

	_, err = c.SubmitBenchmark(ctx, &proto.SubmitBenchmarkRequest{MachineId: id.String(), Profile: testProfile})
	require.NoError(t, err)
	return id
}

func TestSubscribeReceivesCommands(t *testing.T) {
	c, sched := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := registerServer(t, ctx, c)

	stream, err := c.SubscribeTasks(ctx, &proto.SubscribeTasksRequest{MachineId: id.String()})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return sched.Subscribed(id) }, time.Second, 5*time.Millisecond)

	submitted, err := c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "web", Image: "busybox"})
	require.NoError(t, err)
	assert.Equal(t, id.String(), submitted.Task.ServerId)

	cmd, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "run", cmd.State)
	assert.Equal(t, submitted.Task.Id, cmd.Task.Id)
	assert.Equal(t, "web", cmd.Task.Name)

	_, err = c.FinishTask(ctx, &proto.FinishTaskRequest{TaskId: submitted.Task.Id})
	require.NoError(t, err)

	cmd, err = stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "remove", cmd.State)
}

func TestErrorCodes(t *testing.T) {
	c, _ := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := registerServer(t, ctx, c)
	_, err := c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "web", Image: "busybox"})
	require.NoError(t, err)

	tests := []struct {
		name string
		call func() error
		want codes.Code
	}{
		{
			name: "malformed machine id",
			call: func() error {
				_, err := c.RegisterServer(ctx, &proto.RegisterServerRequest{MachineId: "nope"})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "unknown server",
			call: func() error {
				_, err := c.SubmitBenchmark(ctx, &proto.SubmitBenchmarkRequest{MachineId: uuid.NewString(), Profile: testProfile})
				return err
			},
			want: codes.NotFound,
		},
		{
			name: "negative ipc",
			call: func() error {
				_, err := c.SubmitBenchmark(ctx, &proto.SubmitBenchmarkRequest{MachineId: id.String(), Profile: &proto.Profile{Ipc: "-1"}})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "missing profile",
			call: func() error {
				_, err := c.SubmitBenchmark(ctx, &proto.SubmitBenchmarkRequest{MachineId: id.String()})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "missing image",
			call: func() error {
				_, err := c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "db"})
				return err
			},
			want: codes.InvalidArgument,
		},
		{
			name: "duplicate task",
			call: func() error {
				_, err := c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "web", Image: "busybox"})
				return err
			},
			want: codes.AlreadyExists,
		},
		{
			name: "unknown task",
			call: func() error {
				_, err := c.FinishTask(ctx, &proto.FinishTaskRequest{TaskId: uuid.NewString()})
				return err
			},
			want: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}

func TestDeliveryFailureIsNotAnError(t *testing.T) {
	c, _ := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	registerServer(t, ctx, c)

	// Nobody subscribed, so the Run cannot be delivered.
	resp, err := c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "web", Image: "busybox"})
	require.NoError(t, err)
	assert.Empty(t, resp.Task.ServerId)
}

func TestStreamTaskProfiles(t *testing.T) {
	c, sched := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := registerServer(t, ctx, c)
	submitted, err := c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "web", Image: "busybox"})
	require.NoError(t, err)

	stream, err := c.StreamTaskProfiles(ctx)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		require.NoError(t, stream.Send(&proto.TaskProfile{
			MachineId: id.String(),
			TaskId:    submitted.Task.Id,
			Profile:   &proto.Profile{Ipc: "0.5", Memory: 64},
		}))
	}
	resp, err := stream.CloseAndRecv()
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Received)

	task, err := sched.Task(uuid.MustParse(submitted.Task.Id))
	require.NoError(t, err)
	assert.Len(t, task.Profiles[id], 2)
}

func TestListAndGraph(t *testing.T) {
	c, _ := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.GetGraph(ctx, &proto.GetGraphRequest{})
	assert.Equal(t, codes.Unavailable, status.Code(err))

	id := registerServer(t, ctx, c)
	_, err = c.SubmitTask(ctx, &proto.SubmitTaskRequest{Name: "web", Image: "busybox", Request: &proto.Profile{Memory: 512}})
	require.NoError(t, err)

	servers, err := c.ListServers(ctx, &proto.ListServersRequest{})
	require.NoError(t, err)
	require.Len(t, servers.Servers, 1)
	assert.Equal(t, id.String(), servers.Servers[0].Id)
	assert.Equal(t, "1.5", servers.Servers[0].Profile.Ipc)
	assert.False(t, servers.Servers[0].Subscribed)

	tasks, err := c.ListTasks(ctx, &proto.ListTasksRequest{})
	require.NoError(t, err)
	require.Len(t, tasks.Tasks, 1)
	assert.Equal(t, uint64(512), tasks.Tasks[0].Request.Memory)

	graph, err := c.GetGraph(ctx, &proto.GetGraphRequest{})
	require.NoError(t, err)
	assert.Contains(t, graph.Dot, "digraph")
	assert.Equal(t, int64(1), graph.Flow)
	require.NotEmpty(t, graph.Nodes)
	assert.Equal(t, "virtual/Source", graph.Nodes[0].Key)

	_, err = c.RemoveServer(ctx, &proto.RemoveServerRequest{MachineId: id.String()})
	require.NoError(t, err)
	servers, err = c.ListServers(ctx, &proto.ListServersRequest{})
	require.NoError(t, err)
	assert.Empty(t, servers.Servers)
}
