package client

import (
	"context"
	"fmt"
	"time"

	"github.com/cuemby/flowsched/api/proto"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const requestTimeout = 10 * time.Second

// Client wraps the flowsched gRPC client for the CLI and the agent
type Client struct {
	conn   *grpc.ClientConn
	client proto.SchedulerClient
}

// NewClient connects to the scheduler at addr. Extra dial options are
// appended after the defaults.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to scheduler: %w", err)
	}

	return &Client{
		conn:   conn,
		client: proto.NewSchedulerClient(conn),
	}, nil
}

// Close closes the client connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// RegisterServer registers a machine and reports whether it should benchmark
func (c *Client) RegisterServer(ctx context.Context, id uuid.UUID, hostname string) (bool, error) {
	resp, err := c.client.RegisterServer(ctx, &proto.RegisterServerRequest{
		MachineId: id.String(),
		Hostname:  hostname,
	})
	if err != nil {
		return false, err
	}
	return resp.ShouldBenchmark, nil
}

// SubmitBenchmark sends the benchmark profile of a machine
func (c *Client) SubmitBenchmark(ctx context.Context, id uuid.UUID, p types.ResourceProfile) error {
	_, err := c.client.SubmitBenchmark(ctx, &proto.SubmitBenchmarkRequest{
		MachineId: id.String(),
		Profile:   proto.ProfileToProto(&p),
	})
	return err
}

// SubscribeTasks opens the command stream of a machine. Commands are sent
// on the returned channel until ctx is cancelled or the stream fails; the
// error channel then receives the reason and both channels are closed.
func (c *Client) SubscribeTasks(ctx context.Context, id uuid.UUID) (<-chan types.TaskCommand, <-chan error, error) {
	stream, err := c.client.SubscribeTasks(ctx, &proto.SubscribeTasksRequest{MachineId: id.String()})
	if err != nil {
		return nil, nil, err
	}

	cmds := make(chan types.TaskCommand)
	errs := make(chan error, 1)
	go func() {
		defer close(cmds)
		defer close(errs)
		for {
			msg, err := stream.Recv()
			if err != nil {
				errs <- err
				return
			}
			task, err := proto.TaskFromProto(msg.Task)
			if err != nil {
				errs <- fmt.Errorf("malformed command: %w", err)
				return
			}
			select {
			case cmds <- types.TaskCommand{Task: task, State: types.CommandState(msg.State)}:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()
	return cmds, errs, nil
}

// ProfileStream sends task samples over one client stream
type ProfileStream struct {
	stream grpc.ClientStreamingClient[proto.TaskProfile, proto.StreamTaskProfilesResponse]
	server uuid.UUID
}

// StreamTaskProfiles opens a profile stream for the tasks of one machine
func (c *Client) StreamTaskProfiles(ctx context.Context, id uuid.UUID) (*ProfileStream, error) {
	stream, err := c.client.StreamTaskProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return &ProfileStream{stream: stream, server: id}, nil
}

// Send streams one sample of taskID
func (s *ProfileStream) Send(taskID uuid.UUID, p types.ResourceProfile) error {
	return s.stream.Send(&proto.TaskProfile{
		MachineId: s.server.String(),
		TaskId:    taskID.String(),
		Profile:   proto.ProfileToProto(&p),
	})
}

// Close ends the stream and returns how many samples were recorded
func (s *ProfileStream) Close() (int64, error) {
	resp, err := s.stream.CloseAndRecv()
	if err != nil {
		return 0, err
	}
	return resp.Received, nil
}

// FinishTask reports that a task exited
func (c *Client) FinishTask(ctx context.Context, taskID uuid.UUID) error {
	_, err := c.client.FinishTask(ctx, &proto.FinishTaskRequest{TaskId: taskID.String()})
	return err
}

// SubmitTask submits a new task
func (c *Client) SubmitTask(req *proto.SubmitTaskRequest) (*proto.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.SubmitTask(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Task, nil
}

// ListTasks lists all tasks
func (c *Client) ListTasks() ([]*proto.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.ListTasks(ctx, &proto.ListTasksRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// ListServers lists all servers
func (c *Client) ListServers() ([]*proto.Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.client.ListServers(ctx, &proto.ListServersRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Servers, nil
}

// RemoveServer removes a server from the catalogue
func (c *Client) RemoveServer(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	_, err := c.client.RemoveServer(ctx, &proto.RemoveServerRequest{MachineId: id})
	return err
}

// GetGraph fetches the flow network of the latest scheduling pass
func (c *Client) GetGraph() (*proto.GetGraphResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	return c.client.GetGraph(ctx, &proto.GetGraphRequest{})
}
