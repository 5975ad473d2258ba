package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/cuemby/flowsched/api/proto"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/scheduler"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ComponentAPI is the health component of the gRPC API.
const ComponentAPI = "api"

// Server implements the flowsched.v1.Scheduler gRPC service
type Server struct {
	proto.UnimplementedSchedulerServer
	scheduler *scheduler.Scheduler
	grpc      *grpc.Server
	logger    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(s *scheduler.Scheduler) *Server {
	srv := &Server{
		scheduler: s,
		grpc: grpc.NewServer(
			grpc.ChainUnaryInterceptor(MetricsInterceptor()),
			grpc.ChainStreamInterceptor(StreamLoggingInterceptor()),
		),
		logger: log.WithComponent("api"),
	}
	proto.RegisterSchedulerServer(srv.grpc, srv)
	return srv
}

// Start listens on addr and serves until Stop is called
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve accepts connections on lis. The "api" health component is
// healthy while it serves.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("gRPC API listening")
	metrics.RegisterComponent(ComponentAPI, true, "listening on "+lis.Addr().String())
	err := s.grpc.Serve(lis)
	metrics.UpdateComponent(ComponentAPI, false, "stopped")
	return err
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
}

// RegisterServer registers an agent and tells it whether to benchmark
func (s *Server) RegisterServer(ctx context.Context, req *proto.RegisterServerRequest) (*proto.RegisterServerResponse, error) {
	id, err := parseID("machine_id", req.MachineId)
	if err != nil {
		return nil, err
	}

	shouldBenchmark, err := s.scheduler.RegisterServer(id, req.Hostname)
	if err := s.toStatus(err); err != nil {
		return nil, err
	}
	return &proto.RegisterServerResponse{ShouldBenchmark: shouldBenchmark}, nil
}

// SubmitBenchmark records the benchmark profile of a registered server
func (s *Server) SubmitBenchmark(ctx context.Context, req *proto.SubmitBenchmarkRequest) (*proto.SubmitBenchmarkResponse, error) {
	id, err := parseID("machine_id", req.MachineId)
	if err != nil {
		return nil, err
	}
	p, err := parseProfile(req.Profile)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, status.Error(codes.InvalidArgument, "profile is required")
	}

	if err := s.toStatus(s.scheduler.SubmitBenchmark(id, *p)); err != nil {
		return nil, err
	}
	return &proto.SubmitBenchmarkResponse{}, nil
}

// SubscribeTasks streams task commands to the agent of one server until
// the client goes away or the subscription is replaced
func (s *Server) SubscribeTasks(req *proto.SubscribeTasksRequest, stream grpc.ServerStreamingServer[proto.TaskCommand]) error {
	id, err := parseID("machine_id", req.MachineId)
	if err != nil {
		return err
	}

	cmds, cancel := s.scheduler.SubscribeTasks(id)
	defer cancel()

	logger := log.WithServerID(id.String())
	logger.Info().Msg("Agent subscribed")

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Agent unsubscribed")
			return status.FromContextError(ctx.Err()).Err()
		case cmd, ok := <-cmds:
			if !ok {
				return status.Error(codes.Unavailable, "subscription closed by scheduler")
			}
			if err := stream.Send(proto.CommandToProto(cmd, id.String())); err != nil {
				return err
			}
		}
	}
}

// StreamTaskProfiles receives task samples until the client closes the stream
func (s *Server) StreamTaskProfiles(stream grpc.ClientStreamingServer[proto.TaskProfile, proto.StreamTaskProfilesResponse]) error {
	var received int64
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return stream.SendAndClose(&proto.StreamTaskProfilesResponse{Received: received})
		}
		if err != nil {
			return err
		}

		serverID, err := parseID("machine_id", msg.MachineId)
		if err != nil {
			return err
		}
		taskID, err := parseID("task_id", msg.TaskId)
		if err != nil {
			return err
		}
		p, err := parseProfile(msg.Profile)
		if err != nil {
			return err
		}
		if p == nil {
			return status.Error(codes.InvalidArgument, "profile is required")
		}

		if err := s.toStatus(s.scheduler.InsertProfile(serverID, taskID, *p)); err != nil {
			return err
		}
		received++
	}
}

// FinishTask marks a task as finished
func (s *Server) FinishTask(ctx context.Context, req *proto.FinishTaskRequest) (*proto.FinishTaskResponse, error) {
	id, err := parseID("task_id", req.TaskId)
	if err != nil {
		return nil, err
	}
	if err := s.toStatus(s.scheduler.FinishTask(id)); err != nil {
		return nil, err
	}
	return &proto.FinishTaskResponse{}, nil
}

// SubmitTask adds a task to the catalogue
func (s *Server) SubmitTask(ctx context.Context, req *proto.SubmitTaskRequest) (*proto.SubmitTaskResponse, error) {
	if req.Name == "" || req.Image == "" {
		return nil, status.Error(codes.InvalidArgument, "name and image are required")
	}
	request, err := parseProfile(req.Request)
	if err != nil {
		return nil, err
	}

	task := types.NewTask(req.Name, req.Image, req.Command, request, req.Realtime)
	if err := s.toStatus(s.scheduler.InsertTask(task)); err != nil {
		return nil, err
	}

	serverID := ""
	if id, ok := s.scheduler.Placement(task.ID); ok {
		serverID = id.String()
	}
	return &proto.SubmitTaskResponse{Task: proto.TaskToProto(task, serverID)}, nil
}

// ListTasks returns every task with its current placement
func (s *Server) ListTasks(ctx context.Context, req *proto.ListTasksRequest) (*proto.ListTasksResponse, error) {
	schedule := s.scheduler.Schedule()
	tasks := s.scheduler.Tasks()

	out := make([]*proto.Task, 0, len(tasks))
	for _, t := range tasks {
		serverID := ""
		if id, ok := schedule[t.ID]; ok {
			serverID = id.String()
		}
		out = append(out, proto.TaskToProto(t, serverID))
	}
	return &proto.ListTasksResponse{Tasks: out}, nil
}

// ListServers returns every registered server
func (s *Server) ListServers(ctx context.Context, req *proto.ListServersRequest) (*proto.ListServersResponse, error) {
	servers := s.scheduler.Servers()

	out := make([]*proto.Server, 0, len(servers))
	for _, srv := range servers {
		out = append(out, &proto.Server{
			Id:         srv.ID.String(),
			Hostname:   srv.Hostname,
			Profile:    proto.ProfileToProto(srv.Profile),
			Subscribed: s.scheduler.Subscribed(srv.ID),
		})
	}
	return &proto.ListServersResponse{Servers: out}, nil
}

// RemoveServer drops a server from the catalogue
func (s *Server) RemoveServer(ctx context.Context, req *proto.RemoveServerRequest) (*proto.RemoveServerResponse, error) {
	id, err := parseID("machine_id", req.MachineId)
	if err != nil {
		return nil, err
	}
	if err := s.toStatus(s.scheduler.RemoveServer(id)); err != nil {
		return nil, err
	}
	return &proto.RemoveServerResponse{}, nil
}

// GetGraph returns the flow network of the latest scheduling pass
func (s *Server) GetGraph(ctx context.Context, req *proto.GetGraphRequest) (*proto.GetGraphResponse, error) {
	snap := s.scheduler.Graph()
	if snap == nil {
		return nil, status.Error(codes.Unavailable, "no scheduling pass has run yet")
	}
	return graphToProto(snap), nil
}

// toStatus maps scheduler errors onto gRPC codes. Delivery failures are
// logged and swallowed: the pass retries them and the caller's request
// itself succeeded.
func (s *Server) toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, scheduler.ErrServerNotFound), errors.Is(err, scheduler.ErrTaskNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, scheduler.ErrTaskExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, scheduler.ErrInvalidTask), errors.Is(err, types.ErrInvalidProfile):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, scheduler.ErrNoSubscription), errors.Is(err, scheduler.ErrSendTimeout):
		s.logger.Warn().Err(err).Msg("Scheduling pass could not deliver every command")
		return nil
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func parseID(field, v string) (uuid.UUID, error) {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s %q", field, v)
	}
	return id, nil
}

func parseProfile(p *proto.Profile) (*types.ResourceProfile, error) {
	rp, err := proto.ProfileFromProto(p)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return rp, nil
}

func graphToProto(snap *scheduler.GraphSnapshot) *proto.GetGraphResponse {
	resp := &proto.GetGraphResponse{
		Pass:  snap.Pass,
		Dot:   snap.Dot,
		Nodes: make([]*proto.GraphNode, 0, len(snap.Nodes)),
		Edges: make([]*proto.GraphEdge, 0, len(snap.Edges)),
		Cost:  snap.Stats.Cost.String(),
		Flow:  snap.Stats.Flow,
	}
	for _, n := range snap.Nodes {
		resp.Nodes = append(resp.Nodes, &proto.GraphNode{
			Id:    int64(n.ID),
			Key:   n.Key,
			Label: n.Label,
			Kind:  string(n.Kind),
		})
	}
	for _, e := range snap.Edges {
		resp.Edges = append(resp.Edges, &proto.GraphEdge{
			From:     int64(e.From),
			To:       int64(e.To),
			Label:    e.Label,
			Flow:     e.Flow,
			Capacity: e.Capacity,
			Cost:     e.Cost.String(),
		})
	}
	return resp
}
