package scheduler

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/cuemby/flowsched/pkg/events"
	"github.com/cuemby/flowsched/pkg/log"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/storage"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrServerNotFound = errors.New("server not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskExists     = errors.New("a schedulable task with this name exists")
	ErrInvalidTask    = errors.New("invalid task")
	ErrNoSubscription = errors.New("server has no task subscription")
	ErrSendTimeout    = errors.New("timed out sending task command")
)

// Config tunes a Scheduler. Zero values fall back to DefaultConfig.
type Config struct {
	// MovePenalty is added to every route that moves a placed task.
	MovePenalty int64
	// CommandBuffer is the capacity of each server's command channel.
	CommandBuffer int
	// SendTimeout bounds how long a pass waits on a full command channel.
	SendTimeout time.Duration
	// ResyncInterval is the period of the background pass started by Start.
	ResyncInterval time.Duration

	Store  storage.Store
	Events *events.Broker
}

// DefaultConfig returns the settings used when a field is left zero.
func DefaultConfig() Config {
	return Config{
		MovePenalty:    10,
		CommandBuffer:  16,
		SendTimeout:    5 * time.Second,
		ResyncInterval: 30 * time.Second,
	}
}

// Scheduler owns the task and server catalogue and the current schedule.
// Every mutation runs a full scheduling pass before it returns; passes are
// serialized by one lock.
type Scheduler struct {
	mu  sync.RWMutex
	cfg Config

	tasks       []*types.Task
	taskIndex   map[uuid.UUID]*types.Task
	servers     []*types.Server
	serverIndex map[uuid.UUID]*types.Server

	// schedule maps task ID to the server it was last placed on.
	schedule map[uuid.UUID]uuid.UUID
	// retired holds replaced tasks whose Remove has not been delivered.
	retired map[uuid.UUID]*types.Task

	subscriptions map[uuid.UUID]*subscription
	graph         *events.Watch[*GraphSnapshot]
	passes        uint64

	store  storage.Store
	logger zerolog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a scheduler with an empty catalogue.
func NewScheduler(cfg Config) *Scheduler {
	def := DefaultConfig()
	if cfg.MovePenalty <= 0 {
		cfg.MovePenalty = def.MovePenalty
	}
	if cfg.CommandBuffer <= 0 {
		cfg.CommandBuffer = def.CommandBuffer
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = def.SendTimeout
	}
	if cfg.ResyncInterval <= 0 {
		cfg.ResyncInterval = def.ResyncInterval
	}

	store := cfg.Store
	if store == nil {
		store = storage.NewMemoryStore()
	}

	return &Scheduler{
		cfg:           cfg,
		taskIndex:     make(map[uuid.UUID]*types.Task),
		serverIndex:   make(map[uuid.UUID]*types.Server),
		schedule:      make(map[uuid.UUID]uuid.UUID),
		retired:       make(map[uuid.UUID]*types.Task),
		subscriptions: make(map[uuid.UUID]*subscription),
		graph:         events.NewWatch[*GraphSnapshot](nil),
		store:         store,
		logger:        log.WithComponent("scheduler"),
		stopCh:        make(chan struct{}),
	}
}

// Start begins the periodic resync loop which retries undelivered commands.
func (s *Scheduler) Start() {
	go s.run()
}

// Stop ends the resync loop and closes every subscription.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)

		s.mu.Lock()
		defer s.mu.Unlock()
		for id, sub := range s.subscriptions {
			sub.close()
			delete(s.subscriptions, id)
		}
	})
}

func (s *Scheduler) run() {
	ticker := time.NewTicker(s.cfg.ResyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Reschedule(); err != nil {
				s.logger.Warn().Err(err).Msg("Resync pass could not deliver every command")
			}
		case <-s.stopCh:
			return
		}
	}
}

// Reschedule runs a scheduling pass without changing the catalogue.
func (s *Scheduler) Reschedule() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pass()
}

// RegisterServer adds a server or refreshes the hostname of a known one.
// It reports whether the agent should run its benchmark, which is the case
// until a profile is known for the server, including one cached in the
// store from an earlier registration.
func (s *Scheduler) RegisterServer(id uuid.UUID, hostname string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With().Str("server_id", id.String()).Str("hostname", hostname).Logger()

	srv, ok := s.serverIndex[id]
	if ok {
		srv.Hostname = hostname
		logger.Debug().Msg("Server re-registered")
	} else {
		srv = &types.Server{ID: id, Hostname: hostname}
		b, err := s.store.GetBenchmark(id)
		switch {
		case err == nil:
			p := b.Profile
			srv.Profile = &p
		case !errors.Is(err, storage.ErrNotFound):
			logger.Warn().Err(err).Msg("Failed to load cached benchmark")
		}
		s.servers = append(s.servers, srv)
		s.serverIndex[id] = srv
		logger.Info().Bool("cached_profile", srv.Profile != nil).Msg("Server registered")
	}

	s.cfg.Events.Publish(&events.Event{
		Type:     events.EventServerRegistered,
		Message:  fmt.Sprintf("server %s registered", hostname),
		Metadata: map[string]string{"server_id": id.String(), "hostname": hostname},
	})

	return srv.Profile == nil, s.pass()
}

// SubmitBenchmark stores the benchmark profile of a registered server.
func (s *Scheduler) SubmitBenchmark(id uuid.UUID, profile types.ResourceProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	srv, ok := s.serverIndex[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	srv.Profile = &profile

	if err := s.store.SaveBenchmark(&storage.Benchmark{ServerID: id, Hostname: srv.Hostname, Profile: profile}); err != nil {
		s.logger.Warn().Err(err).Str("server_id", id.String()).Msg("Failed to persist benchmark")
	}

	s.logger.Info().
		Str("server_id", id.String()).
		Stringer("profile", profile).
		Msg("Benchmark received")

	s.cfg.Events.Publish(&events.Event{
		Type:     events.EventServerBenchmarked,
		Message:  fmt.Sprintf("server %s benchmarked", srv.Hostname),
		Metadata: map[string]string{"server_id": id.String(), "profile": profile.String()},
	})

	return s.pass()
}

// RemoveServer drops a server from the catalogue. Its tasks lose their
// placement and are rescheduled elsewhere.
func (s *Scheduler) RemoveServer(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	srv, ok := s.serverIndex[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}

	for taskID, serverID := range s.schedule {
		if serverID != id {
			continue
		}
		if t := s.lookupTask(taskID); t != nil {
			// The agent may already be gone; the task is rescheduled either way.
			if err := s.send(id, types.TaskCommand{Task: t.Clone(), State: types.CommandRemove}); err != nil {
				s.logger.Warn().Err(err).
					Str("server_id", id.String()).
					Str("task_id", taskID.String()).
					Msg("Failed to deliver remove to removed server")
			}
		}
		delete(s.schedule, taskID)
		delete(s.retired, taskID)
	}

	if sub, ok := s.subscriptions[id]; ok {
		sub.close()
		delete(s.subscriptions, id)
	}

	delete(s.serverIndex, id)
	for i, existing := range s.servers {
		if existing.ID == id {
			s.servers = append(s.servers[:i], s.servers[i+1:]...)
			break
		}
	}

	s.logger.Info().Str("server_id", id.String()).Msg("Server removed")
	s.cfg.Events.Publish(&events.Event{
		Type:     events.EventServerRemoved,
		Message:  fmt.Sprintf("server %s removed", srv.Hostname),
		Metadata: map[string]string{"server_id": id.String()},
	})

	return s.pass()
}

// InsertTask adds a task. A task whose name matches a finished task
// replaces it, inheriting the profiles measured so far; a name matching a
// schedulable task is rejected with ErrTaskExists.
func (s *Scheduler) InsertTask(t *types.Task) error {
	if t == nil || t.Name == "" || t.Image == "" {
		return fmt.Errorf("%w: name and image are required", ErrInvalidTask)
	}
	if t.Request != nil {
		if err := t.Request.Validate(); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Profiles == nil {
		t.Profiles = make(map[uuid.UUID][]types.ResourceProfile)
	}
	t.Schedulable = true

	replaced := false
	for i, existing := range s.tasks {
		if existing.Name != t.Name {
			continue
		}
		if existing.Schedulable {
			return fmt.Errorf("%w: %s", ErrTaskExists, t.Name)
		}
		for serverID, samples := range existing.Profiles {
			t.Profiles[serverID] = slices.Concat(samples, t.Profiles[serverID])
		}
		if _, placed := s.schedule[existing.ID]; placed {
			s.retired[existing.ID] = existing
		}
		delete(s.taskIndex, existing.ID)
		s.tasks[i] = t
		replaced = true
		break
	}
	if !replaced {
		s.tasks = append(s.tasks, t)
	}
	s.taskIndex[t.ID] = t

	logger := log.WithTaskID(t.ID.String())
	logger.Info().
		Str("name", t.Name).
		Str("image", t.Image).
		Bool("resubmitted", replaced).
		Bool("request", t.Request != nil).
		Msg("Task submitted")

	s.cfg.Events.Publish(&events.Event{
		Type:     events.EventTaskSubmitted,
		Message:  fmt.Sprintf("task %s submitted", t.Name),
		Metadata: map[string]string{"task_id": t.ID.String(), "name": t.Name},
	})

	return s.pass()
}

// InsertProfile records a task sample measured on serverID.
func (s *Scheduler) InsertProfile(serverID, taskID uuid.UUID, profile types.ResourceProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.serverIndex[serverID]; !ok {
		return fmt.Errorf("%w: %s", ErrServerNotFound, serverID)
	}
	t, ok := s.taskIndex[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	t.InsertProfile(serverID, profile)

	s.logger.Debug().
		Str("task_id", taskID.String()).
		Str("server_id", serverID.String()).
		Stringer("profile", profile).
		Msg("Task profile received")

	return s.pass()
}

// FinishTask marks a task as no longer schedulable. Its server receives a
// Remove command and the name becomes free for re-submission.
func (s *Scheduler) FinishTask(taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.taskIndex[taskID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if !t.Schedulable {
		return nil
	}
	t.Schedulable = false

	logger := log.WithTaskID(taskID.String())
	logger.Info().Str("name", t.Name).Msg("Task finished")
	s.cfg.Events.Publish(&events.Event{
		Type:     events.EventTaskFinished,
		Message:  fmt.Sprintf("task %s finished", t.Name),
		Metadata: map[string]string{"task_id": taskID.String(), "name": t.Name},
	})

	return s.pass()
}

func (s *Scheduler) lookupTask(id uuid.UUID) *types.Task {
	if t, ok := s.taskIndex[id]; ok {
		return t
	}
	return s.retired[id]
}

// Tasks returns copies of every task in submission order.
func (s *Scheduler) Tasks() []*types.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	return out
}

// Task returns a copy of one task.
func (s *Scheduler) Task(id uuid.UUID) (*types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.taskIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t.Clone(), nil
}

// Servers returns copies of every server in registration order.
func (s *Scheduler) Servers() []*types.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Server, 0, len(s.servers))
	for _, srv := range s.servers {
		out = append(out, srv.Clone())
	}
	return out
}

// Schedule returns a copy of the current task to server placement.
func (s *Scheduler) Schedule() map[uuid.UUID]uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[uuid.UUID]uuid.UUID, len(s.schedule))
	for k, v := range s.schedule {
		out[k] = v
	}
	return out
}

// Placement returns the server a task is placed on.
func (s *Scheduler) Placement(taskID uuid.UUID) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.schedule[taskID]
	return id, ok
}

// Counts implements metrics.Source.
func (s *Scheduler) Counts() metrics.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c metrics.Counts
	for _, srv := range s.servers {
		if srv.Profile != nil {
			c.ServersProfiled++
		} else {
			c.ServersPending++
		}
	}
	for _, t := range s.tasks {
		switch {
		case !t.Schedulable:
			c.TasksFinished++
		case s.isPlaced(t.ID):
			c.TasksPlaced++
		default:
			c.TasksUnscheduled++
		}
	}
	c.Subscriptions = len(s.subscriptions)
	return c
}

func (s *Scheduler) isPlaced(id uuid.UUID) bool {
	_, ok := s.schedule[id]
	return ok
}
