package scheduler

import (
	"slices"
	"strings"

	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
)

type subscription struct {
	ch     chan types.TaskCommand
	closed bool
}

func (s *subscription) close() {
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// SubscribeTasks opens the command stream of a server. The stream starts
// with a Run command for every task currently placed on the server. A
// second subscription for the same server replaces and closes the first.
// The returned cancel func closes the stream; it is safe to call twice.
func (s *Scheduler) SubscribeTasks(serverID uuid.UUID) (<-chan types.TaskCommand, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.subscriptions[serverID]; ok {
		old.close()
	}

	var replay []*types.Task
	for _, t := range s.tasks {
		if id, ok := s.schedule[t.ID]; ok && id == serverID && t.Schedulable {
			replay = append(replay, t)
		}
	}

	sub := &subscription{ch: make(chan types.TaskCommand, s.cfg.CommandBuffer+len(replay))}
	for _, t := range replay {
		sub.ch <- types.TaskCommand{Task: t.Clone(), State: types.CommandRun}
	}
	s.subscriptions[serverID] = sub

	s.logger.Debug().
		Str("server_id", serverID.String()).
		Int("replayed", len(replay)).
		Msg("Server subscribed to task commands")

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.subscriptions[serverID] == sub {
			delete(s.subscriptions, serverID)
		}
		sub.close()
	}
	return sub.ch, cancel
}

// Subscribed reports whether serverID has an open command stream.
func (s *Scheduler) Subscribed(serverID uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.subscriptions[serverID]
	return ok
}

func sortedIDs[V any](m map[uuid.UUID]V) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}
