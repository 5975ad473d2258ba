package scheduler

import (
	"fmt"
	"time"

	"github.com/cuemby/flowsched/pkg/events"
	"github.com/cuemby/flowsched/pkg/metrics"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// pass runs one full scheduling pass. The caller holds s.mu.
func (s *Scheduler) pass() error {
	timer := metrics.NewTimer()
	s.passes++

	v := s.buildView()
	net := s.buildNetwork(v)
	stats := net.graph.MinimumCostFlow()

	next := net.assignments()
	deferred := s.admit(v, next)

	err := s.placeTasks(next)

	s.graph.Set(newGraphSnapshot(net, stats, s.passes))

	metrics.FlowAugmentations.Add(float64(stats.Augmentations))
	metrics.FlowCyclesCancelled.Add(float64(stats.CyclesCancelled))
	metrics.FlowGraphEdges.Set(float64(net.graph.EdgeCount()))
	timer.ObserveDuration(metrics.SchedulingLatency)

	result := "ok"
	if err != nil {
		result = "delivery_failed"
		s.cfg.Events.Publish(&events.Event{
			Type:    events.EventScheduleFailed,
			Message: err.Error(),
		})
	}
	metrics.SchedulingPasses.WithLabelValues(result).Inc()

	s.logger.Debug().
		Uint64("pass", s.passes).
		Int("nodes", net.graph.NodeCount()).
		Int("edges", net.graph.EdgeCount()).
		Int("augmentations", stats.Augmentations).
		Int("cycles_cancelled", stats.CyclesCancelled).
		Int64("cost", int64(stats.Cost)).
		Int("placed", len(next)).
		Int("deferred", deferred).
		Dur("took", timer.Duration()).
		Msg("Scheduling pass complete")

	return err
}

// admit re-checks request tasks that the solver moved onto a new server.
// Eligibility is decided per task against the pre-pass load, so several
// tasks may have been routed onto capacity that only fits some of them.
// Moves are admitted in submission order; a task that no longer fits
// keeps its previous server when that still has room, otherwise it stays
// unplaced for this pass. It returns how many moves were refused.
func (s *Scheduler) admit(v *view, next map[uuid.UUID]uuid.UUID) int {
	remaining := make(map[uuid.UUID]types.NormalizedResourceProfile, len(v.servers))
	for id, p := range v.servers {
		remaining[id] = p
	}

	isMove := func(t *types.Task) bool {
		to, ok := next[t.ID]
		if !ok || t.Request == nil {
			return false
		}
		from, placed := s.schedule[t.ID]
		return !placed || from != to
	}

	for _, t := range s.tasks {
		to, ok := next[t.ID]
		if !ok || isMove(t) {
			continue
		}
		if r, tracked := remaining[to]; tracked {
			remaining[to] = r.Sub(contribution(t, to, v.limit))
		}
	}

	refused := 0
	for _, t := range s.tasks {
		if !isMove(t) {
			continue
		}
		to := next[t.ID]
		request := t.Request.Normalize(v.limit)
		if r, tracked := remaining[to]; tracked && r.Dominates(request) {
			remaining[to] = r.Sub(contribution(t, to, v.limit))
			continue
		}

		refused++
		delete(next, t.ID)
		if from, placed := s.schedule[t.ID]; placed {
			if r, tracked := remaining[from]; tracked && r.Dominates(request) {
				remaining[from] = r.Sub(contribution(t, from, v.limit))
				next[t.ID] = from
			}
		}
	}
	return refused
}

// change is one task whose placement differs between two passes.
type change struct {
	task     *types.Task
	from, to uuid.UUID
	hasFrom  bool
	hasTo    bool
}

// diff lists the tasks whose placement changed, in submission order,
// followed by retired tasks still holding a placement.
func (s *Scheduler) diff(next map[uuid.UUID]uuid.UUID) []change {
	var changes []change
	for _, t := range s.tasks {
		from, hasFrom := s.schedule[t.ID]
		to, hasTo := next[t.ID]
		if hasFrom == hasTo && from == to {
			continue
		}
		changes = append(changes, change{task: t, from: from, to: to, hasFrom: hasFrom, hasTo: hasTo})
	}
	for _, id := range sortedIDs(s.retired) {
		from, hasFrom := s.schedule[id]
		if !hasFrom {
			delete(s.retired, id)
			continue
		}
		changes = append(changes, change{task: s.retired[id], from: from, hasFrom: true})
	}
	return changes
}

// placeTasks delivers the changes between the current schedule and next.
// All Remove commands go out before any Run command. A task's entry is
// updated only for what was delivered: when its Remove fails the old
// placement is kept and no Run is sent, when its Run fails it ends up
// unplaced. Either way a later pass retries. Every delivery failure is
// returned.
func (s *Scheduler) placeTasks(next map[uuid.UUID]uuid.UUID) error {
	changes := s.diff(next)
	if len(changes) == 0 {
		return nil
	}

	var result *multierror.Error
	removed := make([]bool, len(changes))

	for i, c := range changes {
		if !c.hasFrom {
			continue
		}
		if err := s.send(c.from, types.TaskCommand{Task: c.task.Clone(), State: types.CommandRemove}); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		removed[i] = true
		delete(s.schedule, c.task.ID)
		delete(s.retired, c.task.ID)
	}

	for i, c := range changes {
		if c.hasFrom && !removed[i] {
			continue
		}
		if !c.hasTo {
			s.publishPlacement(c.task, uuid.Nil, false)
			continue
		}
		if err := s.send(c.to, types.TaskCommand{Task: c.task.Clone(), State: types.CommandRun}); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		s.schedule[c.task.ID] = c.to
		s.publishPlacement(c.task, c.to, true)
	}

	return result.ErrorOrNil()
}

func (s *Scheduler) publishPlacement(t *types.Task, serverID uuid.UUID, placed bool) {
	if _, live := s.taskIndex[t.ID]; !live {
		return
	}
	logger := s.logger.With().Str("task_id", t.ID.String()).Str("name", t.Name).Logger()
	if !placed {
		if t.Schedulable {
			logger.Info().Msg("Task unscheduled")
			s.cfg.Events.Publish(&events.Event{
				Type:     events.EventTaskUnscheduled,
				Message:  fmt.Sprintf("task %s has no server", t.Name),
				Metadata: map[string]string{"task_id": t.ID.String()},
			})
		}
		return
	}
	logger.Info().Str("server_id", serverID.String()).Msg("Task placed")
	s.cfg.Events.Publish(&events.Event{
		Type:     events.EventTaskPlaced,
		Message:  fmt.Sprintf("task %s placed", t.Name),
		Metadata: map[string]string{"task_id": t.ID.String(), "server_id": serverID.String()},
	})
}

// send delivers cmd to the subscription of serverID, waiting at most
// SendTimeout for room in the channel.
func (s *Scheduler) send(serverID uuid.UUID, cmd types.TaskCommand) error {
	state := string(cmd.State)
	sub, ok := s.subscriptions[serverID]
	if !ok {
		metrics.TaskCommandFailures.WithLabelValues(state).Inc()
		return fmt.Errorf("%s task %s on server %s: %w", cmd.State, cmd.Task.Name, serverID, ErrNoSubscription)
	}

	timer := time.NewTimer(s.cfg.SendTimeout)
	defer timer.Stop()

	select {
	case sub.ch <- cmd:
		metrics.TaskCommandsTotal.WithLabelValues(state).Inc()
		return nil
	case <-timer.C:
		metrics.TaskCommandFailures.WithLabelValues(state).Inc()
		return fmt.Errorf("%s task %s on server %s: %w", cmd.State, cmd.Task.Name, serverID, ErrSendTimeout)
	}
}
