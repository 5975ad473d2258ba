package types

import (
	"slices"

	"github.com/google/uuid"
)

// Task is a unit of work to place on a server.
type Task struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Image   string    `json:"image"`
	Command string    `json:"command,omitempty"`
	// Realtime tasks are never profiled by the agent.
	Realtime bool `json:"realtime"`
	// Request is the minimum footprint a server must have free. Tasks
	// without a request connect to the cluster as a whole.
	Request *ResourceProfile `json:"request,omitempty"`
	// Profiles holds every sample reported for the task, per server.
	Profiles map[uuid.UUID][]ResourceProfile `json:"profiles,omitempty"`
	// Schedulable turns false once an agent reports the task finished.
	Schedulable bool `json:"schedulable"`
}

// NewTask creates a schedulable task with a fresh ID.
func NewTask(name, image, command string, request *ResourceProfile, realtime bool) *Task {
	return &Task{
		ID:          uuid.New(),
		Name:        name,
		Image:       image,
		Command:     command,
		Realtime:    realtime,
		Request:     request,
		Profiles:    make(map[uuid.UUID][]ResourceProfile),
		Schedulable: true,
	}
}

// InsertProfile records one sample measured on serverID.
func (t *Task) InsertProfile(serverID uuid.UUID, p ResourceProfile) {
	if t.Profiles == nil {
		t.Profiles = make(map[uuid.UUID][]ResourceProfile)
	}
	t.Profiles[serverID] = append(t.Profiles[serverID], p)
}

// AvgProfile returns the arithmetic mean of the samples recorded on
// serverID, each normalized against limit. ok is false when the task was
// never profiled there.
func (t *Task) AvgProfile(serverID uuid.UUID, limit ResourceProfile) (avg NormalizedResourceProfile, ok bool) {
	samples := t.Profiles[serverID]
	if len(samples) == 0 {
		return ZeroProfile(), false
	}
	sum := ZeroProfile()
	for _, s := range samples {
		sum = sum.Add(s.Normalize(limit))
	}
	return sum.DivScalar(int64(len(samples))), true
}

// IsProfiled reports whether the agent should measure this task. Tasks
// with an explicit request or realtime constraints are not profiled.
func (t *Task) IsProfiled() bool {
	return t.Request == nil && !t.Realtime
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	c := *t
	if t.Request != nil {
		r := *t.Request
		c.Request = &r
	}
	c.Profiles = make(map[uuid.UUID][]ResourceProfile, len(t.Profiles))
	for id, ps := range t.Profiles {
		c.Profiles[id] = slices.Clone(ps)
	}
	return &c
}

// CommandState tells an agent what to do with a task.
type CommandState string

const (
	CommandRun    CommandState = "run"
	CommandRemove CommandState = "remove"
)

// TaskCommand is delivered to the agent of one server.
type TaskCommand struct {
	Task  *Task        `json:"task"`
	State CommandState `json:"state"`
}
