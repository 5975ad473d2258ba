package proto

import (
	"fmt"

	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileToProto converts a profile for the wire.
func ProfileToProto(p *types.ResourceProfile) *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		Ipc:     p.IPC.String(),
		Memory:  p.Memory,
		Network: p.Network,
		Disk:    p.Disk,
	}
}

// ProfileFromProto parses a wire profile. An empty IPC reads as zero.
func ProfileFromProto(p *Profile) (*types.ResourceProfile, error) {
	if p == nil {
		return nil, nil
	}
	ipc := decimal.Zero
	if p.Ipc != "" {
		var err error
		if ipc, err = decimal.NewFromString(p.Ipc); err != nil {
			return nil, fmt.Errorf("%w: ipc %q: %v", types.ErrInvalidProfile, p.Ipc, err)
		}
	}
	rp := &types.ResourceProfile{IPC: ipc, Memory: p.Memory, Network: p.Network, Disk: p.Disk}
	if err := rp.Validate(); err != nil {
		return nil, err
	}
	return rp, nil
}

// TaskToProto converts a task; serverID is empty for an unplaced task.
func TaskToProto(t *types.Task, serverID string) *Task {
	var count int32
	for _, samples := range t.Profiles {
		count += int32(len(samples))
	}
	return &Task{
		Id:           t.ID.String(),
		Name:         t.Name,
		Image:        t.Image,
		Command:      t.Command,
		Realtime:     t.Realtime,
		Request:      ProfileToProto(t.Request),
		Schedulable:  t.Schedulable,
		ServerId:     serverID,
		ProfileCount: count,
	}
}

// CommandToProto converts a command sent to the agent of serverID.
func CommandToProto(cmd types.TaskCommand, serverID string) *TaskCommand {
	return &TaskCommand{
		State: string(cmd.State),
		Task:  TaskToProto(cmd.Task, serverID),
	}
}

// TaskFromProto parses a wire task. Profiles are not carried on the wire.
func TaskFromProto(t *Task) (*types.Task, error) {
	if t == nil {
		return nil, fmt.Errorf("missing task")
	}
	id, err := uuid.Parse(t.Id)
	if err != nil {
		return nil, fmt.Errorf("task id %q: %w", t.Id, err)
	}
	req, err := ProfileFromProto(t.Request)
	if err != nil {
		return nil, err
	}
	return &types.Task{
		ID:          id,
		Name:        t.Name,
		Image:       t.Image,
		Command:     t.Command,
		Realtime:    t.Realtime,
		Request:     req,
		Profiles:    make(map[uuid.UUID][]types.ResourceProfile),
		Schedulable: t.Schedulable,
	}, nil
}
