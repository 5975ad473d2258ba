package scheduler

import (
	"math"

	"github.com/cuemby/flowsched/pkg/flow"
	"github.com/cuemby/flowsched/pkg/types"
	"github.com/google/uuid"
)

const (
	// UnprofiledCost prices the route to a server that has not been
	// benchmarked yet. It is finite but above any unscheduled cost.
	UnprofiledCost flow.Cost = math.MaxInt32

	clusterName     = "Cluster"
	unscheduledName = "Unscheduled"
)

// UnscheduledCost is what leaving a task unplaced costs: twice the worst
// case profile, so any feasible placement is preferred.
func UnscheduledCost() flow.Cost {
	return flow.Cost(2 * types.MaxProfile().Cost())
}

// view is the normalized state one scheduling pass works from.
type view struct {
	limit   types.ResourceProfile
	servers map[uuid.UUID]types.NormalizedResourceProfile
	load    map[uuid.UUID]types.NormalizedResourceProfile
}

// normalizationLimit returns the per dimension maximum across benchmarked
// servers, or the one profile when none is benchmarked.
func normalizationLimit(servers []*types.Server) types.ResourceProfile {
	var limit types.ResourceProfile
	found := false
	for _, s := range servers {
		if s.Profile == nil {
			continue
		}
		if !found {
			limit = *s.Profile
			found = true
			continue
		}
		limit = limit.Max(*s.Profile)
	}
	if !found {
		return types.OneProfile()
	}
	return limit
}

// contribution is the footprint task t adds to server id: its mean
// profile there, otherwise its request, otherwise nothing.
func contribution(t *types.Task, id uuid.UUID, limit types.ResourceProfile) types.NormalizedResourceProfile {
	if avg, ok := t.AvgProfile(id, limit); ok {
		return avg
	}
	if t.Request != nil {
		return t.Request.Normalize(limit)
	}
	return types.ZeroProfile()
}

func (s *Scheduler) buildView() *view {
	v := &view{
		limit:   normalizationLimit(s.servers),
		servers: make(map[uuid.UUID]types.NormalizedResourceProfile, len(s.servers)),
		load:    make(map[uuid.UUID]types.NormalizedResourceProfile, len(s.servers)),
	}
	for _, srv := range s.servers {
		if p, ok := srv.Normalize(v.limit); ok {
			v.servers[srv.ID] = p
		}
		v.load[srv.ID] = types.ZeroProfile()
	}
	for _, t := range s.tasks {
		if !t.Schedulable {
			continue
		}
		id, ok := s.schedule[t.ID]
		if !ok {
			continue
		}
		if _, known := v.load[id]; known {
			v.load[id] = v.load[id].Add(contribution(t, id, v.limit))
		}
	}
	return v
}

// free returns the unused capacity of server id. When t is placed on id
// its own contribution is handed back first.
func (v *view) free(id uuid.UUID, t *types.Task, placedOn uuid.UUID, placed bool) (types.NormalizedResourceProfile, bool) {
	p, ok := v.servers[id]
	if !ok {
		return types.ZeroProfile(), false
	}
	f := p.Sub(v.load[id])
	if t != nil && placed && placedOn == id {
		f = f.Add(contribution(t, id, v.limit))
	}
	return f, true
}

// placementCost prices running t on server id: its mean profile there, or
// its request when it was never measured on id.
func (v *view) placementCost(t *types.Task, id uuid.UUID) flow.Cost {
	if avg, ok := t.AvgProfile(id, v.limit); ok {
		return flow.Cost(avg.Cost())
	}
	return flow.Cost(t.Request.Normalize(v.limit).Cost())
}

// network is a flow graph together with the lookups needed to read it back.
type network struct {
	graph       *flow.Graph[Node]
	cluster     flow.NodeIndex
	unscheduled flow.NodeIndex
	servers     map[uuid.UUID]flow.NodeIndex
	tasks       map[uuid.UUID]flow.NodeIndex
}

// buildNetwork lays out the flow network for the current catalogue:
//
//	Source -> Task -> Cluster -> Server -> Sink
//	          Task ----------->  Server
//	          Task -> Unscheduled ------> Sink
func (s *Scheduler) buildNetwork(v *view) *network {
	g := flow.New[Node]()
	n := &network{
		graph:   g,
		servers: make(map[uuid.UUID]flow.NodeIndex, len(s.servers)),
		tasks:   make(map[uuid.UUID]flow.NodeIndex, len(s.tasks)),
	}

	var count int64
	for _, t := range s.tasks {
		if t.Schedulable {
			count++
		}
	}

	n.cluster = g.AddNode(VirtualResource(clusterName))
	n.unscheduled = g.AddNode(VirtualResource(unscheduledName))

	maxCost := types.MaxProfile()
	for _, srv := range s.servers {
		idx := g.AddNode(ServerNode(srv))
		n.servers[srv.ID] = idx

		cost := UnprofiledCost
		if free, ok := v.free(srv.ID, nil, uuid.Nil, false); ok {
			cost = flow.Cost(maxCost.Sub(free).Cost())
		}
		g.AddEdge(n.cluster, idx, count, cost)
		g.AddEdge(idx, flow.Sink, count, 0)
	}
	g.AddEdge(n.unscheduled, flow.Sink, count, 0)

	penalty := flow.Cost(s.cfg.MovePenalty)
	for _, t := range s.tasks {
		if !t.Schedulable {
			continue
		}
		idx := g.AddNode(TaskNode(t))
		n.tasks[t.ID] = idx
		g.AddEdge(flow.Source, idx, 1, 0)

		current, placed := s.schedule[t.ID]
		if _, ok := n.servers[current]; !ok {
			placed = false
		}

		if t.Request == nil {
			route := flow.Cost(0)
			if placed {
				route = penalty
			}
			g.AddEdge(idx, n.cluster, 1, route)
			if _, profiled := v.servers[current]; placed && profiled {
				g.AddEdge(idx, n.servers[current], 1, 0)
			}
		} else {
			request := t.Request.Normalize(v.limit)
			for _, srv := range s.servers {
				free, ok := v.free(srv.ID, t, current, placed)
				if !ok || !free.Dominates(request) {
					continue
				}
				cost := v.placementCost(t, srv.ID)
				if placed && srv.ID != current {
					cost = cost.Add(penalty)
				}
				g.AddEdge(idx, n.servers[srv.ID], 1, cost)
			}
		}

		g.AddEdge(idx, n.unscheduled, 1, UnscheduledCost())
	}

	return n
}

// assignments reads the solved network back into task to server pairs.
// Tasks routed to Unscheduled are absent from the result.
func (n *network) assignments() map[uuid.UUID]uuid.UUID {
	out := make(map[uuid.UUID]uuid.UUID, len(n.tasks))
	for _, p := range n.graph.Paths() {
		var task, server *Node
		for _, idx := range p.Nodes {
			if idx == flow.Source || idx == flow.Sink {
				continue
			}
			node := n.graph.Node(idx)
			switch node.Kind {
			case KindTask:
				task = &node
			case KindServer:
				server = &node
			}
		}
		if task != nil && server != nil {
			out[task.Task.ID] = server.Server.ID
		}
	}
	return out
}
