package scheduler

import (
	"fmt"
	"time"

	"github.com/cuemby/flowsched/pkg/flow"
)

// GraphSnapshot is a rendering of the flow network solved by one pass.
type GraphSnapshot struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
	Dot   string      `json:"dot"`
	Stats flow.Stats  `json:"stats"`
	Pass  uint64      `json:"pass"`
	Time  time.Time   `json:"time"`
}

// GraphNode is one node of a snapshot. ID is the index in the flow graph.
type GraphNode struct {
	ID    int      `json:"id"`
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Kind  NodeKind `json:"kind"`
}

// GraphEdge is one edge of a snapshot.
type GraphEdge struct {
	From     int       `json:"from"`
	To       int       `json:"to"`
	Label    string    `json:"label"`
	Flow     int64     `json:"flow"`
	Capacity int64     `json:"capacity"`
	Cost     flow.Cost `json:"cost"`
}

func newGraphSnapshot(n *network, stats flow.Stats, pass uint64) *GraphSnapshot {
	g := n.graph
	snap := &GraphSnapshot{
		Nodes: make([]GraphNode, 0, g.NodeCount()),
		Edges: make([]GraphEdge, 0, g.EdgeCount()),
		Dot:   g.Graphviz(nodeLabel),
		Stats: stats,
		Pass:  pass,
		Time:  time.Now(),
	}

	for idx, node := range g.Nodes() {
		gn := GraphNode{ID: int(idx), Label: g.Label(idx, nodeLabel), Kind: node.Kind}
		switch idx {
		case flow.Source:
			gn.Key, gn.Kind = "virtual/Source", KindVirtual
		case flow.Sink:
			gn.Key, gn.Kind = "virtual/Sink", KindVirtual
		default:
			gn.Key = node.Key()
		}
		snap.Nodes = append(snap.Nodes, gn)
	}

	for e := range g.AllEdges() {
		snap.Edges = append(snap.Edges, GraphEdge{
			From:     int(e.Source),
			To:       int(e.Target),
			Label:    fmt.Sprintf("fl:%d cst:%s", e.Flow, e.Cost),
			Flow:     e.Flow,
			Capacity: e.Capacity,
			Cost:     e.Cost,
		})
	}
	return snap
}

// Graph returns the snapshot of the latest pass, or nil before the first.
func (s *Scheduler) Graph() *GraphSnapshot {
	return s.graph.Get()
}

// WatchGraph streams snapshots as passes complete. A slow reader only
// receives the latest one.
func (s *Scheduler) WatchGraph() (<-chan *GraphSnapshot, func()) {
	return s.graph.Subscribe()
}
