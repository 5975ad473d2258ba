package flow

import "slices"

// ResidualArc maps a residual edge back to the edge it was derived from.
type ResidualArc struct {
	Edge    EdgeIndex
	Reverse bool
}

// Residual builds the residual network of g. Node indices are shared with
// g. Every edge with spare capacity yields a forward arc of capacity
// capacity-flow and the same cost; every edge yields a reverse arc of
// capacity flow and negated cost. The returned slice is indexed by
// residual edge index.
func (g *Graph[T]) Residual() (*Graph[struct{}], []ResidualArc) {
	r := New[struct{}]()
	for i := 2; i < len(g.nodes); i++ {
		r.AddNode(struct{}{})
	}

	arcs := make([]ResidualArc, 0, 2*len(g.edges))
	for _, e := range g.edges {
		if e.Flow != e.Capacity {
			r.AddEdge(e.Source, e.Target, e.Residual(), e.Cost)
			arcs = append(arcs, ResidualArc{Edge: e.Index})
		}
		r.AddEdge(e.Target, e.Source, e.Flow, e.Cost.Neg())
		arcs = append(arcs, ResidualArc{Edge: e.Index, Reverse: true})
	}
	return r, arcs
}

// BellmanFord searches g for a negative cost cycle. Distances are seeded
// from Sink and edges without capacity are ignored. The cycle is returned
// as edge indices in traversal order.
//
// Only cycles reachable from Sink are found. A zero-flow negative
// circulation that Sink cannot reach is left in place, including one
// hanging off Source in a graph that carries no flow; it shares no edge
// with any Source-Sink path.
func (g *Graph[T]) BellmanFord() ([]EdgeIndex, bool) {
	n := len(g.nodes)
	dist := make([]Cost, n)
	parent := make([]EdgeIndex, n)
	for i := range dist {
		dist[i] = MaxCost
		parent[i] = noEdge
	}
	dist[Sink] = 0

	relax := func() NodeIndex {
		last := NodeIndex(-1)
		for _, e := range g.edges {
			if e.Capacity <= 0 || dist[e.Source] == MaxCost {
				continue
			}
			d := dist[e.Source].Add(e.Cost)
			if d < dist[e.Target] {
				dist[e.Target] = d
				parent[e.Target] = e.Index
				last = e.Target
			}
		}
		return last
	}

	for i := 0; i < n-1; i++ {
		if relax() < 0 {
			return nil, false
		}
	}
	x := relax()
	if x < 0 {
		return nil, false
	}

	// x may hang off the cycle; n steps back is guaranteed to be on it.
	for i := 0; i < n; i++ {
		if parent[x] == noEdge {
			return nil, false
		}
		x = g.edges[parent[x]].Source
	}

	var cycle []EdgeIndex
	for v := x; ; {
		e := parent[v]
		if e == noEdge {
			return nil, false
		}
		cycle = append(cycle, e)
		v = g.edges[e].Source
		if v == x {
			break
		}
	}
	slices.Reverse(cycle)
	return cycle, true
}

// Stats summarises one MinimumCostFlow run.
type Stats struct {
	Flow            int64 `json:"flow"`
	Augmentations   int   `json:"augmentations"`
	CyclesCancelled int   `json:"cycles_cancelled"`
	Cost            Cost  `json:"cost"`
}

// MinimumCostFlow computes a maximum flow and then cancels negative
// residual cycles until none remain. Running it on an optimal graph
// leaves every flow unchanged.
func (g *Graph[T]) MinimumCostFlow() Stats {
	var stats Stats
	_, stats.Augmentations = g.fordFulkerson()

	for {
		r, arcs := g.Residual()
		cycle, ok := r.BellmanFord()
		if !ok {
			break
		}

		b := r.Bottleneck(Path{Edges: cycle})
		for _, e := range cycle {
			arc := arcs[e]
			if arc.Reverse {
				g.addFlow(arc.Edge, -b)
			} else {
				g.addFlow(arc.Edge, b)
			}
		}
		stats.CyclesCancelled++
	}

	stats.Flow = g.FlowValue()
	stats.Cost = g.TotalCost()
	return stats
}
