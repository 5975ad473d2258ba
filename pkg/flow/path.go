package flow

// Path is a chain of edges from Source to Sink.
type Path struct {
	Edges []EdgeIndex
	Nodes []NodeIndex
	// Amount is the flow carried by the path. It is only set for paths
	// returned by Paths.
	Amount int64
}

// Bottleneck returns the smallest residual capacity along p.
func (g *Graph[T]) Bottleneck(p Path) int64 {
	var b int64 = -1
	for _, e := range p.Edges {
		r := g.Edge(e).Residual()
		if b < 0 || r < b {
			b = r
		}
	}
	if b < 0 {
		return 0
	}
	return b
}

// Paths decomposes the current flow into Source to Sink paths. Each unit
// of flow belongs to exactly one returned path, so two paths never share
// the same unit even when they cross a common hub node. Paths are
// discovered depth first from Source, following edges with positive flow
// and capacity.
func (g *Graph[T]) Paths() []Path {
	remaining := make([]int64, len(g.edges))
	for i, e := range g.edges {
		remaining[i] = e.Flow
	}

	var paths []Path
	for {
		p, ok := g.flowPath(remaining)
		if !ok {
			return paths
		}
		amount := remaining[p.Edges[0]]
		for _, e := range p.Edges {
			amount = min(amount, remaining[e])
		}
		for _, e := range p.Edges {
			remaining[e] -= amount
		}
		p.Amount = amount
		paths = append(paths, p)
	}
}

// flowPath finds one Source to Sink chain over edges with remaining flow.
func (g *Graph[T]) flowPath(remaining []int64) (Path, bool) {
	visited := make([]bool, len(g.nodes))
	var stack []EdgeIndex

	var visit func(n NodeIndex) bool
	visit = func(n NodeIndex) bool {
		if n == Sink {
			return true
		}
		visited[n] = true
		for e := g.nodes[n].firstOut; e != noEdge; e = g.edges[e].next {
			edge := g.edges[e]
			if edge.Capacity <= 0 || remaining[e] <= 0 || visited[edge.Target] {
				continue
			}
			stack = append(stack, e)
			if visit(edge.Target) {
				return true
			}
			stack = stack[:len(stack)-1]
		}
		return false
	}

	if !visit(Source) {
		return Path{}, false
	}
	return g.pathFromEdges(stack), true
}

func (g *Graph[T]) pathFromEdges(edges []EdgeIndex) Path {
	p := Path{
		Edges: edges,
		Nodes: make([]NodeIndex, 0, len(edges)+1),
	}
	if len(edges) == 0 {
		return p
	}
	p.Nodes = append(p.Nodes, g.edges[edges[0]].Source)
	for _, e := range edges {
		p.Nodes = append(p.Nodes, g.edges[e].Target)
	}
	return p
}
