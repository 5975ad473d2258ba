package flow

import (
	"slices"

	"github.com/golang-collections/collections/queue"
)

// BFS looks for a Source to Sink path using only edges whose flow is below
// their capacity. Outgoing edges are explored most recent first.
func (g *Graph[T]) BFS() (Path, bool) {
	parent := make([]EdgeIndex, len(g.nodes))
	for i := range parent {
		parent[i] = noEdge
	}
	visited := make([]bool, len(g.nodes))
	visited[Source] = true

	q := queue.New()
	q.Enqueue(Source)

	for q.Len() > 0 {
		n := q.Dequeue().(NodeIndex)
		for e := g.nodes[n].firstOut; e != noEdge; e = g.edges[e].next {
			edge := g.edges[e]
			if edge.Flow == edge.Capacity || visited[edge.Target] {
				continue
			}
			visited[edge.Target] = true
			parent[edge.Target] = e
			if edge.Target == Sink {
				return g.pathFromEdges(g.trace(parent, Sink)), true
			}
			q.Enqueue(edge.Target)
		}
	}
	return Path{}, false
}

// trace follows parent edges back from n to Source.
func (g *Graph[T]) trace(parent []EdgeIndex, n NodeIndex) []EdgeIndex {
	var edges []EdgeIndex
	for n != Source {
		e := parent[n]
		edges = append(edges, e)
		n = g.edges[e].Source
	}
	slices.Reverse(edges)
	return edges
}

// FordFulkerson augments along BFS paths until Sink is unreachable and
// returns the amount of flow it added. On a maximal graph it adds nothing.
func (g *Graph[T]) FordFulkerson() int64 {
	added, _ := g.fordFulkerson()
	return added
}

func (g *Graph[T]) fordFulkerson() (added int64, augmentations int) {
	for {
		p, ok := g.BFS()
		if !ok {
			return added, augmentations
		}
		b := g.Bottleneck(p)
		for _, e := range p.Edges {
			g.addFlow(e, b)
		}
		added += b
		augmentations++
	}
}
