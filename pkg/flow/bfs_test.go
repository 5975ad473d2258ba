package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFSExploresMostRecentEdgeFirst(t *testing.T) {
	g := New[int]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	d := g.AddNode(4)
	g.AddEdge(Source, a, 1, 0)
	g.AddEdge(a, b, 1, 1)
	g.AddEdge(b, c, 2, 2)
	g.AddEdge(a, d, 3, 3)
	g.AddEdge(b, d, 3, 3)
	g.AddEdge(d, c, 3, 3)
	g.AddEdge(c, Sink, 1, 0)

	p, ok := g.BFS()
	require.True(t, ok)
	assert.Equal(t, []NodeIndex{Source, a, d, c, Sink}, p.Nodes)
	assert.Equal(t, int64(1), g.Bottleneck(p))
}

func TestBFSSkipsSaturatedEdges(t *testing.T) {
	g := New[int]()
	a := g.AddNode(1)
	g.AddEdge(Source, a, 1, 0)
	g.AddEdge(a, Sink, 0, 0)

	_, ok := g.BFS()
	assert.False(t, ok)
}

func TestFordFulkerson(t *testing.T) {
	g := New[int]()
	a := g.AddNode(1)
	b := g.AddNode(2)
	c := g.AddNode(3)
	d := g.AddNode(4)
	g.AddEdge(Source, a, 2, 0)
	g.AddEdge(a, b, 1, 1)
	g.AddEdge(b, c, 2, 2)
	g.AddEdge(b, d, 3, 3)
	g.AddEdge(d, c, 3, 3)
	g.AddEdge(c, Sink, 2, 0)

	assert.Equal(t, int64(1), g.FordFulkerson())

	g.AddEdge(a, d, 2, 1)
	assert.Equal(t, int64(1), g.FordFulkerson())
	assert.Equal(t, int64(2), g.FlowValue())
}

func TestFordFulkersonTwoBranches(t *testing.T) {
	g := New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(Source, a, 2, 0)
	g.AddEdge(a, Sink, 2, 0)
	g.AddEdge(Source, b, 4, 0)
	g.AddEdge(b, Sink, 6, 0)

	assert.Equal(t, int64(6), g.FordFulkerson())
	assert.Equal(t, int64(6), g.FlowValue())
	assertCapacity(t, g)
}

func TestFordFulkersonIdempotent(t *testing.T) {
	g := New[string]()
	a := g.AddNode("A")
	g.AddEdge(Source, a, 3, 0)
	g.AddEdge(a, Sink, 2, 0)

	assert.Equal(t, int64(2), g.FordFulkerson())
	before := flows(g)
	assert.Equal(t, int64(0), g.FordFulkerson())
	assert.Equal(t, before, flows(g))
}
