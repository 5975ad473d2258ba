package flow

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidIndex is the cause of every panic raised for a node or edge
// index that does not belong to the graph.
var ErrInvalidIndex = errors.New("invalid index")

// NodeIndex identifies a node inside one Graph.
type NodeIndex int

// EdgeIndex identifies an edge inside one Graph.
type EdgeIndex int

const (
	// Source is always the first node of a Graph.
	Source NodeIndex = 0
	// Sink is always the second node of a Graph.
	Sink NodeIndex = 1

	noEdge EdgeIndex = -1
)

// Edge is a directed arc carrying flow between two nodes.
type Edge struct {
	Index    EdgeIndex
	Source   NodeIndex
	Target   NodeIndex
	Capacity int64
	Cost     Cost
	Flow     int64

	next EdgeIndex
}

// Residual returns the spare capacity of the edge.
func (e Edge) Residual() int64 {
	return e.Capacity - e.Flow
}

type node[T any] struct {
	value    T
	firstOut EdgeIndex
}

// Graph is an arena-backed directed flow network. Nodes and edges live in
// flat slices; each node stores the index of its most recent outgoing edge
// and each edge stores the index of the next one from the same node.
//
// A Graph is not safe for concurrent use.
type Graph[T any] struct {
	nodes []node[T]
	edges []Edge
}

// New creates a graph holding only Source and Sink.
func New[T any]() *Graph[T] {
	g := &Graph[T]{
		nodes: make([]node[T], 0, 2),
	}
	var zero T
	g.nodes = append(g.nodes, node[T]{value: zero, firstOut: noEdge})
	g.nodes = append(g.nodes, node[T]{value: zero, firstOut: noEdge})
	return g
}

// AddNode inserts a node and returns its index.
func (g *Graph[T]) AddNode(value T) NodeIndex {
	g.nodes = append(g.nodes, node[T]{value: value, firstOut: noEdge})
	return NodeIndex(len(g.nodes) - 1)
}

// AddEdge appends an edge from src to dst. Capacity may be zero.
func (g *Graph[T]) AddEdge(src, dst NodeIndex, capacity int64, cost Cost) EdgeIndex {
	g.mustNode(src)
	g.mustNode(dst)
	if capacity < 0 {
		panic(fmt.Errorf("negative capacity %d on edge %d -> %d: %w", capacity, src, dst, ErrInvalidIndex))
	}

	idx := EdgeIndex(len(g.edges))
	g.edges = append(g.edges, Edge{
		Index:    idx,
		Source:   src,
		Target:   dst,
		Capacity: capacity,
		Cost:     cost,
		next:     g.nodes[src].firstOut,
	})
	g.nodes[src].firstOut = idx
	return idx
}

// Node returns the payload stored at n. Source and Sink hold the zero value.
func (g *Graph[T]) Node(n NodeIndex) T {
	g.mustNode(n)
	return g.nodes[n].value
}

// Edge returns a copy of edge e.
func (g *Graph[T]) Edge(e EdgeIndex) Edge {
	g.mustEdge(e)
	return g.edges[e]
}

// NodeCount returns the number of nodes including Source and Sink.
func (g *Graph[T]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// Edges yields the outgoing edges of n, most recently added first.
func (g *Graph[T]) Edges(n NodeIndex) iter.Seq[Edge] {
	g.mustNode(n)
	return func(yield func(Edge) bool) {
		for e := g.nodes[n].firstOut; e != noEdge; e = g.edges[e].next {
			if !yield(g.edges[e]) {
				return
			}
		}
	}
}

// AllEdges yields every edge in insertion order.
func (g *Graph[T]) AllEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range g.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// Nodes yields every node index with its payload.
func (g *Graph[T]) Nodes() iter.Seq2[NodeIndex, T] {
	return func(yield func(NodeIndex, T) bool) {
		for i, n := range g.nodes {
			if !yield(NodeIndex(i), n.value) {
				return
			}
		}
	}
}

// TotalCost returns the sum of flow*cost over all edges.
func (g *Graph[T]) TotalCost() Cost {
	var total Cost
	for _, e := range g.edges {
		total = total.Add(e.Cost.Mul(e.Flow))
	}
	return total
}

// FlowValue returns the amount of flow leaving Source.
func (g *Graph[T]) FlowValue() int64 {
	var v int64
	for e := range g.Edges(Source) {
		v += e.Flow
	}
	return v
}

func (g *Graph[T]) addFlow(e EdgeIndex, amount int64) {
	edge := &g.edges[e]
	f := edge.Flow + amount
	if f < 0 || f > edge.Capacity {
		panic(fmt.Errorf("flow %d out of bounds [0, %d] on edge %d: %w", f, edge.Capacity, e, ErrInvalidIndex))
	}
	edge.Flow = f
}

func (g *Graph[T]) mustNode(n NodeIndex) {
	if n < 0 || int(n) >= len(g.nodes) {
		panic(fmt.Errorf("node %d: %w", n, ErrInvalidIndex))
	}
}

func (g *Graph[T]) mustEdge(e EdgeIndex) {
	if e < 0 || int(e) >= len(g.edges) {
		panic(fmt.Errorf("edge %d: %w", e, ErrInvalidIndex))
	}
}
