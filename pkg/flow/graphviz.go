package flow

import (
	"fmt"
	"strings"
)

// Graphviz renders g in dot syntax. Edge labels read flow/capacity;cost.
// label names application nodes; Source and Sink are named by the graph.
func (g *Graph[T]) Graphviz(label func(T) string) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for i, n := range g.nodes {
		fmt.Fprintf(&b, "    %d [label=%q]\n", i, g.nodeLabel(NodeIndex(i), n.value, label))
	}
	for _, e := range g.edges {
		fmt.Fprintf(&b, "    %d -> %d [label=\"%d/%d;%s\"]\n", e.Source, e.Target, e.Flow, e.Capacity, e.Cost)
	}
	b.WriteString("}\n")
	return b.String()
}

func (g *Graph[T]) nodeLabel(i NodeIndex, v T, label func(T) string) string {
	switch i {
	case Source:
		return "Source"
	case Sink:
		return "Sink"
	}
	if label == nil {
		return fmt.Sprintf("%v", v)
	}
	return label(v)
}

// Label returns the display name of node n.
func (g *Graph[T]) Label(n NodeIndex, label func(T) string) string {
	g.mustNode(n)
	return g.nodeLabel(n, g.nodes[n].value, label)
}
