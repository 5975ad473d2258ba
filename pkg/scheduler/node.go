package scheduler

import (
	"github.com/cuemby/flowsched/pkg/types"
)

// NodeKind tells which variant a Node holds.
type NodeKind string

const (
	KindVirtual NodeKind = "virtual"
	KindServer  NodeKind = "server"
	KindTask    NodeKind = "task"
)

// Node is the payload of a scheduling flow graph. Exactly one of Name,
// Server and Task is meaningful, selected by Kind.
type Node struct {
	Kind   NodeKind
	Name   string
	Server *types.Server
	Task   *types.Task
}

// VirtualResource is a node standing for a group such as the cluster.
func VirtualResource(name string) Node {
	return Node{Kind: KindVirtual, Name: name}
}

// ServerNode wraps a server.
func ServerNode(s *types.Server) Node {
	return Node{Kind: KindServer, Server: s}
}

// TaskNode wraps a task.
func TaskNode(t *types.Task) Node {
	return Node{Kind: KindTask, Task: t}
}

// Key is the stable identity of the node across graph rebuilds.
func (n Node) Key() string {
	switch n.Kind {
	case KindServer:
		return "server/" + n.Server.ID.String()
	case KindTask:
		return "task/" + n.Task.ID.String()
	case KindVirtual:
		return "virtual/" + n.Name
	}
	return ""
}

// Label is the display name used in graph renderings.
func (n Node) Label() string {
	switch n.Kind {
	case KindServer:
		if n.Server.Hostname != "" {
			return n.Server.Hostname
		}
		return n.Server.ID.String()
	case KindTask:
		return n.Task.Name
	case KindVirtual:
		return n.Name
	}
	return ""
}

func nodeLabel(n Node) string {
	return n.Label()
}
