/*
Package scheduler places tasks onto servers by solving a minimum cost flow
problem over the current catalogue.

Every mutation (a server registering or submitting its benchmark, a task
being submitted, profiled or finished) triggers a full scheduling pass
under a single lock. A pass rebuilds the flow network from scratch,
solves it with pkg/flow, and delivers the difference between the old and
the new placement to the agents as Run and Remove commands.

# Network Layout

	Source ──1──► Task ──────► Cluster ──count──► Server ──count──► Sink
	               │ │                              ▲
	               │ └──────── request / stay ──────┘
	               └────1────► Unscheduled ──count──────────────────► Sink

Tasks without a request route through the Cluster node, whose edge to each
server costs the server's used share. A placed task also gets a free edge
straight to its current server, so it never moves on its own. Tasks with a
request only connect to servers whose free capacity covers the request.
Every task can fall back to Unscheduled, priced at twice the worst case
profile. Servers that have not been benchmarked are reachable only at
UnprofiledCost, which exceeds the unscheduled cost.

# Delivery

Commands go out in two phases: every Remove before any Run, so a task
moving between servers is never running twice. A change is committed to
the schedule only when its commands were enqueued on the server's
subscription; undelivered changes are retried by the next pass, which the
resync loop started by Start runs periodically.

# Usage

	s := scheduler.NewScheduler(scheduler.DefaultConfig())
	s.Start()
	defer s.Stop()

	needsBenchmark, _ := s.RegisterServer(id, "node-a")
	cmds, cancel := s.SubscribeTasks(id)
	defer cancel()
*/
package scheduler
