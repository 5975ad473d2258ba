/*
Package dashboard serves the HTTP view of a running scheduler.

Routes:

	GET  /health, /ready, /metrics    liveness, readiness, Prometheus
	GET  /api/servers                 registered servers
	GET  /api/tasks                   tasks with their placement
	POST /api/tasks                   submit a task
	GET  /api/tasks/{taskID}          one task
	GET  /api/schedule                task ID to server ID
	GET  /api/schedule/graph          latest flow network as JSON
	GET  /api/schedule/graph.dot      latest flow network as Graphviz
	GET  /api/schedule/graph/ws       websocket, one message per pass
	GET  /api/events                  websocket of cluster events

The graph websocket only ever sends the newest snapshot; a client that
reads slowly skips intermediate passes rather than falling behind.
*/
package dashboard
