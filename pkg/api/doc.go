/*
Package api implements the flowsched gRPC API server.

The server exposes the flowsched.v1.Scheduler service defined in
api/proto and maps every call onto a scheduler.Scheduler. Agents use it to
register their machine, submit benchmarks, subscribe to task commands,
stream task profiles and report finished tasks; the CLI uses it to submit
and list tasks and to fetch the solved flow graph.

# Error Mapping

Scheduler errors are translated into gRPC status codes:

	scheduler.ErrServerNotFound  -> NotFound
	scheduler.ErrTaskNotFound    -> NotFound
	scheduler.ErrTaskExists      -> AlreadyExists
	scheduler.ErrInvalidTask     -> InvalidArgument
	types.ErrInvalidProfile      -> InvalidArgument
	malformed UUID               -> InvalidArgument

A scheduling pass that could not deliver some commands is not a failure
of the request that triggered it. Those errors are logged and the call
succeeds; the resync loop delivers the commands later.

# Streams

SubscribeTasks holds a scheduler subscription for as long as the stream
is open. When the scheduler closes the subscription, because the same
machine subscribed again or was removed, the stream ends with
Unavailable. StreamTaskProfiles accepts samples until the client closes
its side and answers with the number of samples recorded.

# Health

HealthServer serves /health, /ready and /metrics. The dashboard mounts
its handler; it can also listen on its own address.
*/
package api
