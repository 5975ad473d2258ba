/*
Package log provides structured logging for flowsched using zerolog.

Init configures the global Logger once at process start. The default
output is a human readable console writer on stderr; JSONOutput switches
to one JSON object per line for log collectors.

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})

Long-lived components create a child logger when they are built and
attach their fields to every message:

	logger := log.WithComponent("scheduler")
	logger.Info().Str("server_id", id.String()).Msg("Server registered")

WithServerID and WithTaskID create loggers for code acting on one server
or task. ParseLevel validates the level names accepted by the
configuration: debug, info, warn and error.
*/
package log
