/*
Package config loads the settings of the scheduler and agent processes.

Both configurations start from their Default constructors; a YAML file
passed to LoadSchedulerConfig or LoadAgentConfig overrides the keys it
sets. Command line flags are applied on top by cmd/flowsched.

	grpcAddr: 0.0.0.0:7070
	httpAddr: 0.0.0.0:7080
	dataDir: /var/lib/flowsched
	sendTimeout: 5s
	log:
	  level: debug

Durations use Go syntax ("250ms", "30s").
*/
package config
