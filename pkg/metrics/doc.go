/*
Package metrics provides Prometheus metrics and component health for
flowsched.

All collectors are package-level variables registered with the default
registry in init, and Handler serves them for scraping.

# Scheduler

	flowsched_servers_total{profiled}           gauge
	flowsched_tasks_total{state}                gauge (placed, unscheduled, finished)
	flowsched_subscriptions_total               gauge
	flowsched_scheduling_latency_seconds        histogram, one sample per pass
	flowsched_scheduling_passes_total{result}   counter (ok, delivery_failed)
	flowsched_task_commands_total{state}        counter (run, remove)
	flowsched_task_command_failures_total{state}   counter
	flowsched_flow_augmentations_total          counter
	flowsched_flow_cycles_cancelled_total       counter
	flowsched_flow_graph_edges                  gauge, edges of the last network

The gauges are filled by a Collector that copies Counts from the
scheduler every 15 seconds:

	collector := metrics.NewCollector(sched)
	collector.Start()
	defer collector.Stop()

# API and agent

	flowsched_api_requests_total{method,code}
	flowsched_api_request_duration_seconds{method}
	flowsched_agent_tasks_running
	flowsched_agent_profiles_sent_total

# Timing

Timer measures an operation and observes it into a histogram:

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.SchedulingLatency)

# Health

Components register with the health checker and update their state.
GetReadiness fails while a component named in SetCriticalComponents is
unhealthy. HealthHandler, ReadyHandler and LivenessHandler serve the
results as JSON.
*/
package metrics
