package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Catalogue metrics
	ServersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flowsched_servers_total",
			Help: "Registered servers by benchmark state",
		},
		[]string{"profiled"},
	)

	TasksTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "flowsched_tasks_total",
			Help: "Known tasks by state (placed, unscheduled, finished)",
		},
		[]string{"state"},
	)

	SubscriptionsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "flowsched_subscriptions_total",
			Help: "Agents currently subscribed to task commands",
		},
	)

	// Scheduler metrics
	SchedulingLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowsched_scheduling_latency_seconds",
			Help:    "Duration of one build, solve and place pass",
			Buckets: prometheus.DefBuckets,
		},
	)

	SchedulingPasses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowsched_scheduling_passes_total",
			Help: "Scheduling passes by result (ok, delivery_failed)",
		},
		[]string{"result"},
	)

	TaskCommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowsched_task_commands_total",
			Help: "Task commands delivered to agents by state",
		},
		[]string{"state"},
	)

	TaskCommandFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowsched_task_command_failures_total",
			Help: "Task commands that could not be delivered by state",
		},
		[]string{"state"},
	)

	// Flow engine metrics
	FlowAugmentations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flowsched_flow_augmentations_total",
			Help: "Augmenting paths applied by the max flow phase",
		},
	)

	FlowCyclesCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flowsched_flow_cycles_cancelled_total",
			Help: "Negative residual cycles cancelled",
		},
	)

	FlowGraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "flowsched_flow_graph_edges",
			Help: "Edges in the most recent scheduling graph",
		},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowsched_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "code"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowsched_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Agent metrics
	AgentTasksRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "flowsched_agent_tasks_running",
			Help: "Tasks currently running on this agent",
		},
	)

	AgentProfilesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flowsched_agent_profiles_sent_total",
			Help: "Task profile samples streamed to the scheduler",
		},
	)
)

func init() {
	prometheus.MustRegister(ServersTotal)
	prometheus.MustRegister(TasksTotal)
	prometheus.MustRegister(SubscriptionsTotal)
	prometheus.MustRegister(SchedulingLatency)
	prometheus.MustRegister(SchedulingPasses)
	prometheus.MustRegister(TaskCommandsTotal)
	prometheus.MustRegister(TaskCommandFailures)
	prometheus.MustRegister(FlowAugmentations)
	prometheus.MustRegister(FlowCyclesCancelled)
	prometheus.MustRegister(FlowGraphEdges)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(AgentTasksRunning)
	prometheus.MustRegister(AgentProfilesSent)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
