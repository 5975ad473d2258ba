package metrics

import (
	"time"
)

// Counts is a point in time summary of the scheduler catalogue.
type Counts struct {
	ServersProfiled  int
	ServersPending   int
	TasksPlaced      int
	TasksUnscheduled int
	TasksFinished    int
	Subscriptions    int
}

// Source provides catalogue counts to a Collector.
type Source interface {
	Counts() Counts
}

// Collector periodically copies catalogue counts into gauges.
type Collector struct {
	source   Source
	interval time.Duration
	stopCh   chan struct{}
}

// NewCollector creates a collector sampling src every 15 seconds.
func NewCollector(src Source) *Collector {
	return &Collector{
		source:   src,
		interval: 15 * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(c.interval)
	go func() {
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	counts := c.source.Counts()

	ServersTotal.WithLabelValues("true").Set(float64(counts.ServersProfiled))
	ServersTotal.WithLabelValues("false").Set(float64(counts.ServersPending))

	TasksTotal.WithLabelValues("placed").Set(float64(counts.TasksPlaced))
	TasksTotal.WithLabelValues("unscheduled").Set(float64(counts.TasksUnscheduled))
	TasksTotal.WithLabelValues("finished").Set(float64(counts.TasksFinished))

	SubscriptionsTotal.Set(float64(counts.Subscriptions))
}
