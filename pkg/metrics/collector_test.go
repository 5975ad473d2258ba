package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type staticSource Counts

func (s staticSource) Counts() Counts { return Counts(s) }

func TestCollectorCollect(t *testing.T) {
	c := NewCollector(staticSource{
		ServersProfiled:  2,
		ServersPending:   1,
		TasksPlaced:      5,
		TasksUnscheduled: 3,
		TasksFinished:    4,
		Subscriptions:    2,
	})
	c.collect()

	assert.Equal(t, 2.0, testutil.ToFloat64(ServersTotal.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ServersTotal.WithLabelValues("false")))
	assert.Equal(t, 5.0, testutil.ToFloat64(TasksTotal.WithLabelValues("placed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(TasksTotal.WithLabelValues("unscheduled")))
	assert.Equal(t, 4.0, testutil.ToFloat64(TasksTotal.WithLabelValues("finished")))
	assert.Equal(t, 2.0, testutil.ToFloat64(SubscriptionsTotal))
}

func TestCollectorStartStop(t *testing.T) {
	c := NewCollector(staticSource{TasksPlaced: 7})
	c.Start()
	c.Stop()
}
