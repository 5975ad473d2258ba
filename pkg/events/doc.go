/*
Package events provides the in-memory event broker and the latest-value
Watch used by the scheduler.

The Broker broadcasts every published Event to all subscribers. Delivery
is asynchronous and never blocks a publisher; a subscriber whose buffer is
full misses the event and the loss is counted in Dropped. The dashboard
exposes the stream over a websocket.

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)
	for ev := range sub {
		fmt.Println(ev.Type, ev.Message)
	}

A nil *Broker accepts Publish and drops the event, so components can be
built without one.

Watch[T] keeps one current value. Watchers receive the newest value only:
a value set while a watcher is not reading replaces the pending one. The
scheduler publishes a graph snapshot after every pass through a
Watch[*scheduler.GraphSnapshot].
*/
package events
