package events

import "sync"

// Watch holds a single latest value. Watchers only ever see the most
// recent value; intermediate values set while a watcher is not reading
// are overwritten.
type Watch[T any] struct {
	mu       sync.Mutex
	value    T
	watchers map[chan T]struct{}
}

// NewWatch creates a watch holding initial.
func NewWatch[T any](initial T) *Watch[T] {
	return &Watch[T]{
		value:    initial,
		watchers: make(map[chan T]struct{}),
	}
}

// Set replaces the value and notifies every watcher.
func (w *Watch[T]) Set(v T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.value = v
	for ch := range w.watchers {
		offer(ch, v)
	}
}

// Get returns the current value.
func (w *Watch[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Subscribe returns a channel that immediately holds the current value and
// afterwards the latest one set. cancel closes the channel.
func (w *Watch[T]) Subscribe() (<-chan T, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan T, 1)
	ch <- w.value
	w.watchers[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.watchers, ch)
			close(ch)
		})
	}
	return ch, cancel
}

// offer replaces any unread value in ch with v. Callers hold the lock, so
// the send cannot block.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
