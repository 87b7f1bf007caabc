package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events per key. Only the latest path seen
// for a key is delivered, once, after the key has been quiet for the delay.
type Debouncer struct {
	delay    time.Duration
	callback func(key, path string)

	mu      sync.Mutex
	pending map[string]*time.Timer
	latest  map[string]string
}

// NewDebouncer creates a new Debouncer with the specified delay and callback.
func NewDebouncer(delay time.Duration, callback func(key, path string)) *Debouncer {
	return &Debouncer{
		delay:    delay,
		callback: callback,
		pending:  make(map[string]*time.Timer),
		latest:   make(map[string]string),
	}
}

// Add records path under key and restarts the key's timer.
func (d *Debouncer) Add(key, path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest[key] = path
	if timer, exists := d.pending[key]; exists {
		timer.Stop()
	}

	d.pending[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		p := d.latest[key]
		delete(d.pending, key)
		delete(d.latest, key)
		d.mu.Unlock()

		// Outside the lock: the callback may call Add.
		if d.callback != nil {
			d.callback(key, p)
		}
	})
}

// CancelAll drops every pending key without invoking the callback.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, timer := range d.pending {
		timer.Stop()
		delete(d.pending, key)
		delete(d.latest, key)
	}
}

// PendingCount returns the number of keys waiting to fire.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
