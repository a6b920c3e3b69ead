// Package debounce defers execution until input has been quiet for a fixed
// window, the way the booking UI held back search re-rendering while the
// user was still typing.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently submitted function once no new call has
// arrived for the configured window. Safe for concurrent use.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given quiet window.
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Call schedules fn, replacing any previously scheduled function and
// resetting the quiet window.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
