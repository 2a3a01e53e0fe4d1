// Package debounce collapses bursts of triggers into a single call.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period applied to text edits.
const DefaultDelay = 200 * time.Millisecond

// Debouncer tracks the latest pending task. Every new trigger supersedes the
// previous one, so only the task for the last trigger in a burst runs.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	gen   uint64
	timer *time.Timer
}

// New creates a Debouncer. A delay <= 0 disables debouncing.
func New(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Next issues a new generation token, invalidating all earlier ones.
func (d *Debouncer) Next() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	return d.gen
}

// Current reports whether gen is still the latest token.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gen == d.gen
}

// Call cancels any outstanding call and schedules fn after the delay.
// With no delay, fn runs synchronously on the caller's goroutine.
func (d *Debouncer) Call(fn func()) {
	gen := d.Next()
	if d.delay == 0 {
		fn()
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		// Stop does not prevent a timer that already fired; the token does.
		if d.Current(gen) {
			fn()
		}
	})
}

// Stop cancels the outstanding call, if any.
func (d *Debouncer) Stop() {
	d.Next()
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
