package config

import (
	"sync"
	"time"
)

// DefaultDebounce is the default quiet period before a reload fires.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer coalesces bursts of calls to Trigger into one callback, run
// once the burst has been quiet for the debounce duration. Editors often
// write a file in several steps; only the last one should reload.
type Debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
}

// NewDebouncer creates a Debouncer. A zero duration uses DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback, replacing anything already scheduled.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that fired while being replaced must not run.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
