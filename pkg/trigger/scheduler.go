// Package trigger decides when a table's layout is recalculated.
//
// Recalculation is cheap but not free, and the events that call for it
// (data reloads, capability toggles, terminal resizes) tend to arrive in
// bursts. The package funnels them through a [Controller] that coalesces
// bursts with a [Debouncer] and rate-limits resizes with a [Throttle].
//
// Nothing here starts goroutines or sleeps. Deferred work is handed to a
// [Scheduler], which the host implements on top of its own event loop so
// every callback runs on that loop. [Manual] is a scheduler driven by a
// virtual clock.
package trigger

import "time"

// Default timings.
const (
	// DefaultDebounce is the quiet period before a coalesced redo runs.
	DefaultDebounce = 200 * time.Millisecond

	// DefaultResizeThrottle is the minimum spacing of resize-driven
	// recalculations. It is longer than the host's resize animation.
	DefaultResizeThrottle = 280 * time.Millisecond
)

// Scheduler defers callbacks onto the host's event loop.
type Scheduler interface {
	// NextTick runs fn after the pending render has been flushed, so fn
	// observes the layout produced by the current state.
	NextTick(fn func())

	// After runs fn once d has elapsed. The returned cancel prevents fn from
	// running if it has not run yet; calling it later is harmless.
	After(d time.Duration, fn func()) (cancel func())
}

// Debouncer runs the last of a burst of calls once the burst has been quiet
// for the wait period (trailing edge).
type Debouncer struct {
	sched  Scheduler
	wait   time.Duration
	gen    uint64
	cancel func()
}

// NewDebouncer creates a debouncer. A wait of zero uses DefaultDebounce.
func NewDebouncer(s Scheduler, wait time.Duration) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounce
	}
	return &Debouncer{sched: s, wait: wait}
}

// Call schedules fn, superseding any call still pending.
func (d *Debouncer) Call(fn func()) {
	d.Cancel()
	d.gen++
	gen := d.gen
	d.cancel = d.sched.After(d.wait, func() {
		// A superseded timer that fires anyway must not run.
		if gen != d.gen || d.cancel == nil {
			return
		}
		d.cancel = nil
		fn()
	})
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer) Pending() bool { return d.cancel != nil }

// Throttle runs the first call of a burst immediately and at most one more
// at the end of the window, using the latest function it was given.
type Throttle struct {
	sched    Scheduler
	window   time.Duration
	gen      uint64
	open     bool
	cancel   func()
	trailing func()
}

// NewThrottle creates a throttle. A window of zero uses
// DefaultResizeThrottle.
func NewThrottle(s Scheduler, window time.Duration) *Throttle {
	if window <= 0 {
		window = DefaultResizeThrottle
	}
	return &Throttle{sched: s, window: window}
}

// Call runs fn now if no window is open, otherwise keeps it for the end of
// the current window.
func (t *Throttle) Call(fn func()) {
	if t.open {
		t.trailing = fn
		return
	}
	t.open = true
	t.gen++
	gen := t.gen
	t.cancel = t.sched.After(t.window, func() { t.expire(gen) })
	fn()
}

func (t *Throttle) expire(gen uint64) {
	if gen != t.gen || !t.open {
		return
	}
	t.open = false
	t.cancel = nil
	if fn := t.trailing; fn != nil {
		t.trailing = nil
		t.Call(fn)
	}
}

// Cancel closes the window and drops the trailing call.
func (t *Throttle) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
	t.gen++
	t.open = false
	t.cancel = nil
	t.trailing = nil
}
