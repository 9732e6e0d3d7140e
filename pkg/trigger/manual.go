package trigger

import (
	"sort"
	"time"
)

// maxSteps bounds Flush so a callback that keeps rescheduling itself cannot
// hang the caller.
const maxSteps = 10000

// Manual is a Scheduler driven by a virtual clock. Ticks run in FIFO order
// when RunTicks, Advance or Flush is called; timers run in due order, ties
// in the order they were scheduled. It is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    uint64
	ticks  []func()
	timers []*manualTimer
}

type manualTimer struct {
	due  time.Duration
	seq  uint64
	fn   func()
	dead bool
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

var _ Scheduler = (*Manual)(nil)

// NextTick queues fn for the next RunTicks.
func (m *Manual) NextTick(fn func()) {
	m.ticks = append(m.ticks, fn)
}

// After schedules fn at now+d.
func (m *Manual) After(d time.Duration, fn func()) func() {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{due: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return func() { t.dead = true }
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of queued ticks and live timers.
func (m *Manual) Pending() int {
	n := len(m.ticks)
	for _, t := range m.timers {
		if !t.dead {
			n++
		}
	}
	return n
}

// RunTicks runs queued ticks, including ticks queued by those ticks, and
// returns how many ran.
func (m *Manual) RunTicks() int {
	n := 0
	for len(m.ticks) > 0 && n < maxSteps {
		fn := m.ticks[0]
		m.ticks = m.ticks[1:]
		fn()
		n++
	}
	return n
}

// Advance moves the clock forward by d, running ticks and every timer that
// falls due on the way, each at its own due time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for steps := 0; steps < maxSteps; steps++ {
		m.RunTicks()
		t := m.next()
		if t == nil || t.due > target {
			break
		}
		m.fire(t)
	}
	m.now = target
	m.RunTicks()
}

// Flush runs ticks and timers until nothing is pending, moving the clock
// to the last timer that ran.
func (m *Manual) Flush() {
	for steps := 0; steps < maxSteps; steps++ {
		m.RunTicks()
		t := m.next()
		if t == nil {
			return
		}
		m.fire(t)
	}
}

func (m *Manual) next() *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.dead {
			live = append(live, t)
		}
	}
	m.timers = live
	if len(m.timers) == 0 {
		return nil
	}
	sort.Slice(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	return m.timers[0]
}

func (m *Manual) fire(t *manualTimer) {
	t.dead = true
	if t.due > m.now {
		m.now = t.due
	}
	t.fn()
}
