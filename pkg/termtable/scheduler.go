package termtable

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/tablefit/pkg/trigger"
)

var schedulerIDs atomic.Uint64

// tickMsg runs the queued ticks of one scheduler. bubbletea renders the
// view after every Update, so by the time a tickMsg arrives the state that
// queued the tick is on screen.
type tickMsg struct{ sched uint64 }

// timerMsg fires one timer of one scheduler.
type timerMsg struct {
	sched uint64
	id    uint64
}

// Scheduler is a trigger.Scheduler that runs callbacks as bubbletea
// messages. Deferred work becomes commands, collected with Cmd after every
// Update; callbacks only ever run inside Update, on the program's loop.
type Scheduler struct {
	id          uint64
	ticks       []func()
	tickPending bool
	nextTimer   uint64
	timers      map[uint64]func()
	cmds        []tea.Cmd
}

var _ trigger.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler with its own message namespace.
func NewScheduler() *Scheduler {
	return &Scheduler{
		id:     schedulerIDs.Add(1),
		timers: make(map[uint64]func()),
	}
}

// NextTick queues fn for the next tickMsg.
func (s *Scheduler) NextTick(fn func()) {
	s.ticks = append(s.ticks, fn)
	if s.tickPending {
		return
	}
	s.tickPending = true
	id := s.id
	s.cmds = append(s.cmds, func() tea.Msg { return tickMsg{sched: id} })
}

// After schedules fn with tea.Tick.
func (s *Scheduler) After(d time.Duration, fn func()) func() {
	s.nextTimer++
	tid := s.nextTimer
	s.timers[tid] = fn
	id := s.id
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{sched: id, id: tid}
	}))
	return func() { delete(s.timers, tid) }
}

// Handle runs the callbacks msg stands for and reports whether msg
// belonged to this scheduler.
func (s *Scheduler) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.sched != s.id {
			return false
		}
		s.tickPending = false
		ticks := s.ticks
		s.ticks = nil
		for _, fn := range ticks {
			fn()
		}
		return true
	case timerMsg:
		if msg.sched != s.id {
			return false
		}
		if fn, ok := s.timers[msg.id]; ok {
			delete(s.timers, msg.id)
			fn()
		}
		return true
	}
	return false
}

// Cmd returns the commands queued since the last call, or nil.
func (s *Scheduler) Cmd() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}
