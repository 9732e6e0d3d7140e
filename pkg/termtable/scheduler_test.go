package termtable

import (
	"testing"
	"time"
)

func TestSchedulerTicksShareOneMessage(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.NextTick(func() { got = append(got, 1) })
	s.NextTick(func() { got = append(got, 2) })

	if len(s.cmds) != 1 {
		t.Fatalf("queued %d commands, want 1", len(s.cmds))
	}
	if s.Cmd() == nil {
		t.Fatal("Cmd() = nil with a pending tick")
	}
	if s.Cmd() != nil {
		t.Error("Cmd() should drain the queue")
	}

	if !s.Handle(tickMsg{sched: s.id}) {
		t.Fatal("Handle() should accept its own tick")
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("ran %v, want [1 2]", got)
	}
}

func TestSchedulerTickQueuedDuringTick(t *testing.T) {
	s := NewScheduler()
	ran := 0
	s.NextTick(func() {
		s.NextTick(func() { ran++ })
	})
	s.Cmd()
	s.Handle(tickMsg{sched: s.id})

	if ran != 0 {
		t.Fatal("nested tick ran in the same message")
	}
	if !s.tickPending || s.Cmd() == nil {
		t.Fatal("nested tick should queue a new message")
	}
	s.Handle(tickMsg{sched: s.id})
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}

func TestSchedulerIgnoresForeignMessages(t *testing.T) {
	a, b := NewScheduler(), NewScheduler()
	ran := false
	a.NextTick(func() { ran = true })

	if b.Handle(tickMsg{sched: a.id}) {
		t.Error("Handle() accepted another scheduler's tick")
	}
	if b.Handle("key") {
		t.Error("Handle() accepted an unrelated message")
	}
	if ran {
		t.Error("tick ran through the wrong scheduler")
	}
}

func TestSchedulerTimers(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.After(time.Second, func() { fired = append(fired, "kept") })
	cancel := s.After(time.Second, func() { fired = append(fired, "cancelled") })
	cancel()

	if !s.Handle(timerMsg{sched: s.id, id: 2}) {
		t.Error("Handle() should accept a cancelled timer's message")
	}
	if !s.Handle(timerMsg{sched: s.id, id: 1}) {
		t.Error("Handle() should accept its own timer")
	}
	if len(fired) != 1 || fired[0] != "kept" {
		t.Errorf("fired %v, want [kept]", fired)
	}

	// A timer fires at most once.
	s.Handle(timerMsg{sched: s.id, id: 1})
	if len(fired) != 1 {
		t.Errorf("timer fired %d times", len(fired))
	}
}
