package trigger

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type recorder struct {
	m     *Manual
	calls []time.Duration
}

func (r *recorder) recalc() { r.calls = append(r.calls, r.m.Now()) }

func newTestController() (*Controller, *recorder) {
	m := NewManual()
	r := &recorder{m: m}
	c := NewController(m, r.recalc, Options{Table: "orders", Logger: log.New(io.Discard)})
	return c, r
}

func TestActivateRecalculatesBeforeDebouncedRedo(t *testing.T) {
	c, r := newTestController()

	c.Activate()
	if len(r.calls) != 1 || r.calls[0] != 0 {
		t.Fatalf("activation should recalculate at once, calls = %v", r.calls)
	}

	r.m.Advance(DefaultDebounce - time.Millisecond)
	if len(r.calls) != 1 {
		t.Fatalf("debounced redo ran early, calls = %v", r.calls)
	}
	r.m.Advance(time.Millisecond)
	if len(r.calls) != 2 {
		t.Fatalf("calls = %v, want immediate and debounced", r.calls)
	}
	if r.calls[1] != DefaultDebounce {
		t.Errorf("debounced redo ran at %v, want %v", r.calls[1], DefaultDebounce)
	}
}

func TestDataChangesCoalesce(t *testing.T) {
	c, r := newTestController()
	c.Activate()
	r.m.Flush()
	base := len(r.calls)

	for n := 1; n <= 5; n++ {
		c.DataLengthChanged(n, true)
		r.m.Advance(50 * time.Millisecond)
	}
	c.ResizabilityChanged(true)
	r.m.Flush()

	if got := len(r.calls) - base; got != 1 {
		t.Errorf("burst produced %d recalculations, want 1", got)
	}
}

func TestRepeatedValuesAreDropped(t *testing.T) {
	c, r := newTestController()
	c.Baseline(3, true, true)
	c.Activate()
	r.m.Flush()
	base := len(r.calls)

	c.DataLengthChanged(3, true)
	c.ResizabilityChanged(true)
	r.m.Flush()
	if len(r.calls) != base {
		t.Errorf("unchanged values triggered %d recalculations", len(r.calls)-base)
	}

	c.DataLengthChanged(3, false)
	r.m.Flush()
	if len(r.calls) != base+1 {
		t.Errorf("losing the data source should trigger, calls = %d", len(r.calls)-base)
	}
}

func TestInactiveControllerOnlyRecords(t *testing.T) {
	c, r := newTestController()

	c.DataLengthChanged(10, true)
	c.ResizabilityChanged(true)
	c.ViewportResized()
	c.Redo()
	r.m.Flush()
	if len(r.calls) != 0 {
		t.Fatalf("inactive controller recalculated: %v", r.calls)
	}

	// The recorded values are the new baseline.
	c.Activate()
	r.m.Flush()
	base := len(r.calls)
	c.DataLengthChanged(10, true)
	r.m.Flush()
	if len(r.calls) != base {
		t.Error("value recorded while inactive should not trigger again")
	}
}

func TestDeactivateDropsPendingWork(t *testing.T) {
	c, r := newTestController()
	c.Activate()
	c.Deactivate()
	r.m.Flush()
	if len(r.calls) != 1 {
		t.Errorf("calls = %v, want only the activation", r.calls)
	}
	if c.Active() {
		t.Error("Active() should be false")
	}

	c.Activate()
	r.m.RunTicks()
	r.m.Advance(100 * time.Millisecond)
	c.DataLengthChanged(1, true)
	c.Deactivate()
	r.m.Flush()
	if len(r.calls) != 2 {
		t.Errorf("calls = %v, want the two activations only", r.calls)
	}
}

func TestResizeIsThrottled(t *testing.T) {
	c, r := newTestController()
	c.Activate()
	r.m.Flush()
	base := len(r.calls)

	c.ViewportResized()
	if len(r.calls) != base+1 {
		t.Fatalf("first resize should recalculate at once")
	}
	for i := 0; i < 5; i++ {
		r.m.Advance(20 * time.Millisecond)
		c.ViewportResized()
	}
	r.m.Flush()
	if got := len(r.calls) - base; got != 2 {
		t.Errorf("resize burst produced %d recalculations, want 2", got)
	}
}

func TestRedoWaitsForQuietPeriod(t *testing.T) {
	c, r := newTestController()
	c.Activate()
	r.m.Flush()
	base := len(r.calls)

	c.Redo()
	c.Redo()
	r.m.Advance(DefaultDebounce)
	if got := len(r.calls) - base; got != 1 {
		t.Errorf("redo requests produced %d recalculations, want 1", got)
	}
}

func TestDispatch(t *testing.T) {
	c, r := newTestController()

	c.Dispatch(Event{Kind: KindActivated})
	if !c.Active() || len(r.calls) != 1 {
		t.Fatalf("activated event not routed, calls = %v", r.calls)
	}
	r.m.Flush()
	c.Dispatch(Event{Kind: KindDataLength, Rows: 4, HasRows: true})
	c.Dispatch(Event{Kind: KindResizability, CanResize: true})
	r.m.Flush()
	if len(r.calls) != 3 {
		t.Errorf("calls = %d, want 3", len(r.calls))
	}
	c.Dispatch(Event{Kind: KindDeactivated})
	if c.Active() {
		t.Error("deactivated event not routed")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindActivated:    "activated",
		KindDeactivated:  "deactivated",
		KindDataLength:   "data-length",
		KindResizability: "resizability",
		KindResize:       "resize",
		KindRedo:         "redo",
		Kind(99):         "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
