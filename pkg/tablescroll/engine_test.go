package tablescroll

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tablefit/pkg/geometry"
	"github.com/matzehuels/tablefit/pkg/layout"
	"github.com/matzehuels/tablefit/pkg/trigger"
)

type dialogCounter struct{ n int }

func (d *dialogCounter) RedoHeight() { d.n++ }

// scenario is the reference table: 600 cells from the header's top edge to
// the bottom of the viewport, a 40 high header and 30 high pagination.
func scenario() *geometry.Static {
	return &geometry.Static{
		RootBox:       &geometry.StaticRoot{Box: geometry.Box{H: 700, W: 250}},
		BodyBox:       &geometry.StaticBody{Box: geometry.Box{H: 300, W: 250}, ContentH: 300, ContentW: 250},
		HeaderBox:     &geometry.Box{H: 40},
		PaginationBox: &geometry.Box{H: 30},
		Below:         600,
	}
}

func newEngine(s *geometry.Static, cfg layout.Config, opts ...Option) (*Engine, *trigger.Manual, *dialogCounter) {
	m := trigger.NewManual()
	d := &dialogCounter{}
	base := []Option{
		WithConfig(cfg),
		WithContainer(s),
		WithScheduler(m),
		WithDialogHost(d),
		WithLogger(log.New(io.Discard)),
		WithTableID("orders"),
		WithDataLength(5, true),
	}
	return New(s, append(base, opts...)...), m, d
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestEngineCommitsHeight(t *testing.T) {
	s := scenario()
	e, m, d := newEngine(s, layout.Config{CanResize: true})

	if got := e.TableHeight(); got != layout.DefaultPlaceholderHeight {
		t.Fatalf("initial TableHeight() = %d, want placeholder %d", got, layout.DefaultPlaceholderHeight)
	}

	e.Activate()
	if e.Committed() {
		t.Fatal("height committed before the tick")
	}
	m.Flush()

	if got := e.TableHeight(); got != 511 {
		t.Errorf("TableHeight() = %d, want 511", got)
	}
	if s.BodyBox.Style == nil || *s.BodyBox.Style != 511 {
		t.Errorf("body height = %v, want 511", s.BodyBox.Style)
	}
	if st := e.ScrollState(); st.Y == nil || *st.Y != 511 {
		t.Errorf("ScrollState().Y = %v, want 511", st.Y)
	}
	// One commit on activation and one from the debounced follow-up.
	if d.n != 2 {
		t.Errorf("dialog notified %d times, want 2", d.n)
	}
	if e.LastSkip() != SkipNone {
		t.Errorf("LastSkip() = %q, want none", e.LastSkip())
	}
	if b := e.Breakdown(); b.Mode != layout.ModeViewport || b.Bottom != 600 {
		t.Errorf("Breakdown() = %+v", b)
	}
}

func TestEngineHeightScenarios(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*geometry.Static)
		cfg    layout.Config
		want   int
	}{
		{
			name: "reference",
			cfg:  layout.Config{CanResize: true},
			want: 511,
		},
		{
			name: "max height",
			cfg:  layout.Config{CanResize: true, MaxHeight: intPtr(400)},
			want: 400,
		},
		{
			name:   "pagination absent",
			mutate: func(s *geometry.Static) { s.PaginationBox = nil },
			cfg:    layout.Config{CanResize: true},
			want:   551,
		},
		{
			name:   "nested layout",
			mutate: func(s *geometry.Static) { s.RootBox.Nested = true },
			cfg:    layout.Config{CanResize: true},
			want:   498,
		},
		{
			name: "min height",
			cfg:  layout.Config{CanResize: true, MinHeight: 520},
			want: 520,
		},
		{
			name: "parent managed",
			mutate: func(s *geometry.Static) {
				s.WrapBox = &geometry.Box{H: 800}
				s.FormBox = &geometry.Box{H: 60}
			},
			cfg: layout.Config{CanResize: true, CanResizeParent: true},
			// 800 - (60+16) - 0 - 12 - 10 = 702; 702 - 17 - 32 - 0 - 40
			want: 613,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scenario()
			if tt.mutate != nil {
				tt.mutate(s)
			}
			e, m, _ := newEngine(s, tt.cfg)
			e.Activate()
			m.Flush()
			if got := e.TableHeight(); got != tt.want {
				t.Errorf("TableHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEngineResizeDisabled(t *testing.T) {
	s := scenario()
	s.BodyBox.Style = intPtr(123)
	e, m, d := newEngine(s, layout.Config{CanResize: false})

	e.Activate()
	m.Flush()

	if st := e.ScrollState(); st.Y != nil {
		t.Errorf("ScrollState().Y = %d, want nil", *st.Y)
	}
	if e.LastSkip() != SkipDisabled {
		t.Errorf("LastSkip() = %q, want %q", e.LastSkip(), SkipDisabled)
	}
	if d.n != 0 {
		t.Errorf("dialog notified %d times, want 0", d.n)
	}
	// The body constraint is released and the hints refreshed even so.
	if s.BodyBox.Style != nil {
		t.Errorf("body height = %d, want released", *s.BodyBox.Style)
	}
	if !s.RootBox.HideY || !s.RootBox.HideX {
		t.Errorf("hints = (y %v, x %v), want both hidden", s.RootBox.HideY, s.RootBox.HideX)
	}
}

func TestEngineExplicitYDisablesResize(t *testing.T) {
	s := scenario()
	cfg := layout.Config{CanResize: true, Scroll: layout.ExplicitScroll{Y: intPtr(50)}}
	e, m, _ := newEngine(s, cfg)

	e.Activate()
	m.Flush()

	if e.Committed() {
		t.Error("explicit Y should disable automatic height")
	}
	if st := e.ScrollState(); st.Y == nil || *st.Y != 50 {
		t.Errorf("ScrollState().Y = %v, want 50", st.Y)
	}
}

func TestEngineEmptyDataSizesMarker(t *testing.T) {
	s := scenario()
	s.Empty = &geometry.StaticMarker{}
	e, m, _ := newEngine(s, layout.Config{CanResize: true}, WithDataLength(0, true))

	e.Activate()
	m.Flush()

	if got := e.TableHeight(); got != 511 {
		t.Fatalf("TableHeight() = %d, want 511", got)
	}
	if s.Empty.Style == nil || *s.Empty.Style != 510 {
		t.Errorf("marker height = %v, want 510", s.Empty.Style)
	}
}

func TestEngineMarkerIgnoredWithRows(t *testing.T) {
	s := scenario()
	s.Empty = &geometry.StaticMarker{}
	e, m, _ := newEngine(s, layout.Config{CanResize: true})

	e.Activate()
	m.Flush()

	if s.Empty.Style != nil {
		t.Errorf("marker height = %d, want untouched", *s.Empty.Style)
	}
}

func TestEngineNoDataSource(t *testing.T) {
	s := scenario()
	e, m, _ := newEngine(s, layout.Config{CanResize: true}, WithDataLength(0, false))

	e.Activate()
	m.Flush()

	if e.LastSkip() != SkipNoData {
		t.Errorf("LastSkip() = %q, want %q", e.LastSkip(), SkipNoData)
	}
	if got := e.TableHeight(); got != layout.DefaultPlaceholderHeight {
		t.Errorf("TableHeight() = %d, want placeholder", got)
	}

	e.SetDataLength(3, true)
	m.Flush()
	if got := e.TableHeight(); got != 511 {
		t.Errorf("after data arrives TableHeight() = %d, want 511", got)
	}
}

func TestEngineSkipsUntilMounted(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*geometry.Static)
		want   SkipReason
	}{
		{"root", func(s *geometry.Static) { s.RootBox = nil }, SkipNoRoot},
		{"body", func(s *geometry.Static) { s.BodyBox = nil }, SkipNoBody},
		{"header", func(s *geometry.Static) { s.HeaderBox = nil }, SkipNoHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := scenario()
			s := scenario()
			tt.mutate(s)
			e, m, d := newEngine(s, layout.Config{CanResize: true})

			e.Activate()
			m.Flush()
			if e.LastSkip() != tt.want {
				t.Errorf("LastSkip() = %q, want %q", e.LastSkip(), tt.want)
			}
			if d.n != 0 {
				t.Errorf("dialog notified %d times, want 0", d.n)
			}

			// Mount the missing region and ask again.
			*s = *full
			e.Redo()
			m.Flush()
			if got := e.TableHeight(); got != 511 {
				t.Errorf("after mount TableHeight() = %d, want 511", got)
			}
		})
	}
}

func TestEngineDeactivateDropsQueuedPhase(t *testing.T) {
	s := scenario()
	e, m, d := newEngine(s, layout.Config{CanResize: true})

	e.Activate()
	e.Deactivate()
	m.Flush()

	if e.Committed() || d.n != 0 {
		t.Errorf("committed after deactivation, dialog %d", d.n)
	}
	if e.Active() {
		t.Error("Active() should be false")
	}
}

func TestEngineSharesQueuedPhase(t *testing.T) {
	s := scenario()
	e, m, d := newEngine(s, layout.Config{CanResize: true})
	e.Activate()
	m.Flush()
	base := d.n

	e.Recalculate()
	e.Recalculate()
	m.RunTicks()
	if got := d.n - base; got != 1 {
		t.Errorf("two first phases produced %d commits, want 1", got)
	}
}

func TestEngineDataChangesCoalesce(t *testing.T) {
	s := scenario()
	e, m, d := newEngine(s, layout.Config{CanResize: true})
	e.Activate()
	m.Flush()
	base := d.n

	for n := 6; n < 12; n++ {
		e.SetDataLength(n, true)
	}
	m.Flush()
	if got := d.n - base; got != 1 {
		t.Errorf("data burst produced %d commits, want 1", got)
	}
}

func TestEngineTriggerTimings(t *testing.T) {
	s := scenario()
	e, m, d := newEngine(s, layout.Config{CanResize: true},
		WithTriggerOptions(trigger.Options{Debounce: 50 * time.Millisecond}))
	e.Activate()
	m.Flush()
	base := d.n

	e.SetDataLength(6, true)
	m.Advance(49 * time.Millisecond)
	if d.n != base {
		t.Fatalf("recalculated %d times before the debounce elapsed", d.n-base)
	}
	m.Advance(time.Millisecond)
	if got := d.n - base; got != 1 {
		t.Errorf("commits after 50ms = %d, want 1", got)
	}
}

func TestEngineResizeFollowsViewport(t *testing.T) {
	s := scenario()
	e, m, _ := newEngine(s, layout.Config{CanResize: true})
	e.Activate()
	m.Flush()

	s.Below = 400
	e.Resize()
	m.RunTicks()
	if got := e.TableHeight(); got != 311 {
		t.Errorf("after resize TableHeight() = %d, want 311", got)
	}
}

func TestEngineConfigChange(t *testing.T) {
	s := scenario()
	e, m, d := newEngine(s, layout.Config{CanResize: false})
	e.Activate()
	m.Flush()

	e.SetConfig(layout.Config{CanResize: true})
	m.Flush()
	if d.n != 1 || e.TableHeight() != 511 {
		t.Errorf("enabling resize: dialog %d, height %d", d.n, e.TableHeight())
	}
	if !e.Config().CanResize {
		t.Error("Config() should return the new config")
	}
}

func TestEngineScrollbarHints(t *testing.T) {
	s := scenario()
	s.BodyBox.ContentH = 800
	e, m, _ := newEngine(s, layout.Config{CanResize: true})

	e.Activate()
	m.Flush()

	// The last cycle saw the body constrained to 511 rows of 800.
	if s.RootBox.HideY {
		t.Error("vertical scrollbar should be shown")
	}
	if !s.RootBox.HideX {
		t.Error("horizontal scrollbar should be hidden")
	}
}

func TestScrollState(t *testing.T) {
	cols := []layout.Column{
		{Key: "name", Width: 100},
		{Key: "email", Width: 200},
		{Key: "notes", Width: 500, DefaultHidden: true},
	}

	t.Run("computed", func(t *testing.T) {
		e, m, _ := newEngine(scenario(), layout.Config{CanResize: true}, WithColumns(cols))
		e.Activate()
		m.Flush()
		st := e.ScrollState()
		if st.X == nil || *st.X != 300 {
			t.Errorf("X = %v, want 300", st.X)
		}
		if st.Y == nil || *st.Y != 511 {
			t.Errorf("Y = %v, want 511", st.Y)
		}
		if !st.ScrollToFirstRowOnChange {
			t.Error("ScrollToFirstRowOnChange should default to true")
		}
	})

	t.Run("wide table", func(t *testing.T) {
		s := scenario()
		s.RootBox.W = 400
		e, _, _ := newEngine(s, layout.Config{}, WithColumns(cols))
		e.SetColumns(cols)
		if st := e.ScrollState(); st.X != nil {
			t.Errorf("X = %d, want nil", *st.X)
		}
	})

	t.Run("explicit overrides", func(t *testing.T) {
		cfg := layout.Config{
			CanResize: true,
			Scroll: layout.ExplicitScroll{
				X:                        intPtr(999),
				ScrollToFirstRowOnChange: boolPtr(false),
			},
		}
		e, m, _ := newEngine(scenario(), cfg, WithColumns(cols))
		e.Activate()
		m.Flush()
		st := e.ScrollState()
		if st.X == nil || *st.X != 999 {
			t.Errorf("X = %v, want 999", st.X)
		}
		if st.Y == nil || *st.Y != 511 {
			t.Errorf("Y = %v, want 511", st.Y)
		}
		if st.ScrollToFirstRowOnChange {
			t.Error("ScrollToFirstRowOnChange should be overridden")
		}
	})

	t.Run("placeholder before commit", func(t *testing.T) {
		e, _, _ := newEngine(scenario(), layout.Config{CanResize: true})
		if st := e.ScrollState(); st.Y == nil || *st.Y != layout.DefaultPlaceholderHeight {
			t.Errorf("Y = %v, want placeholder", st.Y)
		}
	})
}
