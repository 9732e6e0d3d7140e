package trigger

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tablefit/pkg/observability"
)

// Kind identifies what asked for a recalculation.
type Kind int

const (
	KindActivated Kind = iota
	KindDeactivated
	KindDataLength
	KindResizability
	KindResize
	KindRedo
)

func (k Kind) String() string {
	switch k {
	case KindActivated:
		return "activated"
	case KindDeactivated:
		return "deactivated"
	case KindDataLength:
		return "data-length"
	case KindResizability:
		return "resizability"
	case KindResize:
		return "resize"
	case KindRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Event is one input to the controller. Rows and HasRows are read for
// KindDataLength, CanResize for KindResizability.
type Event struct {
	Kind      Kind
	Rows      int
	HasRows   bool
	CanResize bool
}

// Options configure a Controller.
type Options struct {
	// Table names the table in logs and hooks.
	Table string

	// Debounce and ResizeThrottle override the default timings.
	Debounce       time.Duration
	ResizeThrottle time.Duration

	// Logger receives debug lines for accepted triggers. Nil uses
	// log.Default().
	Logger *log.Logger
}

// Controller turns lifecycle and environment events into calls of a
// recalculation function.
//
//   - Activation recalculates at once, then queues a debounced redo on the
//     next tick so the first paint is corrected once it settles.
//   - Data length and resizability changes queue a debounced redo. Events
//     that repeat the last seen value are dropped.
//   - Resizes recalculate directly, throttled.
//   - Explicit redo requests queue a debounced redo.
//   - Deactivation drops everything pending.
//
// A redo waits one more tick before recalculating. While inactive, events
// only update the last seen values.
type Controller struct {
	sched    Scheduler
	recalc   func()
	table    string
	logger   *log.Logger
	debounce *Debouncer
	throttle *Throttle

	active    bool
	rows      int
	hasRows   bool
	canResize bool

	// epoch changes on every activation and deactivation; ticks queued
	// under an older epoch are stale.
	epoch uint64
}

// NewController creates a controller that calls recalc. The initial data
// length and resizability are the baseline for change detection.
func NewController(s Scheduler, recalc func(), opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		sched:    s,
		recalc:   recalc,
		table:    opts.Table,
		logger:   logger,
		debounce: NewDebouncer(s, opts.Debounce),
		throttle: NewThrottle(s, opts.ResizeThrottle),
	}
}

// Baseline sets the last seen values without triggering anything.
func (c *Controller) Baseline(rows int, hasRows, canResize bool) {
	c.rows, c.hasRows, c.canResize = rows, hasRows, canResize
}

// Active reports whether the table is currently activated.
func (c *Controller) Active() bool { return c.active }

// Dispatch routes e to the matching method.
func (c *Controller) Dispatch(e Event) {
	switch e.Kind {
	case KindActivated:
		c.Activate()
	case KindDeactivated:
		c.Deactivate()
	case KindDataLength:
		c.DataLengthChanged(e.Rows, e.HasRows)
	case KindResizability:
		c.ResizabilityChanged(e.CanResize)
	case KindResize:
		c.ViewportResized()
	case KindRedo:
		c.Redo()
	}
}

// Activate handles mount and re-activation.
func (c *Controller) Activate() {
	c.active = true
	c.epoch++
	c.accept(KindActivated)

	c.run(KindActivated)
	epoch := c.epoch
	c.sched.NextTick(func() {
		if c.epoch != epoch {
			return
		}
		c.debounceRedo(KindActivated)
	})
}

// Deactivate cancels pending work until the next Activate.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	c.epoch++
	c.debounce.Cancel()
	c.throttle.Cancel()
	c.accept(KindDeactivated)
}

// DataLengthChanged records a new row count. hasRows is false when the
// table has no data source at all.
func (c *Controller) DataLengthChanged(rows int, hasRows bool) {
	if rows == c.rows && hasRows == c.hasRows {
		return
	}
	c.rows, c.hasRows = rows, hasRows
	if !c.active {
		return
	}
	c.accept(KindDataLength)
	c.debounceRedo(KindDataLength)
}

// ResizabilityChanged records whether automatic height is in effect.
func (c *Controller) ResizabilityChanged(canResize bool) {
	if canResize == c.canResize {
		return
	}
	c.canResize = canResize
	if !c.active {
		return
	}
	c.accept(KindResizability)
	c.debounceRedo(KindResizability)
}

// ViewportResized handles a change of the viewport size.
func (c *Controller) ViewportResized() {
	if !c.active {
		return
	}
	c.accept(KindResize)
	c.throttle.Call(func() { c.run(KindResize) })
}

// Redo requests a debounced recalculation.
func (c *Controller) Redo() {
	if !c.active {
		return
	}
	c.accept(KindRedo)
	c.debounceRedo(KindRedo)
}

func (c *Controller) debounceRedo(kind Kind) {
	epoch := c.epoch
	c.debounce.Call(func() {
		c.sched.NextTick(func() {
			if c.epoch != epoch || !c.active {
				return
			}
			c.run(kind)
		})
	})
}

func (c *Controller) accept(kind Kind) {
	c.logger.Debug("trigger", "table", c.table, "kind", kind)
	observability.Trigger().OnTrigger(c.table, kind.String())
}

func (c *Controller) run(kind Kind) {
	observability.Trigger().OnRun(c.table, kind.String())
	c.recalc()
}
