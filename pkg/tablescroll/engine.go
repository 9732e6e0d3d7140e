// Package tablescroll keeps a table body sized to the space it has.
//
// An [Engine] owns one table. It measures the table through a
// [geometry.Accessor], derives the body height with [layout.Height] and the
// horizontal scroll width with [layout.ScrollWidth], and writes the results
// back: the body height onto the body region and into [Engine.ScrollState]
// for the host's renderer. A [trigger.Controller] decides when this
// happens.
//
// Every recalculation has two phases. The first resolves the root and body,
// refreshes the scrollbar hints, releases the body height and returns; the
// second runs on the next tick, after the host has re-rendered with the
// released height, and measures and commits. The engine never blocks and
// never returns errors: a table that is not mounted yet is skipped and
// tried again on the next trigger.
package tablescroll

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tablefit/pkg/geometry"
	"github.com/matzehuels/tablefit/pkg/layout"
	"github.com/matzehuels/tablefit/pkg/observability"
	"github.com/matzehuels/tablefit/pkg/trigger"
)

// DialogHost is implemented by an enclosing dialog that sizes itself to its
// content. It is told after every committed height.
type DialogHost interface {
	RedoHeight()
}

// SkipReason says why a recalculation stopped before committing.
type SkipReason string

const (
	SkipNone       SkipReason = ""
	SkipNoRoot     SkipReason = "no root"
	SkipNoBody     SkipReason = "no body"
	SkipNoHeader   SkipReason = "no header"
	SkipNoViewport SkipReason = "no viewport"
	SkipDisabled   SkipReason = "resize disabled"
	SkipNoData     SkipReason = "no data source"
	SkipInactive   SkipReason = "inactive"
)

// Engine sizes one table. It is not safe for concurrent use: every method,
// and every callback it hands to its scheduler, must run on the host loop.
type Engine struct {
	acc       geometry.Accessor
	container geometry.Container
	viewport  geometry.Viewport
	reader    *geometry.Reader

	cfg     layout.Config
	cols    []layout.Column
	rows    int
	hasRows bool

	sched       trigger.Scheduler
	triggerOpts trigger.Options
	ctrl        *trigger.Controller

	dialog   DialogHost
	snapshot Snapshot
	logger   *log.Logger
	ctx      context.Context
	table    string
	session  string
	now      func() time.Time

	height     int
	breakdown  layout.Breakdown
	committed  bool
	scrollX    int
	hasScrollX bool
	lastSkip   SkipReason
	measuring  bool
	marker     geometry.Marker
	started    time.Time
}

// New creates an engine for the table behind acc. Without WithScheduler the
// engine uses a [trigger.Manual], reachable through Scheduler. Until the
// first commit the height is the placeholder, or the height saved in the
// snapshot, which is read on activation.
func New(acc geometry.Accessor, opts ...Option) *Engine {
	e := &Engine{
		acc:    acc,
		height: layout.DefaultPlaceholderHeight,
		ctx:    context.Background(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sched == nil {
		e.sched = trigger.NewManual()
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	if e.table == "" {
		e.table = "table"
	}
	e.reader = geometry.NewReader(acc, e.container, e.viewport)

	topts := e.triggerOpts
	topts.Table = e.table
	if topts.Logger == nil {
		topts.Logger = e.logger
	}
	e.ctrl = trigger.NewController(e.sched, e.Recalculate, topts)
	e.ctrl.Baseline(e.rows, e.hasRows, e.cfg.CanResizeEffective())
	e.updateScrollX()
	return e
}

// Scheduler returns the scheduler the engine defers work to.
func (e *Engine) Scheduler() trigger.Scheduler { return e.sched }

// Controller returns the trigger controller of the engine.
func (e *Engine) Controller() *trigger.Controller { return e.ctrl }

// Config returns the current configuration.
func (e *Engine) Config() layout.Config { return e.cfg }

// =============================================================================
// Lifecycle and inputs
// =============================================================================

// Activate handles mount and re-activation of the table.
func (e *Engine) Activate() {
	e.reader.Invalidate()
	e.session = uuid.NewString()
	if !e.committed && e.snapshot != nil {
		if h, ok := e.snapshot.Load(e.ctx, e.table); ok {
			e.height = h
		}
	}
	e.logger.Debug("activate", "table", e.table, "session", e.session, "height", e.height)
	e.ctrl.Activate()
}

// Deactivate handles the table being hidden or unmounted.
func (e *Engine) Deactivate() {
	e.ctrl.Deactivate()
	e.reader.Invalidate()
	e.measuring = false
	e.logger.Debug("deactivate", "table", e.table, "session", e.session)
}

// Active reports whether the table is activated.
func (e *Engine) Active() bool { return e.ctrl.Active() }

// SetConfig replaces the configuration. A change of the effective
// resizability triggers a debounced recalculation.
func (e *Engine) SetConfig(cfg layout.Config) {
	e.cfg = cfg
	e.ctrl.ResizabilityChanged(cfg.CanResizeEffective())
}

// SetDataLength records the number of rows. hasRows is false when the table
// has no data source; the body height is then left alone.
func (e *Engine) SetDataLength(rows int, hasRows bool) {
	e.rows, e.hasRows = rows, hasRows
	e.ctrl.DataLengthChanged(rows, hasRows)
}

// SetColumns replaces the column metadata and recomputes the horizontal
// scroll width.
func (e *Engine) SetColumns(cols []layout.Column) {
	e.cols = cols
	e.updateScrollX()
}

// Resize reports a change of the viewport size.
func (e *Engine) Resize() { e.ctrl.ViewportResized() }

// Redo requests a recalculation once things settle. Hosts hand it to
// components that change the table's surroundings, like a search form
// that expands.
func (e *Engine) Redo() { e.ctrl.Redo() }

// =============================================================================
// Recalculation
// =============================================================================

// Recalculate runs the first phase of a recalculation now and queues the
// second on the next tick.
func (e *Engine) Recalculate() {
	e.started = e.now()

	root, err := e.reader.Root()
	if err != nil {
		e.skip(SkipNoRoot, err)
		return
	}
	body, err := e.reader.Body()
	if err != nil {
		e.skip(SkipNoBody, err)
		return
	}

	geometry.ClassifyScroll(body).Apply(root)
	body.ResetHeight()
	e.updateScrollX()

	if !e.cfg.CanResizeEffective() {
		e.skip(SkipDisabled, nil)
		return
	}
	if !e.hasRows {
		e.skip(SkipNoData, nil)
		return
	}

	// The marker is only sized while the table is empty.
	e.marker = nil
	if e.rows == 0 {
		e.marker, _ = e.reader.EmptyMarker()
	}

	// A second first phase before the tick shares the queued second phase.
	if e.measuring {
		return
	}
	e.measuring = true
	e.sched.NextTick(e.measure)
}

func (e *Engine) measure() {
	if !e.measuring {
		return
	}
	e.measuring = false
	if !e.ctrl.Active() {
		e.skip(SkipInactive, nil)
		return
	}

	root, err := e.reader.Root()
	if err != nil {
		e.skip(SkipNoRoot, err)
		return
	}
	body, err := e.reader.Body()
	if err != nil {
		e.skip(SkipNoBody, err)
		return
	}
	m, err := e.reader.Read(root, e.cfg)
	if err != nil {
		reason := SkipNoHeader
		if errors.Is(err, geometry.ErrNoViewport) {
			reason = SkipNoViewport
		}
		e.skip(reason, err)
		return
	}
	e.apply(layout.Height(m, e.cfg), body, e.marker)
}

// apply commits a computed height.
func (e *Engine) apply(b layout.Breakdown, body geometry.Body, marker geometry.Marker) {
	h := b.Height
	e.height = h
	e.breakdown = b
	e.committed = true
	e.lastSkip = SkipNone

	body.SetHeight(h)
	if marker != nil {
		marker.SetHeight(h - 1)
	}
	if e.snapshot != nil {
		e.snapshot.Save(e.ctx, e.table, h)
	}
	if e.dialog != nil {
		e.dialog.RedoHeight()
	}

	took := e.now().Sub(e.started)
	e.logger.Debug("height committed",
		"table", e.table,
		"session", e.session,
		"height", h,
		"mode", b.Mode,
		"bottom", b.Bottom,
		"clamp", b.Clamp,
		"took", took,
	)
	observability.Layout().OnCommit(e.table, h, took)
}

func (e *Engine) skip(reason SkipReason, err error) {
	e.lastSkip = reason
	if err != nil {
		e.logger.Debug("recalculation skipped", "table", e.table, "reason", string(reason), "err", err)
	} else {
		e.logger.Debug("recalculation skipped", "table", e.table, "reason", string(reason))
	}
	observability.Layout().OnSkip(e.table, string(reason))
}

func (e *Engine) updateScrollX() {
	width := 0
	if root, ok := e.acc.Root(); ok && root != nil {
		width = root.Width()
	}
	x, ok := layout.ScrollWidth(e.cols, width)
	if x == e.scrollX && ok == e.hasScrollX {
		return
	}
	e.scrollX, e.hasScrollX = x, ok
	observability.Layout().OnScrollX(e.table, x, ok)
}

// =============================================================================
// Results
// =============================================================================

// TableHeight returns the last committed body height, or the placeholder
// (possibly seeded from the snapshot) before the first commit.
func (e *Engine) TableHeight() int { return e.height }

// Committed reports whether a height has been committed since New.
func (e *Engine) Committed() bool { return e.committed }

// Breakdown returns the terms of the last committed height.
func (e *Engine) Breakdown() layout.Breakdown { return e.breakdown }

// LastSkip returns why the last recalculation stopped early, or SkipNone
// when the last one committed.
func (e *Engine) LastSkip() SkipReason { return e.lastSkip }
