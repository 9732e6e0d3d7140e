package tablescroll

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tablefit/pkg/geometry"
	"github.com/matzehuels/tablefit/pkg/layout"
	"github.com/matzehuels/tablefit/pkg/trigger"
)

// Option configures an Engine.
type Option func(*Engine)

func WithConfig(cfg layout.Config) Option         { return func(e *Engine) { e.cfg = cfg } }
func WithColumns(cols []layout.Column) Option     { return func(e *Engine) { e.cols = cols } }
func WithContainer(c geometry.Container) Option   { return func(e *Engine) { e.container = c } }
func WithViewport(v geometry.Viewport) Option     { return func(e *Engine) { e.viewport = v } }
func WithDialogHost(d DialogHost) Option          { return func(e *Engine) { e.dialog = d } }
func WithScheduler(s trigger.Scheduler) Option    { return func(e *Engine) { e.sched = s } }
func WithLogger(l *log.Logger) Option             { return func(e *Engine) { e.logger = l } }
func WithSnapshot(s Snapshot) Option              { return func(e *Engine) { e.snapshot = s } }
func WithTableID(id string) Option                { return func(e *Engine) { e.table = id } }
func WithTriggerOptions(o trigger.Options) Option { return func(e *Engine) { e.triggerOpts = o } }

// WithContext sets the context passed to the snapshot store.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) { e.ctx = ctx }
}

// WithDataLength sets the initial row count without triggering anything.
func WithDataLength(rows int, hasRows bool) Option {
	return func(e *Engine) { e.rows, e.hasRows = rows, hasRows }
}
