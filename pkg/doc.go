// Package pkg holds the libraries of tablefit, which keeps the body of a
// scrollable data table sized to the space it is given.
//
// # Overview
//
// A table is a stack of regions: an optional title and search form, the
// header, the body, a summary and footer, and pagination. Only the body
// scrolls. tablefit measures the other regions, derives how tall the body
// may be, applies that height, and recomputes it whenever the viewport,
// the data or the configuration changes.
//
// # Architecture
//
//	host (terminal UI, scenario file, tests)
//	         ↓
//	    [geometry] package (read region sizes through an Accessor)
//	         ↓
//	    [layout] package (pure height and scroll width formulas)
//	         ↓
//	    [tablescroll] package (two-phase recalculation, apply, scroll state)
//	         ↑
//	    [trigger] package (mount, debounce, resize throttle)
//
// # Main Packages
//
//   - [layout]: Config, Metrics, Height, ClampHeight, ScrollWidth
//   - [geometry]: Accessor interfaces, Reader, scroll hints, Static regions
//   - [trigger]: Scheduler, Debouncer, Throttle, Controller, Manual clock
//   - [tablescroll]: Engine, ScrollState, Snapshot
//   - [termtable]: bubbletea table built on the engine
//   - [cache]: file cache used to remember heights between runs
//   - [observability]: hooks for commits, skips and triggers
//   - [errors]: coded errors and input validation
//
// # Quick Start
//
//	table := &geometry.Static{ /* region sizes */ }
//	clock := trigger.NewManual()
//	e := tablescroll.New(table,
//	    tablescroll.WithConfig(layout.Config{CanResize: true}),
//	    tablescroll.WithDataLength(42, true),
//	    tablescroll.WithScheduler(clock),
//	)
//	e.Activate()
//	clock.Flush()
//	y := *e.ScrollState().Y
package pkg
