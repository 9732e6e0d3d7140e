// Package observability provides hooks for metrics, tracing, and logging.
//
// The engine and its hosts emit events through small hook interfaces. The
// defaults do nothing; an application that wants counters or traces
// registers its own implementations once at startup, so the library never
// depends on a particular backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetTriggerHooks(&myTriggerHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Trigger().OnTrigger(table, "resize")
//	// ... recalculate ...
//	observability.Layout().OnCommit(table, height, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from height and width recalculation.
type LayoutHooks interface {
	// OnCommit records a committed body height and the time the cycle took
	// from its first phase to the commit.
	OnCommit(table string, height int, duration time.Duration)

	// OnSkip records a cycle that stopped before committing.
	OnSkip(table, reason string)

	// OnScrollX records a horizontal scroll width update. ok is false when
	// no horizontal scrolling is needed.
	OnScrollX(table string, x int, ok bool)
}

// =============================================================================
// Trigger Hooks
// =============================================================================

// TriggerHooks receives events from the recalculation triggers.
type TriggerHooks interface {
	// OnTrigger records an accepted trigger of the given kind.
	OnTrigger(table, kind string)

	// OnRun records that a scheduled recalculation actually ran.
	OnRun(table, kind string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnCommit(string, int, time.Duration) {}
func (NoopLayoutHooks) OnSkip(string, string)               {}
func (NoopLayoutHooks) OnScrollX(string, int, bool)         {}

// NoopTriggerHooks is a no-op implementation of TriggerHooks.
type NoopTriggerHooks struct{}

func (NoopTriggerHooks) OnTrigger(string, string) {}
func (NoopTriggerHooks) OnRun(string, string)     {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	triggerHooks TriggerHooks = NoopTriggerHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any table is activated.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetTriggerHooks registers custom trigger hooks.
// This should be called once at application startup before any table is activated.
func SetTriggerHooks(h TriggerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		triggerHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Trigger returns the registered trigger hooks.
func Trigger() TriggerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return triggerHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	triggerHooks = NoopTriggerHooks{}
	cacheHooks = NoopCacheHooks{}
}
