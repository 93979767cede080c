// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about chart rebuilds, transitions, and output rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the engine packages
// stay free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetChartHooks(&myChartHooks{})
//	    observability.SetTransitionHooks(&myTransitionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Chart().OnRebuildStart(ctx, id, "bar", len(ds.Records))
//	// ... rebuild ...
//	observability.Chart().OnRebuildComplete(ctx, id, "bar", primitives, skipped, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Chart Hooks
// =============================================================================

// ChartHooks receives events from the chart controller.
type ChartHooks interface {
	// Rebuild events
	OnRebuildStart(ctx context.Context, chartID, kind string, records int)
	OnRebuildComplete(ctx context.Context, chartID, kind string, primitives, skipped int, duration time.Duration, err error)

	// OnTeardown records a chart being closed and how many transitions it cancelled.
	OnTeardown(chartID string, cancelled int)
}

// =============================================================================
// Transition Hooks
// =============================================================================

// TransitionHooks receives events from the transition scheduler. They run on
// the frame clock, so they take no context.
type TransitionHooks interface {
	// OnScheduled records a new attribute transition.
	OnScheduled(id, attr string, duration time.Duration)

	// OnReplaced records a pending transition superseded by a new one.
	OnReplaced(id, attr string)

	// OnCancelled records transitions dropped without completing.
	OnCancelled(count int)

	// OnFrame records one frame tick and the transitions still running after it.
	OnFrame(active int)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from output rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopChartHooks is a no-op implementation of ChartHooks.
type NoopChartHooks struct{}

func (NoopChartHooks) OnRebuildStart(context.Context, string, string, int) {}
func (NoopChartHooks) OnRebuildComplete(context.Context, string, string, int, int, time.Duration, error) {
}
func (NoopChartHooks) OnTeardown(string, int) {}

// NoopTransitionHooks is a no-op implementation of TransitionHooks.
type NoopTransitionHooks struct{}

func (NoopTransitionHooks) OnScheduled(string, string, time.Duration) {}
func (NoopTransitionHooks) OnReplaced(string, string)                 {}
func (NoopTransitionHooks) OnCancelled(int)                           {}
func (NoopTransitionHooks) OnFrame(int)                               {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	chartHooks      ChartHooks      = NoopChartHooks{}
	transitionHooks TransitionHooks = NoopTransitionHooks{}
	renderHooks     RenderHooks     = NoopRenderHooks{}
	hooksMu         sync.RWMutex
)

// SetChartHooks registers custom chart hooks.
// This should be called once at application startup before any chart is created.
func SetChartHooks(h ChartHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		chartHooks = h
	}
}

// SetTransitionHooks registers custom transition hooks.
func SetTransitionHooks(h TransitionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		transitionHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Chart returns the registered chart hooks.
func Chart() ChartHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return chartHooks
}

// Transition returns the registered transition hooks.
func Transition() TransitionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return transitionHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	chartHooks = NoopChartHooks{}
	transitionHooks = NoopTransitionHooks{}
	renderHooks = NoopRenderHooks{}
}
