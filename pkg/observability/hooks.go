// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends to the core packages.
// The generators, the spatial index and the streaming manager emit events
// through the registered hooks; main registers a backend at startup (see
// pkg/observability/metrics for the Prometheus one).
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are called from the single-threaded frame loop, so implementations
// must be cheap. They carry no context because the per-frame passes they
// report on are not cancellable.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStreamHooks(metrics.New(prometheus.DefaultRegisterer))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Stream().OnMaterialize(nodes, edges, time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Generator Hooks
// =============================================================================

// GeneratorHooks receives events from the procedural generators.
type GeneratorHooks interface {
	// OnGenerate records a completed Fill call.
	OnGenerate(kind string, nodes, edges int, duration time.Duration)
}

// =============================================================================
// Index Hooks
// =============================================================================

// IndexHooks receives events from the spatial index.
type IndexHooks interface {
	// OnBuild records a chunk build or rebuild.
	OnBuild(nodes, edges, chunks int, duration time.Duration)

	// OnQuery records a proximity query and the number of chunks it visited.
	OnQuery(chunks, nodes, edges int)
}

// =============================================================================
// Stream Hooks
// =============================================================================

// StreamHooks receives events from the streaming manager.
type StreamHooks interface {
	// OnEvict records entities removed from the surface by an eviction pass.
	OnEvict(nodes, edges int, duration time.Duration)

	// OnEnqueue records entities queued by an enqueue pass.
	OnEnqueue(nodes, edges int, duration time.Duration)

	// OnMaterialize records visuals created by a batch materialization.
	OnMaterialize(nodes, edges int, duration time.Duration)

	// OnFrame records the live and pending entity counts after a tick.
	OnFrame(liveNodes, liveEdges, pendingNodes, pendingEdges int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerate(string, int, int, time.Duration) {}

// NoopIndexHooks is a no-op implementation of IndexHooks.
type NoopIndexHooks struct{}

func (NoopIndexHooks) OnBuild(int, int, int, time.Duration) {}
func (NoopIndexHooks) OnQuery(int, int, int)                {}

// NoopStreamHooks is a no-op implementation of StreamHooks.
type NoopStreamHooks struct{}

func (NoopStreamHooks) OnEvict(int, int, time.Duration)       {}
func (NoopStreamHooks) OnEnqueue(int, int, time.Duration)     {}
func (NoopStreamHooks) OnMaterialize(int, int, time.Duration) {}
func (NoopStreamHooks) OnFrame(int, int, int, int)            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	indexHooks     IndexHooks     = NoopIndexHooks{}
	streamHooks    StreamHooks    = NoopStreamHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetIndexHooks registers custom spatial index hooks.
func SetIndexHooks(h IndexHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		indexHooks = h
	}
}

// SetStreamHooks registers custom streaming hooks.
func SetStreamHooks(h StreamHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		streamHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Index returns the registered spatial index hooks.
func Index() IndexHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return indexHooks
}

// Stream returns the registered streaming hooks.
func Stream() StreamHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return streamHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	indexHooks = NoopIndexHooks{}
	streamHooks = NoopStreamHooks{}
}
