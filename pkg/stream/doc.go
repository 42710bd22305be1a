// Package stream keeps the set of live visuals on a rendering surface in step
// with the viewport.
//
// A [Manager] is ticked once per rendered frame. Expensive passes are gated
// on the frame counter so that no single frame does unbounded work:
//
//   - Eviction (every [DefaultEvictEvery] frames or after the viewport moved)
//     drops both pending queues and removes live visuals that are farther
//     than [Manager.MaxRelevanceDistance] from the viewport center on both
//     axes.
//   - Enqueue (every [DefaultEnqueueEvery] frames or after the viewport moved)
//     queries the spatial index around the viewport center and queues
//     entities that have no visual yet.
//   - Materialize (every [DefaultMaterializeEvery] frames) dequeues up to a
//     batch of nodes and edges, builds their visuals and hands them to the
//     surface and the culler.
//
// The manager owns no list of live entities: the surface containers are the
// live set. Each entity is always in exactly one of three places (live,
// pending, or available and not queued), which keeps the totals conserved
// across any sequence of ticks.
//
// Collaborators are consumed through small interfaces ([Viewport],
// [Surface], [Culler], [Factory]); pkg/surface and pkg/viewport provide
// headless implementations.
package stream
