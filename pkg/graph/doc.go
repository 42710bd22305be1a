// Package graph stores the nodes and edges of a generated scene.
//
// Nodes and edges live in an arena owned by [Graph] and are addressed by
// dense integer identifiers ([NodeID], [EdgeID]). An edge refers to its two
// endpoints by id and every node keeps the ids of its incident edges, so the
// bidirectional relationship never forms an ownership cycle. Entities are
// only released when the whole graph is discarded.
//
// # Render Availability
//
// Each entity carries an "available for render" flag. It is true while no
// visual exists for the entity and false while one is live on the rendering
// surface. The streaming manager in pkg/stream flips the flag as it
// materializes and evicts visuals; this package only stores it.
//
// # Paths
//
// Every edge caches a sampled curve (see pkg/geom). [Graph.MoveNode]
// recomputes the paths of all incident edges in place, so any visual holding
// [Edge.Path] sees the new shape without rebuilding.
package graph
