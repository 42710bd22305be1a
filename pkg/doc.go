// Package pkg provides the libraries behind graphstream, a spatially streamed
// renderer for very large 2D node-link graphs.
//
// # Overview
//
// A scene holds far more nodes and edges than a renderer can keep alive at
// once. graphstream generates the graph procedurally, buckets it into a
// chunked spatial index and keeps only the entities near the camera
// materialized as visuals. The pkg directory is organized as follows:
//
//  1. [geom], [graph] and [graph/interact] - Positions, the node/edge arena
//     and the per-node pointer state machine
//  2. [generator] - Procedural circle, spiral and web patterns
//  3. [spatial] and [queue] - The chunk index and the FIFO work queues
//  4. [stream] and [viewport] - The streaming manager and the camera
//  5. [surface] - Display containers, culling and SVG/ASCII output
//  6. [pipeline] - Orchestration (generate → index → stream)
//  7. [config], [errors], [observability] and [buildinfo] - Ambient support
//
// # Architecture
//
// The typical data flow through graphstream:
//
//	config.Config
//	     ↓
//	[generator] package (place nodes, connect edges)
//	     ↓
//	[spatial] package (bucket into chunks)
//	     ↓
//	[stream] package (evict, enqueue, materialize near the camera)
//	     ↓
//	[surface] package (cull, SVG/ASCII snapshot)
//
// # Quick Start
//
// Build a scene from the default configuration and stream 600 frames:
//
//	scene, err := pipeline.NewRunner(logger).Build(ctx, config.Default(), pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	err = scene.Run(ctx, pipeline.RunOptions{Frames: 600})
//	svg := scene.SVG()
//
// See the cmd/graphstream command for a complete CLI built on these
// packages.
package pkg
