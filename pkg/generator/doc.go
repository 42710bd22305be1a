// Package generator populates a graph and its spatial index with
// procedurally placed nodes and edges.
//
// Three generators are provided:
//
//   - [Circular]: breadth-first radial clusters around a root, optionally
//     repeated at new centers until the node budget is spent
//   - [Spiral]: arms of one parent and a fixed number of children laid along
//     an outward spiral
//   - [Web]: a jittered square grid connected by proximity into a mesh
//
// Every generator shares a [Base] describing the target index, node budget,
// start center and random source. [Generator.Fill] never creates more nodes
// than the budget and inserts everything it creates into the index before it
// returns; the caller builds the chunks afterwards:
//
//	rng := generator.NewRand(42)
//	gen, err := generator.NewSpiral(generator.Base{Index: idx, TotalNodes: 500, Rand: rng},
//	    generator.SpiralOptions{AverageDistance: 20, ChildrenCount: 4, AngleIncrement: 1,
//	        EdgeStrategy: generator.StrategyChain})
//	res := gen.Fill()
//	idx.BuildChunks()
//
// # Edge Strategies
//
// Edges are added according to an [EdgeStrategy]. Tree-shaped strategies link
// each child to its parent while building; the "random" and "nearest"
// strategies run a sampling pass over all generated nodes after placement.
// Proximity passes bucket nodes into a uniform grid and only consider pairs in
// the same or adjacent cells (see [Proximity]).
package generator
