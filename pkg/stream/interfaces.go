package stream

import (
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
)

// Viewport reports the visible region of the world.
type Viewport interface {
	// Center returns the world position at the middle of the screen.
	Center() geom.Point
	// Scale returns the zoom factor per axis.
	Scale() geom.Point
}

// Handle is a visual owned by the rendering surface.
type Handle interface {
	// Bounds returns the world-space bounding box, used for culling.
	Bounds() geom.Rect
	// Destroy releases the visual. It is called once, after removal.
	Destroy()
}

// NodeVisual is the visual of a node.
type NodeVisual interface {
	Handle
	NodeID() graph.NodeID
}

// EdgeVisual is the visual of an edge.
type EdgeVisual interface {
	Handle
	EdgeID() graph.EdgeID
}

// Container is an ordered collection of visuals on the surface.
type Container[V any] interface {
	Add(v ...V)
	Remove(v ...V)
	// Children returns the live visuals. The manager does not retain the
	// slice across calls.
	Children() []V
	Len() int
}

// Surface exposes the node and edge containers of the rendering surface.
type Surface interface {
	Nodes() Container[NodeVisual]
	Edges() Container[EdgeVisual]
}

// Culler hides visuals outside the viewport. It only needs to know which
// visuals exist.
type Culler interface {
	Track(h ...Handle)
	Untrack(h ...Handle)
}

// Factory builds visuals for graph entities. Edge visuals must draw the
// edge's live path so that node moves are reflected without rebuilding.
type Factory interface {
	NewNode(n *graph.Node) NodeVisual
	NewEdge(e *graph.Edge, from, to *graph.Node) EdgeVisual
}
