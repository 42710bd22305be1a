package graph

import (
	"errors"

	"github.com/matzehuels/graphstream/pkg/geom"
)

var (
	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the from node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the to node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrUnknownNode is returned by operations addressing a node id that was
	// never allocated.
	ErrUnknownNode = errors.New("unknown node")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same node. A self loop has no drawable path.
	ErrSelfLoop = errors.New("self loop")
)

// NodeID identifies a node. IDs are dense and assigned in insertion order
// starting at zero.
type NodeID uint32

// EdgeID identifies an edge. IDs are dense and assigned in insertion order
// starting at zero.
type EdgeID uint32

// Node is a positioned vertex of the scene.
type Node struct {
	id        NodeID
	pos       geom.Point
	edges     []EdgeID
	available bool
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Pos returns the node's current position.
func (n *Node) Pos() geom.Point { return n.pos }

// Edges returns the ids of edges incident to the node, in creation order.
// The returned slice must not be modified.
func (n *Node) Edges() []EdgeID { return n.edges }

// AvailableForRender reports whether the node currently has no live visual.
func (n *Node) AvailableForRender() bool { return n.available }

// SetAvailableForRender updates the render availability flag.
func (n *Node) SetAvailableForRender(v bool) { n.available = v }

// Edge is a curved connection between two nodes.
type Edge struct {
	id        EdgeID
	from      NodeID
	to        NodeID
	path      []geom.Point
	hovered   bool
	available bool
}

// ID returns the edge's identifier.
func (e *Edge) ID() EdgeID { return e.id }

// From returns the source node id.
func (e *Edge) From() NodeID { return e.from }

// To returns the target node id.
func (e *Edge) To() NodeID { return e.to }

// Path returns the cached curve of the edge. The slice is updated in place
// when an endpoint moves and must not be modified by callers.
func (e *Edge) Path() []geom.Point { return e.path }

// Hovered reports whether the edge is highlighted because an endpoint is
// hovered.
func (e *Edge) Hovered() bool { return e.hovered }

// AvailableForRender reports whether the edge currently has no live visual.
func (e *Edge) AvailableForRender() bool { return e.available }

// SetAvailableForRender updates the render availability flag.
func (e *Edge) SetAvailableForRender(v bool) { e.available = v }

// Graph is the arena that owns all nodes and edges of a scene.
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodes []*Node
	edges []*Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode creates a node at p and returns it. New nodes are available for
// render.
func (g *Graph) AddNode(p geom.Point) *Node {
	n := &Node{id: NodeID(len(g.nodes)), pos: p, available: true}
	g.nodes = append(g.nodes, n)
	return n
}

// AddEdge creates an edge between two existing nodes, computes its path and
// registers it with both endpoints.
func (g *Graph) AddEdge(from, to NodeID) (*Edge, error) {
	src := g.Node(from)
	if src == nil {
		return nil, ErrUnknownSourceNode
	}
	dst := g.Node(to)
	if dst == nil {
		return nil, ErrUnknownTargetNode
	}
	if from == to {
		return nil, ErrSelfLoop
	}
	e := &Edge{
		id:        EdgeID(len(g.edges)),
		from:      from,
		to:        to,
		path:      geom.EdgePath(src.pos, dst.pos),
		available: true,
	}
	g.edges = append(g.edges, e)
	src.edges = append(src.edges, e.id)
	dst.edges = append(dst.edges, e.id)
	return e, nil
}

// Node returns the node with the given id, or nil if it does not exist.
func (g *Graph) Node(id NodeID) *Node {
	if int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Edge returns the edge with the given id, or nil if it does not exist.
func (g *Graph) Edge(id EdgeID) *Edge {
	if int(id) >= len(g.edges) {
		return nil
	}
	return g.edges[id]
}

// Nodes returns all nodes in id order. The slice must not be modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns all edges in id order. The slice must not be modified.
func (g *Graph) Edges() []*Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Endpoints returns the source and target nodes of e.
func (g *Graph) Endpoints(e *Edge) (*Node, *Node) {
	return g.nodes[e.from], g.nodes[e.to]
}

// Neighbors returns the ids of nodes adjacent to id, one entry per incident
// edge.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	out := make([]NodeID, 0, len(n.edges))
	for _, eid := range n.edges {
		e := g.edges[eid]
		if e.from == id {
			out = append(out, e.to)
		} else {
			out = append(out, e.from)
		}
	}
	return out
}

// MoveNode changes a node's position and recomputes the path of every
// incident edge in place.
func (g *Graph) MoveNode(id NodeID, p geom.Point) error {
	n := g.Node(id)
	if n == nil {
		return ErrUnknownNode
	}
	n.pos = p
	for _, eid := range n.edges {
		e := g.edges[eid]
		geom.UpdateEdgePath(e.path, g.nodes[e.from].pos, g.nodes[e.to].pos)
	}
	return nil
}

// SetHovered sets the hovered flag on every edge incident to id.
func (g *Graph) SetHovered(id NodeID, hovered bool) error {
	n := g.Node(id)
	if n == nil {
		return ErrUnknownNode
	}
	for _, eid := range n.edges {
		g.edges[eid].hovered = hovered
	}
	return nil
}

// Reset marks every node and edge available for render and clears hover
// flags.
func (g *Graph) Reset() {
	for _, n := range g.nodes {
		n.available = true
	}
	for _, e := range g.edges {
		e.available = true
		e.hovered = false
	}
}
