package surface

import (
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/stream"
)

// DefaultNodeRadius is the half-size of a node sprite in world units.
const DefaultNodeRadius = 20.0

// NodeSprite draws a node as a square around its live position.
type NodeSprite struct {
	node      *graph.Node
	radius    float64
	serial    uint64
	visible   bool
	destroyed bool
}

var _ stream.NodeVisual = (*NodeSprite)(nil)

// NodeID implements stream.NodeVisual.
func (s *NodeSprite) NodeID() graph.NodeID { return s.node.ID() }

// Pos returns the node's current position.
func (s *NodeSprite) Pos() geom.Point { return s.node.Pos() }

// Bounds implements stream.Handle.
func (s *NodeSprite) Bounds() geom.Rect {
	return geom.RectAround(s.node.Pos(), s.radius, s.radius)
}

// Destroy implements stream.Handle.
func (s *NodeSprite) Destroy() { s.destroyed = true }

// Destroyed reports whether the sprite was released.
func (s *NodeSprite) Destroyed() bool { return s.destroyed }

// Serial is the creation number of the visual, unique per factory.
func (s *NodeSprite) Serial() uint64 { return s.serial }

// Visible reports the culling state.
func (s *NodeSprite) Visible() bool { return s.visible }

// SetVisible updates the culling state.
func (s *NodeSprite) SetVisible(v bool) { s.visible = v }

// EdgeRope draws an edge along its live sampled path.
type EdgeRope struct {
	edge      *graph.Edge
	serial    uint64
	visible   bool
	destroyed bool
}

var _ stream.EdgeVisual = (*EdgeRope)(nil)

// EdgeID implements stream.EdgeVisual.
func (r *EdgeRope) EdgeID() graph.EdgeID { return r.edge.ID() }

// Path returns the edge's current path. It aliases the graph's storage.
func (r *EdgeRope) Path() []geom.Point { return r.edge.Path() }

// Hovered reports whether the edge is highlighted.
func (r *EdgeRope) Hovered() bool { return r.edge.Hovered() }

// Bounds implements stream.Handle.
func (r *EdgeRope) Bounds() geom.Rect { return geom.BoundsOf(r.edge.Path()) }

// Destroy implements stream.Handle.
func (r *EdgeRope) Destroy() { r.destroyed = true }

// Destroyed reports whether the rope was released.
func (r *EdgeRope) Destroyed() bool { return r.destroyed }

// Serial is the creation number of the visual, unique per factory.
func (r *EdgeRope) Serial() uint64 { return r.serial }

// Visible reports the culling state.
func (r *EdgeRope) Visible() bool { return r.visible }

// SetVisible updates the culling state.
func (r *EdgeRope) SetVisible(v bool) { r.visible = v }

// Factory creates sprites and ropes for the streaming manager.
type Factory struct {
	NodeRadius float64
	created    uint64
}

var _ stream.Factory = (*Factory)(nil)

// NewFactory returns a factory using DefaultNodeRadius.
func NewFactory() *Factory {
	return &Factory{NodeRadius: DefaultNodeRadius}
}

// NewNode implements stream.Factory.
func (f *Factory) NewNode(n *graph.Node) stream.NodeVisual {
	f.created++
	return &NodeSprite{node: n, radius: f.NodeRadius, serial: f.created, visible: true}
}

// NewEdge implements stream.Factory.
func (f *Factory) NewEdge(e *graph.Edge, _, _ *graph.Node) stream.EdgeVisual {
	f.created++
	return &EdgeRope{edge: e, serial: f.created, visible: true}
}

// Created returns the number of visuals built so far.
func (f *Factory) Created() uint64 { return f.created }
