package interact

import (
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
)

// Controller drives the state machine of one node and applies its effects:
// hovering highlights the node's edges and dragging moves the node.
type Controller struct {
	g       *graph.Graph
	id      graph.NodeID
	machine *Machine
	moved   bool
}

// NewController creates a started controller for node id. It returns
// graph.ErrUnknownNode when the node does not exist.
func NewController(g *graph.Graph, id graph.NodeID) (*Controller, error) {
	if g.Node(id) == nil {
		return nil, graph.ErrUnknownNode
	}
	c := &Controller{g: g, id: id, machine: NewMachine()}
	c.machine.Subscribe(c.apply)
	c.machine.Start()
	return c, nil
}

// Node returns the controlled node id.
func (c *Controller) Node() graph.NodeID { return c.id }

// State returns the current visual state.
func (c *Controller) State() State { return c.machine.Current() }

// Send forwards a pointer event to the state machine.
func (c *Controller) Send(e Event) bool { return c.machine.Send(e) }

// DragTo moves the node to p if it is being dragged. It reports whether the
// node moved.
func (c *Controller) DragTo(p geom.Point) bool {
	if c.machine.Current() != Dragging {
		return false
	}
	if err := c.g.MoveNode(c.id, p); err != nil {
		return false
	}
	c.moved = true
	return true
}

// TakeMoved reports whether the node moved since the previous call and
// clears the flag. Callers use it to refresh spatial bookkeeping.
func (c *Controller) TakeMoved() bool {
	moved := c.moved
	c.moved = false
	return moved
}

func (c *Controller) apply(s State) {
	switch s {
	case Hovered:
		_ = c.g.SetHovered(c.id, true)
	case Idle:
		_ = c.g.SetHovered(c.id, false)
	}
}
