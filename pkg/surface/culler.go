package surface

import (
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/stream"
)

// Cullable is a visual whose visibility the culler controls.
type Cullable interface {
	stream.Handle
	SetVisible(bool)
}

// Culler hides tracked visuals whose bounds do not intersect the view.
type Culler struct {
	tracked map[stream.Handle]struct{}
}

var _ stream.Culler = (*Culler)(nil)

// NewCuller creates a culler with nothing tracked.
func NewCuller() *Culler {
	return &Culler{tracked: make(map[stream.Handle]struct{})}
}

// Track implements stream.Culler.
func (c *Culler) Track(h ...stream.Handle) {
	for _, x := range h {
		c.tracked[x] = struct{}{}
	}
}

// Untrack implements stream.Culler.
func (c *Culler) Untrack(h ...stream.Handle) {
	for _, x := range h {
		delete(c.tracked, x)
	}
}

// Len returns the number of tracked visuals.
func (c *Culler) Len() int { return len(c.tracked) }

// Tracked reports whether h is tracked.
func (c *Culler) Tracked(h stream.Handle) bool {
	_, ok := c.tracked[h]
	return ok
}

// Cull updates the visibility of every tracked visual against bounds and
// returns how many are visible.
func (c *Culler) Cull(bounds geom.Rect) int {
	visible := 0
	for h := range c.tracked {
		in := h.Bounds().Intersects(bounds)
		if v, ok := h.(Cullable); ok {
			v.SetVisible(in)
		}
		if in {
			visible++
		}
	}
	return visible
}
