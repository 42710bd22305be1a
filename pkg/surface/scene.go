package surface

import (
	"slices"

	"github.com/matzehuels/graphstream/pkg/stream"
)

// Layer is an ordered list of visuals. Visuals are compared by identity.
type Layer[V comparable] struct {
	items []V
}

// Add appends visuals in order.
func (l *Layer[V]) Add(v ...V) {
	l.items = append(l.items, v...)
}

// Remove deletes the given visuals, keeping the order of the rest.
func (l *Layer[V]) Remove(v ...V) {
	if len(v) == 0 {
		return
	}
	drop := make(map[V]struct{}, len(v))
	for _, x := range v {
		drop[x] = struct{}{}
	}
	l.items = slices.DeleteFunc(l.items, func(x V) bool {
		_, ok := drop[x]
		return ok
	})
}

// Children returns the visuals in insertion order. The slice must not be
// modified.
func (l *Layer[V]) Children() []V { return l.items }

// Len returns the number of visuals.
func (l *Layer[V]) Len() int { return len(l.items) }

// Scene is an in-memory rendering surface with a node and an edge layer.
type Scene struct {
	nodes Layer[stream.NodeVisual]
	edges Layer[stream.EdgeVisual]
}

var _ stream.Surface = (*Scene)(nil)

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Nodes implements stream.Surface.
func (s *Scene) Nodes() stream.Container[stream.NodeVisual] { return &s.nodes }

// Edges implements stream.Surface.
func (s *Scene) Edges() stream.Container[stream.EdgeVisual] { return &s.edges }
