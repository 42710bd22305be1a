package graph

import (
	"errors"
	"testing"

	"github.com/matzehuels/graphstream/pkg/geom"
)

func TestAddEdge(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Pt(0, 0))
	b := g.AddNode(geom.Pt(100, 0))

	tests := []struct {
		name     string
		from, to NodeID
		wantErr  error
	}{
		{"Valid", a.ID(), b.ID(), nil},
		{"UnknownSource", 7, b.ID(), ErrUnknownSourceNode},
		{"UnknownTarget", a.ID(), 7, ErrUnknownTargetNode},
		{"SelfLoop", a.ID(), a.ID(), ErrSelfLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.AddEdge(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEdge error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestNewEntitiesAreAvailable(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Pt(0, 0))
	b := g.AddNode(geom.Pt(1, 1))
	e, err := g.AddEdge(a.ID(), b.ID())
	if err != nil {
		t.Fatal(err)
	}
	if !a.AvailableForRender() || !e.AvailableForRender() {
		t.Error("new entities should be available for render")
	}
	a.SetAvailableForRender(false)
	e.SetAvailableForRender(false)
	g.Reset()
	if !a.AvailableForRender() || !e.AvailableForRender() {
		t.Error("Reset should restore availability")
	}
}

func TestIncidence(t *testing.T) {
	g := New()
	hub := g.AddNode(geom.Pt(0, 0))
	for i := range 3 {
		leaf := g.AddNode(geom.Pt(float64(i+1)*10, 0))
		if _, err := g.AddEdge(hub.ID(), leaf.ID()); err != nil {
			t.Fatal(err)
		}
	}
	if got := len(hub.Edges()); got != 3 {
		t.Errorf("hub edges = %d, want 3", got)
	}
	if got := g.Neighbors(hub.ID()); len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Neighbors = %v, want [1 2 3]", got)
	}
	if got := g.Neighbors(2); len(got) != 1 || got[0] != hub.ID() {
		t.Errorf("Neighbors(2) = %v, want [0]", got)
	}
	if g.Neighbors(99) != nil {
		t.Error("Neighbors of unknown node should be nil")
	}
}

func TestMoveNode_RecomputesPathsInPlace(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Pt(0, 0))
	b := g.AddNode(geom.Pt(100, 40))
	c := g.AddNode(geom.Pt(-50, 10))
	ab, _ := g.AddEdge(a.ID(), b.ID())
	ca, _ := g.AddEdge(c.ID(), a.ID())
	held := ab.Path()

	if err := g.MoveNode(a.ID(), geom.Pt(20, 20)); err != nil {
		t.Fatal(err)
	}
	if a.Pos() != geom.Pt(20, 20) {
		t.Errorf("Pos = %v, want (20, 20)", a.Pos())
	}
	if len(held) != geom.DefaultSamples {
		t.Fatalf("path len = %d, want %d", len(held), geom.DefaultSamples)
	}
	if &held[0] != &ab.Path()[0] {
		t.Error("path was reallocated")
	}
	if held[0] != geom.Pt(20, 20) {
		t.Errorf("held path start = %v, want (20, 20)", held[0])
	}
	if end := ca.Path()[geom.DefaultSamples-1]; end != geom.Pt(20, 20) {
		t.Errorf("incoming edge end = %v, want (20, 20)", end)
	}
	if err := g.MoveNode(42, geom.Pt(0, 0)); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("MoveNode unknown = %v, want ErrUnknownNode", err)
	}
}

func TestSetHovered(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Pt(0, 0))
	b := g.AddNode(geom.Pt(10, 0))
	c := g.AddNode(geom.Pt(20, 0))
	ab, _ := g.AddEdge(a.ID(), b.ID())
	bc, _ := g.AddEdge(b.ID(), c.ID())

	if err := g.SetHovered(a.ID(), true); err != nil {
		t.Fatal(err)
	}
	if !ab.Hovered() || bc.Hovered() {
		t.Errorf("hovered = %v, %v, want true, false", ab.Hovered(), bc.Hovered())
	}
	_ = g.SetHovered(a.ID(), false)
	if ab.Hovered() {
		t.Error("edge still hovered")
	}
	if err := g.SetHovered(9, true); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("SetHovered unknown = %v, want ErrUnknownNode", err)
	}
}
