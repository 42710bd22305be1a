package surface

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/stream"
)

func pair(t *testing.T, a, b geom.Point) (*graph.Graph, *graph.Edge) {
	t.Helper()
	g := graph.New()
	n0 := g.AddNode(a)
	n1 := g.AddNode(b)
	e, err := g.AddEdge(n0.ID(), n1.ID())
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g, e
}

func TestLayer_RemoveKeepsOrder(t *testing.T) {
	a, b, c := &NodeSprite{}, &NodeSprite{}, &NodeSprite{}
	var l Layer[*NodeSprite]
	l.Add(a, b, c)
	l.Remove(b)

	got := l.Children()
	if l.Len() != 2 || got[0] != a || got[1] != c {
		t.Errorf("Children() = %v, want [a c]", got)
	}
	l.Remove()
	if l.Len() != 2 {
		t.Errorf("Remove() with no args changed length to %d", l.Len())
	}
}

func TestFactory_VisualsFollowGraph(t *testing.T) {
	g, e := pair(t, geom.Pt(0, 0), geom.Pt(100, 0))
	f := NewFactory()
	from, to := g.Endpoints(e)

	sprite := f.NewNode(from).(*NodeSprite)
	rope := f.NewEdge(e, from, to).(*EdgeRope)

	if f.Created() != 2 || sprite.Serial() != 1 || rope.Serial() != 2 {
		t.Errorf("serials = %d,%d created = %d", sprite.Serial(), rope.Serial(), f.Created())
	}
	want := geom.RectAround(geom.Pt(0, 0), DefaultNodeRadius, DefaultNodeRadius)
	if got := sprite.Bounds(); got != want {
		t.Errorf("sprite.Bounds() = %v, want %v", got, want)
	}

	if err := g.MoveNode(from.ID(), geom.Pt(0, 300)); err != nil {
		t.Fatal(err)
	}
	if got := sprite.Pos(); got != geom.Pt(0, 300) {
		t.Errorf("sprite.Pos() after move = %v", got)
	}
	if got := rope.Path()[0]; got != geom.Pt(0, 300) {
		t.Errorf("rope.Path()[0] after move = %v", got)
	}
	if b := rope.Bounds(); !b.Contains(geom.Pt(0, 300)) || !b.Contains(geom.Pt(100, 0)) {
		t.Errorf("rope.Bounds() = %v does not cover both endpoints", b)
	}

	sprite.Destroy()
	if !sprite.Destroyed() || rope.Destroyed() {
		t.Errorf("Destroyed flags = %v,%v", sprite.Destroyed(), rope.Destroyed())
	}
}

func TestCuller(t *testing.T) {
	g, e := pair(t, geom.Pt(0, 0), geom.Pt(1000, 0))
	f := NewFactory()
	from, to := g.Endpoints(e)
	near := f.NewNode(from).(*NodeSprite)
	far := f.NewNode(to).(*NodeSprite)
	rope := f.NewEdge(e, from, to).(*EdgeRope)

	c := NewCuller()
	c.Track(near, far, rope)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	got := c.Cull(geom.RectAround(geom.Pt(0, 0), 100, 100))
	if got != 2 {
		t.Errorf("Cull() = %d, want 2", got)
	}
	if !near.Visible() || far.Visible() || !rope.Visible() {
		t.Errorf("visibility = %v,%v,%v, want true,false,true", near.Visible(), far.Visible(), rope.Visible())
	}

	c.Untrack(far)
	if c.Tracked(far) || !c.Tracked(near) {
		t.Error("Untrack removed the wrong handle")
	}
}

func TestScene_WithManagerInterfaces(t *testing.T) {
	s := NewScene()
	var surf stream.Surface = s
	g, e := pair(t, geom.Pt(0, 0), geom.Pt(10, 10))
	f := NewFactory()
	from, to := g.Endpoints(e)

	surf.Nodes().Add(f.NewNode(from), f.NewNode(to))
	surf.Edges().Add(f.NewEdge(e, from, to))
	if surf.Nodes().Len() != 2 || surf.Edges().Len() != 1 {
		t.Errorf("lens = %d,%d", surf.Nodes().Len(), surf.Edges().Len())
	}
	surf.Nodes().Remove(surf.Nodes().Children()[0])
	if got := surf.Nodes().Children()[0].NodeID(); got != to.ID() {
		t.Errorf("remaining node = %d, want %d", got, to.ID())
	}
}

func TestRenderSVG(t *testing.T) {
	g, e := pair(t, geom.Pt(0, 0), geom.Pt(200, 100))
	f := NewFactory()
	from, to := g.Endpoints(e)
	s := NewScene()
	s.Nodes().Add(f.NewNode(from), f.NewNode(to))
	s.Edges().Add(f.NewEdge(e, from, to))

	out := string(RenderSVG(s))
	for _, want := range []string{`<svg xmlns="http://www.w3.org/2000/svg"`, `id="node-0"`, `id="node-1"`, `id="edge-0"`, "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
	if strings.Contains(out, `class="hovered"`) {
		t.Error("unhovered edge rendered as hovered")
	}
	// Edges come first so nodes paint on top.
	if strings.Index(out, "edge-0") > strings.Index(out, "node-0") {
		t.Error("edges should be drawn before nodes")
	}

	if err := g.SetHovered(from.ID(), true); err != nil {
		t.Fatal(err)
	}
	if out := string(RenderSVG(s)); !strings.Contains(out, `class="hovered"`) {
		t.Error("hovered edge not highlighted")
	}
}

func TestRenderSVG_SkipsHidden(t *testing.T) {
	g, e := pair(t, geom.Pt(0, 0), geom.Pt(5000, 0))
	f := NewFactory()
	from, to := g.Endpoints(e)
	s := NewScene()
	far := f.NewNode(to)
	s.Nodes().Add(f.NewNode(from), far)

	c := NewCuller()
	for _, v := range s.Nodes().Children() {
		c.Track(v)
	}
	c.Cull(geom.RectAround(geom.Pt(0, 0), 100, 100))

	if out := string(RenderSVG(s)); strings.Contains(out, `id="node-1"`) {
		t.Error("hidden node rendered")
	}
	if out := string(RenderSVG(s, WithHidden())); !strings.Contains(out, `id="node-1"`) {
		t.Error("WithHidden() did not render hidden node")
	}
	view := geom.Rect{Min: geom.Pt(-10, -20), Max: geom.Pt(30, 40)}
	if out := string(RenderSVG(s, WithView(view))); !strings.Contains(out, `viewBox="-10.0 -20.0 40.0 60.0"`) {
		t.Errorf("WithView() viewBox not applied:\n%s", out)
	}
}

func TestRenderASCII(t *testing.T) {
	g, e := pair(t, geom.Pt(5, 5), geom.Pt(95, 95))
	f := NewFactory()
	from, to := g.Endpoints(e)
	s := NewScene()
	s.Edges().Add(f.NewEdge(e, from, to))
	s.Nodes().Add(f.NewNode(from), f.NewNode(to))

	out := RenderASCII(s, geom.Rect{Max: geom.Pt(100, 100)}, 12, 12)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	if lines[0] != "+----------+" || lines[11] != "+----------+" {
		t.Errorf("border rows = %q / %q", lines[0], lines[11])
	}
	if lines[1][1] != GlyphNode || lines[10][10] != GlyphNode {
		t.Errorf("nodes not at corners:\n%s", out)
	}
	if !strings.ContainsRune(out, GlyphEdge) {
		t.Errorf("edge not drawn:\n%s", out)
	}

	if got := RenderASCII(s, geom.Rect{Max: geom.Pt(100, 100)}, 2, 2); got != "" {
		t.Errorf("tiny grid = %q, want empty", got)
	}
}
