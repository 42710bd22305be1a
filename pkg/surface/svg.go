package surface

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/graphstream/pkg/geom"
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	view        *geom.Rect
	padding     float64
	hiddenToo   bool
	nodeFill    string
	edgeStroke  string
	hoverStroke string
}

// WithView crops the snapshot to a world rectangle instead of the bounds of
// the live set.
func WithView(r geom.Rect) SVGOption { return func(s *svgRenderer) { s.view = &r } }

// WithPadding grows the computed bounds by pad world units.
func WithPadding(pad float64) SVGOption { return func(s *svgRenderer) { s.padding = pad } }

// WithHidden also draws visuals the culler has hidden.
func WithHidden() SVGOption { return func(s *svgRenderer) { s.hiddenToo = true } }

// WithColors overrides the node fill, edge stroke and hovered edge stroke.
func WithColors(node, edge, hovered string) SVGOption {
	return func(s *svgRenderer) {
		s.nodeFill, s.edgeStroke, s.hoverStroke = node, edge, hovered
	}
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		padding:     DefaultNodeRadius,
		nodeFill:    "#4a90d9",
		edgeStroke:  "#9aa5b1",
		hoverStroke: "#e8590c",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG writes the live visuals of the scene as an SVG document. Edges
// are drawn below nodes, hovered edges with a dashed highlight.
func RenderSVG(s *Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var nodes []*NodeSprite
	for _, v := range s.nodes.Children() {
		if n, ok := v.(*NodeSprite); ok && (r.hiddenToo || n.Visible()) {
			nodes = append(nodes, n)
		}
	}
	var ropes []*EdgeRope
	for _, v := range s.edges.Children() {
		if e, ok := v.(*EdgeRope); ok && (r.hiddenToo || e.Visible()) {
			ropes = append(ropes, e)
		}
	}

	box := r.bounds(nodes, ropes)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		box.Min.X, box.Min.Y, box.Width(), box.Height(), box.Width(), box.Height())

	buf.WriteString(`  <g class="edges" fill="none">` + "\n")
	for _, e := range ropes {
		renderRope(&buf, &r, e)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="nodes">` + "\n")
	for _, n := range nodes {
		b := n.Bounds()
		fmt.Fprintf(&buf, `    <rect id="node-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			n.NodeID(), b.Min.X, b.Min.Y, b.Width(), b.Height(), r.nodeFill)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) bounds(nodes []*NodeSprite, ropes []*EdgeRope) geom.Rect {
	if r.view != nil {
		return *r.view
	}
	if len(nodes) == 0 && len(ropes) == 0 {
		return geom.RectAround(geom.Point{}, r.padding, r.padding)
	}
	var box geom.Rect
	first := true
	add := func(b geom.Rect) {
		if first {
			box, first = b, false
			return
		}
		box = box.Union(b)
	}
	for _, n := range nodes {
		add(n.Bounds())
	}
	for _, e := range ropes {
		add(e.Bounds())
	}
	return box.Expand(r.padding)
}

func renderRope(buf *bytes.Buffer, r *svgRenderer, e *EdgeRope) {
	path := e.Path()
	if len(path) < 2 {
		return
	}
	var d strings.Builder
	fmt.Fprintf(&d, "M%.1f,%.1f", path[0].X, path[0].Y)
	for _, p := range path[1:] {
		fmt.Fprintf(&d, " L%.1f,%.1f", p.X, p.Y)
	}
	if e.Hovered() {
		fmt.Fprintf(buf, `    <path id="edge-%d" class="hovered" d="%s" stroke="%s" stroke-width="4" stroke-dasharray="12 6"/>`+"\n",
			e.EdgeID(), d.String(), r.hoverStroke)
		return
	}
	fmt.Fprintf(buf, `    <path id="edge-%d" d="%s" stroke="%s" stroke-width="2"/>`+"\n",
		e.EdgeID(), d.String(), r.edgeStroke)
}
