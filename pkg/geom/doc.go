// Package geom provides the 2D primitives shared by the graph, the spatial
// index and the rendering surface.
//
// # Points and Rectangles
//
// [Point] is a plain value type in world coordinates. [Rect] is an
// axis-aligned box used for visual bounds and culling.
//
// # Edge Curves
//
// Edges are drawn as cubic Bezier curves whose two inner control points are
// derived from the endpoints by [ControlPoints]: the curve leaves each endpoint
// along the dominant axis of the displacement and bends once at the midpoint.
// [EdgePath] samples the curve at [DefaultSamples] evenly spaced parameters
// using de Casteljau's algorithm, and [UpdateEdgePath] recomputes an existing
// path in place so holders of the slice observe the new shape.
//
//	path := geom.EdgePath(geom.Pt(0, 0), geom.Pt(100, 40))
//	// ... one endpoint moves ...
//	geom.UpdateEdgePath(path, geom.Pt(10, 0), geom.Pt(100, 40))
package geom
