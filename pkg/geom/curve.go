package geom

import "math"

// DefaultSamples is the number of points in an edge path: t = i/30 for
// i in [0, 30].
const DefaultSamples = 31

// ControlPoints returns the two inner control points of the cubic curve
// between from and to. The curve bends along the dominant axis of the
// displacement: when the horizontal half-distance exceeds the vertical one the
// controls sit on the vertical line through the midpoint, otherwise on the
// horizontal line through it.
func ControlPoints(from, to Point) (Point, Point) {
	mid := Midpoint(from, to)
	if math.Abs(from.X-mid.X) > math.Abs(from.Y-mid.Y) {
		return Point{X: mid.X, Y: from.Y}, Point{X: mid.X, Y: to.Y}
	}
	return Point{X: from.X, Y: mid.Y}, Point{X: to.X, Y: mid.Y}
}

// SampleCurve evaluates the Bezier curve defined by ctrl at samples evenly
// spaced parameters t = i/(samples-1), starting at ctrl[0] and ending at the
// last control point.
//
// It panics if ctrl has fewer than two points or samples is less than two.
func SampleCurve(ctrl []Point, samples int) []Point {
	if samples < 2 {
		panic("geom: curve needs at least two samples")
	}
	out := make([]Point, samples)
	SampleCurveInto(out, ctrl)
	return out
}

// SampleCurveInto writes len(dst) evenly spaced samples of the curve into dst
// without allocating a new result slice.
//
// It panics if ctrl has fewer than two points or dst has fewer than two
// elements.
func SampleCurveInto(dst []Point, ctrl []Point) {
	if len(ctrl) < 2 {
		panic("geom: curve needs at least two control points")
	}
	if len(dst) < 2 {
		panic("geom: curve needs at least two samples")
	}
	var buf [4]Point
	work := buf[:0]
	if len(ctrl) > len(buf) {
		work = make([]Point, 0, len(ctrl))
	}
	last := float64(len(dst) - 1)
	for i := range dst {
		dst[i] = deCasteljau(work[:len(ctrl)], ctrl, float64(i)/last)
	}
}

// deCasteljau reduces ctrl to a single point at parameter t using work as
// scratch space. work must have len(ctrl) elements.
func deCasteljau(work, ctrl []Point, t float64) Point {
	copy(work, ctrl)
	for n := len(work) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			work[i] = Lerp(work[i], work[i+1], t)
		}
	}
	return work[0]
}

// EdgePath returns the DefaultSamples-point path of the curved edge between
// from and to.
func EdgePath(from, to Point) []Point {
	path := make([]Point, DefaultSamples)
	UpdateEdgePath(path, from, to)
	return path
}

// UpdateEdgePath recomputes an edge path in place for new endpoints. The
// number and order of points in dst are preserved.
func UpdateEdgePath(dst []Point, from, to Point) {
	c1, c2 := ControlPoints(from, to)
	SampleCurveInto(dst, []Point{from, c1, c2, to})
}
