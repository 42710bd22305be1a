package pipeline

import (
	"math"

	"github.com/matzehuels/graphstream/pkg/geom"
)

// pathPeriod is the number of frames of one circle lap and one line sweep.
const pathPeriod = 600

// Path returns the camera center for a frame number.
type Path func(frame int) geom.Point

// StillPath keeps the camera at center.
func StillPath(center geom.Point) Path {
	return func(int) geom.Point { return center }
}

// CirclePath orbits center at radius, one lap every period frames.
func CirclePath(center geom.Point, radius float64, period int) Path {
	if period <= 0 {
		period = pathPeriod
	}
	return func(frame int) geom.Point {
		angle := 2 * math.Pi * float64(frame%period) / float64(period)
		return center.Polar(radius, angle)
	}
}

// LinePath sweeps from center to center+(length, 0) and back, one sweep
// every period frames.
func LinePath(center geom.Point, length float64, period int) Path {
	if period <= 0 {
		period = pathPeriod
	}
	return func(frame int) geom.Point {
		phase := frame % (2 * period)
		if phase > period {
			phase = 2*period - phase
		}
		return center.Add(geom.Pt(length*float64(phase)/float64(period), 0))
	}
}

// NewPath returns the path of the given kind. extent is the circle radius
// or the line length.
func NewPath(kind string, center geom.Point, extent float64) (Path, error) {
	if err := ValidatePath(kind); err != nil {
		return nil, err
	}
	switch kind {
	case PathCircle:
		return CirclePath(center, extent, pathPeriod), nil
	case PathLine:
		return LinePath(center, extent, pathPeriod), nil
	default:
		return StillPath(center), nil
	}
}
