// Package viewport provides a headless camera over the world plane.
//
// [Camera] satisfies the viewport collaborator consumed by pkg/stream: it
// reports its center and scale and notifies listeners when it moves. Zoom is
// clamped so that the visible world height stays within
// [DefaultMinVisibleHeight, DefaultMaxVisibleHeight].
package viewport

import (
	"math"

	"github.com/matzehuels/graphstream/pkg/geom"
)

// Zoom limits expressed as visible world height.
const (
	DefaultMinVisibleHeight = 500.0
	DefaultMaxVisibleHeight = 20000.0
)

// CullPadding is added on every side of the visible bounds before culling.
const CullPadding = 50.0

// Camera maps a screen of fixed size onto the world.
//
// Camera is not safe for concurrent use.
type Camera struct {
	screenW, screenH float64
	center           geom.Point
	scale            float64
	minHeight        float64
	maxHeight        float64
	listeners        []func()
}

// New creates a camera for a screen of w×h pixels centered on the origin at
// scale 1 (clamped to the zoom limits).
func New(w, h float64) *Camera {
	c := &Camera{
		screenW:   math.Max(w, 1),
		screenH:   math.Max(h, 1),
		minHeight: DefaultMinVisibleHeight,
		maxHeight: DefaultMaxVisibleHeight,
	}
	c.scale = c.clamp(1)
	return c
}

// Center returns the world position at the middle of the screen.
func (c *Camera) Center() geom.Point { return c.center }

// Scale returns the zoom factor (screen pixels per world unit) on both axes.
func (c *Camera) Scale() geom.Point { return geom.Pt(c.scale, c.scale) }

// ScreenSize returns the screen dimensions in pixels.
func (c *Camera) ScreenSize() (float64, float64) { return c.screenW, c.screenH }

// OnMoved registers fn to be called after every change of center or scale.
func (c *Camera) OnMoved(fn func()) {
	c.listeners = append(c.listeners, fn)
}

// MoveTo centers the camera on p.
func (c *Camera) MoveTo(p geom.Point) {
	if p == c.center {
		return
	}
	c.center = p
	c.emit()
}

// Pan moves the camera by a screen-space offset in pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.MoveTo(c.center.Add(geom.Pt(dx/c.scale, dy/c.scale)))
}

// Zoom multiplies the scale by factor, keeping the center fixed.
func (c *Camera) Zoom(factor float64) {
	if !(factor > 0) {
		return
	}
	c.SetScale(c.scale * factor)
}

// SetScale sets the zoom factor, clamped to the configured limits.
func (c *Camera) SetScale(s float64) {
	s = c.clamp(s)
	if s == c.scale {
		return
	}
	c.scale = s
	c.emit()
}

// Resize changes the screen size and re-applies the zoom limits.
func (c *Camera) Resize(w, h float64) {
	c.screenW, c.screenH = math.Max(w, 1), math.Max(h, 1)
	c.SetScale(c.scale)
}

// VisibleBounds returns the world rectangle shown on screen.
func (c *Camera) VisibleBounds() geom.Rect {
	return geom.RectAround(c.center, c.screenW/2/c.scale, c.screenH/2/c.scale)
}

// CullBounds returns the visible bounds grown by CullPadding.
func (c *Camera) CullBounds() geom.Rect {
	return c.VisibleBounds().Expand(CullPadding)
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p geom.Point) geom.Point {
	return geom.Pt((p.X-c.center.X)*c.scale+c.screenW/2, (p.Y-c.center.Y)*c.scale+c.screenH/2)
}

// ScreenToWorld converts screen pixels to a world position.
func (c *Camera) ScreenToWorld(p geom.Point) geom.Point {
	return geom.Pt((p.X-c.screenW/2)/c.scale+c.center.X, (p.Y-c.screenH/2)/c.scale+c.center.Y)
}

// clamp keeps the visible height within [minHeight, maxHeight].
func (c *Camera) clamp(s float64) float64 {
	lo := c.screenH / c.maxHeight
	hi := c.screenH / c.minHeight
	return math.Min(math.Max(s, lo), hi)
}

func (c *Camera) emit() {
	for _, fn := range c.listeners {
		fn()
	}
}
