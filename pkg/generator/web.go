package generator

import (
	"math"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
)

// WebOptions configures a Web generator.
type WebOptions struct {
	// CellMargin is the base spacing between grid cells. Each cell adds up to
	// one more margin of jitter per axis.
	CellMargin float64
	// Proximity overrides WebProximity(CellMargin).
	Proximity *Proximity
}

// Web lays nodes on a jittered square grid and meshes them by proximity.
type Web struct {
	base Base
	opts WebOptions
	prox Proximity
}

var _ Generator = (*Web)(nil)

// NewWeb validates opts and returns a web generator.
func NewWeb(base Base, opts WebOptions) (*Web, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidateNonNegative("cell_margin", opts.CellMargin); err != nil {
		return nil, err
	}
	prox := WebProximity(opts.CellMargin)
	if opts.Proximity != nil {
		prox = *opts.Proximity
	}
	if err := prox.validate(); err != nil {
		return nil, err
	}
	return &Web{base: base, opts: opts, prox: prox}, nil
}

// Name implements Generator.
func (w *Web) Name() string { return "web" }

// Side returns the number of rows and columns for a budget of n nodes.
func Side(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(n))))
}

// Fill implements Generator.
func (w *Web) Fill() Result {
	bl := w.base.begin()
	if bl.remaining <= 0 {
		return bl.finish(w.Name())
	}
	rng := w.base.Rand
	m := w.opts.CellMargin
	side := Side(bl.remaining)

	// Expected cell pitch is 1.5 margins; center the expected grid.
	half := float64(side-1) * 1.5 * m / 2
	origin := w.base.Center.Sub(geom.Pt(half, half))

	for i := 0; i < side && bl.remaining > 0; i++ {
		for j := 0; j < side && bl.remaining > 0; j++ {
			x := origin.X + float64(j)*(m+m*rng.Float64())
			y := origin.Y + float64(i)*(m+m*rng.Float64())
			bl.addNode(geom.Pt(x, y))
		}
	}
	w.prox.connect(bl, rng, bl.res.Nodes)
	return bl.finish(w.Name())
}
