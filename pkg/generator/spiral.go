package generator

import (
	"math"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
)

// SpiralOptions configures a Spiral generator.
type SpiralOptions struct {
	// AverageDistance is the starting radius and the gap added between arms.
	AverageDistance float64
	// ChildrenCount is the number of children per arm.
	ChildrenCount int
	// AngleIncrement is the angular step per placed node, in radians.
	AngleIncrement float64
	// EdgeStrategy must be tree, chain or nearest.
	EdgeStrategy EdgeStrategy
	// Proximity overrides NearestProximity for the nearest strategy.
	Proximity *Proximity
}

// Spiral places arms of one parent and ChildrenCount children along an
// outward spiral. The pattern is open, so Base.Repeated has no effect.
type Spiral struct {
	base Base
	opts SpiralOptions
	prox Proximity
}

var _ Generator = (*Spiral)(nil)

// NewSpiral validates opts and returns a spiral generator.
func NewSpiral(base Base, opts SpiralOptions) (*Spiral, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	switch opts.EdgeStrategy {
	case StrategyTree, StrategyChain, StrategyNearest:
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy,
			"spiral generator supports tree, chain or nearest edges, got %q", opts.EdgeStrategy)
	}
	if err := errors.ValidateNonNegative("average_distance", opts.AverageDistance); err != nil {
		return nil, err
	}
	if math.IsNaN(opts.AngleIncrement) || math.IsInf(opts.AngleIncrement, 0) {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "angle_increment must be finite")
	}
	prox := NearestProximity()
	if opts.Proximity != nil {
		prox = *opts.Proximity
	}
	if err := prox.validate(); err != nil {
		return nil, err
	}
	return &Spiral{base: base, opts: opts, prox: prox}, nil
}

// Name implements Generator.
func (s *Spiral) Name() string { return "spiral" }

// Fill implements Generator.
func (s *Spiral) Fill() Result {
	bl := s.base.begin()
	if bl.remaining <= 0 || s.opts.ChildrenCount <= 0 {
		return bl.finish(s.Name())
	}
	avg := s.opts.AverageDistance
	k := s.opts.ChildrenCount
	radius, angle := avg, 0.0
	next := func() geom.Point {
		p := s.base.Center.Polar(radius, angle)
		angle += s.opts.AngleIncrement
		radius += avg / float64(k)
		return p
	}

	for bl.remaining > 0 {
		root := bl.addNode(next())
		var prev graph.NodeID
		for i := 0; i < k && bl.remaining > 0; i++ {
			child := bl.addNode(next())
			switch s.opts.EdgeStrategy {
			case StrategyTree:
				bl.addEdge(root, child)
			case StrategyChain:
				bl.addEdge(root, child)
				if i > 0 {
					bl.addEdge(prev, child)
				}
			}
			prev = child
		}
		radius += avg
		angle += 2 * math.Pi / float64(k)
	}

	if s.opts.EdgeStrategy == StrategyNearest {
		s.prox.connect(bl, s.base.Rand, bl.res.Nodes)
	}
	return bl.finish(s.Name())
}
