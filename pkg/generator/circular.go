package generator

import (
	"math"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/queue"
)

// CircularOptions configures a Circular generator.
type CircularOptions struct {
	// AverageDistance is the base parent-child distance. Children are placed
	// up to a third further away.
	AverageDistance float64
	// ChildrenCount is the number of children spawned per parent.
	ChildrenCount int
	// MaxDepth is the deepest layer below the root.
	MaxDepth int
	// EdgeStrategy must be tree, random or nearest.
	EdgeStrategy EdgeStrategy
	// RandomProbability overrides DefaultRandomProbability for the random
	// strategy when positive.
	RandomProbability float64
	// Proximity overrides NearestProximity for the nearest strategy.
	Proximity *Proximity
}

// Circular builds radial clusters breadth-first from a root.
type Circular struct {
	base Base
	opts CircularOptions
	prox Proximity
}

var _ Generator = (*Circular)(nil)

// NewCircular validates opts and returns a circular generator.
func NewCircular(base Base, opts CircularOptions) (*Circular, error) {
	if err := base.validate(); err != nil {
		return nil, err
	}
	switch opts.EdgeStrategy {
	case StrategyTree, StrategyRandom, StrategyNearest:
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy,
			"circle generator supports tree, random or nearest edges, got %q", opts.EdgeStrategy)
	}
	if err := errors.ValidateNonNegative("average_distance", opts.AverageDistance); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount("max_depth", opts.MaxDepth, 0); err != nil {
		return nil, err
	}
	if opts.RandomProbability == 0 {
		opts.RandomProbability = DefaultRandomProbability
	}
	if err := errors.ValidateProbability("random_probability", opts.RandomProbability); err != nil {
		return nil, err
	}
	prox := NearestProximity()
	if opts.Proximity != nil {
		prox = *opts.Proximity
	}
	if err := prox.validate(); err != nil {
		return nil, err
	}
	return &Circular{base: base, opts: opts, prox: prox}, nil
}

// Name implements Generator.
func (c *Circular) Name() string { return "circle" }

// ClusterSpacing returns the distance between consecutive cluster centers of
// a repeated pattern.
func (c *Circular) ClusterSpacing() float64 {
	return c.opts.AverageDistance * float64(c.opts.ChildrenCount) * float64(c.opts.MaxDepth)
}

type parent struct {
	id    graph.NodeID
	layer int
}

// Fill implements Generator.
func (c *Circular) Fill() Result {
	bl := c.base.begin()
	if bl.remaining <= 0 || c.opts.ChildrenCount <= 0 {
		return bl.finish(c.Name())
	}
	rng := c.base.Rand
	center := c.base.Center
	for bl.remaining > 0 {
		children := c.cluster(bl, center)
		if !c.base.Repeated || children == 0 {
			break
		}
		center = center.Polar(c.ClusterSpacing(), rng.Float64()*2*math.Pi)
	}

	switch c.opts.EdgeStrategy {
	case StrategyRandom:
		sampleAll(bl, rng, bl.res.Nodes, c.opts.RandomProbability)
	case StrategyNearest:
		c.prox.connect(bl, rng, bl.res.Nodes)
	}
	return bl.finish(c.Name())
}

// cluster grows one tree from a root at center and returns the number of
// children placed.
func (c *Circular) cluster(bl *builder, center geom.Point) int {
	rng := c.base.Rand
	avg := c.opts.AverageDistance

	pool := queue.New[parent]()
	pool.Enqueue(parent{id: bl.addNode(center)})
	placed := 0
	for bl.remaining > 0 && pool.Len() > 0 {
		p := pool.Dequeue(1)[0]
		if p.layer >= c.opts.MaxDepth {
			break
		}
		origin := bl.g.Node(p.id).Pos()
		n := min(bl.remaining, c.opts.ChildrenCount)
		for range n {
			angle := rng.Float64() * 2 * math.Pi
			dist := avg + rng.Float64()*avg/3
			child := bl.addNode(origin.Polar(dist, angle))
			if c.opts.EdgeStrategy == StrategyTree {
				bl.addEdge(p.id, child)
			}
			pool.Enqueue(parent{id: child, layer: p.layer + 1})
			placed++
		}
	}
	return placed
}
