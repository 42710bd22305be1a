package generator

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/observability"
	"github.com/matzehuels/graphstream/pkg/spatial"
)

// EdgeStrategy selects how a generator connects the nodes it places.
type EdgeStrategy string

const (
	// StrategyTree links every child to its parent.
	StrategyTree EdgeStrategy = "tree"
	// StrategyChain links every child to its parent and to the previous child
	// of the same arm.
	StrategyChain EdgeStrategy = "chain"
	// StrategyNearest connects nearby pairs found through a uniform grid with
	// a fixed probability.
	StrategyNearest EdgeStrategy = "nearest"
	// StrategyRandom samples every unordered pair with a low probability.
	StrategyRandom EdgeStrategy = "random"
)

// ParseEdgeStrategy converts a name into an EdgeStrategy. Matching is case
// insensitive.
func ParseEdgeStrategy(s string) (EdgeStrategy, error) {
	switch v := EdgeStrategy(strings.ToLower(strings.TrimSpace(s))); v {
	case StrategyTree, StrategyChain, StrategyNearest, StrategyRandom:
		return v, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidStrategy, "unknown edge strategy %q", s)
	}
}

// Generator fills a spatial index with nodes and edges.
type Generator interface {
	// Name returns the generator kind, e.g. "circle".
	Name() string
	// Fill creates nodes and edges within the node budget and inserts them
	// into the index. The budget is consumed: a second call adds nothing.
	Fill() Result
}

// Result lists the entities created by a Fill call in creation order.
type Result struct {
	Nodes []graph.NodeID
	Edges []graph.EdgeID
}

// Base holds the parameters shared by every generator.
type Base struct {
	// Index receives every created entity. Its graph owns them.
	Index *spatial.Index
	// TotalNodes is the node budget. Values <= 0 make Fill a no-op.
	TotalNodes int
	// Center is the start position of the pattern.
	Center geom.Point
	// Repeated restarts closed patterns at new centers until the budget is
	// spent. Open patterns ignore it.
	Repeated bool
	// Rand is the random source for positions and edge sampling.
	Rand *rand.Rand
}

func (b Base) validate() error {
	if b.Index == nil {
		return errors.New(errors.ErrCodeInvalidGenerator, "generator needs a spatial index")
	}
	if b.Rand == nil {
		return errors.New(errors.ErrCodeInvalidGenerator, "generator needs a random source")
	}
	return nil
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// builder tracks the remaining budget and the entities created during Fill.
type builder struct {
	g         *graph.Graph
	idx       *spatial.Index
	remaining int
	res       Result
	start     time.Time
}

func (b *Base) begin() *builder {
	bl := &builder{
		g:         b.Index.Graph(),
		idx:       b.Index,
		remaining: max(b.TotalNodes, 0),
		start:     time.Now(),
	}
	b.TotalNodes = 0
	return bl
}

func (bl *builder) addNode(p geom.Point) graph.NodeID {
	n := bl.g.AddNode(p)
	bl.remaining--
	bl.idx.InsertNodes(n.ID())
	bl.res.Nodes = append(bl.res.Nodes, n.ID())
	return n.ID()
}

func (bl *builder) addEdge(from, to graph.NodeID) {
	e, err := bl.g.AddEdge(from, to)
	if err != nil {
		return
	}
	bl.idx.InsertEdges(e.ID())
	bl.res.Edges = append(bl.res.Edges, e.ID())
}

func (bl *builder) finish(kind string) Result {
	observability.Generator().OnGenerate(kind, len(bl.res.Nodes), len(bl.res.Edges), time.Since(bl.start))
	return bl.res
}

// sampleAll connects every unordered pair of ids with probability p.
func sampleAll(bl *builder, rng *rand.Rand, ids []graph.NodeID, p float64) {
	if p <= 0 {
		return
	}
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if rng.Float64() < p {
				bl.addEdge(a, b)
			}
		}
	}
}
