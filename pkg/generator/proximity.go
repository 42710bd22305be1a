package generator

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/spatial"
)

// Default proximity tuning.
const (
	// DefaultCellSize is the grid bucket size for proximity passes.
	DefaultCellSize = 300.0

	// DefaultNearestDistance is the per-axis distance window of the nearest
	// strategy.
	DefaultNearestDistance = 300.0

	// DefaultNearestProbability is the chance that a nearby pair is linked by
	// the nearest strategy.
	DefaultNearestProbability = 0.02

	// DefaultRandomProbability is the chance that an unordered pair is linked
	// by the random strategy. Each pair is drawn once, so this is twice the
	// per-direction rate of 1e-4 to keep the same expected edge density.
	DefaultRandomProbability = 0.0002
)

// ProximityPass links pairs closer than MaxDistance on both axes with
// probability Probability.
type ProximityPass struct {
	MaxDistance float64
	Probability float64
}

// Proximity configures grid-bucketed edge sampling. Only pairs in the same or
// adjacent cells are considered, and each unordered pair is tested once per
// pass.
type Proximity struct {
	CellSize float64
	Passes   []ProximityPass
}

// NearestProximity returns the proximity settings of the nearest strategy.
func NearestProximity() Proximity {
	return Proximity{
		CellSize: DefaultCellSize,
		Passes:   []ProximityPass{{MaxDistance: DefaultNearestDistance, Probability: DefaultNearestProbability}},
	}
}

// WebProximity returns the dense and sparse passes used by the web generator
// for a given cell margin.
func WebProximity(margin float64) Proximity {
	return Proximity{
		CellSize: DefaultCellSize,
		Passes: []ProximityPass{
			{MaxDistance: 1000 * margin / 10, Probability: 0.5},
			{MaxDistance: 2000 + 2*margin, Probability: 0.1},
		},
	}
}

func (p Proximity) validate() error {
	if err := errors.ValidatePositive("proximity.cell_size", p.CellSize); err != nil {
		return err
	}
	for i, pass := range p.Passes {
		if err := errors.ValidateNonNegative(fmt.Sprintf("proximity.passes[%d].max_distance", i), pass.MaxDistance); err != nil {
			return err
		}
		if err := errors.ValidateProbability(fmt.Sprintf("proximity.passes[%d].probability", i), pass.Probability); err != nil {
			return err
		}
	}
	return nil
}

// connect runs every pass over ids. Cells are visited in sorted order so the
// outcome depends only on the random source.
func (p Proximity) connect(bl *builder, rng *rand.Rand, ids []graph.NodeID) {
	if len(p.Passes) == 0 {
		return
	}
	cells := make(map[spatial.ChunkKey][]graph.NodeID)
	for _, id := range ids {
		pos := bl.g.Node(id).Pos()
		k := spatial.ChunkKey{
			X: int(math.Floor(pos.X / p.CellSize)),
			Y: int(math.Floor(pos.Y / p.CellSize)),
		}
		cells[k] = append(cells[k], id)
	}
	keys := make([]spatial.ChunkKey, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	for _, k := range keys {
		here := cells[k]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				nk := spatial.ChunkKey{X: k.X + dx, Y: k.Y + dy}
				there, ok := cells[nk]
				if !ok {
					continue
				}
				switch c := compareKeys(nk, k); {
				case c < 0:
					// Pair already visited from the other cell.
				case c == 0:
					for i, a := range here {
						for _, b := range here[i+1:] {
							p.link(bl, rng, a, b)
						}
					}
				default:
					for _, a := range here {
						for _, b := range there {
							p.link(bl, rng, a, b)
						}
					}
				}
			}
		}
	}
}

func (p Proximity) link(bl *builder, rng *rand.Rand, a, b graph.NodeID) {
	pa, pb := bl.g.Node(a).Pos(), bl.g.Node(b).Pos()
	dx, dy := math.Abs(pa.X-pb.X), math.Abs(pa.Y-pb.Y)
	for _, pass := range p.Passes {
		if dx < pass.MaxDistance && dy < pass.MaxDistance && rng.Float64() < pass.Probability {
			bl.addEdge(a, b)
		}
	}
}

func compareKeys(a, b spatial.ChunkKey) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
