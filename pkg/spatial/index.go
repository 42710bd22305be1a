package spatial

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/observability"
)

// ChunkKey identifies a chunk by its integer grid coordinates.
type ChunkKey struct {
	X int
	Y int
}

// Result holds the entities returned by a query, ordered by chunk distance.
type Result struct {
	Nodes []graph.NodeID
	Edges []graph.EdgeID
}

// Stats summarizes the index contents.
type Stats struct {
	Nodes      int
	Edges      int
	NodeChunks int
	EdgeChunks int
}

// Index buckets the nodes and edges of a graph into square chunks.
//
// Index is not safe for concurrent use.
type Index struct {
	g         *graph.Graph
	chunkSize float64

	nodes     []graph.NodeID
	edges     []graph.EdgeID
	knownNode map[graph.NodeID]struct{}
	knownEdge map[graph.EdgeID]struct{}

	// Entities before these offsets are already bucketed.
	builtNodes int
	builtEdges int

	nodeChunks map[ChunkKey][]graph.NodeID
	edgeChunks map[ChunkKey][]graph.EdgeID
}

// New creates an empty index over g. chunkSize must be a positive finite
// number.
func New(g *graph.Graph, chunkSize float64) (*Index, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "spatial index needs a graph")
	}
	if err := errors.ValidatePositive("chunk_size", chunkSize); err != nil {
		return nil, err
	}
	return &Index{
		g:          g,
		chunkSize:  chunkSize,
		knownNode:  make(map[graph.NodeID]struct{}),
		knownEdge:  make(map[graph.EdgeID]struct{}),
		nodeChunks: make(map[ChunkKey][]graph.NodeID),
		edgeChunks: make(map[ChunkKey][]graph.EdgeID),
	}, nil
}

// ChunkSize returns the side length of a chunk in world units.
func (idx *Index) ChunkSize() float64 { return idx.chunkSize }

// Graph returns the graph the index refers to.
func (idx *Index) Graph() *graph.Graph { return idx.g }

// KeyFor returns the chunk containing p.
func (idx *Index) KeyFor(p geom.Point) ChunkKey {
	return ChunkKey{
		X: int(math.Floor(p.X / idx.chunkSize)),
		Y: int(math.Floor(p.Y / idx.chunkSize)),
	}
}

// InsertNodes records nodes for the next build. Ids already known to the
// index are ignored.
func (idx *Index) InsertNodes(ids ...graph.NodeID) {
	for _, id := range ids {
		if _, ok := idx.knownNode[id]; ok {
			continue
		}
		idx.knownNode[id] = struct{}{}
		idx.nodes = append(idx.nodes, id)
	}
}

// InsertEdges records edges for the next build. Ids already known to the
// index are ignored.
func (idx *Index) InsertEdges(ids ...graph.EdgeID) {
	for _, id := range ids {
		if _, ok := idx.knownEdge[id]; ok {
			continue
		}
		idx.knownEdge[id] = struct{}{}
		idx.edges = append(idx.edges, id)
	}
}

// BuildChunks buckets every entity inserted since the previous build.
// Calling it again without new inserts changes nothing.
func (idx *Index) BuildChunks() {
	start := time.Now()
	for _, id := range idx.nodes[idx.builtNodes:] {
		k := idx.KeyFor(idx.g.Node(id).Pos())
		idx.nodeChunks[k] = append(idx.nodeChunks[k], id)
	}
	idx.builtNodes = len(idx.nodes)

	for _, id := range idx.edges[idx.builtEdges:] {
		from, _ := idx.g.Endpoints(idx.g.Edge(id))
		k := idx.KeyFor(from.Pos())
		idx.edgeChunks[k] = append(idx.edgeChunks[k], id)
	}
	idx.builtEdges = len(idx.edges)

	observability.Index().OnBuild(len(idx.nodes), len(idx.edges), len(idx.nodeChunks), time.Since(start))
}

// Rebuild discards the chunk maps and buckets every known entity at its
// current position. Use it after nodes have moved.
func (idx *Index) Rebuild() {
	clear(idx.nodeChunks)
	clear(idx.edgeChunks)
	idx.builtNodes = 0
	idx.builtEdges = 0
	idx.BuildChunks()
}

// ChunkKeys returns the chunks within radius (in chunks) of the chunk
// containing p, nearest first by Manhattan distance. Chunks at equal
// distance keep row-major enumeration order.
func (idx *Index) ChunkKeys(p geom.Point, radius float64) []ChunkKey {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil
	}
	c := idx.KeyFor(p)
	cx, cy := float64(c.X), float64(c.Y)
	lo, hi := int(math.Floor(cx-radius)), int(math.Floor(cx+radius))
	loY, hiY := int(math.Floor(cy-radius)), int(math.Floor(cy+radius))
	r2 := radius * radius

	var keys []ChunkKey
	for x := lo; x < hi; x++ {
		for y := loY; y < hiY; y++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			if dx*dx+dy*dy < r2 {
				keys = append(keys, ChunkKey{X: x, Y: y})
			}
		}
	}
	slices.SortStableFunc(keys, func(a, b ChunkKey) int {
		return cmp.Compare(manhattan(a, c), manhattan(b, c))
	})
	return keys
}

// Query returns the entities bucketed in the chunks selected by ChunkKeys.
func (idx *Index) Query(p geom.Point, radius float64) Result {
	keys := idx.ChunkKeys(p, radius)
	var res Result
	for _, k := range keys {
		res.Nodes = append(res.Nodes, idx.nodeChunks[k]...)
		res.Edges = append(res.Edges, idx.edgeChunks[k]...)
	}
	observability.Index().OnQuery(len(keys), len(res.Nodes), len(res.Edges))
	return res
}

// Nearest returns the node closest to p within maxDist world units.
func (idx *Index) Nearest(p geom.Point, maxDist float64) (graph.NodeID, bool) {
	if !(maxDist > 0) {
		return 0, false
	}
	radius := math.Ceil(maxDist/idx.chunkSize) + 1
	bestID, best := graph.NodeID(0), math.Inf(1)
	for _, k := range idx.ChunkKeys(p, radius) {
		for _, id := range idx.nodeChunks[k] {
			if d := idx.g.Node(id).Pos().Dist(p); d <= maxDist && d < best {
				bestID, best = id, d
			}
		}
	}
	return bestID, !math.IsInf(best, 1)
}

// Stats returns the number of indexed entities and populated chunks.
func (idx *Index) Stats() Stats {
	return Stats{
		Nodes:      len(idx.nodes),
		Edges:      len(idx.edges),
		NodeChunks: len(idx.nodeChunks),
		EdgeChunks: len(idx.edgeChunks),
	}
}

// NodesIn returns the nodes bucketed in chunk k.
func (idx *Index) NodesIn(k ChunkKey) []graph.NodeID { return idx.nodeChunks[k] }

// EdgesIn returns the edges bucketed in chunk k.
func (idx *Index) EdgesIn(k ChunkKey) []graph.EdgeID { return idx.edgeChunks[k] }

func manhattan(a, c ChunkKey) int {
	return abs(a.X-c.X) + abs(a.Y-c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
