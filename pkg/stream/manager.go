package stream

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/observability"
	"github.com/matzehuels/graphstream/pkg/queue"
	"github.com/matzehuels/graphstream/pkg/spatial"
)

// Scene bundles the collaborators a Manager operates on.
type Scene struct {
	Index    *spatial.Index
	Viewport Viewport
	Surface  Surface
	Factory  Factory
	// Culler is optional.
	Culler Culler
}

// Stats is a snapshot of the manager's bookkeeping.
type Stats struct {
	Frame        uint64
	LiveNodes    int
	LiveEdges    int
	PendingNodes int
	PendingEdges int
	MaxDistance  float64
}

// Manager streams visuals on and off the surface as the viewport moves.
//
// Manager is not safe for concurrent use; call it from the frame loop.
type Manager struct {
	scene  Scene
	g      *graph.Graph
	cfg    Config
	logger *log.Logger

	frame uint64
	moved bool

	pendingNodes *queue.Queue[graph.NodeID]
	pendingEdges *queue.Queue[graph.EdgeID]
	// queuedNode[id] is set while the node sits in pendingNodes.
	queuedNode []bool
	queuedEdge []bool
}

// New validates the scene and configuration and returns a Manager. A nil
// logger selects log.Default().
func New(scene Scene, cfg Config, logger *log.Logger) (*Manager, error) {
	if scene.Index == nil || scene.Viewport == nil || scene.Surface == nil || scene.Factory == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "stream manager needs an index, viewport, surface and factory")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scene.Culler == nil {
		scene.Culler = nopCuller{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		scene:        scene,
		g:            scene.Index.Graph(),
		cfg:          cfg.withDefaults(),
		logger:       logger,
		pendingNodes: queue.New[graph.NodeID](),
		pendingEdges: queue.New[graph.EdgeID](),
	}, nil
}

// Config returns the effective configuration.
func (m *Manager) Config() Config { return m.cfg }

// Frame returns the number of ticks processed so far.
func (m *Manager) Frame() uint64 { return m.frame }

// Moved records a viewport "moved" event. Bursts of events are coalesced:
// the next Tick runs one eviction and one enqueue pass.
func (m *Manager) Moved() { m.moved = true }

// Tick advances one frame, running the passes whose period divides the frame
// counter.
func (m *Manager) Tick() {
	moved := m.moved
	m.moved = false
	if moved || m.frame%uint64(m.cfg.EvictEvery) == 0 {
		m.Evict()
	}
	if moved || m.frame%uint64(m.cfg.EnqueueEvery) == 0 {
		m.Enqueue()
	}
	if m.frame%uint64(m.cfg.MaterializeEvery) == 0 {
		m.Materialize()
	}
	m.frame++

	observability.Stream().OnFrame(
		m.scene.Surface.Nodes().Len(), m.scene.Surface.Edges().Len(),
		m.pendingNodes.Len(), m.pendingEdges.Len())
}

// MaxRelevanceDistance returns the per-axis distance beyond which live
// visuals are evicted. It shrinks as more visuals are live and is +Inf when
// nothing is live.
func (m *Manager) MaxRelevanceDistance() float64 {
	live := m.scene.Surface.Nodes().Len() + m.scene.Surface.Edges().Len()
	return maxRelevanceDistance(m.cfg.RenderDistance, live)
}

func maxRelevanceDistance(renderDistance float64, live int) float64 {
	if live <= 0 {
		return math.Inf(1)
	}
	return math.Floor((10000 * renderDistance / 8) / (float64(live) / 1600))
}

// Evict drops the pending queues and removes live visuals that are too far
// from the viewport center.
func (m *Manager) Evict() {
	start := time.Now()
	m.resetQueues()

	center := m.scene.Viewport.Center()
	d := m.MaxRelevanceDistance()

	var nodes []NodeVisual
	var edges []EdgeVisual
	if !math.IsInf(d, 1) {
		for _, v := range m.scene.Surface.Nodes().Children() {
			if tooFar(center, m.g.Node(v.NodeID()).Pos(), d) {
				nodes = append(nodes, v)
			}
		}
		for _, v := range m.scene.Surface.Edges().Children() {
			if pathTooFar(center, m.g.Edge(v.EdgeID()).Path(), d) {
				edges = append(edges, v)
			}
		}
	}

	if len(nodes) > 0 {
		m.scene.Surface.Nodes().Remove(nodes...)
		m.scene.Culler.Untrack(handles(nodes)...)
		for _, v := range nodes {
			m.g.Node(v.NodeID()).SetAvailableForRender(true)
			v.Destroy()
		}
	}
	if len(edges) > 0 {
		m.scene.Surface.Edges().Remove(edges...)
		m.scene.Culler.Untrack(handles(edges)...)
		for _, v := range edges {
			m.g.Edge(v.EdgeID()).SetAvailableForRender(true)
			v.Destroy()
		}
	}

	elapsed := time.Since(start)
	observability.Stream().OnEvict(len(nodes), len(edges), elapsed)
	if len(nodes)+len(edges) > 0 {
		m.logger.Debug("evicted visuals", "frame", m.frame, "nodes", len(nodes), "edges", len(edges),
			"max_distance", d, "took", elapsed)
	}
}

// Enqueue queries the index around the viewport center and queues entities
// without a visual.
func (m *Manager) Enqueue() {
	start := time.Now()
	m.growMarks()
	res := m.scene.Index.Query(m.scene.Viewport.Center(), m.cfg.RenderDistance)

	var nodes int
	for _, id := range res.Nodes {
		if !m.g.Node(id).AvailableForRender() || m.queuedNode[id] {
			continue
		}
		m.queuedNode[id] = true
		m.pendingNodes.Enqueue(id)
		nodes++
	}
	var edges int
	for _, id := range res.Edges {
		if !m.g.Edge(id).AvailableForRender() || m.queuedEdge[id] {
			continue
		}
		m.queuedEdge[id] = true
		m.pendingEdges.Enqueue(id)
		edges++
	}

	elapsed := time.Since(start)
	observability.Stream().OnEnqueue(nodes, edges, elapsed)
	if nodes+edges > 0 {
		m.logger.Debug("queued entities", "frame", m.frame, "nodes", nodes, "edges", edges,
			"pending_nodes", m.pendingNodes.Len(), "pending_edges", m.pendingEdges.Len())
	}
}

// Materialize builds visuals for up to one batch of pending nodes and edges.
func (m *Manager) Materialize() {
	start := time.Now()
	nodeBudget, edgeBudget := m.cfg.BatchSize, m.cfg.BatchSize
	if m.cfg.MaxLive > 0 {
		room := m.cfg.MaxLive - m.scene.Surface.Nodes().Len() - m.scene.Surface.Edges().Len()
		room = max(room, 0)
		nodeBudget = min(nodeBudget, room)
		edgeBudget = min(edgeBudget, room-min(nodeBudget, m.pendingNodes.Len()))
	}

	var nodes []NodeVisual
	for _, id := range m.pendingNodes.Dequeue(nodeBudget) {
		m.queuedNode[id] = false
		n := m.g.Node(id)
		if !n.AvailableForRender() {
			continue
		}
		n.SetAvailableForRender(false)
		nodes = append(nodes, m.scene.Factory.NewNode(n))
	}
	var edges []EdgeVisual
	for _, id := range m.pendingEdges.Dequeue(edgeBudget) {
		m.queuedEdge[id] = false
		e := m.g.Edge(id)
		if !e.AvailableForRender() {
			continue
		}
		e.SetAvailableForRender(false)
		from, to := m.g.Endpoints(e)
		edges = append(edges, m.scene.Factory.NewEdge(e, from, to))
	}

	if len(nodes) > 0 {
		m.scene.Surface.Nodes().Add(nodes...)
		m.scene.Culler.Track(handles(nodes)...)
	}
	if len(edges) > 0 {
		m.scene.Surface.Edges().Add(edges...)
		m.scene.Culler.Track(handles(edges)...)
	}

	elapsed := time.Since(start)
	observability.Stream().OnMaterialize(len(nodes), len(edges), elapsed)
	if len(nodes)+len(edges) > 0 {
		m.logger.Debug("materialized visuals", "frame", m.frame, "nodes", len(nodes), "edges", len(edges),
			"took", elapsed)
	}
}

// Stats returns the current bookkeeping snapshot.
func (m *Manager) Stats() Stats {
	return Stats{
		Frame:        m.frame,
		LiveNodes:    m.scene.Surface.Nodes().Len(),
		LiveEdges:    m.scene.Surface.Edges().Len(),
		PendingNodes: m.pendingNodes.Len(),
		PendingEdges: m.pendingEdges.Len(),
		MaxDistance:  m.MaxRelevanceDistance(),
	}
}

// Queued reports whether a node is waiting in the pending queue.
func (m *Manager) Queued(id graph.NodeID) bool {
	return int(id) < len(m.queuedNode) && m.queuedNode[id]
}

// EdgeQueued reports whether an edge is waiting in the pending queue.
func (m *Manager) EdgeQueued(id graph.EdgeID) bool {
	return int(id) < len(m.queuedEdge) && m.queuedEdge[id]
}

func (m *Manager) resetQueues() {
	for _, id := range m.pendingNodes.Reset() {
		m.queuedNode[id] = false
	}
	for _, id := range m.pendingEdges.Reset() {
		m.queuedEdge[id] = false
	}
}

// growMarks sizes the queued markers to the graph, which may have grown
// since the previous pass.
func (m *Manager) growMarks() {
	if n := m.g.NodeCount(); n > len(m.queuedNode) {
		m.queuedNode = append(m.queuedNode, make([]bool, n-len(m.queuedNode))...)
	}
	if n := m.g.EdgeCount(); n > len(m.queuedEdge) {
		m.queuedEdge = append(m.queuedEdge, make([]bool, n-len(m.queuedEdge))...)
	}
}

func tooFar(center, p geom.Point, d float64) bool {
	return math.Abs(center.X-p.X) > d && math.Abs(center.Y-p.Y) > d
}

func pathTooFar(center geom.Point, path []geom.Point, d float64) bool {
	for _, p := range path {
		if !tooFar(center, p, d) {
			return false
		}
	}
	return true
}

func handles[V Handle](vs []V) []Handle {
	out := make([]Handle, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

type nopCuller struct{}

func (nopCuller) Track(...Handle)   {}
func (nopCuller) Untrack(...Handle) {}
