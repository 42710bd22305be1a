package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphstream/pkg/config"
	"github.com/matzehuels/graphstream/pkg/errors"
	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
	"github.com/matzehuels/graphstream/pkg/graph/interact"
	"github.com/matzehuels/graphstream/pkg/spatial"
	"github.com/matzehuels/graphstream/pkg/stream"
	"github.com/matzehuels/graphstream/pkg/surface"
	"github.com/matzehuels/graphstream/pkg/viewport"
)

// Scene is a fully wired streaming scene.
//
// Scene is not safe for concurrent use. Other goroutines talk to a running
// scene by sending a [Request] to [RunOptions.Requests].
type Scene struct {
	ID         uuid.UUID
	Config     config.Config
	Graph      *graph.Graph
	Index      *spatial.Index
	Camera     *viewport.Camera
	Surface    *surface.Scene
	Factory    *surface.Factory
	Culler     *surface.Culler
	Manager    *stream.Manager
	BuildStats BuildStats

	logger  *log.Logger
	visible int
	focus   *interact.Controller

	// indexDirty is set when a node moved since the last Rebuild, including
	// moves of a focus that has since been dropped.
	indexDirty bool
}

// Snapshot is a point-in-time view of a scene's streaming state.
type Snapshot struct {
	ID           string `json:"id"`
	Frame        uint64 `json:"frame"`
	LiveNodes    int    `json:"live_nodes"`
	LiveEdges    int    `json:"live_edges"`
	PendingNodes int    `json:"pending_nodes"`
	PendingEdges int    `json:"pending_edges"`
	// MaxDistance is nil while nothing is live.
	MaxDistance *float64   `json:"max_distance"`
	Visible     int        `json:"visible"`
	Center      geom.Point `json:"center"`
	Scale       float64    `json:"scale"`
	Nodes       int        `json:"nodes"`
	Edges       int        `json:"edges"`
	Focus       *FocusInfo `json:"focus,omitempty"`
}

// FocusInfo describes the node under interaction.
type FocusInfo struct {
	Node  graph.NodeID `json:"node"`
	State string       `json:"state"`
}

// Step advances one frame: it refreshes the index if a dragged node moved,
// ticks the manager and culls the live set against the camera.
func (s *Scene) Step() {
	if s.focus != nil && s.focus.TakeMoved() {
		s.indexDirty = true
	}
	if s.indexDirty {
		s.Index.Rebuild()
		s.indexDirty = false
	}
	s.Manager.Tick()
	s.visible = s.Culler.Cull(s.Camera.CullBounds())
}

// Snapshot returns the current streaming state.
func (s *Scene) Snapshot() Snapshot {
	st := s.Manager.Stats()
	snap := Snapshot{
		ID:           s.ID.String(),
		Frame:        st.Frame,
		LiveNodes:    st.LiveNodes,
		LiveEdges:    st.LiveEdges,
		PendingNodes: st.PendingNodes,
		PendingEdges: st.PendingEdges,
		Visible:      s.visible,
		Center:       s.Camera.Center(),
		Scale:        s.Camera.Scale().X,
		Nodes:        s.Graph.NodeCount(),
		Edges:        s.Graph.EdgeCount(),
	}
	if !math.IsInf(st.MaxDistance, 1) {
		d := st.MaxDistance
		snap.MaxDistance = &d
	}
	if s.focus != nil {
		snap.Focus = &FocusInfo{Node: s.focus.Node(), State: s.focus.State().String()}
	}
	return snap
}

// SVG renders the live, visible set.
func (s *Scene) SVG(opts ...surface.SVGOption) []byte {
	return surface.RenderSVG(s.Surface, opts...)
}

// ASCII rasterizes the camera's visible bounds onto a cols×rows grid.
func (s *Scene) ASCII(cols, rows int) string {
	return surface.RenderASCII(s.Surface, s.Camera.VisibleBounds(), cols, rows)
}

// =============================================================================
// Frame Loop
// =============================================================================

// Request is work executed on the frame loop between two frames.
type Request func(s *Scene)

// RunOptions configures Run.
type RunOptions struct {
	// Frames is the number of frames to run. Zero or less runs until the
	// context is canceled.
	Frames int
	// Path moves the camera before each frame. Nil leaves it alone.
	Path Path
	// Interval paces frames. Zero runs them back to back.
	Interval time.Duration
	// Requests are served between frames.
	Requests <-chan Request
	// OnFrame is called after each frame.
	OnFrame func(frame int, snap Snapshot)
}

// Run drives the scene until the frame budget is spent or ctx is canceled,
// in which case it returns a CANCELED or TIMEOUT error wrapping ctx.Err().
func (s *Scene) Run(ctx context.Context, opts RunOptions) error {
	var tick <-chan time.Time
	if opts.Interval > 0 {
		t := time.NewTicker(opts.Interval)
		defer t.Stop()
		tick = t.C
	}
	start := time.Now()
	for n := 0; opts.Frames <= 0 || n < opts.Frames; n++ {
		if err := s.serve(ctx, tick, opts.Requests); err != nil {
			return errors.FromContext(err)
		}
		if opts.Path != nil {
			s.Camera.MoveTo(opts.Path(n))
		}
		s.Step()
		if opts.OnFrame != nil {
			opts.OnFrame(n, s.Snapshot())
		}
	}
	st := s.Manager.Stats()
	s.logger.Info("run finished",
		"frames", st.Frame,
		"live_nodes", st.LiveNodes,
		"live_edges", st.LiveEdges,
		"duration", time.Since(start))
	return nil
}

// serve runs pending requests. Without a ticker it drains what is queued and
// returns; with one it keeps serving until the next tick.
func (s *Scene) serve(ctx context.Context, tick <-chan time.Time, reqs <-chan Request) error {
	for {
		if tick == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case req := <-reqs:
				req(s)
			default:
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-reqs:
			req(s)
		case <-tick:
			return nil
		}
	}
}

// =============================================================================
// Interaction
// =============================================================================

// HoverAt moves the pointer to p: the nearest node within maxDist becomes
// the focus and receives a mouseover; the previous focus receives a
// mouseout. It reports the hovered node. A focus being dragged keeps the
// pointer.
func (s *Scene) HoverAt(p geom.Point, maxDist float64) (graph.NodeID, bool) {
	if s.focus != nil && s.focus.State() == interact.Dragging {
		return s.focus.Node(), true
	}
	id, ok := s.Index.Nearest(p, maxDist)
	if s.focus != nil && (!ok || s.focus.Node() != id) {
		s.focus.Send(interact.MouseOut)
		s.dropFocus()
	}
	if !ok {
		return 0, false
	}
	if s.focus == nil {
		ctrl, err := interact.NewController(s.Graph, id)
		if err != nil {
			return 0, false
		}
		s.focus = ctrl
	}
	s.focus.Send(interact.MouseOver)
	return id, true
}

// Focus returns the focused node, if any.
func (s *Scene) Focus() (graph.NodeID, interact.State, bool) {
	if s.focus == nil {
		return 0, interact.Initial, false
	}
	return s.focus.Node(), s.focus.State(), true
}

// Release sends a mouseout to the focus and drops it.
func (s *Scene) Release() {
	if s.focus == nil {
		return
	}
	if s.focus.State() == interact.Dragging {
		s.focus.Send(interact.DragEnd)
	}
	s.focus.Send(interact.MouseOut)
	s.dropFocus()
}

// dropFocus forgets the focus, keeping its pending move for the next Step.
func (s *Scene) dropFocus() {
	if s.focus.TakeMoved() {
		s.indexDirty = true
	}
	s.focus = nil
}

// StartDrag begins dragging the focused node.
func (s *Scene) StartDrag() bool {
	return s.focus != nil && s.focus.Send(interact.DragStart)
}

// DragTo moves the dragged node to p. The index is refreshed on the next
// Step.
func (s *Scene) DragTo(p geom.Point) bool {
	return s.focus != nil && s.focus.DragTo(p)
}

// EndDrag drops the dragged node where it is.
func (s *Scene) EndDrag() bool {
	return s.focus != nil && s.focus.Send(interact.DragEnd)
}
