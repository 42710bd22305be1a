package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/graphstream/pkg/graph/interact"
	"github.com/matzehuels/graphstream/pkg/pipeline"
	"github.com/matzehuels/graphstream/pkg/surface"
)

const (
	// frameInterval is the TUI frame period.
	frameInterval = 33 * time.Millisecond

	// Camera pixels per terminal cell. Cells are about twice as tall as wide.
	cellWidth  = 8.0
	cellHeight = 16.0

	// chromeRows are the terminal rows not used by the map.
	chromeRows = 3

	zoomStep = 1.25
)

// frameMsg advances the scene by one frame.
type frameMsg time.Time

func tickFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// =============================================================================
// ViewModel - Interactive scene explorer
// =============================================================================

// ViewModel is the bubbletea model of the view command. Every frame ticks the
// scene and rasterizes the visible live set.
type ViewModel struct {
	Scene    *pipeline.Scene
	Cols     int
	Rows     int
	Dragging bool
}

// NewViewModel creates a model for a terminal of cols×rows cells.
func NewViewModel(scene *pipeline.Scene, cols, rows int) ViewModel {
	m := ViewModel{Scene: scene}
	m.resize(cols, rows)
	return m
}

func (m *ViewModel) resize(cols, rows int) {
	m.Cols = max(cols, 3)
	m.Rows = max(rows-chromeRows, 3)
	m.Scene.Camera.Resize(float64(m.Cols)*cellWidth, float64(m.Rows)*cellHeight)
}

func (m ViewModel) Init() tea.Cmd {
	return tickFrame()
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.Scene.Step()
		return m, tickFrame()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cam := m.Scene.Camera
	w, h := cam.ScreenSize()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		cam.Pan(0, -h/8)
	case "down", "j":
		cam.Pan(0, h/8)
	case "left", "h":
		cam.Pan(-w/8, 0)
	case "right", "l":
		cam.Pan(w/8, 0)
	case "+", "=":
		cam.Zoom(zoomStep)
	case "-", "_":
		cam.Zoom(1 / zoomStep)
	case " ":
		if _, _, ok := m.Scene.Focus(); ok {
			m.Scene.Release()
			m.Dragging = false
		} else {
			m.Scene.HoverAt(cam.Center(), pipeline.DefaultHoverDistance/cam.Scale().X)
		}
	case "d":
		if m.Dragging {
			m.Scene.EndDrag()
			m.Dragging = false
		} else {
			m.Dragging = m.Scene.StartDrag()
		}
	}
	if m.Dragging {
		m.Scene.DragTo(cam.Center())
	}
	return m, nil
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render("  hjkl/arrows pan  +/- zoom  space hover  d drag  q quit"))
	b.WriteString("\n")
	b.WriteString(colorize(m.Scene.ASCII(m.Cols, m.Rows)))
	b.WriteString(m.status())

	return b.String()
}

func (m ViewModel) status() string {
	snap := m.Scene.Snapshot()
	parts := []string{
		fmt.Sprintf("frame %d", snap.Frame),
		fmt.Sprintf("live %d/%d", snap.LiveNodes, snap.LiveEdges),
		fmt.Sprintf("pending %d/%d", snap.PendingNodes, snap.PendingEdges),
		fmt.Sprintf("visible %d", snap.Visible),
		"at " + formatPoint(snap.Center),
		fmt.Sprintf("zoom %.2f", snap.Scale),
	}
	if id, state, ok := m.Scene.Focus(); ok {
		focus := fmt.Sprintf("node %d %s", id, state)
		if state == interact.Dragging {
			focus = StyleWarning.Render(focus)
		}
		parts = append(parts, focus)
	}
	return StyleDim.Render(strings.Join(parts, " · "))
}

// colorize styles runs of map glyphs. Border and blank cells are left as is.
func colorize(raster string) string {
	var b strings.Builder
	var run []rune
	var cur rune
	flush := func() {
		if len(run) == 0 {
			return
		}
		s := string(run)
		switch cur {
		case surface.GlyphNode:
			s = styleNodeGlyph.Render(s)
		case surface.GlyphEdge:
			s = styleEdgeGlyph.Render(s)
		case surface.GlyphHovered:
			s = styleHoverGlyph.Render(s)
		}
		b.WriteString(s)
		run = run[:0]
	}
	for _, r := range raster {
		if r != cur {
			flush()
			cur = r
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}
