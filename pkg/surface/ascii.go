package surface

import (
	"math"
	"strings"

	"github.com/matzehuels/graphstream/pkg/geom"
)

// Glyphs used by RenderASCII.
const (
	GlyphNode    = 'O'
	GlyphEdge    = '.'
	GlyphHovered = '*'
)

// RenderASCII rasterizes the visible visuals inside view onto a cols×rows
// character grid framed by a border. Nodes overwrite edges. It returns an
// empty string when the grid is too small to have an interior.
func RenderASCII(s *Scene, view geom.Rect, cols, rows int) string {
	if cols < 3 || rows < 3 || view.Width() <= 0 || view.Height() <= 0 {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	for x := range cols {
		grid[0][x] = '-'
		grid[rows-1][x] = '-'
	}
	for y := range rows {
		grid[y][0] = '|'
		grid[y][cols-1] = '|'
	}
	grid[0][0], grid[0][cols-1] = '+', '+'
	grid[rows-1][0], grid[rows-1][cols-1] = '+', '+'

	r := raster{grid: grid, view: view, cols: cols - 2, rows: rows - 2}

	for _, v := range s.edges.Children() {
		e, ok := v.(*EdgeRope)
		if !ok || !e.Visible() {
			continue
		}
		glyph := rune(GlyphEdge)
		if e.Hovered() {
			glyph = GlyphHovered
		}
		path := e.Path()
		for i := 1; i < len(path); i++ {
			r.line(path[i-1], path[i], glyph)
		}
	}
	for _, v := range s.nodes.Children() {
		if n, ok := v.(*NodeSprite); ok && n.Visible() {
			r.plot(n.Pos(), GlyphNode)
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

type raster struct {
	grid       [][]rune
	view       geom.Rect
	cols, rows int
}

// cell maps a world point to interior grid coordinates.
func (r *raster) cell(p geom.Point) (int, int) {
	x := int(math.Floor((p.X - r.view.Min.X) / r.view.Width() * float64(r.cols)))
	y := int(math.Floor((p.Y - r.view.Min.Y) / r.view.Height() * float64(r.rows)))
	return x, y
}

func (r *raster) set(x, y int, c rune) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return
	}
	r.grid[y+1][x+1] = c
}

func (r *raster) plot(p geom.Point, c rune) {
	x, y := r.cell(p)
	r.set(x, y, c)
}

// line draws a Bresenham line between two world points.
func (r *raster) line(a, b geom.Point, c rune) {
	x0, y0 := r.cell(a)
	x1, y1 := r.cell(b)
	// Segments entirely off one side of the grid cannot touch it.
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= r.cols && x1 >= r.cols) || (y0 >= r.rows && y1 >= r.rows) {
		return
	}
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	err := dx + dy
	for {
		r.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
