package geom

import "testing"

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Rect
	}{
		{"Empty", nil, Rect{}},
		{"Single", []Point{Pt(3, 4)}, Rect{Min: Pt(3, 4), Max: Pt(3, 4)}},
		{"Many", []Point{Pt(3, 4), Pt(-1, 9), Pt(5, -2)}, Rect{Min: Pt(-1, -2), Max: Pt(5, 9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsOf(tt.points); got != tt.want {
				t.Errorf("BoundsOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := RectAround(Pt(0, 0), 10, 5)
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("size = %vx%v, want 20x10", r.Width(), r.Height())
	}
	if !r.Contains(Pt(10, 5)) || r.Contains(Pt(11, 0)) {
		t.Error("Contains uses wrong bounds")
	}
	if !r.Intersects(RectAround(Pt(15, 0), 5, 1)) {
		t.Error("touching rectangles should intersect")
	}
	if r.Intersects(RectAround(Pt(30, 0), 5, 1)) {
		t.Error("disjoint rectangles should not intersect")
	}
	if got := r.Expand(2); got.Min != Pt(-12, -7) || got.Max != Pt(12, 7) {
		t.Errorf("Expand = %v", got)
	}
	if got := r.Union(RectAround(Pt(20, 0), 1, 1)); got.Max.X != 21 || got.Min.X != -10 {
		t.Errorf("Union = %v", got)
	}
}
