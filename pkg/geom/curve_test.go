package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestControlPoints(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		wantC1   Point
		wantC2   Point
	}{
		{"Horizontal", Pt(0, 0), Pt(100, 40), Pt(50, 0), Pt(50, 40)},
		{"Vertical", Pt(0, 0), Pt(40, 100), Pt(0, 50), Pt(40, 50)},
		{"Diagonal", Pt(0, 0), Pt(10, 10), Pt(0, 5), Pt(10, 5)},
		{"Reversed", Pt(100, 40), Pt(0, 0), Pt(50, 40), Pt(50, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1, c2 := ControlPoints(tt.from, tt.to)
			if !near(c1, tt.wantC1) || !near(c2, tt.wantC2) {
				t.Errorf("ControlPoints = %v, %v, want %v, %v", c1, c2, tt.wantC1, tt.wantC2)
			}
		})
	}
}

func TestSampleCurve_TwoPointsIsStraightLine(t *testing.T) {
	a, b := Pt(-10, 20), Pt(50, -40)
	got := SampleCurve([]Point{a, b}, DefaultSamples)
	if len(got) != DefaultSamples {
		t.Fatalf("len = %d, want %d", len(got), DefaultSamples)
	}
	step := b.Sub(a).Scale(1.0 / float64(DefaultSamples-1))
	for i, p := range got {
		want := a.Add(step.Scale(float64(i)))
		if !near(p, want) {
			t.Errorf("sample %d = %v, want %v", i, p, want)
		}
	}
}

func TestSampleCurve_Endpoints(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(3, 9), Pt(7, -4), Pt(12, 2), Pt(20, 20)}
	got := SampleCurve(ctrl, 11)
	if !near(got[0], ctrl[0]) {
		t.Errorf("first = %v, want %v", got[0], ctrl[0])
	}
	if !near(got[10], ctrl[4]) {
		t.Errorf("last = %v, want %v", got[10], ctrl[4])
	}
}

func TestSampleCurve_Panics(t *testing.T) {
	tests := []struct {
		name    string
		ctrl    []Point
		samples int
	}{
		{"NoPoints", nil, 10},
		{"OnePoint", []Point{Pt(1, 1)}, 10},
		{"OneSample", []Point{Pt(0, 0), Pt(1, 1)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			SampleCurve(tt.ctrl, tt.samples)
		})
	}
}

func TestEdgePath(t *testing.T) {
	path := EdgePath(Pt(0, 0), Pt(100, 40))
	if len(path) != DefaultSamples {
		t.Fatalf("len = %d, want %d", len(path), DefaultSamples)
	}
	if !near(path[0], Pt(0, 0)) || !near(path[30], Pt(100, 40)) {
		t.Errorf("endpoints = %v, %v", path[0], path[30])
	}
	if !near(path[15], Pt(50, 20)) {
		t.Errorf("middle = %v, want (50, 20)", path[15])
	}
}

func TestUpdateEdgePath_InPlace(t *testing.T) {
	path := EdgePath(Pt(0, 0), Pt(100, 40))
	first := &path[0]
	UpdateEdgePath(path, Pt(10, 10), Pt(-30, 90))

	if len(path) != DefaultSamples {
		t.Fatalf("len = %d, want %d", len(path), DefaultSamples)
	}
	if &path[0] != first {
		t.Error("path storage was reallocated")
	}
	if !near(path[0], Pt(10, 10)) || !near(path[30], Pt(-30, 90)) {
		t.Errorf("endpoints = %v, %v", path[0], path[30])
	}
	want := EdgePath(Pt(10, 10), Pt(-30, 90))
	for i := range path {
		if !near(path[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, path[i], want[i])
		}
	}
}
