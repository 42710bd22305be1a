package interact

import (
	"slices"
	"testing"

	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from   State
		event  Event
		want   State
		wantOK bool
	}{
		{Initial, MouseOver, Hovered, true},
		{Initial, DragStart, Initial, false},
		{Idle, MouseOver, Hovered, true},
		{Idle, MouseOut, Idle, false},
		{Hovered, MouseOut, Idle, true},
		{Hovered, DragStart, Dragging, true},
		{Hovered, DragEnd, Hovered, false},
		{Dragging, DragEnd, Clicked, true},
		{Dragging, MouseOut, Dragging, false},
		{Clicked, DragStart, Dragging, true},
		{Clicked, MouseOut, Idle, true},
		{Clicked, MouseOver, Clicked, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"_"+tt.event.String(), func(t *testing.T) {
			got, ok := Next(tt.from, tt.event)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Next = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMachine_Notifications(t *testing.T) {
	m := NewMachine()
	var seen []State
	m.Subscribe(func(s State) { seen = append(seen, s) })

	m.Send(MouseOver)
	if len(seen) != 0 {
		t.Errorf("notified before Start: %v", seen)
	}
	m.Start()
	m.Send(MouseOver) // no transition from Hovered
	m.Send(DragStart)
	m.Send(DragEnd)
	m.Send(MouseOut)

	want := []State{Hovered, Dragging, Clicked, Idle}
	if !slices.Equal(seen, want) {
		t.Errorf("notifications = %v, want %v", seen, want)
	}
}

func TestStrings(t *testing.T) {
	if Dragging.String() != "dragging" || State(42).String() != "unknown" {
		t.Error("State.String mismatch")
	}
	if DragEnd.String() != "dragend" || Event(-1).String() != "unknown" {
		t.Error("Event.String mismatch")
	}
}

func TestController(t *testing.T) {
	g := graph.New()
	a := g.AddNode(geom.Pt(0, 0))
	b := g.AddNode(geom.Pt(100, 0))
	e, _ := g.AddEdge(a.ID(), b.ID())

	c, err := NewController(g, a.ID())
	if err != nil {
		t.Fatal(err)
	}
	if c.DragTo(geom.Pt(5, 5)) {
		t.Error("DragTo should be ignored outside Dragging")
	}

	c.Send(MouseOver)
	if !e.Hovered() {
		t.Error("hover should highlight incident edges")
	}
	c.Send(DragStart)
	if !c.DragTo(geom.Pt(0, 50)) {
		t.Fatal("DragTo failed while dragging")
	}
	if e.Path()[0] != geom.Pt(0, 50) {
		t.Errorf("edge path start = %v, want (0, 50)", e.Path()[0])
	}
	if !c.TakeMoved() || c.TakeMoved() {
		t.Error("TakeMoved should report once")
	}
	c.Send(DragEnd)
	if c.State() != Clicked {
		t.Errorf("State = %v, want clicked", c.State())
	}
	c.Send(MouseOut)
	if e.Hovered() {
		t.Error("idle should clear edge highlight")
	}

	if _, err := NewController(g, 17); err != graph.ErrUnknownNode {
		t.Errorf("NewController unknown = %v, want ErrUnknownNode", err)
	}
}
