package graph_test

import (
	"fmt"

	"github.com/matzehuels/graphstream/pkg/geom"
	"github.com/matzehuels/graphstream/pkg/graph"
)

func ExampleGraph() {
	g := graph.New()
	a := g.AddNode(geom.Pt(0, 0))
	b := g.AddNode(geom.Pt(100, 40))
	e, _ := g.AddEdge(a.ID(), b.ID())

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Path end:", e.Path()[len(e.Path())-1])

	_ = g.MoveNode(b.ID(), geom.Pt(60, 60))
	fmt.Println("Path end after move:", e.Path()[len(e.Path())-1])
	// Output:
	// Nodes: 2
	// Edges: 1
	// Path end: {100 40}
	// Path end after move: {60 60}
}
