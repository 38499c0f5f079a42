package core_test

import (
	"fmt"

	"github.com/veremark/topograph/core"
)

// ExampleGraph shows the identity-preserving node lifecycle: removal
// punches a hole, the bound never shrinks, and fresh IDs never reuse it.
func ExampleGraph() {
	g := core.NewGraph(4, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)

	_ = g.RemoveNode(3)  // hole at 3
	fresh := g.AddNode() // allocated at the bound, not in the hole
	fmt.Println("fresh:", fresh)

	fmt.Println("nodes:", g.Nodes())
	fmt.Println("bound:", g.UpperNodeIDBound())
	fmt.Println("edges:", g.NumberOfEdges())
	// Output:
	// fresh: 4
	// nodes: [0 1 2 4]
	// bound: 5
	// edges: 2
}

// ExampleBuilder assembles a graph through the bulk path: partial halves,
// explicit counters, and a validating Finalize.
func ExampleBuilder() {
	b := core.NewBuilder(2, core.WithDirected(true))
	b.AddPartialOutEdge(0, 1, core.DefaultWeight, core.NoEdgeID)
	b.AddPartialInEdge(1, 0, core.DefaultWeight, core.NoEdgeID)
	b.SetEdgeCount(1)

	g, err := b.Finalize()
	fmt.Println("err:", err)
	fmt.Println("edges:", g.NumberOfEdges())
	// Output:
	// err: <nil>
	// edges: 1
}
