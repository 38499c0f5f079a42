package tools

import "github.com/veremark/topograph/core"

// Append grows g by a disjoint copy of g1: every node of g1 receives a
// freshly allocated ID in g (an injective old→new map), then every edge of
// g1 is re-inserted under the mapped endpoints. No deduplication happens —
// the result is the disjoint union. Weights follow g's weightedness. g1 is
// never touched; g grows monotonically.
// Complexity: O(n1 + m1).
func Append(g, g1 *core.Graph) {
	nodeMap := make(map[core.Node]core.Node, g1.NumberOfNodes())
	g1.ForNodes(func(u core.Node) {
		nodeMap[u] = g.AddNode()
	})
	g1.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		_ = g.AddEdge(nodeMap[u], nodeMap[v], w) // mapped endpoints are active
	})
}

// Merge folds g1 into g under a shared node-ID space: IDs that denote the
// same entity in both graphs stay a single node.
//
// Three phases:
//  1. If g1's bound exceeds g's, extend g with fresh nodes up to that bound
//     and immediately punch holes for the new IDs that are inactive in g1 —
//     they must not become spuriously active.
//  2. Every ID that is a hole in g but active in g1 is restored in g.
//  3. Every edge of g1 absent from g is added. Existence is checked per
//     endpoint pair, an O(deg) scan accepted as the naive baseline.
//
// Merge assumes — and does not verify — that a shared ID means a shared
// entity; mismatched external semantics are the caller's responsibility.
// Complexity: O(bound1 + m1·d) for max degree d in g.
func Merge(g, g1 *core.Graph) {
	if g1.UpperNodeIDBound() > g.UpperNodeIDBound() {
		prevBound := g.UpperNodeIDBound()
		for i := prevBound; i < g1.UpperNodeIDBound(); i++ {
			g.AddNode()
		}
		for i := prevBound; i < g1.UpperNodeIDBound(); i++ {
			if !g1.HasNode(core.Node(i)) {
				_ = g.RemoveNode(core.Node(i)) // fresh node, no edges yet
			}
		}
	}

	for u := core.Node(0); int(u) < g.UpperNodeIDBound(); u++ {
		if !g.HasNode(u) && g1.HasNode(u) {
			_ = g.RestoreNode(u)
		}
	}

	g1.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		if !g.HasEdge(u, v) {
			_ = g.AddEdge(u, v, w)
		}
	})
}
