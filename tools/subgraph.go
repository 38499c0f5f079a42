package tools

import "github.com/veremark/topograph/core"

// SubgraphFromNodes extracts the subgraph of g induced by the seed set plus
// a bounded one-hop fringe. includeOut pulls out-neighbors of seeds into
// the fringe, includeIn pulls in-neighbors; with both false the result is
// the plain induced subgraph of the seeds.
//
// Nodes are classified by relevance: 2 for seeds, 1 for fringe nodes, 0 for
// everything else. The result keeps exactly the nodes with relevance > 0
// (as holes-preserving skeleton) and retains an edge (u,v) iff
// relevance(u)+relevance(v) > 2 — at least one endpoint is a seed and the
// other is at least fringe. Edges purely between fringe nodes are dropped.
// Edge weights are preserved; duplicate or absent seed IDs are tolerated.
//
// For an empty seed set the result has no nodes and no edges regardless of
// the fringe flags. Complexity: O(UpperNodeIDBound + m + Σ deg(seed)).
func SubgraphFromNodes(g *core.Graph, seeds []core.Node, includeOut, includeIn bool) *core.Graph {
	seedSet := make(map[core.Node]struct{}, len(seeds))
	for _, u := range seeds {
		if g.HasNode(u) {
			seedSet[u] = struct{}{}
		}
	}

	fringe := make(map[core.Node]struct{})
	if includeOut || includeIn {
		for u := range seedSet {
			if includeOut {
				g.ForNeighborsOf(u, func(v core.Node, _ float64) {
					fringe[v] = struct{}{}
				})
			}
			if includeIn {
				g.ForInNeighborsOf(u, func(v core.Node, _ float64) {
					fringe[v] = struct{}{}
				})
			}
		}
	}

	// relevance: 2 = seed, 1 = fringe (and not seed), 0 = irrelevant.
	relevance := func(u core.Node) int {
		if _, ok := seedSet[u]; ok {
			return 2
		}
		if _, ok := fringe[u]; ok {
			return 1
		}

		return 0
	}

	s := CopyNodes(g)
	for u := core.Node(0); int(u) < s.UpperNodeIDBound(); u++ {
		if s.HasNode(u) && relevance(u) == 0 {
			_ = s.RemoveNode(u) // skeleton has no edges; removal cannot fail
		}
	}

	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		if relevance(u)+relevance(v) > 2 {
			_ = s.AddEdge(u, v, w) // both endpoints retained above
		}
	})

	return s
}
