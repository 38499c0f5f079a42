package tools

import (
	"github.com/veremark/topograph/core"
	"github.com/veremark/topograph/parallel"
)

// MaxDegree returns the maximum out-degree over all active nodes of g,
// computed as a parallel max reduction over the node-ID range. Holes
// contribute degree 0; the empty graph yields 0.
// Complexity: O(UpperNodeIDBound / workers) per worker.
func MaxDegree(g *core.Graph) int {
	return computeMaxDegree(g, false)
}

// MaxInDegree returns the maximum in-degree over all active nodes of g.
// Equal to MaxDegree on undirected graphs.
func MaxInDegree(g *core.Graph) int {
	return computeMaxDegree(g, true)
}

// computeMaxDegree reduces per-node degree queries with an associative max;
// no ordering between nodes is required, so blocks combine freely.
func computeMaxDegree(g *core.Graph, inDegree bool) int {
	return parallel.MaxInt(g.UpperNodeIDBound(), func(i int) int {
		if inDegree {
			return g.DegreeIn(core.Node(i))
		}

		return g.DegreeOut(core.Node(i))
	})
}
