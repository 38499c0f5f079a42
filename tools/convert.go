package tools

import "github.com/veremark/topograph/core"

// ToUndirected returns an undirected copy of g: same node set and holes,
// every arc becomes a symmetric edge, and any set of arcs between the same
// endpoint pair — a reciprocal pair (u→v, v→u) as well as parallel arcs in
// one direction — collapses into a single undirected edge (the first weight
// encountered wins). If g is already undirected the request is redundant:
// an advisory is logged and a logically identical copy is still returned.
// Complexity: O(n + m·d) for the collapse check.
func ToUndirected(g *core.Graph) *core.Graph {
	if !g.IsDirected() {
		logger.Warn("graph is already undirected")
	}

	return convertedCopy(g, g.IsWeighted(), false)
}

// ToWeighted returns a weighted copy of g with every edge carrying
// DefaultWeight (an unweighted graph has no other weight to offer).
// Redundant requests log an advisory and still return a copy — with its
// existing weights intact. Complexity: O(n + m).
func ToWeighted(g *core.Graph) *core.Graph {
	if g.IsWeighted() {
		logger.Warn("graph is already weighted")
	}

	return convertedCopy(g, true, g.IsDirected())
}

// ToUnweighted returns an unweighted copy of g; weights are dropped and
// every edge reports DefaultWeight afterwards. Redundant requests log an
// advisory and still return a copy. Complexity: O(n + m).
func ToUnweighted(g *core.Graph) *core.Graph {
	if !g.IsWeighted() {
		logger.Warn("graph is already unweighted")
	}

	return convertedCopy(g, false, g.IsDirected())
}

// convertedCopy rebuilds g under the target flags on top of its node
// skeleton. Dropping direction can merge arcs that share an endpoint pair
// (reciprocal or parallel), so the undirected target deduplicates by
// endpoint pair. Edge IDs are not carried over.
func convertedCopy(g *core.Graph, weighted, directed bool) *core.Graph {
	c := copySkeleton(g, weighted, directed)
	dedup := g.IsDirected() && !directed
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		if dedup && c.HasEdge(u, v) {
			return
		}
		_ = c.AddEdge(u, v, w)
	})

	return c
}
