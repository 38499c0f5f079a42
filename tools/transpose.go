package tools

import (
	"fmt"

	"github.com/veremark/topograph/core"
	"github.com/veremark/topograph/parallel"
)

// Transpose returns a fresh directed graph with every edge (u,v,w) of g
// replaced by (v,u,w). Node IDs, holes, edge weights, self-loop count and —
// when g has indexed edges — the edge IDs themselves are preserved: an edge
// keeps its ID because it denotes the same logical edge, merely reversed.
//
// Undirected input is rejected with ErrTransposeUndirected: the transpose
// of an undirected graph is the identity, and asking for it is treated as a
// caller mistake rather than a no-op.
//
// The rebuild runs as a fork-join loop over the node-ID range. Each worker
// owns a contiguous block of output nodes: it pre-sizes their adjacency
// from g's swapped in/out-degrees and inserts partial half-edges through a
// core.Builder, so no two workers ever touch the same slice. Hole IDs are
// collected per block and punched sequentially after the join. The edge
// count, self-loop count and edge-ID bound are then set from g's values and
// Finalize re-validates the whole structure before the graph is released —
// the transient counter violation is confined to this function.
// Complexity: O((n + m) / workers) per worker plus the sequential epilogue.
func Transpose(g *core.Graph) (*core.Graph, error) {
	if !g.IsDirected() {
		return nil, ErrTransposeUndirected
	}

	bound := g.UpperNodeIDBound()
	b := core.NewBuilder(bound,
		core.WithDirected(true),
		core.WithWeighted(g.IsWeighted()))
	if g.HasEdgeIDs() {
		b.IndexEdges() // reuse g's ID space, do not reassign
	}

	holes := make([][]core.Node, parallel.Workers(bound))
	parallel.ForBlocks(bound, func(block, lo, hi int) {
		for i := lo; i < hi; i++ {
			u := core.Node(i)
			if !g.HasNode(u) {
				holes[block] = append(holes[block], u)
				continue
			}
			b.PreallocateDirected(u, g.DegreeIn(u), g.DegreeOut(u))
			g.ForInEdgesOf(u, func(_, v core.Node, w float64, id core.EdgeID) {
				b.AddPartialOutEdge(u, v, w, id)
			})
			g.ForEdgesOf(u, func(_, v core.Node, w float64, id core.EdgeID) {
				b.AddPartialInEdge(u, v, w, id)
			})
		}
	})
	for _, block := range holes {
		for _, u := range block {
			b.RemoveNode(u)
		}
	}

	b.SetEdgeCount(g.NumberOfEdges())
	b.SetNumberOfSelfLoops(g.NumberOfSelfLoops())
	b.SetUpperEdgeIDBound(g.UpperEdgeIDBound())

	gt, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("tools: transpose: %w", err)
	}

	return gt, nil
}
