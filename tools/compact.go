package tools

import (
	"fmt"
	"math/rand"

	"github.com/veremark/topograph/core"
)

// ContinuousNodeIDs builds a bijection from g's active node IDs onto the
// dense range [0,n), assigning compacted IDs in ascending original-ID
// order. Complexity: O(UpperNodeIDBound).
func ContinuousNodeIDs(g *core.Graph) map[core.Node]core.Node {
	nodeIDMap := make(map[core.Node]core.Node, g.NumberOfNodes())
	continuous := core.Node(0)
	g.ForNodes(func(u core.Node) {
		nodeIDMap[u] = continuous
		continuous++
	})

	return nodeIDMap
}

// RandomContinuousNodeIDs builds the same bijection as ContinuousNodeIDs
// but assigns compacted IDs in a uniformly shuffled order, drawn from the
// process-wide random source. Complexity: O(UpperNodeIDBound + n).
func RandomContinuousNodeIDs(g *core.Graph) map[core.Node]core.Node {
	nodes := g.Nodes()
	rand.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})
	nodeIDMap := make(map[core.Node]core.Node, len(nodes))
	for continuous, u := range nodes {
		nodeIDMap[u] = core.Node(continuous)
	}

	return nodeIDMap
}

// RemappedGraph copies g into a fresh graph of the given size, mapping
// every node through remap. remap must be total over g's active nodes and
// must map into [0,size); violating either is a programming error. Edge
// weights travel with the edges; edge IDs are not carried over.
// Complexity: O(n + m).
func RemappedGraph(g *core.Graph, size int, remap func(core.Node) core.Node) *core.Graph {
	r := core.NewGraph(size,
		core.WithWeighted(g.IsWeighted()),
		core.WithDirected(g.IsDirected()))
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		_ = r.AddEdge(remap(u), remap(v), w)
	})

	return r
}

// CompactedGraph remaps g through the bijection produced by
// ContinuousNodeIDs or RandomContinuousNodeIDs, yielding a graph over the
// dense ID range [0,len(nodeIDMap)) with no holes.
//
// A nodeIDMap that misses an active node of g is a caller bug, not a
// recoverable condition: the lookup panics rather than silently remapping
// to node 0. Complexity: O(n + m).
func CompactedGraph(g *core.Graph, nodeIDMap map[core.Node]core.Node) *core.Graph {
	return RemappedGraph(g, len(nodeIDMap), func(u core.Node) core.Node {
		compacted, ok := nodeIDMap[u]
		if !ok {
			panic(fmt.Sprintf("tools: node ID map does not cover active node %d", u))
		}

		return compacted
	})
}

// InvertContinuousNodeIDs returns the inverse of nodeIDMap as an indexable
// slice of length n+1: index c holds the original ID of compacted node c,
// and the final sentinel slot holds g's original UpperNodeIDBound — the
// compacted graph alone cannot recover the bound or the hole pattern.
// g must be the graph nodeIDMap was built from. Complexity: O(n).
func InvertContinuousNodeIDs(nodeIDMap map[core.Node]core.Node, g *core.Graph) []core.Node {
	inverted := make([]core.Node, g.NumberOfNodes()+1)
	inverted[g.NumberOfNodes()] = core.Node(g.UpperNodeIDBound())
	for original, compacted := range nodeIDMap {
		inverted[compacted] = original
	}

	return inverted
}

// RestoreGraph reconstructs the pre-compaction original from a compacted
// graph g and the inverse map produced by InvertContinuousNodeIDs: the
// original upper node ID bound is read from the sentinel, original IDs are
// walked in order, and each slot either becomes the next compacted node
// (with its edges re-expressed through the inverse map) or is punched back
// into a hole — reproducing the original hole pattern exactly.
//
// The walk requires inverted to ascend over its first n entries, which is
// true for maps from ContinuousNodeIDs but not RandomContinuousNodeIDs;
// shuffled maps are for experiment isolation, not restoration.
//
// An inverse map whose length does not match g's node count (a map file
// paired with the wrong compacted graph) is a caller bug: the mismatch is
// reported through a panic rather than silently truncating the walk.
//
// Edge weights are re-attached through the inverse map, so weighted graphs
// round-trip losslessly. Edge IDs are not restored. Complexity: O(bound + m).
func RestoreGraph(inverted []core.Node, g *core.Graph) *core.Graph {
	if len(inverted)-1 != g.NumberOfNodes() {
		panic(fmt.Sprintf("tools: inverse map covers %d compacted nodes, graph has %d",
			len(inverted)-1, g.NumberOfNodes()))
	}
	bound := int(inverted[len(inverted)-1])
	r := core.NewGraph(bound,
		core.WithWeighted(g.IsWeighted()),
		core.WithDirected(g.IsDirected()))

	current := core.Node(0) // next compacted ID awaiting its original slot
	compacted := core.Node(len(inverted) - 1)
	for u := core.Node(0); int(u) < bound; u++ {
		if current < compacted && inverted[current] == u {
			g.ForEdgesOf(current, func(cu, cv core.Node, w float64, _ core.EdgeID) {
				if !g.IsDirected() && cv < cu {
					return // undirected edge re-added from its lower endpoint
				}
				_ = r.AddEdge(u, inverted[cv], w)
			})
			current++
		} else {
			_ = r.RemoveNode(u)
		}
	}

	return r
}
