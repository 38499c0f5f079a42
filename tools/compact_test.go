package tools_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veremark/topograph/core"
	"github.com/veremark/topograph/tools"
)

// holeyGraph builds a directed weighted graph over IDs 0..6 with holes at
// 1 and 4, so compaction has real work to do.
func holeyGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(7, core.WithDirected(true), core.WithWeighted(true))
	require.NoError(t, g.RemoveNode(1))
	require.NoError(t, g.RemoveNode(4))
	require.NoError(t, g.AddEdge(0, 2, 1.5))
	require.NoError(t, g.AddEdge(2, 3, 2.5))
	require.NoError(t, g.AddEdge(3, 6, 3.5))
	require.NoError(t, g.AddEdge(5, 5, 4.5)) // self-loop survives remapping too

	return g
}

// requireBijection checks m maps g's active nodes one-to-one onto [0,n).
func requireBijection(t *testing.T, g *core.Graph, m map[core.Node]core.Node) {
	t.Helper()
	require.Len(t, m, g.NumberOfNodes())
	seen := make(map[core.Node]bool, len(m))
	for original, compacted := range m {
		require.True(t, g.HasNode(original))
		require.GreaterOrEqual(t, int(compacted), 0)
		require.Less(t, int(compacted), len(m))
		require.False(t, seen[compacted], "compacted ID %d assigned twice", compacted)
		seen[compacted] = true
	}
}

// TestContinuousNodeIDs_AscendingBijection: IDs come out dense and ordered
// the way the active nodes are.
func TestContinuousNodeIDs_AscendingBijection(t *testing.T) {
	g := holeyGraph(t)
	m := tools.ContinuousNodeIDs(g)
	requireBijection(t, g, m)
	require.Equal(t, map[core.Node]core.Node{0: 0, 2: 1, 3: 2, 5: 3, 6: 4}, m)
}

// TestRandomContinuousNodeIDs_Bijection: the shuffled variant is still a
// bijection onto the dense range.
func TestRandomContinuousNodeIDs_Bijection(t *testing.T) {
	g := holeyGraph(t)
	requireBijection(t, g, tools.RandomContinuousNodeIDs(g))
}

// TestCompactedGraph_Dense: the compacted graph has no holes, the same
// edge count, and edges land where the map says.
func TestCompactedGraph_Dense(t *testing.T) {
	g := holeyGraph(t)
	m := tools.ContinuousNodeIDs(g)
	c := tools.CompactedGraph(g, m)

	require.Equal(t, g.NumberOfNodes(), c.NumberOfNodes())
	require.Equal(t, g.NumberOfNodes(), c.UpperNodeIDBound())
	require.Equal(t, g.NumberOfEdges(), c.NumberOfEdges())
	require.Equal(t, g.NumberOfSelfLoops(), c.NumberOfSelfLoops())
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		cw, ok := c.Weight(m[u], m[v])
		require.True(t, ok, "edge (%d,%d) missing after compaction", u, v)
		require.Equal(t, w, cw)
	})
	require.NoError(t, c.Validate())
}

// TestCompactedGraph_PanicsOnPartialMap: a map missing an active node is
// a caller bug and must not be papered over.
func TestCompactedGraph_PanicsOnPartialMap(t *testing.T) {
	g := holeyGraph(t)
	m := tools.ContinuousNodeIDs(g)
	delete(m, 3)
	require.Panics(t, func() { tools.CompactedGraph(g, m) })
}

// TestInvertContinuousNodeIDs: length n+1, sentinel carries the original
// bound, and composing both directions is the identity.
func TestInvertContinuousNodeIDs(t *testing.T) {
	g := holeyGraph(t)
	m := tools.ContinuousNodeIDs(g)
	inv := tools.InvertContinuousNodeIDs(m, g)

	require.Len(t, inv, g.NumberOfNodes()+1)
	require.Equal(t, core.Node(g.UpperNodeIDBound()), inv[len(inv)-1])
	for original, compacted := range m {
		require.Equal(t, original, inv[compacted])
	}
}

// TestRestoreGraph_RoundTrip: compact then restore reproduces the exact
// active-node set, hole pattern, adjacency, and weights.
func TestRestoreGraph_RoundTrip(t *testing.T) {
	g := holeyGraph(t)
	m := tools.ContinuousNodeIDs(g)
	c := tools.CompactedGraph(g, m)
	r := tools.RestoreGraph(tools.InvertContinuousNodeIDs(m, g), c)

	require.Equal(t, g.UpperNodeIDBound(), r.UpperNodeIDBound())
	require.Equal(t, g.Nodes(), r.Nodes())
	require.Equal(t, g.NumberOfEdges(), r.NumberOfEdges())
	require.Equal(t, g.NumberOfSelfLoops(), r.NumberOfSelfLoops())
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		rw, ok := r.Weight(u, v)
		require.True(t, ok, "edge (%d,%d) missing after restore", u, v)
		require.Equal(t, w, rw)
	})
	require.NoError(t, r.Validate())
}

// TestRestoreGraph_RoundTripUndirected: the undirected flavor must not
// double-add edges during restoration.
func TestRestoreGraph_RoundTripUndirected(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.RemoveNode(2))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 3, 0))
	require.NoError(t, g.AddEdge(3, 4, 0))
	require.NoError(t, g.AddEdge(4, 4, 0))

	m := tools.ContinuousNodeIDs(g)
	r := tools.RestoreGraph(tools.InvertContinuousNodeIDs(m, g),
		tools.CompactedGraph(g, m))

	require.Equal(t, g.Nodes(), r.Nodes())
	require.Equal(t, g.NumberOfEdges(), r.NumberOfEdges())
	require.Equal(t, g.NumberOfSelfLoops(), r.NumberOfSelfLoops())
	require.True(t, r.HasEdge(1, 0)) // symmetric view intact
	require.NoError(t, r.Validate())
}

// TestRestoreGraph_PanicsOnMismatchedMap: pairing an inverse map with the
// wrong compacted graph must fail loudly, not walk off the map.
func TestRestoreGraph_PanicsOnMismatchedMap(t *testing.T) {
	g := holeyGraph(t)
	m := tools.ContinuousNodeIDs(g)
	inv := tools.InvertContinuousNodeIDs(m, g)

	other := core.NewGraph(2, core.WithDirected(true), core.WithWeighted(true))
	require.Panics(t, func() { tools.RestoreGraph(inv, other) })
}

// TestCompactedGraph_RandomIDsDense: the shuffled bijection still yields a
// dense, counter-consistent compacted graph.
func TestCompactedGraph_RandomIDsDense(t *testing.T) {
	g := holeyGraph(t)
	m := tools.RandomContinuousNodeIDs(g)
	c := tools.CompactedGraph(g, m)

	require.Equal(t, g.NumberOfNodes(), c.NumberOfNodes())
	require.Equal(t, g.NumberOfNodes(), c.UpperNodeIDBound())
	require.Equal(t, g.NumberOfEdges(), c.NumberOfEdges())
	g.ForEdges(func(u, v core.Node, w float64, _ core.EdgeID) {
		require.True(t, c.HasEdge(m[u], m[v]))
	})
	require.NoError(t, c.Validate())
}

// TestRemappedGraph_IdentityIntoLargerSpace: remapping through the
// identity into a wider bound keeps adjacency and leaves the tail empty.
func TestRemappedGraph_IdentityIntoLargerSpace(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	r := tools.RemappedGraph(g, 10, func(u core.Node) core.Node { return u })
	require.Equal(t, 10, r.UpperNodeIDBound())
	require.Equal(t, 10, r.NumberOfNodes())
	require.True(t, r.HasEdge(0, 1))
	require.True(t, r.HasEdge(1, 2))
	require.Equal(t, 2, r.NumberOfEdges())
}
