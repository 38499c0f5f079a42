package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veremark/topograph/core"
)

// buildTriangle assembles 0→1→2→0 through the bulk path, the way a
// transform would: partial halves per node, counters set at the end.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder(3, core.WithDirected(true), core.WithWeighted(true))
	b.IndexEdges()

	b.PreallocateDirected(0, 1, 1)
	b.PreallocateDirected(1, 1, 1)
	b.PreallocateDirected(2, 1, 1)

	b.AddPartialOutEdge(0, 1, 1.0, 0)
	b.AddPartialInEdge(1, 0, 1.0, 0)
	b.AddPartialOutEdge(1, 2, 2.0, 1)
	b.AddPartialInEdge(2, 1, 2.0, 1)
	b.AddPartialOutEdge(2, 0, 3.0, 2)
	b.AddPartialInEdge(0, 2, 3.0, 2)

	b.SetEdgeCount(3)
	b.SetNumberOfSelfLoops(0)
	b.SetUpperEdgeIDBound(3)

	g, err := b.Finalize()
	require.NoError(t, err)

	return g
}

// TestBuilder_Finalize verifies that a consistent bulk build releases a
// fully functional graph.
func TestBuilder_Finalize(t *testing.T) {
	g := buildTriangle(t)

	require.Equal(t, 3, g.NumberOfNodes())
	require.Equal(t, 3, g.NumberOfEdges())
	require.True(t, g.HasEdgeIDs())
	require.Equal(t, core.EdgeID(3), g.UpperEdgeIDBound())
	require.True(t, g.HasEdge(2, 0))

	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, 2.0, w)

	id, ok := g.EdgeIDOf(2, 0)
	require.True(t, ok)
	require.Equal(t, core.EdgeID(2), id)
	require.NoError(t, g.Validate())
}

// TestBuilder_FinalizeOnce rejects a second Finalize.
func TestBuilder_FinalizeOnce(t *testing.T) {
	b := core.NewBuilder(1)
	b.SetEdgeCount(0)
	_, err := b.Finalize()
	require.NoError(t, err)

	_, err = b.Finalize()
	require.ErrorIs(t, err, core.ErrBuilderFinalized)
}

// TestBuilder_RejectsInconsistentCounters keeps a lying build unreachable.
func TestBuilder_RejectsInconsistentCounters(t *testing.T) {
	b := core.NewBuilder(2, core.WithDirected(true))
	b.AddPartialOutEdge(0, 1, 1.0, core.NoEdgeID)
	b.AddPartialInEdge(1, 0, 1.0, core.NoEdgeID)
	b.SetEdgeCount(5) // storage holds one edge

	_, err := b.Finalize()
	require.ErrorIs(t, err, core.ErrInconsistent)
}

// TestBuilder_RejectsHalfEdge catches a missing in-half.
func TestBuilder_RejectsHalfEdge(t *testing.T) {
	b := core.NewBuilder(2, core.WithDirected(true))
	b.AddPartialOutEdge(0, 1, 1.0, core.NoEdgeID)
	b.SetEdgeCount(1)

	_, err := b.Finalize()
	require.ErrorIs(t, err, core.ErrInconsistent)
}

// TestBuilder_RemoveNode punches holes without edge sweeps.
func TestBuilder_RemoveNode(t *testing.T) {
	b := core.NewBuilder(3, core.WithDirected(true))
	b.RemoveNode(1)
	b.RemoveNode(1) // idempotent inside a bulk build
	b.SetEdgeCount(0)

	g, err := b.Finalize()
	require.NoError(t, err)
	require.Equal(t, 2, g.NumberOfNodes())
	require.False(t, g.HasNode(1))
	require.Equal(t, 3, g.UpperNodeIDBound())
}

// TestBuilder_RejectsEdgeIntoHole enforces the endpoint invariant at
// finalize time.
func TestBuilder_RejectsEdgeIntoHole(t *testing.T) {
	b := core.NewBuilder(2, core.WithDirected(true))
	b.AddPartialOutEdge(0, 1, 1.0, core.NoEdgeID)
	b.AddPartialInEdge(1, 0, 1.0, core.NoEdgeID)
	b.RemoveNode(1) // clears 1's arcs but 0 still points at the hole
	b.SetEdgeCount(0)

	_, err := b.Finalize()
	require.ErrorIs(t, err, core.ErrInconsistent)
}
