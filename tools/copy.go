package tools

import "github.com/veremark/topograph/core"

// CopyNodes returns a node-only skeleton of g: same upper node ID bound,
// same flags, the exact active-node set (holes reproduced), and no edges.
// Used as the scaffold by transforms that rebuild edges afterwards.
// Complexity: O(UpperNodeIDBound).
func CopyNodes(g *core.Graph) *core.Graph {
	return copySkeleton(g, g.IsWeighted(), g.IsDirected())
}

// copySkeleton builds the node skeleton of g under the given flags. The
// fresh graph starts fully active; every hole of g is then punched into it.
func copySkeleton(g *core.Graph, weighted, directed bool) *core.Graph {
	c := core.NewGraph(g.UpperNodeIDBound(),
		core.WithWeighted(weighted),
		core.WithDirected(directed))
	for u := core.Node(0); int(u) < g.UpperNodeIDBound(); u++ {
		if !g.HasNode(u) {
			_ = c.RemoveNode(u) // fresh skeleton: removal cannot fail
		}
	}

	return c
}
