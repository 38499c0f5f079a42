// Package core: node lifecycle and node iteration.
//
// Node IDs are allocated densely by NewGraph and AddNode and are never
// reused: RemoveNode turns a slot into a hole, RestoreNode reactivates it.
package core

// HasNode reports whether u is an active node (in range and not a hole).
// Complexity: O(1).
func (g *Graph) HasNode(u Node) bool {
	return u >= 0 && int(u) < g.z && g.exists[u]
}

// AddNode allocates a fresh node ID at the current upper bound, activates
// it, and returns it. The bound grows by one; existing IDs are untouched.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() Node {
	u := Node(g.z)
	g.z++
	g.n++
	g.exists = append(g.exists, true)
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return u
}

// RemoveNode deletes node u and every edge incident to it, leaving a hole.
// The ID keeps its meaning: it stays below UpperNodeIDBound and can be
// brought back with RestoreNode (without its former edges).
// Returns ErrNodeOutOfRange or ErrNodeAbsent.
// Complexity: O(deg(u) · d) where d bounds the neighbors' degrees.
func (g *Graph) RemoveNode(u Node) error {
	if u < 0 || int(u) >= g.z {
		return ErrNodeOutOfRange
	}
	if !g.exists[u] {
		return ErrNodeAbsent
	}

	if g.directed {
		// Outgoing arcs: drop the matching in-arc at each head.
		// A loop lives in both out[u] and in[u]; account for it here only.
		for _, a := range g.out[u] {
			g.m--
			if a.to == u {
				g.selfLoops--
				continue
			}
			g.in[a.to] = dropArc(g.in[a.to], u, a.id)
		}
		// Incoming arcs: drop the matching out-arc at each tail.
		for _, a := range g.in[u] {
			if a.to == u {
				continue // loop already handled above
			}
			g.m--
			g.out[a.to] = dropArc(g.out[a.to], u, a.id)
		}
		g.in[u] = nil
	} else {
		for _, a := range g.out[u] {
			g.m--
			if a.to == u {
				g.selfLoops--
				continue
			}
			g.out[a.to] = dropArc(g.out[a.to], u, a.id)
		}
	}
	g.out[u] = nil
	g.exists[u] = false
	g.n--

	return nil
}

// RestoreNode reactivates the hole u. The node comes back without edges.
// Returns ErrNodeOutOfRange, or ErrNodeActive if u is not a hole.
// Complexity: O(1).
func (g *Graph) RestoreNode(u Node) error {
	if u < 0 || int(u) >= g.z {
		return ErrNodeOutOfRange
	}
	if g.exists[u] {
		return ErrNodeActive
	}
	g.exists[u] = true
	g.n++

	return nil
}

// ForNodes calls fn for every active node in ascending ID order.
// fn must not mutate the graph. Safe to call from parallel regions.
// Complexity: O(UpperNodeIDBound).
func (g *Graph) ForNodes(fn func(u Node)) {
	for u := 0; u < g.z; u++ {
		if g.exists[u] {
			fn(Node(u))
		}
	}
}

// Nodes returns the active node IDs in ascending order.
// Complexity: O(UpperNodeIDBound).
func (g *Graph) Nodes() []Node {
	ids := make([]Node, 0, g.n)
	g.ForNodes(func(u Node) { ids = append(ids, u) })

	return ids
}

// dropArc removes the first arc matching (to, id) from arcs.
// The caller guarantees such an arc exists for a consistent graph.
func dropArc(arcs []arc, to Node, id EdgeID) []arc {
	for i, a := range arcs {
		if a.to == to && a.id == id {
			return append(arcs[:i], arcs[i+1:]...)
		}
	}

	return arcs
}
