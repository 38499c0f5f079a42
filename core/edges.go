// Package core: edge lifecycle, degrees, edge indexing, and traversal.
//
// Enumeration contract: ForEdges visits every edge exactly once, in
// ascending tail-ID order (an undirected edge is visited from its lower
// endpoint; a loop once). IndexEdges assigns IDs in exactly this order, so
// edge IDs are reproducible for a fixed topology.
package core

// AddEdge inserts an edge from u to v with the given weight.
// On unweighted graphs the weight argument is ignored and DefaultWeight is
// stored. Self-loops and parallel edges are permitted; deduplication is the
// caller's concern (see tools.Merge). If the graph has indexed edges, the
// new edge receives the next free EdgeID.
// Returns ErrNodeOutOfRange or ErrNodeAbsent if an endpoint is not active.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Node, weight float64) error {
	if u < 0 || int(u) >= g.z || v < 0 || int(v) >= g.z {
		return ErrNodeOutOfRange
	}
	if !g.exists[u] || !g.exists[v] {
		return ErrNodeAbsent
	}
	if !g.weighted {
		weight = DefaultWeight
	}

	id := NoEdgeID
	if g.edgesIndexed {
		id = g.upperEdgeID
		g.upperEdgeID++
	}

	g.out[u] = append(g.out[u], arc{to: v, weight: weight, id: id})
	if g.directed {
		g.in[v] = append(g.in[v], arc{to: u, weight: weight, id: id})
	} else if u != v {
		g.out[v] = append(g.out[v], arc{to: u, weight: weight, id: id})
	}
	g.m++
	if u == v {
		g.selfLoops++
	}

	return nil
}

// HasEdge reports whether at least one edge from u to v exists.
// On undirected graphs HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v Node) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	for _, a := range g.out[u] {
		if a.to == v {
			return true
		}
	}

	return false
}

// Weight returns the weight of the first edge from u to v and whether such
// an edge exists. Unweighted graphs report DefaultWeight.
// Complexity: O(deg(u)).
func (g *Graph) Weight(u, v Node) (float64, bool) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return 0, false
	}
	for _, a := range g.out[u] {
		if a.to == v {
			return a.weight, true
		}
	}

	return 0, false
}

// EdgeIDOf returns the stable ID of the first edge from u to v and whether
// such an edge exists. NoEdgeID is returned for edges of unindexed graphs.
// Complexity: O(deg(u)).
func (g *Graph) EdgeIDOf(u, v Node) (EdgeID, bool) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return NoEdgeID, false
	}
	for _, a := range g.out[u] {
		if a.to == v {
			return a.id, true
		}
	}

	return NoEdgeID, false
}

// DegreeOut returns the out-degree of u (incident-edge count on undirected
// graphs; a loop counts once). Holes have degree 0.
// Complexity: O(1).
func (g *Graph) DegreeOut(u Node) int {
	if !g.HasNode(u) {
		return 0
	}

	return len(g.out[u])
}

// DegreeIn returns the in-degree of u. Equal to DegreeOut on undirected
// graphs. Holes have degree 0.
// Complexity: O(1).
func (g *Graph) DegreeIn(u Node) int {
	if !g.HasNode(u) {
		return 0
	}
	if !g.directed {
		return len(g.out[u])
	}

	return len(g.in[u])
}

// IndexEdges assigns each edge a stable EdgeID in enumeration order
// (0..m-1) and raises UpperEdgeIDBound to m. Edges added afterwards keep
// receiving fresh IDs. Calling IndexEdges twice is a no-op.
// Complexity: O(n + m·d) where d bounds mirror-scan cost.
func (g *Graph) IndexEdges() {
	if g.edgesIndexed {
		return
	}
	next := EdgeID(0)
	for u := 0; u < g.z; u++ {
		if !g.exists[u] {
			continue
		}
		for i := range g.out[u] {
			a := &g.out[u][i]
			if !g.directed && a.to < Node(u) {
				continue // mirror half; ID set from the lower endpoint
			}
			a.id = next
			g.setMirrorID(Node(u), a.to, next)
			next++
		}
	}
	g.edgesIndexed = true
	g.upperEdgeID = next
}

// setMirrorID stamps id onto the not-yet-indexed counterpart arc of (u,v).
func (g *Graph) setMirrorID(u, v Node, id EdgeID) {
	var mirror []arc
	switch {
	case g.directed:
		mirror = g.in[v]
	case u != v:
		mirror = g.out[v]
	default:
		return // undirected loop is stored once
	}
	for i := range mirror {
		if mirror[i].to == u && mirror[i].id == NoEdgeID {
			mirror[i].id = id
			return
		}
	}
}

// ForEdges calls fn once per edge with (tail, head, weight, edgeID).
// Edge ID is NoEdgeID until IndexEdges has run. fn must not mutate the
// graph. Safe to call from parallel regions.
// Complexity: O(n + m).
func (g *Graph) ForEdges(fn func(u, v Node, w float64, id EdgeID)) {
	for u := 0; u < g.z; u++ {
		if !g.exists[u] {
			continue
		}
		for _, a := range g.out[u] {
			if !g.directed && a.to < Node(u) {
				continue // visit undirected edges from their lower endpoint
			}
			fn(Node(u), a.to, a.weight, a.id)
		}
	}
}

// ForNeighborsOf calls fn for every out-neighbor of u (every neighbor on
// undirected graphs), with the connecting edge's weight. A node with
// parallel edges is visited once per edge. No-op if u is not active.
// Complexity: O(deg(u)).
func (g *Graph) ForNeighborsOf(u Node, fn func(v Node, w float64)) {
	if !g.HasNode(u) {
		return
	}
	for _, a := range g.out[u] {
		fn(a.to, a.weight)
	}
}

// ForInNeighborsOf calls fn for every in-neighbor of u. Identical to
// ForNeighborsOf on undirected graphs. No-op if u is not active.
// Complexity: O(degIn(u)).
func (g *Graph) ForInNeighborsOf(u Node, fn func(v Node, w float64)) {
	if !g.HasNode(u) {
		return
	}
	if !g.directed {
		for _, a := range g.out[u] {
			fn(a.to, a.weight)
		}
		return
	}
	for _, a := range g.in[u] {
		fn(a.to, a.weight)
	}
}

// ForEdgesOf calls fn for every outgoing edge of u as (u, head, w, id).
// No-op if u is not active. Complexity: O(deg(u)).
func (g *Graph) ForEdgesOf(u Node, fn func(u, v Node, w float64, id EdgeID)) {
	if !g.HasNode(u) {
		return
	}
	for _, a := range g.out[u] {
		fn(u, a.to, a.weight, a.id)
	}
}

// ForInEdgesOf calls fn for every incoming edge of u as (u, tail, w, id).
// Identical to ForEdgesOf on undirected graphs. No-op if u is not active.
// Complexity: O(degIn(u)).
func (g *Graph) ForInEdgesOf(u Node, fn func(u, v Node, w float64, id EdgeID)) {
	if !g.HasNode(u) {
		return
	}
	if !g.directed {
		for _, a := range g.out[u] {
			fn(u, a.to, a.weight, a.id)
		}
		return
	}
	for _, a := range g.in[u] {
		fn(u, a.to, a.weight, a.id)
	}
}

// Validate recomputes the aggregate counters from storage and compares them
// with the maintained values. It returns ErrInconsistent (wrapped with
// detail) on any mismatch, nil otherwise. Used as a post-bulk assertion.
// Complexity: O(n + m).
func (g *Graph) Validate() error {
	return g.validateCounters()
}
