// Package core: the bulk construction path.
//
// Builder is the sanctioned bypass of the per-call bookkeeping that AddEdge
// performs: half-edges go straight into the slot array, aggregate counters
// are set explicitly at the end, and Finalize refuses to release a graph
// whose counters disagree with its storage. The *Graph is unreachable until
// Finalize succeeds, so no reader can observe the intermediate state.
package core

import "fmt"

// Builder accumulates an uncommitted Graph through partial half-edge
// inserts. Obtain one with NewBuilder, populate it, set the counters, and
// call Finalize exactly once.
//
// Concurrency contract: PreallocateDirected and the AddPartial* methods may
// run concurrently as long as each node's slices are written by exactly one
// goroutine (partition the work by node ID). RemoveNode, the counter
// setters, and Finalize are single-goroutine.
type Builder struct {
	g    *Graph
	done bool
}

// NewBuilder starts a bulk build of a graph with nodes 0..bound-1 active.
// Complexity: O(bound).
func NewBuilder(bound int, opts ...Option) *Builder {
	return &Builder{g: NewGraph(bound, opts...)}
}

// IndexEdges declares that the graph under construction carries stable edge
// IDs supplied by the caller on every partial insert. Call before the first
// AddPartial*; combine with SetUpperEdgeIDBound when reusing an existing ID
// space.
func (b *Builder) IndexEdges() {
	b.g.edgesIndexed = true
}

// PreallocateDirected sizes the adjacency slices of u for outDeg outgoing
// and inDeg incoming arcs, so the parallel insert phase never reallocates.
// Directed graphs only. Complexity: O(1) plus allocation.
func (b *Builder) PreallocateDirected(u Node, outDeg, inDeg int) {
	b.g.out[u] = make([]arc, 0, outDeg)
	b.g.in[u] = make([]arc, 0, inDeg)
}

// PreallocateUndirected sizes the adjacency slice of u for deg arcs.
func (b *Builder) PreallocateUndirected(u Node, deg int) {
	b.g.out[u] = make([]arc, 0, deg)
}

// AddPartialOutEdge appends the outgoing half of edge (u,v) to u's slice
// without touching counters or v. Pass NoEdgeID when IDs are not in play.
func (b *Builder) AddPartialOutEdge(u, v Node, w float64, id EdgeID) {
	if !b.g.weighted {
		w = DefaultWeight
	}
	b.g.out[u] = append(b.g.out[u], arc{to: v, weight: w, id: id})
}

// AddPartialInEdge appends the incoming half of edge (v,u) to u's slice
// without touching counters or v. Directed graphs only.
func (b *Builder) AddPartialInEdge(u, v Node, w float64, id EdgeID) {
	if !b.g.weighted {
		w = DefaultWeight
	}
	b.g.in[u] = append(b.g.in[u], arc{to: v, weight: w, id: id})
}

// AddPartialEdge appends one undirected half of edge (u,v) to u's slice.
// The mirror half at v must be inserted by whoever owns v; a loop is
// inserted exactly once.
func (b *Builder) AddPartialEdge(u, v Node, w float64, id EdgeID) {
	if !b.g.weighted {
		w = DefaultWeight
	}
	b.g.out[u] = append(b.g.out[u], arc{to: v, weight: w, id: id})
}

// RemoveNode punches a hole at u without sweeping incident edges — the bulk
// caller guarantees none were inserted for u. Unlike Graph.RemoveNode this
// never fails: out-of-range IDs cannot occur inside a bulk build and
// repeated removal is idempotent.
func (b *Builder) RemoveNode(u Node) {
	if !b.g.exists[u] {
		return
	}
	b.g.exists[u] = false
	b.g.out[u] = nil
	if b.g.directed {
		b.g.in[u] = nil
	}
	b.g.n--
}

// SetEdgeCount sets the total edge counter that the partial inserts
// bypassed.
func (b *Builder) SetEdgeCount(m int) { b.g.m = m }

// SetNumberOfSelfLoops sets the self-loop counter.
func (b *Builder) SetNumberOfSelfLoops(loops int) { b.g.selfLoops = loops }

// SetUpperEdgeIDBound sets one past the highest edge ID in use. Only
// meaningful after IndexEdges.
func (b *Builder) SetUpperEdgeIDBound(bound EdgeID) { b.g.upperEdgeID = bound }

// Finalize validates the accumulated state and releases the finished
// *Graph. A Builder can be finalized once; further calls return
// ErrBuilderFinalized. If the counters disagree with storage the build is
// rejected with a wrapped ErrInconsistent and the graph stays unreachable.
// Complexity: O(n + m).
func (b *Builder) Finalize() (*Graph, error) {
	if b.done {
		return nil, ErrBuilderFinalized
	}
	if err := b.g.validateCounters(); err != nil {
		return nil, err
	}
	b.done = true
	g := b.g
	b.g = nil

	return g, nil
}

// validateCounters re-derives edge count, self-loop count, and the edge-ID
// bound from the slot array and compares them with the maintained values.
func (g *Graph) validateCounters() error {
	var arcs, loops, inArcs int
	maxID := NoEdgeID
	for u := 0; u < g.z; u++ {
		if !g.exists[u] {
			if len(g.out[u]) != 0 || (g.directed && len(g.in[u]) != 0) {
				return fmt.Errorf("%w: hole %d has incident arcs", ErrInconsistent, u)
			}
			continue
		}
		arcs += len(g.out[u])
		for _, a := range g.out[u] {
			if !g.HasNode(a.to) {
				return fmt.Errorf("%w: edge (%d,%d) ends in a hole", ErrInconsistent, u, a.to)
			}
			if a.to == Node(u) {
				loops++
			}
			if g.edgesIndexed {
				if a.id == NoEdgeID {
					return fmt.Errorf("%w: unindexed arc (%d,%d)", ErrInconsistent, u, a.to)
				}
				if a.id > maxID {
					maxID = a.id
				}
			}
		}
		if g.directed {
			inArcs += len(g.in[u])
		}
	}

	var m int
	if g.directed {
		m = arcs
		if inArcs != arcs {
			return fmt.Errorf("%w: %d out-arcs vs %d in-arcs", ErrInconsistent, arcs, inArcs)
		}
	} else {
		// Non-loop edges materialize as two arcs, loops as one.
		if (arcs-loops)%2 != 0 {
			return fmt.Errorf("%w: odd mirror count", ErrInconsistent)
		}
		m = (arcs-loops)/2 + loops
	}
	if m != g.m {
		return fmt.Errorf("%w: edge count %d, storage holds %d", ErrInconsistent, g.m, m)
	}
	if loops != g.selfLoops {
		return fmt.Errorf("%w: self-loop count %d, storage holds %d", ErrInconsistent, g.selfLoops, loops)
	}
	if g.edgesIndexed && maxID >= g.upperEdgeID {
		return fmt.Errorf("%w: edge ID %d beyond bound %d", ErrInconsistent, maxID, g.upperEdgeID)
	}

	return nil
}
