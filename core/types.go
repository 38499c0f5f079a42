// Package core: central types, sentinel errors, and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates a node ID outside [0, UpperNodeIDBound).
	ErrNodeOutOfRange = errors.New("core: node ID out of range")

	// ErrNodeAbsent indicates an operation referenced a hole (removed node).
	ErrNodeAbsent = errors.New("core: node is not active")

	// ErrNodeActive indicates RestoreNode was called on an active node.
	ErrNodeActive = errors.New("core: node is already active")

	// ErrBuilderFinalized indicates a Builder was used after Finalize.
	ErrBuilderFinalized = errors.New("core: builder already finalized")

	// ErrInconsistent indicates aggregate counters disagree with storage.
	ErrInconsistent = errors.New("core: graph state is inconsistent")
)

// Node is a stable node identifier. IDs are dense on construction and are
// never reused after removal; a removed ID below UpperNodeIDBound is a hole.
type Node int

// EdgeID is a stable edge identifier assigned by IndexEdges. It denotes the
// logical edge, not a particular orientation of it.
type EdgeID int

const (
	// None is the canonical "no node" sentinel.
	None Node = -1

	// NoEdgeID marks an edge that has not been indexed.
	NoEdgeID EdgeID = -1

	// DefaultWeight is the weight reported for edges of unweighted graphs.
	DefaultWeight float64 = 1.0
)

// arc is one half of an edge, stored in the adjacency slice of an endpoint.
// Non-loop edges materialize as two arcs (mirror at the other endpoint for
// undirected graphs, in-arc at the head for directed ones).
type arc struct {
	to     Node
	weight float64
	id     EdgeID
}

// Option configures a Graph before construction.
type Option func(g *Graph)

// WithDirected sets whether edges are directed arcs (true) or symmetric
// connections (false). The flag is fixed for the lifetime of the Graph.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted sets whether edge weights are meaningful. Unweighted graphs
// store and report DefaultWeight for every edge.
func WithWeighted(weighted bool) Option {
	return func(g *Graph) { g.weighted = weighted }
}

// Graph is the slot-array graph consumed by the topograph transforms.
//
// The zero value is not usable; construct with NewGraph or via a Builder.
// See the package documentation for the storage and concurrency model.
type Graph struct {
	// Configuration flags, immutable after NewGraph.
	directed bool
	weighted bool

	// Node bookkeeping: n active nodes among z slots.
	n int
	z int

	// Edge bookkeeping.
	m            int
	selfLoops    int
	edgesIndexed bool
	upperEdgeID  EdgeID

	// Storage: exists tags slots as active/hole; out holds outgoing arcs
	// (all incident arcs when undirected); in holds incoming arcs and is
	// nil for undirected graphs.
	exists []bool
	out    [][]arc
	in     [][]arc
}

// NewGraph creates a Graph with nodes 0..n-1 active and no edges.
// By default the graph is undirected and unweighted.
// Complexity: O(n).
func NewGraph(n int, opts ...Option) *Graph {
	g := &Graph{
		n:      n,
		z:      n,
		exists: make([]bool, n),
		out:    make([][]arc, n),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.in = make([][]arc, n)
	}
	for u := range g.exists {
		g.exists[u] = true
	}

	return g
}

// IsDirected reports whether edges are directed arcs.
func (g *Graph) IsDirected() bool { return g.directed }

// IsWeighted reports whether edge weights are meaningful.
func (g *Graph) IsWeighted() bool { return g.weighted }

// NumberOfNodes returns the number of active nodes. O(1).
func (g *Graph) NumberOfNodes() int { return g.n }

// NumberOfEdges returns the number of edges; a self-loop counts once. O(1).
func (g *Graph) NumberOfEdges() int { return g.m }

// NumberOfSelfLoops returns the number of self-loop edges. O(1).
func (g *Graph) NumberOfSelfLoops() int { return g.selfLoops }

// UpperNodeIDBound returns one past the highest node ID ever allocated.
// Holes live strictly below this bound. O(1).
func (g *Graph) UpperNodeIDBound() int { return g.z }

// HasEdgeIDs reports whether IndexEdges has assigned stable edge IDs.
func (g *Graph) HasEdgeIDs() bool { return g.edgesIndexed }

// UpperEdgeIDBound returns one past the highest edge ID ever assigned.
// Zero until IndexEdges has run. O(1).
func (g *Graph) UpperEdgeIDBound() EdgeID { return g.upperEdgeID }
