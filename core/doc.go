// Package core provides the in-memory Graph type that the topograph
// transforms consume and produce: a slot-array graph with stable integer
// node IDs, optional direction and weights, and exact aggregate counters.
//
// The Graph G = (V,E) is built around one idea: node IDs are identifiers,
// not positions. Removing node u leaves a hole — the ID is never reused,
// every later ID keeps its meaning, and UpperNodeIDBound() stays one past
// the highest ID ever allocated. Algorithms that reference nodes by ID can
// therefore survive any sequence of deletions, and RestoreNode can bring a
// hole back to life.
//
// Storage model:
//
//   - exists[u] — active/hole tag per slot
//   - out[u]    — outgoing half-edges (all incident edges when undirected)
//   - in[u]     — incoming half-edges (directed graphs only)
//
// Each half-edge carries the neighbor, the weight (DefaultWeight on
// unweighted graphs) and, once IndexEdges has run, a stable EdgeID that
// identifies the logical edge independent of its orientation.
//
// Aggregate counters — NumberOfEdges, NumberOfSelfLoops,
// UpperEdgeIDBound — are maintained by the high-level mutation API and can
// be re-derived from storage at any time via Validate.
//
// Bulk construction:
//
// The high-level AddEdge path keeps counters exact on every call, which is
// too slow for O(m) rebuilds. The Builder type provides the sanctioned
// bypass: partial half-edge inserts that touch only one node's slices,
// explicit counter setters, and a Finalize step that validates consistency
// before releasing the *Graph. Until Finalize succeeds the graph is not
// reachable, so counter-dependent queries can never observe the
// intermediate state.
//
// Concurrency:
//
// A finalized Graph is safe for any number of concurrent readers. The
// Builder is safe for concurrent partial inserts iff each node's slices are
// written by exactly one goroutine; everything else on the Builder is
// single-goroutine. There is no internal locking — the parallel transforms
// in package tools partition work by node ID instead.
//
// Errors:
//
//	ErrNodeOutOfRange   - node ID ≥ UpperNodeIDBound (or negative).
//	ErrNodeAbsent       - operation referenced a hole.
//	ErrNodeActive       - RestoreNode on a node that is not a hole.
//	ErrBuilderFinalized - Builder reused after Finalize.
//	ErrInconsistent     - counters disagree with storage (Validate).
package core
