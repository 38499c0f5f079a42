// Package tools implements structural transformations over core.Graph:
// operations that take an existing graph and produce a structurally related
// one while preserving node identity, edge multiplicity, edge IDs, and the
// aggregate counters downstream algorithms depend on.
//
// # Operations
//
//	MaxDegree / MaxInDegree   — parallel max-degree reduction
//	CopyNodes                 — node-only skeleton (same holes, no edges)
//	SubgraphFromNodes         — induced subgraph plus a bounded neighbor fringe
//	Transpose                 — reverse every arc of a directed graph, in
//	                            parallel, preserving edge IDs and counters
//	Append                    — disjoint union under freshly allocated IDs
//	Merge                     — ID-aligned union with edge deduplication
//	ContinuousNodeIDs /       — bijection of the active ID set onto [0,n),
//	RandomContinuousNodeIDs     in order or uniformly shuffled
//	CompactedGraph /          — remap a graph through such a bijection and
//	RemappedGraph               the generic per-node remap form
//	InvertContinuousNodeIDs / — inverse permutation (with original-bound
//	RestoreGraph                sentinel) and exact reconstruction of the
//	                            pre-compaction graph, holes included
//	ToUndirected / ToWeighted — conversions between graph flavors; redundant
//	/ ToUnweighted              requests proceed with a WARN advisory
//
// # Error taxonomy
//
// Three failure classes, handled differently by design:
//
//   - Usage errors abort the single operation and propagate to the caller:
//     Transpose on an undirected graph returns ErrTransposeUndirected (the
//     result would be a silent identity, treated as a caller mistake).
//   - Advisories never interrupt control flow: converting a graph that is
//     already in the target state logs a warning on the package sink (see
//     SetLogger) and still returns a valid copy.
//   - Precondition violations are programming errors, not recoverable
//     conditions: a node-ID map that does not cover every active node makes
//     CompactedGraph panic.
//
// No operation mutates its first input except Append and Merge, which are
// explicitly in-place accumulators owned by the caller. All results are
// fresh, independently owned graphs.
//
// # Concurrency
//
// Only the degree reduction and the transpose parallelize; both are
// synchronous fork-join regions (package parallel) that complete before the
// function returns. The transpose partitions the output adjacency by node
// ID so each slice is written by exactly one worker, and collects pending
// hole removals per worker block instead of serializing on a lock.
package tools
