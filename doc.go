// Package topograph is an in-memory graph transformation and
// topology-remapping toolkit: take an existing directed/undirected,
// weighted/unweighted graph and produce a structurally related one —
// transposed, subgraph-extracted, ID-compacted, or merged — while keeping
// the bookkeeping (degrees, edge IDs, aggregate counters) consistent.
//
// What's inside?
//
//	A small, composable set of packages:
//		• core/     — the Graph ADT: stable integer node IDs over a slot
//		              array (holes survive deletion), per-flag directed and
//		              weighted behavior, edge indexing, and a bulk Builder
//		              for high-throughput construction
//		• parallel/ — synchronous fork-join node loops with associative
//		              reduction, used by the degree and transpose engines
//		• tools/    — the transforms themselves: MaxDegree, CopyNodes,
//		              SubgraphFromNodes, Transpose, Append, Merge, the
//		              ID-compaction round-trip, and directedness/weightedness
//		              conversions
//		• dot/      — DOT export and in-process Graphviz rendering
//		• graphio/  — JSON persistence preserving the exact hole pattern
//
// Why topograph?
//
//   - Identity-preserving – node IDs are identifiers, not positions; every
//     transform tolerates and reproduces ID holes
//   - Counter-exact – edge counts, self-loop counts and edge-ID bounds are
//     validated after every bulk transform
//   - Parallel where it pays – transpose and degree reduction run across a
//     worker pool; everything else stays simple and sequential
//
// Quick ASCII example:
//
//	    0──▶1          1──▶0
//	        │     ⟹        │
//	        ▼              ▼ (Transpose reverses every arc,
//	        2          2   keeping edge IDs and weights)
//
// A topograph binary (cmd/topograph) exposes the transforms over a JSON
// graph format for shell pipelines.
//
//	go get github.com/veremark/topograph
package topograph
