// Package parallel provides the synchronous fork-join loops used by the
// topograph transforms: split an index range [0,n) into one contiguous
// block per worker, run the blocks concurrently, and return only when every
// block has finished.
//
// The model is deliberately small:
//
//   - No cancellation, no long-lived tasks — every call blocks until done.
//   - No cross-iteration ordering guarantees — callbacks must be
//     order-independent (associative reductions, disjoint per-index state).
//   - Per-worker state is supported through ForBlocks, which hands each
//     callback its block index; callers keep one accumulator per block and
//     combine them sequentially after the join, so the hot loop needs no
//     locking at all.
//
// Goroutine management sits on golang.org/x/sync/errgroup; the worker count
// follows GOMAXPROCS.
package parallel
