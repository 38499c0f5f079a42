package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns the number of blocks a loop is split into: GOMAXPROCS,
// but never more than one worker per index.
func Workers(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// For runs fn(i) for every i in [0,n), partitioned into contiguous blocks
// across Workers(n) goroutines. It returns after all iterations complete.
// fn must be safe to call concurrently for distinct i and must not assume
// any ordering between indices owned by different blocks.
func For(n int, fn func(i int)) {
	ForBlocks(n, func(_, lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	})
}

// ForBlocks splits [0,n) into Workers(n) contiguous half-open blocks and
// runs fn(block, lo, hi) once per block, concurrently. The block index lets
// callers keep lock-free per-worker accumulators and merge them after the
// call returns.
func ForBlocks(n int, fn func(block, lo, hi int)) {
	if n <= 0 {
		return
	}
	workers := Workers(n)
	if workers == 1 {
		fn(0, 0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for b := 0; b < workers; b++ {
		lo := b * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		block := b
		eg.Go(func() error {
			fn(block, lo, hi)
			return nil
		})
	}
	// The callbacks cannot fail; Wait is purely the join point.
	_ = eg.Wait()
}

// MaxInt computes max over f(i) for i in [0,n) as a commutative-associative
// parallel reduction. Each block keeps a local maximum; the block results
// are combined sequentially after the join. Returns 0 for n <= 0, so an
// empty range reduces to the natural degree-zero answer.
func MaxInt(n int, f func(i int) int) int {
	if n <= 0 {
		return 0
	}
	local := make([]int, Workers(n))
	ForBlocks(n, func(block, lo, hi int) {
		best := 0
		for i := lo; i < hi; i++ {
			if v := f(i); v > best {
				best = v
			}
		}
		local[block] = best
	})

	result := 0
	for _, v := range local {
		if v > result {
			result = v
		}
	}

	return result
}
