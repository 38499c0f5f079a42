package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/veremark/topograph/parallel"
)

// TestFor_CoversEveryIndexOnce runs the loop over a range large enough to
// span several blocks and checks exactly-once semantics.
func TestFor_CoversEveryIndexOnce(t *testing.T) {
	const n = 10_000
	hits := make([]int32, n)
	parallel.For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times; want 1", i, h)
		}
	}
}

// TestFor_EmptyAndTiny pins the degenerate ranges.
func TestFor_EmptyAndTiny(t *testing.T) {
	parallel.For(0, func(int) { t.Fatal("callback on empty range") })
	parallel.For(-3, func(int) { t.Fatal("callback on negative range") })

	var count int32
	parallel.For(1, func(int) { atomic.AddInt32(&count, 1) })
	if count != 1 {
		t.Fatalf("count = %d; want 1", count)
	}
}

// TestForBlocks_PartitionIsDisjointAndComplete checks the contiguous
// block split: no gaps, no overlaps, block indices within Workers(n).
func TestForBlocks_PartitionIsDisjointAndComplete(t *testing.T) {
	const n = 1234
	owner := make([]int32, n)
	workers := parallel.Workers(n)
	parallel.ForBlocks(n, func(block, lo, hi int) {
		if block < 0 || block >= workers {
			t.Errorf("block index %d outside [0,%d)", block, workers)
		}
		if lo >= hi {
			t.Errorf("empty block [%d,%d)", lo, hi)
		}
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&owner[i], 1)
		}
	})
	for i, c := range owner {
		if c != 1 {
			t.Fatalf("index %d owned by %d blocks; want exactly 1", i, c)
		}
	}
}

// TestMaxInt checks the associative max reduction, empty range included.
func TestMaxInt(t *testing.T) {
	cases := []struct {
		name string
		n    int
		f    func(i int) int
		want int
	}{
		{"Empty", 0, func(int) int { return 99 }, 0},
		{"Identity", 1000, func(i int) int { return i }, 999},
		{"Constant", 64, func(int) int { return 7 }, 7},
		{"PeakMidRange", 501, func(i int) int { return -i*i + 500*i }, 62500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parallel.MaxInt(tc.n, tc.f); got != tc.want {
				t.Fatalf("MaxInt = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestWorkers pins the pool-size clamps.
func TestWorkers(t *testing.T) {
	if w := parallel.Workers(1); w != 1 {
		t.Fatalf("Workers(1) = %d; want 1", w)
	}
	if w := parallel.Workers(0); w != 1 {
		t.Fatalf("Workers(0) = %d; want 1", w)
	}
	if w := parallel.Workers(1 << 20); w < 1 {
		t.Fatalf("Workers = %d; want >= 1", w)
	}
}
