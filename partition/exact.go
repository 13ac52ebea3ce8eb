// SPDX-License-Identifier: MIT
package partition

import (
	"context"
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/teamsplit/matrix"
)

// ctxCheckMask: the scan polls ctx whenever mask&ctxCheckMask == 0.
const ctxCheckMask = 1<<16 - 1

// Exact finds the optimal balanced bipartition by exhaustive enumeration.
//
// Every integer mask in [1, 2ⁿ) is a candidate: bit i set places member i in
// Team1, otherwise Team2. Masks whose popcount violates the balance rule are
// skipped. A mask and its complement describe the same unordered partition;
// both are scored. The first mask reaching the maximum quality wins.
//
// With opts.Workers > 1 the range is cut into contiguous chunks scanned
// concurrently; chunk winners are reduced in ascending chunk order with the
// same strict rule, which reproduces the sequential answer bit for bit.
//
// Contracts:
//   - m square, finite; n ≤ MaxExactSize (ErrTooLarge otherwise).
//   - n == 0 yields two empty teams.
//
// Complexity: O(2ⁿ·n²) time, O(n) space per worker.
func Exact(m matrix.Matrix, opts Options) (Result, error) {
	return ExactContext(context.Background(), m, opts)
}

// ExactContext is Exact with cancellation between mask blocks.
func ExactContext(ctx context.Context, m matrix.Matrix, opts Options) (Result, error) {
	f, err := snapshot(m)
	if err != nil {
		return Result{}, err
	}

	return exact(ctx, f, opts.Workers)
}

// scanResult is the winner of one contiguous mask range.
type scanResult struct {
	found   bool
	quality float64
	mask    uint64
}

// exact runs the (possibly parallel) scan and materializes the winner.
func exact(ctx context.Context, f affinity, workers int) (Result, error) {
	if f.n > MaxExactSize {
		return Result{}, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, f.n, MaxExactSize)
	}
	if f.n == 0 {
		return Result{Team1: []int{}, Team2: []int{}, Strategy: StrategyExact}, nil
	}

	total := uint64(1) << f.n
	var (
		best scanResult
		err  error
	)
	if workers <= 1 {
		best, err = scanRange(ctx, f, 1, total)
	} else {
		best, err = scanParallel(ctx, f, total, workers)
	}
	if err != nil {
		return Result{}, err
	}

	t1, t2 := splitMask(f.n, best.mask)

	return Result{Team1: t1, Team2: t2, Quality: best.quality, Strategy: StrategyExact}, nil
}

// scanParallel cuts [1,total) into contiguous chunks, scans them with an
// errgroup, then reduces the chunk winners in ascending order.
func scanParallel(ctx context.Context, f affinity, total uint64, workers int) (scanResult, error) {
	span := total - 1
	if uint64(workers) > span {
		workers = int(span)
	}
	chunk := (span + uint64(workers) - 1) / uint64(workers)

	results := make([]scanResult, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := 1 + uint64(w)*chunk
		hi := min(lo+chunk, total)
		g.Go(func() error {
			r, err := scanRange(gctx, f, lo, hi)
			if err != nil {
				return err
			}
			results[w] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return scanResult{}, err
	}

	var best scanResult
	for _, r := range results {
		if r.found && better(r.quality, best.quality, best.found) {
			best = r
		}
	}

	return best, nil
}

// scanRange evaluates masks lo..hi-1 in ascending order.
func scanRange(ctx context.Context, f affinity, lo, hi uint64) (scanResult, error) {
	small := f.n / 2
	large := f.n - small
	t1 := make([]int, 0, large)
	t2 := make([]int, 0, large)

	best := scanResult{quality: math.Inf(-1)}
	var (
		mask, bit uint64
		pop, i    int
		q         float64
	)
	for mask = lo; mask < hi; mask++ {
		if mask&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return scanResult{}, err
			}
		}
		pop = bits.OnesCount64(mask)
		if pop != small && pop != large {
			continue
		}

		t1, t2 = t1[:0], t2[:0]
		for i, bit = 0, 1; i < f.n; i, bit = i+1, bit<<1 {
			if mask&bit != 0 {
				t1 = append(t1, i)
			} else {
				t2 = append(t2, i)
			}
		}

		q = quality(f, t1, t2)
		if math.IsNaN(q) {
			q = math.Inf(-1)
		}
		if better(q, best.quality, best.found) {
			best = scanResult{found: true, quality: q, mask: mask}
		}
	}

	return best, nil
}

// splitMask lists the members of each side of mask in ascending order.
func splitMask(n int, mask uint64) (t1, t2 []int) {
	t1 = make([]int, 0, n)
	t2 = make([]int, 0, n)
	for i := 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			t1 = append(t1, i)
		} else {
			t2 = append(t2, i)
		}
	}

	return t1, t2
}
