// SPDX-License-Identifier: MIT
package partition

import (
	"context"
	"math"
	"math/rand"
	"slices"

	"github.com/katalvlaran/teamsplit/matrix"
)

// ctxCheckIter: the heuristic polls ctx every ctxCheckIter iterations.
const ctxCheckIter = 1024

// Heuristic approximates the best balanced bipartition by random swaps.
//
// Implementation:
//   - Stage 1: initial split by parity, even members → Team1, odd → Team2.
//   - Stage 2: for opts.Iterations rounds score the current split, keep it if
//     strictly better than the best so far, then swap Team1[r.Intn(|T1|)] with
//     Team2[r.Intn(|T2|)] (Team1 index drawn first).
//   - Stage 3: return the best split observed, in the member order held at
//     that iteration.
//
// Swaps are unconditional; there is no acceptance criterion. Every swap
// exchanges one member for one member, so balance is preserved throughout.
//
// Determinism: the generator is built from opts.Seed (0 ⇒ DefaultSeed) on
// every call, so identical inputs give identical results.
//
// Complexity: O(iter·n²) time, O(n) space.
func Heuristic(m matrix.Matrix, opts Options) (Result, error) {
	return HeuristicContext(context.Background(), m, opts)
}

// HeuristicContext is Heuristic with cancellation every ctxCheckIter rounds.
func HeuristicContext(ctx context.Context, m matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	f, err := snapshot(m)
	if err != nil {
		return Result{}, err
	}

	return heuristic(ctx, f, opts.Iterations, rngFromSeed(opts.Seed))
}

// heuristic runs the swap loop on a validated snapshot with the supplied rng.
func heuristic(ctx context.Context, f affinity, iters int, r *rand.Rand) (Result, error) {
	t1 := make([]int, 0, f.n-f.n/2)
	t2 := make([]int, 0, f.n-f.n/2)
	for i := 0; i < f.n; i++ {
		if i%2 == 0 {
			t1 = append(t1, i)
		} else {
			t2 = append(t2, i)
		}
	}

	// Scoring runs on sorted scratch copies so summation order stays
	// ascending whatever order the swaps left the teams in.
	s1 := make([]int, len(t1))
	s2 := make([]int, len(t2))

	var (
		best1, best2 []int
		bestQ        = math.Inf(-1)
		found        bool
		it, a, b     int
		q            float64
	)
	for it = 0; it < iters; it++ {
		if it%ctxCheckIter == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		copy(s1, t1)
		copy(s2, t2)
		slices.Sort(s1)
		slices.Sort(s2)
		q = quality(f, s1, s2)
		if math.IsNaN(q) {
			q = math.Inf(-1)
		}
		if better(q, bestQ, found) {
			bestQ, found = q, true
			best1 = append(best1[:0], t1...)
			best2 = append(best2[:0], t2...)
		}

		if len(t1) == 0 || len(t2) == 0 {
			continue
		}
		a = r.Intn(len(t1))
		b = r.Intn(len(t2))
		t1[a], t2[b] = t2[b], t1[a]
	}

	if best1 == nil {
		best1 = []int{}
	}
	if best2 == nil {
		best2 = []int{}
	}
	if f.n == 0 {
		bestQ = 0
	}

	return Result{Team1: best1, Team2: best2, Quality: bestQ, Strategy: StrategyHeuristic}, nil
}
