// SPDX-License-Identifier: MIT
package partition

import (
	"context"
	"time"

	"github.com/katalvlaran/teamsplit/matrix"
)

// StrategyFor reports which search Compute would run for n members.
// Callers use it to warn before a heuristic (approximate) run.
func StrategyFor(n int, opts Options) Strategy {
	if n <= opts.ExactThreshold {
		return StrategyExact
	}

	return StrategyHeuristic
}

// Compute is the single entry point of the engine.
//
// It validates opts, snapshots m once, and dispatches:
//   - n ≤ opts.ExactThreshold → exact enumeration (optimal);
//   - otherwise               → seeded heuristic (approximate).
//
// The result always satisfies: Team1 ∪ Team2 = [0,n), disjoint, balanced.
// n == 0 yields two empty teams.
//
// Errors: ErrInvalidOptions; matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrNaNInf from input validation.
func Compute(m matrix.Matrix, opts Options) (Result, error) {
	return ComputeContext(context.Background(), m, opts)
}

// ComputeContext is Compute with cancellation. A cancelled ctx aborts the
// search and returns ctx.Err(); no partial result is reported.
func ComputeContext(ctx context.Context, m matrix.Matrix, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	f, err := snapshot(m)
	if err != nil {
		return Result{}, err
	}

	log := opts.logger()
	strategy := StrategyFor(f.n, opts)
	log.Debug("partition start", "n", f.n, "strategy", strategy.String())
	start := time.Now()

	var res Result
	switch strategy {
	case StrategyExact:
		res, err = exact(ctx, f, opts.Workers)
	default:
		res, err = heuristic(ctx, f, opts.Iterations, rngFromSeed(opts.Seed))
	}
	if err != nil {
		log.Debug("partition aborted", "error", err)
		return Result{}, err
	}

	log.Debug("partition done",
		"strategy", res.Strategy.String(),
		"quality", res.Quality,
		"elapsed", time.Since(start),
	)

	return res, nil
}

// ComputeRows is a convenience wrapper for nested-slice input, e.g. the Data
// of a csvmatrix.ParsedMatrix.
func ComputeRows(rows [][]float64, opts Options) (Result, error) {
	m, err := matrix.FromRows(rows)
	if err != nil {
		return Result{}, err
	}

	return Compute(m, opts)
}
