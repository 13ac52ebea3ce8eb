// SPDX-License-Identifier: MIT
package partition_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/teamsplit/partition"
	"github.com/stretchr/testify/require"
)

// TestHeuristic_Deterministic: same matrix and seed ⇒ identical result.
func TestHeuristic_Deterministic(t *testing.T) {
	m := mustDense(t, randomRows(30, 7))
	opts := partition.DefaultOptions()

	first, err := partition.Heuristic(m, opts)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := partition.Heuristic(m, opts)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}

	// Seed 0 means the default seed.
	opts.Seed = 0
	zero, err := partition.Heuristic(m, opts)
	require.NoError(t, err)
	require.Equal(t, first, zero)
}

// TestHeuristic_CoverAndBalance holds for every size, odd and even.
func TestHeuristic_CoverAndBalance(t *testing.T) {
	for n := 0; n <= 15; n++ {
		res, err := partition.ComputeRows(randomRows(n, int64(n)+100), partition.Options{
			ExactThreshold: 0,
			Iterations:     200,
			Seed:           9,
		})
		require.NoError(t, err)
		if n > 0 {
			require.Equal(t, partition.StrategyHeuristic, res.Strategy)
		}
		requireCover(t, n, res)
	}
}

// TestHeuristic_QualityBounds: the reported quality is the real objective of
// the returned teams; it never beats the optimum and never loses to the
// parity split it starts from.
func TestHeuristic_QualityBounds(t *testing.T) {
	for n := 2; n <= 10; n++ {
		rows := randomRows(n, int64(n))
		m := mustDense(t, rows)

		res, err := partition.Heuristic(m, partition.DefaultOptions())
		require.NoError(t, err)

		q, err := partition.Quality(m, res.Team1, res.Team2)
		require.NoError(t, err)
		require.Equal(t, q, res.Quality)

		require.LessOrEqual(t, res.Quality, bruteBest(rows)+1e-12)

		var even, odd []int
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				even = append(even, i)
			} else {
				odd = append(odd, i)
			}
		}
		start, err := partition.Quality(m, even, odd)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Quality, start)
	}
}

// TestHeuristic_SingleIteration returns the initial parity split untouched.
func TestHeuristic_SingleIteration(t *testing.T) {
	m := mustDense(t, randomRows(7, 3))
	opts := partition.DefaultOptions()
	opts.Iterations = 1

	res, err := partition.Heuristic(m, opts)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 6}, res.Team1)
	require.Equal(t, []int{1, 3, 5}, res.Team2)
}

func TestHeuristic_SingleMember(t *testing.T) {
	res, err := partition.Heuristic(mustDense(t, [][]float64{{4}}), partition.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Team1)
	require.Equal(t, []int{}, res.Team2)
	require.Equal(t, 2.0, res.Quality)
}

func TestHeuristic_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := partition.HeuristicContext(ctx, mustDense(t, randomRows(40, 1)), partition.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}
