// SPDX-License-Identifier: MIT
package partition_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/teamsplit/matrix"
	"github.com/katalvlaran/teamsplit/partition"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// randomRows returns a symmetric n×n matrix of small integers (ties are likely).
func randomRows(n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := float64(r.Intn(10))
			rows[i][j] = v
			rows[j][i] = v
		}
	}
	return rows
}

// requireCover asserts disjointness, full coverage and the balance rule.
func requireCover(t *testing.T, n int, res partition.Result) {
	t.Helper()
	require.True(t, partition.Admissible(n, len(res.Team1), len(res.Team2)),
		"sizes %d/%d not admissible for n=%d", len(res.Team1), len(res.Team2), n)

	all := append(slices.Clone(res.Team1), res.Team2...)
	slices.Sort(all)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, all)
}

// bruteBest scores every balanced split independently of the engine.
func bruteBest(rows [][]float64) float64 {
	n := len(rows)
	mean := func(team []int) float64 {
		if len(team) == 0 {
			return 0
		}
		var s float64
		for _, i := range team {
			for _, j := range team {
				s += rows[i][j]
			}
		}
		return s / float64(len(team)*len(team))
	}

	best := math.Inf(-1)
	for mask := 1; mask < 1<<n; mask++ {
		var t1, t2 []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				t1 = append(t1, i)
			} else {
				t2 = append(t2, i)
			}
		}
		if !partition.Admissible(n, len(t1), len(t2)) {
			continue
		}
		best = math.Max(best, (mean(t1)+mean(t2))/2)
	}
	return best
}
