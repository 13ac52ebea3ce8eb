// SPDX-License-Identifier: MIT

// Package partition - objective function and balance rule.
//
// The engine snapshots its input once into an affinity (flat row-major copy),
// so hot loops index a slice instead of calling Matrix.At, and the caller's
// matrix is never touched again.
package partition

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/teamsplit/matrix"
)

// affinity is a validated, immutable n×n snapshot.
type affinity struct {
	n int
	a []float64 // row-major, len == n*n
}

// at reads cell (i,j) without bounds checks beyond the slice's own.
func (f affinity) at(i, j int) float64 { return f.a[i*f.n+j] }

// snapshot validates m (non-nil, square, finite) and copies its values.
//
// Complexity: O(n²).
func snapshot(m matrix.Matrix) (affinity, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return affinity{}, err
	}
	n := m.Rows()
	if d, ok := m.(*matrix.Dense); ok {
		// Dense enforces the finite policy on every write.
		return affinity{n: n, a: d.RowMajor()}, nil
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return affinity{}, err
	}

	a := make([]float64, n*n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if a[i*n+j], err = m.At(i, j); err != nil {
				return affinity{}, err
			}
		}
	}

	return affinity{n: n, a: a}, nil
}

// teamMean averages f over every ordered pair of members, diagonal included.
// Summation follows the order of team; callers pass ascending members so the
// floating-point result does not depend on how a team was assembled.
func teamMean(f affinity, team []int) float64 {
	k := len(team)
	if k == 0 {
		return 0
	}

	var sum float64
	for _, i := range team {
		row := f.a[i*f.n : (i+1)*f.n]
		for _, j := range team {
			sum += row[j]
		}
	}

	return sum / float64(k*k)
}

// quality is the objective for an (ascending) pair of teams.
func quality(f affinity, t1, t2 []int) float64 {
	return (teamMean(f, t1) + teamMean(f, t2)) / 2
}

// better is the strict update rule shared by both strategies.
// The first candidate is always taken so a result exists even when every
// quality overflows; NaN ranks like -Inf.
func better(q, best float64, found bool) bool {
	if math.IsNaN(q) {
		q = math.Inf(-1)
	}

	return !found || q > best
}

// Admissible reports whether team sizes s1, s2 satisfy the balance rule for n
// members: even n → n/2 each; odd n → {⌊n/2⌋, ⌈n/2⌉} in either order.
func Admissible(n, s1, s2 int) bool {
	if s1 < 0 || s2 < 0 || s1+s2 != n {
		return false
	}
	lo := n / 2
	hi := n - lo

	return (s1 == lo && s2 == hi) || (s1 == hi && s2 == lo)
}

// TeamScore returns the mean of m[i][j] over all ordered pairs of members of
// team (diagonal included); an empty team scores 0.
//
// Errors: matrix validation errors, ErrInvalidTeam for out-of-range or
// duplicate members.
func TeamScore(m matrix.Matrix, team []int) (float64, error) {
	f, err := snapshot(m)
	if err != nil {
		return 0, err
	}
	sorted, err := checkTeam(f.n, team, nil)
	if err != nil {
		return 0, err
	}

	return teamMean(f, sorted), nil
}

// Quality returns (TeamScore(t1) + TeamScore(t2)) / 2.
// The teams must be disjoint; balance is not required here (see Admissible).
func Quality(m matrix.Matrix, t1, t2 []int) (float64, error) {
	f, err := snapshot(m)
	if err != nil {
		return 0, err
	}
	seen := make([]bool, f.n)
	s1, err := checkTeam(f.n, t1, seen)
	if err != nil {
		return 0, err
	}
	s2, err := checkTeam(f.n, t2, seen)
	if err != nil {
		return 0, err
	}

	return quality(f, s1, s2), nil
}

// checkTeam returns an ascending copy of team after range/duplicate checks.
// seen, when non-nil, is shared across calls to detect overlap between teams.
func checkTeam(n int, team []int, seen []bool) ([]int, error) {
	if seen == nil {
		seen = make([]bool, n)
	}
	for _, v := range team {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%w: member %d outside [0,%d)", ErrInvalidTeam, v, n)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: member %d listed twice", ErrInvalidTeam, v)
		}
		seen[v] = true
	}
	sorted := slices.Clone(team)
	slices.Sort(sorted)

	return sorted, nil
}
