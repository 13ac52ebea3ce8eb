// SPDX-License-Identifier: MIT

// Package partition splits the members of a square affinity matrix into two
// balanced teams that maximize mean intra-team affinity.
//
// It includes two strategies on a square matrix (matrix.Matrix):
//
//   - Exact: enumerates every bipartition as a bitmask 1..2ⁿ-1, O(2ⁿ·n²).
//     Optional parallel scan over contiguous mask ranges (Options.Workers);
//     the result is identical to the sequential scan.
//   - Heuristic: seeded random member swaps for a fixed iteration budget,
//     keeping the best partition seen, O(iter·n²).
//
// Compute dispatches between them: n ≤ Options.ExactThreshold (default 23)
// runs Exact, larger matrices run Heuristic.
//
// Balance rule: even n → both teams hold n/2 members; odd n → sizes
// {⌊n/2⌋, ⌈n/2⌉}, either team may hold the larger half.
//
// Objective: Quality = (TeamScore(team1) + TeamScore(team2)) / 2, where
// TeamScore is the mean of m[i][j] over all ordered pairs of members,
// diagonal included; an empty team scores 0.
//
// Tie-break: the first candidate (ascending mask / iteration index) reaching
// the maximum wins; later ties never replace it.
//
// Determinism: no global state. Heuristic owns a math/rand generator seeded
// from Options.Seed (default 42) on every call.
package partition
