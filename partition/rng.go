// SPDX-License-Identifier: MIT

// Package partition - RNG utilities for the heuristic.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws on every platform.
//   - Encapsulation: one factory; no time-based or process-wide sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every Heuristic call builds its own.
package partition

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}
