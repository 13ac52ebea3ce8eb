// SPDX-License-Identifier: MIT

// Package partition - run configuration.
//
// The dispatch threshold and the iteration budget are empirical constants;
// they are exposed here so callers can tune them, while the defaults keep
// results comparable with earlier runs.
package partition

import (
	"fmt"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultExactThreshold is the largest n solved by exhaustive search.
	DefaultExactThreshold = 23

	// DefaultIterations is the heuristic swap budget.
	DefaultIterations = 5000

	// DefaultSeed seeds the heuristic generator; Seed==0 also maps here.
	DefaultSeed int64 = 42

	// DefaultWorkers runs the exact scan on the calling goroutine.
	DefaultWorkers = 1

	// MaxExactSize caps ExactThreshold: 2³⁰ masks is already far past any
	// reasonable wall-clock budget.
	MaxExactSize = 30
)

// Options configures Compute, Exact and Heuristic.
type Options struct {
	// ExactThreshold: n ≤ ExactThreshold → Exact, otherwise Heuristic.
	// Range [0, MaxExactSize].
	ExactThreshold int

	// Iterations is the number of heuristic iterations (≥ 1).
	Iterations int

	// Seed for the heuristic generator. 0 ⇒ DefaultSeed.
	Seed int64

	// Workers splits the exact mask range across goroutines.
	// 0 or 1 ⇒ sequential. Results never depend on this value.
	Workers int

	// Logger receives Debug records for dispatch and completion.
	// nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		ExactThreshold: DefaultExactThreshold,
		Iterations:     DefaultIterations,
		Seed:           DefaultSeed,
		Workers:        DefaultWorkers,
	}
}

// Validate checks ranges; errors wrap ErrInvalidOptions.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.ExactThreshold < 0 || o.ExactThreshold > MaxExactSize {
		return fmt.Errorf("%w: exact threshold %d outside [0,%d]", ErrInvalidOptions, o.ExactThreshold, MaxExactSize)
	}
	if o.Iterations < 1 {
		return fmt.Errorf("%w: iterations %d, want ≥ 1", ErrInvalidOptions, o.Iterations)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers %d, want ≥ 0", ErrInvalidOptions, o.Workers)
	}

	return nil
}

// logger returns a usable logger; nil-safe.
func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
