// SPDX-License-Identifier: MIT
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is returned when Options fail validation.
	ErrInvalidOptions = errors.New("partition: invalid options")

	// ErrTooLarge is returned when Exact is asked to enumerate more than
	// MaxExactSize members.
	ErrTooLarge = errors.New("partition: matrix too large for exact search")

	// ErrInvalidTeam is returned by the scoring helpers for out-of-range or
	// duplicated member indices.
	ErrInvalidTeam = errors.New("partition: invalid team")
)

// Strategy names the search that produced a Result.
type Strategy int

const (
	// StrategyExact: exhaustive bitmask enumeration.
	StrategyExact Strategy = iota

	// StrategyHeuristic: seeded random-swap local search.
	StrategyHeuristic
)

// String returns "exact" or "heuristic".
func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyHeuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MarshalText lets encoders (JSON, YAML, TOML) print the name.
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts the names produced by MarshalText.
func (s *Strategy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "exact":
		*s = StrategyExact
	case "heuristic":
		*s = StrategyHeuristic
	default:
		return fmt.Errorf("partition: unknown strategy %q", text)
	}

	return nil
}

// Result holds the outcome of a partition run.
type Result struct {
	// Team1 and Team2 are disjoint, cover [0,n) and satisfy the balance rule.
	// Exact lists members ascending; Heuristic keeps the order produced by
	// its swaps.
	Team1 []int `json:"team1" yaml:"team1" toml:"team1"`
	Team2 []int `json:"team2" yaml:"team2" toml:"team2"`

	// Quality is the objective value of (Team1, Team2); 0 for n == 0.
	Quality float64 `json:"quality" yaml:"quality" toml:"quality"`

	// Strategy reports which search produced the result.
	Strategy Strategy `json:"strategy" yaml:"strategy" toml:"strategy"`
}
