// SPDX-License-Identifier: MIT

// Package teamsplit turns a rating matrix into two balanced teams.
//
// 🚀 What is teamsplit?
//
//	A small toolkit that reads a square matrix of member-to-member ratings
//	from delimited text and splits the members into two teams of equal (or
//	near-equal) size, maximizing the mean rating inside each team:
//		• Ingestion: header flag, any field delimiter / line separator,
//		  fixed human-readable error messages
//		• Exact search: every bipartition by bitmask, optionally in parallel
//		• Heuristic search: seeded random swaps for larger matrices
//		• CLI: text, JSON, YAML or TOML reports
//
// ✨ Guarantees
//
//   - Deterministic - same input and seed, same teams, regardless of workers
//   - Balanced - sizes differ by at most one
//   - Read-only - the engine never mutates the caller's matrix
//
// Layout:
//
//	matrix/     Dense storage, validators, nested-slice converters
//	csvmatrix/  text → ParsedMatrix pipeline and the inverse Format
//	partition/  scoring, Exact, Heuristic and the Compute dispatcher
//	internal/   command tree, configuration, logging
//	cmd/        the teamsplit binary
//
// Quick start:
//
//	pm := csvmatrix.Parse(text, csvmatrix.DefaultOptions())
//	if !pm.OK() {
//		return errors.New(pm.Error)
//	}
//	res, err := partition.ComputeRows(pm.Data, partition.DefaultOptions())
package teamsplit
