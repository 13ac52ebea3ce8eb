// SPDX-License-Identifier: MIT

// Package matrix provides the square numeric matrix shared by ingestion and
// partitioning.
//
// The package offers:
//
//   - Matrix, a minimal bounds-checked interface (Rows/Cols/At/Set/Clone).
//   - Dense, a row-major implementation backed by one flat slice.
//   - FromRows / ToRows converters between [][]float64 and Dense.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) returning
//     package sentinels, so callers match with errors.Is.
//
// Numeric policy: Dense rejects NaN and ±Inf on Set and on ingestion through
// FromRows. An affinity matrix is therefore always finite once built.
//
// A 0×0 matrix is legal when produced by FromRows; it models an empty member
// list and lets downstream algorithms return an empty result instead of
// failing.
package matrix
