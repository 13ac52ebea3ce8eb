// SPDX-License-Identifier: MIT

// Package csvmatrix turns delimited text into a validated square affinity
// matrix.
//
// 🚀 What does it do?
//
//	Parse runs a fixed five-stage pipeline over a raw text blob:
//	  1. split lines on the line separator, trim, drop blank lines
//	  2. split every line on the field delimiter, trim every field
//	  3. peel off the header row (optional)
//	  4. convert every remaining field with strconv.ParseFloat
//	  5. require rows == columns
//
//	The first failing stage short-circuits into a ParsedMatrix whose Error
//	field carries one of a fixed set of human-readable messages. Those
//	messages are part of the public contract (see the Msg* constants).
//
// ✨ Key features:
//   - pure and deterministic: no I/O, no sorting, field order preserved
//   - locale independent numbers ("1.5", "-2e3"); NaN and ±Inf are rejected
//   - any string works as delimiter or line separator
//   - Format writes a matrix back with the same options, shortest
//     round-trip float text, so Parse(Format(x)) == x
//
// ⚙️ Usage:
//
//	res := csvmatrix.Parse("a,b\n1,2\n3,4", csvmatrix.DefaultOptions())
//	if err := res.Err(); err != nil {
//	    // errors.Is(err, csvmatrix.ErrNotSquare) ...; err.Error() is the UI message
//	}
//	m, _ := res.Matrix() // *matrix.Dense for the partition engine
//
// Non-goals: streaming very large files. ParseReader reads everything into
// memory first.
package csvmatrix
