// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the teamsplit CLI.
//
// It wraps log/slog: a level string selects the threshold, a format string
// selects the JSON or text handler, and child loggers carry the run id and
// the current phase ("parse", "partition", "render") on every record.
// Library packages never construct loggers themselves; they accept the
// *slog.Logger built here through their Options.
package logging
