// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/teamsplit/csvmatrix"
	"github.com/katalvlaran/teamsplit/internal/logging"
)

// stdinName is both the "-" argument and the source label for piped input.
const stdinName = "-"

// errNoInput is returned when no file is named and stdin is a terminal.
var errNoInput = errors.New("no input: pass a matrix file or pipe one on stdin")

// loadMatrix reads the named source (file, "-" or piped stdin) and parses it
// with the configured input options.
func (a *app) loadMatrix(args []string) (csvmatrix.ParsedMatrix, string, error) {
	source := stdinName
	if len(args) > 0 {
		source = args[0]
	}

	var (
		pm  csvmatrix.ParsedMatrix
		err error
	)
	if source == stdinName {
		if len(args) == 0 && a.deps.StdinIsTerminal() {
			return pm, source, errNoInput
		}
		pm, err = csvmatrix.ParseReader(a.deps.Stdin, a.cfg.CSVOptions())
		if err != nil {
			return pm, source, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		raw, err := afero.ReadFile(a.deps.FS, source)
		if err != nil {
			return pm, source, fmt.Errorf("read %s: %w", source, err)
		}
		pm = csvmatrix.Parse(string(raw), a.cfg.CSVOptions())
	}

	logging.WithPhase(a.log, "parse").Debug("input parsed",
		"source", source,
		"ok", pm.OK(),
		"rows", pm.RowCount,
	)

	return pm, source, pm.Err()
}

// addInputFlags registers the format flags shared by split and validate.
func addInputFlags(cmd *cobra.Command) {
	in := csvmatrix.DefaultOptions()
	cmd.Flags().Bool("header", in.HasHeader, "treat the first row as member names (--header=false to disable)")
	cmd.Flags().String("delimiter", in.Delimiter, `field delimiter (",", ";", "space", "\n", ...)`)
	cmd.Flags().String("line-separator", `\n`, `row separator ("\n", ";", ",", "space", ...)`)
}
