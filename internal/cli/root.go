// SPDX-License-Identifier: MIT

// Package cli implements the teamsplit command line: reading a matrix file,
// splitting its members into two teams and printing the result.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/katalvlaran/teamsplit/internal/config"
	"github.com/katalvlaran/teamsplit/internal/logging"
)

// Deps are the process resources the commands touch. Tests swap them for
// in-memory versions.
type Deps struct {
	// FS resolves matrix and config file paths.
	FS afero.Fs
	// Stdin is read when the file argument is "-" or absent.
	Stdin io.Reader
	// StdinIsTerminal reports whether Stdin is an interactive terminal.
	StdinIsTerminal func() bool
	// Version is printed by the version command.
	Version string
}

// DefaultDeps returns the real filesystem and process stdin.
func DefaultDeps(version string) Deps {
	return Deps{
		FS:    afero.NewOsFs(),
		Stdin: os.Stdin,
		StdinIsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		Version: version,
	}
}

// app is the per-invocation state shared by the commands.
type app struct {
	deps  Deps
	v     *viper.Viper
	cfg   *config.Config
	log   *slog.Logger
	runID string
}

// flagKeys maps command flags to config keys. Binding happens for the
// command actually executed, so split and validate can both own --header.
var flagKeys = map[string]string{
	"header":         "input.has_header",
	"delimiter":      "input.delimiter",
	"line-separator": "input.line_separator",
	"output":         "output.format",
	"threshold":      "partition.exact_threshold",
	"iterations":     "partition.iterations",
	"seed":           "partition.seed",
	"workers":        "partition.workers",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

// NewRootCommand builds the command tree around deps.
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.StdinIsTerminal == nil {
		deps.StdinIsTerminal = func() bool { return false }
	}
	a := &app{deps: deps, v: config.NewViper(), log: logging.NopLogger()}

	root := &cobra.Command{
		Use:   "teamsplit",
		Short: "Split the members of an affinity matrix into two balanced teams",
		Long: `teamsplit reads a square rating matrix from a delimited text file, where
entry [i][j] is member i's rating of member j, and splits the members into
two teams of equal (or near-equal) size maximizing mean intra-team rating.

Up to 23 members are solved exactly; larger matrices use a seeded heuristic.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/teamsplit/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "log format: text, json")

	root.AddCommand(
		newSplitCommand(a),
		newValidateCommand(a),
		newVersionCommand(a),
	)

	return root
}

// Execute runs the CLI against the real process and returns the exit code.
func Execute(version string) int {
	if err := NewRootCommand(DefaultDeps(version)).Execute(); err != nil {
		return 1
	}

	return 0
}

// setup binds flags, reads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	if err := a.readConfigFile(cmd); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return config.ValidationErrors(errs)
	}
	a.cfg = cfg

	a.runID = uuid.NewString()
	a.log = logging.WithRun(
		logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format),
		a.runID,
	)
	a.log.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "command", cmd.Name())

	return nil
}

// readConfigFile loads --config, or config.yaml from the usual directories.
// A missing default file is not an error; a missing explicit one is.
func (a *app) readConfigFile(cmd *cobra.Command) error {
	a.v.SetFs(a.deps.FS)

	explicit, _ := cmd.Flags().GetString("config")
	if explicit != "" {
		a.v.SetConfigFile(explicit)
	} else {
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(config.ConfigDir())
		a.v.AddConfigPath(".")
	}

	err := a.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || (explicit == "" && errors.As(err, &notFound)) {
		return nil
	}

	return fmt.Errorf("read config: %w", err)
}
