// SPDX-License-Identifier: MIT
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/teamsplit/csvmatrix"
	"github.com/katalvlaran/teamsplit/partition"
)

// Report is the document printed by split.
type Report struct {
	Source     string             `json:"source" yaml:"source" toml:"source"`
	Members    int                `json:"members" yaml:"members" toml:"members"`
	Strategy   partition.Strategy `json:"strategy" yaml:"strategy" toml:"strategy"`
	Quality    float64            `json:"quality" yaml:"quality" toml:"quality"`
	Team1      []int              `json:"team1" yaml:"team1" toml:"team1"`
	Team2      []int              `json:"team2" yaml:"team2" toml:"team2"`
	Team1Names []string           `json:"team1Names,omitempty" yaml:"team1Names,omitempty" toml:"team1Names,omitempty"`
	Team2Names []string           `json:"team2Names,omitempty" yaml:"team2Names,omitempty" toml:"team2Names,omitempty"`
}

// newReport assembles the printable result. Member names come from the
// header row when it names every column.
func newReport(source string, pm csvmatrix.ParsedMatrix, res partition.Result) Report {
	r := Report{
		Source:   source,
		Members:  pm.RowCount,
		Strategy: res.Strategy,
		Quality:  res.Quality,
		Team1:    res.Team1,
		Team2:    res.Team2,
	}
	if len(pm.Header) == pm.RowCount && pm.RowCount > 0 {
		r.Team1Names = names(pm.Header, res.Team1)
		r.Team2Names = names(pm.Header, res.Team2)
	}

	return r
}

func names(header []string, team []int) []string {
	out := make([]string, len(team))
	for i, m := range team {
		out[i] = header[m]
	}

	return out
}

// writeReport encodes r in format (text, json, yaml or toml).
func writeReport(w io.Writer, format string, r Report) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	case "text", "":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText prints a short labelled summary.
func writeText(w io.Writer, r Report) error {
	st := newStyles(w)

	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(st.label.Render(label))
		sb.WriteString(strings.Repeat(" ", max(1, 9-len(label))))
		sb.WriteString(value)
		sb.WriteByte('\n')
	}

	line("Source:", r.Source)
	line("Members:", fmt.Sprintf("%d (%s)", r.Members, r.Strategy))
	line("Team 1:", teamText(r.Team1, r.Team1Names))
	line("Team 2:", teamText(r.Team2, r.Team2Names))
	line("Quality:", st.value.Render(strconv.FormatFloat(r.Quality, 'g', -1, 64)))

	_, err := io.WriteString(w, sb.String())
	return err
}

func teamText(team []int, names []string) string {
	if len(team) == 0 {
		return "(empty)"
	}
	ids := make([]string, len(team))
	for i, m := range team {
		ids[i] = strconv.Itoa(m)
	}
	s := strings.Join(ids, ", ")
	if len(names) > 0 {
		s += " (" + strings.Join(names, ", ") + ")"
	}

	return s
}

// styles are bound to the writer so colors only appear on a terminal.
type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
	ok    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	re := lipgloss.NewRenderer(w)

	return styles{
		label: re.NewStyle().Bold(true),
		value: re.NewStyle().Foreground(lipgloss.Color("10")),
		warn:  re.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		ok:    re.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	}
}
