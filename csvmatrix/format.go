// SPDX-License-Identifier: MIT
package csvmatrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Format serializes a matrix with the layout described by opts.
//
// Numbers use the shortest representation that round-trips exactly
// (strconv 'g' with precision -1), so Parse(Format(x)) reproduces x and
// formatting the re-parsed data again yields the same text.
//
// Contracts:
//   - opts.Delimiter and opts.LineSeparator must be non-empty and distinct.
//   - header is written only when opts.HasHeader is true; its length must then
//     match the column count, and no name may contain a separator.
//   - data must be rectangular.
//
// Errors: ErrInvalidFormat (wrapped with context).
func Format(header []string, data [][]float64, opts Options) (string, error) {
	if opts.Delimiter == "" || opts.LineSeparator == "" {
		return "", fmt.Errorf("Format: empty delimiter or line separator: %w", ErrInvalidFormat)
	}
	// Identical separators cannot be told apart by Parse.
	if opts.Delimiter == opts.LineSeparator {
		return "", fmt.Errorf("Format: delimiter equals line separator %q: %w", opts.Delimiter, ErrInvalidFormat)
	}

	var cols int
	if len(data) > 0 {
		cols = len(data[0])
	}

	lines := make([]string, 0, len(data)+1)
	if opts.HasHeader {
		if len(header) != cols {
			return "", fmt.Errorf("Format: header has %d names, want %d: %w", len(header), cols, ErrInvalidFormat)
		}
		for _, name := range header {
			if strings.Contains(name, opts.Delimiter) || strings.Contains(name, opts.LineSeparator) {
				return "", fmt.Errorf("Format: header name %q contains a separator: %w", name, ErrInvalidFormat)
			}
		}
		lines = append(lines, strings.Join(header, opts.Delimiter))
	}

	fields := make([]string, cols)
	for i, row := range data {
		if len(row) != cols {
			return "", fmt.Errorf("Format: row %d has %d values, want %d: %w", i, len(row), cols, ErrInvalidFormat)
		}
		for j, v := range row {
			fields[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		lines = append(lines, strings.Join(fields, opts.Delimiter))
	}

	return strings.Join(lines, opts.LineSeparator), nil
}
