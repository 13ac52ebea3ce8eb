// SPDX-License-Identifier: MIT

// Package csvmatrix - the ingestion pipeline.
//
// Each stage is a small pure helper; Parse wires them in order and stops at
// the first failure. No stage sorts, dedups or reorders anything.
package csvmatrix

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse validates text and converts it into a square numeric matrix.
//
// Implementation:
//   - Stage 1: splitLines; nothing left → MsgEmpty.
//   - Stage 2: splitRows; nothing left → MsgInvalidFormat.
//   - Stage 3: splitHeader; header without data rows → MsgInvalidFormat.
//   - Stage 4: parseRows; first bad field → MsgInvalidNumberPrefix + field.
//   - Stage 5: isSquare; otherwise → MsgNotSquare.
//
// Determinism: identical input always yields an identical result.
// Complexity: O(len(text)).
func Parse(text string, opts Options) ParsedMatrix {
	lines := splitLines(text, opts.LineSeparator)
	if len(lines) == 0 {
		return errorResult(ErrEmptyInput, "", MsgEmpty)
	}

	rows := splitRows(lines, opts.Delimiter)
	if len(rows) == 0 {
		return errorResult(ErrInvalidFormat, "", MsgInvalidFormat)
	}

	header, dataRows := splitHeader(rows, opts.HasHeader)
	if len(dataRows) == 0 {
		// Header-only documents would otherwise pass as an empty "valid" matrix.
		return errorResult(ErrInvalidFormat, "", MsgInvalidFormat)
	}

	data, bad, ok := parseRows(dataRows)
	if !ok {
		return errorResult(ErrInvalidNumber, bad, MsgInvalidNumberPrefix+bad)
	}

	if !isSquare(data) {
		return errorResult(ErrNotSquare, "", MsgNotSquare)
	}

	return ParsedMatrix{
		Header:      header,
		Data:        data,
		RowCount:    len(data),
		ColumnCount: len(data),
	}
}

// ParseReader reads r to EOF and parses the content.
// The returned error is reserved for I/O failures; parse failures live in the
// ParsedMatrix as usual.
func ParseReader(r io.Reader, opts Options) (ParsedMatrix, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ParsedMatrix{}, err
	}

	return Parse(string(raw), opts), nil
}

// isTrimSpace matches Unicode white space plus the byte-order mark, which
// editors like to prepend to exported CSV files.
func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func trim(s string) string { return strings.TrimFunc(s, isTrimSpace) }

// splitLines splits on sep, trims every line and drops the empty ones.
func splitLines(text, sep string) []string {
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = trim(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// splitRows splits every line on delim and trims every field.
func splitRows(lines []string, delim string) [][]string {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		fields := strings.Split(line, delim)
		for j := range fields {
			fields[j] = trim(fields[j])
		}
		rows[i] = fields
	}

	return rows
}

// splitHeader peels the first row off when hasHeader is set.
func splitHeader(rows [][]string, hasHeader bool) (header []string, data [][]string) {
	if !hasHeader {
		return nil, rows
	}

	return rows[0], rows[1:]
}

// parseRows converts every field in row-major order.
// It returns the first offending raw field and ok=false on failure;
// no partial matrix escapes.
func parseRows(rows [][]string) (data [][]float64, bad string, ok bool) {
	data = make([][]float64, len(rows))
	for i, row := range rows {
		nums := make([]float64, len(row))
		for j, field := range row {
			v, valid := parseNumber(field)
			if !valid {
				return nil, field, false
			}
			nums[j] = v
		}
		data[i] = nums
	}

	return data, "", true
}

// parseNumber accepts only finite values; "NaN", "Inf" and overflow fail.
func parseNumber(field string) (float64, bool) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// isSquare reports whether every row has exactly len(data) entries.
func isSquare(data [][]float64) bool {
	n := len(data)
	for _, row := range data {
		if len(row) != n {
			return false
		}
	}

	return true
}
