// SPDX-License-Identifier: MIT
package csvmatrix

import (
	"errors"

	"github.com/katalvlaran/teamsplit/matrix"
)

// User-facing messages. The exact text is observable behavior.
const (
	MsgEmpty               = "Empty CSV file."
	MsgInvalidFormat       = "Invalid CSV format."
	MsgInvalidNumberPrefix = "Invalid number: "
	MsgNotSquare           = "The CSV does not represent a square matrix. Maybe you need to enable/disable headers?"
)

// Sentinels matched through ParsedMatrix.Err with errors.Is.
var (
	// ErrEmptyInput: no non-blank line left after line splitting.
	ErrEmptyInput = errors.New("csvmatrix: empty input")

	// ErrInvalidFormat: no rows after field splitting or header removal,
	// or unusable Format options.
	ErrInvalidFormat = errors.New("csvmatrix: invalid format")

	// ErrInvalidNumber: a field is not a finite real number.
	ErrInvalidNumber = errors.New("csvmatrix: invalid number")

	// ErrNotSquare: row lengths differ from the number of data rows.
	ErrNotSquare = errors.New("csvmatrix: matrix is not square")
)

// Recognized choices offered by upload forms. Any string is accepted by Parse.
var (
	Delimiters     = []string{",", ";", " ", "\n"}
	LineSeparators = []string{"\n", ";", ",", " "}
)

// Defaults: header row on, comma-separated fields, one row per line.
const (
	DefaultHasHeader     = true
	DefaultDelimiter     = ","
	DefaultLineSeparator = "\n"
)

// Options describes how a raw document is laid out.
type Options struct {
	HasHeader     bool   // first non-blank row holds member names
	Delimiter     string // separates fields within a line
	LineSeparator string // separates lines
}

// DefaultOptions returns header on, comma delimiter, newline separator.
func DefaultOptions() Options {
	return Options{
		HasHeader:     DefaultHasHeader,
		Delimiter:     DefaultDelimiter,
		LineSeparator: DefaultLineSeparator,
	}
}

// ParseError carries the user-facing message while unwrapping to a sentinel.
type ParseError struct {
	Kind  error  // one of the package sentinels
	Field string // offending raw field (ErrInvalidNumber only)
	msg   string
}

// Error returns the exact user-facing message.
func (e *ParseError) Error() string { return e.msg }

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Kind }

// ParsedMatrix is the outcome of Parse.
//
// Exactly one of {valid data, error} holds:
//   - Error == "": Data is non-empty and square, RowCount == ColumnCount == len(Data),
//     every cell finite; Header is non-nil iff the options asked for one.
//   - Error != "": Data is empty, Header is nil, both counts are zero.
type ParsedMatrix struct {
	Header      []string    `json:"header,omitempty" yaml:"header,omitempty"`
	Data        [][]float64 `json:"data" yaml:"data"`
	RowCount    int         `json:"rowCount" yaml:"rowCount"`
	ColumnCount int         `json:"columnCount" yaml:"columnCount"`
	Error       string      `json:"error,omitempty" yaml:"error,omitempty"`

	err *ParseError
}

// OK reports whether parsing succeeded.
func (p ParsedMatrix) OK() bool { return p.Error == "" }

// Err returns the typed error, or nil on success.
func (p ParsedMatrix) Err() error {
	if p.err == nil {
		return nil
	}

	return p.err
}

// Matrix converts valid data into the shared matrix type.
// On a failed parse it returns Err().
func (p ParsedMatrix) Matrix() (*matrix.Dense, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}

	return matrix.FromRows(p.Data)
}

// errorResult builds the failed form of ParsedMatrix.
func errorResult(kind error, field, msg string) ParsedMatrix {
	pe := &ParseError{Kind: kind, Field: field, msg: msg}

	return ParsedMatrix{Data: [][]float64{}, Error: msg, err: pe}
}
