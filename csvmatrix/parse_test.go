// SPDX-License-Identifier: MIT
package csvmatrix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/teamsplit/csvmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noHeader is the comma/newline layout without a header row.
var noHeader = csvmatrix.Options{HasHeader: false, Delimiter: ",", LineSeparator: "\n"}

// withHeader is the comma/newline layout with a header row.
var withHeader = csvmatrix.Options{HasHeader: true, Delimiter: ",", LineSeparator: "\n"}

// requireFailed checks the "error ⇒ empty" half of the ParsedMatrix invariant.
func requireFailed(t *testing.T, res csvmatrix.ParsedMatrix, kind error, msg string) {
	t.Helper()
	require.False(t, res.OK())
	require.Equal(t, msg, res.Error)
	require.Empty(t, res.Data)
	require.Nil(t, res.Header)
	require.Zero(t, res.RowCount)
	require.Zero(t, res.ColumnCount)
	require.ErrorIs(t, res.Err(), kind)
	require.EqualError(t, res.Err(), msg)
}

// TestParse_Simple2x2 covers the canonical happy path.
func TestParse_Simple2x2(t *testing.T) {
	res := csvmatrix.Parse("1,2\n3,4", noHeader)

	require.True(t, res.OK())
	require.NoError(t, res.Err())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, res.Data)
	require.Equal(t, 2, res.RowCount)
	require.Equal(t, 2, res.ColumnCount)
	require.Nil(t, res.Header)
}

// TestParse_InvalidNumber reports the offending raw field.
func TestParse_InvalidNumber(t *testing.T) {
	res := csvmatrix.Parse("a,1\n2,3", noHeader)
	requireFailed(t, res, csvmatrix.ErrInvalidNumber, "Invalid number: a")

	var pe *csvmatrix.ParseError
	require.True(t, errors.As(res.Err(), &pe))
	require.Equal(t, "a", pe.Field)
}

// TestParse_HeaderToggle runs the same text with and without the header flag.
func TestParse_HeaderToggle(t *testing.T) {
	const text = "h1,h2\n1,2,3\n4,5,6\n7,8,9"

	res := csvmatrix.Parse(text, withHeader)
	require.True(t, res.OK(), res.Error)
	require.Equal(t, []string{"h1", "h2"}, res.Header)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, res.Data)
	require.Equal(t, 3, res.RowCount)
	require.Equal(t, 3, res.ColumnCount)

	res = csvmatrix.Parse(text, noHeader)
	requireFailed(t, res, csvmatrix.ErrInvalidNumber, "Invalid number: h1")
}

// TestParse_Errors walks every message of the fixed error set.
func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		opts csvmatrix.Options
		kind error
		msg  string
	}{
		{"empty string", "", noHeader, csvmatrix.ErrEmptyInput, csvmatrix.MsgEmpty},
		{"blank lines only", " \n\t\n\r\n", noHeader, csvmatrix.ErrEmptyInput, csvmatrix.MsgEmpty},
		{"header only", "a,b,c\n", withHeader, csvmatrix.ErrInvalidFormat, csvmatrix.MsgInvalidFormat},
		{"not square 2x3", "1,2,3\n4,5,6", noHeader, csvmatrix.ErrNotSquare, csvmatrix.MsgNotSquare},
		{"ragged", "1,2\n3", noHeader, csvmatrix.ErrNotSquare, csvmatrix.MsgNotSquare},
		{"header flag on for headerless file", "1,2,3\n4,5,6", withHeader, csvmatrix.ErrNotSquare, csvmatrix.MsgNotSquare},
		{"empty field", "1,,2\n3,4,5\n6,7,8", noHeader, csvmatrix.ErrInvalidNumber, "Invalid number: "},
		{"nan literal", "1,NaN\n2,3", noHeader, csvmatrix.ErrInvalidNumber, "Invalid number: NaN"},
		{"inf literal", "1,2\n+Inf,3", noHeader, csvmatrix.ErrInvalidNumber, "Invalid number: +Inf"},
		{"overflow", "1,1e400\n2,3", noHeader, csvmatrix.ErrInvalidNumber, "Invalid number: 1e400"},
		{"trailing garbage", "1,2px\n3,4", noHeader, csvmatrix.ErrInvalidNumber, "Invalid number: 2px"},
		{"locale comma decimal", "1;2,5\n3;4", csvmatrix.Options{Delimiter: ";", LineSeparator: "\n"}, csvmatrix.ErrInvalidNumber, "Invalid number: 2,5"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			requireFailed(t, csvmatrix.Parse(tc.text, tc.opts), tc.kind, tc.msg)
		})
	}
}

// TestParse_FirstBadFieldWins verifies row-major scanning order.
func TestParse_FirstBadFieldWins(t *testing.T) {
	res := csvmatrix.Parse("1,x\ny,2", noHeader)
	require.Equal(t, "Invalid number: x", res.Error)
}

// TestParse_NumberFailureBeatsSquareness confirms stage order: conversion
// runs before the shape check.
func TestParse_NumberFailureBeatsSquareness(t *testing.T) {
	res := csvmatrix.Parse("1,2,3\nq,5,6", noHeader)
	require.Equal(t, "Invalid number: q", res.Error)
}

// TestParse_Whitespace covers trimming of lines and fields, CRLF input and a BOM.
func TestParse_Whitespace(t *testing.T) {
	text := "\uFEFF  name1 , name2 \r\n\r\n 1.5 ,  -2 \r\n  3e2,4 \r\n\n"
	res := csvmatrix.Parse(text, withHeader)

	require.True(t, res.OK(), res.Error)
	assert.Equal(t, []string{"name1", "name2"}, res.Header)
	assert.Equal(t, [][]float64{{1.5, -2}, {300, 4}}, res.Data)
}

// TestParse_AlternateSeparators exercises each non-default UI choice.
func TestParse_AlternateSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		opts csvmatrix.Options
	}{
		{"semicolon fields", "1;2\n3;4", csvmatrix.Options{Delimiter: ";", LineSeparator: "\n"}},
		{"space fields", "1 2\n3 4", csvmatrix.Options{Delimiter: " ", LineSeparator: "\n"}},
		{"newline fields, semicolon lines", "1\n2;3\n4", csvmatrix.Options{Delimiter: "\n", LineSeparator: ";"}},
		{"comma lines, space fields", "1 2,3 4", csvmatrix.Options{Delimiter: " ", LineSeparator: ","}},
		{"multi-char separators", "1||2<>3||4", csvmatrix.Options{Delimiter: "||", LineSeparator: "<>"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res := csvmatrix.Parse(tc.text, tc.opts)
			require.True(t, res.OK(), res.Error)
			require.Equal(t, [][]float64{{1, 2}, {3, 4}}, res.Data)
		})
	}
}

// TestParse_Deterministic parses the same blob twice.
func TestParse_Deterministic(t *testing.T) {
	text := "x,y,z\n3,1,2\n9,8,7\n0.5,0.25,0.125"
	require.Equal(t, csvmatrix.Parse(text, withHeader), csvmatrix.Parse(text, withHeader))
}

// TestParsedMatrix_Matrix converts valid data and refuses failed parses.
func TestParsedMatrix_Matrix(t *testing.T) {
	m, err := csvmatrix.Parse("1,2\n3,4", noHeader).Matrix()
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = csvmatrix.Parse("", noHeader).Matrix()
	require.ErrorIs(t, err, csvmatrix.ErrEmptyInput)
}

// failingReader always returns its error.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// TestParseReader separates I/O failures from parse failures.
func TestParseReader(t *testing.T) {
	res, err := csvmatrix.ParseReader(strings.NewReader("1,2\n3,4"), noHeader)
	require.NoError(t, err)
	require.True(t, res.OK())

	res, err = csvmatrix.ParseReader(strings.NewReader("1,2"), noHeader)
	require.NoError(t, err)
	require.Equal(t, csvmatrix.MsgNotSquare, res.Error)

	boom := errors.New("disk on fire")
	_, err = csvmatrix.ParseReader(failingReader{err: boom}, noHeader)
	require.ErrorIs(t, err, boom)
}

// TestDefaultOptions locks the upload-form defaults.
func TestDefaultOptions(t *testing.T) {
	opts := csvmatrix.DefaultOptions()
	require.True(t, opts.HasHeader)
	require.Equal(t, ",", opts.Delimiter)
	require.Equal(t, "\n", opts.LineSeparator)
	require.Contains(t, csvmatrix.Delimiters, opts.Delimiter)
	require.Contains(t, csvmatrix.LineSeparators, opts.LineSeparator)
}
