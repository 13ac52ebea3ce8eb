// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/teamsplit/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromRows covers the empty matrix, ragged rows and non-finite cells.
func TestFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      [][]float64
		rows    int
		cols    int
		wantErr error
	}{
		{"empty", nil, 0, 0, nil},
		{"1x1", [][]float64{{5}}, 1, 1, nil},
		{"2x3", [][]float64{{1, 2, 3}, {4, 5, 6}}, 2, 3, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, 0, 0, matrix.ErrDimensionMismatch},
		{"empty row", [][]float64{{}}, 0, 0, matrix.ErrInvalidDimensions},
		{"nan", [][]float64{{1, math.NaN()}, {3, 4}}, 0, 0, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(-1)}}, 0, 0, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromRows(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
		})
	}
}

// TestFromRowsToRowsRoundTrip checks that values survive both conversions
// and that the Dense never aliases the source slices.
func TestFromRowsToRowsRoundTrip(t *testing.T) {
	src := [][]float64{{0.1, -2}, {3e10, 4}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99
	out, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.1, -2}, {3e10, 4}}, out)
}

// TestToRowsNil returns the nil sentinel.
func TestToRowsNil(t *testing.T) {
	_, err := matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
