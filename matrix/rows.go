// SPDX-License-Identifier: MIT

// Package matrix - converters between nested slices and Dense.
//
// FromRows is the ingestion entry point: it accepts the [][]float64 produced by
// csvmatrix and builds an independent Dense. ToRows goes the other way for
// serializers and tests.

package matrix

import (
	"fmt"
	"math"
)

// FromRows builds a Dense from rectangular row-major data.
//
// Implementation:
//   - Stage 1: derive shape from len(rows) and len(rows[0]); empty input → 0×0.
//   - Stage 2: reject ragged rows (ErrDimensionMismatch) and non-finite cells (ErrNaNInf).
//   - Stage 3: copy values into one flat buffer.
//
// Behavior highlights:
//   - The result never aliases the input slices.
//   - Squareness is NOT required here; use ValidateSquare when it matters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	var r, c int
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}
	if r > 0 && c == 0 {
		return nil, ErrInvalidDimensions
	}

	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: cell (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToRows copies any Matrix into freshly allocated nested slices.
//
// Errors: ErrNilMatrix, or the first At error of a foreign implementation.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	out := make([][]float64, m.Rows())
	var (
		i, j int
		err  error
	)
	for i = range out {
		out[i] = make([]float64, m.Cols())
		for j = range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
