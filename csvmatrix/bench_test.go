// SPDX-License-Identifier: MIT
package csvmatrix_test

import (
	"testing"

	"github.com/katalvlaran/teamsplit/csvmatrix"
)

// benchmarkParse formats an n×n matrix once, then parses it b.N times.
func benchmarkParse(b *testing.B, n int) {
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
		for j := range data[i] {
			data[i][j] = float64((i*31+j*17)%11) / 2
		}
	}
	opts := csvmatrix.Options{Delimiter: ",", LineSeparator: "\n"}
	text, err := csvmatrix.Format(nil, data, opts)
	if err != nil {
		b.Fatalf("Format failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if res := csvmatrix.Parse(text, opts); !res.OK() {
			b.Fatalf("Parse failed: %s", res.Error)
		}
	}
}

// BenchmarkParse_20 parses a matrix at the exact-search size.
func BenchmarkParse_20(b *testing.B) { benchmarkParse(b, 20) }

// BenchmarkParse_200 parses a matrix well into heuristic territory.
func BenchmarkParse_200(b *testing.B) { benchmarkParse(b, 200) }
