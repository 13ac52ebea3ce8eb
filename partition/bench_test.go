// SPDX-License-Identifier: MIT
package partition_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/teamsplit/partition"
)

func BenchmarkExact(b *testing.B) {
	for _, n := range []int{10, 14, 18} {
		m := mustDense(b, randomRows(n, 1))
		for _, w := range []int{1, 4} {
			opts := partition.DefaultOptions()
			opts.Workers = w
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := partition.Exact(m, opts); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkHeuristic(b *testing.B) {
	for _, n := range []int{30, 100} {
		m := mustDense(b, randomRows(n, 1))
		opts := partition.DefaultOptions()
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := partition.Heuristic(m, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
