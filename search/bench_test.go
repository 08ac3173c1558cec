package search_test

import (
	"testing"

	"github.com/katalvlaran/statespace/search"
)

type cell struct{ x, y int }

// gridProblem is an open size×size grid from the top-left to the bottom-right corner.
func gridProblem(size int) search.Problem[cell, int] {
	return search.Problem[cell, int]{
		Start: cell{0, 0},
		Successors: func(c cell) []search.Edge[cell, int] {
			out := make([]search.Edge[cell, int], 0, 4)
			for _, d := range [4]cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
				n := cell{c.x + d.x, c.y + d.y}
				if n.x < 0 || n.y < 0 || n.x >= size || n.y >= size {
					continue
				}
				out = append(out, search.Edge[cell, int]{To: n, Cost: 1 + (n.x*n.y)%3})
			}
			return out
		},
		Goal: func(c cell) bool { return c.x == size-1 && c.y == size-1 },
	}
}

// BenchmarkSearch_MinCostGrid measures Dijkstra on a 100×100 weighted grid.
func BenchmarkSearch_MinCostGrid(b *testing.B) {
	p := gridProblem(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Search(p)
	}
}

// BenchmarkSearch_FIFOGrid measures BFS on the same grid.
func BenchmarkSearch_FIFOGrid(b *testing.B) {
	p := gridProblem(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Search(p, search.WithOrder(search.FIFO))
	}
}

// BenchmarkLongest_Routes measures the label-correcting maximiser on the
// four-city bitmask problem.
func BenchmarkLongest_Routes(b *testing.B) {
	p := routeProblem(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Longest(p)
	}
}
