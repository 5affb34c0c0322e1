package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvpath/dfs"
)

// BenchmarkFindPath_Grid50 measures FindPath corner to corner on an open
// 50×50 grid.
// Complexity: O(V·D + E) per run.
func BenchmarkFindPath_Grid50(b *testing.B) {
	const n = 50
	g := newGrid(n, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindPath[int](g, 0, n*n-1)
	}
}

// BenchmarkFindPath_Bounded measures FindPath with a discovery bound that
// leaves the goal out of reach, forcing the frontier to drain.
func BenchmarkFindPath_Bounded(b *testing.B) {
	const n = 60
	g := newGrid(n, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindPath[int](g, 0, n*n-1, dfs.WithBound(20))
	}
}

// BenchmarkIDDFS_Chain1000 measures IDDFS on a directed chain of 1,000 nodes;
// the last iteration walks the full chain.
// Complexity: O(n²) frames in total.
func BenchmarkIDDFS_Chain1000(b *testing.B) {
	o := chain(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.IDDFS[int](o, 0, 999)
	}
}

// BenchmarkIDDFS_Grid5 measures IDDFS corner to corner on an open 5×5 grid
// (8 hops, branching up to 4).
func BenchmarkIDDFS_Grid5(b *testing.B) {
	g := newGrid(5, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.IDDFS[int](g, 0, 24)
	}
}
