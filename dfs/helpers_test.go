// Package dfs_test contains fixtures shared by the dfs tests.
package dfs_test

import (
	"github.com/katalvlaran/lvpath/dfs"
)

// gridOracle is a W×H 4-connected grid over row-major indices.
// Neighbors are listed N, E, S, W; blocked cells are not traversable.
type gridOracle struct {
	w, h    int
	blocked map[int]bool
}

func newGrid(w, h int, blocked ...int) gridOracle {
	g := gridOracle{w: w, h: h, blocked: make(map[int]bool, len(blocked))}
	for _, b := range blocked {
		g.blocked[b] = true
	}

	return g
}

func (g gridOracle) Neighbors(n int) []int {
	x, y := n%g.w, n/g.w
	out := make([]int, 0, 4)
	if y > 0 {
		out = append(out, n-g.w)
	}
	if x < g.w-1 {
		out = append(out, n+1)
	}
	if y < g.h-1 {
		out = append(out, n+g.w)
	}
	if x > 0 {
		out = append(out, n-1)
	}

	return out
}

func (g gridOracle) Traversable(n int) bool {
	return n >= 0 && n < g.w*g.h && !g.blocked[n]
}

// adjacency builds an oracle from an explicit successor map. Missing keys have
// no successors; every node is traversable unless listed in blocked.
func adjacency(succ map[string][]string, blocked ...string) dfs.OracleFuncs[string] {
	bl := make(map[string]bool, len(blocked))
	for _, b := range blocked {
		bl[b] = true
	}

	return dfs.OracleFuncs[string]{
		NeighborsFn:   func(n string) []string { return succ[n] },
		TraversableFn: func(n string) bool { return !bl[n] },
	}
}

// shortestHops returns the BFS hop distance from start to goal over
// traversable cells, or -1 if unreachable.
func shortestHops(o dfs.Oracle[int], start, goal int) int {
	if start == goal {
		return 0
	}
	if !o.Traversable(start) {
		return -1
	}
	dist := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range o.Neighbors(u) {
			if _, ok := dist[v]; ok || !o.Traversable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			if v == goal {
				return dist[v]
			}
			queue = append(queue, v)
		}
	}

	return -1
}
