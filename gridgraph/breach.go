package gridgraph

import (
	"container/list"
	"fmt"
)

// BreachWalls finds a route from cell from to cell to that passes through the
// fewest wall tiles, as if walls could be knocked down at a cost of 1 each.
// Returns the route (row-major indices, both ends included) and the number of
// walls on it; zero means to is already reachable.
//
// Behavior:
//  1. Validate both indices.
//  2. 0–1 BFS from from:
//     • stepping onto a traversable cell → cost 0, pushed to the front
//     • stepping onto a wall             → cost 1, pushed to the back
//  3. Stop when to is popped.
//  4. Reconstruct the route via predecessors.
//
// Complexity: O(W·H·d), where d = 4 or 8.
// Memory:     O(W·H) for distances and predecessors.
func (gg *GridGraph) BreachWalls(from, to int) (path []int, walls int, err error) {
	for _, idx := range [2]int{from, to} {
		if idx < 0 || idx >= gg.Len() {
			return nil, 0, fmt.Errorf("%w: index %d", ErrOutOfBounds, idx)
		}
	}

	cost := func(idx int) int {
		if gg.Traversable(idx) {
			return 0
		}
		return 1
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, gg.Len())
	prev := make([]int, gg.Len())
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// cost-0 moves go to the front, cost-1 moves to the back
	dq := list.New()
	dist[from] = cost(from)
	dq.PushFront(from)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == to {
			break
		}
		for _, v := range gg.Neighbors(u) {
			step := cost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := to; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[to], nil
}
