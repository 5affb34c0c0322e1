// Package dfs provides helpers shared by FindPath, IDDFS and their callers:
// slice reversal, membership lookup and path validation against an Oracle.
package dfs

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is returned by ValidatePath when a path breaks adjacency or
// repeats a node.
var ErrInvalidPath = errors.New("dfs: invalid path")

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf[N comparable](s []N, val N) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// reverse returns a new slice with the elements of s in reverse order.
func reverse[N any](s []N) []N {
	out := make([]N, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// ValidatePath checks that every consecutive pair of p is an oracle edge and
// that no node occurs twice. An empty path is valid.
// Time Complexity: O(L·d) where L = len(p), d = neighbor count.
func ValidatePath[N comparable](o Oracle[N], p Path[N]) error {
	if o == nil {
		return ErrOracleNil
	}
	seen := make(map[N]int, len(p))
	for i, n := range p {
		if j, dup := seen[n]; dup {
			return fmt.Errorf("%w: node %v repeated at positions %d and %d", ErrInvalidPath, n, j, i)
		}
		seen[n] = i
		if i == 0 {
			continue
		}
		if IndexOf(o.Neighbors(p[i-1]), n) < 0 {
			return fmt.Errorf("%w: %v is not a neighbor of %v", ErrInvalidPath, n, p[i-1])
		}
	}

	return nil
}
