package dfs

import "fmt"

// Search runs the given strategy. Both strategies return the same Result
// shape, so callers can swap them freely. Bound applies to StrategyDFS and
// Ceiling to StrategyIDDFS; the other setting is ignored.
func Search[N comparable](s Strategy, o Oracle[N], start, goal N, opts ...Option) (*Result[N], error) {
	switch s {
	case StrategyDFS:
		return FindPath(o, start, goal, opts...)
	case StrategyIDDFS:
		return IDDFS(o, start, goal, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}
