// Package lvpath plans routes through tile-map worlds with depth-first
// search and iterative deepening, and replays them with a tick-driven agent.
//
// 🚀 What is lvpath?
//
//	A small, generic search toolkit built around one idea: the caller owns the
//	graph. A search only asks two questions of it:
//		• Neighbors(n)   - which nodes can I move to from n, in what order?
//		• Traversable(n) - may I enter n at all?
//
// ✨ Why lvpath?
//
//   - Generic - any comparable node type, no graph copy required
//   - Predictable - LIFO expansion and fixed neighbor order give repeatable paths
//   - Observable - Result counters (Expanded, Pushed, Bounds) for every run
//   - Cancellable - context.Context and an OnBound hook stop long searches
//
// Under the hood, everything is organized under these packages:
//
//	dfs/                   - Oracle, FindPath (stack DFS), IDDFS, Search
//	gridgraph/             - rectangular tile maps that satisfy dfs.Oracle[int]
//	agent/                 - goal discovery, planning and per-tick replay
//	internal/world/        - TOML / YAML world files
//	internal/observability - zerolog setup
//	cmd/lvpath/            - run, compare and inspect from the command line
//
// Quick ASCII example:
//
//	S#G        S#G
//	...   →    ***
//
//	IDDFS walks around the wall: [0 3 4 5 2].
//
//	go install github.com/katalvlaran/lvpath/cmd/lvpath@latest
package lvpath
