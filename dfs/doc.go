// Package dfs finds a route between two nodes of an implicit graph using
// depth-first search (FindPath) or iterative deepening (IDDFS).
//
// What:
//
//   - Oracle[N]: the caller-supplied graph. Neighbors(n) enumerates successors
//     in a significant order; Traversable(n) reports whether n may be
//     entered. The graph is never materialised.
//   - FindPath: iterative stack DFS. Visited nodes are marked on pop, so a
//     node can sit on the frontier more than once. An optional bound stops
//     successor expansion of nodes deeper than the bound.
//   - IDDFS: depth-limited search rerun with bound 0, 1, 2, ... until the goal
//     is hit, exhaustion is proved, or the ceiling is passed. Runs on an
//     explicit frame stack.
//   - Search: dispatch on a Strategy value.
//
// Why:
//
//   - Agents on tile maps that need a route to a goal cell.
//   - Reproducible traversal order for teaching and testing search.
//   - IDDFS gives the fewest-hop route with DFS-sized memory.
//
// Key Types & Constants:
//
//   - Oracle, OracleFuncs
//   - Path: start-to-goal nodes; empty means unreachable
//   - Result: Path plus Expanded, Pushed, Bounds, Exhausted, CeilingHit
//   - Strategy: StrategyDFS, StrategyIDDFS
//   - Unbounded, DefaultCeiling
//
// Ordering:
//
//	FindPath pushes neighbors in oracle order and pops the most recent, so
//	the oracle's last neighbor is expanded first. IDDFS descends in oracle
//	order. Both orders are part of the contract.
//
// Depth bound caveat:
//
//	FindPath's bound decides whether a node's successors are expanded, not
//	whether the node may be reached. A node one level below the bound is
//	still pushed and can be accepted as the goal, so a bounded FindPath may
//	return a path of Bound+1 hops.
//
// Complexity:
//
//   - FindPath: Time O(V·D + E), Memory O(V + E)  (D = depth walk per pop)
//   - IDDFS:    Time O(Σ b^k, k ≤ d), Memory O(d·b)
//
// Options:
//
//   - WithContext(ctx)   cancellation; FindPath per pop, IDDFS per iteration
//   - WithBound(n)       FindPath expansion cutoff (Unbounded by default)
//   - WithCeiling(n)     IDDFS maximum bound (DefaultCeiling by default)
//   - WithOnBound(fn)    IDDFS pre-iteration hook; error aborts
//
// Errors:
//
//   - ErrOracleNil          oracle is nil
//   - ErrOptionViolation    negative bound or ceiling
//   - ErrUnknownStrategy    Search/ParseStrategy with an unknown strategy
//   - ErrInvalidPath        ValidatePath found a broken path
//   - context.Canceled      search cancelled via context
//   - hook errors           propagated from OnBound
//
// Unreachability is not an error: the result carries an empty Path.
// Each call owns its frontier, visited set, ledger and frame stack; calls
// never share state, so independent searches may run concurrently as long
// as the oracle is safe for concurrent reads.
package dfs
