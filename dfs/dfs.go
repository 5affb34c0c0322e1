// Package dfs implements depth-first route search over an implicit graph
// described by an Oracle.
//
// FindPath is an iterative, stack-based DFS. Nodes enter the visited set when
// they are popped, not when they are pushed, so the same node may sit on the
// frontier several times; stale copies are discarded on pop. An optional
// bound stops successor expansion below a given discovery depth.
//
// Complexity:
//
//   - Time:   O(V·D + E) where D is the depth walk per expansion.
//   - Memory: O(V + E) for frontier duplicates and the discovery ledger.
package dfs

// pathFinder encapsulates the private state of one FindPath call.
type pathFinder[N comparable] struct {
	oracle   Oracle[N]
	opts     Options
	goal     N
	frontier []N
	visited  map[N]struct{}
	ledger   *ledger[N]
	res      *Result[N]
}

// FindPath searches for a route from start to goal using LIFO depth-first
// search. Neighbors are pushed in oracle order, so the last neighbor the
// oracle returns is expanded first.
//
// Behavior:
//  1. start == goal returns [start] without consulting the oracle.
//  2. A non-traversable start returns an empty path.
//  3. Pop curr; stop on goal; skip if already visited; otherwise mark it
//     visited and, when its discovery depth is within the bound, push every
//     traversable, unvisited neighbor with curr as its parent.
//  4. On success the path is rebuilt from the goal's first ledger entry.
//
// Returns ErrOracleNil, ErrOptionViolation, or the context error if the
// search is cancelled. Unreachability yields an empty Path and a nil error.
func FindPath[N comparable](o Oracle[N], start, goal N, opts ...Option) (*Result[N], error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	fo, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	res := &Result[N]{Path: Path[N]{}}
	if start == goal {
		res.Path = Path[N]{start}
		return res, nil
	}
	if !o.Traversable(start) {
		return res, nil
	}

	pf := &pathFinder[N]{
		oracle:   o,
		opts:     fo,
		goal:     goal,
		frontier: []N{start},
		visited:  make(map[N]struct{}),
		ledger:   newLedger(start),
		res:      res,
	}

	return res, pf.run()
}

// run drains the frontier until the goal is popped, the frontier empties, or
// the context is done.
func (pf *pathFinder[N]) run() error {
	for len(pf.frontier) > 0 {
		select {
		case <-pf.opts.Ctx.Done():
			pf.res.Pushed = pf.ledger.size()
			return pf.opts.Ctx.Err()
		default:
		}

		curr := pf.pop()
		if curr == pf.goal {
			pf.res.Path = pf.ledger.pathTo(curr)
			pf.res.Pushed = pf.ledger.size()
			return nil
		}
		if _, seen := pf.visited[curr]; seen {
			continue // stale duplicate
		}
		pf.visited[curr] = struct{}{}
		pf.res.Expanded++

		if pf.opts.Bound != Unbounded && pf.ledger.depth(curr) > pf.opts.Bound {
			continue
		}
		pf.expand(curr)
	}

	pf.res.Pushed = pf.ledger.size()
	pf.res.Exhausted = true

	return nil
}

// pop removes and returns the most recently pushed node.
func (pf *pathFinder[N]) pop() N {
	last := len(pf.frontier) - 1
	n := pf.frontier[last]
	pf.frontier = pf.frontier[:last]

	return n
}

// expand pushes each traversable, not-yet-visited neighbor of curr and links
// it to curr's first ledger entry. Nodes already on the frontier are pushed
// again; deduplication happens on pop.
func (pf *pathFinder[N]) expand(curr N) {
	parent := pf.ledger.indexOf(curr)
	for _, nb := range pf.oracle.Neighbors(curr) {
		if !pf.oracle.Traversable(nb) {
			continue
		}
		if _, seen := pf.visited[nb]; seen {
			continue
		}
		pf.frontier = append(pf.frontier, nb)
		pf.ledger.record(nb, parent)
	}
}
