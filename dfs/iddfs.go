// Package dfs implements iterative-deepening depth-first search (IDDFS).
//
// IDDFS reruns a depth-limited search with bound 0, 1, 2, ... up to a ceiling.
// Each run reports whether the goal was reached and whether any branch was
// cut short by the bound. When no branch was cut short the reachable space
// has been enumerated and a larger bound cannot help, so the search stops
// early.
//
// The depth-limited search runs on an explicit frame stack, so the Go call
// stack does not grow with the bound.
//
// Complexity:
//
//   - Time:   O(b^d) per iteration (b = branching factor, d = bound).
//   - Memory: O(d·b) for the frame stack and cached successor lists.
package dfs

import "fmt"

// frame is one level of the depth-limited search.
type frame[N comparable] struct {
	node        N
	remaining   int  // depth budget left at this node
	succ        []N  // successors, fetched when the frame is opened
	next        int  // index of the next successor to descend into
	opened      bool // succ is valid and the node has been classified
	canContinue bool // OR of the children's canContinue flags so far
}

// deepener holds the private state of one IDDFS call.
type deepener[N comparable] struct {
	oracle Oracle[N]
	goal   N
	stack  []frame[N]
	res    *Result[N]
}

// IDDFS searches for a route from start to goal by iterative deepening.
//
// Behavior:
//  1. A non-traversable start returns an empty path.
//  2. For bound = 0..Ceiling: run the depth-limited search. A hit returns the
//     path. A run where no branch could go deeper proves exhaustion and
//     returns an empty path with Result.Exhausted set.
//  3. Past the ceiling an empty path is returned with Result.CeilingHit set.
//
// The depth-limited search accepts the goal only at exactly the bound and
// does not check traversability there; a blocked node above the leaves
// prunes its subtree and reports that it cannot go deeper. There is no cycle
// check, so on an undirected component without the goal every run reports
// that it can continue and the search ends at the ceiling.
//
// Since each bound is tried in increasing order, a returned path has the
// fewest hops of any route.
//
// Returns ErrOracleNil, ErrOptionViolation, the context error when cancelled
// between iterations, or the OnBound hook error.
func IDDFS[N comparable](o Oracle[N], start, goal N, opts ...Option) (*Result[N], error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	fo, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	res := &Result[N]{Path: Path[N]{}}
	if !o.Traversable(start) {
		return res, nil
	}

	d := &deepener[N]{oracle: o, goal: goal, res: res}
	for bound := 0; bound <= fo.Ceiling; bound++ {
		select {
		case <-fo.Ctx.Done():
			return res, fo.Ctx.Err()
		default:
		}
		if fo.OnBound != nil {
			if err = fo.OnBound(bound); err != nil {
				return res, fmt.Errorf("dfs: OnBound hook at bound %d: %w", bound, err)
			}
		}

		res.Bounds++
		found, canContinue, path := d.limited(start, bound)
		if found {
			res.Path = path
			return res, nil
		}
		if !canContinue {
			res.Exhausted = true
			return res, nil
		}
	}
	res.CeilingHit = true

	return res, nil
}

// limited runs one depth-limited search from start. It reports whether the
// goal was reached at exactly the bound, whether any branch could go deeper,
// and the path when found.
func (d *deepener[N]) limited(start N, bound int) (found, canContinue bool, path Path[N]) {
	d.stack = append(d.stack[:0], frame[N]{node: start, remaining: bound})
	d.res.Pushed++

	for {
		top := &d.stack[len(d.stack)-1]
		if !top.opened {
			top.opened = true
			d.res.Expanded++

			if top.remaining == 0 {
				if top.node == d.goal {
					return true, true, d.snapshot()
				}
				// a leaf at the bound never proves exhaustion
				if done, cont := d.finish(true); done {
					return false, cont, nil
				}
				continue
			}
			if !d.oracle.Traversable(top.node) {
				if done, cont := d.finish(false); done {
					return false, cont, nil
				}
				continue
			}
			top.succ = d.oracle.Neighbors(top.node)
		}

		if top.next < len(top.succ) {
			child := frame[N]{node: top.succ[top.next], remaining: top.remaining - 1}
			top.next++
			d.stack = append(d.stack, child)
			d.res.Pushed++
			continue
		}
		if done, cont := d.finish(top.canContinue); done {
			return false, cont, nil
		}
	}
}

// finish pops the top frame and folds cont into its parent. It reports
// done=true with the root's flag once the root itself has been popped.
func (d *deepener[N]) finish(cont bool) (done, rootCont bool) {
	d.stack = d.stack[:len(d.stack)-1]
	if len(d.stack) == 0 {
		return true, cont
	}
	parent := &d.stack[len(d.stack)-1]
	parent.canContinue = parent.canContinue || cont

	return false, false
}

// snapshot returns the nodes on the frame stack from root to top. Taken when
// the top frame hits the goal, this is the same sequence that prepending each
// node while unwinding would produce.
func (d *deepener[N]) snapshot() Path[N] {
	p := make(Path[N], len(d.stack))
	for i := range d.stack {
		p[i] = d.stack[i].node
	}

	return p
}
