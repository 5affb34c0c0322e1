// Package dfs defines the oracle contract, options, results and sentinel errors
// for depth-first route search: FindPath (stack DFS with an optional discovery
// bound) and IDDFS (iterative deepening with a ceiling).
package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	// Unbounded disables the PathFinder discovery-depth cutoff.
	Unbounded = -1

	// DefaultCeiling is the largest bound IDDFS tries before giving up.
	DefaultCeiling = 10000
)

var (
	// ErrOracleNil is returned when a nil Oracle is passed to a search.
	ErrOracleNil = errors.New("dfs: oracle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrUnknownStrategy is returned by Search and ParseStrategy for an
	// unrecognised strategy.
	ErrUnknownStrategy = errors.New("dfs: unknown strategy")
)

// Oracle supplies adjacency and traversability for an implicit graph.
// The graph is never materialised: searches query it on demand.
type Oracle[N comparable] interface {
	// Neighbors returns the successors of n. Order is significant: it decides
	// traversal order, not correctness.
	Neighbors(n N) []N

	// Traversable reports whether n may be entered or expanded.
	Traversable(n N) bool
}

// OracleFuncs adapts a pair of plain functions to Oracle.
// A nil TraversableFn treats every node as traversable.
type OracleFuncs[N comparable] struct {
	NeighborsFn   func(n N) []N
	TraversableFn func(n N) bool
}

// Neighbors implements Oracle.
func (f OracleFuncs[N]) Neighbors(n N) []N {
	if f.NeighborsFn == nil {
		return nil
	}

	return f.NeighborsFn(n)
}

// Traversable implements Oracle.
func (f OracleFuncs[N]) Traversable(n N) bool {
	if f.TraversableFn == nil {
		return true
	}

	return f.TraversableFn(n)
}

// Path is an ordered start-to-goal sequence of nodes, inclusive on both ends.
// An empty Path means no route was found; that is a normal outcome, not an error.
type Path[N comparable] []N

// Empty reports whether p denotes "no path".
func (p Path[N]) Empty() bool { return len(p) == 0 }

// Hops returns the number of edges in p, or 0 for an empty or singleton path.
func (p Path[N]) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Strategy selects the search algorithm used by Search.
type Strategy int

const (
	// StrategyDFS runs FindPath.
	StrategyDFS Strategy = iota
	// StrategyIDDFS runs IDDFS.
	StrategyIDDFS
)

// String returns the lowercase name of s.
func (s Strategy) String() string {
	switch s {
	case StrategyDFS:
		return "dfs"
	case StrategyIDDFS:
		return "iddfs"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "dfs" or "iddfs" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs":
		return StrategyDFS, nil
	case "iddfs":
		return StrategyIDDFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds the tunables shared by FindPath and IDDFS.
type Options struct {
	// Ctx allows the caller to abandon a search. FindPath checks it on every
	// frontier pop, IDDFS between bound increments.
	Ctx context.Context

	// Bound caps the discovery depth of nodes whose successors FindPath will
	// still expand. Unbounded (-1) disables the cutoff.
	Bound int

	// Ceiling is the largest per-iteration bound IDDFS will try.
	Ceiling int

	// OnBound, if non-nil, is called by IDDFS before each iteration with the
	// bound about to be searched. Returning an error aborts the search.
	OnBound func(bound int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - no FindPath bound (Unbounded)
//   - IDDFS ceiling of DefaultCeiling
//   - no OnBound hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Bound:   Unbounded,
		Ceiling: DefaultCeiling,
		OnBound: nil,
		err:     nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBound sets the FindPath discovery-depth cutoff.
//
//	b >= 0: successors of nodes deeper than b are not expanded
//	b == Unbounded: no cutoff
//	other negatives: ErrOptionViolation
func WithBound(b int) Option {
	return func(o *Options) {
		switch {
		case b == Unbounded:
			o.Bound = Unbounded
		case b < 0:
			o.err = fmt.Errorf("%w: bound cannot be negative (%d)", ErrOptionViolation, b)
		default:
			o.Bound = b
		}
	}
}

// WithCeiling sets the largest bound IDDFS will try. Negative values are
// rejected with ErrOptionViolation.
func WithCeiling(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: ceiling cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.Ceiling = c
	}
}

// WithOnBound registers a hook run by IDDFS before each iteration.
func WithOnBound(fn func(bound int) error) Option {
	return func(o *Options) {
		o.OnBound = fn
	}
}

// Result is the outcome of FindPath or IDDFS. Both strategies share it so
// callers can treat them interchangeably.
type Result[N comparable] struct {
	// Path runs from start to goal, or is empty when no route was found.
	Path Path[N]

	// Expanded counts nodes expanded: FindPath adds them to its visited set,
	// IDDFS opens a frame for them (summed over all iterations).
	Expanded int

	// Pushed counts frontier pushes (FindPath, start included) or frames
	// pushed (IDDFS, summed over all iterations).
	Pushed int

	// Bounds is the number of IDDFS iterations run. Always 0 for FindPath.
	Bounds int

	// Exhausted is set when the reachable space was enumerated without
	// reaching the goal: FindPath drained its frontier, or IDDFS proved that
	// no larger bound can help.
	Exhausted bool

	// CeilingHit is set when IDDFS gave up at its ceiling.
	CeilingHit bool
}

// Found reports whether r carries a non-empty path.
func (r *Result[N]) Found() bool {
	return r != nil && len(r.Path) > 0
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
