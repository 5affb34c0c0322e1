// Package agent defines options, results and sentinel errors for an agent
// that plans a route over a gridgraph.GridGraph and replays it tick by tick.
package agent

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpath/dfs"
)

// DefaultMaxTicks bounds an episode when no WithMaxTicks option is given.
const DefaultMaxTicks = 1000

// Rewards returned by Step.
const (
	RewardGoal = 0
	RewardMove = -1
)

var (
	// ErrGridNil is returned by New when the grid is nil.
	ErrGridNil = errors.New("agent: grid is nil")

	// ErrNoGoalConfigured is returned by Reset when the map has no goal tile.
	// It is fatal for the map and never retried.
	ErrNoGoalConfigured = errors.New("agent: no goal set - can't start search")

	// ErrNotReady is returned by Start before a successful Reset, and by Step
	// before Start.
	ErrNotReady = errors.New("agent: not ready")

	// ErrExhausted is returned by Advance once the cursor passes the end of
	// the path.
	ErrExhausted = errors.New("agent: path exhausted")

	// ErrStalled is returned by Step when there is no next node to move to:
	// the route was empty or has been fully replayed.
	ErrStalled = errors.New("agent: stalled")

	// ErrOptionViolation is returned by New for an invalid Option.
	ErrOptionViolation = errors.New("agent: invalid option supplied")
)

// Option configures an Agent via functional arguments.
type Option func(*Agent)

// WithStrategy selects the search strategy. Default is dfs.StrategyDFS.
func WithStrategy(s dfs.Strategy) Option {
	return func(a *Agent) {
		a.strategy = s
	}
}

// WithSearchOptions appends options passed to every dfs.Search call.
func WithSearchOptions(opts ...dfs.Option) Option {
	return func(a *Agent) {
		a.searchOpts = append(a.searchOpts, opts...)
	}
}

// WithMaxTicks caps the number of ticks Run will take. Non-positive values
// are rejected with ErrOptionViolation.
func WithMaxTicks(n int) Option {
	return func(a *Agent) {
		if n <= 0 {
			a.err = fmt.Errorf("%w: max ticks must be positive (%d)", ErrOptionViolation, n)
			return
		}
		a.maxTicks = n
	}
}

// WithLogger sets the logger used for planning and stepping events.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Agent) {
		a.log = l
	}
}

// StepResult describes one tick of replay.
type StepResult struct {
	Tick   int  // 1-based tick number
	State  int  // cell the agent occupies after the tick
	Reward int  // RewardGoal on the goal cell, RewardMove otherwise
	AtGoal bool // State is the goal cell
}

// Episode summarises a Run.
type Episode struct {
	Strategy    dfs.Strategy
	Start, Goal int
	Search      *dfs.Result[int] // planning result, including the path
	Ticks       int              // ticks taken
	Return      int              // sum of rewards
	ReachedGoal bool
	Stalled     bool // no route, or route replayed without reaching the goal
	TimedOut    bool // MaxTicks reached first
}
