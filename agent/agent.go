// Package agent replays a planned route over a grid one cell per tick.
//
// Lifecycle:
//
//	Reset  -> locate the goal tile (ErrNoGoalConfigured if missing)
//	Start  -> plan a fresh route from the start cell with dfs.Search
//	Step   -> advance one cell; ErrStalled once there is nothing left
//	Run    -> Start, then Step until goal, stall, timeout or cancellation
//
// An empty route is a normal planning outcome: the agent simply stalls on its
// first Step.
package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/gridgraph"
)

// Advance returns the node at cursor, or ErrExhausted once cursor is past the
// end of p. Negative cursors are exhausted too.
func Advance[N comparable](p dfs.Path[N], cursor int) (N, error) {
	var zero N
	if cursor < 0 || cursor >= len(p) {
		return zero, fmt.Errorf("%w: cursor %d, path length %d", ErrExhausted, cursor, len(p))
	}

	return p[cursor], nil
}

// Agent plans routes on a single grid. It is not safe for concurrent use;
// run one Agent per goroutine.
type Agent struct {
	grid       *gridgraph.GridGraph
	strategy   dfs.Strategy
	searchOpts []dfs.Option
	maxTicks   int
	log        zerolog.Logger
	err        error

	goal    int
	hasGoal bool

	started bool
	start   int
	state   int
	plan    *dfs.Result[int]
	cursor  int
	ticks   int
	ret     int
}

// New returns an Agent for grid. Call Reset before Start.
func New(grid *gridgraph.GridGraph, opts ...Option) (*Agent, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	a := &Agent{
		grid:     grid,
		strategy: dfs.StrategyDFS,
		maxTicks: DefaultMaxTicks,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.err != nil {
		return nil, a.err
	}

	return a, nil
}

// Reset locates the goal tile and clears any previous episode. The first goal
// in row-major order wins.
func (a *Agent) Reset() error {
	a.started = false
	a.plan = nil
	a.cursor, a.ticks, a.ret = 0, 0, 0

	goals := a.grid.Find(gridgraph.TileGoal)
	if len(goals) == 0 {
		a.hasGoal = false
		return ErrNoGoalConfigured
	}
	a.goal, a.hasGoal = goals[0], true
	if len(goals) > 1 {
		a.log.Warn().Int("goals", len(goals)).Int("goal", a.goal).Msg("several goal tiles; using the first")
	}

	return nil
}

// Goal returns the goal cell found by Reset.
func (a *Agent) Goal() (int, bool) {
	return a.goal, a.hasGoal
}

// State returns the cell the agent currently occupies.
func (a *Agent) State() int {
	return a.state
}

// Start plans a route from start to the goal with the configured strategy.
// Every call searches from scratch. An unreachable goal is not an error.
func (a *Agent) Start(ctx context.Context, start int) error {
	if !a.hasGoal {
		return fmt.Errorf("%w: Reset must succeed before Start", ErrNotReady)
	}
	opts := append(append([]dfs.Option{}, a.searchOpts...), dfs.WithContext(ctx))
	res, err := dfs.Search[int](a.strategy, a.grid, start, a.goal, opts...)
	if err != nil {
		return fmt.Errorf("agent: plan %s route: %w", a.strategy, err)
	}

	a.started = true
	a.start, a.state = start, start
	a.plan = res
	a.cursor, a.ticks, a.ret = 0, 0, 0

	ev := a.log.Info()
	if !res.Found() {
		ev = a.log.Warn()
	}
	ev.Str("strategy", a.strategy.String()).
		Int("start", start).
		Int("goal", a.goal).
		Bool("found", res.Found()).
		Int("hops", res.Path.Hops()).
		Int("expanded", res.Expanded).
		Int("bounds", res.Bounds).
		Msg("route planned")

	return nil
}

// Path returns the planned route, or nil before Start.
func (a *Agent) Path() dfs.Path[int] {
	if a.plan == nil {
		return nil
	}

	return a.plan.Path
}

// Step moves the agent to the next cell of the route. The route starts with
// the start cell, so the first tick lands on it. Once the route is used up,
// or when it was empty, Step returns an error wrapping both ErrStalled and
// ErrExhausted and leaves the state unchanged.
func (a *Agent) Step() (StepResult, error) {
	if !a.started {
		return StepResult{}, fmt.Errorf("%w: Start must succeed before Step", ErrNotReady)
	}
	next, err := Advance(a.plan.Path, a.cursor)
	if err != nil {
		return StepResult{Tick: a.ticks, State: a.state}, fmt.Errorf("%w: %w", ErrStalled, err)
	}

	a.state = next
	a.cursor++
	a.ticks++
	r := StepResult{Tick: a.ticks, State: next, Reward: RewardMove, AtGoal: next == a.goal}
	if r.AtGoal {
		r.Reward = RewardGoal
	}
	a.ret += r.Reward

	a.log.Debug().Int("tick", r.Tick).Int("state", r.State).Int("reward", r.Reward).Msg("step")

	return r, nil
}

// Run plans from start and steps until the goal is reached, the agent
// stalls, MaxTicks is hit or ctx is done. Stalling and timing out are
// reported on the Episode, not as errors.
func (a *Agent) Run(ctx context.Context, start int) (Episode, error) {
	if err := a.Start(ctx, start); err != nil {
		return Episode{}, err
	}
	ep := Episode{Strategy: a.strategy, Start: start, Goal: a.goal, Search: a.plan}

	for {
		if a.ticks >= a.maxTicks {
			ep.TimedOut = true
			a.log.Warn().Int("ticks", a.ticks).Msg("episode timed out")
			break
		}
		select {
		case <-ctx.Done():
			ep.Ticks, ep.Return = a.ticks, a.ret
			return ep, ctx.Err()
		default:
		}

		r, err := a.Step()
		if errors.Is(err, ErrStalled) {
			ep.Stalled = true
			a.log.Warn().Int("ticks", a.ticks).Int("state", a.state).Msg("agent stalled")
			break
		}
		if err != nil {
			return ep, err
		}
		if r.AtGoal {
			ep.ReachedGoal = true
			break
		}
	}
	ep.Ticks, ep.Return = a.ticks, a.ret

	return ep, nil
}
