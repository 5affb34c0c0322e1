package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/agent"
	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/internal/world"
)

type runFlags struct {
	world    string
	strategy string
	bound    int
	ceiling  int
	maxTicks int
}

func newRunCmd(c *cli) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Plan a route with one strategy and replay it tick by tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadWorld(f.world)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("strategy") {
				cfg.Search.Strategy = f.strategy
			}
			if flags.Changed("bound") {
				cfg.Search.Bound = f.bound
			}
			if flags.Changed("ceiling") {
				cfg.Search.Ceiling = f.ceiling
			}
			if flags.Changed("max-ticks") {
				cfg.Agent.MaxTicks = f.maxTicks
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			strategy, err := cfg.Strategy()
			if err != nil {
				return err
			}

			gg, ep, err := runEpisode(cmd.Context(), c, cfg, strategy)
			if err != nil {
				return err
			}
			printEpisode(cmd.OutOrStdout(), gg, ep)

			return nil
		},
	}
	cmd.Flags().StringVar(&f.world, "world", "", "path to a .toml or .yaml world file")
	cmd.Flags().StringVar(&f.strategy, "strategy", "dfs", "search strategy: dfs or iddfs")
	cmd.Flags().IntVar(&f.bound, "bound", dfs.Unbounded, "DFS depth bound, -1 for none")
	cmd.Flags().IntVar(&f.ceiling, "ceiling", dfs.DefaultCeiling, "highest IDDFS bound to try")
	cmd.Flags().IntVar(&f.maxTicks, "max-ticks", agent.DefaultMaxTicks, "tick budget for the replay")

	return cmd
}

// runEpisode builds the grid and an agent for cfg and runs one episode.
func runEpisode(ctx context.Context, c *cli, cfg world.Config, s dfs.Strategy) (*gridgraph.GridGraph, agent.Episode, error) {
	gg, err := cfg.Grid()
	if err != nil {
		return nil, agent.Episode{}, err
	}
	start, err := cfg.StartIndex(gg)
	if err != nil {
		return nil, agent.Episode{}, err
	}

	a, err := agent.New(gg,
		agent.WithStrategy(s),
		agent.WithSearchOptions(cfg.SearchOptions()...),
		agent.WithMaxTicks(cfg.Agent.MaxTicks),
		agent.WithLogger(c.log.With().Str("world", cfg.Name).Logger()),
	)
	if err != nil {
		return nil, agent.Episode{}, err
	}
	if err = a.Reset(); err != nil {
		return nil, agent.Episode{}, err
	}
	ep, err := a.Run(ctx, start)
	if err != nil {
		return nil, agent.Episode{}, fmt.Errorf("run %s: %w", s, err)
	}

	return gg, ep, nil
}

func outcome(ep agent.Episode) string {
	switch {
	case ep.ReachedGoal:
		return "reached goal"
	case ep.TimedOut:
		return "timed out"
	case ep.Search != nil && ep.Search.CeilingHit:
		return "stalled: ceiling reached"
	case ep.Search != nil && ep.Search.Exhausted:
		return "stalled: no route"
	default:
		return "stalled"
	}
}

func printEpisode(w io.Writer, gg *gridgraph.GridGraph, ep agent.Episode) {
	res := ep.Search
	fmt.Fprintf(w, "strategy: %s\n", ep.Strategy)
	fmt.Fprintf(w, "path:     %v\n", res.Path)
	fmt.Fprintf(w, "hops:     %d\n", res.Path.Hops())
	fmt.Fprintf(w, "expanded: %d\n", res.Expanded)
	if ep.Strategy == dfs.StrategyIDDFS {
		fmt.Fprintf(w, "bounds:   %d\n", res.Bounds)
	}
	fmt.Fprintf(w, "ticks:    %d\n", ep.Ticks)
	fmt.Fprintf(w, "return:   %d\n", ep.Return)
	fmt.Fprintf(w, "outcome:  %s\n", outcome(ep))
	for _, row := range gg.Render(res.Path) {
		fmt.Fprintln(w, row)
	}
}
