package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/agent"
	"github.com/katalvlaran/lvpath/dfs"
)

func newCompareCmd(c *cli) *cobra.Command {
	var worldPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run DFS and IDDFS on the same world side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadWorld(worldPath)
			if err != nil {
				return err
			}

			strategies := []dfs.Strategy{dfs.StrategyDFS, dfs.StrategyIDDFS}
			episodes := make([]agent.Episode, len(strategies))

			g, ctx := errgroup.WithContext(cmd.Context())
			for i, s := range strategies {
				i, s := i, s
				g.Go(func() error {
					_, ep, err := runEpisode(ctx, c, cfg, s)
					if err != nil {
						return err
					}
					episodes[i] = ep
					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "STRATEGY\tHOPS\tEXPANDED\tBOUNDS\tTICKS\tOUTCOME")
			for _, ep := range episodes {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n",
					ep.Strategy, ep.Search.Path.Hops(), ep.Search.Expanded,
					ep.Search.Bounds, ep.Ticks, outcome(ep))
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&worldPath, "world", "", "path to a .toml or .yaml world file")

	return cmd
}
