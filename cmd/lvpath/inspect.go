package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/gridgraph"
)

func newInspectCmd(_ *cli) *cobra.Command {
	var worldPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe a world: size, start, goals and connected regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadWorld(worldPath)
			if err != nil {
				return err
			}
			gg, err := cfg.Grid()
			if err != nil {
				return err
			}
			start, err := cfg.StartIndex(gg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "name:       %s\n", cfg.Name)
			fmt.Fprintf(w, "size:       %dx%d (%d-connected)\n", gg.Width, gg.Height, cfg.Connectivity)
			sx, sy := gg.Coordinate(start)
			fmt.Fprintf(w, "start:      (%d,%d)\n", sx, sy)

			goals := gg.Find(gridgraph.TileGoal)
			if len(goals) == 0 {
				fmt.Fprintln(w, "goal:       none")
			} else {
				gx, gy := gg.Coordinate(goals[0])
				fmt.Fprintf(w, "goal:       (%d,%d)\n", gx, gy)
				reachable := gg.SameComponent(start, goals[0])
				fmt.Fprintf(w, "reachable:  %t\n", reachable)
				if !reachable {
					_, walls, err := gg.BreachWalls(start, goals[0])
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "breach:     %d wall(s)\n", walls)
				}
			}
			fmt.Fprintf(w, "components: %d\n", len(gg.ConnectedComponents()))
			fmt.Fprintf(w, "strategy:   %s\n", cfg.Search.Strategy)

			return nil
		},
	}
	cmd.Flags().StringVar(&worldPath, "world", "", "path to a .toml or .yaml world file")

	return cmd
}
