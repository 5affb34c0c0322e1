package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/internal/observability"
	"github.com/katalvlaran/lvpath/internal/world"
)

const appName = "lvpath"

// cli holds state shared by every subcommand.
type cli struct {
	logLevel string
	jsonLogs bool
	log      zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Plan and replay routes over tile-map worlds with DFS or IDDFS",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := observability.InitLogger(appName, observability.LoggerConfig{
				Level: c.logLevel,
				JSON:  c.jsonLogs,
				Out:   cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			c.log = logger

			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "emit JSON log lines instead of console output")

	root.AddCommand(newRunCmd(c), newCompareCmd(c), newInspectCmd(c))

	return root
}

// loadWorld reads the world file named by path.
func loadWorld(path string) (world.Config, error) {
	if path == "" {
		return world.Config{}, errors.New("--world is required")
	}

	return world.Load(path)
}
