// Command lvpath plans and replays routes over tile-map worlds.
//
//	lvpath run --world worlds/maze.toml --strategy dfs
//	lvpath compare --world worlds/walled.yaml
//	lvpath inspect --world worlds/open.toml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
