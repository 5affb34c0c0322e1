package agent_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpath/agent"
	"github.com/katalvlaran/lvpath/dfs"
	"github.com/katalvlaran/lvpath/gridgraph"
)

// ExampleAgent_Run plans with IDDFS around a wall and replays the route.
func ExampleAgent_Run() {
	gg, _ := gridgraph.ParseRows([]string{
		"S#G",
		"...",
	}, gridgraph.DefaultGridOptions())

	a, _ := agent.New(gg, agent.WithStrategy(dfs.StrategyIDDFS))
	if err := a.Reset(); err != nil {
		fmt.Println("error:", err)
		return
	}
	ep, err := a.Run(context.Background(), gg.Find(gridgraph.TileStart)[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ep.Search.Path, ep.Ticks, ep.Return, ep.ReachedGoal)

	// Output:
	// [0 3 4 5 2] 5 -4 true
}
