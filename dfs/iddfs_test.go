package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/dfs"
)

// chain builds a directed chain 0 -> 1 -> ... -> n-1 over ints.
func chain(n int) dfs.OracleFuncs[int] {
	return dfs.OracleFuncs[int]{
		NeighborsFn: func(v int) []int {
			if v+1 < n {
				return []int{v + 1}
			}
			return nil
		},
	}
}

func TestIDDFS_NilOracle(t *testing.T) {
	res, err := dfs.IDDFS[int](nil, 0, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrOracleNil)
}

func TestIDDFS_InvalidCeiling(t *testing.T) {
	res, err := dfs.IDDFS[int](newGrid(2, 2), 0, 3, dfs.WithCeiling(-1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestIDDFS_StartIsGoal(t *testing.T) {
	res, err := dfs.IDDFS[int](newGrid(1, 1), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[int]{0}, res.Path)
	assert.Equal(t, 1, res.Bounds)
}

func TestIDDFS_BlockedStart(t *testing.T) {
	res, err := dfs.IDDFS[int](newGrid(3, 3, 0), 0, 8)
	require.NoError(t, err)
	assert.True(t, res.Path.Empty())
	assert.Zero(t, res.Bounds)
}

// TestIDDFS_OpenGrid: the first 4-hop route in N,E,S,W descent order goes
// along the top row and down the right column.
func TestIDDFS_OpenGrid(t *testing.T) {
	g := newGrid(3, 3)
	res, err := dfs.IDDFS[int](g, 0, 8)
	require.NoError(t, err)

	assert.Equal(t, dfs.Path[int]{0, 1, 2, 5, 8}, res.Path)
	assert.Equal(t, 5, res.Bounds) // bounds 0..4
	assert.NoError(t, dfs.ValidatePath[int](g, res.Path))
}

func TestIDDFS_BlockedCenter(t *testing.T) {
	g := newGrid(3, 3, 4)
	res, err := dfs.IDDFS[int](g, 0, 8)
	require.NoError(t, err)
	assert.NotContains(t, res.Path, 4)
	assert.Equal(t, 4, res.Path.Hops())
	assert.NoError(t, dfs.ValidatePath[int](g, res.Path))
}

// TestIDDFS_ExhaustionWalledIn covers scenario E: the start is walled in, so
// bound 2 proves that no larger bound can help.
func TestIDDFS_ExhaustionWalledIn(t *testing.T) {
	res, err := dfs.IDDFS[int](newGrid(3, 3, 1, 3), 0, 8, dfs.WithCeiling(1000))
	require.NoError(t, err)
	assert.True(t, res.Path.Empty())
	assert.True(t, res.Exhausted)
	assert.False(t, res.CeilingHit)
	assert.Equal(t, 3, res.Bounds)
}

// TestIDDFS_ExhaustionDirectedChain: a dead end one past the last node
// reports that it cannot go deeper.
func TestIDDFS_ExhaustionDirectedChain(t *testing.T) {
	res, err := dfs.IDDFS[int](chain(3), 0, 9)
	require.NoError(t, err)
	assert.True(t, res.Path.Empty())
	assert.True(t, res.Exhausted)
	assert.Equal(t, 4, res.Bounds)
}

// TestIDDFS_UndirectedRunsToCeiling: with no cycle check, walks can bounce
// between two nodes forever, so exhaustion is never proved.
func TestIDDFS_UndirectedRunsToCeiling(t *testing.T) {
	o := adjacency(map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})
	res, err := dfs.IDDFS[string](o, "a", "z", dfs.WithCeiling(10))
	require.NoError(t, err)
	assert.True(t, res.Path.Empty())
	assert.True(t, res.CeilingHit)
	assert.False(t, res.Exhausted)
	assert.Equal(t, 11, res.Bounds)
}

func TestIDDFS_CeilingZero(t *testing.T) {
	res, err := dfs.IDDFS[int](newGrid(3, 1), 0, 2, dfs.WithCeiling(0))
	require.NoError(t, err)
	assert.True(t, res.Path.Empty())
	assert.True(t, res.CeilingHit)
	assert.Equal(t, 1, res.Bounds)
}

// TestIDDFS_DescentOrder contrasts IDDFS with FindPath on the same graph:
// IDDFS follows oracle order, FindPath its reverse.
func TestIDDFS_DescentOrder(t *testing.T) {
	o := adjacency(map[string][]string{
		"0": {"1", "2"},
		"1": {"3"},
		"2": {"3"},
	})
	res, err := dfs.IDDFS[string](o, "0", "3")
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[string]{"0", "1", "3"}, res.Path)
}

// TestIDDFS_BlockedInteriorPrunes: a blocked node above the leaves prunes its
// subtree, so the route through it is never taken.
func TestIDDFS_BlockedInteriorPrunes(t *testing.T) {
	o := adjacency(map[string][]string{
		"s": {"x", "y"},
		"x": {"g"},
		"y": {"m"},
		"m": {"g"},
	}, "x")
	res, err := dfs.IDDFS[string](o, "s", "g")
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[string]{"s", "y", "m", "g"}, res.Path)
}

// TestIDDFS_ShortestRoute: a long branch listed first does not win over a
// shorter branch listed second.
func TestIDDFS_ShortestRoute(t *testing.T) {
	o := adjacency(map[string][]string{
		"s":  {"a1", "b1"},
		"a1": {"a2"},
		"a2": {"a3"},
		"a3": {"g"},
		"b1": {"g"},
	})
	res, err := dfs.IDDFS[string](o, "s", "g")
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[string]{"s", "b1", "g"}, res.Path)

	dfsRes, err := dfs.FindPath[string](o, "s", "g")
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[string]{"s", "b1", "g"}, dfsRes.Path)
}

// TestIDDFS_DeepChain runs thousands of bounds without native recursion.
func TestIDDFS_DeepChain(t *testing.T) {
	const n = 3000
	res, err := dfs.IDDFS[int](chain(n), 0, n-1)
	require.NoError(t, err)
	require.Len(t, res.Path, n)
	assert.Equal(t, 0, res.Path[0])
	assert.Equal(t, n-1, res.Path[n-1])
	assert.Equal(t, n, res.Bounds)
}

func TestIDDFS_OnBoundHook(t *testing.T) {
	errStop := errors.New("wall clock exceeded")
	var seen []int
	o := adjacency(map[string][]string{"a": {"b"}, "b": {"a"}})

	res, err := dfs.IDDFS[string](o, "a", "z", dfs.WithOnBound(func(bound int) error {
		seen = append(seen, bound)
		if bound == 3 {
			return errStop
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, errStop)
	assert.ErrorContains(t, err, "OnBound hook at bound 3")
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
	assert.Equal(t, 3, res.Bounds)
	assert.True(t, res.Path.Empty())
}

func TestIDDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.IDDFS[int](newGrid(3, 3), 0, 8, dfs.WithContext(ctx))
	assert.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Bounds)
}

// TestIDDFS_LeafIgnoresTraversable: the goal is accepted at the bound even
// when it is blocked, since leaves are not checked.
func TestIDDFS_LeafIgnoresTraversable(t *testing.T) {
	o := adjacency(map[string][]string{"s": {"g"}}, "g")
	res, err := dfs.IDDFS[string](o, "s", "g")
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[string]{"s", "g"}, res.Path)
}

func TestIDDFS_StringNodes(t *testing.T) {
	succ := make(map[string][]string)
	for i := 0; i < 5; i++ {
		succ["n"+strconv.Itoa(i)] = []string{"n" + strconv.Itoa(i+1)}
	}
	res, err := dfs.IDDFS[string](adjacency(succ), "n0", "n5")
	require.NoError(t, err)
	assert.Equal(t, dfs.Path[string]{"n0", "n1", "n2", "n3", "n4", "n5"}, res.Path)
}
