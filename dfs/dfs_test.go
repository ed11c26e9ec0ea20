package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weaver/core"
	"github.com/katalvlaran/weaver/dfs"
)

// buildChain creates a chain graph of length n: 0–1–2–…–n-1
func buildChain(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1)
	}

	return g.Freeze()
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1),
// rooted at 0 with children 2i+1 and 2i+2.
func buildBinaryTree(depth int) *core.Graph {
	n := (1 << depth) - 1
	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		_ = g.AddEdge((i-1)/2, i)
	}

	return g.Freeze()
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(2)
	res, err := dfs.DFS(g, 2)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	res, err := dfs.DFS(core.NewGraph(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited(0))
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, 0, res.Parent[0], "root is its own parent")
}

func TestDFS_ChainAndDepthParent(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), 0)
	require.NoError(t, err)
	// Post-order: 2, 1, 0
	assert.Equal(t, []int{2, 1, 0}, res.Order)
	assert.Equal(t, 1, res.Parent[2])
	assert.Equal(t, 2, res.Depth[2])
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited(2), "disconnected vertex should not be visited")
	assert.Equal(t, -1, res.Parent[2])
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(3)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited(2))

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	// 0 – 1, 0 – 2
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v int) bool { return v != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_HookOrder(t *testing.T) {
	var pre, post []int
	_, err := dfs.DFS(buildBinaryTree(3), 0,
		dfs.WithOnVisit(func(v int) error { pre = append(pre, v); return nil }),
		dfs.WithOnExit(func(v int) error { post = append(post, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 2, 5, 6}, pre)
	assert.Equal(t, []int{3, 4, 1, 5, 6, 2, 0}, post)
}

func TestDFS_HookErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := dfs.DFS(buildChain(4), 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	res, err := dfs.DFS(buildChain(4), 0, dfs.WithOnExit(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{3}, res.Order, "only vertices finished before the failure are recorded")
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(3, 4))

	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 4, 3}, res.Order)
	for _, root := range []int{0, 2, 3} {
		assert.Equal(t, root, res.Parent[root])
		assert.Equal(t, 0, res.Depth[root])
	}
}

func TestDFS_DeepChainIsIterative(t *testing.T) {
	const n = 200000
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(buildChain(10), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
