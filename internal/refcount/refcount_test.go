package refcount_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gospverify/spgraph/graphcore"
	"github.com/gospverify/spgraph/internal/refcount"
)

func TestComponents_ConnectedGraph(t *testing.T) {
	g, err := graphcore.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	require.Equal(t, 1, refcount.Components(g, -1))
}

func TestComponents_BowtieSharedVertexRemoved(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}
	g, err := graphcore.New(5, edges)
	require.NoError(t, err)
	require.Equal(t, 2, refcount.Components(g, 0))
}

func TestIsCutVertex(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {3, 4}, {4, 0}}
	g, err := graphcore.New(5, edges)
	require.NoError(t, err)

	require.True(t, refcount.IsCutVertex(g, 0))
	require.False(t, refcount.IsCutVertex(g, 1))
}

func TestIsCutVertex_OutOfRange(t *testing.T) {
	g, err := graphcore.New(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	require.False(t, refcount.IsCutVertex(g, 9))
}
