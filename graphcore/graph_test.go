package graphcore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospverify/spgraph/graphcore"
)

func TestNew_Path(t *testing.T) {
	g, err := graphcore.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.E())
	assert.True(t, g.Adjacent(0, 1))
	assert.True(t, g.Adjacent(1, 0))
	assert.False(t, g.Adjacent(0, 2))
}

func TestNew_RejectsSelfLoop(t *testing.T) {
	_, err := graphcore.New(2, [][2]int{{0, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graphcore.ErrSelfLoop))
}

func TestNew_RejectsDuplicateEdge(t *testing.T) {
	_, err := graphcore.New(2, [][2]int{{0, 1}, {1, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graphcore.ErrDuplicateEdge))
}

func TestNew_RejectsOutOfRange(t *testing.T) {
	_, err := graphcore.New(2, [][2]int{{0, 2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graphcore.ErrVertexOutOfRange))
}

func TestNew_RejectsNegativeSize(t *testing.T) {
	_, err := graphcore.New(-1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graphcore.ErrNegativeSize))
}

func TestEdgeList_RoundTrips(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	g, err := graphcore.New(4, edges)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}}, g.EdgeList())
}

func TestSortedNeighbors(t *testing.T) {
	g, err := graphcore.New(4, [][2]int{{0, 3}, {0, 1}, {0, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, g.SortedNeighbors(0))
}
