package sptree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospverify/spgraph/sptree"
)

// treeCmpOpts allows cmp to reach Tree's unexported fields: two trees built
// by unrelated call paths must be structurally identical, not merely equal
// on their exported accessor surface.
var treeCmpOpts = cmp.AllowUnexported(sptree.Tree{})

func TestCompose_StructurallyIdenticalRegardlessOfBuildPath(t *testing.T) {
	direct := sptree.Leaf(0, 1).Compose(sptree.Leaf(1, 2), sptree.Series)

	leftAgain := sptree.Leaf(0, 1)
	rightAgain := sptree.Leaf(1, 2)
	rebuilt := leftAgain.Compose(rightAgain, sptree.Series)

	if diff := cmp.Diff(direct, rebuilt, treeCmpOpts); diff != "" {
		t.Errorf("trees built independently from equal leaves diverge (-want +got):\n%s", diff)
	}
}

func TestLeaf(t *testing.T) {
	l := sptree.Leaf(1, 2)
	assert.Equal(t, 1, l.Source())
	assert.Equal(t, 2, l.Sink())
	assert.True(t, l.IsLeaf())
}

func TestCompose_Series(t *testing.T) {
	a := sptree.Leaf(0, 1)
	b := sptree.Leaf(1, 2)
	s := a.Compose(b, sptree.Series)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Source())
	assert.Equal(t, 2, s.Sink())
	assert.Equal(t, sptree.Series, s.Kind())
	assert.Equal(t, 3, s.CountNodes())
}

func TestCompose_Parallel(t *testing.T) {
	a := sptree.Leaf(0, 1)
	b := sptree.Leaf(0, 1)
	p := a.Compose(b, sptree.Parallel)
	assert.Equal(t, 0, p.Source())
	assert.Equal(t, 1, p.Sink())
}

func TestCompose_NilHandling(t *testing.T) {
	var empty *sptree.Tree
	b := sptree.Leaf(0, 1)
	assert.Same(t, b, empty.Compose(b, sptree.Series))

	a := sptree.Leaf(0, 1)
	assert.Same(t, a, a.Compose(nil, sptree.Series))
}

func TestLCompose_PutsOtherOnLeft(t *testing.T) {
	tail := sptree.Leaf(0, 1)
	body := sptree.Leaf(1, 2)
	s := body.LCompose(tail, sptree.Series)
	assert.Same(t, tail, s.Left())
	assert.Same(t, body, s.Right())
	assert.Equal(t, 0, s.Source())
	assert.Equal(t, 2, s.Sink())
}

func TestUnderlyingTreePathSource(t *testing.T) {
	a := sptree.Leaf(0, 1)
	b := sptree.Leaf(1, 2)
	s := a.Compose(b, sptree.Series)
	c := sptree.Leaf(0, 2)
	p := s.Compose(c, sptree.Parallel)
	assert.Equal(t, 1, p.UnderlyingTreePathSource())
}

func TestDeantiparallelize_RewritesToParallel(t *testing.T) {
	left := sptree.Leaf(0, 1)
	right := sptree.Leaf(1, 0)
	ap := left.Compose(right, sptree.Antiparallel)
	ap.Deantiparallelize()
	assert.Equal(t, sptree.Parallel, ap.Kind())
	assert.Equal(t, 0, ap.Source())
	assert.Equal(t, 1, ap.Sink())
	assert.Equal(t, 0, ap.Left().Source())
	assert.Equal(t, 1, ap.Left().Sink())
	assert.Equal(t, 0, ap.Right().Source())
	assert.Equal(t, 1, ap.Right().Sink())
}

func TestDeantiparallelize_Idempotent(t *testing.T) {
	left := sptree.Leaf(0, 1)
	right := sptree.Leaf(1, 0)
	ap := left.Compose(right, sptree.Antiparallel)
	ap.Deantiparallelize()
	snapshot := ap.CountNodes()
	ap.Deantiparallelize()
	assert.Equal(t, snapshot, ap.CountNodes())
	assert.Equal(t, sptree.Parallel, ap.Kind())
}

func TestDestroy_CountsAllNodes(t *testing.T) {
	a := sptree.Leaf(0, 1)
	b := sptree.Leaf(1, 2)
	s := a.Compose(b, sptree.Series)
	c := sptree.Leaf(0, 2)
	p := s.Compose(c, sptree.Parallel)
	assert.Equal(t, 5, p.Destroy())
}
