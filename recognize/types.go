package recognize

import "github.com/gospverify/spgraph/sptree"

// wedge is one edge of a bicomp's working multigraph during reduction: A and
// B are its current endpoints and Tree is the SP-tree recognised so far for
// whatever real path this edge now stands in for (a single real edge, to
// start).
type wedge struct {
	a, b int
	tree *sptree.Tree
}

func (e *wedge) other(v int) int {
	if e.a == v {
		return e.b
	}
	return e.a
}

// workGraph is the mutable multigraph one bicomp's reduction runs against.
// adj[v] lists every wedge currently incident to v; source/sink are the two
// vertices reduction must never eliminate.
type workGraph struct {
	adj          map[int][]*wedge
	source, sink int
}

func newWorkGraph(source, sink int) *workGraph {
	return &workGraph{adj: make(map[int][]*wedge), source: source, sink: sink}
}

func (wg *workGraph) addEdge(a, b int, tree *sptree.Tree) {
	e := &wedge{a: a, b: b, tree: tree}
	wg.adj[a] = append(wg.adj[a], e)
	wg.adj[b] = append(wg.adj[b], e)
}

func (wg *workGraph) removeEdge(e *wedge) {
	wg.adj[e.a] = removeWedge(wg.adj[e.a], e)
	wg.adj[e.b] = removeWedge(wg.adj[e.b], e)
}

func removeWedge(list []*wedge, target *wedge) []*wedge {
	out := list[:0]
	for _, e := range list {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

// vertices returns every vertex with at least one incident edge.
func (wg *workGraph) vertices() []int {
	out := make([]int, 0, len(wg.adj))
	for v, es := range wg.adj {
		if len(es) > 0 {
			out = append(out, v)
		}
	}
	return out
}
