package recognize

import (
	"github.com/gospverify/spgraph/block"
	"github.com/gospverify/spgraph/certificate"
	"github.com/gospverify/spgraph/graphcore"
	"github.com/gospverify/spgraph/sptree"
)

// Run recognises series-parallel structure bicomp by bicomp, in chain
// order, and stitches the per-bicomp trees into one global decomposition
// (spec.md §4.4). Two independent checks run per bicomp: detectK23 first,
// against the bicomp's real edges with no terminal exemption (a K2,3
// subdivision survives regardless of which two vertices this bicomp's own
// reduction will later treat as source and sink, so it has to be ruled out
// before, not during, that reduction — see detectK23's doc comment); then
// the terminal-respecting series/parallel reduction that either collapses
// to one edge or gets stuck on an irreducible core, which
// findQuadObstruction classifies as K4 or, when the terminal pair is
// itself a chain-stitching virtual pair, as Theta4. Run returns
// (tree, nil) on success or (nil, cert) on the first bicomp where either
// check fails.
func Run(g *graphcore.Graph, res *block.Result) (*sptree.Tree, certificate.Certificate) {
	if len(res.Chain) == 0 {
		return nil, nil
	}

	var global *sptree.Tree
	for i, bc := range res.Chain {
		members := res.Members(i)
		source, sink := bc.Root, bc.Far
		fake := i < len(res.Chain)-1
		if fake {
			sink = res.Chain[i+1].Root
		}

		if k23 := detectK23(g, members); k23 != nil {
			return nil, k23
		}

		wg := buildWorkGraph(g, members, source, sink)
		tree, cert := reduce(wg, source, sink, fake)
		if cert != nil {
			return nil, cert
		}

		if global == nil {
			global = tree
		} else {
			global = global.Compose(tree, sptree.Series)
		}
	}

	return global, nil
}

// buildWorkGraph seeds one bicomp's working multigraph with a leaf edge per
// real edge whose both endpoints lie in members.
func buildWorkGraph(g *graphcore.Graph, members []int, source, sink int) *workGraph {
	inBicomp := make(map[int]bool, len(members))
	for _, v := range members {
		inBicomp[v] = true
	}

	wg := newWorkGraph(source, sink)
	seen := make(map[[2]int]bool)
	for _, u := range members {
		for _, v := range g.Neighbors(u) {
			if !inBicomp[v] || v <= u {
				continue
			}
			key := [2]int{u, v}
			if seen[key] {
				continue
			}
			seen[key] = true
			wg.addEdge(u, v, sptree.Leaf(u, v))
		}
	}
	return wg
}

// reduce applies series and parallel reductions (Duffin's classical
// series-parallel reduction, grounded in spec.md §4.4's composition
// primitives) until the bicomp collapses to the single edge (source,sink)
// or no further reduction applies. The latter means the working graph's
// irreducible core contains a K4 or Theta4 obstruction; findQuadObstruction
// (with fallbackK4 as a last resort) builds the certificate. detectK23 has
// already ruled out K2,3 for this bicomp before reduce is ever called, so
// this loop never needs to re-check for it.
func reduce(wg *workGraph, source, sink int, fake bool) (*sptree.Tree, certificate.Certificate) {
	for {
		if seriesReduce(wg, source, sink) {
			continue
		}
		if parallelReduce(wg) {
			continue
		}
		break
	}

	if final := singleEdge(wg, source, sink); final != nil {
		return final.tree, nil
	}

	verts := sortedVertices(wg)
	if cert := findQuadObstruction(wg, verts, source, sink, fake); cert != nil {
		return nil, cert
	}
	return nil, fallbackK4(wg, verts)
}

// singleEdge returns the lone remaining wedge between source and sink, or
// nil unless the whole working graph has reduced to exactly one edge.
func singleEdge(wg *workGraph, source, sink int) *wedge {
	verts := wg.vertices()
	if len(verts) != 2 {
		return nil
	}
	es := wg.adj[source]
	if len(es) != 1 {
		return nil
	}
	e := es[0]
	if e.other(source) != sink {
		return nil
	}
	return e
}

// seriesReduceWhere merges the two wedges of any vertex with exactly two
// incident wedges (and for which skip reports false) into one wedge,
// series-composing their trees. Returns true if it performed a reduction.
// Vertices are visited in ascending order so the choice of which one
// reduces first never depends on Go's map iteration order.
func seriesReduceWhere(wg *workGraph, skip func(int) bool) bool {
	for _, v := range sortedVertices(wg) {
		es := wg.adj[v]
		if skip(v) || len(es) != 2 {
			continue
		}
		e1, e2 := es[0], es[1]
		a, b := e1.other(v), e2.other(v)
		if a == b {
			// A 2-cycle through v; handled by parallelReduce once exposed.
			continue
		}

		t1, t2 := e1.tree, e2.tree
		if t1.Sink() != v {
			t1 = reorient(t1, a, v)
		}
		if t2.Source() != v {
			t2 = reorient(t2, v, b)
		}
		merged := t1.Compose(t2, sptree.Series)

		wg.removeEdge(e1)
		wg.removeEdge(e2)
		wg.addEdge(a, b, merged)
		return true
	}
	return false
}

// seriesReduce is seriesReduceWhere restricted to non-terminal vertices:
// source and sink are the bicomp's own 2-terminal pair and must survive
// until the final parallel merge produces the single (source,sink) edge.
func seriesReduce(wg *workGraph, source, sink int) bool {
	return seriesReduceWhere(wg, func(v int) bool { return v == source || v == sink })
}

// parallelReduce merges the first pair of parallel wedges it finds between
// the same two vertices into one wedge, parallel-composing their trees.
// Both the outer vertex and the grouped "other" vertices are walked in
// ascending order for the same determinism reason as seriesReduceWhere.
func parallelReduce(wg *workGraph) bool {
	for _, v := range sortedVertices(wg) {
		es := wg.adj[v]
		byOther := make(map[int][]*wedge, len(es))
		var others []int
		for _, e := range es {
			o := e.other(v)
			if _, ok := byOther[o]; !ok {
				others = append(others, o)
			}
			byOther[o] = append(byOther[o], e)
		}
		insertionSortInts(others)
		for _, o := range others {
			group := byOther[o]
			if len(group) < 2 {
				continue
			}
			t1, t2 := group[0].tree, group[1].tree
			if t1.Source() != v {
				t1 = reorient(t1, v, o)
			}
			if t2.Source() != v {
				t2 = reorient(t2, v, o)
			}
			merged := t1.Compose(t2, sptree.Parallel)
			wg.removeEdge(group[0])
			wg.removeEdge(group[1])
			wg.addEdge(v, o, merged)
			return true
		}
	}
	return false
}

// reorient returns t with Source()==from and Sink()==to, flipping it via
// Tree.Reverse when it currently runs the other way. A tree already
// oriented correctly is returned unchanged.
func reorient(t *sptree.Tree, from, to int) *sptree.Tree {
	if t.Source() == from && t.Sink() == to {
		return t
	}
	return t.Reverse()
}
