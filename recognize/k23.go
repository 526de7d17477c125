package recognize

import (
	"github.com/gospverify/spgraph/certificate"
	"github.com/gospverify/spgraph/graphcore"
	"github.com/gospverify/spgraph/sptree"
)

// detectK23 checks one bicomp's induced subgraph for a K2,3 subdivision:
// two vertices joined by three internally-disjoint paths of at least two
// real edges each. Plain series-parallel reduction (reduce, in
// recognize.go) cannot be trusted to surface this on its own: reduction
// protects the bicomp's own source and sink from series-reduction, since
// they must survive as the final tree's two endpoints, and a K2,3 whose
// three "spoke" vertices happen to include one of those two terminals
// would never get series-reduced into a comparable parallel group — it
// would sit there as one spoke short, reduction would finish "successfully"
// around it, and the subdivision would go unreported. A K2,3 shape is a
// property of the bicomp's own edges, independent of terminal choice, so
// it has to be found independently of reduction: suppress every degree-2
// vertex without exception (no source/sink exemption) until none remain,
// then look for a pair joined by three or more of the resulting wedges.
func detectK23(g *graphcore.Graph, members []int) *certificate.K23 {
	wg := buildWorkGraph(g, members, -1, -1)
	for contractDegreeTwo(wg) {
	}
	return findParallelK23(wg)
}

// contractDegreeTwo suppresses one arbitrary degree-2 vertex, stopping
// once only two vertices remain so the last surviving pair's own parallel
// wedges stay intact for findParallelK23 to inspect.
func contractDegreeTwo(wg *workGraph) bool {
	if len(wg.vertices()) <= 2 {
		return false
	}
	return seriesReduceWhere(wg, func(int) bool { return false })
}

// findParallelK23 looks for two vertices joined by three or more parallel
// wedges that each carry at least two real edges (sptree.Edge is the only
// leaf kind, so a wedge whose tree is anything else came from at least one
// series or parallel composition): a bare leaf wedge is a single edge and
// never counts toward the three. Vertices and their "other" endpoints are
// walked in ascending order so the certificate returned is deterministic.
func findParallelK23(wg *workGraph) *certificate.K23 {
	for _, v := range sortedVertices(wg) {
		byOther := make(map[int][]*wedge)
		var others []int
		for _, e := range wg.adj[v] {
			o := e.other(v)
			if o <= v {
				continue // process each unordered pair once, from its smaller side
			}
			if _, ok := byOther[o]; !ok {
				others = append(others, o)
			}
			byOther[o] = append(byOther[o], e)
		}
		insertionSortInts(others)

		for _, o := range others {
			var nonTrivial []*wedge
			for _, e := range byOther[o] {
				if e.tree.Kind() != sptree.Edge {
					nonTrivial = append(nonTrivial, e)
				}
			}
			if len(nonTrivial) < 3 {
				continue
			}
			var paths [3]certificate.Path
			for i := 0; i < 3; i++ {
				paths[i] = wedgePath(nonTrivial[i], v)
			}
			return &certificate.K23{A: v, B: o, Paths: paths}
		}
	}
	return nil
}
