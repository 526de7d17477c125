package recognize

import (
	"github.com/gospverify/spgraph/certificate"
)

// findQuadObstruction inspects wg's irreducible core (no more series or
// parallel reductions apply, more than one wedge remains; detectK23 has
// already ruled out a K2,3 shape for this bicomp) and looks for four
// vertices that witness a K4 subdivision, trying every 4-subset of verts in
// ascending order for determinism.
func findQuadObstruction(wg *workGraph, verts []int, source, sink int, fake bool) certificate.Certificate {
	n := len(verts)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					quad := [4]int{verts[i], verts[j], verts[k], verts[l]}
					if cert := tryQuad(wg, quad, source, sink, fake); cert != nil {
						return cert
					}
				}
			}
		}
	}
	return nil
}

// tryQuad checks one candidate set of four vertices against the six pairs
// spec.md's K4 certificate expects, in the fixed order (A,B) (A,C) (A,D)
// (B,C) (B,D) (C,D). It looks up each pair's wedge directly rather than
// searching for a path: by the time reduction is stuck, parallelReduce has
// already merged every pair of wedges sharing two endpoints down to at
// most one, and seriesReduce has eliminated every non-terminal degree-2
// vertex, so any two core vertices that are connected at all are connected
// by exactly one wedge — making every path found here automatically
// internally disjoint from every other, with no separate check needed.
//
// The one pair allowed to have no wedge at all is (source, sink), and only
// when fake is set: an intermediate bicomp's sink is borrowed from the
// next bicomp in the chain and need not be a real neighbor of source
// within this bicomp (spec.md §4.4.c's "fake edge"). When that's exactly
// the missing pair, the obstruction is a Theta4 around the two terminals
// rather than a K4: they stand in as the certificate's two cut vertices
// (source is always a cut vertex by construction, and so is an
// intermediate bicomp's sink, since it is itself the next bicomp's Root),
// and the other two quad vertices take the certificate's a, b.
func tryQuad(wg *workGraph, quad [4]int, source, sink int, fake bool) certificate.Certificate {
	pairs := [6][2]int{
		{quad[0], quad[1]}, {quad[0], quad[2]}, {quad[0], quad[3]},
		{quad[1], quad[2]}, {quad[1], quad[3]}, {quad[2], quad[3]},
	}

	var wedges [6]*wedge
	missing := -1
	for idx, p := range pairs {
		w := findWedge(wg, p[0], p[1])
		wedges[idx] = w
		if w == nil {
			if missing != -1 {
				return nil // more than one absent pair: not a clean quad
			}
			missing = idx
		}
	}

	if missing == -1 {
		var paths [6]certificate.Path
		for idx, p := range pairs {
			paths[idx] = wedgePath(wedges[idx], p[0])
		}
		return &certificate.K4{A: quad[0], B: quad[1], C: quad[2], D: quad[3], Paths: paths}
	}

	if !fake {
		return nil
	}
	mp := pairs[missing]
	if !((mp[0] == source && mp[1] == sink) || (mp[0] == sink && mp[1] == source)) {
		return nil
	}

	var others []int
	for _, v := range quad {
		if v != source && v != sink {
			others = append(others, v)
		}
	}
	a, b := others[0], others[1]
	c1a, c2a := findWedge(wg, source, a), findWedge(wg, sink, a)
	c1b, c2b := findWedge(wg, source, b), findWedge(wg, sink, b)
	ab := findWedge(wg, a, b)
	if c1a == nil || c2a == nil || c1b == nil || c2b == nil || ab == nil {
		return nil
	}
	return &certificate.Theta4{
		C1: source, C2: sink, A: a, B: b,
		Paths: [5]certificate.Path{
			wedgePath(c1a, source), wedgePath(c2a, sink),
			wedgePath(c1b, source), wedgePath(c2b, sink),
			wedgePath(ab, a),
		},
	}
}

// fallbackK4 is the last resort when no quad in the stuck core satisfies
// tryQuad: it names the four highest-degree core vertices and fills in
// whatever direct wedges exist between them. Reached only if this
// recogniser's reduction and obstruction search have a gap; kept so Run
// always returns a certificate (for authenticate to reject) rather than
// panicking.
func fallbackK4(wg *workGraph, verts []int) certificate.Certificate {
	if len(verts) < 4 {
		return &certificate.K4{}
	}
	byDegree := append([]int(nil), verts...)
	for i := 0; i < len(byDegree); i++ {
		for j := i + 1; j < len(byDegree); j++ {
			if len(wg.adj[byDegree[j]]) > len(wg.adj[byDegree[i]]) {
				byDegree[i], byDegree[j] = byDegree[j], byDegree[i]
			}
		}
	}
	a, b, c, d := byDegree[0], byDegree[1], byDegree[2], byDegree[3]
	pairs := [6][2]int{{a, b}, {a, c}, {a, d}, {b, c}, {b, d}, {c, d}}
	var paths [6]certificate.Path
	for idx, p := range pairs {
		if w := findWedge(wg, p[0], p[1]); w != nil {
			paths[idx] = wedgePath(w, p[0])
		}
	}
	return &certificate.K4{A: a, B: b, C: c, D: d, Paths: paths}
}
