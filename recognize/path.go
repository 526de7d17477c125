package recognize

import (
	"github.com/gospverify/spgraph/certificate"
	"github.com/gospverify/spgraph/sptree"
)

// extractPath flattens t into the real edges it represents, source to sink:
// a leaf is its own edge; a Series node is its left path followed by its
// right path; any other kind picks its left child arbitrarily (both
// children of a Parallel/Antiparallel/Dangling node share the same two
// endpoints, so either is a valid connecting path for certificate purposes).
func extractPath(t *sptree.Tree) certificate.Path {
	if t == nil {
		return nil
	}
	if t.IsLeaf() {
		return certificate.Path{{From: t.Source(), To: t.Sink()}}
	}
	if t.Kind() == sptree.Series {
		return append(extractPath(t.Left()), extractPath(t.Right())...)
	}
	return extractPath(t.Left())
}

func reversedPath(p certificate.Path) certificate.Path {
	out := make(certificate.Path, len(p))
	for i, e := range p {
		out[len(p)-1-i] = certificate.PathEdge{From: e.To, To: e.From}
	}
	return out
}

// wedgePath returns e's real-edge path oriented to start at from.
func wedgePath(e *wedge, from int) certificate.Path {
	p := extractPath(e.tree)
	if e.tree.Source() == from {
		return p
	}
	return reversedPath(p)
}

// findWedge returns the wedge directly joining u and v, or nil.
func findWedge(wg *workGraph, u, v int) *wedge {
	for _, e := range wg.adj[u] {
		if e.other(u) == v {
			return e
		}
	}
	return nil
}
