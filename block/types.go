package block

// Bicomp describes one biconnected component in chain order.
//
// Root is the cut vertex attaching this bicomp to its predecessor in the
// chain (or the DFS root, for the first bicomp). Edge is a representative
// edge of the bicomp: during the initial DFS it is the (w,u) pair that
// closed the bicomp; after chain ordering (Decompose's final step) it is
// rewritten to (cutVertexParent, cutVertex) so recognize.Run can seed its
// per-bicomp DFS with the edge that actually advances the chain.
type Bicomp struct {
	Root int
	Edge [2]int

	// Far is the child vertex that closed this bicomp at DFS-discovery
	// time (before chain reordering touched Edge). It gives recognize.Run
	// a real, internal-to-this-bicomp second terminal for the last bicomp
	// in the chain, which has no child bicomp to supply one.
	Far int
}

// Result is the successful outcome of Decompose: the chain of bicomps in
// the order recognize.Run must process them, a cut-vertex membership set,
// and (per bicomp) the vertex membership computed via an incidental
// disjoint.Element union-find, so authenticate can ask "do these vertices
// share a bicomp" without re-running a second biconnectivity DFS.
type Result struct {
	Chain []Bicomp

	// CutVertex[v] is true iff v is a cut vertex of the graph.
	CutVertex []bool

	// bicompMembers[i] lists every vertex that participated in bicomp i,
	// including its cut-vertex boundary, deduced from the disjoint-set
	// coalescing done while closing that bicomp (see decompose.go).
	bicompMembers [][]int

	// vertexBicomps[v] lists the indices of every bicomp v participates
	// in; a cut vertex appears in two or more.
	vertexBicomps [][]int
}

// Members returns the vertex set of bicomp i (including its cut-vertex
// boundary), as discovered while closing it. Used by recognize.Run to
// restrict the whole graph down to one bicomp's edges.
func (r *Result) Members(i int) []int {
	if i < 0 || i >= len(r.bicompMembers) {
		return nil
	}
	out := make([]int, len(r.bicompMembers[i]))
	copy(out, r.bicompMembers[i])
	return out
}

// SameBicomp reports whether u and v share at least one biconnected
// component. Used by authenticate's tri-cut-vertex-bicomp cross-check
// (SPEC_FULL.md §4.3/4.6).
func (r *Result) SameBicomp(u, v int) bool {
	if u < 0 || u >= len(r.vertexBicomps) || v < 0 || v >= len(r.vertexBicomps) {
		return false
	}
	for _, i := range r.vertexBicomps[u] {
		for _, j := range r.vertexBicomps[v] {
			if i == j {
				return true
			}
		}
	}
	return false
}

// CommonBicomp returns the index of a bicomp containing all three of
// u, v, w, or -1 if none does. Used to authenticate ThreeCutVertexBicomp
// certificates against a Result built from the same graph.
func (r *Result) CommonBicomp(u, v, w int) int {
	if u < 0 || u >= len(r.vertexBicomps) {
		return -1
	}
	for _, i := range r.vertexBicomps[u] {
		if containsInt(r.vertexBicomps[v], i) && containsInt(r.vertexBicomps[w], i) {
			return i
		}
	}
	return -1
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
