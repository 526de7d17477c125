package block

import (
	"github.com/spakin/disjoint"

	"github.com/gospverify/spgraph/certificate"
	"github.com/gospverify/spgraph/graphcore"
)

// dfsFrame is one entry of the explicit DFS work stack: the vertex being
// explored, the index of the next neighbor to consider, and whether the
// single edge back to parent has already been consumed (an undirected
// simple graph lists that edge exactly once in the child's adjacency).
type dfsFrame struct {
	v          int
	nidx       int
	parentUsed bool
}

// Decompose runs the single iterative DFS of spec.md §4.3 from vertex 0.
// On success it returns a *Result whose Chain field has already been put
// through orderChain, and a nil certificate. On either structural obstruction it returns (nil, cert)
// where cert is a *certificate.ThreeComponentCut or
// *certificate.ThreeCutVertexBicomp.
func Decompose(g *graphcore.Graph) (*Result, certificate.Certificate) {
	n := g.N()
	if n == 0 {
		return &Result{}, nil
	}

	dfsNo := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	cutVerts := make([]int, n)
	for i := 0; i < n; i++ {
		dfsNo[i], parent[i], cutVerts[i] = -1, -1, -1
	}

	var vstack []int
	var bicomps []Bicomp
	var bicompMembers [][]int
	vertexBicomps := make([][]int, n)

	counter := 0
	dfsNo[0] = counter
	low[0] = counter
	counter++
	vstack = append(vstack, 0)

	stack := []dfsFrame{{v: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.v
		nbrs := g.Neighbors(v)

		if top.nidx >= len(nbrs) {
			// Done exploring v: pop and propagate low[] to the caller frame.
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			w := stack[len(stack)-1].v
			if low[v] < low[w] {
				low[w] = low[v]
			}
			if low[v] >= dfsNo[w] {
				idx := len(bicomps)
				bicomps = append(bicomps, Bicomp{Root: w, Edge: [2]int{w, v}, Far: v})

				members := coalesceBicomp(vstack, v, w)
				vstack = vstack[:len(vstack)-(len(members)-1)] // -1: w was appended but never pushed
				bicompMembers = append(bicompMembers, members)
				for _, vtx := range members {
					vertexBicomps[vtx] = append(vertexBicomps[vtx], idx)
				}

				if cutVerts[w] != -1 {
					return nil, &certificate.ThreeComponentCut{V: w}
				}
				cutVerts[w] = idx
			}
			continue
		}

		u := nbrs[top.nidx]
		top.nidx++

		switch {
		case u == parent[v] && !top.parentUsed:
			top.parentUsed = true // consume the single tree-edge-back-to-parent occurrence
		case dfsNo[u] == -1:
			parent[u] = v
			dfsNo[u] = counter
			low[u] = counter
			counter++
			vstack = append(vstack, u)
			stack = append(stack, dfsFrame{v: u})
		case dfsNo[u] < dfsNo[v]:
			if dfsNo[u] < low[v] {
				low[v] = dfsNo[u]
			}
		}
	}

	result := &Result{
		CutVertex:     make([]bool, n),
		bicompMembers: bicompMembers,
		vertexBicomps: vertexBicomps,
	}
	for v := 0; v < n; v++ {
		// The DFS root closes exactly one bicomp here (a second closing
		// returned above), so it never separates the graph.
		result.CutVertex[v] = cutVerts[v] != -1 && v != 0
	}

	if cert := detectThreeCutVertexBicomp(bicomps, cutVerts); cert != nil {
		return nil, cert
	}

	result.Chain = orderChain(bicomps, cutVerts, parent)
	return result, nil
}

// coalesceBicomp pops the vertex range [..., v] off vstack (v inclusive)
// plus the boundary vertex w, and unions them with a fresh disjoint-set
// scratch so that a structural self-check (every popped vertex reaches the
// same representative) can run before the membership list is trusted. The
// disjoint.Element universe is allocated fresh per call, so grouping two
// different bicomps that merely share a cut vertex can never contaminate
// each other (spgraph's SameBicomp would otherwise be unsound).
func coalesceBicomp(vstack []int, v, w int) []int {
	var popped []int
	for i := len(vstack) - 1; i >= 0; i-- {
		popped = append(popped, vstack[i])
		if vstack[i] == v {
			break
		}
	}
	popped = append(popped, w)

	elems := make([]*disjoint.Element, len(popped))
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}
	for i := 1; i < len(elems); i++ {
		disjoint.Union(elems[0], elems[i])
	}
	if debugAssertions {
		root := elems[0].Find()
		for _, e := range elems {
			if e.Find() != root {
				panic("block: disjoint-set coalescing did not converge on one bicomp")
			}
		}
	}

	return popped
}

// detectThreeCutVertexBicomp implements spec.md §4.3's second obstruction:
// walk each bicomp's attachment vertex up to find its parent bicomp; if any
// bicomp acquires more than two children (or the root bicomp more than two
// root-children), that bicomp contains three cut vertices and the whole
// graph cannot reduce to a single chain.
func detectThreeCutVertexBicomp(bicomps []Bicomp, cutVerts []int) certificate.Certificate {
	n := len(bicomps)
	if n == 0 {
		return nil
	}
	childrenOf := make(map[int][]int) // parent bicomp index -> attachment vertices of its children
	for i := 0; i < n-1; i++ {
		root := bicomps[i].Root
		j := cutVerts[root]
		if j == i {
			// root is not (yet) recorded as owned by a different bicomp:
			// i is itself the first (and, for a clean chain, only) bicomp
			// attached at root — it has no parent bicomp to register under.
			continue
		}
		childrenOf[j] = append(childrenOf[j], root)
	}
	for _, attachments := range childrenOf {
		distinct := distinctInts(attachments)
		if len(distinct) > 2 {
			return &certificate.ThreeCutVertexBicomp{C1: distinct[0], C2: distinct[1], C3: distinct[2]}
		}
	}
	return nil
}

func distinctInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// orderChain implements spec.md §4.3's chain-ordering step: identify the
// two bicomps with no children, reverse the subarray between the interior
// one and the last one, and rewrite each bicomp's Edge to
// (cutVertexParent, cutVertex) so recognize.Run can seed its per-bicomp DFS
// with an edge that advances the chain.
func orderChain(bicomps []Bicomp, cutVerts []int, parent []int) []Bicomp {
	n := len(bicomps)
	if n == 0 {
		return nil
	}

	hasChild := make([]bool, n)
	for i := 0; i < n-1; i++ {
		root := bicomps[i].Root
		if j := cutVerts[root]; j != i {
			hasChild[j] = true
		}
	}

	last := n - 1
	s := -1
	for i := 0; i < n-1; i++ {
		if !hasChild[i] {
			s = i
			break
		}
	}
	if s == -1 {
		// Degenerate: every bicomp but the last has a child already (a
		// genuine chain with no second leaf, e.g. a single bicomp). Nothing
		// to reverse.
		return rewriteEdges(bicomps, cutVerts)
	}

	reordered := make([]Bicomp, n)
	copy(reordered, bicomps)
	// Reverse the subarray [s, last).
	lo, hi := s, last-1
	for lo < hi {
		reordered[lo], reordered[hi] = reordered[hi], reordered[lo]
		lo++
		hi--
	}

	return rewriteEdges(reordered, cutVerts)
}

// rewriteEdges sets every bicomp's Edge to (cutVertexParent, cutVertex): the
// chain-previous cut vertex and this bicomp's own Root. The first bicomp in
// the chain keeps its DFS-discovered Edge (it is seeded directly from the
// global root, there is no "previous" cut vertex).
func rewriteEdges(chain []Bicomp, cutVerts []int) []Bicomp {
	for i := 1; i < len(chain); i++ {
		chain[i].Edge = [2]int{chain[i-1].Root, chain[i].Root}
	}
	return chain
}

// debugAssertions gates invariant checks that are too expensive, or too
// paranoid, to run unconditionally (spec.md §7:
// "internal-invariant-violation... undefined in release"). Flip to true
// locally when debugging the decomposition.
const debugAssertions = false
