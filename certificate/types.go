package certificate

import "github.com/gospverify/spgraph/sptree"

// Kind identifies which concrete certificate a Certificate value carries.
type Kind int

const (
	// K4Kind: four distinct vertices and six internally-disjoint paths —
	// a subdivision of the complete graph on 4 vertices.
	K4Kind Kind = iota

	// K23Kind: two distinct vertices and three internally-disjoint paths of
	// at least two edges each — a subdivision of K2,3.
	K23Kind

	// Theta4Kind: four distinct vertices (c1, c2, a, b) and five paths; c1
	// and c2 must additionally be cut vertices of the graph.
	Theta4Kind

	// ThreeComponentCutKind: a single vertex that closes a second bicomp
	// during block.Decompose's DFS from vertex 0 (see ThreeComponentCut).
	ThreeComponentCutKind

	// ThreeCutVertexBicompKind: three distinct cut vertices that all belong
	// to the same biconnected component.
	ThreeCutVertexBicompKind

	// PositiveKind: the graph is series-parallel; carries the decomposition
	// tree.
	PositiveKind
)

// String names a Kind for diagnostics and CLI output.
func (k Kind) String() string {
	switch k {
	case K4Kind:
		return "K4"
	case K23Kind:
		return "K23"
	case Theta4Kind:
		return "Theta4"
	case ThreeComponentCutKind:
		return "ThreeComponentCut"
	case ThreeCutVertexBicompKind:
		return "ThreeCutVertexBicomp"
	case PositiveKind:
		return "SP"
	default:
		return "unknown"
	}
}

// Path is a simple sequence of directed-orientation edges describing one
// internally-disjoint path of a negative certificate. Authenticate's
// tracePath walks it edge by edge.
type Path []PathEdge

// PathEdge is one edge of a Path. The orientation (From->To) only matters
// for tracePath's walk; Authenticate canonicalises reversed paths.
type PathEdge struct {
	From int
	To   int
}

// Certificate is the tagged-variant interface implemented by every kind.
// Kind() lets authenticate.Authenticate dispatch without a type switch at
// every call site (though it still uses one internally to reach the
// concrete fields).
type Certificate interface {
	Kind() Kind
}

// K4 witnesses a K4-subdivision via four branch vertices and the six paths
// joining every pair, per spec.md §4.5. Paths index: [ab, ac, ad, bc, bd, cd].
type K4 struct {
	A, B, C, D int
	Paths      [6]Path
}

// Kind implements Certificate.
func (K4) Kind() Kind { return K4Kind }

// K23 witnesses a K2,3-subdivision via the two "left-part" vertices and the
// three disjoint paths between them (each through a distinct degree-3
// vertex of the right part).
type K23 struct {
	A, B  int
	Paths [3]Path
}

// Kind implements Certificate.
func (K23) Kind() Kind { return K23Kind }

// Theta4 witnesses a Θ4 obstruction: two cut vertices c1, c2 and two other
// vertices a, b, connected by five paths [c1a, c2a, c1b, c2b, ab].
type Theta4 struct {
	C1, C2, A, B int
	Paths        [5]Path
}

// Kind implements Certificate.
func (Theta4) Kind() Kind { return Theta4Kind }

// ThreeComponentCut names a vertex V that closes a second bicomp during
// block.Decompose's DFS from vertex 0. For V != 0 removing V leaves at
// least three connected components; for V == 0 it leaves at least two.
type ThreeComponentCut struct {
	V int
}

// Kind implements Certificate.
func (ThreeComponentCut) Kind() Kind { return ThreeComponentCutKind }

// ThreeCutVertexBicomp witnesses that three distinct cut vertices all
// belong to one biconnected component.
type ThreeCutVertexBicomp struct {
	C1, C2, C3 int
}

// Kind implements Certificate.
func (ThreeCutVertexBicomp) Kind() Kind { return ThreeCutVertexBicompKind }

// Positive witnesses that the graph is series-parallel via its global
// SP-decomposition tree.
type Positive struct {
	Tree *sptree.Tree
}

// Kind implements Certificate.
func (Positive) Kind() Kind { return PositiveKind }
