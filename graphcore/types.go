package graphcore

import "errors"

// Sentinel errors for graph construction. Callers branch with errors.Is,
// never string comparison, per the pack's error-handling convention.
var (
	// ErrNegativeSize indicates a negative vertex count was requested.
	ErrNegativeSize = errors.New("graphcore: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0,n).
	ErrVertexOutOfRange = errors.New("graphcore: vertex out of range")

	// ErrSelfLoop indicates an edge with u == v; self-loops are out of scope (spec Non-goals).
	ErrSelfLoop = errors.New("graphcore: self-loop not allowed")

	// ErrDuplicateEdge indicates the same unordered pair was supplied twice;
	// multigraph inputs are rejected at construction (spec.md Open Question 2).
	ErrDuplicateEdge = errors.New("graphcore: duplicate edge")
)

// DirEdge is a directed-orientation edge over an undirected Graph: the
// direction only matters to SP-tree leaves and certificate paths, never to
// Graph itself (Adjacent is symmetric).
type DirEdge struct {
	From int
	To   int
}

// Reversed returns the edge with endpoints swapped.
func (e DirEdge) Reversed() DirEdge {
	return DirEdge{From: e.To, To: e.From}
}

// Graph is a fixed vertex-set {0,...,n-1} undirected simple graph.
// It is immutable after New returns: there is no AddEdge, matching spec.md's
// Non-goal of incremental edge insertion/deletion.
type Graph struct {
	n   int
	adj [][]int // adj[v] lists v's neighbors in insertion order; symmetric.
	e   int
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// E returns the number of (undirected) edges.
func (g *Graph) E() int { return g.e }

// Neighbors returns v's adjacency list in insertion order. The returned
// slice must not be mutated by callers.
func (g *Graph) Neighbors(v int) []int { return g.adj[v] }

// Degree returns len(Neighbors(v)).
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }
