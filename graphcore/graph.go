package graphcore

import "fmt"

// New builds a Graph on n vertices from edges. Every edge is added
// symmetrically (adj[u] gets v, adj[v] gets u). Validation, in order:
//   - n >= 0 (ErrNegativeSize)
//   - 0 <= u,v < n for every edge (ErrVertexOutOfRange)
//   - u != v (ErrSelfLoop)
//   - no unordered pair repeated (ErrDuplicateEdge)
//
// Complexity: O(n + e) time and space.
func New(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("graphcore.New: n=%d: %w", n, ErrNegativeSize)
	}

	g := &Graph{
		n:   n,
		adj: make([][]int, n),
	}

	// seen[u] maps v -> struct{}{} for every edge already admitted incident to u,
	// used only to reject duplicates; not retained on the Graph.
	seen := make([]map[int]struct{}, n)
	for i := range seen {
		seen[i] = make(map[int]struct{})
	}

	for _, edge := range edges {
		u, v := edge[0], edge[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("graphcore.New: edge (%d,%d): %w", u, v, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("graphcore.New: vertex %d: %w", u, ErrSelfLoop)
		}
		if _, dup := seen[u][v]; dup {
			return nil, fmt.Errorf("graphcore.New: edge (%d,%d): %w", u, v, ErrDuplicateEdge)
		}

		seen[u][v] = struct{}{}
		seen[v][u] = struct{}{}
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
		g.e++
	}

	return g, nil
}

// Adjacent reports whether u and v are connected by an edge, scanning
// adj[u] linearly. Spec §4.1: sufficient since authenticator calls are
// bounded by the certificate's path lengths, not by n or e.
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || u >= g.n {
		return false
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

// EdgeList reconstructs an (u<v)-ordered edge list from the adjacency
// representation. Used by ioformat.WriteGraph and by
// authenticate.authenticatePositive's edge-coverage check.
func (g *Graph) EdgeList() [][2]int {
	edges := make([][2]int, 0, g.e)
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return edges
}

// SortedNeighbors returns a freshly sorted copy of Neighbors(v), used
// wherever adjacency equality must be order-independent (spec §4.1: "no
// ordering contract across adjacencies; authenticator must normalise").
func (g *Graph) SortedNeighbors(v int) []int {
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	insertionSort(out)
	return out
}

// insertionSort sorts small int slices without importing sort, matching the
// pack's preference (builder, matrix) for avoiding dependencies for O(deg)
// work where deg is typically tiny; falls back to a plain O(k^2) pass.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}
