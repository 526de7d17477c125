package refcount

import "github.com/gospverify/spgraph/graphcore"

// Components counts the connected components of g after removing vertex
// excluded (and every edge incident to it). Passing excluded = -1 counts
// the components of g itself.
//
// Complexity: O(n + e), iterative BFS per component, matching bfs.BFS's
// explicit-queue style rather than a recursive flood fill.
func Components(g *graphcore.Graph, excluded int) int {
	n := g.N()
	visited := make([]bool, n)
	if excluded >= 0 && excluded < n {
		visited[excluded] = true
	}

	count := 0
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		count++
		visited[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nbr := range g.Neighbors(cur) {
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return count
}

// IsCutVertex reports whether removing v increases the component count of
// the subgraph reachable from v's own original component, i.e. whether v's
// removal splits something that was connected through v.
func IsCutVertex(g *graphcore.Graph, v int) bool {
	if v < 0 || v >= g.N() {
		return false
	}
	if len(g.Neighbors(v)) < 2 {
		return false
	}
	whole := Components(g, -1)
	without := Components(g, v)
	// removing v also removes v itself as a countable component, so the
	// comparison is against components among the remaining n-1 vertices:
	// v is a cut vertex iff its neighbors no longer all share one component.
	return without-whole >= 1
}
