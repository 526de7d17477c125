package genfixture

import (
	"fmt"
	"math/rand/v2"
)

// Generate builds n vertices and a shuffled, deduplicated edge list: nC
// cycles of length lC and nK complete graphs of size lK, stitched into a
// tree of subgraphs by 2 cross edges per link (3 if threeEdges is true).
// Two calls with the same arguments always return the same graph.
//
// Validation, mirroring original_source/graph_generator.cpp's argv checks:
//   - lC, lK >= 3     (ErrCycleTooShort / ErrCompleteTooSmall)
//   - nC, nK >= 0     (ErrNegativeCount)
//   - nC+nK >= 1      (ErrNoSubgraphs)
//
// Complexity: O(n + m) where m is the edge count implied by nC, lC, nK, lK.
func Generate(nC, lC, nK, lK int, threeEdges bool, seed int64) (int, [][2]int, error) {
	if lC < 3 {
		return 0, nil, fmt.Errorf("genfixture.Generate: lC=%d: %w", lC, ErrCycleTooShort)
	}
	if lK < 3 {
		return 0, nil, fmt.Errorf("genfixture.Generate: lK=%d: %w", lK, ErrCompleteTooSmall)
	}
	if nC < 0 || nK < 0 {
		return 0, nil, fmt.Errorf("genfixture.Generate: nC=%d, nK=%d: %w", nC, nK, ErrNegativeCount)
	}
	if nC+nK == 0 {
		return 0, nil, fmt.Errorf("genfixture.Generate: %w", ErrNoSubgraphs)
	}

	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15))

	n := nC*lC + nK*lK
	numSub := nC + nK

	// Shuffle the vertex labels (Fisher-Yates), so structural position
	// carries no hint about which original node index it was.
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + r.IntN(n-i)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	// Shuffle which subgraph slot is a cycle (0) vs a complete graph (1).
	graphType := make([]byte, numSub)
	for i := 0; i < nC; i++ {
		graphType[i] = 0
	}
	for i := nC; i < numSub; i++ {
		graphType[i] = 1
	}
	for i := 0; i < numSub; i++ {
		j := i + r.IntN(numSub-i)
		graphType[i], graphType[j] = graphType[j], graphType[i]
	}

	var edges [][2]int
	startNode := make([]int, numSub)
	current := 0
	for i := 0; i < numSub; i++ {
		startNode[i] = current
		if graphType[i] == 0 {
			for j := 0; j < lC; j++ {
				edges = append(edges, [2]int{nodes[current+j], nodes[current+(j+1)%lC]})
			}
			current += lC
		} else {
			for j := 0; j < lK; j++ {
				for k := j + 1; k < lK; k++ {
					edges = append(edges, [2]int{nodes[current+j], nodes[current+k]})
				}
			}
			current += lK
		}
	}

	// Connect subgraphs in a tree: subgraph i attaches to a uniformly
	// random earlier subgraph j, via 2 (or 3) cross edges between
	// arbitrary, pairwise-distinct offsets within each side.
	for i := 1; i < numSub; i++ {
		j := r.IntN(i)
		mod1, mod2 := subgraphSize(graphType[i], lC, lK), subgraphSize(graphType[j], lC, lK)

		if !threeEdges {
			x1 := r.IntN(mod1)
			x2 := (x1 + 1 + r.IntN(mod1-2)) % mod1
			y1 := r.IntN(mod2)
			y2 := (y1 + 1 + r.IntN(mod2-2)) % mod2
			edges = append(edges, [2]int{nodes[startNode[i]+x1], nodes[startNode[j]+y1]})
			edges = append(edges, [2]int{nodes[startNode[i]+x2], nodes[startNode[j]+y2]})
			continue
		}

		x1, x2, x3 := threeDistinctOffsets(r, mod1)
		y1, y2, y3 := threeDistinctOffsets(r, mod2)
		edges = append(edges, [2]int{nodes[startNode[i]+x1], nodes[startNode[j]+y1]})
		edges = append(edges, [2]int{nodes[startNode[i]+x2], nodes[startNode[j]+y2]})
		edges = append(edges, [2]int{nodes[startNode[i]+x3], nodes[startNode[j]+y3]})
	}

	unique := dedupeEdges(edges)

	// Final pass: shuffle edge order and randomly flip each edge's
	// direction, so output order carries no construction-order hint.
	for i := 0; i < len(unique); i++ {
		j := i + r.IntN(len(unique)-i)
		unique[i], unique[j] = unique[j], unique[i]
		if r.IntN(2) == 0 {
			unique[i][0], unique[i][1] = unique[i][1], unique[i][0]
		}
	}

	return n, unique, nil
}

func subgraphSize(kind byte, lC, lK int) int {
	if kind == 1 {
		return lK
	}
	return lC
}

// threeDistinctOffsets picks 3 pairwise-distinct offsets within [0,mod),
// replicating graph_generator.cpp's fixed {0,1,2} shortcut for mod==3 and
// its modular-gap construction otherwise.
func threeDistinctOffsets(r *rand.Rand, mod int) (int, int, int) {
	if mod == 3 {
		return 0, 1, 2
	}
	x1 := r.IntN(mod)
	x2 := (x1 + 2 + r.IntN(mod-3)) % mod
	gap := (mod + x2 - x1 - 1) % mod
	x3 := (x1 + 1 + r.IntN(gap)) % mod
	return x1, x2, x3
}

// dedupeEdges canonicalizes each edge to (min,max) and drops repeats,
// mirroring the original's std::set<pair<long,long>> pass.
func dedupeEdges(edges [][2]int) [][2]int {
	seen := make(map[[2]int]bool, len(edges))
	out := make([][2]int, 0, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}
