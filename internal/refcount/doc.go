// Package refcount is a small, deliberately independent breadth-first
// component counter, in the style of bfs.BFS: an explicit queue, a
// visited set, and insertion-order neighbor expansion, with no shared
// code path through block or recognize.
//
// authenticate uses it for the cut-vertex check of Theta4 certificates:
// "removing vertex v disconnects the graph" is re-derived here from
// graphcore.Graph directly, every time, rather than trusted from whatever
// block's bookkeeping already concluded. ThreeComponentCut and
// ThreeCutVertexBicomp are checked by re-running block.Decompose instead.
package refcount
