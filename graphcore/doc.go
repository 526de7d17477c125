// Package graphcore defines the fixed-size undirected simple graph that the
// rest of spgraph operates on: vertices are the dense range {0,...,n-1},
// adjacency is stored as an insertion-ordered slice per vertex, and the graph
// is immutable once built.
//
// What:
//
//   - Graph: symmetric adjacency over {0,...,n-1}, built once from an edge
//     list via New.
//   - Neighbors/Adjacent: O(deg) and O(deg) queries respectively; Adjacent is
//     a linear scan by design (spec: authenticator calls are bounded).
//
// Why:
//   - Give the recogniser and authenticator a single, trusted source of
//     truth for "does this edge exist" that never silently accepts
//     multi-edges or self-loops, so certificate authentication can lean on
//     graph queries without re-validating simplicity itself.
//
// Errors:
//
//   - ErrNegativeSize     n < 0.
//   - ErrVertexOutOfRange u or v not in [0,n).
//   - ErrSelfLoop         u == v.
//   - ErrDuplicateEdge    the same unordered pair appears twice.
package graphcore
