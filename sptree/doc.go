// Package sptree implements the SP-decomposition tree: an immutable-shape
// binary composition tree over four internal labels (series, parallel,
// antiparallel, dangling) and one leaf label (edge), with move-only
// ownership semantics mirroring the recogniser's C++ ancestor's
// std::move-everywhere discipline.
//
// What:
//
//   - Tree: a node carrying (source, sink, kind) plus, for internal nodes,
//     left/right children.
//   - Compose/LCompose: the only ways to build an internal node; both
//     take ownership of the argument tree. They cannot nil out the
//     caller's pointer, so callers discard it themselves to keep a Tree
//     referenced from exactly one place at a time.
//   - Deantiparallelize: a single post-order pass rewriting every
//     antiparallel node to parallel by flipping orientations in the right
//     subtree.
//
// Why:
//   - The recogniser builds and merges SP chains thousands of times per
//     bicomp; representing "this subtree is now owned by its parent" as a
//     Go-level invariant (nulled-out pointers) catches aliasing bugs that
//     would otherwise slip past the authenticator only when two aliased
//     subtrees happen to produce isomorphic adjacency lists (spec §9).
//
// Complexity: every operation here is O(1) except UnderlyingTreePathSource
// (O(depth)) and Deantiparallelize, Reverse, Destroy and CountNodes, which
// are O(size of tree) with an explicit work stack so that
// deep degenerate spines (a bicomp that is a long path) cannot exhaust the
// Go runtime's goroutine stack via unbounded recursion.
package sptree
