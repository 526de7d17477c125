// Package recognize implements the SP recogniser (spec.md §4.4) over the
// chain of bicomps block.Decompose produces. For each bicomp it runs two
// independent checks rather than spec.md §4.4's literal per-ear/seq/
// vertex_stacks DFS (see DESIGN.md for the substitution's grounding):
//
//   - detectK23 suppresses every degree-2 vertex of the bicomp's real
//     edges, with no exemption for whichever two vertices this bicomp
//     treats as its terminals, then checks whether any pair ends up joined
//     by three or more of the resulting wedges — the signature of a K2,3
//     subdivision, which (unlike K4) can span a terminal vertex and so
//     cannot be trusted to survive terminal-respecting reduction.
//   - reduce performs Duffin's classical series/parallel reduction toward
//     the bicomp's own (source, sink) pair. Success collapses the bicomp
//     to one edge; a stuck irreducible core is classified by
//     findQuadObstruction as a K4, or — when the terminal pair is itself
//     the virtual pair stitching two chain-adjacent bicomps together
//     rather than a real edge (spec.md §4.4.c's "fake edge") — as a Theta4
//     naming the two terminals as its cut vertices.
//
// Run stitches the resulting per-bicomp trees into one global tree with a
// plain series composition, since block.Decompose already guarantees the
// bicomps form a simple chain where consecutive bicomps share exactly one
// vertex.
package recognize
