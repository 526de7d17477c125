// Package block computes the biconnected-component (bicomp) decomposition
// of a graphcore.Graph via a single iterative DFS, identifies cut vertices,
// detects the two structural obstructions that make a clean bicomp chain
// impossible (a cut vertex separating >=3 components, or a bicomp touched
// by >=3 distinct cut vertices), and — when neither obstruction fires —
// orders the bicomps into the chain that recognize.Run consumes.
//
// Why a chain, not a tree: spgraph's notion of "series-parallel" requires
// the whole graph to reduce to a single two-terminal SP structure. That is
// only possible when the block-cut tree is a path: each bicomp contributes
// exactly one "in" and one "out" cut vertex, so the bicomps compose in
// series end to end. A cut vertex touched by three or more bicomps, or a
// DFS root with more than one top-level bicomp, breaks that path shape —
// the extra bicomp would have to hang off the chain as a pendant, which is
// exactly the Dangling composition sptree reserves for negative
// intermediate results only.
//
// Grounded on the teacher's DFS conventions (iterative work stacks, per
// spec §9) and, for the tri-cut-vertex-bicomp cross-check, on per-bicomp
// membership lists recorded during the same DFS (each closed bicomp's
// members are also unioned in a fresh github.com/spakin/disjoint
// union-find, one Union per member vertex, as a debug self-check) so
// authenticate can ask "do these three vertices share a bicomp" without a
// second, different biconnectivity algorithm.
package block
