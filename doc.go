// Package spgraph recognizes series-parallel graphs and produces an
// independently-checkable certificate for its verdict, positive or
// negative.
//
// A graph is series-parallel (SP) if it reduces to a single edge by
// repeated series and parallel composition. spgraph decomposes an
// input graph into biconnected components, recognizes each component
// via series-parallel reduction, and either assembles a full
// SP-decomposition tree (positive) or emits one of a fixed set of
// canonical obstructions (K4, K2,3, Theta4, a three-component cut, or
// three cut vertices sharing a biconnected component) as a negative
// certificate. Either way, authenticate re-derives and re-checks the
// certificate from the graph's actual edges before anything is
// trusted — a bug in the recognizer can only ever produce a
// certificate that fails authentication, never a false positive.
//
// Subpackages:
//
//	graphcore/    — the fixed-vertex-set undirected Graph type
//	sptree/       — SP-decomposition tree nodes and composition
//	block/        — biconnected-component (block-cut-tree) decomposition
//	certificate/  — the tagged-union certificate types
//	recognize/    — per-component series-parallel reduction
//	authenticate/ — independent certificate verification
//	genfixture/   — deterministic test-graph generation
//	ioformat/     — the plain-text and YAML graph file formats
//	cmd/spgen/    — generator CLI
//	cmd/spcheck/  — recognize-then-authenticate CLI
package spgraph
