// Package genfixture builds test graphs for the series-parallel recognizer
// and its certificate authenticator.
//
// Generate reproduces original_source/graph_generator.cpp's construction:
// nC disjoint cycles of length lC and nK disjoint complete graphs of size
// lK, stitched into a tree of subgraphs by 2 or 3 cross edges per link,
// then node-shuffled so vertex IDs carry no structural hint. The original
// used srand/rand() off a single global stream; Generate uses a seeded
// math/rand/v2.Rand instead, so two calls with the same arguments always
// produce the same graph and two different seeds are independent.
//
// NamedScenarios returns the small fixed-shape graphs named in spec.md's
// testable-properties table (S1-S6), loaded from an embedded YAML table
// rather than hard-coded Go literals, so tests share one source of truth
// for these shapes. The CLIs do not read them.
package genfixture
