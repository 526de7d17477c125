package genfixture

import "errors"

// Sentinel errors for Generate's parameter validation, mirroring the
// original generator's own argv checks (graph_generator.cpp's "Error:"
// fprintf lines).
var (
	// ErrCycleTooShort indicates lC < 3.
	ErrCycleTooShort = errors.New("genfixture: cycle length must be at least 3")

	// ErrCompleteTooSmall indicates lK < 3.
	ErrCompleteTooSmall = errors.New("genfixture: complete-graph size must be at least 3")

	// ErrNegativeCount indicates nC or nK is negative.
	ErrNegativeCount = errors.New("genfixture: subgraph count must be non-negative")

	// ErrNoSubgraphs indicates nC+nK == 0: nothing to generate.
	ErrNoSubgraphs = errors.New("genfixture: must request at least one subgraph")

	// ErrUnknownScenario indicates a name not present in NamedScenarios.
	ErrUnknownScenario = errors.New("genfixture: unknown named scenario")
)
