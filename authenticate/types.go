package authenticate

import "errors"

// Sentinel errors describing exactly why a certificate was rejected.
// Authenticate wraps one of these with fmt.Errorf, prefixed with the failing
// handler ("authenticate.K4: ...: %w", "authenticate.Theta4: ...: %w", ...).
var (
	ErrNilCertificate           = errors.New("nil certificate")
	ErrUnknownCertificateKind   = errors.New("unknown certificate kind")
	ErrVertexOutOfRange         = errors.New("vertex out of range")
	ErrVerticesNotDistinct      = errors.New("certificate vertices are not distinct")
	ErrPathBroken               = errors.New("path does not trace real edges end to end")
	ErrPathsNotDisjoint         = errors.New("certificate paths are not internally disjoint")
	ErrNotCutVertex             = errors.New("required cut vertex is not a cut vertex of the graph")
	ErrWrongComponentCount      = errors.New("vertex removal does not split the graph as claimed")
	ErrNotCommonBicomp          = errors.New("cut vertices do not share a biconnected component")
	ErrTreeStructureInvalid     = errors.New("SP-decomposition tree violates a composition invariant")
	ErrTreeEdgeCoverageMismatch = errors.New("SP-decomposition tree's leaf edges do not match the graph's edges exactly")
)
