// Package certificate defines the tagged variant of outcomes the
// recogniser can produce: one positive kind (an SP-decomposition tree) and
// five negative kinds (K4-subdivision, K2,3-subdivision, Theta4,
// three-component cut vertex, three-cut-vertex bicomp). Every kind
// implements Certificate; authenticate.Authenticate dispatches on the
// concrete type.
//
// Certificates are the contract between recognize (which produces them) and
// authenticate (which independently re-derives whether they are valid
// against the original graph) — spec.md §1's "the recogniser is trusted
// only insofar as an independent authenticator... can re-verify the claim".
package certificate
