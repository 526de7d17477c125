// Package authenticate independently checks a certificate.Certificate
// against the graph it claims to describe (spec.md §4.6). It never trusts
// anything block or recognize computed: Authenticate re-derives cut
// vertices and bicomp membership from scratch via its own block.Decompose
// call, re-walks every certificate path against the graph's actual edges,
// and re-validates an SP-decomposition tree's structure and leaf-edge
// coverage before accepting it.
//
// This separation is the whole point of the certificate model: a bug in
// recognize's reduction engine can only ever produce a certificate that
// Authenticate then rejects, never a false "yes" accepted on trust.
package authenticate
