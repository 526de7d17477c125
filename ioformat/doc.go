// Package ioformat reads and writes the plain-text graph grammar of
// spec.md §6 ("n e" header, then e lines of "u v") using
// github.com/alecthomas/participle, the same parser-combinator library
// lnz-BalancedGo's lib/parser.go uses for its own edge-list grammar.
// Participle gives position-annotated malformed-input errors for free,
// instead of hand-rolled bufio.Scanner token splitting.
//
// ReadGraphYAML/WriteGraphYAML are an additive codec over the same
// graphcore.Graph, for callers (tests, genfixture) that prefer a
// structured format.
package ioformat
