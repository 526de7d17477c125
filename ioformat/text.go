package ioformat

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/participle"

	"github.com/gospverify/spgraph/graphcore"
)

// fileEdge is one "u v" line of spec.md §6's edge-list grammar.
type fileEdge struct {
	U int `@Int`
	V int `@Int`
}

// fileGraph is the whole grammar: an "n e" header line followed by e
// edge lines.
type fileGraph struct {
	N     int        `@Int`
	E     int        `@Int`
	Edges []fileEdge `( @@ )*`
}

var textParser = participle.MustBuild(&fileGraph{})

// ReadGraph parses spec.md §6's plain-text grammar: line 1 is "n e",
// followed by e lines of "u v" (0 <= u,v < n, u != v). Any parse
// failure, header/edge-count mismatch, or graphcore validation failure
// (self-loop, duplicate edge, out-of-range vertex) returns
// ErrMalformedInput wrapping the underlying cause.
func ReadGraph(r io.Reader) (*graphcore.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ReadGraph: reading input: %w", err)
	}

	var fg fileGraph
	if err := textParser.Parse(bytes.NewReader(data), &fg); err != nil {
		return nil, fmt.Errorf("ioformat.ReadGraph: %v: %w", err, ErrMalformedInput)
	}
	if len(fg.Edges) != fg.E {
		return nil, fmt.Errorf("ioformat.ReadGraph: header declares %d edges, found %d: %w", fg.E, len(fg.Edges), ErrMalformedInput)
	}

	edges := make([][2]int, len(fg.Edges))
	for i, e := range fg.Edges {
		edges[i] = [2]int{e.U, e.V}
	}

	g, err := graphcore.New(fg.N, edges)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ReadGraph: %v: %w", err, ErrMalformedInput)
	}
	return g, nil
}

// WriteGraph emits spec.md §6's grammar: "n e" then one "u v" line per
// edge, in g.EdgeList()'s order.
func WriteGraph(w io.Writer, g *graphcore.Graph) error {
	edges := g.EdgeList()
	if _, err := fmt.Fprintf(w, "%d %d\n", g.N(), len(edges)); err != nil {
		return fmt.Errorf("ioformat.WriteGraph: %w", err)
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e[0], e[1]); err != nil {
			return fmt.Errorf("ioformat.WriteGraph: %w", err)
		}
	}
	return nil
}
