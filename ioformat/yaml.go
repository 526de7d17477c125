package ioformat

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gospverify/spgraph/graphcore"
)

type yamlGraph struct {
	N     int      `yaml:"n"`
	Edges [][2]int `yaml:"edges"`
}

// ReadGraphYAML decodes a {n, edges} document into a graphcore.Graph.
func ReadGraphYAML(r io.Reader) (*graphcore.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ReadGraphYAML: reading input: %w", err)
	}
	var yg yamlGraph
	if err := yaml.Unmarshal(data, &yg); err != nil {
		return nil, fmt.Errorf("ioformat.ReadGraphYAML: %v: %w", err, ErrMalformedInput)
	}
	g, err := graphcore.New(yg.N, yg.Edges)
	if err != nil {
		return nil, fmt.Errorf("ioformat.ReadGraphYAML: %v: %w", err, ErrMalformedInput)
	}
	return g, nil
}

// WriteGraphYAML encodes g as a {n, edges} document.
func WriteGraphYAML(w io.Writer, g *graphcore.Graph) error {
	yg := yamlGraph{N: g.N(), Edges: g.EdgeList()}
	data, err := yaml.Marshal(yg)
	if err != nil {
		return fmt.Errorf("ioformat.WriteGraphYAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("ioformat.WriteGraphYAML: %w", err)
	}
	return nil
}
