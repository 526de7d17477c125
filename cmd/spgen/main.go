// Command spgen is the generator CLI of spec.md §6: given
// "nC lC nK lK three_edges [seed]", it emits a graph built from nC
// cycles of length lC and nK complete graphs of size lK, linked in a
// tree and shuffled, in the "n e" / edge-list grammar the reader
// expects.
//
// Positional args, no flag prefixes: matches the original generator's
// plain argv contract rather than the stdlib flag package's "--name"
// convention (see DESIGN.md).
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gospverify/spgraph/genfixture"
	"github.com/gospverify/spgraph/graphcore"
	"github.com/gospverify/spgraph/ioformat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s nC lC nK lK three_edges [seed]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  nC: number of cycle subgraphs")
	fmt.Fprintln(os.Stderr, "  lC: length of cycles (must be at least 3)")
	fmt.Fprintln(os.Stderr, "  nK: number of complete subgraphs")
	fmt.Fprintln(os.Stderr, "  lK: size of complete subgraphs (must be at least 3)")
	fmt.Fprintln(os.Stderr, "  three_edges: connect with 3 edges instead of 2 (0=no, 1=yes)")
	fmt.Fprintln(os.Stderr, "  seed: random seed (optional, uses current time if not provided)")
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 6 || len(args) > 7 {
		usage()
		return 1
	}

	ints := make([]int, 5)
	var err error
	for i, a := range args[1:6] {
		ints[i], err = strconv.Atoi(a)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s is not an integer\n", a)
			return 1
		}
	}
	nC, lC, nK, lK, threeEdgesFlag := ints[0], ints[1], ints[2], ints[3], ints[4]

	seed := time.Now().UnixNano()
	if len(args) == 7 {
		s, err := strconv.ParseInt(args[6], 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "Error: seed %s is not an integer\n", args[6])
			return 1
		}
		seed = s
	}

	n, edges, err := genfixture.Generate(nC, lC, nK, lK, threeEdgesFlag != 0, seed)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	g, err := graphcore.New(n, edges)
	if err != nil {
		fmt.Fprintf(stderr, "Error: generated an invalid graph: %v\n", err)
		return 1
	}
	if err := ioformat.WriteGraph(stdout, g); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
