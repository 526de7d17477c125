// Command spcheck reads a graph (path argument, or stdin if omitted),
// decomposes it into biconnected components, runs the series-parallel
// recognizer, and always authenticates whichever certificate comes
// back against the original graph before trusting it (spec.md §1's
// certificate model). It prints a one-line verdict and exits 0 only on
// authenticated success.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gospverify/spgraph/authenticate"
	"github.com/gospverify/spgraph/block"
	"github.com/gospverify/spgraph/certificate"
	"github.com/gospverify/spgraph/ioformat"
	"github.com/gospverify/spgraph/recognize"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	r := stdin
	if len(args) > 1 {
		f, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	g, err := ioformat.ReadGraph(r)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var cert certificate.Certificate
	res, negCert := block.Decompose(g)
	if negCert != nil {
		cert = negCert
	} else {
		tree, negCert := recognize.Run(g, res)
		if negCert != nil {
			cert = negCert
		} else {
			cert = &certificate.Positive{Tree: tree}
		}
	}

	ok, err := authenticate.Authenticate(g, cert)
	if !ok || err != nil {
		fmt.Fprintf(stderr, "AUTH FAILED: %v\n", err)
		return 1
	}

	if cert.Kind() == certificate.PositiveKind {
		fmt.Fprintln(stdout, "SP")
	} else {
		fmt.Fprintf(stdout, "NOT SP: %s\n", cert.Kind())
	}
	return 0
}
