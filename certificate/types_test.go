package certificate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/gospverify/spgraph/certificate"
)

func TestKind_String(t *testing.T) {
	cases := map[certificate.Kind]string{
		certificate.K4Kind:                  "K4",
		certificate.K23Kind:                 "K23",
		certificate.Theta4Kind:              "Theta4",
		certificate.ThreeComponentCutKind:   "ThreeComponentCut",
		certificate.ThreeCutVertexBicompKind: "ThreeCutVertexBicomp",
		certificate.PositiveKind:             "SP",
		certificate.Kind(99):                "unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestCertificate_KindDispatch(t *testing.T) {
	var certs = []certificate.Certificate{
		&certificate.K4{A: 0, B: 1, C: 2, D: 3},
		&certificate.K23{A: 0, B: 1},
		&certificate.Theta4{C1: 0, C2: 1, A: 2, B: 3},
		&certificate.ThreeComponentCut{V: 0},
		&certificate.ThreeCutVertexBicomp{C1: 0, C2: 1, C3: 2},
		&certificate.Positive{},
	}
	want := []certificate.Kind{
		certificate.K4Kind,
		certificate.K23Kind,
		certificate.Theta4Kind,
		certificate.ThreeComponentCutKind,
		certificate.ThreeCutVertexBicompKind,
		certificate.PositiveKind,
	}
	for i, c := range certs {
		assert.Equal(t, want[i], c.Kind())
	}
}

// TestK4_DeepEqual uses go-cmp rather than testify's assert.Equal because
// K4 nests a [6]Path array of []PathEdge slices: go-cmp's diff output names
// exactly which path/edge index differs, instead of one opaque struct dump.
func TestK4_DeepEqual(t *testing.T) {
	path := certificate.Path{{From: 0, To: 4}, {From: 4, To: 1}}
	a := &certificate.K4{A: 0, B: 1, C: 2, D: 3, Paths: [6]certificate.Path{path, {}, {}, {}, {}, {}}}
	pathCopy := certificate.Path{{From: 0, To: 4}, {From: 4, To: 1}}
	b := &certificate.K4{A: 0, B: 1, C: 2, D: 3, Paths: [6]certificate.Path{pathCopy, {}, {}, {}, {}, {}}}

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("identically-constructed K4 certificates diverge (-want +got):\n%s", diff)
	}

	b.Paths[0][1].To = 9
	if diff := cmp.Diff(a, b); diff == "" {
		t.Error("expected a diff after mutating b's path, got none")
	}
}
